// Package batch renders one reticle artifact per rim/arm color pair.
//
// A Generator clones its template Config for every pair, replaces both
// colors with the pair's RGB at full opacity, renders the result through a
// registered backend and writes it to a deterministic file name:
//
//	xhMan_<size>px-rim-<RIMHEX>_arms-<ARMHEX>.<ext>
//
// Pairs that produce the same name overwrite each other; the last one
// wins. Any failure stops the batch.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/xhgen/reticle"
	"github.com/xhgen/reticle/render"
	_ "github.com/xhgen/reticle/render/raster"
	_ "github.com/xhgen/reticle/render/svg"
)

// DefaultBackend is the backend used when Generator.Backend is empty.
const DefaultBackend = "svg"

// ArtifactName returns the file name for one pair.
func ArtifactName(size int, rim, arm reticle.ColorSpec, ext string) string {
	return fmt.Sprintf("xhMan_%dpx-rim-%s_arms-%s.%s", size, rim.Hex, arm.Hex, ext)
}

// Progress is called after each artifact is written with its 1-based
// position in the pair list.
type Progress func(done, total int, path string)

// Generator renders color pairs against a template.
type Generator struct {
	// Template supplies every field except the colors.
	Template reticle.Config

	// Backend names a registered render backend. Empty means "svg".
	Backend string

	// Workers > 1 renders pairs concurrently. Output is identical to a
	// sequential run.
	Workers int

	// Logger defaults to reticle.Logger().
	Logger *slog.Logger

	// Progress, if set, is called after every artifact. With Workers > 1
	// calls may arrive out of order but never concurrently.
	Progress Progress
}

// job is one artifact to write.
type job struct {
	index int
	pair  Pair
	path  string
}

// Generate writes one artifact per pair into dir, creating dir if needed,
// and returns len(pairs). The first failure aborts the batch.
func (g *Generator) Generate(ctx context.Context, pairs []Pair, dir string) (int, error) {
	backend := g.Backend
	if backend == "" {
		backend = DefaultBackend
	}
	proto, err := render.NewBackend(backend)
	if err != nil {
		return 0, err
	}
	ext := render.Extension(proto)
	log := g.logger()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, reticle.NewPathError("mkdir", dir, err)
	}

	jobs := make([]job, len(pairs))
	for i, p := range pairs {
		jobs[i] = job{
			index: i,
			pair:  p,
			path:  filepath.Join(dir, ArtifactName(g.Template.Size, p.Rim, p.Arm, ext)),
		}
	}

	if g.Workers > 1 {
		err = g.runParallel(ctx, backend, jobs, len(pairs))
	} else {
		err = g.runSequential(ctx, backend, jobs, len(pairs))
	}
	if err != nil {
		return 0, err
	}

	log.Info("batch: generated", "count", len(pairs), "dir", dir, "backend", backend)
	return len(pairs), nil
}

func (g *Generator) runSequential(ctx context.Context, backend string, jobs []job, total int) error {
	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.render(backend, j); err != nil {
			return err
		}
		g.report(j.index+1, total, j.path)
	}
	return nil
}

// runParallel renders the last job for each distinct path, so duplicate
// names still resolve to the last pair in the list.
func (g *Generator) runParallel(ctx context.Context, backend string, jobs []job, total int) error {
	last := make(map[string]int, len(jobs))
	for i, j := range jobs {
		last[j.path] = i
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.Workers)
	progress := make(chan job)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for j := range progress {
			g.report(j.index+1, total, j.path)
		}
	}()

	for i, j := range jobs {
		if last[j.path] != i {
			continue
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := g.render(backend, j); err != nil {
				return err
			}
			progress <- j
			return nil
		})
	}
	err := eg.Wait()
	close(progress)
	<-done
	return err
}

func (g *Generator) render(backend string, j job) error {
	cfg := g.Template.WithColors(j.pair.Rim.Opaque(), j.pair.Arm.Opaque())
	if err := render.Save(backend, reticle.BuildScene(cfg), j.path); err != nil {
		return fmt.Errorf("batch: pair %d (%s,%s): %w", j.index+1, j.pair.Rim, j.pair.Arm, err)
	}
	g.logger().Debug("batch: wrote artifact", "index", j.index+1, "path", j.path)
	return nil
}

func (g *Generator) report(done, total int, path string) {
	if g.Progress != nil {
		g.Progress(done, total, path)
	}
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return reticle.Logger()
}

// RunCSV parses every pair in csvPath before writing anything, then
// generates the batch into dir.
func (g *Generator) RunCSV(ctx context.Context, csvPath, dir string) (int, error) {
	pairs, err := LoadPairs(csvPath)
	if err != nil {
		return 0, err
	}
	return g.Generate(ctx, pairs, dir)
}
