package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/xhgen/reticle"
	"github.com/xhgen/reticle/batch"
	"github.com/xhgen/reticle/render"
	"github.com/xhgen/reticle/render/raster"
	"github.com/xhgen/reticle/render/svg"
)

func templateFlags(file, name *string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Read the template from a .json, .yaml or .toml file",
			Aliases:     []string{"c"},
			Destination: file,
		},
		&cli.StringFlag{
			Name:        "profile",
			Usage:       "Read the template from a named workspace profile",
			Aliases:     []string{"p"},
			Destination: name,
		},
	}
}

// backendForPath picks the raster backend for .png files and SVG otherwise.
func backendForPath(p string) string {
	if strings.EqualFold(filepath.Ext(p), ".png") {
		return raster.Name
	}
	return svg.Name
}

// recolor replaces the RGB of c with hex, keeping c's alpha.
func recolor(c reticle.Color, hex string) (reticle.Color, error) {
	if hex == "" {
		return c, nil
	}
	spec, err := reticle.ParseColorSpec(hex)
	if err != nil {
		return c, err
	}
	return reticle.Color{R: spec.RGB[0], G: spec.RGB[1], B: spec.RGB[2], A: c.A}, nil
}

// variantPaths derives the light and dark file names written next to out.
func variantPaths(out string) (light, dark string) {
	ext := filepath.Ext(out)
	stem := strings.TrimSuffix(out, ext)
	return stem + "-light" + ext, stem + "-dark" + ext
}

// rasterExtras are render options only the PNG backend honors.
type rasterExtras struct {
	postProcess bool
	variants    bool
}

// writeRender renders cfg to out and returns the files written. PNG output
// goes through the raster backend directly so extras can reach it.
func writeRender(cfg reticle.Config, out string, x rasterExtras) ([]string, error) {
	scene := reticle.BuildScene(cfg)
	if backendForPath(out) != raster.Name {
		if x.postProcess || x.variants {
			return nil, fmt.Errorf("--post-process and --variants need a .png output, got %s", out)
		}
		if err := render.Save(svg.Name, scene, out); err != nil {
			return nil, err
		}
		return []string{out}, nil
	}

	var opts []raster.Option
	if x.postProcess {
		opts = append(opts, raster.WithPostProcess(cfg.BlurRadius, cfg.GlowRadius))
	}
	b := raster.NewBackend(opts...)
	if err := render.Play(scene, b); err != nil {
		return nil, err
	}
	if x.variants {
		light, dark := variantPaths(out)
		if err := b.SaveVariants(light, dark); err != nil {
			return nil, err
		}
		return []string{light, dark}, nil
	}
	if err := b.SaveToFile(out); err != nil {
		return nil, err
	}
	return []string{out}, nil
}

// progressPrinter reports each batch artifact on w.
func progressPrinter(w io.Writer) batch.Progress {
	return func(done, total int, path string) {
		printer.Fprintf(w, "[%d/%d] %s\n", done, total, path)
	}
}

func createRenderCommand(g *global) *cli.Command {
	var (
		file, name string
		out        string
		rim, arm   string
		extras     rasterExtras
	)
	flags := append(templateFlags(&file, &name),
		&cli.StringFlag{
			Name:        "out",
			Usage:       "Output file; .png renders pixels, anything else SVG (default: workspace preview)",
			Aliases:     []string{"o"},
			Destination: &out,
		},
		&cli.StringFlag{
			Name:        "rim",
			Usage:       "Override the rim color (RRGGBB)",
			Destination: &rim,
		},
		&cli.StringFlag{
			Name:        "arm",
			Usage:       "Override the arm color (RRGGBB)",
			Destination: &arm,
		},
		&cli.BoolFlag{
			Name:        "post-process",
			Usage:       "Apply the template's blur and glow radii (PNG only)",
			Destination: &extras.postProcess,
		},
		&cli.BoolFlag{
			Name:        "variants",
			Usage:       "Write tinted NAME-light.png and black NAME-dark.png instead of the composite (PNG only)",
			Destination: &extras.variants,
		},
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Render one reticle",
		Flags: flags,
		Action: func(c *cli.Context) error {
			cfg, err := loadTemplate(g, file, name)
			if err != nil {
				return err
			}
			if cfg.RimColor, err = recolor(cfg.RimColor, rim); err != nil {
				return err
			}
			if cfg.ArmColor, err = recolor(cfg.ArmColor, arm); err != nil {
				return err
			}
			if out == "" {
				out = g.ws().PreviewPath()
			}
			if dir := filepath.Dir(out); dir != "" {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return reticle.NewPathError("mkdir", dir, err)
				}
			}
			written, err := writeRender(cfg, out, extras)
			if err != nil {
				return err
			}
			for _, p := range written {
				printf("wrote %s\n", p)
			}
			return nil
		},
	}
}

func createBatchCommand(g *global) *cli.Command {
	var (
		file, name string
		csvPath    string
		dir        string
		format     string
		workers    int
	)
	flags := append(templateFlags(&file, &name),
		&cli.StringFlag{
			Name:        "csv",
			Usage:       "Color-pair list, one RIM,ARM row per line after a header (default: workspace list)",
			Destination: &csvPath,
		},
		&cli.StringFlag{
			Name:        "out",
			Usage:       "Output directory (default: workspace output)",
			Aliases:     []string{"o"},
			Destination: &dir,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Backend: " + strings.Join(render.Backends(), ", "),
			Aliases:     []string{"f"},
			Value:       batch.DefaultBackend,
			Destination: &format,
		},
		&cli.IntFlag{
			Name:        "workers",
			Usage:       "Render this many pairs concurrently",
			Aliases:     []string{"j"},
			Value:       1,
			Destination: &workers,
		},
	)

	return &cli.Command{
		Name:  "batch",
		Usage: "Render one reticle per color pair",
		Flags: flags,
		Action: func(c *cli.Context) error {
			cfg, err := loadTemplate(g, file, name)
			if err != nil {
				return err
			}
			ws := g.ws()
			if csvPath == "" {
				csvPath = ws.DefaultCSVPath()
			}
			if dir == "" {
				dir = ws.OutputDir
			}
			gen := &batch.Generator{
				Template: cfg,
				Backend:  format,
				Workers:  workers,
				Logger:   reticle.Logger(),
			}
			if g.verbose {
				gen.Progress = progressPrinter(os.Stdout)
			}
			n, err := gen.RunCSV(c.Context, csvPath, dir)
			if err != nil {
				return err
			}
			printf("generated %d reticles in %s\n", n, dir)
			return nil
		},
	}
}

func createPreviewCommand(g *global) *cli.Command {
	var (
		file, name string
		out        string
		side       int
	)
	flags := append(templateFlags(&file, &name),
		&cli.StringFlag{
			Name:        "out",
			Usage:       "Output PNG file",
			Aliases:     []string{"o"},
			Value:       "preview.png",
			Destination: &out,
		},
		&cli.IntFlag{
			Name:        "side",
			Usage:       "Thumbnail edge length in pixels",
			Value:       128,
			Destination: &side,
		},
	)

	return &cli.Command{
		Name:  "preview",
		Usage: "Write a scaled PNG thumbnail",
		Flags: flags,
		Action: func(c *cli.Context) error {
			cfg, err := loadTemplate(g, file, name)
			if err != nil {
				return err
			}
			img, err := raster.RenderPreview(cfg, side)
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return reticle.NewPathError("create", out, err)
			}
			if err := png.Encode(f, img); err != nil {
				f.Close()
				return reticle.NewPathError("write", out, err)
			}
			if err := f.Close(); err != nil {
				return reticle.NewPathError("close", out, err)
			}
			printf("wrote %dx%d preview to %s\n", side, side, out)
			return nil
		},
	}
}

func createDefaultsCommand() *cli.Command {
	var format string
	return &cli.Command{
		Name:  "defaults",
		Usage: "Print the default configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Encoding: json, yaml or toml",
				Aliases:     []string{"f"},
				Value:       "json",
				Destination: &format,
			},
		},
		Action: func(c *cli.Context) error {
			f, err := reticle.ParseFormat(format)
			if err != nil {
				return err
			}
			return reticle.EncodeConfig(os.Stdout, reticle.DefaultConfig(), f)
		},
	}
}

func createProfileCommand(g *global) *cli.Command {
	var file string
	var format string

	return &cli.Command{
		Name:  "profile",
		Usage: "Manage named workspace profiles",
		Subcommands: []*cli.Command{
			{
				Name:      "save",
				Usage:     "Store a config file (or the defaults) as a named profile",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "config",
						Usage:       "Config file to store",
						Aliases:     []string{"c"},
						Destination: &file,
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("profile save: expected one NAME argument")
					}
					cfg := reticle.DefaultConfig()
					if file != "" {
						var err error
						if cfg, err = reticle.LoadConfig(file); err != nil {
							return err
						}
					}
					p, err := g.ws().SaveProfile(c.Args().First(), cfg)
					if err != nil {
						return err
					}
					printf("saved %s\n", p)
					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "Print a named profile",
				ArgsUsage: "NAME",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "Encoding: json, yaml or toml",
						Aliases:     []string{"f"},
						Value:       "json",
						Destination: &format,
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("profile show: expected one NAME argument")
					}
					f, err := reticle.ParseFormat(format)
					if err != nil {
						return err
					}
					cfg, err := g.ws().LoadProfile(c.Args().First())
					if err != nil {
						return err
					}
					return reticle.EncodeConfig(os.Stdout, cfg, f)
				},
			},
			{
				Name:      "delete",
				Usage:     "Remove a named profile",
				ArgsUsage: "NAME",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("profile delete: expected one NAME argument")
					}
					p, err := g.ws().DeleteProfile(c.Args().First())
					if err != nil {
						return err
					}
					printf("deleted %s\n", p)
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List stored profiles",
				Action: func(c *cli.Context) error {
					names, err := g.ws().Profiles()
					if err != nil {
						return err
					}
					for _, n := range names {
						fmt.Println(n)
					}
					printf("%d profiles\n", len(names))
					return nil
				},
			},
		},
	}
}
