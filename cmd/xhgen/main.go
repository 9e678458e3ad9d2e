// Command xhgen renders reticles to SVG or PNG, one at a time or in batches
// from a CSV list of rim/arm color pairs.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/xhgen/reticle"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandling(cancel)

	app := createCliApp()
	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupSignalHandling(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()
}

// global holds flags shared by every command.
type global struct {
	workspace string
	verbose   bool
}

func createCliApp() *cli.App {
	g := &global{}
	return &cli.App{
		Name:  "xhgen",
		Usage: "Procedural crosshair reticle generator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "workspace",
				Usage:       "Workspace base directory (default: ~/" + reticle.UserBaseSuffix + ")",
				Aliases:     []string{"w"},
				EnvVars:     []string{"XHGEN_WORKSPACE"},
				Destination: &g.workspace,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "Log every artifact and scene at debug level",
				Aliases:     []string{"v"},
				Destination: &g.verbose,
			},
		},
		Before: func(c *cli.Context) error {
			level := slog.LevelInfo
			if g.verbose {
				level = slog.LevelDebug
			}
			reticle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
		Commands: []*cli.Command{
			createRenderCommand(g),
			createBatchCommand(g),
			createPreviewCommand(g),
			createDefaultsCommand(),
			createProfileCommand(g),
		},
	}
}

// ws resolves the workspace from the flag or the user's home.
func (g *global) ws() reticle.Workspace {
	if g.workspace != "" {
		return reticle.NewWorkspace(g.workspace)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return reticle.UserWorkspace(home)
}

// printer formats counts for the terminal.
var printer = message.NewPrinter(language.English)

func printf(format string, args ...any) {
	printer.Fprintf(os.Stdout, format, args...)
}

// loadTemplate returns the normalized config from a profile file, a named
// workspace profile, or the defaults, in that order of preference.
func loadTemplate(g *global, file, name string) (reticle.Config, error) {
	var (
		cfg reticle.Config
		err error
	)
	switch {
	case file != "" && name != "":
		return reticle.Config{}, fmt.Errorf("--config and --profile are mutually exclusive")
	case file != "":
		cfg, err = reticle.LoadConfig(file)
	case name != "":
		cfg, err = g.ws().LoadProfile(name)
	default:
		cfg = reticle.DefaultConfig()
	}
	if err != nil {
		return reticle.Config{}, err
	}
	return cfg.Normalize(), nil
}
