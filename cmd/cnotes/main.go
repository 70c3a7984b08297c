package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dferreira/cnotes/internal/config"
	"github.com/dferreira/cnotes/internal/content"
	"github.com/dferreira/cnotes/internal/docs"
	"github.com/dferreira/cnotes/internal/scaffold"
	"github.com/dferreira/cnotes/internal/server"
	"github.com/dferreira/cnotes/internal/site"
	"github.com/dferreira/cnotes/internal/ux"
	"github.com/dustin/go-humanize"
	cli "github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:        "cnotes",
		Usage:       "Build and publish the C arrays study notes page",
		Description: "Run 'cnotes docs' for documentation on configuration, content, builds, and serving.",
		Version:     site.Version,
		Commands: []*cli.Command{
			initCmd(),
			buildCmd(),
			checkCmd(),
			verifyCmd(),
			serveCmd(),
			topicsCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "Build the page into the output directory",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Site file to load (default: site.yaml at the project root)"},
			&cli.StringFlag{Name: "out", Usage: "Write output here instead of output-dir"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root, err := findProjectRoot()
			if err != nil {
				return err
			}
			configPath := filepath.Join(root, config.DefaultFile)
			if path := cmd.String("config"); path != "" {
				abs, err := filepath.Abs(path)
				if err != nil {
					return err
				}
				configPath, root = abs, filepath.Dir(abs)
			}
			cfg, err := config.Load(configPath, root)
			if err != nil {
				return err
			}
			if out := cmd.String("out"); out != "" {
				cfg.OutputDir = out
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			b := &site.Builder{Config: cfg, Root: root, Topics: content.All()}
			start := time.Now()
			man, err := b.Build(ctx)
			if err != nil {
				return err
			}
			ux.BuildComplete(len(man.Stages), time.Since(start))

			fmt.Printf("\n  %sOutput%s  %s\n", ux.Bold, ux.Reset, b.OutputDir())
			for _, f := range man.Files {
				fmt.Printf("    %-20s %s%s%s\n", f.Path, ux.Dim, humanize.Bytes(uint64(f.Bytes)), ux.Reset)
			}
			fmt.Printf("\n  %sBuild%s   %s%s%s (%d topics, %d subtopics, %s total)\n\n",
				ux.Bold, ux.Reset, ux.Dim, man.BuildID, ux.Reset,
				man.Topics, man.Subtopics, humanize.Bytes(uint64(man.TotalBytes())))
			return nil
		},
	}
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate the content model without building",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			topics := content.All()
			if err := content.Validate(topics); err != nil {
				return err
			}
			st := content.Tally(topics)
			fmt.Printf("\n%s%s✓ Content model is sound%s\n\n", ux.Bold, ux.Green, ux.Reset)
			ux.Checked(fmt.Sprintf("%d topics, %d subtopics", st.Topics, st.Subtopics))
			ux.Checked(fmt.Sprintf("%d notes, %d code samples", st.Notes, st.Samples))
			ux.Checked("every heading has a unique, well-formed anchor")
			fmt.Println()
			return nil
		},
	}
}

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Check a built output directory against the content model",
		ArgsUsage: "[dir]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.Args().First()
			if dir == "" {
				root, err := findProjectRoot()
				if err != nil {
					return err
				}
				cfg, err := config.Load(filepath.Join(root, config.DefaultFile), root)
				if err != nil {
					return err
				}
				dir = cfg.OutputDir
				if !filepath.IsAbs(dir) {
					dir = filepath.Join(root, dir)
				}
			}

			if err := site.VerifyDir(dir, content.All()); err != nil {
				return err
			}

			fmt.Printf("\n%s%s✓ %s matches the content model%s\n\n", ux.Bold, ux.Green, dir, ux.Reset)
			if man, err := site.LoadManifest(dir); err == nil {
				fmt.Printf("  built %s by %s (build %s%s%s)\n\n",
					humanize.Time(man.BuiltAt), man.Generator, ux.Dim, man.BuildID, ux.Reset)
			}
			return nil
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Build the page, then serve it locally",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "port", Usage: "Port to listen on (overrides serve.port)"},
			&cli.BoolFlag{Name: "no-build", Usage: "Serve the existing output without rebuilding"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root, err := findProjectRoot()
			if err != nil {
				return err
			}
			cfg, err := config.Load(filepath.Join(root, config.DefaultFile), root)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			if !cmd.Bool("no-build") {
				b := &site.Builder{Config: cfg, Root: root, Topics: content.All()}
				if _, err := b.Build(ctx); err != nil {
					return err
				}
			}

			port := cfg.Serve.Port
			if p := cmd.Int("port"); p > 0 {
				port = int(p)
			}
			dir := cfg.OutputDir
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(root, dir)
			}

			fmt.Printf("\n%sServing%s %s on %shttp://localhost:%d%s (Ctrl-C to stop)\n\n",
				ux.Bold, ux.Reset, dir, ux.Cyan, port, ux.Reset)

			p := &server.Preview{Dir: dir, Port: port}
			return p.Run(ctx)
		},
	}
}

func topicsCmd() *cli.Command {
	return &cli.Command{
		Name:      "topics",
		Usage:     "List the guide's headings and anchors",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			key := cmd.Args().First()
			if key == "" {
				ux.RenderTopics(content.All())
				return nil
			}
			topic, err := content.Find(key)
			if err != nil {
				return err
			}
			ux.RenderTopic(topic)
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a project with site.yaml and a stylesheet",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'cnotes docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

// findProjectRoot walks up from cwd looking for site.yaml. Projects without
// one are legal (defaults apply), so the walk falls back to cwd instead of
// failing.
func findProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, config.DefaultFile)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}
