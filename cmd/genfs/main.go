package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/Tarun-Mittal-cell/genfs/internal/config"
	"github.com/Tarun-Mittal-cell/genfs/internal/docs"
	"github.com/Tarun-Mittal-cell/genfs/internal/export"
	"github.com/Tarun-Mittal-cell/genfs/internal/fence"
	"github.com/Tarun-Mittal-cell/genfs/internal/scaffold"
	"github.com/Tarun-Mittal-cell/genfs/internal/session"
	"github.com/Tarun-Mittal-cell/genfs/internal/source"
	"github.com/Tarun-Mittal-cell/genfs/internal/ux"
	"github.com/Tarun-Mittal-cell/genfs/internal/vfs"
)

func main() {
	app := &cli.Command{
		Name:        "genfs",
		Usage:       "Reconstruct a live virtual file system from a code-generation stream",
		Description: "Run 'genfs docs' for documentation on fences, naming, sources, and config.",
		Commands: []*cli.Command{
			runCmd(),
			inspectCmd(),
			initCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func runCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Stream generation output and build the file tree live",
		ArgsUsage: "[transcript file, or - for stdin]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "genfs.yaml", Usage: "Config file path"},
			&cli.StringFlag{Name: "url", Usage: "Stream from an HTTP endpoint instead of a file"},
			&cli.BoolFlag{Name: "sse", Usage: "Treat the input as a text/event-stream feed"},
			&cli.IntFlag{Name: "chunk-size", Usage: "Bytes per read for raw sources"},
			&cli.StringFlag{Name: "export", Usage: "Export directory (overrides config)"},
			&cli.BoolFlag{Name: "no-export", Usage: "Skip writing files when the session completes"},
			&cli.BoolFlag{Name: "live", Usage: "Repaint the file tree on every chunk"},
			&cli.BoolFlag{Name: "preview", Usage: "Print highlighted file contents after completion"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.LoadOrDefault(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			log, err := buildLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer log.Sync()

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			chunkSize := int(cmd.Int("chunk-size"))
			if chunkSize == 0 {
				chunkSize = cfg.ChunkSize
			}
			sse := cmd.Bool("sse") || cfg.Source.Format == "sse"

			src, closeSrc, err := openSource(ctx, cmd.Args().First(), cmd.String("url"), cfg, chunkSize, sse, log)
			if err != nil {
				return err
			}
			defer closeSrc()

			live := cmd.Bool("live")
			var publish session.Publisher
			if live {
				publish = func(snap session.Snapshot) {
					ux.ClearScreen(os.Stdout)
					ux.RenderTree(os.Stdout, snap)
				}
			}

			mgr := session.NewManager(log)
			_, done := mgr.Start(ctx, src, publish)
			res := <-done

			if !live || res.Snapshot.Status == session.StatusErrored {
				ux.RenderTree(os.Stdout, res.Snapshot)
			}
			ux.RenderSummary(os.Stdout, res.Snapshot)

			if res.Err != nil {
				return res.Err
			}

			if !cmd.Bool("no-export") {
				dir := cmd.String("export")
				if dir == "" {
					dir = cfg.ExportDir
				}
				if err := export.Write(dir, res.Snapshot); err != nil {
					return fmt.Errorf("exporting session: %w", err)
				}
				fmt.Printf("%sexported to %s/%s\n", ux.Dim, dir, ux.Reset)
			}

			if cmd.Bool("preview") || cfg.Preview {
				for _, f := range res.Snapshot.Files {
					ux.Preview(os.Stdout, f)
				}
			}
			return nil
		},
	}
}

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Parse a saved transcript and print the resulting file tree",
		ArgsUsage: "<transcript file, or - for stdin>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "preview", Usage: "Print highlighted file contents"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			arg := cmd.Args().First()
			if arg == "" {
				return fmt.Errorf("transcript argument is required")
			}

			var data []byte
			var err error
			if arg == "-" {
				data, err = io.ReadAll(os.Stdin)
			} else {
				data, err = os.ReadFile(arg)
			}
			if err != nil {
				return fmt.Errorf("reading transcript: %w", err)
			}

			blocks := fence.Extract(string(data))
			files := vfs.Synthesize(blocks, string(data), vfs.NewAllocator())
			for _, f := range files {
				f.Status = vfs.StatusCompleted
			}
			dirs, byDir := vfs.Group(files)

			snap := session.Snapshot{
				SessionID:   uuid.NewString(),
				Status:      session.StatusCompleted,
				Files:       files,
				DirsOrdered: dirs,
				ByDir:       byDir,
				Stats:       session.Stats{Chunks: 1, Bytes: len(data), Blocks: len(blocks)},
			}
			ux.RenderTree(os.Stdout, snap)

			if cmd.Bool("preview") {
				for _, f := range files {
					ux.Preview(os.Stdout, f)
				}
			}
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create genfs.yaml and an example transcript in the current directory",
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
					fmt.Printf("  %-12s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'genfs docs <topic>' to read a topic.")
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

// openSource resolves the input precedence: --url flag, positional file
// ("-" for stdin), then the config's source.url.
func openSource(ctx context.Context, fileArg, urlFlag string, cfg *config.Config, chunkSize int, sse bool, log *zap.Logger) (source.Source, func() error, error) {
	url := urlFlag
	if url == "" && fileArg == "" {
		url = cfg.Source.URL
	}

	if url != "" {
		src, err := source.OpenHTTP(ctx, nil, url, chunkSize, sse)
		if err != nil {
			return nil, nil, err
		}
		return src, src.Close, nil
	}

	if fileArg == "" {
		return nil, nil, fmt.Errorf("nothing to read: pass a transcript file, -, or --url")
	}

	var r io.Reader = os.Stdin
	closer := func() error { return nil }
	if fileArg != "-" {
		f, err := os.Open(fileArg)
		if err != nil {
			return nil, nil, fmt.Errorf("opening transcript: %w", err)
		}
		r = f
		closer = f.Close
	}

	if sse {
		return source.NewSSESource(r, log), closer, nil
	}
	return source.NewReaderSource(r, chunkSize), closer, nil
}

// buildLogger maps the config log level onto a zap logger writing to stderr.
func buildLogger(level string) (*zap.Logger, error) {
	if level == "quiet" {
		return zap.NewNop(), nil
	}
	zcfg := zap.NewDevelopmentConfig()
	switch level {
	case "debug":
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	default:
		zcfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	return zcfg.Build()
}
