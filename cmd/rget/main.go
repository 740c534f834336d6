package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/accelara/rget/internal/downloader"
)

// version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

var (
	osArgs = os.Args
	osExit = os.Exit
)

func main() {
	osExit(run(osArgs, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	if err := app.Run(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:            "rget",
		Usage:           "download a URL to a file named after its last path segment",
		ArgsUsage:       "<URL>",
		UsageText:       "rget [options] <URL>\n\nOptions must come before the URL; anything after it is read as another argument.",
		Version:         version,
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		// Errors are printed by run; keep cli from calling os.Exit itself.
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "hide the progress indicator",
				EnvVars: []string{"RGET_QUIET"},
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print status as JSON lines (implies --quiet)",
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"P"},
				Usage:   "save the file into `DIR` instead of the working directory",
				EnvVars: []string{"RGET_DIR"},
			},
			&cli.StringFlag{
				Name:    "proxy",
				Usage:   "HTTP/HTTPS proxy `URL` (default: from environment)",
				EnvVars: []string{"RGET_PROXY"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug information to stderr",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				if err := cli.ShowAppHelp(c); err != nil {
					return err
				}
				return fmt.Errorf("expected exactly one URL, got %d arguments", c.NArg())
			}
			return download(c, c.Args().First(), stdout, stderr)
		},
	}
}

func download(c *cli.Context, source string, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := downloader.Options{
		Dir:            c.String("dir"),
		Proxy:          c.String("proxy"),
		Quiet:          c.Bool("quiet"),
		StatusReporter: &downloader.ConsoleReporter{W: stdout, Color: colorize(stdout)},
		ProgressWriter: stderr,
		Logger:         logger,
	}
	if c.Bool("json") {
		opts.Quiet = true
		opts.StatusReporter = &downloader.JSONReporter{W: stdout}
	}

	dl := downloader.NewHTTPDownloader(source, opts)
	return dl.Download(context.Background())
}

// colorize is true only for a terminal stdout and when NO_COLOR is unset.
func colorize(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
