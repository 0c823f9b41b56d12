package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/app"
	"github.com/marcus/folio/internal/config"
	"github.com/marcus/folio/internal/plugin"
	"github.com/marcus/folio/internal/plugins/portfolio"
	"github.com/marcus/folio/internal/styles"
	"golang.org/x/term"
)

// Version is set at build time via ldflags.
var Version = ""

// Static render size when stdout is not a terminal.
const (
	fallbackWidth  = 100
	fallbackHeight = 30
)

type options struct {
	configPath string
	debug      bool
	logPath    string
	view       string
	print      bool
	version    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("folio", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to config file (.json, .yaml)")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	fs.StringVar(&opts.logPath, "log", "", `log file ("-" for stderr, default from config)`)
	fs.StringVar(&opts.view, "view", "", "initial layout: grid, list or bubble")
	fs.BoolVar(&opts.print, "print", false, "render once to stdout and exit")
	fs.BoolVar(&opts.version, "version", false, "print version and exit")
	err := fs.Parse(args)
	return opts, err
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "folio %s\n", effectiveVersion(Version))
		return 0
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}

	level, _ := cfg.Log.SlogLevel()
	if opts.debug {
		level = slog.LevelDebug
	}
	logPath := cfg.Log.File
	if opts.logPath != "" {
		logPath = opts.logPath
	}
	logOut, closeLog, err := openLogFile(logPath, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
		return 1
	}
	defer closeLog()
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	if !styles.ApplyThemeWithOverrides(cfg.UI.Theme.Name, cfg.UI.Theme.Overrides) {
		logger.Warn("unknown theme, using default", "theme", cfg.UI.Theme.Name)
	}

	registry := plugin.NewRegistry(&plugin.Context{Config: cfg, Logger: logger})
	if err := registry.Register(portfolio.New()); err != nil {
		fmt.Fprintf(stderr, "Failed to start: %v\n", err)
		return 1
	}

	model := app.New(registry, cfg)

	interactive := isTerminal(stdout) && !opts.print
	if !interactive {
		width, height := terminalSize(stdout)
		fmt.Fprintln(stdout, renderStatic(model, width, height))
		return 0
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	logger.Info("starting", "version", effectiveVersion(Version))
	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		fmt.Fprintf(stderr, "Error running application: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(opts options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if opts.view != "" {
		cfg.UI.DefaultView = opts.view
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// openLogFile opens path for appending, creating its directory. "-" means
// stderr and "" discards logs.
func openLogFile(path string, stderr io.Writer) (io.Writer, func() error, error) {
	noop := func() error { return nil }
	switch path {
	case "":
		return io.Discard, noop, nil
	case "-":
		return stderr, noop, nil
	}

	path = config.ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}

// renderStatic sizes the model once and returns its view.
func renderStatic(m app.Model, width, height int) string {
	next, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return next.View()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalSize(w io.Writer) (int, int) {
	if f, ok := w.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil && width > 0 && height > 0 {
			return width, height
		}
	}
	return fallbackWidth, fallbackHeight
}

// effectiveVersion returns the ldflags version, else the module version from
// build info, else "devel".
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if mv := info.Main.Version; mv != "" && mv != "(devel)" {
			return mv
		}
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return "devel+" + s.Value[:7]
			}
		}
	}
	return "devel"
}
