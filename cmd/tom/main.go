package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/medaskca/tom/internal/auth"
	"github.com/medaskca/tom/internal/httpserver"
	"github.com/medaskca/tom/internal/scope"
	"github.com/medaskca/tom/internal/tui"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

var _ httpserver.Navigator = (*tui.Bridge)(nil)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/tom/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("TOM - Theatre Operations Manager\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, v, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger writes to the configured log file; the terminal belongs to the
// TUI. Falls back to stderr when the file cannot be opened.
func newLogger(cfg appConfig) (*slog.Logger, io.Closer) {
	lvl, _ := parseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: lvl}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err == nil {
			f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err == nil {
				return slog.New(slog.NewTextHandler(f, opts)), f
			}
		}
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts)), io.NopCloser(nil)
}

// logScopeChanges records every later change of the dashboard flags
// provided in ctx.
func logScopeChanges(ctx context.Context, log *slog.Logger) {
	scope.Hospital.MustFrom(ctx).Subscribe(func(v string) {
		log.Info("hospital changed", "hospital", v)
	})
	scope.DataSource.MustFrom(ctx).Subscribe(func(v string) {
		log.Info("data source changed", "data_source", v)
	})
	scope.Listening.MustFrom(ctx).Subscribe(func(on bool) {
		log.Info("listening changed", "listening", on)
	})
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

func run(cfg appConfig, v *viper.Viper) error {
	logger, closer := newLogger(cfg)
	defer closer.Close()
	logger.Info("starting", "version", version, "config", cfg.ConfigPath)

	skin, err := tui.LoadSkin(cfg.Skin, cfg.ConfigDir)
	if err != nil {
		logger.Warn("failed to load skin, using default", "skin", cfg.Skin, "error", err)
	} else {
		tui.ApplySkin(skin)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	ctx, cells := scope.ProvideAll(ctx)
	if len(cfg.Hospitals) > 0 {
		cells.Hospital.Set(cfg.Hospitals[0])
	}
	if len(cfg.DataSources) > 0 {
		cells.DataSource.Set(cfg.DataSources[0])
	}
	logScopeChanges(ctx, logger.With("component", "scope"))

	dashboard := tui.NewDashboardModel(tui.DashboardOptions{
		CompactWidth: cfg.CompactWidth,
		InitialWidth: terminalWidth(),
		Scope:        cells,
		Hospitals:    cfg.Hospitals,
		DataSources:  cfg.DataSources,
		Logger:       logger.With("component", "dashboard"),
	})
	bridge := tui.NewBridge(dashboard)

	var pages []tui.Page
	if cfg.AuthURL != "" {
		client, err := auth.NewClient(cfg.AuthURL,
			auth.WithTimeout(cfg.LoginTimeout),
			auth.WithLogger(logger.With("component", "auth")))
		if err != nil {
			return fmt.Errorf("configuring auth: %w", err)
		}
		pages = append(pages, tui.NewLoginPage(client, cfg.LoginTimeout, dashboard.SetUser, logger.With("component", "login")))
	}
	profile, err := tui.NewProfilePage(ctx, dashboard.User)
	if err != nil {
		return err
	}
	pages = append(pages, tui.NewDashboardPage(dashboard), profile)
	app := tui.NewApp(logger, pages...)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	bridge.Attach(p)

	if cfg.ConfigPath != "" {
		watchConfig(v, cfg.ConfigDir, func(msg tui.ConfigReloadedMsg) { p.Send(msg) }, logger.With("component", "config"))
	}

	if cfg.APIEnabled {
		api := httpserver.NewServer(cfg.APIAddr, bridge, logger.With("component", "api"))
		if err := api.Start(); err != nil {
			return fmt.Errorf("starting control API on %s: %w", cfg.APIAddr, err)
		}
		defer api.Stop()
	}

	// Use errgroup for concurrent goroutine lifecycle management.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		if err == nil || errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	})

	g.Go(func() error {
		<-gctx.Done()
		p.Quit()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}
