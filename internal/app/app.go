package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/five82/plantview/internal/backdrop"
	"github.com/five82/plantview/internal/config"
	"github.com/five82/plantview/internal/prefs"
	"github.com/five82/plantview/internal/render"
	"github.com/five82/plantview/internal/renderer"
	"github.com/five82/plantview/internal/session"
	"github.com/five82/plantview/internal/ui"
)

// Options configure every plantview command.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/plantview/prefs.toml
	LogFile    string // overrides log_file from the config
	Debug      bool

	// Initial source, in order of precedence.
	URL  string // page URL or query string carrying the code parameter
	Code string // literal source
	File string // source file, "-" for stdin

	// Stdin is read when File is "-", or when StdinPiped is set and no
	// other source was given.
	Stdin      io.Reader
	StdinPiped bool
}

// env is the state shared by every command.
type env struct {
	cfg    config.Config
	logger *slog.Logger
	closer io.Closer
}

func (e env) Close() {
	if e.closer != nil {
		_ = e.closer.Close()
	}
}

// setup loads the config and opens the log. fallback receives logs when no
// log file is configured; nil discards them.
func setup(opts Options, fallback io.Writer) (env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return env{}, fmt.Errorf("load config: %w", err)
	}
	logPath := cfg.LogFile
	if opts.LogFile != "" {
		logPath = opts.LogFile
	}
	logger, closer, err := newLogger(logPath, opts.Debug, fallback)
	if err != nil {
		return env{}, err
	}
	return env{cfg: cfg, logger: logger, closer: closer}, nil
}

// Run boots the editor TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	e, err := setup(opts, nil)
	if err != nil {
		return err
	}
	defer e.Close()
	cfg, logger := e.cfg, e.logger

	caps := ui.DetectCapabilities(cfg.DownloadDir, cfg.Animation)
	logger.Debug("capabilities",
		"clipboard", caps.Clipboard,
		"downloads", caps.Downloads,
		"backdrop", caps.Backdrop,
	)

	var rain *backdrop.Rain
	var reinit session.Reinitializer
	if caps.Backdrop {
		rain = backdrop.New(backdropFor(cfg.DefaultTheme), uint64(time.Now().UnixNano()))
		reinit = rain
	}

	themes := session.NewThemeController(prefs.FileStore{Path: opts.PrefsPath}, reinit, logger)
	active := themes.Startup(cfg.DefaultTheme)
	if rain != nil {
		rain.Reinit(active.Backdrop)
	}

	pipeline := render.New(render.PlantUML, cfg.Links())
	sess := session.New(pipeline, themes, logger)
	if err := seed(sess, opts); err != nil {
		return err
	}

	logger.Info("plantview starting", "server", cfg.ServerURL, "theme", active.Key)
	return ui.Run(ui.Options{
		Context:      ctx,
		Session:      sess,
		Fetcher:      renderer.NewClient(cfg.Links()),
		Backdrop:     rain,
		Capabilities: caps,
		DownloadDir:  cfg.DownloadDir,
		FrameEvery:   cfg.FrameEvery,
		Logger:       logger,
		InputTTY:     opts.StdinPiped || opts.File == "-",
	})
}
