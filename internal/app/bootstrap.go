package app

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/Skp2331/Console-Text-Editor/internal/config"
	"github.com/Skp2331/Console-Text-Editor/internal/script"
	"github.com/Skp2331/Console-Text-Editor/internal/shell"
	"github.com/Skp2331/Console-Text-Editor/internal/textbuffer"
)

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if err := config.ApplyEnv(cfg, config.EnvPrefix); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg

	// 2. Logger
	if err := app.setupLogger(); err != nil {
		return &InitError{Component: "logger", Err: err}
	}

	// 3. Document
	bufOpts := []textbuffer.Option{textbuffer.WithFileMode(cfg.FileMode())}
	if cfg.Clipboard.System {
		if mirror := app.clipboardMirror(); mirror != nil {
			bufOpts = append(bufOpts, textbuffer.WithClipboardHook(mirror.update))
		}
	}

	docID := NewDocumentID()
	docLog := app.logger.WithComponent("buffer").WithField("doc", docID)
	app.doc = NewDocument(docID, func(op string) {
		docLog.WithField("op", op).Debug("buffer changed")
	}, bufOpts...)

	// 4. Scripts
	if cfg.Script.Enabled {
		app.scripts = script.NewRunner(app.doc.Buffer,
			script.WithTimeout(cfg.ScriptTimeout()),
			script.WithSave(cfg.Script.AllowSave),
			script.WithOutput(app.opts.Output),
		)
		app.logger.Debug("script runner ready: %s", app.scripts)
	}

	// 5. Shell
	shellOpts := []shell.Option{
		shell.WithInput(app.opts.Input),
		shell.WithOutput(app.opts.Output),
		shell.WithPrompts(app.promptsEnabled()),
		shell.WithEmptyIndicator(cfg.Editor.EmptyIndicator),
		shell.WithLogger(app.logger.WithComponent("shell")),
		shell.WithSaveHook(app.doc.MarkSaved),
	}
	if app.scripts != nil {
		shellOpts = append(shellOpts, shell.WithScriptRunner(app.scripts))
	}
	app.shell = shell.New(app.doc.Buffer, shellOpts...)

	return nil
}

// setupLogger builds the logger from logging.* and the command-line overrides.
func (app *Application) setupLogger() error {
	level := app.cfg.Logging.Level
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}
	if app.opts.Debug {
		level = "debug"
	}

	out := app.opts.LogOutput
	if app.cfg.Logging.File != "" {
		f, err := os.OpenFile(app.cfg.Logging.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		app.logFile = f
		out = f
	}

	cfg := DefaultLoggerConfig()
	cfg.Level = ParseLogLevel(level)
	cfg.Output = out
	app.logger = NewLogger(cfg)
	return nil
}

// clipboardMirror returns the system clipboard mirror, or nil when no
// clipboard is available.
func (app *Application) clipboardMirror() *clipboardMirror {
	sys := app.opts.Clipboard
	if sys == nil {
		var err error
		sys, err = NewOSClipboard()
		if err != nil {
			app.logger.Warn("clipboard.system disabled: %v", err)
			return nil
		}
	}
	return &clipboardMirror{sys: sys, logger: app.logger.WithComponent("clipboard")}
}

// promptsEnabled resolves editor.prompts. In auto mode prompts are shown
// only when the input is a terminal.
func (app *Application) promptsEnabled() bool {
	switch app.cfg.Editor.Prompts {
	case config.PromptsAlways:
		return true
	case config.PromptsNever:
		return false
	}
	return isTerminal(app.opts.Input)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// startWatcher enables live reload of the config file when its directory
// exists.
func (app *Application) startWatcher(ctx context.Context) {
	if app.opts.DisableWatch || app.opts.ConfigPath == "" || app.watcher != nil {
		return
	}
	if _, err := os.Stat(filepath.Dir(app.opts.ConfigPath)); err != nil {
		app.logger.Debug("not watching config: %v", err)
		return
	}

	log := app.logger.WithComponent("config")
	w, err := config.Watch(ctx, app.opts.ConfigPath,
		app.applyConfig,
		func(err error) { log.Warn("config reload failed: %v", err) },
		config.WithEnvPrefix(config.EnvPrefix),
	)
	if err != nil {
		log.Warn("config watcher unavailable: %v", err)
		return
	}
	app.watcher = w
	log.Debug("watching %s", w.Path())
}

// applyConfig applies the settings that can change while running.
func (app *Application) applyConfig(cfg *config.Config) {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.opts.LogLevel == "" && !app.opts.Debug {
		app.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))
	}
	app.shell.SetEmptyIndicator(cfg.Editor.EmptyIndicator)

	if cfg.Clipboard.System != app.cfg.Clipboard.System || cfg.Script != app.cfg.Script {
		app.logger.Info("clipboard and script settings take effect on restart")
	}
	app.cfg = cfg
	app.logger.WithComponent("config").Info("configuration reloaded")
}
