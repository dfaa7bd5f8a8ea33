// Package app wires the text buffer, shell, script runner and configuration
// into the textedit program and manages its lifecycle.
package app

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/Skp2331/Console-Text-Editor/internal/config"
	"github.com/Skp2331/Console-Text-Editor/internal/script"
	"github.com/Skp2331/Console-Text-Editor/internal/shell"
)

// Application owns one document and everything that operates on it.
type Application struct {
	mu sync.Mutex

	cfg     *config.Config
	logger  *Logger
	logFile *os.File

	doc     *Document
	shell   *shell.Shell
	scripts *script.Runner
	watcher *config.Watcher

	shutdownOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty uses
	// config.DefaultPath.
	ConfigPath string

	// LogLevel overrides logging.level when non-empty.
	LogLevel string

	// Debug forces debug logging.
	Debug bool

	// ScriptPath is a Lua script run before the menu starts.
	ScriptPath string

	// Input, Output and LogOutput default to the process streams.
	Input     io.Reader
	Output    io.Writer
	LogOutput io.Writer

	// Clipboard replaces the OS clipboard when clipboard.system is on.
	Clipboard SystemClipboard

	// DisableWatch turns off config live reload.
	DisableWatch bool
}

// New creates an Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}
	if app.opts.Input == nil {
		app.opts.Input = os.Stdin
	}
	if app.opts.Output == nil {
		app.opts.Output = os.Stdout
	}
	if app.opts.LogOutput == nil {
		app.opts.LogOutput = os.Stderr
	}
	if app.opts.ConfigPath == "" {
		app.opts.ConfigPath = config.DefaultPath()
	}

	if err := app.bootstrap(); err != nil {
		app.closeLog()
		return nil, err
	}
	return app, nil
}

// Document returns the document being edited.
func (app *Application) Document() *Document {
	return app.doc
}

// Config returns the configuration currently in effect.
func (app *Application) Config() *config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.cfg
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Run runs the startup script, if any, then the interactive menu until the
// user exits, input ends, or ctx is done.
func (app *Application) Run(ctx context.Context) error {
	app.startWatcher(ctx)

	if app.opts.ScriptPath != "" {
		if app.scripts == nil {
			return NewOperationError("script", app.opts.ScriptPath, ErrScriptsDisabled)
		}
		app.logger.Info("running startup script %s", app.opts.ScriptPath)
		if err := app.scripts.Run(ctx, app.opts.ScriptPath); err != nil {
			return NewOperationError("script", app.opts.ScriptPath, err)
		}
	}

	app.logger.WithField("doc", app.doc.ID).Info("session started")
	return app.shell.Run(ctx)
}

// Shutdown stops background work and releases resources. Safe to call
// more than once.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		if app.watcher != nil {
			if err := app.watcher.Close(); err != nil {
				app.logger.Warn("closing config watcher: %v", err)
			}
		}
		if app.doc.IsModified() {
			app.logger.WithField("doc", app.doc.ID).Warn("exiting with unsaved changes")
		}
		app.logger.Debug("shutdown complete")
		app.closeLog()
	})
}

func (app *Application) closeLog() {
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}
