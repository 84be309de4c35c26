// Package app opens a window, creates a Vulkan instance and idles until
// the window closes, leaving a checkpoint at every phase transition.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"

	"vkhello/internal/config"
	"vkhello/internal/diag"
	"vkhello/internal/platform"
)

// ErrInstanceCreation is returned when the graphics instance cannot be
// created.
var ErrInstanceCreation = errors.New("failed to create instance")

var version1 = platform.MakeVersion(1, 0, 0)

// App runs the bootstrap phases. Each phase owns its logger; all phases
// share one Recorder.
type App struct {
	cfg      config.Config
	platform platform.Platform
	rec      *diag.Recorder

	initLog    *diag.Logger
	loopLog    *diag.Logger
	cleanupLog *diag.Logger

	glfwUp   bool
	window   platform.Window
	instance platform.Instance
}

type options struct {
	out     io.Writer
	profile *termenv.Profile
}

// Option configures an App.
type Option func(*options)

// WithLogOutput directs phase logger output to w.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithColorProfile forces the phase loggers' color profile.
func WithColorProfile(p termenv.Profile) Option {
	return func(o *options) { o.profile = &p }
}

func newOptions(opts []Option) options {
	o := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// logger builds the logger for tag, honoring the configured color and
// timestamp settings.
func (o options) logger(cfg config.Config, tag string, enabled bool, def diag.Color) *diag.Logger {
	logOpts := []diag.LoggerOption{
		diag.WithOutput(o.out),
		diag.WithTimestamp(cfg.Timestamps),
	}
	if o.profile != nil {
		logOpts = append(logOpts, diag.WithColorProfile(*o.profile))
	}
	return diag.NewLogger(tag, enabled, cfg.Color(tag, def), logOpts...)
}

// New returns an App that reports checkpoints to rec.
func New(cfg config.Config, p platform.Platform, rec *diag.Recorder, opts ...Option) *App {
	o := newOptions(opts)
	return &App{
		cfg:        cfg,
		platform:   p,
		rec:        rec,
		initLog:    o.logger(cfg, "INIT", cfg.Debug, diag.Green),
		loopLog:    o.logger(cfg, "MAIN_LOOP", cfg.Debug, diag.Blue),
		cleanupLog: o.logger(cfg, "CLEANUP", cfg.Debug, diag.Yellow),
	}
}

// Run executes initWindow, initVulkan, mainLoop and cleanup in order.
// On failure the resources created so far are released without leaving a
// checkpoint, so the Recorder still points at the failing phase.
func (a *App) Run(ctx context.Context) error {
	if err := a.initWindow(); err != nil {
		a.release()
		return fmt.Errorf("init window: %w", err)
	}
	if err := a.initVulkan(); err != nil {
		a.release()
		return fmt.Errorf("init vulkan: %w", err)
	}
	a.mainLoop(ctx)
	a.cleanup()
	return nil
}

// mark notes msg on the shared Recorder and emits it on l.
func (a *App) mark(l *diag.Logger, msg string) {
	a.rec.Note(msg)
	l.Emit(msg)
}

func (a *App) initWindow() error {
	a.mark(a.initLog, "Beginning initialization of GLFW")
	if err := a.platform.Init(); err != nil {
		return err
	}
	a.glfwUp = true
	a.mark(a.initLog, "initialized GLFW successfully")

	w, err := a.platform.CreateWindow(a.cfg.Width, a.cfg.Height, a.cfg.Title)
	if err != nil {
		return err
	}
	a.window = w
	a.mark(a.initLog, "created GLFW window successfully")
	return nil
}

func (a *App) initVulkan() error {
	a.mark(a.initLog, "Beginning initialization of Vulkan")
	return a.createInstance()
}

func (a *App) createInstance() error {
	a.mark(a.initLog, "Creating instance")
	inst, err := a.platform.CreateInstance(platform.InstanceInfo{
		ApplicationName:    a.cfg.ApplicationName,
		ApplicationVersion: version1,
		EngineName:         a.cfg.EngineName,
		EngineVersion:      version1,
		APIVersion:         version1,
		Layers:             a.cfg.Layers,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInstanceCreation, err)
	}
	a.instance = inst
	a.mark(a.initLog, "Successfully Created instance")
	return nil
}

// mainLoop polls window events until the window is closed or ctx ends.
func (a *App) mainLoop(ctx context.Context) {
	a.mark(a.loopLog, "Entering main loop")
	for !a.window.ShouldClose() {
		if ctx.Err() != nil {
			a.loopLog.Emitf("Interrupted: %v", context.Cause(ctx))
			break
		}
		a.platform.PollEvents()
	}
	a.mark(a.loopLog, "Safe exit from main loop")
}

func (a *App) cleanup() {
	a.mark(a.cleanupLog, "Cleaning up program")
	a.release()
}

// release destroys the instance, the window and the window system, in
// that order, skipping whatever was never created.
func (a *App) release() {
	if a.instance != nil {
		a.instance.Destroy()
		a.instance = nil
	}
	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}
	if a.glfwUp {
		a.platform.Terminate()
		a.glfwUp = false
	}
}
