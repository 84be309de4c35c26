package app

import (
	"context"

	"vkhello/internal/config"
	"vkhello/internal/diag"
	"vkhello/internal/platform"
)

// Bootstrap runs an App on p with a fresh Recorder, logging the entry and
// shutdown on the MAIN logger. On failure the last checkpoint and the full
// trail are reported before the error is returned.
func Bootstrap(ctx context.Context, cfg config.Config, p platform.Platform, opts ...Option) error {
	o := newOptions(opts)
	rec := diag.NewRecorder(diag.WithDumpOutput(o.out))
	mainLog := o.logger(cfg, "MAIN", cfg.Debug, diag.Magenta)
	rec.Note("Main Entry Point into Application")
	mainLog.Emit("Main Entry Point into Application")

	a := New(cfg, p, rec, opts...)
	if err := a.Run(ctx); err != nil {
		errLog := o.logger(cfg, "ERROR", true, diag.Red)
		ReportCrash(errLog, rec, err, cfg.Debug)
		return err
	}
	if cfg.Debug {
		rec.Note("Safely Shut Down")
		mainLog.Emit("Safely Shut Down")
		rec.Dump(cfg.Debug)
	}
	return nil
}

// ReportCrash prints where the program last was, marks the crash in the
// trail and dumps it when verbose.
func ReportCrash(errLog *diag.Logger, rec *diag.Recorder, err error, verbose bool) {
	errLog.Emit("Last known location was position " + rec.Last())
	rec.Note("CRASH")
	errLog.Emit(err.Error())
	rec.Dump(verbose)
}
