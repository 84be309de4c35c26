package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"vkhello/internal/config"
	"vkhello/internal/diag"
	"vkhello/internal/platform/platformtest"
)

func outLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func bootstrap(cfg config.Config, f *platformtest.Fake, out *bytes.Buffer) error {
	return Bootstrap(context.Background(), cfg, f, WithLogOutput(out), WithColorProfile(termenv.Ascii))
}

func TestBootstrap_SuccessDumpsTrail(t *testing.T) {
	var out bytes.Buffer
	f := &platformtest.Fake{CloseAfter: 1}
	if err := bootstrap(config.Default(), f, &out); err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}
	lines := outLines(out.String())
	// the dump follows the logged lines and ends with the shutdown checkpoint
	if last := lines[len(lines)-1]; last != "Safely Shut Down" {
		t.Fatalf("last line = %q\n%s", last, out.String())
	}
	if !strings.Contains(out.String(), "MAIN: Main Entry Point into Application") {
		t.Fatalf("missing main entry line:\n%s", out.String())
	}
}

func TestBootstrap_DebugOffIsQuiet(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Debug = false
	if err := bootstrap(cfg, &platformtest.Fake{CloseAfter: 0}, &out); err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("debug off produced output: %q", out.String())
	}
}

func TestBootstrap_CrashReport(t *testing.T) {
	var out bytes.Buffer
	cause := errors.New("VK_ERROR_INITIALIZATION_FAILED")
	err := bootstrap(config.Default(), &platformtest.Fake{InstanceErr: cause}, &out)
	if !errors.Is(err, cause) {
		t.Fatalf("err = %v, want %v", err, cause)
	}
	text := out.String()
	if !strings.Contains(text, "ERROR: Last known location was position Creating instance") {
		t.Fatalf("missing last location:\n%s", text)
	}
	if !strings.Contains(text, "VK_ERROR_INITIALIZATION_FAILED") {
		t.Fatalf("missing error text:\n%s", text)
	}
	lines := outLines(text)
	if last := lines[len(lines)-1]; last != "CRASH" {
		t.Fatalf("dump should end with CRASH, got %q", last)
	}
}

func TestBootstrap_CrashWithoutDebugStillReports(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Debug = false
	if err := bootstrap(cfg, &platformtest.Fake{WindowErr: errors.New("no monitor")}, &out); err == nil {
		t.Fatalf("expected error")
	}
	text := out.String()
	if !strings.Contains(text, "Last known location was position initialized GLFW successfully") {
		t.Fatalf("missing last location:\n%s", text)
	}
	if strings.Contains(text, "CRASH") {
		t.Fatalf("trail dumped with debug off:\n%s", text)
	}
}

func TestBootstrap_ConfiguredColorAndTimestamps(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Timestamps = true
	cfg.Colors = map[string]string{"MAIN": "green"}
	prof := termenv.ANSI
	err := Bootstrap(context.Background(), cfg, &platformtest.Fake{CloseAfter: 0}, WithLogOutput(&out), WithColorProfile(prof))
	if err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}
	first := outLines(out.String())[0]
	// 16-color green foreground replaces the default magenta
	if !strings.Contains(first, "32m") || strings.Contains(first, "35m") {
		t.Fatalf("MAIN line not green: %q", first)
	}
	if !strings.Contains(first, ":") || strings.HasPrefix(first, "MAIN") {
		t.Fatalf("expected timestamp before tag: %q", first)
	}
}

func TestReportCrash_ClearsTrail(t *testing.T) {
	var out bytes.Buffer
	rec := diag.NewRecorder(diag.WithDumpOutput(&out))
	rec.Note("a")
	errLog := diag.NewLogger("ERROR", true, diag.Red, diag.WithOutput(&out), diag.WithColorProfile(termenv.Ascii))
	ReportCrash(errLog, rec, errors.New("boom"), true)
	if rec.Len() != 0 {
		t.Fatalf("trail not cleared: %v", rec.Entries())
	}
	want := []string{"ERROR: Last known location was position a", "ERROR: boom", "a", "CRASH"}
	got := outLines(out.String())
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReportCrash_MultilineErrorStaysOnOneLine(t *testing.T) {
	var out bytes.Buffer
	rec := diag.NewRecorder(diag.WithDumpOutput(&out))
	errLog := diag.NewLogger("ERROR", true, diag.Red, diag.WithOutput(&out), diag.WithColorProfile(termenv.Ascii))
	err := fmt.Errorf("init vulkan: %w", errors.New("layer missing\nVK_LAYER_KHRONOS_validation"))
	ReportCrash(errLog, rec, err, false)
	got := outLines(out.String())
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(got), out.String())
	}
	if got[1] != `ERROR: init vulkan: layer missing\nVK_LAYER_KHRONOS_validation` {
		t.Fatalf("error line = %q", got[1])
	}
}
