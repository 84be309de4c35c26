package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"vkhello/internal/config"
	"vkhello/internal/platform"
	"vkhello/internal/platform/platformtest"
	tu "vkhello/internal/testutil"
	appver "vkhello/internal/version"
)

func clearEnv(t *testing.T) func() {
	return tu.ClearEnv(t, config.EnvDebug, config.EnvWidth, config.EnvHeight, config.EnvTitle)
}

func newFlagCmd(f *runFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	f.bind(cmd.Flags())
	return cmd
}

// execute runs a fresh command tree with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRunFlags_OverrideOnlyWhenSet(t *testing.T) {
	defer clearEnv(t)()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("width: 1024\nheight: 768\ntitle: File\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var f runFlags
	cmd := newFlagCmd(&f)
	args := []string{"--config", path, "--height", "600", "--layer", "A", "--layer", "B", "--debug=false", "--timestamps"}
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, err := f.resolve(cmd.Flags())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Width != 1024 || cfg.Height != 600 || cfg.Title != "File" || cfg.Debug || !cfg.Timestamps {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if len(cfg.Layers) != 2 || cfg.Layers[0] != "A" || cfg.Layers[1] != "B" {
		t.Fatalf("layers = %v", cfg.Layers)
	}
}

func TestRunFlags_InvalidSize(t *testing.T) {
	defer clearEnv(t)()
	var f runFlags
	cmd := newFlagCmd(&f)
	args := []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--width", "-1"}
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := f.resolve(cmd.Flags()); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestRootCommand_RunsWithPlatform(t *testing.T) {
	defer clearEnv(t)()
	fake := &platformtest.Fake{CloseAfter: 0}
	old := newPlatform
	newPlatform = func() platform.Platform { return fake }
	defer func() { newPlatform = old }()

	out, err := execute(t, "--config", filepath.Join(t.TempDir(), "none.yaml"), "--width", "640", "--height", "480")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !fake.Terminated || !fake.InstanceDestroyed {
		t.Fatalf("platform not released: %v", fake.Calls)
	}
	if !strings.Contains(out, "Safely Shut Down") {
		t.Fatalf("missing shutdown line:\n%s", out)
	}
}

func TestRootCommand_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	defer clearEnv(t)()
	path := filepath.Join(t.TempDir(), "none.yaml")
	if _, err := execute(t, "config", "--config", path, "--title", "First", "--width", "640"); err != nil {
		t.Fatalf("first execute: %v", err)
	}
	out, err := execute(t, "config", "--config", path)
	if err != nil {
		t.Fatalf("second execute: %v", err)
	}
	if !strings.Contains(out, "title: Vulkan") || !strings.Contains(out, "width: 2560") {
		t.Fatalf("flags from the first run leaked:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.TrimSpace(out) != appver.AppVersion {
		t.Fatalf("version output = %q", out)
	}
}

func TestConfigCommand(t *testing.T) {
	defer clearEnv(t)()
	path := filepath.Join(t.TempDir(), "none.yaml")
	out, err := execute(t, "config", "--config", path, "--title", "Triangle", "--timestamps")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "# config file: "+path) || !strings.Contains(out, "title: Triangle") {
		t.Fatalf("unexpected config output:\n%s", out)
	}
	if !strings.Contains(out, "timestamps: true") {
		t.Fatalf("timestamps flag not applied:\n%s", out)
	}
}
