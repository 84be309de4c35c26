package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"vkhello/internal/app"
	"vkhello/internal/config"
	"vkhello/internal/system"
)

// newRootCmd builds the command tree with fresh flag state.
func newRootCmd() *cobra.Command {
	flags := &runFlags{}
	root := &cobra.Command{
		Use:   "vkhello",
		Short: "vkhello – open a window and create a Vulkan instance",
		Long: "vkhello initializes GLFW, opens a window, creates a Vulkan instance and " +
			"idles until the window closes, logging every phase.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			return app.Bootstrap(cmd.Context(), cfg, newPlatform(), app.WithLogOutput(cmd.OutOrStdout()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.bind(root.PersistentFlags())
	root.AddCommand(newVersionCmd(), newConfigCmd(flags))
	return root
}

// Execute runs the CLI.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		system.Logger.Error(err)
		os.Exit(1)
	}
}

// runFlags holds command-line overrides of the file/env configuration.
type runFlags struct {
	configPath string
	debug      bool
	width      int
	height     int
	title      string
	layers     []string
	timestamps bool
}

func (f *runFlags) bind(fs *pflag.FlagSet) {
	d := config.Default()
	fs.StringVar(&f.configPath, "config", "", "config file (default <user config dir>/vkhello/config.yaml)")
	fs.BoolVar(&f.debug, "debug", d.Debug, "emit phase logs and dump checkpoints")
	fs.IntVar(&f.width, "width", d.Width, "window width")
	fs.IntVar(&f.height, "height", d.Height, "window height")
	fs.StringVar(&f.title, "title", d.Title, "window title")
	fs.StringSliceVar(&f.layers, "layer", nil, "instance layer to enable (repeatable)")
	fs.BoolVar(&f.timestamps, "timestamps", d.Timestamps, "prefix phase log lines with the time of day")
}

// resolve loads the configuration and applies the flags that were set
// explicitly on fs.
func (f *runFlags) resolve(fs *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	if fs.Changed("debug") {
		cfg.Debug = f.debug
	}
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	if fs.Changed("title") {
		cfg.Title = f.title
	}
	if fs.Changed("timestamps") {
		cfg.Timestamps = f.timestamps
	}
	if fs.Changed("layer") {
		cfg.Layers = append([]string(nil), f.layers...)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	system.SetDebug(cfg.Debug)
	system.Logger.Debug("configuration resolved", "width", cfg.Width, "height", cfg.Height, "layers", len(cfg.Layers))
	return cfg, nil
}
