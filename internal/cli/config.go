package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"vkhello/internal/config"
)

func newConfigCmd(flags *runFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long:  "Resolve defaults, the config file, VKHELLO_* environment variables and flags, then print the result as YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			path := flags.configPath
			if path == "" {
				path, _ = config.DefaultPath()
			}
			body, err := cfg.YAML()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			dim := lipgloss.NewRenderer(out).NewStyle().Faint(true)
			fmt.Fprintln(out, dim.Render("# config file: "+path))
			fmt.Fprint(out, body)
			return nil
		},
	}
}
