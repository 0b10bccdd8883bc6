package main

import (
	"github.com/spf13/cobra"
)

// rootFlags are the flags shared by the root command.
type rootFlags struct {
	configPath string
	verbose    bool
	noBrowser  bool
	ports      []int
	provider   string
	model      string
}

// newRootCmd builds the command tree. The root command starts the UI.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "cofounder",
		Short: "AI Co-Founder: expert feedback on startup ideas",
		Long: `cofounder serves a local web page with four panels (role analysis,
idea builder, pitch judge and motivation). Each panel turns its form fields
into a prompt, sends it to the configured generation service and shows the
reply. The server binds the first free port from the candidate list and
opens it in the browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().BoolVar(&flags.noBrowser, "no-browser", false, "do not open the browser")
	cmd.Flags().IntSliceVar(&flags.ports, "ports", nil, "candidate ports in order (default 7861,8080,8000,5000,3000,9000,8888,7860)")
	cmd.Flags().StringVar(&flags.provider, "provider", "", "generation provider: gemini or openai")
	cmd.Flags().StringVar(&flags.model, "model", "", "model name for the provider")

	cmd.AddCommand(newRolesCmd())
	cmd.AddCommand(newVersionCmd())
	return cmd
}
