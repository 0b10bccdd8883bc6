package main

import (
	"fmt"

	"ai-cofounder/internal/features/advisor/domain"

	"github.com/spf13/cobra"
)

func newRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List the expert roles available for role analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, role := range domain.Roles() {
				instruction, _ := domain.Instruction(role)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n  %s\n", role, instruction)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cofounder %s\n", Version)
		},
	}
}
