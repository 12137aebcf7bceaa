package main

import (
	"github.com/spf13/cobra"

	"github.com/talonhub/talonfmt/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "talonfmt",
		Short:         "Canonical formatter for parsed Talon voice-command files",
		Version:       version.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newFormatCmd())

	return root
}
