package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "sitestudio",
		Short:         "Sitestudio turns industry templates and business details into site configs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Path to a sitestudio.yaml config file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newTemplatesCmd(flags))
	cmd.AddCommand(newProcessCmd(flags))
	cmd.AddCommand(newVariantsCmd(flags))
	cmd.AddCommand(newPresetsCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
