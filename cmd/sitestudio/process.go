package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type processOptions struct {
	session sessionFlags
	format  string
}

func newProcessCmd(flags *rootFlags) *cobra.Command {
	opts := &processOptions{}

	cmd := &cobra.Command{
		Use:   "process <template-id>",
		Short: "Resolve a template with business details into a site config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, flags, args[0], opts)
		},
	}

	opts.session.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format: json or yaml")

	return cmd
}

func runProcess(cmd *cobra.Command, flags *rootFlags, templateID string, opts *processOptions) error {
	if opts.format != "json" && opts.format != "yaml" {
		return newCommandError("process template", "validating flags", fmt.Errorf("unknown format %q", opts.format), "Use --format json or --format yaml.")
	}

	app, err := newAppContext(cmd, flags)
	if err != nil {
		return newCommandError("process template", "initialising", err, "Check your sitestudio configuration.")
	}
	if _, ok := app.Templates.Get(templateID); !ok {
		return unknownTemplateError("process template", templateID)
	}

	s := app.NewStudio()
	if err := opts.session.apply(cmd.Context(), s, templateID); err != nil {
		return newCommandError("process template", "applying business fields", err, "Check the --business, --set and --variant values.")
	}

	cfg, err := s.Config()
	if err != nil {
		return err
	}
	return encode(cmd.OutOrStdout(), opts.format, cfg)
}

func encode(w io.Writer, format string, value any) error {
	if format == "yaml" {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return err
		}
		return encoder.Close()
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
