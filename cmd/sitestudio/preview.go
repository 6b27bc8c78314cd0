package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type previewOptions struct {
	session sessionFlags
	page    string
	preset  string
	out     string
}

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <template-id>",
		Short: "Render one page of a processed template as HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, flags, args[0], opts)
		},
	}

	opts.session.register(cmd)
	cmd.Flags().StringVarP(&opts.page, "page", "p", "", "Page id to render (defaults to the first page)")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "Theme preset for this preview (the saved choice is unchanged)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write HTML to this file instead of stdout")

	return cmd
}

func runPreview(cmd *cobra.Command, flags *rootFlags, templateID string, opts *previewOptions) error {
	app, err := newAppContext(cmd, flags)
	if err != nil {
		return newCommandError("render preview", "initialising", err, "Check your sitestudio configuration.")
	}
	tpl, ok := app.Templates.Get(templateID)
	if !ok {
		return unknownTemplateError("render preview", templateID)
	}

	s := app.NewStudio()
	if err := opts.session.apply(cmd.Context(), s, templateID); err != nil {
		return newCommandError("render preview", "applying business fields", err, "Check the --business, --set and --variant values.")
	}
	if opts.preset != "" {
		if err := s.PreviewPreset(cmd.Context(), opts.preset); err != nil {
			return unknownPresetError("render preview", opts.preset)
		}
	}

	pageID := opts.page
	if pageID == "" {
		pageID = tpl.Pages[0].ID
	}

	if opts.out == "" {
		if err := s.Preview(cmd.OutOrStdout(), pageID); err != nil {
			return previewRenderError(pageID, err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := s.Preview(&buf, pageID); err != nil {
		return previewRenderError(pageID, err)
	}
	if err := os.WriteFile(opts.out, buf.Bytes(), 0o644); err != nil {
		return newCommandError("render preview", fmt.Sprintf("writing %s", opts.out), err, "Check that the directory exists and is writable.")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", opts.out)
	return nil
}

func previewRenderError(pageID string, err error) error {
	return newCommandError("render preview", fmt.Sprintf("rendering page %q", pageID), err, "Check the page id with 'sitestudio templates show'.")
}
