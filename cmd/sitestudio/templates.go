package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/sitestudio/internal/catalog"
)

type templatesListOptions struct {
	category   string
	jsonOutput bool
}

func newTemplatesCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Browse and check site templates",
	}

	cmd.AddCommand(newTemplatesListCmd(flags))
	cmd.AddCommand(newTemplatesShowCmd(flags))
	cmd.AddCommand(newTemplatesLintCmd(flags))

	return cmd
}

func newTemplatesListCmd(flags *rootFlags) *cobra.Command {
	opts := &templatesListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return newCommandError("list templates", "initialising", err, "Check your sitestudio configuration.")
			}
			return runTemplatesList(cmd, app.Templates, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "Only show templates in this category")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type templateSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Description  string   `json:"description,omitempty"`
	IndustryTags []string `json:"industryTags,omitempty"`
	Pages        int      `json:"pages"`
}

type templatesJSONPayload struct {
	Count      int               `json:"count"`
	Categories []string          `json:"categories"`
	Templates  []templateSummary `json:"templates"`
}

func runTemplatesList(cmd *cobra.Command, reg *catalog.Registry, opts *templatesListOptions) error {
	templates := reg.List()
	if opts.category != "" {
		templates = reg.ByCategory(opts.category)
	}

	summaries := make([]templateSummary, len(templates))
	for i, tpl := range templates {
		summaries[i] = templateSummary{
			ID:           tpl.ID,
			Name:         tpl.Name,
			Category:     tpl.Category,
			Description:  tpl.Description,
			IndustryTags: tpl.IndustryTags,
			Pages:        len(tpl.Pages),
		}
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(templatesJSONPayload{Count: len(summaries), Categories: reg.Categories(), Templates: summaries})
	}

	if len(summaries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No templates in category %q.\n", opts.category)
		fmt.Fprintf(cmd.OutOrStdout(), "\nAvailable categories: %s\n", strings.Join(reg.Categories(), ", "))
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tCATEGORY\tPAGES\tDESCRIPTION")
	for _, s := range summaries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%d\t%s\n", s.ID, s.Name, s.Category, s.Pages, s.Description)
	}
	return writer.Flush()
}

func newTemplatesShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <template-id>",
		Short: "Print a template as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return newCommandError("show template", "initialising", err, "Check your sitestudio configuration.")
			}
			tpl, ok := app.Templates.Get(args[0])
			if !ok {
				return unknownTemplateError("show template", args[0])
			}

			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(tpl); err != nil {
				return err
			}
			return encoder.Close()
		},
	}
}

func newTemplatesLintCmd(flags *rootFlags) *cobra.Command {
	session := &sessionFlags{}

	cmd := &cobra.Command{
		Use:   "lint <template-id>",
		Short: "Report placeholders a template leaves unresolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return newCommandError("lint template", "initialising", err, "Check your sitestudio configuration.")
			}
			if _, ok := app.Templates.Get(args[0]); !ok {
				return unknownTemplateError("lint template", args[0])
			}

			s := app.NewStudio()
			if err := session.apply(cmd.Context(), s, args[0]); err != nil {
				return newCommandError("lint template", "applying business fields", err, "Check the --business, --set and --variant values.")
			}
			issues, err := s.Lint()
			if err != nil {
				return err
			}

			if len(issues) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no issues\n", args[0])
				return nil
			}
			for _, issue := range issues {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], issue)
			}
			return newCommandError("lint template", args[0], fmt.Errorf("%d issue(s) found", len(issues)), "Add the missing placeholders to the template or pass them with --set.")
		},
	}

	session.register(cmd)
	return cmd
}

func unknownTemplateError(operation, id string) error {
	return newCommandError(operation, fmt.Sprintf("looking up template %q", id), errors.New("template not found"), "Run 'sitestudio templates list' to see available templates.")
}
