package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/sitestudio/internal/theme"
	"github.com/alexisbeaulieu97/sitestudio/pkg/diff"
)

func newPresetsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage theme presets",
	}

	cmd.AddCommand(newPresetsListCmd(flags))
	cmd.AddCommand(newPresetsShowCmd(flags))
	cmd.AddCommand(newPresetsSaveCmd(flags))
	cmd.AddCommand(newPresetsDeleteCmd(flags))
	cmd.AddCommand(newPresetsUseCmd(flags))
	cmd.AddCommand(newPresetsModeCmd(flags))
	cmd.AddCommand(newPresetsCSSCmd(flags))
	cmd.AddCommand(newPresetsDiffCmd(flags))

	return cmd
}

type presetsListOptions struct {
	category   string
	jsonOutput bool
}

func newPresetsListCmd(flags *rootFlags) *cobra.Command {
	opts := &presetsListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List standard and custom presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return newCommandError("list presets", "initialising", err, "Check your sitestudio configuration.")
			}

			presets := app.Presets.All()
			if opts.category != "" {
				presets = app.Presets.ByCategory(opts.category)
			}
			current := app.Presets.CurrentPresetID()

			if opts.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(struct {
					Current string         `json:"current"`
					Mode    theme.Mode     `json:"mode"`
					Presets []theme.Preset `json:"presets"`
				}{Current: current, Mode: app.Presets.Mode(), Presets: presets})
			}

			tty := isTerminal(cmd.OutOrStdout())
			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(writer, "\tID\tNAME\tCATEGORY\tPRIMARY")
			for _, p := range presets {
				marker := " "
				if p.ID == current {
					marker = "*"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s%s\n", marker, p.ID, p.Name, p.Category, swatch(p.Colors.Light.Primary, tty), p.Colors.Light.Primary)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "Only show presets in this category")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newPresetsShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <preset-id>",
		Short: "Show a preset's tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return newCommandError("show preset", "initialising", err, "Check your sitestudio configuration.")
			}
			p, ok := app.Presets.ByID(args[0])
			if !ok {
				return unknownPresetError("show preset", args[0])
			}
			renderPreset(cmd, p)
			return nil
		},
	}
}

func renderPreset(cmd *cobra.Command, p theme.Preset) {
	out := cmd.OutOrStdout()
	tty := isTerminal(out)

	fmt.Fprintln(out, headingStyle.Render(fmt.Sprintf("%s (%s)", p.Name, p.ID)))
	fmt.Fprintf(out, "Category: %s\n", p.Category)
	if p.Description != "" {
		fmt.Fprintln(out, mutedStyle.Render(p.Description))
	}

	for _, mode := range []theme.Mode{theme.ModeLight, theme.ModeDark} {
		fmt.Fprintln(out, sectionStyle.Render(fmt.Sprintf("Colors (%s)", mode)))
		palette := p.Palette(mode)
		colors := []struct{ name, value string }{
			{"primary", palette.Primary},
			{"secondary", palette.Secondary},
			{"accent", palette.Accent},
			{"background", palette.Background},
			{"foreground", palette.Foreground},
			{"muted", palette.Muted},
			{"border", palette.Border},
		}
		for _, c := range colors {
			if c.value == "" {
				continue
			}
			fmt.Fprintf(out, "  %s%-11s %s\n", swatch(c.value, tty), c.name, c.value)
		}
	}

	fmt.Fprintln(out, sectionStyle.Render("Typography"))
	fmt.Fprintf(out, "  heading  %s\n  body     %s\n", p.Typography.Heading, p.Typography.Body)
	if p.Typography.Mono != "" {
		fmt.Fprintf(out, "  mono     %s\n", p.Typography.Mono)
	}
}

func newPresetsSaveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "save <preset-file>",
		Short: "Save a custom preset from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return newCommandError("save preset", "initialising", err, "Check your sitestudio configuration.")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return newCommandError("save preset", fmt.Sprintf("reading %s", args[0]), err, "Check that the file exists and you have permission to read it.")
			}
			p, err := theme.ParsePresetJSON(args[0], data)
			if err != nil {
				return newCommandError("save preset", fmt.Sprintf("parsing %s", args[0]), err, "Preset files are JSON objects with name, colors and typography.")
			}
			if p.Category == "" {
				p.Category = theme.CategoryCustom
			}

			saved, err := app.Presets.SaveCustomPreset(p)
			if err != nil {
				return newCommandError("save preset", "validating preset", err, "Fix the reported fields and try again.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %s\n", saved.ID)
			return nil
		},
	}
}

func newPresetsDeleteCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <preset-id>",
		Short: "Delete a custom preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return newCommandError("delete preset", "initialising", err, "Check your sitestudio configuration.")
			}
			found, err := app.Presets.DeleteCustomPreset(args[0])
			if err != nil {
				return newCommandError("delete preset", "updating preset storage", err, "Check the data directory permissions.")
			}
			if !found {
				return newCommandError("delete preset", fmt.Sprintf("looking up custom preset %q", args[0]), errors.New("custom preset not found"), "Only custom presets can be deleted. Run 'sitestudio presets list --category custom'.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %s\n", args[0])
			return nil
		},
	}
}

func newPresetsUseCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "use <preset-id>",
		Short: "Make a preset the current one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return newCommandError("use preset", "initialising", err, "Check your sitestudio configuration.")
			}
			if err := app.NewStudio().SelectPreset(cmd.Context(), args[0]); err != nil {
				return newCommandError("use preset", fmt.Sprintf("selecting %q", args[0]), err, "Run 'sitestudio presets list' to see available presets.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current preset: %s\n", args[0])
			return nil
		},
	}
}

func newPresetsModeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "mode <light|dark|system>",
		Short:     "Set the color mode",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.ModeLight), string(theme.ModeDark), string(theme.ModeSystem)},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return newCommandError("set mode", "initialising", err, "Check your sitestudio configuration.")
			}
			if err := app.NewStudio().SetMode(cmd.Context(), theme.Mode(args[0])); err != nil {
				return newCommandError("set mode", fmt.Sprintf("applying %q", args[0]), err, "Use light, dark or system.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Mode: %s\n", args[0])
			return nil
		},
	}
}

func newPresetsCSSCmd(flags *rootFlags) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "css [preset-id]",
		Short: "Print the CSS custom properties of a preset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return newCommandError("render css", "initialising", err, "Check your sitestudio configuration.")
			}

			p := app.Presets.Current()
			if len(args) == 1 {
				var ok bool
				if p, ok = app.Presets.ByID(args[0]); !ok {
					return unknownPresetError("render css", args[0])
				}
			}

			m := app.Presets.Mode()
			if mode != "" {
				m = theme.Mode(mode)
				if !m.Valid() {
					return newCommandError("render css", "validating flags", fmt.Errorf("unknown mode %q", mode), "Use light, dark or system.")
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), presetCSS(p, m, app.Config.CSSPrefix))
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Color mode (defaults to the saved mode)")

	return cmd
}

func newPresetsDiffCmd(flags *rootFlags) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "diff <preset-id> <other-preset-id>",
		Short: "Show how the CSS variables of two presets differ",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return newCommandError("diff presets", "initialising", err, "Check your sitestudio configuration.")
			}

			m := theme.Mode(mode)
			if !m.Valid() {
				return newCommandError("diff presets", "validating flags", fmt.Errorf("unknown mode %q", mode), "Use light, dark or system.")
			}

			css := make([][]byte, len(args))
			for i, id := range args {
				p, ok := app.Presets.ByID(id)
				if !ok {
					return unknownPresetError("diff presets", id)
				}
				css[i] = []byte(presetCSS(p, m, app.Config.CSSPrefix))
			}

			out := diff.Unified(css[0], css[1], args[0], args[1])
			if out == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s and %s produce identical variables\n", args[0], args[1])
				return nil
			}
			added, removed := diff.Changed(css[0], css[1])
			fmt.Fprint(cmd.OutOrStdout(), out)
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(fmt.Sprintf("%d added, %d removed", added, removed)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", string(theme.ModeLight), "Color mode to compare")

	return cmd
}

// presetCSS materializes p into a fresh root and renders it.
func presetCSS(p theme.Preset, mode theme.Mode, prefix string) string {
	root := theme.NewRoot()
	theme.NewApplier(root, prefix).Apply(p, mode)
	return root.CSS()
}

func unknownPresetError(operation, id string) error {
	return newCommandError(operation, fmt.Sprintf("looking up preset %q", id), errors.New("preset not found"), "Run 'sitestudio presets list' to see available presets.")
}
