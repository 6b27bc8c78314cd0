package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newVariantsCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "variants",
		Short: "Inspect registered component variants",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list [section-type]",
		Short: "List component families, or the variants of one family",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return newCommandError("list variants", "initialising", err, "Check your sitestudio configuration.")
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if len(args) == 0 {
				fmt.Fprintln(writer, "TYPE\tDEFAULT\tVARIANTS\tDESCRIPTION")
				for _, meta := range app.Variants.List() {
					fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", meta.Name, meta.DefaultVariant, strings.Join(app.Variants.Variants(meta.Name), ", "), meta.Description)
				}
				return writer.Flush()
			}

			meta, ok := app.Variants.Metadata(args[0])
			if !ok {
				return newCommandError("list variants", fmt.Sprintf("looking up section type %q", args[0]), errors.New("no component registered"), "Run 'sitestudio variants list' to see registered types.")
			}
			fmt.Fprintln(writer, "ID\tNAME\tDESCRIPTION")
			for _, v := range meta.Variants {
				name := v.Name
				if v.ID == meta.DefaultVariant {
					name += " (default)"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\n", v.ID, name, v.Description)
			}
			return writer.Flush()
		},
	})

	return cmd
}
