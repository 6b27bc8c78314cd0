package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at link time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type buildInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"goVersion" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
}

func currentBuildInfo() buildInfo {
	return buildInfo{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := currentBuildInfo()
			out := cmd.OutOrStdout()

			switch format {
			case "text":
				fmt.Fprintln(out, headingStyle.Render("Sitestudio "+info.Version))
				fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("commit %s, built %s, %s %s", info.Commit, info.Date, info.GoVersion, info.Platform)))
				return nil
			case "json", "yaml":
				return encode(out, format, info)
			default:
				return newCommandError("show version", "validating flags", fmt.Errorf("unknown format %q", format), "Use --format text, json or yaml.")
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")

	return cmd
}
