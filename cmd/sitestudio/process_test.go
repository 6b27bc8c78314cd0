package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/sitestudio/internal/site"
)

func TestProcess_JSONWithOverrides(t *testing.T) {
	home := setupHome(t)

	businessFile := filepath.Join(home, "business.yaml")
	writeFile(t, businessFile, "businessName: Chez Nous\nphone: \"(555) 000-1111\"\n")

	output, err := executeCommand(t, "process", "restaurant",
		"--business", businessFile,
		"--set", "tagline=Open late",
		"--variant", "home/home-highlights=alternating",
	)
	require.NoError(t, err)

	var cfg site.SiteConfig
	require.NoError(t, json.Unmarshal([]byte(output), &cfg))
	require.Equal(t, "restaurant", cfg.TemplateID)
	require.Equal(t, "Chez Nous", cfg.Metadata.Title)
	require.Equal(t, "(555) 000-1111", cfg.Business.Phone)
	require.Equal(t, "Open late", cfg.Business.Tagline)
	require.Equal(t, "12 Market Street", cfg.Business.Address)

	home0, ok := cfg.Page("home")
	require.True(t, ok)
	require.Equal(t, "alternating", home0.Sections[1].Variant)
	require.Equal(t, "Welcome to Chez Nous", home0.Sections[0].Content["title"])
}

func TestProcess_YAMLOutput(t *testing.T) {
	setupHome(t)

	output, err := executeCommand(t, "process", "saas", "--format", "yaml")
	require.NoError(t, err)

	var cfg site.SiteConfig
	require.NoError(t, yaml.Unmarshal([]byte(output), &cfg))
	require.Equal(t, "saas", cfg.TemplateID)
	require.NotEmpty(t, cfg.Pages)
}

func TestProcess_Errors(t *testing.T) {
	setupHome(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown template", args: []string{"process", "bakery"}, want: "template not found"},
		{name: "bad format", args: []string{"process", "restaurant", "--format", "toml"}, want: `unknown format "toml"`},
		{name: "bad set", args: []string{"process", "restaurant", "--set", "businessName"}, want: "expected key=value"},
		{name: "bad variant syntax", args: []string{"process", "restaurant", "--variant", "home-highlights=list"}, want: "expected page/section=variant"},
		{name: "unregistered variant", args: []string{"process", "restaurant", "--variant", "home/home-highlights=spiral"}, want: "not a registered features variant"},
		{name: "unknown section", args: []string{"process", "restaurant", "--variant", "home/nope=list"}, want: `unknown section "nope"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, tt.args...)
			require.ErrorContains(t, err, tt.want)
		})
	}
}
