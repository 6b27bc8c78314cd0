package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPreview_Stdout(t *testing.T) {
	setupHome(t)

	output, err := executeCommand(t, "preview", "restaurant", "--set", "businessName=Chez Nous")
	require.NoError(t, err)
	require.Contains(t, output, "<title>Home | Chez Nous</title>")
	require.Contains(t, output, "Welcome to Chez Nous")
	require.Contains(t, output, "--color-primary: #2563EB;")
}

func TestPreview_FileWithPreset(t *testing.T) {
	home := setupHome(t)
	out := filepath.Join(home, "menu.html")

	output, err := executeCommand(t, "preview", "restaurant", "--page", "menu", "--preset", "bold-sunset", "--out", out)
	require.NoError(t, err)
	require.Contains(t, output, "Wrote "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	html := string(data)
	require.Contains(t, html, "tabs--pills")
	require.Contains(t, html, "--color-primary: #E11D48;")

	payload := listPresetsJSON(t)
	require.Equal(t, "modern-blue", payload.Current)
}

func TestPreview_Errors(t *testing.T) {
	setupHome(t)

	_, err := executeCommand(t, "preview", "restaurant", "--page", "blog")
	require.ErrorContains(t, err, `page "blog" not found`)

	_, err = executeCommand(t, "preview", "restaurant", "--preset", "neon")
	require.ErrorContains(t, err, "preset not found")
}

func TestPreview_FileWriteFailures(t *testing.T) {
	home := setupHome(t)

	missingDir := filepath.Join(home, "missing", "home.html")
	output, err := executeCommand(t, "preview", "restaurant", "--out", missingDir)
	require.ErrorContains(t, err, "writing "+missingDir)
	require.NotContains(t, output, "Wrote")

	out := filepath.Join(home, "blog.html")
	output, err = executeCommand(t, "preview", "restaurant", "--page", "blog", "--out", out)
	require.ErrorContains(t, err, `page "blog" not found`)
	require.NotContains(t, output, "Wrote")
	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr))
}
