package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const bakeryTemplate = `id: bakery
name: Bakery
category: food
placeholders:
  businessName: Crumb & Co
pages:
  - id: home
    title: Home
    path: /
    sections:
      - type: hero
        content:
          title: "{businessName}"
          subtitle: Fresh at {openingTime}
`

func TestTemplatesList_TableOutput(t *testing.T) {
	setupHome(t)

	output, err := executeCommand(t, "templates", "list")
	require.NoError(t, err)
	require.Contains(t, output, "ID")
	require.Contains(t, output, "restaurant")
	require.Contains(t, output, "saas")
	require.Contains(t, output, "agency")
	require.Contains(t, output, "fitness")
}

func TestTemplatesList_JSONByCategory(t *testing.T) {
	setupHome(t)

	output, err := executeCommand(t, "templates", "list", "--category", "food", "--json")
	require.NoError(t, err)

	var payload templatesJSONPayload
	require.NoError(t, json.Unmarshal([]byte(output), &payload))
	require.Equal(t, 1, payload.Count)
	require.Equal(t, "restaurant", payload.Templates[0].ID)
	require.Equal(t, 3, payload.Templates[0].Pages)
	require.Contains(t, payload.Categories, "food")
}

func TestTemplatesList_UnknownCategory(t *testing.T) {
	setupHome(t)

	output, err := executeCommand(t, "templates", "list", "--category", "automotive")
	require.NoError(t, err)
	require.Contains(t, output, `No templates in category "automotive"`)
}

func TestTemplatesShow(t *testing.T) {
	setupHome(t)

	output, err := executeCommand(t, "templates", "show", "restaurant")
	require.NoError(t, err)
	require.Contains(t, output, "id: restaurant")
	require.Contains(t, output, "Welcome to {businessName}")

	_, err = executeCommand(t, "templates", "show", "bakery")
	require.ErrorContains(t, err, "template not found")
}

func TestTemplatesLint(t *testing.T) {
	home := setupHome(t)

	output, err := executeCommand(t, "templates", "lint", "restaurant")
	require.NoError(t, err)
	require.Contains(t, output, "restaurant: no issues")

	dir := filepath.Join(home, "templates")
	writeFile(t, filepath.Join(dir, "bakery.yaml"), bakeryTemplate)
	t.Setenv("SITESTUDIO_TEMPLATES_DIR", dir)

	output, err = executeCommand(t, "templates", "lint", "bakery")
	require.Error(t, err)
	require.Contains(t, output, "placeholder {openingTime} has no value")

	output, err = executeCommand(t, "templates", "lint", "bakery", "--set", "openingTime=7am")
	require.NoError(t, err)
	require.Contains(t, output, "bakery: no issues")
}
