package theme

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	studioerrors "github.com/alexisbeaulieu97/sitestudio/pkg/errors"
)

//go:embed preset.schema.json
var presetSchema []byte

var presetSchemaLoader = gojsonschema.NewBytesLoader(presetSchema)

// ParsePresetJSON checks a preset document against the preset schema and
// decodes it. Field-level rules (color syntax, property names) are left to
// ValidatePreset.
func ParsePresetJSON(source string, data []byte) (Preset, error) {
	result, err := gojsonschema.Validate(presetSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return Preset{}, studioerrors.NewParseError(source, 0, err)
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			msgs[i] = desc.String()
		}
		return Preset{}, studioerrors.NewValidationError("preset", fmt.Sprintf("schema validation failed: %s", strings.Join(msgs, "; ")), nil)
	}

	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return Preset{}, studioerrors.NewParseError(source, 0, err)
	}
	return p, nil
}
