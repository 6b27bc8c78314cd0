package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/sitestudio/internal/config"
	"github.com/alexisbeaulieu97/sitestudio/internal/site"
	studioerrors "github.com/alexisbeaulieu97/sitestudio/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseTemplate decodes and validates a single template document.
func ParseTemplate(path string, data []byte) (site.SiteTemplate, error) {
	var tpl site.SiteTemplate
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return site.SiteTemplate{}, studioerrors.NewParseError(path, extractLine(err), err)
	}
	normalizeContent(&tpl)

	if err := ValidateTemplate(tpl); err != nil {
		return site.SiteTemplate{}, err
	}

	return tpl, nil
}

// normalizeContent rewrites nested mappings with non-string keys, which yaml
// decodes as map[any]any, into map[string]any.
func normalizeContent(tpl *site.SiteTemplate) {
	for i := range tpl.Pages {
		for j := range tpl.Pages[i].Sections {
			section := &tpl.Pages[i].Sections[j]
			section.Content = site.CloneContent(section.Content)
		}
	}
}

// ParseTemplateFile loads a template document from disk.
func ParseTemplateFile(path string) (site.SiteTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return site.SiteTemplate{}, studioerrors.NewParseError(path, 0, err)
	}
	return ParseTemplate(path, data)
}

// LoadDir parses every .yaml/.yml document directly inside dir, sorted by
// file name.
func LoadDir(fsys fs.FS, dir string) ([]site.SiteTemplate, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading template directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	templates := make([]site.SiteTemplate, 0, len(names))
	for _, name := range names {
		file := path.Join(dir, name)
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, studioerrors.NewParseError(file, 0, err)
		}
		tpl, err := ParseTemplate(file, data)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}

	return templates, nil
}

// ValidateTemplate performs structural and cross-field validation.
func ValidateTemplate(tpl site.SiteTemplate) error {
	if err := config.ValidateStruct(tpl); err != nil {
		return err
	}

	pageIDs := make(map[string]struct{}, len(tpl.Pages))
	paths := make(map[string]struct{}, len(tpl.Pages))
	for i, page := range tpl.Pages {
		if _, dup := pageIDs[page.ID]; dup {
			return studioerrors.NewValidationError(fmt.Sprintf("pages[%d].id", i), fmt.Sprintf("duplicate page id %q", page.ID), nil)
		}
		pageIDs[page.ID] = struct{}{}

		if _, dup := paths[page.Path]; dup {
			return studioerrors.NewValidationError(fmt.Sprintf("pages[%d].path", i), fmt.Sprintf("duplicate page path %q", page.Path), nil)
		}
		paths[page.Path] = struct{}{}

		anchors := make(map[string]struct{}, len(page.Sections))
		for j, section := range page.Sections {
			if section.Anchor == "" {
				continue
			}
			if _, dup := anchors[section.Anchor]; dup {
				return studioerrors.NewValidationError(fmt.Sprintf("pages[%d].sections[%d].anchor", i, j), fmt.Sprintf("duplicate anchor %q", section.Anchor), nil)
			}
			anchors[section.Anchor] = struct{}{}
		}
	}

	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
