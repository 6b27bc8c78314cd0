package processor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/sitestudio/internal/site"
)

// Issue is a template authoring problem found by Lint.
type Issue struct {
	PageID  string `json:"pageId,omitempty"`
	Section int    `json:"section"`
	Path    string `json:"path,omitempty"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.PageID == "" {
		return i.Message
	}
	return fmt.Sprintf("%s/sections[%d].%s: %s", i.PageID, i.Section, i.Path, i.Message)
}

// Lint reports placeholder tokens that would survive processing with info,
// plus theme selectors the processor does not recognise. Processing itself
// never fails on these; Lint exists so they are caught before publishing.
func Lint(tpl site.SiteTemplate, info site.BusinessInfo) []Issue {
	l := lookup{info: info, defaults: tpl.Placeholders}
	var issues []Issue

	selectors := []struct{ name, value string }{
		{"color_scheme", tpl.Theme.ColorScheme},
		{"typography", tpl.Theme.Typography},
		{"spacing", tpl.Theme.Spacing},
		{"border_radius", tpl.Theme.BorderRadius},
	}
	for _, sel := range selectors {
		if sel.value != "" && !KnownSelector(sel.name, sel.value) {
			issues = append(issues, Issue{Section: -1, Message: fmt.Sprintf("theme %s %q is not recognised; defaults apply", sel.name, sel.value)})
		}
	}

	for _, page := range tpl.Pages {
		for i, section := range page.Sections {
			walkStrings(section.Content, "content", func(path, text string) {
				for _, token := range Tokens(text) {
					if _, ok := l.get(token); ok {
						continue
					}
					issues = append(issues, Issue{
						PageID:  page.ID,
						Section: i,
						Path:    path,
						Token:   token,
						Message: fmt.Sprintf("placeholder {%s} has no value", token),
					})
				}
			})
		}
	}

	return issues
}

func walkStrings(value any, path string, visit func(path, text string)) {
	switch v := value.(type) {
	case string:
		visit(path, v)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			walkStrings(v[key], path+"."+key, visit)
		}
	case []any:
		for i, inner := range v {
			walkStrings(inner, fmt.Sprintf("%s[%d]", path, i), visit)
		}
	case []string:
		for i, inner := range v {
			visit(fmt.Sprintf("%s[%d]", path, i), inner)
		}
	}
}

// Summary renders issues one per line.
func Summary(issues []Issue) string {
	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = issue.String()
	}
	return strings.Join(lines, "\n")
}
