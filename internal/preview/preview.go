// Package preview renders a resolved site page to a standalone HTML document.
package preview

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/sitestudio/internal/site"
	"github.com/alexisbeaulieu97/sitestudio/internal/variant"
)

const baseStyles = `
body { margin: 0; font-family: var(--font-body, sans-serif); color: var(--color-foreground, #111); background: var(--color-background, #fff); }
h1, h2, h3 { font-family: var(--font-heading, inherit); }
section { padding: calc(var(--spacing-lg, 1.5rem) * 2) var(--spacing-lg, 1.5rem); }
.button { background: var(--color-primary); color: var(--color-background); border-radius: var(--radius-md, 0.5rem); padding: var(--spacing-sm, 0.5rem) var(--spacing-md, 1rem); text-decoration: none; }
.missing-section { border: 2px dashed var(--color-accent, #f59e0b); }
`

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Page.Title}} | {{.Site.Metadata.Title}}</title>
{{with .Site.Metadata.Description}}<meta name="description" content="{{.}}">{{end}}
<style>{{.CSS}}{{.Base}}</style>
</head>
<body>
<header>
  <strong>{{.Site.Business.Name}}</strong>
  <nav>{{range .Site.Navigation}}<a href="{{.Href}}"{{if eq .Href $.Page.Path}} aria-current="page"{{end}}>{{.Label}}</a> {{end}}</nav>
</header>
<main>
{{range .Sections}}{{.}}
{{end}}</main>
<footer>{{with .Site.Business.Address}}<span>{{.}}</span> {{end}}{{with .Site.Business.Phone}}<span>{{.}}</span> {{end}}{{with .Site.Business.Email}}<a href="mailto:{{.}}">{{.}}</a>{{end}}</footer>
</body>
</html>
`))

var missingTemplate = template.Must(template.New("missing").Parse(
	`<section class="missing-section" data-section-type="{{.Type}}" id="{{.ID}}"><p>No component registered for section type "{{.Type}}".</p></section>`))

// Page renders pageID of cfg. Sections whose type has no registered component
// render as a visible placeholder. css is inlined ahead of the base styles and
// must not contain markup.
func Page(w io.Writer, cfg site.SiteConfig, pageID string, variants *variant.Registry, css string) error {
	if strings.Contains(css, "<") {
		return fmt.Errorf("stylesheet contains markup and cannot be inlined")
	}

	page, ok := cfg.Page(pageID)
	if !ok {
		return fmt.Errorf("page %q not found in site", pageID)
	}

	sections := make([]template.HTML, 0, len(page.Sections))
	for _, section := range page.Sections {
		var buf bytes.Buffer
		resolved, found := variants.ForSection(section)
		if !found {
			if err := missingTemplate.Execute(&buf, section); err != nil {
				return err
			}
		} else if err := resolved.Renderer.Render(&buf, section); err != nil {
			return fmt.Errorf("section %s: %w", section.ID, err)
		}
		// Renderer output is produced by html/template and already escaped.
		sections = append(sections, template.HTML(buf.String()))
	}

	return pageTemplate.Execute(w, struct {
		Site     site.SiteConfig
		Page     site.PageConfig
		Sections []template.HTML
		CSS      template.CSS
		Base     template.CSS
	}{
		Site:     cfg,
		Page:     page,
		Sections: sections,
		CSS:      template.CSS(css),
		Base:     template.CSS(baseStyles),
	})
}
