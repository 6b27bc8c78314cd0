// Package processor resolves a site template and business information into a
// SiteConfig.
package processor

import (
	"fmt"

	"github.com/alexisbeaulieu97/sitestudio/internal/site"
)

// Process merges business information into the template. It has no side
// effects: identical inputs yield deep-equal outputs, and the returned
// config shares no mutable state with tpl or info.
func Process(tpl site.SiteTemplate, info site.BusinessInfo) site.SiteConfig {
	l := lookup{info: info, defaults: tpl.Placeholders}
	field := func(key string) string {
		value, _ := l.get(key)
		return value
	}

	cfg := site.SiteConfig{
		TemplateID: tpl.ID,
		Business: site.Business{
			Name:        field(site.KeyBusinessName),
			Tagline:     field(site.KeyTagline),
			Description: field(site.KeyDescription),
			Phone:       field(site.KeyPhone),
			Email:       field(site.KeyEmail),
			Address:     field(site.KeyAddress),
			Hours:       field(site.KeyHours),
		},
		Theme:      resolveTheme(tpl.Theme),
		Navigation: make([]site.NavLink, 0, len(tpl.Pages)),
		Pages:      make([]site.PageConfig, 0, len(tpl.Pages)),
	}
	cfg.Metadata = site.Metadata{
		Title:       cfg.Business.Name,
		Description: cfg.Business.Description,
		Keywords:    append([]string(nil), tpl.IndustryTags...),
	}

	for _, page := range tpl.Pages {
		cfg.Navigation = append(cfg.Navigation, site.NavLink{Label: page.Title, Href: page.Path})

		resolved := site.PageConfig{
			ID:       page.ID,
			Title:    page.Title,
			Path:     page.Path,
			Sections: make([]site.SectionConfig, 0, len(page.Sections)),
		}
		for i, section := range page.Sections {
			var content map[string]any
			if section.Content != nil {
				content, _ = l.resolve(section.Content).(map[string]any)
			}
			resolved.Sections = append(resolved.Sections, site.SectionConfig{
				ID:      SectionID(page.ID, section, i),
				Type:    section.Type,
				Variant: section.Variant,
				Anchor:  section.Anchor,
				Content: content,
			})
		}
		cfg.Pages = append(cfg.Pages, resolved)
	}

	return cfg
}

// SectionID derives a stable id for the i-th section of a page. Anchored
// sections use their anchor.
func SectionID(pageID string, section site.SectionDescriptor, index int) string {
	if section.Anchor != "" {
		return pageID + "-" + section.Anchor
	}
	return fmt.Sprintf("%s-%s-%d", pageID, section.Type, index)
}
