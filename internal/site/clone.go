package site

import "fmt"

// Clone returns a deep copy of the template so registries can hand out
// values callers are free to mutate.
func (t SiteTemplate) Clone() SiteTemplate {
	out := t
	out.IndustryTags = append([]string(nil), t.IndustryTags...)
	if t.Placeholders != nil {
		out.Placeholders = make(map[string]string, len(t.Placeholders))
		for k, v := range t.Placeholders {
			out.Placeholders[k] = v
		}
	}
	if t.Pages != nil {
		out.Pages = make([]PageTemplate, len(t.Pages))
		for i, page := range t.Pages {
			out.Pages[i] = page
			if page.Sections != nil {
				out.Pages[i].Sections = make([]SectionDescriptor, len(page.Sections))
				for j, section := range page.Sections {
					section.Content = CloneContent(section.Content)
					out.Pages[i].Sections[j] = section
				}
			}
		}
	}
	return out
}

// CloneContent deep-copies a content tree of maps and slices. Scalar leaves
// are shared. Mappings keyed by non-strings come back keyed by their string
// form.
func CloneContent(content map[string]any) map[string]any {
	if content == nil {
		return nil
	}
	cloned, _ := cloneValue(content).(map[string]any)
	return cloned
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[key] = cloneValue(inner)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[fmt.Sprint(key)] = cloneValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = cloneValue(inner)
		}
		return out
	case []string:
		return append([]string(nil), v...)
	default:
		return v
	}
}
