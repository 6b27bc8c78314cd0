package processor

import (
	"fmt"
	"regexp"

	"github.com/alexisbeaulieu97/sitestudio/internal/site"
)

var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// lookup resolves a placeholder: non-empty business info wins, then the
// template default.
type lookup struct {
	info     site.BusinessInfo
	defaults map[string]string
}

func (l lookup) get(key string) (string, bool) {
	if value := l.info[key]; value != "" {
		return value, true
	}
	value, ok := l.defaults[key]
	return value, ok
}

func (l lookup) substitute(text string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		key := match[1 : len(match)-1]
		if value, ok := l.get(key); ok {
			return value
		}
		return match
	})
}

// resolve walks a content value, substituting placeholders in every string.
// Maps and slices are rebuilt so the result never aliases the input.
func (l lookup) resolve(value any) any {
	switch v := value.(type) {
	case string:
		return l.substitute(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[key] = l.resolve(inner)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[fmt.Sprint(key)] = l.resolve(inner)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = l.resolve(inner)
		}
		return out
	case []string:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = l.substitute(inner)
		}
		return out
	default:
		return v
	}
}

// Tokens returns the distinct placeholder names found in text, in order.
func Tokens(text string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(text, -1)
	seen := make(map[string]struct{}, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, dup := seen[m[1]]; dup {
			continue
		}
		seen[m[1]] = struct{}{}
		out = append(out, m[1])
	}
	return out
}
