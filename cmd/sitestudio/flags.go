package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/sitestudio/internal/site"
	"github.com/alexisbeaulieu97/sitestudio/internal/studio"
)

// sessionFlags are shared by the commands that build a site from a template.
type sessionFlags struct {
	businessFile string
	sets         []string
	variants     []string
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.businessFile, "business", "b", "", "YAML file of business fields (key: value)")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "Business field override as key=value (repeatable)")
	cmd.Flags().StringArrayVar(&f.variants, "variant", nil, "Section variant as page/section=variant (repeatable)")
}

func (f *sessionFlags) business() (site.BusinessInfo, error) {
	info := site.BusinessInfo{}
	if f.businessFile != "" {
		data, err := os.ReadFile(f.businessFile)
		if err != nil {
			return nil, fmt.Errorf("read business file: %w", err)
		}
		if err := yaml.Unmarshal(data, &info); err != nil {
			return nil, fmt.Errorf("parse business file %s: %w", f.businessFile, err)
		}
	}
	for _, pair := range f.sets {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --set %q: expected key=value", pair)
		}
		info[strings.TrimSpace(key)] = value
	}
	return info, nil
}

// apply selects templateID on s and replays the business fields and variant
// overrides from the flags.
func (f *sessionFlags) apply(ctx context.Context, s *studio.Studio, templateID string) error {
	if err := s.SelectTemplate(ctx, templateID); err != nil {
		return err
	}

	info, err := f.business()
	if err != nil {
		return err
	}
	for key, value := range info {
		s.SetBusinessField(ctx, key, value)
	}

	for _, entry := range f.variants {
		target, variantID, ok := strings.Cut(entry, "=")
		pageID, sectionID, okPage := strings.Cut(target, "/")
		if !ok || !okPage || pageID == "" || sectionID == "" || variantID == "" {
			return fmt.Errorf("invalid --variant %q: expected page/section=variant", entry)
		}
		if err := s.SetVariant(ctx, pageID, sectionID, variantID); err != nil {
			return err
		}
	}
	return nil
}
