// Package fallback bundles the static dataset served when the live
// store has no matching rows. It is a last-resort default, not an
// error: an empty table or a store outage degrades the public site to
// this data instead of a blank page.
package fallback

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"galleria/internal/domain/models"
)

//go:embed static/sliders.json
var slidersJSON []byte

//go:embed static/content.json
var contentJSON []byte

//go:embed static/config.json
var configJSON []byte

// Dataset is the parsed bundled data.
type Dataset struct {
	sliders map[string][]models.SliderWithItems
	content map[string]map[string]models.SectionContent
	configs []models.SiteConfig
}

// Load parses the embedded files. Called once at startup; a parse
// failure is a build defect, not a runtime condition.
func Load() (*Dataset, error) {
	const op = "fallback.Load"

	var ds Dataset

	if err := json.Unmarshal(slidersJSON, &ds.sliders); err != nil {
		return nil, fmt.Errorf("%s: sliders: %w", op, err)
	}

	var contents []models.SectionContent
	if err := json.Unmarshal(contentJSON, &contents); err != nil {
		return nil, fmt.Errorf("%s: content: %w", op, err)
	}
	ds.content = make(map[string]map[string]models.SectionContent)
	for _, c := range contents {
		if ds.content[c.SectionKey] == nil {
			ds.content[c.SectionKey] = make(map[string]models.SectionContent)
		}
		ds.content[c.SectionKey][c.Locale] = c
	}

	if err := json.Unmarshal(configJSON, &ds.configs); err != nil {
		return nil, fmt.Errorf("%s: config: %w", op, err)
	}

	return &ds, nil
}

// Sliders returns the bundled sliders for a section.
func (d *Dataset) Sliders(section string) []models.SliderWithItems {
	return d.sliders[section]
}

// Content returns the bundled content block for (sectionKey, locale),
// falling back to the default locale when the requested one is absent.
func (d *Dataset) Content(sectionKey, locale, defaultLocale string) (models.SectionContent, bool) {
	byLocale, ok := d.content[sectionKey]
	if !ok {
		return models.SectionContent{}, false
	}
	if c, ok := byLocale[locale]; ok {
		return c, true
	}
	if c, ok := byLocale[defaultLocale]; ok {
		return c, true
	}
	return models.SectionContent{}, false
}

// Configs returns the bundled site settings. These double as the seed
// defaults.
func (d *Dataset) Configs() []models.SiteConfig {
	out := make([]models.SiteConfig, len(d.configs))
	copy(out, d.configs)
	return out
}

// Contents returns every bundled content block. These double as the
// seed defaults.
func (d *Dataset) Contents() []models.SectionContent {
	var out []models.SectionContent
	for _, byLocale := range d.content {
		for _, c := range byLocale {
			out = append(out, c)
		}
	}
	return out
}
