package dto

import "galleria/internal/domain/models"

type UpsertContentRequest struct {
	SectionKey string         `json:"section_key" validate:"required"`
	Locale     string         `json:"locale" validate:"required"`
	Content    map[string]any `json:"content" validate:"required"`
	IsActive   *bool          `json:"is_active,omitempty"`
}

type UpsertConfigRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
	Type  string `json:"type" validate:"required,oneof=text url email phone color select"`
	Group string `json:"group" validate:"required"`
	Label string `json:"label"`
}

// InvalidateCacheRequest names the cache tag to drop; empty flushes
// everything.
type InvalidateCacheRequest struct {
	Tag string `json:"tag"`
}

func (r *UpsertContentRequest) ToDomain() models.SectionContent {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return models.SectionContent{
		SectionKey: r.SectionKey,
		Locale:     r.Locale,
		Content:    models.Content(r.Content),
		IsActive:   isActive,
	}
}

func (r *UpsertConfigRequest) ToDomain() models.SiteConfig {
	return models.SiteConfig{
		Key:   r.Key,
		Value: r.Value,
		Type:  models.ConfigType(r.Type),
		Group: r.Group,
		Label: r.Label,
	}
}
