package models

import (
	"fmt"
	"time"
)

type ConfigType string

const (
	ConfigTypeText   ConfigType = "text"
	ConfigTypeURL    ConfigType = "url"
	ConfigTypeEmail  ConfigType = "email"
	ConfigTypePhone  ConfigType = "phone"
	ConfigTypeColor  ConfigType = "color"
	ConfigTypeSelect ConfigType = "select"
)

// SiteConfig is one key/value site setting (contact info, colors,
// fonts). Group classifies the setting for the admin UI; the semantics
// of Value depend on Type.
type SiteConfig struct {
	Key       string     `json:"key" db:"key"`
	Value     string     `json:"value" db:"value"`
	Type      ConfigType `json:"type" db:"type"`
	Group     string     `json:"group" db:"config_group"`
	Label     string     `json:"label" db:"label"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

func (c *SiteConfig) Validate() error {
	var validationErrors []string

	if c.Key == "" {
		validationErrors = append(validationErrors, "key is required")
	}

	switch c.Type {
	case ConfigTypeText, ConfigTypeURL, ConfigTypeEmail, ConfigTypePhone, ConfigTypeColor, ConfigTypeSelect:
	default:
		validTypes := []string{
			string(ConfigTypeText),
			string(ConfigTypeURL),
			string(ConfigTypeEmail),
			string(ConfigTypePhone),
			string(ConfigTypeColor),
			string(ConfigTypeSelect),
		}
		validationErrors = append(validationErrors,
			fmt.Sprintf("invalid config type '%s', must be one of: %v", c.Type, validTypes))
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}
