package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Content is an opaque structured JSON blob stored as JSONB. Its field
// set depends on the section the blob belongs to.
type Content map[string]interface{}

// SectionContent is one editable block of marketing copy, keyed by
// (section_key, locale). It is never hard-deleted in normal operation;
// is_active soft-excludes it from rendering.
type SectionContent struct {
	SectionKey string    `json:"section_key" db:"section_key"`
	Locale     string    `json:"locale" db:"locale"`
	Content    Content   `json:"content" db:"content"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Value implements driver.Valuer for JSONB serialization.
func (c Content) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner for JSONB deserialization.
func (c *Content) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}
	return nil
}

// Validate checks the composite key and payload.
func (sc *SectionContent) Validate() error {
	var validationErrors []string

	if sc.SectionKey == "" {
		validationErrors = append(validationErrors, "section key is required")
	}
	if sc.Locale == "" {
		validationErrors = append(validationErrors, "locale is required")
	}
	if len(sc.Content) == 0 {
		validationErrors = append(validationErrors, "content is required")
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}
