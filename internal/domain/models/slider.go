package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SliderItemType string

const (
	SliderItemTypeYoutube  SliderItemType = "youtube"
	SliderItemTypeImage    SliderItemType = "image"
	SliderItemTypeVideoURL SliderItemType = "video_url"
)

// Slider is a named ordered collection of media items rendered as a
// carousel on one page section ("hero", "stories", "artists").
type Slider struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	Section   string    `json:"section" db:"section"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SliderItem is a single slide. Exactly one of URL or YoutubeID carries
// the media reference, depending on Type.
type SliderItem struct {
	ID         uuid.UUID      `json:"id" db:"id"`
	SliderID   uuid.UUID      `json:"slider_id" db:"slider_id"`
	Type       SliderItemType `json:"type" db:"type"`
	URL        *string        `json:"url,omitempty" db:"url"`
	YoutubeID  *string        `json:"youtube_id,omitempty" db:"youtube_id"`
	Title      string         `json:"title,omitempty" db:"title"`
	Alt        string         `json:"alt,omitempty" db:"alt"`
	ArtistName string         `json:"artist_name,omitempty" db:"artist_name"`
	Width      *int           `json:"width,omitempty" db:"width"`
	Height     *int           `json:"height,omitempty" db:"height"`
	Position   int            `json:"position" db:"position"`
	IsActive   bool           `json:"is_active" db:"is_active"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
}

// SliderWithItems joins a slider with its items sorted by position.
type SliderWithItems struct {
	Slider
	Items []SliderItem `json:"items"`
}

// Validate checks that the item carries exactly the reference its type requires.
func (i *SliderItem) Validate() error {
	var validationErrors []string

	if i.SliderID == uuid.Nil {
		validationErrors = append(validationErrors, "slider ID is required")
	}

	switch i.Type {
	case SliderItemTypeYoutube:
		if i.YoutubeID == nil || *i.YoutubeID == "" {
			validationErrors = append(validationErrors, "youtube_id is required for youtube items")
		}
		if i.URL != nil && *i.URL != "" {
			validationErrors = append(validationErrors, "url must be empty for youtube items")
		}
	case SliderItemTypeImage, SliderItemTypeVideoURL:
		if i.URL == nil || *i.URL == "" {
			validationErrors = append(validationErrors, fmt.Sprintf("url is required for %s items", i.Type))
		}
		if i.YoutubeID != nil && *i.YoutubeID != "" {
			validationErrors = append(validationErrors, fmt.Sprintf("youtube_id must be empty for %s items", i.Type))
		}
	default:
		validTypes := []string{
			string(SliderItemTypeYoutube),
			string(SliderItemTypeImage),
			string(SliderItemTypeVideoURL),
		}
		validationErrors = append(validationErrors,
			fmt.Sprintf("invalid item type '%s', must be one of: %v", i.Type, validTypes))
	}

	if i.Width != nil && *i.Width <= 0 {
		validationErrors = append(validationErrors, "width must be a positive value")
	}
	if i.Height != nil && *i.Height <= 0 {
		validationErrors = append(validationErrors, "height must be a positive value")
	}
	if len(i.Title) > 255 {
		validationErrors = append(validationErrors, "title must be 255 characters or less")
	}

	if len(validationErrors) > 0 {
		return &ValidationError{Errors: validationErrors}
	}

	return nil
}

// ValidationError aggregates field-level validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// IsValidationError reports whether err is, or wraps, a field
// validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
