package dto

import (
	"time"

	"galleria/internal/domain/models"

	"github.com/google/uuid"
)

type CreateSliderRequest struct {
	Name    string `json:"name" validate:"required"`
	Section string `json:"section" validate:"required"`
}

// AddSliderItemRequest carries the payload for one new slide. For
// youtube items Ref may be any recognized YouTube URL shape or a bare
// video ID; for image/video_url items URL is the media reference.
type AddSliderItemRequest struct {
	Type       string `json:"type" validate:"required,oneof=youtube image video_url"`
	URL        string `json:"url,omitempty"`
	Ref        string `json:"ref,omitempty"`
	Title      string `json:"title,omitempty"`
	Alt        string `json:"alt,omitempty"`
	ArtistName string `json:"artist_name,omitempty"`
	Width      *int   `json:"width,omitempty" validate:"omitempty,min=1"`
	Height     *int   `json:"height,omitempty" validate:"omitempty,min=1"`
}

type UpdateSliderItemRequest struct {
	URL        *string `json:"url,omitempty"`
	Title      *string `json:"title,omitempty"`
	Alt        *string `json:"alt,omitempty"`
	ArtistName *string `json:"artist_name,omitempty"`
	Width      *int    `json:"width,omitempty" validate:"omitempty,min=1"`
	Height     *int    `json:"height,omitempty" validate:"omitempty,min=1"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

// ReorderRequest is the complete desired ordering of a slider's items.
type ReorderRequest struct {
	ItemIDs []uuid.UUID `json:"item_ids" validate:"required,min=1"`
}

type SliderItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type"`
	URL          string    `json:"url,omitempty"`
	YoutubeID    string    `json:"youtube_id,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	EmbedURL     string    `json:"embed_url,omitempty"`
	Title        string    `json:"title,omitempty"`
	Alt          string    `json:"alt,omitempty"`
	ArtistName   string    `json:"artist_name,omitempty"`
	Width        *int      `json:"width,omitempty"`
	Height       *int      `json:"height,omitempty"`
	Position     int       `json:"position"`
	IsActive     bool      `json:"is_active"`
}

type SliderResponse struct {
	ID        uuid.UUID            `json:"id"`
	Name      string               `json:"name"`
	Slug      string               `json:"slug"`
	Section   string               `json:"section"`
	IsActive  bool                 `json:"is_active"`
	Position  int                  `json:"position"`
	Items     []SliderItemResponse `json:"items"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// ToSliderItem maps the request onto a domain item for sliderID.
func (r *AddSliderItemRequest) ToSliderItem(sliderID uuid.UUID, youtubeID string) models.SliderItem {
	item := models.SliderItem{
		SliderID:   sliderID,
		Type:       models.SliderItemType(r.Type),
		Title:      r.Title,
		Alt:        r.Alt,
		ArtistName: r.ArtistName,
		Width:      r.Width,
		Height:     r.Height,
		IsActive:   true,
	}

	switch item.Type {
	case models.SliderItemTypeYoutube:
		if youtubeID != "" {
			item.YoutubeID = &youtubeID
		}
	default:
		if r.URL != "" {
			url := r.URL
			item.URL = &url
		}
	}

	return item
}
