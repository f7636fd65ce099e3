package repository

import (
	"context"
	"time"

	"galleria/internal/domain/models"

	"github.com/google/uuid"
)

type SliderRepository interface {
	CreateSlider(ctx context.Context, slider models.Slider) (models.Slider, error)
	GetSliderByID(ctx context.Context, id uuid.UUID) (models.Slider, error)
	GetSliderBySlug(ctx context.Context, slug string) (models.Slider, error)
	ListActiveBySection(ctx context.Context, section string) ([]models.SliderWithItems, error)
	ListActiveBySections(ctx context.Context, sections []string) ([]models.SliderWithItems, error)
	DeleteSlider(ctx context.Context, id uuid.UUID) error
	AddItem(ctx context.Context, item models.SliderItem) (models.SliderItem, error)
	GetItemByID(ctx context.Context, itemID uuid.UUID) (models.SliderItem, error)
	UpdateItem(ctx context.Context, item models.SliderItem) error
	ToggleItemActive(ctx context.Context, itemID uuid.UUID) (bool, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	Reorder(ctx context.Context, sliderID uuid.UUID, orderedItemIDs []uuid.UUID) error
}

type ContentRepository interface {
	Upsert(ctx context.Context, content models.SectionContent) error
	Get(ctx context.Context, sectionKey, locale string) (models.SectionContent, error)
	ListByLocale(ctx context.Context, locale string) ([]models.SectionContent, error)
}

type ConfigRepository interface {
	Upsert(ctx context.Context, config models.SiteConfig) error
	Get(ctx context.Context, key string) (models.SiteConfig, error)
	List(ctx context.Context) ([]models.SiteConfig, error)
	ListByGroup(ctx context.Context, group string) ([]models.SiteConfig, error)
}

type SessionRepository interface {
	SaveSession(ctx context.Context, email, token string, exp time.Duration) error
	SessionExists(ctx context.Context, email, token string) (bool, error)
	DeleteSession(ctx context.Context, email, token string) error
	DeleteAllSessions(ctx context.Context, email string) error
}
