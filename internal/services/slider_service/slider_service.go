package services

import (
	"context"
	"fmt"
	"log/slog"

	"galleria/internal/domain/models"
	"galleria/internal/lib/logger/sl"
	"galleria/internal/lib/slug"
	"galleria/internal/lib/youtube"
	"galleria/internal/repository"
	"galleria/internal/transport/http/dto"

	"github.com/google/uuid"
)

type SliderService struct {
	log  *slog.Logger
	repo repository.SliderRepository
}

func NewSliderService(log *slog.Logger, repo repository.SliderRepository) *SliderService {
	return &SliderService{
		log:  log,
		repo: repo,
	}
}

// CreateSlider creates a new empty slider with a generated slug.
func (s *SliderService) CreateSlider(ctx context.Context, req dto.CreateSliderRequest) (models.Slider, error) {
	const op = "slider_service.CreateSlider"

	log := s.log.With(
		slog.String("op", op),
		slog.String("name", req.Name),
		slog.String("section", req.Section),
	)

	sliderSlug := slug.Make(req.Name)
	if sliderSlug == "" {
		log.Warn("name is empty after normalization")
		return models.Slider{}, fmt.Errorf("%s: %w", op,
			&models.ValidationError{Errors: []string{"name is empty after normalization"}})
	}
	if req.Section == "" {
		return models.Slider{}, fmt.Errorf("%s: %w", op,
			&models.ValidationError{Errors: []string{"section is required"}})
	}

	log.Info("creating slider", slog.String("slug", sliderSlug))

	created, err := s.repo.CreateSlider(ctx, models.Slider{
		Name:     req.Name,
		Slug:     sliderSlug,
		Section:  req.Section,
		IsActive: true,
	})
	if err != nil {
		log.Error("failed to create slider", sl.Err(err))
		return models.Slider{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("slider created", slog.String("id", created.ID.String()))

	return created, nil
}

// AddItem validates the per-type payload, resolves YouTube references
// to a canonical video ID and appends the item to the slider.
func (s *SliderService) AddItem(ctx context.Context, sliderID uuid.UUID, req dto.AddSliderItemRequest) (models.SliderItem, error) {
	const op = "slider_service.AddItem"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slider_id", sliderID.String()),
		slog.String("type", req.Type),
	)

	var youtubeID string
	if models.SliderItemType(req.Type) == models.SliderItemTypeYoutube {
		ref := req.Ref
		if ref == "" {
			ref = req.URL
		}
		id, ok := youtube.ExtractID(ref)
		if !ok {
			log.Warn("unrecognized youtube reference")
			return models.SliderItem{}, fmt.Errorf("%s: %w", op,
				&models.ValidationError{Errors: []string{"unrecognized youtube reference"}})
		}
		youtubeID = id
	}

	item := req.ToSliderItem(sliderID, youtubeID)

	if err := item.Validate(); err != nil {
		log.Warn("item validation failed", sl.Err(err))
		return models.SliderItem{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.AddItem(ctx, item)
	if err != nil {
		log.Error("failed to add item", sl.Err(err))
		return models.SliderItem{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("item added",
		slog.String("item_id", created.ID.String()),
		slog.Int("position", created.Position),
	)

	return created, nil
}

// Reorder atomically rewrites item positions to the indexes of the
// supplied complete ordering. Partial orderings, foreign ids and
// duplicates are rejected before any mutation.
func (s *SliderService) Reorder(ctx context.Context, sliderID uuid.UUID, req dto.ReorderRequest) error {
	const op = "slider_service.Reorder"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slider_id", sliderID.String()),
	)

	if len(req.ItemIDs) == 0 {
		return fmt.Errorf("%s: %w", op,
			&models.ValidationError{Errors: []string{"item_ids must not be empty"}})
	}

	if err := s.repo.Reorder(ctx, sliderID, req.ItemIDs); err != nil {
		log.Warn("reorder rejected", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("slider reordered", slog.Int("items", len(req.ItemIDs)))

	return nil
}

func (s *SliderService) UpdateItem(ctx context.Context, itemID uuid.UUID, req dto.UpdateSliderItemRequest) error {
	const op = "slider_service.UpdateItem"

	log := s.log.With(
		slog.String("op", op),
		slog.String("item_id", itemID.String()),
	)

	// read-modify-write keeps untouched fields as they are
	item, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if req.URL != nil {
		item.URL = req.URL
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Alt != nil {
		item.Alt = *req.Alt
	}
	if req.ArtistName != nil {
		item.ArtistName = *req.ArtistName
	}
	if req.Width != nil {
		item.Width = req.Width
	}
	if req.Height != nil {
		item.Height = req.Height
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := item.Validate(); err != nil {
		log.Warn("item validation failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		log.Error("failed to update item", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *SliderService) ToggleItemActive(ctx context.Context, itemID uuid.UUID) (bool, error) {
	const op = "slider_service.ToggleItemActive"

	isActive, err := s.repo.ToggleItemActive(ctx, itemID)
	if err != nil {
		s.log.Error("failed to toggle item", slog.String("op", op), sl.Err(err))
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return isActive, nil
}

func (s *SliderService) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	const op = "slider_service.DeleteItem"

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		s.log.Error("failed to delete item", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeleteSlider removes the slider together with all its items.
func (s *SliderService) DeleteSlider(ctx context.Context, sliderID uuid.UUID) error {
	const op = "slider_service.DeleteSlider"

	log := s.log.With(
		slog.String("op", op),
		slog.String("slider_id", sliderID.String()),
	)

	if err := s.repo.DeleteSlider(ctx, sliderID); err != nil {
		log.Error("failed to delete slider", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("slider deleted")

	return nil
}

func (s *SliderService) GetSlider(ctx context.Context, sliderID uuid.UUID) (models.Slider, error) {
	const op = "slider_service.GetSlider"

	slider, err := s.repo.GetSliderByID(ctx, sliderID)
	if err != nil {
		return models.Slider{}, fmt.Errorf("%s: %w", op, err)
	}

	return slider, nil
}
