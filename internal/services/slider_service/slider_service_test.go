package services_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"galleria/internal/domain/models"
	services "galleria/internal/services/slider_service"
	"galleria/internal/storage"
	"galleria/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSliderRepository struct {
	mock.Mock
}

func (m *MockSliderRepository) CreateSlider(ctx context.Context, slider models.Slider) (models.Slider, error) {
	args := m.Called(ctx, slider)
	return args.Get(0).(models.Slider), args.Error(1)
}

func (m *MockSliderRepository) GetSliderByID(ctx context.Context, id uuid.UUID) (models.Slider, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Slider), args.Error(1)
}

func (m *MockSliderRepository) GetSliderBySlug(ctx context.Context, slug string) (models.Slider, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(models.Slider), args.Error(1)
}

func (m *MockSliderRepository) ListActiveBySection(ctx context.Context, section string) ([]models.SliderWithItems, error) {
	args := m.Called(ctx, section)
	return args.Get(0).([]models.SliderWithItems), args.Error(1)
}

func (m *MockSliderRepository) ListActiveBySections(ctx context.Context, sections []string) ([]models.SliderWithItems, error) {
	args := m.Called(ctx, sections)
	return args.Get(0).([]models.SliderWithItems), args.Error(1)
}

func (m *MockSliderRepository) DeleteSlider(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSliderRepository) AddItem(ctx context.Context, item models.SliderItem) (models.SliderItem, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(models.SliderItem), args.Error(1)
}

func (m *MockSliderRepository) GetItemByID(ctx context.Context, itemID uuid.UUID) (models.SliderItem, error) {
	args := m.Called(ctx, itemID)
	return args.Get(0).(models.SliderItem), args.Error(1)
}

func (m *MockSliderRepository) UpdateItem(ctx context.Context, item models.SliderItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockSliderRepository) ToggleItemActive(ctx context.Context, itemID uuid.UUID) (bool, error) {
	args := m.Called(ctx, itemID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSliderRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockSliderRepository) Reorder(ctx context.Context, sliderID uuid.UUID, orderedItemIDs []uuid.UUID) error {
	args := m.Called(ctx, sliderID, orderedItemIDs)
	return args.Error(0)
}

func newTestService(t *testing.T) (*services.SliderService, *MockSliderRepository) {
	t.Helper()

	repo := new(MockSliderRepository)
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))

	return services.NewSliderService(log, repo), repo
}

func TestCreateSlider(t *testing.T) {
	ctx := context.Background()

	t.Run("generates slug from name", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.On("CreateSlider", ctx, mock.MatchedBy(func(s models.Slider) bool {
			return s.Slug == "cafe-dias-2026" && s.Section == "hero" && s.IsActive
		})).Return(models.Slider{ID: uuid.New(), Slug: "cafe-dias-2026"}, nil)

		created, err := svc.CreateSlider(ctx, dto.CreateSliderRequest{
			Name:    "Café Días 2026!",
			Section: "hero",
		})
		require.NoError(t, err)
		assert.Equal(t, "cafe-dias-2026", created.Slug)

		repo.AssertExpectations(t)
	})

	t.Run("rejects name empty after normalization", func(t *testing.T) {
		svc, repo := newTestService(t)

		_, err := svc.CreateSlider(ctx, dto.CreateSliderRequest{
			Name:    "!!! ---",
			Section: "hero",
		})
		assert.True(t, isValidationError(err))

		repo.AssertNotCalled(t, "CreateSlider")
	})

	t.Run("rejects missing section", func(t *testing.T) {
		svc, repo := newTestService(t)

		_, err := svc.CreateSlider(ctx, dto.CreateSliderRequest{Name: "Hero"})
		assert.True(t, isValidationError(err))

		repo.AssertNotCalled(t, "CreateSlider")
	})
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	sliderID := uuid.New()

	t.Run("extracts youtube id from watch url", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.On("AddItem", ctx, mock.MatchedBy(func(item models.SliderItem) bool {
			return item.YoutubeID != nil && *item.YoutubeID == "abcdEFGH123" && item.URL == nil
		})).Return(models.SliderItem{ID: uuid.New(), Position: 3}, nil)

		created, err := svc.AddItem(ctx, sliderID, dto.AddSliderItemRequest{
			Type: "youtube",
			Ref:  "https://www.youtube.com/watch?v=abcdEFGH123",
		})
		require.NoError(t, err)
		assert.Equal(t, 3, created.Position)

		repo.AssertExpectations(t)
	})

	t.Run("rejects unrecognized youtube reference", func(t *testing.T) {
		svc, repo := newTestService(t)

		_, err := svc.AddItem(ctx, sliderID, dto.AddSliderItemRequest{
			Type: "youtube",
			Ref:  "not a url",
		})
		assert.True(t, isValidationError(err))

		repo.AssertNotCalled(t, "AddItem")
	})

	t.Run("rejects image without url", func(t *testing.T) {
		svc, repo := newTestService(t)

		_, err := svc.AddItem(ctx, sliderID, dto.AddSliderItemRequest{Type: "image"})
		assert.True(t, isValidationError(err))

		repo.AssertNotCalled(t, "AddItem")
	})

	t.Run("propagates missing slider", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.On("AddItem", ctx, mock.Anything).
			Return(models.SliderItem{}, storage.ErrSliderNotFound)

		_, err := svc.AddItem(ctx, sliderID, dto.AddSliderItemRequest{
			Type: "image",
			URL:  "/static/img/a.jpg",
		})
		assert.ErrorIs(t, err, storage.ErrSliderNotFound)
	})
}

func TestReorder(t *testing.T) {
	ctx := context.Background()
	sliderID := uuid.New()

	t.Run("rejects empty ordering before any store access", func(t *testing.T) {
		svc, repo := newTestService(t)

		err := svc.Reorder(ctx, sliderID, dto.ReorderRequest{})
		assert.True(t, isValidationError(err))

		repo.AssertNotCalled(t, "Reorder")
	})

	t.Run("propagates set mismatch", func(t *testing.T) {
		svc, repo := newTestService(t)

		ids := []uuid.UUID{uuid.New(), uuid.New()}
		repo.On("Reorder", ctx, sliderID, ids).Return(storage.ErrReorderMismatch)

		err := svc.Reorder(ctx, sliderID, dto.ReorderRequest{ItemIDs: ids})
		assert.ErrorIs(t, err, storage.ErrReorderMismatch)
	})

	t.Run("passes the complete ordering through", func(t *testing.T) {
		svc, repo := newTestService(t)

		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
		repo.On("Reorder", ctx, sliderID, ids).Return(nil)

		require.NoError(t, svc.Reorder(ctx, sliderID, dto.ReorderRequest{ItemIDs: ids}))

		repo.AssertExpectations(t)
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()
	itemID := uuid.New()

	t.Run("only supplied fields change", func(t *testing.T) {
		svc, repo := newTestService(t)

		url := "/static/img/old.jpg"
		existing := models.SliderItem{
			ID:       itemID,
			SliderID: uuid.New(),
			Type:     models.SliderItemTypeImage,
			URL:      &url,
			Title:    "Old title",
			Alt:      "Old alt",
			IsActive: true,
		}
		repo.On("GetItemByID", ctx, itemID).Return(existing, nil)

		newTitle := "New title"
		repo.On("UpdateItem", ctx, mock.MatchedBy(func(item models.SliderItem) bool {
			return item.Title == "New title" && item.Alt == "Old alt" && *item.URL == url
		})).Return(nil)

		err := svc.UpdateItem(ctx, itemID, dto.UpdateSliderItemRequest{Title: &newTitle})
		require.NoError(t, err)

		repo.AssertExpectations(t)
	})

	t.Run("missing item", func(t *testing.T) {
		svc, repo := newTestService(t)

		repo.On("GetItemByID", ctx, itemID).
			Return(models.SliderItem{}, storage.ErrItemNotFound)

		title := "x"
		err := svc.UpdateItem(ctx, itemID, dto.UpdateSliderItemRequest{Title: &title})
		assert.ErrorIs(t, err, storage.ErrItemNotFound)
	})
}

func TestDeleteSlider(t *testing.T) {
	ctx := context.Background()
	sliderID := uuid.New()

	svc, repo := newTestService(t)
	repo.On("DeleteSlider", ctx, sliderID).Return(nil)

	require.NoError(t, svc.DeleteSlider(ctx, sliderID))
	repo.AssertExpectations(t)
}

func isValidationError(err error) bool {
	var ve *models.ValidationError
	return errors.As(err, &ve)
}
