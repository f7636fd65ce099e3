package services_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"galleria/internal/domain/models"
	"galleria/internal/fallback"
	services "galleria/internal/services/content_service"
	"galleria/internal/storage"

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

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) Upsert(ctx context.Context, content models.SectionContent) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockContentRepository) Get(ctx context.Context, sectionKey, locale string) (models.SectionContent, error) {
	args := m.Called(ctx, sectionKey, locale)
	return args.Get(0).(models.SectionContent), args.Error(1)
}

func (m *MockContentRepository) ListByLocale(ctx context.Context, locale string) ([]models.SectionContent, error) {
	args := m.Called(ctx, locale)
	return args.Get(0).([]models.SectionContent), args.Error(1)
}

type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) Upsert(ctx context.Context, config models.SiteConfig) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

func (m *MockConfigRepository) Get(ctx context.Context, key string) (models.SiteConfig, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(models.SiteConfig), args.Error(1)
}

func (m *MockConfigRepository) List(ctx context.Context) ([]models.SiteConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.SiteConfig), args.Error(1)
}

func (m *MockConfigRepository) ListByGroup(ctx context.Context, group string) ([]models.SiteConfig, error) {
	args := m.Called(ctx, group)
	return args.Get(0).([]models.SiteConfig), args.Error(1)
}

func newTestService(t *testing.T) (*services.ContentService, *MockSliderRepository, *MockContentRepository, *MockConfigRepository) {
	t.Helper()

	sliders := new(MockSliderRepository)
	content := new(MockContentRepository)
	config := new(MockConfigRepository)

	static, err := fallback.Load()
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))
	svc := services.NewContentService(log, sliders, content, config, static, services.CacheTTLs{
		Sliders: time.Minute,
		Content: 5 * time.Minute,
		Config:  5 * time.Minute,
	}, "en")

	return svc, sliders, content, config
}

func TestSliders_EmptyStoreFallsBackToStatic(t *testing.T) {
	ctx := context.Background()
	svc, sliders, _, _ := newTestService(t)

	sliders.On("ListActiveBySection", ctx, "hero").
		Return([]models.SliderWithItems(nil), nil)

	got, err := svc.Sliders(ctx, "hero")
	require.NoError(t, err)
	require.NotEmpty(t, got, "empty store must serve the bundled dataset, not an empty list")
	assert.Equal(t, "hero", got[0].Section)
}

func TestSliders_StoreErrorFallsBackToStatic(t *testing.T) {
	ctx := context.Background()
	svc, sliders, _, _ := newTestService(t)

	sliders.On("ListActiveBySection", ctx, "hero").
		Return([]models.SliderWithItems(nil), errors.New("connection refused"))

	got, err := svc.Sliders(ctx, "hero")
	require.NoError(t, err, "a store outage must degrade, not surface")
	assert.NotEmpty(t, got)
}

func TestSliders_CacheBoundsStoreReads(t *testing.T) {
	ctx := context.Background()
	svc, sliders, _, _ := newTestService(t)

	stored := []models.SliderWithItems{
		{Slider: models.Slider{ID: uuid.New(), Section: "hero", IsActive: true}},
	}
	sliders.On("ListActiveBySection", ctx, "hero").Return(stored, nil).Once()

	for i := 0; i < 5; i++ {
		got, err := svc.Sliders(ctx, "hero")
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	}

	sliders.AssertNumberOfCalls(t, "ListActiveBySection", 1)
}

func TestSliders_InvalidateBypassesStalenessWindow(t *testing.T) {
	ctx := context.Background()
	svc, sliders, _, _ := newTestService(t)

	stored := []models.SliderWithItems{
		{Slider: models.Slider{ID: uuid.New(), Section: "hero", IsActive: true}},
	}
	sliders.On("ListActiveBySection", ctx, "hero").Return(stored, nil)

	_, err := svc.Sliders(ctx, "hero")
	require.NoError(t, err)

	dropped := svc.Invalidate("sliders:hero")
	assert.Equal(t, 1, dropped)

	_, err = svc.Sliders(ctx, "hero")
	require.NoError(t, err)

	sliders.AssertNumberOfCalls(t, "ListActiveBySection", 2)
}

func TestContent_LocaleFallsBackToDefault(t *testing.T) {
	ctx := context.Background()
	svc, _, content, _ := newTestService(t)

	enContent := models.SectionContent{
		SectionKey: "about",
		Locale:     "en",
		Content:    models.Content{"title": "About"},
		IsActive:   true,
	}

	content.On("Get", ctx, "about", "de").
		Return(models.SectionContent{}, storage.ErrContentNotFound)
	content.On("Get", ctx, "about", "en").Return(enContent, nil)

	got, err := svc.Content(ctx, "about", "de")
	require.NoError(t, err)
	assert.Equal(t, "en", got.Locale)
}

func TestContent_EmptyStoreFallsBackToStatic(t *testing.T) {
	ctx := context.Background()
	svc, _, content, _ := newTestService(t)

	content.On("Get", ctx, "hero", "en").
		Return(models.SectionContent{}, storage.ErrContentNotFound)

	got, err := svc.Content(ctx, "hero", "en")
	require.NoError(t, err)
	assert.Equal(t, "hero", got.SectionKey)
	assert.NotEmpty(t, got.Content)
}

func TestContent_UnknownSectionEverywhere(t *testing.T) {
	ctx := context.Background()
	svc, _, content, _ := newTestService(t)

	content.On("Get", ctx, "nope", "en").
		Return(models.SectionContent{}, storage.ErrContentNotFound)

	_, err := svc.Content(ctx, "nope", "en")
	assert.ErrorIs(t, err, storage.ErrContentNotFound)
}

func TestConfigs_EmptyStoreFallsBackToStatic(t *testing.T) {
	ctx := context.Background()
	svc, _, _, config := newTestService(t)

	config.On("List", ctx).Return([]models.SiteConfig(nil), nil)

	got, err := svc.Configs(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestInvalidate_EmptyTagFlushesEverything(t *testing.T) {
	ctx := context.Background()
	svc, sliders, _, config := newTestService(t)

	sliders.On("ListActiveBySection", ctx, "hero").Return([]models.SliderWithItems{
		{Slider: models.Slider{ID: uuid.New(), Section: "hero"}},
	}, nil)
	config.On("List", ctx).Return([]models.SiteConfig{{Key: "site_title"}}, nil)

	_, err := svc.Sliders(ctx, "hero")
	require.NoError(t, err)
	_, err = svc.Configs(ctx)
	require.NoError(t, err)

	dropped := svc.Invalidate("")
	assert.Equal(t, 2, dropped)
}
