package services_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"galleria/internal/domain/models"
	"galleria/internal/fallback"
	services "galleria/internal/services/config_service"
	"galleria/internal/storage"
	"galleria/internal/transport/http/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConfigRepo is an in-memory store with real upsert semantics, so
// seed idempotence is observable as stored state.
type fakeConfigRepo struct {
	rows map[string]models.SiteConfig
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{rows: make(map[string]models.SiteConfig)}
}

func (f *fakeConfigRepo) Upsert(ctx context.Context, config models.SiteConfig) error {
	f.rows[config.Key] = config
	return nil
}

func (f *fakeConfigRepo) Get(ctx context.Context, key string) (models.SiteConfig, error) {
	c, ok := f.rows[key]
	if !ok {
		return models.SiteConfig{}, storage.ErrConfigNotFound
	}
	return c, nil
}

func (f *fakeConfigRepo) List(ctx context.Context) ([]models.SiteConfig, error) {
	var out []models.SiteConfig
	for _, c := range f.rows {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeConfigRepo) ListByGroup(ctx context.Context, group string) ([]models.SiteConfig, error) {
	var out []models.SiteConfig
	for _, c := range f.rows {
		if c.Group == group {
			out = append(out, c)
		}
	}
	return out, nil
}

type contentKey struct {
	section string
	locale  string
}

type fakeContentRepo struct {
	rows map[contentKey]models.SectionContent
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{rows: make(map[contentKey]models.SectionContent)}
}

func (f *fakeContentRepo) Upsert(ctx context.Context, content models.SectionContent) error {
	f.rows[contentKey{content.SectionKey, content.Locale}] = content
	return nil
}

func (f *fakeContentRepo) Get(ctx context.Context, sectionKey, locale string) (models.SectionContent, error) {
	c, ok := f.rows[contentKey{sectionKey, locale}]
	if !ok {
		return models.SectionContent{}, storage.ErrContentNotFound
	}
	return c, nil
}

func (f *fakeContentRepo) ListByLocale(ctx context.Context, locale string) ([]models.SectionContent, error) {
	var out []models.SectionContent
	for _, c := range f.rows {
		if c.Locale == locale && c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func newTestService(t *testing.T) (*services.ConfigService, *fakeConfigRepo, *fakeContentRepo) {
	t.Helper()

	static, err := fallback.Load()
	require.NoError(t, err)

	configRepo := newFakeConfigRepo()
	contentRepo := newFakeContentRepo()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{}))

	return services.NewConfigService(log, configRepo, contentRepo, static), configRepo, contentRepo
}

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, configRepo, contentRepo := newTestService(t)

	require.NoError(t, svc.Seed(ctx))

	firstConfigs := make(map[string]models.SiteConfig, len(configRepo.rows))
	for k, v := range configRepo.rows {
		firstConfigs[k] = v
	}
	firstContents := make(map[contentKey]models.SectionContent, len(contentRepo.rows))
	for k, v := range contentRepo.rows {
		firstContents[k] = v
	}
	require.NotEmpty(t, firstConfigs)
	require.NotEmpty(t, firstContents)

	// second run: identical stored state, zero additional rows
	require.NoError(t, svc.Seed(ctx))

	assert.Equal(t, firstConfigs, configRepo.rows)
	assert.Equal(t, firstContents, contentRepo.rows)
}

func TestUpsertConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("insert then overwrite by key", func(t *testing.T) {
		svc, configRepo, _ := newTestService(t)

		require.NoError(t, svc.UpsertConfig(ctx, dto.UpsertConfigRequest{
			Key:   "contact_email",
			Value: "old@galleria.example",
			Type:  "email",
			Group: "contact",
			Label: "Contact email",
		}))
		require.NoError(t, svc.UpsertConfig(ctx, dto.UpsertConfigRequest{
			Key:   "contact_email",
			Value: "new@galleria.example",
			Type:  "email",
			Group: "contact",
			Label: "Contact email",
		}))

		assert.Len(t, configRepo.rows, 1)
		assert.Equal(t, "new@galleria.example", configRepo.rows["contact_email"].Value)
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		svc, configRepo, _ := newTestService(t)

		err := svc.UpsertConfig(ctx, dto.UpsertConfigRequest{
			Key:  "x",
			Type: "jsonb",
		})

		var ve *models.ValidationError
		assert.True(t, errors.As(err, &ve))
		assert.Empty(t, configRepo.rows)
	})
}

func TestUpsertContent(t *testing.T) {
	ctx := context.Background()

	t.Run("upsert keyed by section and locale", func(t *testing.T) {
		svc, _, contentRepo := newTestService(t)

		require.NoError(t, svc.UpsertContent(ctx, dto.UpsertContentRequest{
			SectionKey: "hero",
			Locale:     "en",
			Content:    map[string]any{"headline": "First"},
		}))
		require.NoError(t, svc.UpsertContent(ctx, dto.UpsertContentRequest{
			SectionKey: "hero",
			Locale:     "en",
			Content:    map[string]any{"headline": "Second"},
		}))
		require.NoError(t, svc.UpsertContent(ctx, dto.UpsertContentRequest{
			SectionKey: "hero",
			Locale:     "es",
			Content:    map[string]any{"headline": "Tercero"},
		}))

		assert.Len(t, contentRepo.rows, 2)
		assert.Equal(t, "Second", contentRepo.rows[contentKey{"hero", "en"}].Content["headline"])
	})

	t.Run("missing content rejected", func(t *testing.T) {
		svc, _, contentRepo := newTestService(t)

		err := svc.UpsertContent(ctx, dto.UpsertContentRequest{
			SectionKey: "hero",
			Locale:     "en",
		})

		var ve *models.ValidationError
		assert.True(t, errors.As(err, &ve))
		assert.Empty(t, contentRepo.rows)
	})
}
