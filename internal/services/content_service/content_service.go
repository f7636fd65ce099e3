package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"galleria/internal/domain/models"
	"galleria/internal/fallback"
	"galleria/internal/lib/logger/sl"
	"galleria/internal/metrics"
	"galleria/internal/repository"
	"galleria/internal/storage"

	gocache "github.com/patrickmn/go-cache"
)

// CacheTTLs bound the staleness window per data class. Config and copy
// change rarely and tolerate longer windows than sliders, which editors
// touch often.
type CacheTTLs struct {
	Sliders time.Duration
	Content time.Duration
	Config  time.Duration
}

// ContentService is the read path. It serves store data through a
// time-bounded cache and degrades to the bundled static dataset when
// the store is empty or unreachable, so the public site never renders
// blank.
type ContentService struct {
	log           *slog.Logger
	sliders       repository.SliderRepository
	content       repository.ContentRepository
	config        repository.ConfigRepository
	cache         *gocache.Cache
	static        *fallback.Dataset
	ttls          CacheTTLs
	defaultLocale string
}

func NewContentService(
	log *slog.Logger,
	sliders repository.SliderRepository,
	content repository.ContentRepository,
	config repository.ConfigRepository,
	static *fallback.Dataset,
	ttls CacheTTLs,
	defaultLocale string,
) *ContentService {
	return &ContentService{
		log:           log,
		sliders:       sliders,
		content:       content,
		config:        config,
		cache:         gocache.New(ttls.Content, 10*time.Minute),
		static:        static,
		ttls:          ttls,
		defaultLocale: defaultLocale,
	}
}

// Sliders returns the section's active sliders in render order. An
// empty table and a store failure both degrade to the bundled dataset;
// neither is more than informational.
func (s *ContentService) Sliders(ctx context.Context, section string) ([]models.SliderWithItems, error) {
	const op = "content_service.Sliders"

	key := "sliders:" + section
	if cached, ok := s.cache.Get(key); ok {
		metrics.CacheHitsTotal.WithLabelValues("sliders").Inc()
		return cached.([]models.SliderWithItems), nil
	}

	log := s.log.With(slog.String("op", op), slog.String("section", section))

	sliders, err := s.sliders.ListActiveBySection(ctx, section)
	if err != nil {
		log.Warn("store read failed, serving static fallback", sl.Err(err))
		metrics.FallbackServedTotal.WithLabelValues("sliders").Inc()
		return s.static.Sliders(section), nil
	}
	if len(sliders) == 0 {
		// store empty -> static fallback
		log.Info("no sliders in store, serving static fallback")
		metrics.FallbackServedTotal.WithLabelValues("sliders").Inc()
		return s.static.Sliders(section), nil
	}

	s.cache.Set(key, sliders, s.ttls.Sliders)

	return sliders, nil
}

// Content returns one content block, preferring the requested locale
// and falling back to the default locale, then to the bundled dataset.
func (s *ContentService) Content(ctx context.Context, sectionKey, locale string) (models.SectionContent, error) {
	const op = "content_service.Content"

	if locale == "" {
		locale = s.defaultLocale
	}

	key := "content:" + sectionKey + ":" + locale
	if cached, ok := s.cache.Get(key); ok {
		metrics.CacheHitsTotal.WithLabelValues("content").Inc()
		return cached.(models.SectionContent), nil
	}

	log := s.log.With(
		slog.String("op", op),
		slog.String("section_key", sectionKey),
		slog.String("locale", locale),
	)

	content, err := s.content.Get(ctx, sectionKey, locale)
	if err != nil && errors.Is(err, storage.ErrContentNotFound) && locale != s.defaultLocale {
		content, err = s.content.Get(ctx, sectionKey, s.defaultLocale)
	}
	if err != nil {
		if !errors.Is(err, storage.ErrContentNotFound) {
			log.Warn("store read failed, serving static fallback", sl.Err(err))
		} else {
			log.Info("no content in store, serving static fallback")
		}

		static, ok := s.static.Content(sectionKey, locale, s.defaultLocale)
		if !ok {
			return models.SectionContent{}, storage.ErrContentNotFound
		}
		metrics.FallbackServedTotal.WithLabelValues("content").Inc()
		return static, nil
	}

	s.cache.Set(key, content, s.ttls.Content)

	return content, nil
}

// Configs returns every site setting, from the store when seeded and
// from the bundled defaults otherwise.
func (s *ContentService) Configs(ctx context.Context) ([]models.SiteConfig, error) {
	const op = "content_service.Configs"

	const key = "config"
	if cached, ok := s.cache.Get(key); ok {
		metrics.CacheHitsTotal.WithLabelValues("config").Inc()
		return cached.([]models.SiteConfig), nil
	}

	log := s.log.With(slog.String("op", op))

	configs, err := s.config.List(ctx)
	if err != nil {
		log.Warn("store read failed, serving static fallback", sl.Err(err))
		metrics.FallbackServedTotal.WithLabelValues("config").Inc()
		return s.static.Configs(), nil
	}
	if len(configs) == 0 {
		log.Info("no config in store, serving static fallback")
		metrics.FallbackServedTotal.WithLabelValues("config").Inc()
		return s.static.Configs(), nil
	}

	s.cache.Set(key, configs, s.ttls.Config)

	return configs, nil
}

// Invalidate drops cached entries whose key starts with tag; an empty
// tag flushes the whole cache. The next read bypasses the staleness
// window and hits the store.
func (s *ContentService) Invalidate(tag string) int {
	const op = "content_service.Invalidate"

	if tag == "" {
		n := s.cache.ItemCount()
		s.cache.Flush()
		s.log.Info("cache flushed", slog.String("op", op), slog.Int("dropped", n))
		return n
	}

	dropped := 0
	for key := range s.cache.Items() {
		if strings.HasPrefix(key, tag) {
			s.cache.Delete(key)
			dropped++
		}
	}

	s.log.Info("cache invalidated",
		slog.String("op", op),
		slog.String("tag", tag),
		slog.Int("dropped", dropped),
	)

	return dropped
}
