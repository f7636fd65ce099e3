package services

import (
	"context"
	"fmt"
	"log/slog"

	"galleria/internal/domain/models"
	"galleria/internal/fallback"
	"galleria/internal/lib/logger/sl"
	"galleria/internal/repository"
	"galleria/internal/transport/http/dto"
)

// ConfigService is the admin write path for site settings and section
// content. Every write is an upsert keyed by the record's unique key,
// so seeds and saves are idempotent.
type ConfigService struct {
	log     *slog.Logger
	config  repository.ConfigRepository
	content repository.ContentRepository
	static  *fallback.Dataset
}

func NewConfigService(
	log *slog.Logger,
	config repository.ConfigRepository,
	content repository.ContentRepository,
	static *fallback.Dataset,
) *ConfigService {
	return &ConfigService{
		log:     log,
		config:  config,
		content: content,
		static:  static,
	}
}

func (s *ConfigService) UpsertConfig(ctx context.Context, req dto.UpsertConfigRequest) error {
	const op = "config_service.UpsertConfig"

	log := s.log.With(
		slog.String("op", op),
		slog.String("key", req.Key),
	)

	config := req.ToDomain()
	if err := config.Validate(); err != nil {
		log.Warn("config validation failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.config.Upsert(ctx, config); err != nil {
		log.Error("failed to upsert config", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("config saved")

	return nil
}

func (s *ConfigService) UpsertContent(ctx context.Context, req dto.UpsertContentRequest) error {
	const op = "config_service.UpsertContent"

	log := s.log.With(
		slog.String("op", op),
		slog.String("section_key", req.SectionKey),
		slog.String("locale", req.Locale),
	)

	content := req.ToDomain()
	if err := content.Validate(); err != nil {
		log.Warn("content validation failed", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.content.Upsert(ctx, content); err != nil {
		log.Error("failed to upsert content", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("content saved")

	return nil
}

func (s *ConfigService) ListConfigs(ctx context.Context) ([]models.SiteConfig, error) {
	const op = "config_service.ListConfigs"

	configs, err := s.config.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return configs, nil
}

// Seed upserts the bundled defaults. Running it twice produces zero
// net change.
func (s *ConfigService) Seed(ctx context.Context) error {
	const op = "config_service.Seed"

	log := s.log.With(slog.String("op", op))

	configs := s.static.Configs()
	for _, config := range configs {
		if err := s.config.Upsert(ctx, config); err != nil {
			log.Error("failed to seed config", slog.String("key", config.Key), sl.Err(err))
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	contents := s.static.Contents()
	for _, content := range contents {
		if err := s.content.Upsert(ctx, content); err != nil {
			log.Error("failed to seed content",
				slog.String("section_key", content.SectionKey),
				slog.String("locale", content.Locale),
				sl.Err(err),
			)
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	log.Info("seed applied",
		slog.Int("configs", len(configs)),
		slog.Int("contents", len(contents)),
	)

	return nil
}
