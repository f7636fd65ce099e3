package repository

import (
	"context"
	"errors"
	"fmt"

	"galleria/internal/domain/models"
	"galleria/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

const siteConfigTable = "site_configs"

type ConfigRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewConfigRepo(db *pgxpool.Pool) *ConfigRepo {
	return &ConfigRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Upsert inserts the setting or overwrites all mutable fields when the
// key already exists. Running the same seed twice is a no-op.
func (r *ConfigRepo) Upsert(ctx context.Context, config models.SiteConfig) error {
	const op = "repository.ConfigRepo.Upsert"

	query, args, err := r.sb.Insert(siteConfigTable).
		Columns("key", "value", "type", "config_group", "label").
		Values(config.Key, config.Value, config.Type, config.Group, config.Label).
		Suffix(`ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			type = EXCLUDED.type,
			config_group = EXCLUDED.config_group,
			label = EXCLUDED.label,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *ConfigRepo) Get(ctx context.Context, key string) (models.SiteConfig, error) {
	const op = "repository.ConfigRepo.Get"

	query, args, err := r.sb.Select("key", "value", "type", "config_group", "label", "created_at", "updated_at").
		From(siteConfigTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return models.SiteConfig{}, fmt.Errorf("%s: %w", op, err)
	}

	var config models.SiteConfig
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&config.Key,
		&config.Value,
		&config.Type,
		&config.Group,
		&config.Label,
		&config.CreatedAt,
		&config.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.SiteConfig{}, fmt.Errorf("%s: %w", op, storage.ErrConfigNotFound)
		}
		return models.SiteConfig{}, fmt.Errorf("%s: %w", op, err)
	}

	return config, nil
}

func (r *ConfigRepo) List(ctx context.Context) ([]models.SiteConfig, error) {
	const op = "repository.ConfigRepo.List"

	return r.list(ctx, op, r.sb.Select("key", "value", "type", "config_group", "label", "created_at", "updated_at").
		From(siteConfigTable).
		OrderBy("config_group ASC", "key ASC"))
}

func (r *ConfigRepo) ListByGroup(ctx context.Context, group string) ([]models.SiteConfig, error) {
	const op = "repository.ConfigRepo.ListByGroup"

	return r.list(ctx, op, r.sb.Select("key", "value", "type", "config_group", "label", "created_at", "updated_at").
		From(siteConfigTable).
		Where(sq.Eq{"config_group": group}).
		OrderBy("key ASC"))
}

func (r *ConfigRepo) list(ctx context.Context, op string, builder sq.SelectBuilder) ([]models.SiteConfig, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var configs []models.SiteConfig
	for rows.Next() {
		var config models.SiteConfig
		err := rows.Scan(
			&config.Key,
			&config.Value,
			&config.Type,
			&config.Group,
			&config.Label,
			&config.CreatedAt,
			&config.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		configs = append(configs, config)
	}

	return configs, nil
}
