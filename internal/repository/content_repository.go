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

const sectionContentTable = "section_contents"

type ContentRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewContentRepo(db *pgxpool.Pool) *ContentRepo {
	return &ContentRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Upsert inserts the block or, when (section_key, locale) already
// exists, overwrites its mutable fields. Idempotent by construction.
func (r *ContentRepo) Upsert(ctx context.Context, content models.SectionContent) error {
	const op = "repository.ContentRepo.Upsert"

	query, args, err := r.sb.Insert(sectionContentTable).
		Columns("section_key", "locale", "content", "is_active").
		Values(content.SectionKey, content.Locale, content.Content, content.IsActive).
		Suffix(`ON CONFLICT (section_key, locale) DO UPDATE SET
			content = EXCLUDED.content,
			is_active = EXCLUDED.is_active,
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

func (r *ContentRepo) Get(ctx context.Context, sectionKey, locale string) (models.SectionContent, error) {
	const op = "repository.ContentRepo.Get"

	query, args, err := r.sb.Select("section_key", "locale", "content", "is_active", "created_at", "updated_at").
		From(sectionContentTable).
		Where(sq.Eq{"section_key": sectionKey, "locale": locale}).
		ToSql()
	if err != nil {
		return models.SectionContent{}, fmt.Errorf("%s: %w", op, err)
	}

	var content models.SectionContent
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&content.SectionKey,
		&content.Locale,
		&content.Content,
		&content.IsActive,
		&content.CreatedAt,
		&content.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.SectionContent{}, fmt.Errorf("%s: %w", op, storage.ErrContentNotFound)
		}
		return models.SectionContent{}, fmt.Errorf("%s: %w", op, err)
	}

	return content, nil
}

func (r *ContentRepo) ListByLocale(ctx context.Context, locale string) ([]models.SectionContent, error) {
	const op = "repository.ContentRepo.ListByLocale"

	query, args, err := r.sb.Select("section_key", "locale", "content", "is_active", "created_at", "updated_at").
		From(sectionContentTable).
		Where(sq.Eq{"locale": locale, "is_active": true}).
		OrderBy("section_key ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var contents []models.SectionContent
	for rows.Next() {
		var content models.SectionContent
		err := rows.Scan(
			&content.SectionKey,
			&content.Locale,
			&content.Content,
			&content.IsActive,
			&content.CreatedAt,
			&content.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		contents = append(contents, content)
	}

	return contents, nil
}
