package repository

import (
	"context"
	"errors"
	"fmt"

	"galleria/internal/domain/models"
	"galleria/internal/storage"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"
)

const (
	sliderTable     = "sliders"
	sliderItemTable = "slider_items"
)

type SliderRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewSliderRepo(db *pgxpool.Pool) *SliderRepo {
	return &SliderRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateSlider inserts a slider, placing it after the current last
// slider of its section.
func (r *SliderRepo) CreateSlider(ctx context.Context, slider models.Slider) (models.Slider, error) {
	const op = "repository.SliderRepo.CreateSlider"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.Slider{}, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Select("COALESCE(MAX(position) + 1, 0)").
		From(sliderTable).
		Where(sq.Eq{"section": slider.Section}).
		ToSql()
	if err != nil {
		return models.Slider{}, fmt.Errorf("%s: %w", op, err)
	}

	var position int
	if err := tx.QueryRow(ctx, query, args...).Scan(&position); err != nil {
		return models.Slider{}, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err = r.sb.Insert(sliderTable).
		Columns("name", "slug", "section", "is_active", "position").
		Values(slider.Name, slider.Slug, slider.Section, slider.IsActive, position).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return models.Slider{}, fmt.Errorf("%s: %w", op, err)
	}

	created := slider
	created.Position = position
	err = tx.QueryRow(ctx, query, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.Slider{}, fmt.Errorf("%s: %w", op, storage.ErrSlugExists)
		}
		return models.Slider{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Slider{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *SliderRepo) GetSliderByID(ctx context.Context, id uuid.UUID) (models.Slider, error) {
	const op = "repository.SliderRepo.GetSliderByID"

	query, args, err := r.sb.Select("id", "name", "slug", "section", "is_active", "position", "created_at", "updated_at").
		From(sliderTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Slider{}, fmt.Errorf("%s: %w", op, err)
	}

	var slider models.Slider
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&slider.ID,
		&slider.Name,
		&slider.Slug,
		&slider.Section,
		&slider.IsActive,
		&slider.Position,
		&slider.CreatedAt,
		&slider.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Slider{}, fmt.Errorf("%s: %w", op, storage.ErrSliderNotFound)
		}
		return models.Slider{}, fmt.Errorf("%s: %w", op, err)
	}

	return slider, nil
}

func (r *SliderRepo) GetSliderBySlug(ctx context.Context, slug string) (models.Slider, error) {
	const op = "repository.SliderRepo.GetSliderBySlug"

	query, args, err := r.sb.Select("id", "name", "slug", "section", "is_active", "position", "created_at", "updated_at").
		From(sliderTable).
		Where(sq.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return models.Slider{}, fmt.Errorf("%s: %w", op, err)
	}

	var slider models.Slider
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&slider.ID,
		&slider.Name,
		&slider.Slug,
		&slider.Section,
		&slider.IsActive,
		&slider.Position,
		&slider.CreatedAt,
		&slider.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Slider{}, fmt.Errorf("%s: %w", op, storage.ErrSliderNotFound)
		}
		return models.Slider{}, fmt.Errorf("%s: %w", op, err)
	}

	return slider, nil
}

// ListActiveBySection returns the section's active sliders with their
// active items. Ordering is position ascending, id ascending on ties,
// on both levels.
func (r *SliderRepo) ListActiveBySection(ctx context.Context, section string) ([]models.SliderWithItems, error) {
	return r.ListActiveBySections(ctx, []string{section})
}

func (r *SliderRepo) ListActiveBySections(ctx context.Context, sections []string) ([]models.SliderWithItems, error) {
	const op = "repository.SliderRepo.ListActiveBySections"

	query, args, err := r.sb.Select("id", "name", "slug", "section", "is_active", "position", "created_at", "updated_at").
		From(sliderTable).
		Where("section = ANY(?)", pq.Array(sections)).
		Where(sq.Eq{"is_active": true}).
		OrderBy("position ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var sliders []models.SliderWithItems
	var sliderIDs []string
	byID := make(map[uuid.UUID]int)

	for rows.Next() {
		var slider models.Slider
		err := rows.Scan(
			&slider.ID,
			&slider.Name,
			&slider.Slug,
			&slider.Section,
			&slider.IsActive,
			&slider.Position,
			&slider.CreatedAt,
			&slider.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		byID[slider.ID] = len(sliders)
		sliderIDs = append(sliderIDs, slider.ID.String())
		sliders = append(sliders, models.SliderWithItems{Slider: slider})
	}

	if len(sliders) == 0 {
		return nil, nil
	}

	query, args, err = r.sb.Select(
		"id", "slider_id", "type", "url", "youtube_id",
		"title", "alt", "artist_name", "width", "height",
		"position", "is_active", "created_at",
	).
		From(sliderItemTable).
		Where("slider_id = ANY(?::uuid[])", pq.Array(sliderIDs)).
		Where(sq.Eq{"is_active": true}).
		OrderBy("position ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	itemRows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.SliderItem
		err := itemRows.Scan(
			&item.ID,
			&item.SliderID,
			&item.Type,
			&item.URL,
			&item.YoutubeID,
			&item.Title,
			&item.Alt,
			&item.ArtistName,
			&item.Width,
			&item.Height,
			&item.Position,
			&item.IsActive,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if idx, ok := byID[item.SliderID]; ok {
			sliders[idx].Items = append(sliders[idx].Items, item)
		}
	}

	return sliders, nil
}

// DeleteSlider removes the slider and all its items in one transaction.
func (r *SliderRepo) DeleteSlider(ctx context.Context, id uuid.UUID) error {
	const op = "repository.SliderRepo.DeleteSlider"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Delete(sliderItemTable).
		Where(sq.Eq{"slider_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query, args, err = r.sb.Delete(sliderTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrSliderNotFound)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AddItem appends the item to its slider, assigning the next free
// position (max + 1, or 0 for an empty slider).
func (r *SliderRepo) AddItem(ctx context.Context, item models.SliderItem) (models.SliderItem, error) {
	const op = "repository.SliderRepo.AddItem"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.SliderItem{}, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Select("1").
		From(sliderTable).
		Where(sq.Eq{"id": item.SliderID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return models.SliderItem{}, fmt.Errorf("%s: %w", op, err)
	}

	var one int
	if err := tx.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.SliderItem{}, fmt.Errorf("%s: %w", op, storage.ErrSliderNotFound)
		}
		return models.SliderItem{}, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err = r.sb.Select("COALESCE(MAX(position) + 1, 0)").
		From(sliderItemTable).
		Where(sq.Eq{"slider_id": item.SliderID}).
		ToSql()
	if err != nil {
		return models.SliderItem{}, fmt.Errorf("%s: %w", op, err)
	}

	var position int
	if err := tx.QueryRow(ctx, query, args...).Scan(&position); err != nil {
		return models.SliderItem{}, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err = r.sb.Insert(sliderItemTable).
		Columns(
			"slider_id", "type", "url", "youtube_id",
			"title", "alt", "artist_name", "width", "height",
			"position", "is_active",
		).
		Values(
			item.SliderID, item.Type, item.URL, item.YoutubeID,
			item.Title, item.Alt, item.ArtistName, item.Width, item.Height,
			position, item.IsActive,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.SliderItem{}, fmt.Errorf("%s: %w", op, err)
	}

	created := item
	created.Position = position
	if err := tx.QueryRow(ctx, query, args...).Scan(&created.ID, &created.CreatedAt); err != nil {
		return models.SliderItem{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.SliderItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return created, nil
}

func (r *SliderRepo) GetItemByID(ctx context.Context, itemID uuid.UUID) (models.SliderItem, error) {
	const op = "repository.SliderRepo.GetItemByID"

	query, args, err := r.sb.Select(
		"id", "slider_id", "type", "url", "youtube_id",
		"title", "alt", "artist_name", "width", "height",
		"position", "is_active", "created_at",
	).
		From(sliderItemTable).
		Where(sq.Eq{"id": itemID}).
		ToSql()
	if err != nil {
		return models.SliderItem{}, fmt.Errorf("%s: %w", op, err)
	}

	var item models.SliderItem
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&item.ID,
		&item.SliderID,
		&item.Type,
		&item.URL,
		&item.YoutubeID,
		&item.Title,
		&item.Alt,
		&item.ArtistName,
		&item.Width,
		&item.Height,
		&item.Position,
		&item.IsActive,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.SliderItem{}, fmt.Errorf("%s: %w", op, storage.ErrItemNotFound)
		}
		return models.SliderItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (r *SliderRepo) UpdateItem(ctx context.Context, item models.SliderItem) error {
	const op = "repository.SliderRepo.UpdateItem"

	query, args, err := r.sb.Update(sliderItemTable).
		Set("url", item.URL).
		Set("youtube_id", item.YoutubeID).
		Set("title", item.Title).
		Set("alt", item.Alt).
		Set("artist_name", item.ArtistName).
		Set("width", item.Width).
		Set("height", item.Height).
		Set("is_active", item.IsActive).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrItemNotFound)
	}

	return nil
}

// ToggleItemActive flips the soft-exclude flag and reports the new state.
func (r *SliderRepo) ToggleItemActive(ctx context.Context, itemID uuid.UUID) (bool, error) {
	const op = "repository.SliderRepo.ToggleItemActive"

	query, args, err := r.sb.Update(sliderItemTable).
		Set("is_active", sq.Expr("NOT is_active")).
		Where(sq.Eq{"id": itemID}).
		Suffix("RETURNING is_active").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	var isActive bool
	err = r.db.QueryRow(ctx, query, args...).Scan(&isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("%s: %w", op, storage.ErrItemNotFound)
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return isActive, nil
}

func (r *SliderRepo) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	const op = "repository.SliderRepo.DeleteItem"

	query, args, err := r.sb.Delete(sliderItemTable).
		Where(sq.Eq{"id": itemID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrItemNotFound)
	}

	return nil
}

// Reorder rewrites every item position to its index in orderedItemIDs.
// The supplied set must be exactly the slider's current item set; the
// whole renumbering happens in one transaction with the item rows
// locked, so a reader never observes a partially renumbered slider.
func (r *SliderRepo) Reorder(ctx context.Context, sliderID uuid.UUID, orderedItemIDs []uuid.UUID) error {
	const op = "repository.SliderRepo.Reorder"

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback(ctx)

	query, args, err := r.sb.Select("1").
		From(sliderTable).
		Where(sq.Eq{"id": sliderID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var one int
	if err := tx.QueryRow(ctx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, storage.ErrSliderNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	query, args, err = r.sb.Select("id").
		From(sliderItemTable).
		Where(sq.Eq{"slider_id": sliderID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	current := make(map[uuid.UUID]struct{})
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("%s: %w", op, err)
		}
		current[id] = struct{}{}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if len(orderedItemIDs) != len(current) {
		return fmt.Errorf("%s: %w", op, storage.ErrReorderMismatch)
	}
	seen := make(map[uuid.UUID]struct{}, len(orderedItemIDs))
	for _, id := range orderedItemIDs {
		if _, ok := current[id]; !ok {
			return fmt.Errorf("%s: %w", op, storage.ErrReorderMismatch)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s: %w", op, storage.ErrReorderMismatch)
		}
		seen[id] = struct{}{}
	}

	for position, id := range orderedItemIDs {
		query, args, err := r.sb.Update(sliderItemTable).
			Set("position", position).
			Where(sq.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
