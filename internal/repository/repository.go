package repository

import (
	"context"

	"galleria/internal/storage/postgresql"

	"github.com/jackc/pgx/v4/pgxpool"
)

type Repository struct {
	db      *pgxpool.Pool
	Slider  SliderRepository
	Content ContentRepository
	Config  ConfigRepository
}

func NewRepository(ctx context.Context, dsn string) (*Repository, error) {
	db, err := postgresql.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	return &Repository{
		db:      db,
		Slider:  NewSliderRepo(db),
		Content: NewContentRepo(db),
		Config:  NewConfigRepo(db),
	}, nil
}

func (r *Repository) Close() {
	r.db.Close()
}
