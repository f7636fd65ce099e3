package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"

	"galleria/internal/domain/models"
	"galleria/internal/lib/logger/sl"
	storage "galleria/internal/storage/filestorage"
)

// MediaService handles admin media uploads. It only produces URL
// strings; the slider and content layers consume those URLs and never
// touch the upload mechanism.
type MediaService struct {
	log         *slog.Logger
	fileStorage storage.FileStorage
}

func NewMediaService(log *slog.Logger, fileStorage storage.FileStorage) *MediaService {
	return &MediaService{
		log:         log,
		fileStorage: fileStorage,
	}
}

// Upload stores every file and returns its public URL. The first
// failure aborts the batch; files already stored stay stored.
func (s *MediaService) Upload(ctx context.Context, files []*multipart.FileHeader, subPath string) ([]models.UploadedFile, error) {
	const op = "media_service.Upload"

	log := s.log.With(
		slog.String("op", op),
		slog.Int("files", len(files)),
	)

	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", op, &models.ValidationError{Errors: []string{"no files supplied"}})
	}

	uploaded := make([]models.UploadedFile, 0, len(files))
	for _, file := range files {
		relPath, size, err := s.fileStorage.Save(ctx, file, subPath)
		if err != nil {
			log.Error("failed to save file", slog.String("filename", file.Filename), sl.Err(err))
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		log.Info("file stored",
			slog.String("filename", file.Filename),
			slog.String("path", relPath),
			slog.Int64("size", size),
		)

		uploaded = append(uploaded, models.UploadedFile{
			Name: file.Filename,
			URL:  s.fileStorage.FileURL(relPath),
		})
	}

	return uploaded, nil
}
