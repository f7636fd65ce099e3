package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	apperrors "galleria/internal/storage"

	"github.com/google/uuid"
)

// FileStorage persists uploaded media files and resolves their public URLs.
type FileStorage interface {
	Save(ctx context.Context, file *multipart.FileHeader, subPath string) (filePath string, fileSize int64, err error)
	Delete(ctx context.Context, filePath string) error
	GetFullPath(relativePath string) string
	FileURL(relativePath string) string
	BaseURL() string
	GetBaseDir() string
}

// LocalFileStorage stores files on the local filesystem under baseDir
// and serves them under baseURL.
type LocalFileStorage struct {
	baseDir    string
	baseURL    string
	maxSize    int64
	extensions map[string]struct{}
}

func NewLocalFileStorage(baseDir, baseURL string, maxSize int64, allowedExtensions []string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	extensions := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		extensions[strings.ToLower(ext)] = struct{}{}
	}

	return &LocalFileStorage{
		baseDir:    baseDir,
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxSize:    maxSize,
		extensions: extensions,
	}, nil
}

func (s *LocalFileStorage) Save(ctx context.Context, file *multipart.FileHeader, subPath string) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", 0, apperrors.ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(s.extensions) > 0 {
		if _, ok := s.extensions[ext]; !ok {
			return "", 0, apperrors.ErrInvalidFileType
		}
	}

	// uuid prefix keeps concurrent uploads of the same filename apart
	storedName := uuid.New().String() + ext
	relPath := filepath.Join(subPath, storedName)
	fullPath := filepath.Join(s.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create directories: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", 0, fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	done := make(chan struct{})
	var size int64
	var copyErr error

	go func() {
		size, copyErr = io.Copy(dst, src)
		close(done)
	}()

	select {
	case <-done:
		if copyErr != nil {
			_ = os.Remove(fullPath)
			return "", 0, fmt.Errorf("failed to copy file: %w", copyErr)
		}
	case <-ctx.Done():
		_ = os.Remove(fullPath)
		return "", 0, ctx.Err()
	}

	return relPath, size, nil
}

func (s *LocalFileStorage) Delete(ctx context.Context, filePath string) error {
	fullPath := filepath.Join(s.baseDir, filePath)
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return apperrors.ErrFileNotFound
		}
		return err
	}
	return nil
}

func (s *LocalFileStorage) GetFullPath(relativePath string) string {
	return filepath.Join(s.baseDir, relativePath)
}

// FileURL resolves a stored relative path to its public URL.
func (s *LocalFileStorage) FileURL(relativePath string) string {
	return s.baseURL + "/" + filepath.ToSlash(relativePath)
}

func (s *LocalFileStorage) BaseURL() string {
	return s.baseURL
}

func (s *LocalFileStorage) GetBaseDir() string {
	return s.baseDir
}
