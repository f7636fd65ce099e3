package storage_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"testing"

	apperrors "galleria/internal/storage"
	storage "galleria/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)

	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("file")
	require.NoError(t, err)
	file.Close()

	return header
}

func TestLocalFileStorage_SaveAndDelete(t *testing.T) {
	baseDir := t.TempDir()
	fs, err := storage.NewLocalFileStorage(baseDir, "http://localhost:8080/uploads/", 1024, []string{".jpg", ".png"})
	require.NoError(t, err)

	header := createTestFile(t, "poster.jpg", "jpeg bytes")

	relPath, size, err := fs.Save(context.Background(), header, "sliders")
	require.NoError(t, err)
	assert.Equal(t, int64(len("jpeg bytes")), size)

	_, err = os.Stat(fs.GetFullPath(relPath))
	require.NoError(t, err)

	assert.Contains(t, fs.FileURL(relPath), "http://localhost:8080/uploads/sliders/")

	require.NoError(t, fs.Delete(context.Background(), relPath))

	err = fs.Delete(context.Background(), relPath)
	assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
}

func TestLocalFileStorage_RejectsWrongExtension(t *testing.T) {
	fs, err := storage.NewLocalFileStorage(t.TempDir(), "http://localhost:8080/uploads", 1024, []string{".jpg"})
	require.NoError(t, err)

	header := createTestFile(t, "payload.exe", "mz")

	_, _, err = fs.Save(context.Background(), header, "sliders")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
}

func TestLocalFileStorage_RejectsOversizedFile(t *testing.T) {
	fs, err := storage.NewLocalFileStorage(t.TempDir(), "http://localhost:8080/uploads", 4, []string{".jpg"})
	require.NoError(t, err)

	header := createTestFile(t, "big.jpg", "way more than four bytes")

	_, _, err = fs.Save(context.Background(), header, "sliders")
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}
