package storage

import "errors"

var (
	ErrSliderNotFound  = errors.New("slider not found")
	ErrItemNotFound    = errors.New("slider item not found")
	ErrContentNotFound = errors.New("section content not found")
	ErrConfigNotFound  = errors.New("config key not found")
	ErrSlugExists      = errors.New("slug already exists")
	ErrReorderMismatch = errors.New("reorder ids do not match current item set")
)

var (
	ErrFileTooLarge    = errors.New("file size exceeds limit")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileNotFound    = errors.New("file not found")
)
