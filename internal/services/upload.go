package services

import (
	"fmt"
	"io"
	"mime/multipart"
)

type UploadReader interface {
	ReadFile(file *multipart.FileHeader) ([]byte, error)
}

type uploadReader struct {
	maxFileSize int64
}

// NewUploadReader reads uploads into memory. Nothing touches the disk.
func NewUploadReader(maxFileSize int64) UploadReader {
	return &uploadReader{
		maxFileSize: maxFileSize,
	}
}

func (u *uploadReader) ReadFile(file *multipart.FileHeader) ([]byte, error) {
	if u.maxFileSize > 0 && file.Size > u.maxFileSize {
		return nil, NewFileTooLargeError(u.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return nil, NewInternalError("Failed to read uploaded resume.", fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, NewInternalError("Failed to read uploaded resume.", fmt.Errorf("failed to read uploaded file: %w", err))
	}

	return data, nil
}
