package services

import (
	"bytes"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFileHeader(t *testing.T, name string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("resume", name)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.Len(t, form.File["resume"], 1)
	return form.File["resume"][0]
}

func TestUploadReader_ReadFile(t *testing.T) {
	data := minimalPDF("hello")
	header := buildFileHeader(t, "cv.pdf", data)

	got, err := NewUploadReader(int64(len(data))).ReadFile(header)

	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestUploadReader_TooLarge(t *testing.T) {
	header := buildFileHeader(t, "cv.pdf", bytes.Repeat([]byte("a"), 64))

	_, err := NewUploadReader(32).ReadFile(header)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileTooLarge))
	assert.Equal(t, "Resume file too large. Max size: 32 bytes", err.Error())

	var analysisErr *AnalysisError
	require.True(t, errors.As(err, &analysisErr))
	assert.Equal(t, KindClientInput, analysisErr.Kind)
}

func TestUploadReader_NoLimit(t *testing.T) {
	header := buildFileHeader(t, "cv.pdf", bytes.Repeat([]byte("a"), 64))

	got, err := NewUploadReader(0).ReadFile(header)

	require.NoError(t, err)
	assert.Len(t, got, 64)
}
