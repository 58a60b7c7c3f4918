package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// encodeForm builds a multipart body from ordered field pairs plus an
// optional image file. The backend expects product and registration payloads
// as multipart form data so image uploads ride along with the fields.
func encodeForm(fields [][2]string, imageField, imagePath string) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, kv := range fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", kv[0], err)
		}
	}

	if imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open image %s: %w", imagePath, err)
		}
		defer f.Close()

		part, err := w.CreateFormFile(imageField, filepath.Base(imagePath))
		if err != nil {
			return nil, "", fmt.Errorf("failed to add image part: %w", err)
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, "", fmt.Errorf("failed to read image %s: %w", imagePath, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
