package service

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const pdfMime = "application/pdf"

// declaredPDF checks the type the client declared for the file, before any
// bytes are read or uploaded. Falls back to the extension when the part
// carries no Content-Type header.
func declaredPDF(file *multipart.FileHeader) bool {
	declared := strings.ToLower(strings.TrimSpace(file.Header.Get("Content-Type")))
	if declared != "" {
		return declared == pdfMime
	}
	return strings.EqualFold(filepath.Ext(file.Filename), ".pdf")
}

// readFile buffers the multipart payload, enforcing the size limit.
func readFile(file *multipart.FileHeader, maxBytes int64) ([]byte, error) {
	if file.Size > maxBytes {
		return nil, ErrFileTooLarge
	}

	handle, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", file.Filename, err)
	}
	defer handle.Close()

	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, io.LimitReader(handle, maxBytes+1)); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", file.Filename, err)
	}
	if int64(buf.Len()) > maxBytes {
		return nil, ErrFileTooLarge
	}

	return buf.Bytes(), nil
}

func sniffedPDF(payload []byte) bool {
	return mimetype.Detect(payload).Is(pdfMime)
}

func sniffedImage(payload []byte) bool {
	return strings.HasPrefix(mimetype.Detect(payload).String(), "image/")
}

// objectName builds the blob path: upload timestamp in milliseconds
// concatenated with the original filename. Collision avoidance is
// timestamp-based, not content-addressed.
func objectName(millis int64, filename string) string {
	return fmt.Sprintf("%d-%s", millis, filepath.Base(filename))
}
