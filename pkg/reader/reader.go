package reader

// Text extraction for uploaded documents. Only the formats listed in
// supported are accepted, everything else is rejected at upload time.

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/dslipak/pdf"
)

const (
	KindPDF = "pdf"
	KindTXT = "txt"
)

var supported = map[string]string{
	".pdf": KindPDF,
	".txt": KindTXT,
}

// Kind maps a filename to a document kind, or reports the extension as
// unsupported.
func Kind(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	kind, ok := supported[ext]
	if !ok {
		return "", fmt.Errorf("unsupported file type %q", ext)
	}
	return kind, nil
}

// Extract pulls plain text out of an uploaded file body.
func Extract(filename string, data []byte) (string, error) {
	kind, err := Kind(filename)
	if err != nil {
		return "", err
	}

	switch kind {
	case KindPDF:
		return extractPDF(data)
	case KindTXT:
		return extractTXT(data)
	default:
		return "", fmt.Errorf("unsupported file type %q", kind)
	}
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf, %w", err)
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text, %w", err)
	}

	var b strings.Builder
	if _, err = io.Copy(&b, plain); err != nil {
		return "", fmt.Errorf("failed to read pdf text, %w", err)
	}
	return strings.TrimSpace(b.String()), nil
}

func extractTXT(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("text file is not valid utf-8")
	}
	return strings.TrimSpace(string(data)), nil
}
