package cv

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// ErrMarker is embedded in the returned text when per-format extraction fails
// in a way that still produced a file on disk (scanned PDF, empty DOCX, ...).
// Callers treat any text containing it as "no usable text" rather than a fault.
const ErrMarker = "text extraction failed"

type Parser struct {
	uploadsDir string
}

func NewParser(uploadsDir string) *Parser {
	return &Parser{uploadsDir: uploadsDir}
}

// Save writes an uploaded document into the uploads directory and returns its
// path. The filename is expected to be sanitized by the caller.
func (p *Parser) Save(filename string, r io.Reader) (string, int64, error) {
	if err := os.MkdirAll(p.uploadsDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	path := filepath.Join(p.uploadsDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		return "", 0, fmt.Errorf("failed to save file: %w", err)
	}
	return path, size, nil
}

// Parse extracts text from a PDF/DOCX/TXT file on disk. Unsupported extensions
// and unreadable files are errors; a readable file that yields no text returns
// a string carrying ErrMarker instead.
func (p *Parser) Parse(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return fmt.Sprintf("%s: %v", ErrMarker, err), nil
		}
		if strings.TrimSpace(res.Body) == "" {
			return ErrMarker + ": document is empty or scanned", nil
		}
		return res.Body, nil
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		if strings.TrimSpace(string(content)) == "" {
			return ErrMarker + ": text file is empty", nil
		}
		return string(content), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}
}

// Failed reports whether parsed text is an error marker rather than content.
func Failed(text string) bool {
	return strings.Contains(strings.ToLower(text), ErrMarker)
}

// AllowedExt reports whether the extension (with leading dot) is a supported
// CV format.
func AllowedExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".pdf", ".doc", ".docx", ".rtf", ".odt", ".txt":
		return true
	}
	return false
}

// SanitizeFilename strips path separators and anything outside a conservative
// character set so uploads cannot escape the uploads directory.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
