package cv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTxt(t *testing.T) {
	p := NewParser(t.TempDir())
	path := filepath.Join(t.TempDir(), "cv.txt")
	if err := os.WriteFile(path, []byte("John Smith\nEngineer\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	text, err := p.Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if text != "John Smith\nEngineer\n" {
		t.Errorf("text = %q", text)
	}
	if Failed(text) {
		t.Error("Failed = true for good text")
	}
}

func TestParseEmptyTxtReturnsMarker(t *testing.T) {
	p := NewParser(t.TempDir())
	path := filepath.Join(t.TempDir(), "empty.txt")
	os.WriteFile(path, []byte("  \n\t\n"), 0o644)

	text, err := p.Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !Failed(text) {
		t.Errorf("text = %q, want error marker", text)
	}
}

func TestParseMissingTxt(t *testing.T) {
	p := NewParser(t.TempDir())
	if _, err := p.Parse(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Parse of missing file should fail")
	}
}

func TestParseUnsupportedExtension(t *testing.T) {
	p := NewParser(t.TempDir())
	if _, err := p.Parse("cv.exe"); err == nil {
		t.Error("Parse of .exe should fail")
	}
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	p := NewParser(dir)

	path, size, err := p.Save("cv.txt", strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != 5 {
		t.Errorf("size = %d, want 5", size)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path = %q, want file under %q", path, dir)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("content = %q", content)
	}
}

func TestFailed(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"normal cv text", false},
		{ErrMarker + ": document is empty or scanned", true},
		{"Text Extraction Failed: broken pdf", true},
		{"", false},
	}
	for _, tc := range cases {
		if got := Failed(tc.in); got != tc.want {
			t.Errorf("Failed(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAllowedExt(t *testing.T) {
	for _, ext := range []string{".pdf", ".PDF", ".doc", ".docx", ".rtf", ".odt", ".txt"} {
		if !AllowedExt(ext) {
			t.Errorf("AllowedExt(%q) = false", ext)
		}
	}
	for _, ext := range []string{".exe", ".png", "", "txt"} {
		if AllowedExt(ext) {
			t.Errorf("AllowedExt(%q) = true", ext)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"resume.pdf", "resume.pdf"},
		{"../../etc/passwd", "passwd"},
		{"my resume (final).pdf", "my_resume__final_.pdf"},
		{"Résumé.pdf", "R_sum_.pdf"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
