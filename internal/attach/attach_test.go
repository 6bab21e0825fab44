package attach_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aarogya/internal/attach"
)

// minimal valid PNG header followed by padding up to the requested size
func writePNG(t *testing.T, dir string, size int) string {
	t.Helper()
	header := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	data := make([]byte, size)
	copy(data, header)
	path := filepath.Join(dir, "scan.png")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestPrepareAcceptsSmallPNG(t *testing.T) {
	path := writePNG(t, t.TempDir(), 1024*1024)

	att, err := attach.Prepare(path)
	if err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if att.MimeType != "image/png" {
		t.Fatalf("mime = %q, want image/png", att.MimeType)
	}
	if att.SizeBytes != 1024*1024 {
		t.Fatalf("size = %d", att.SizeBytes)
	}
	if !strings.HasPrefix(att.DataURL, "data:image/png;base64,") {
		t.Fatalf("data URL shape wrong: %q", att.DataURL[:40])
	}
}

func TestPrepareRejectsOversizedFile(t *testing.T) {
	path := writePNG(t, t.TempDir(), 6*1024*1024)

	if _, err := attach.Prepare(path); !errors.Is(err, attach.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestPrepareRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, bytes.Repeat([]byte("plain text "), 10), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := attach.Prepare(path); !errors.Is(err, attach.ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
}

func TestPrepareMissingFile(t *testing.T) {
	if _, err := attach.Prepare(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
