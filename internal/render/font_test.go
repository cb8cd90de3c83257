package render

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFontEmptyPathUsesBuiltin(t *testing.T) {
	fonts, err := LoadFont("")
	if err != nil {
		t.Fatalf("LoadFont failed: %v", err)
	}
	if fonts.Font() == nil {
		t.Fatal("nil font")
	}
	if fonts.Custom() {
		t.Error("built-in font reported as custom")
	}
}

func TestLoadFontMissingFileFallsBack(t *testing.T) {
	fonts, err := LoadFont(filepath.Join(t.TempDir(), "missing.ttf"))
	if err != nil {
		t.Fatalf("LoadFont must not fail on a missing file: %v", err)
	}
	if fonts.Font() == nil {
		t.Fatal("nil font")
	}
	if fonts.Custom() {
		t.Error("fallback font reported as custom")
	}
}

func TestLoadFontGarbageFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	fonts, err := LoadFont(path)
	if err != nil {
		t.Fatalf("LoadFont must not fail on an unparseable file: %v", err)
	}
	if fonts.Custom() {
		t.Error("unparseable font reported as custom")
	}
}
