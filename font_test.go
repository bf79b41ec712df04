package swatch

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func TestLoadFont(t *testing.T) {
	name := filepath.Join(t.TempDir(), "mono.ttf")
	if err := os.WriteFile(name, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFont(name); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	face, err := LoadFace(name, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer face.Close()
	if v := face.Metrics().Height.Ceil(); v < 20 {
		t.Errorf("expected line height of at least 20 pixels, got %d", v)
	}
}

func TestLoadFaceFallback(t *testing.T) {
	bogus := filepath.Join(t.TempDir(), "bogus.ttf")
	if err := os.WriteFile(bogus, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		Name     string
		NotExist bool
	}{
		{filepath.Join(t.TempDir(), "RobotoMono.ttf"), true},
		{"", true},
		{bogus, false},
	}
	for _, test := range testCases {
		t.Run(filepath.Base(test.Name), func(it *testing.T) {
			face, err := LoadFace(test.Name, 10)
			if face == nil {
				it.Fatal("expected fallback face")
			}
			defer face.Close()

			if !IsFontError(err) {
				it.Fatalf("expected *FontError, got %v", err)
			}
			var fe *FontError
			if errors.As(err, &fe) && fe.Name != test.Name {
				it.Errorf("expected font name %q, got %q", test.Name, fe.Name)
			}
			if v := errors.Is(err, fs.ErrNotExist); v != test.NotExist {
				it.Errorf("expected not exist %t, got %t (%v)", test.NotExist, v, err)
			}
			if _, ok := face.GlyphAdvance('#'); !ok {
				it.Error("expected fallback face to have a '#' glyph")
			}
		})
	}
}

func TestFallbackFont(t *testing.T) {
	if FallbackFont() == nil {
		t.Fatal("expected embedded font")
	}
}
