package preview

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small solid PNG into dir and returns its path.
func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "test.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, A: 255})
		}
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestCache_LoadAndEvict(t *testing.T) {
	cache := NewCache()
	path := writeTestPNG(t, t.TempDir())

	img, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Errorf("dimensions: got %v, want 4x4", img.Bounds())
	}
	if cache.Len() != 1 {
		t.Errorf("Len: got %d, want 1", cache.Len())
	}

	// Second load comes from the cache even after the file disappears.
	if err := os.Remove(path); err != nil {
		t.Fatalf("failed to remove test image: %v", err)
	}
	if _, err := cache.Load(path); err != nil {
		t.Errorf("cached Load failed: %v", err)
	}

	cache.Evict(path)
	if cache.Len() != 0 {
		t.Errorf("Len after Evict: got %d, want 0", cache.Len())
	}
	if _, err := cache.Load(path); err == nil {
		t.Error("Load should fail after eviction once the file is gone")
	}
}

func TestCache_LoadErrors(t *testing.T) {
	cache := NewCache()

	if _, err := cache.Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load should fail for a missing file")
	}

	notImage := filepath.Join(t.TempDir(), "not-image.png")
	if err := os.WriteFile(notImage, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := cache.Load(notImage); err == nil {
		t.Error("Load should fail for a non-image file")
	}
}

func TestCache_Clear(t *testing.T) {
	cache := NewCache()
	path := writeTestPNG(t, t.TempDir())

	if _, err := cache.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len after Clear: got %d, want 0", cache.Len())
	}
}
