package source

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 100, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestImageSourceSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "one.png")
	writePNG(t, path, 30, 20)

	src, err := NewImageSource(path)
	if err != nil {
		t.Fatalf("NewImageSource failed: %v", err)
	}
	defer src.Close()

	if src.PageCount() != 1 {
		t.Fatalf("page count = %d, expected 1", src.PageCount())
	}
	w, h, err := src.GetPageDimensions(0)
	if err != nil {
		t.Fatalf("GetPageDimensions failed: %v", err)
	}
	if w != 30 || h != 20 {
		t.Errorf("dimensions = %vx%v, expected 30x20", w, h)
	}
	img, err := src.RenderPage(0, 150)
	if err != nil {
		t.Fatalf("RenderPage failed: %v", err)
	}
	if img.Bounds().Dx() != 30 {
		t.Errorf("rendered width = %d", img.Bounds().Dx())
	}
}

func TestImageSourceDirectory(t *testing.T) {
	dir := t.TempDir()
	// Created out of name order; pages must come back sorted.
	writePNG(t, filepath.Join(dir, "b.png"), 10, 10)
	writePNG(t, filepath.Join(dir, "a.png"), 10, 10)
	if err := os.WriteFile(filepath.Join(dir, "skip.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	src, err := NewImageSource(dir)
	if err != nil {
		t.Fatalf("NewImageSource failed: %v", err)
	}
	defer src.Close()

	if src.PageCount() != 2 {
		t.Fatalf("page count = %d, expected 2", src.PageCount())
	}
	if filepath.Base(src.PagePath(0)) != "a.png" || filepath.Base(src.PagePath(1)) != "b.png" {
		t.Errorf("pages not name-sorted: %s, %s", src.PagePath(0), src.PagePath(1))
	}
}

func TestImageSourceEmptyDirectory(t *testing.T) {
	if _, err := NewImageSource(t.TempDir()); err == nil {
		t.Error("expected an error for a directory without images")
	}
}

func TestImageSourceMissingPath(t *testing.T) {
	if _, err := NewImageSource(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing path")
	}
}
