package imageio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeSniffsFormat(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	dec, format, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if b := dec.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("bounds = %v", b)
	}
}

func TestLoad(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "a.png")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	_, format, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}

	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("want error for missing file")
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, _, err := Decode(strings.NewReader("definitely not an image"))
	if err == nil {
		t.Fatal("want error for undecodable data")
	}
}

func TestToNRGBAPassthrough(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	if ToNRGBA(img) != img {
		t.Error("origin-anchored NRGBA must pass through unchanged")
	}
}

func TestToNRGBANormalizesOrigin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(2, 3, 6, 7))
	img.SetNRGBA(2, 3, color.NRGBA{R: 77, G: 88, B: 99, A: 255})

	out := ToNRGBA(img)
	if out.Bounds().Min != (image.Point{}) {
		t.Fatalf("bounds not at origin: %v", out.Bounds())
	}
	if b := out.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("size = %dx%d, want 4x4", b.Dx(), b.Dy())
	}
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{77, 88, 99, 255}) {
		t.Errorf("pixel not shifted with bounds: %v", got)
	}
}

func TestToNRGBAConvertsOtherModels(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	out := ToNRGBA(src)
	if got := out.NRGBAAt(1, 1); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("conversion lost pixel: %v", got)
	}
}
