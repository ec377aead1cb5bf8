package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"golang.org/x/image/webp"
)

func TestNormalizeFormat(t *testing.T) {
	cases := []struct{ in, want string }{
		{"png", "png"},
		{"PNG", "png"},
		{"image/png", "png"},
		{"jpg", "jpeg"},
		{"image/jpg", "jpeg"},
		{"jpeg", "jpeg"},
		{"image/svg+xml", "svg"},
		{"svg", "svg"},
		{" webp ", "webp"},
	}
	for _, c := range cases {
		if got := NormalizeFormat(c.in); got != c.want {
			t.Errorf("NormalizeFormat(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNeedsFlatten(t *testing.T) {
	if !NeedsFlatten("image/jpeg") {
		t.Error("jpeg must flatten")
	}
	for _, f := range []string{"png", "webp", "svg"} {
		if NeedsFlatten(f) {
			t.Errorf("%s must not flatten", f)
		}
	}
}

func TestFlattenWhiteBackground(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, A: 0})   // fully transparent
	img.SetNRGBA(1, 0, color.NRGBA{R: 100, A: 255}) // fully opaque

	out := Flatten(img)
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("transparent pixel flattened to %v, want white", got)
	}
	if got := out.NRGBAAt(1, 0); got != (color.NRGBA{100, 0, 0, 255}) {
		t.Errorf("opaque pixel changed to %v", got)
	}
	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 255 {
			t.Fatal("flattened image still carries transparency")
		}
	}
}

func TestResizeDimensions(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	half := Resize(img, 0.5)
	if b := half.Bounds(); b.Dx() != 5 || b.Dy() != 5 {
		t.Errorf("half scale: got %dx%d, want 5x5", b.Dx(), b.Dy())
	}

	tiny := Resize(img, 0.01)
	if b := tiny.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("tiny scale: got %dx%d, want 1x1", b.Dx(), b.Dy())
	}

	if Resize(img, 1.0) != img {
		t.Error("identity scale must return the input")
	}
	if Resize(img, 0) != img {
		t.Error("zero scale must return the input")
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	var buf bytes.Buffer
	if err := Encode(&buf, img, "bmp3000", 1.0); err == nil {
		t.Fatal("want error for unsupported format")
	}
}

func TestEncodeJPEGFlattens(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	// Leave every pixel fully transparent.
	var buf bytes.Buffer
	if err := Encode(&buf, img, "jpeg", 0.9); err != nil {
		t.Fatal(err)
	}
	dec, err := jpeg.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	r, g, b, _ := dec.At(0, 0).RGBA()
	if r < 0xf000 || g < 0xf000 || b < 0xf000 {
		t.Errorf("transparent input did not land on white: got %v", dec.At(0, 0))
	}
}

func TestEncodeWebPRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 80), G: uint8(y * 80), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img, "webp", 1.0); err != nil {
		t.Fatal(err)
	}
	dec, err := webp.Decode(&buf)
	if err != nil {
		t.Fatalf("decode own webp output: %v", err)
	}
	if b := dec.Bounds(); b.Dx() != 3 || b.Dy() != 3 {
		t.Errorf("round trip size %dx%d, want 3x3", b.Dx(), b.Dy())
	}
}
