package raster

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// NormalizeFormat reduces a target format identifier to its plain token:
// "image/png" becomes "png", "jpg" becomes "jpeg", and the vector format in
// any spelling becomes "svg".
func NormalizeFormat(id string) string {
	f := strings.ToLower(strings.TrimSpace(id))
	f = strings.TrimPrefix(f, "image/")
	switch f {
	case "jpg":
		return "jpeg"
	case "svg+xml":
		return "svg"
	}
	return f
}

// NeedsFlatten reports whether the format requires an opaque background
// because it cannot carry an alpha channel.
func NeedsFlatten(format string) bool {
	return NormalizeFormat(format) == "jpeg"
}

// Encode compresses img through the codec for the given format. quality is
// a scalar in [0.1, 1.0] and applies to lossy codecs; lossless formats
// ignore it. Formats without alpha support are flattened onto white first.
func Encode(w io.Writer, img *image.NRGBA, format string, quality float64) error {
	if quality < 0.1 {
		quality = 0.1
	}
	if quality > 1.0 {
		quality = 1.0
	}

	switch NormalizeFormat(format) {
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		return enc.Encode(w, img)
	case "jpeg":
		return jpeg.Encode(w, Flatten(img), &jpeg.Options{Quality: int(quality*100 + 0.5)})
	case "webp":
		return nativewebp.Encode(w, img, nil)
	default:
		return fmt.Errorf("raster: unsupported format %q", format)
	}
}
