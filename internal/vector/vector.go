// Package vector runs the full raster-to-vector pipeline: palette
// extraction, pixel classification, contour tracing, curve smoothing and
// document composition.
package vector

import (
	"bytes"
	"fmt"
	"image"

	"rastervec/internal/imageio"
	"rastervec/internal/palette"
	"rastervec/internal/raster"
	"rastervec/internal/svg"
	"rastervec/internal/trace"
)

// DefaultMaxDim bounds the working dimension before tracing. The clamp
// applies only to the vector path; plain raster conversion is never
// clamped. It exists purely to bound tracer runtime on large images.
const DefaultMaxDim = 1024

// DefaultColors is the palette size used when the caller passes zero.
const DefaultColors = 16

// Options configures one vectorization.
type Options struct {
	Colors    int            // palette size, clamped to [2, 64]
	Method    palette.Method // palette derivation method
	Despeckle float64        // min region area as fraction of image; 0 disables
	MaxDim    int            // working dimension clamp; 0 means DefaultMaxDim
}

// Vectorize converts img into a layered SVG document. It is a pure,
// synchronous function of its inputs: running it twice on the same pixel
// data and options produces byte-identical output (with the default Fixed
// palette method).
func Vectorize(img image.Image, opt Options) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("vector: nil image")
	}
	if opt.Colors == 0 {
		opt.Colors = DefaultColors
	}
	if opt.MaxDim <= 0 {
		opt.MaxDim = DefaultMaxDim
	}

	buf := imageio.ToNRGBA(img)
	w, h := buf.Bounds().Dx(), buf.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("vector: empty image")
	}
	if m := max(w, h); m > opt.MaxDim {
		buf = raster.Resize(buf, float64(opt.MaxDim)/float64(m))
		w, h = buf.Bounds().Dx(), buf.Bounds().Dy()
	}

	pal := palette.ExtractWith(buf, opt.Colors, opt.Method)
	lm := palette.Classify(buf, pal)
	if opt.Despeckle > 0 {
		palette.Despeckle(lm, opt.Despeckle)
	}

	paths := make([][]string, len(pal))
	for ci := range pal {
		for _, c := range trace.TraceColor(lm, uint8(ci)) {
			if d := svg.SmoothContour(c); d != "" {
				paths[ci] = append(paths[ci], d)
			}
		}
	}

	var out bytes.Buffer
	svg.Compose(&out, w, h, pal, paths)
	return out.Bytes(), nil
}
