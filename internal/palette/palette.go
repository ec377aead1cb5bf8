// Package palette derives fixed-size color palettes from images and
// classifies every pixel against the nearest palette entry.
package palette

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB triple. The alpha channel of source pixels is
// ignored for palette purposes.
type Color struct {
	R, G, B uint8
}

// Hex returns the #rrggbb form used for document fills.
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// Palette is an ordered list of colors. Index order is paint order: a later
// entry overlays an earlier one wherever their regions coincide, so the
// order must survive all the way to the composed document.
type Palette []Color

const (
	// MinColors and MaxColors bound the configurable palette size.
	MinColors = 2
	MaxColors = 64

	// Iteration count and sample stride are fixed, not configurable. They
	// bound worst-case latency on large images.
	clusterIterations = 5
	sampleStride      = 4 // pixels; 16 bytes in the 4-channel layout
)

func clampColors(k int) int {
	if k < MinColors {
		return MinColors
	}
	if k > MaxColors {
		return MaxColors
	}
	return k
}

// Extract derives a palette of exactly k colors from img using iterative
// clustering. The procedure is fully deterministic: centroids are seeded at
// evenly spaced pixel positions, a fixed sparse sample of pixels is
// re-assigned for a fixed number of iterations, and distance ties go to the
// lowest centroid index. A centroid that attracts no samples in an
// iteration keeps its previous value, which can leave redundant palette
// entries on images with fewer distinct clusters than k.
func Extract(img *image.NRGBA, k int) Palette {
	k = clampColors(k)
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	total := w * h

	pal := make(Palette, k)
	if total == 0 {
		return pal
	}

	at := func(p int) (uint8, uint8, uint8) {
		x, y := p%w, p/w
		i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
		return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
	}

	step := total / k
	for ci := range pal {
		p := ci * step
		if p >= total {
			p = total - 1
		}
		r, g, bl := at(p)
		pal[ci] = Color{r, g, bl}
	}

	sumR := make([]int64, k)
	sumG := make([]int64, k)
	sumB := make([]int64, k)
	counts := make([]int64, k)

	for range clusterIterations {
		for ci := range counts {
			sumR[ci], sumG[ci], sumB[ci], counts[ci] = 0, 0, 0, 0
		}
		for p := 0; p < total; p += sampleStride {
			r, g, bl := at(p)
			best := 0
			bestDist := int(^uint(0) >> 1)
			for ci, c := range pal {
				dr := int(r) - int(c.R)
				dg := int(g) - int(c.G)
				db := int(bl) - int(c.B)
				d := dr*dr + dg*dg + db*db
				if d < bestDist {
					bestDist = d
					best = ci
				}
			}
			sumR[best] += int64(r)
			sumG[best] += int64(g)
			sumB[best] += int64(bl)
			counts[best]++
		}
		for ci := range pal {
			n := counts[ci]
			if n == 0 {
				continue // empty bucket keeps its previous centroid
			}
			pal[ci] = Color{
				R: uint8(sumR[ci] / n),
				G: uint8(sumG[ci] / n),
				B: uint8(sumB[ci] / n),
			}
		}
	}

	return pal
}
