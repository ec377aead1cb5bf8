// Package raster prepares pixel data for non-vector output: uniform
// resampling, transparency flattening, and hand-off to the external codecs.
package raster

import (
	"image"

	"golang.org/x/image/draw"
)

// Resize scales img uniformly in both dimensions with premultiplied-alpha
// CatmullRom resampling. Premultiplying before filtering prevents dark halo
// artifacts at transparent edges. A scale of 1 (or less than or equal to 0)
// returns the input unchanged.
func Resize(img *image.NRGBA, scale float64) *image.NRGBA {
	if scale <= 0 || scale == 1 {
		return img
	}
	b := img.Bounds()
	dw := int(float64(b.Dx())*scale + 0.5)
	dh := int(float64(b.Dy())*scale + 0.5)
	if dw < 1 {
		dw = 1
	}
	if dh < 1 {
		dh = 1
	}

	// Premultiply alpha
	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := premul.PixOffset(x, y)
			a := float64(img.Pix[si+3]) / 255.0
			premul.Pix[di] = uint8(float64(img.Pix[si])*a + 0.5)
			premul.Pix[di+1] = uint8(float64(img.Pix[si+1])*a + 0.5)
			premul.Pix[di+2] = uint8(float64(img.Pix[si+2])*a + 0.5)
			premul.Pix[di+3] = img.Pix[si+3]
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	// Unpremultiply alpha
	result := image.NewNRGBA(dst.Bounds())
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			si := dst.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := float64(dst.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				result.Pix[di] = clamp8(float64(dst.Pix[si]) * inv)
				result.Pix[di+1] = clamp8(float64(dst.Pix[si+1]) * inv)
				result.Pix[di+2] = clamp8(float64(dst.Pix[si+2]) * inv)
			}
			result.Pix[di+3] = dst.Pix[si+3]
		}
	}

	return result
}

// Flatten composites the image onto an opaque white canvas. Formats without
// an alpha channel need this before encoding.
func Flatten(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			si := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			di := out.PixOffset(x, y)
			a := float64(img.Pix[si+3]) / 255.0
			w := 255.0 * (1.0 - a)
			out.Pix[di] = clamp8(float64(img.Pix[si])*a + w)
			out.Pix[di+1] = clamp8(float64(img.Pix[si+1])*a + w)
			out.Pix[di+2] = clamp8(float64(img.Pix[si+2])*a + w)
			out.Pix[di+3] = 255
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
