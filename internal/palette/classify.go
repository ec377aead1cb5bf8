package palette

import "image"

// LabelMap assigns every pixel of an image to a palette index. Labels are
// stored as a flat row-major grid; k never exceeds MaxColors so uint8 is
// enough.
type LabelMap struct {
	W, H   int
	Labels []uint8
}

// At returns the label at (x, y). Callers keep coordinates in bounds.
func (m *LabelMap) At(x, y int) uint8 {
	return m.Labels[y*m.W+x]
}

// Classify maps every pixel of img to the index of the nearest palette
// color by Euclidean RGB distance. Unlike Extract this runs at full
// resolution: every pixel, not a sample. Ties go to the lowest index, and
// the result is a pure function of its inputs.
func Classify(img *image.NRGBA, pal Palette) *LabelMap {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	lm := &LabelMap{W: w, H: h, Labels: make([]uint8, w*h)}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			r := int(img.Pix[i])
			g := int(img.Pix[i+1])
			bl := int(img.Pix[i+2])

			best := 0
			bestDist := int(^uint(0) >> 1)
			for ci, c := range pal {
				dr := r - int(c.R)
				dg := g - int(c.G)
				db := bl - int(c.B)
				d := dr*dr + dg*dg + db*db
				if d < bestDist {
					bestDist = d
					best = ci
				}
			}
			lm.Labels[y*w+x] = uint8(best)
		}
	}
	return lm
}
