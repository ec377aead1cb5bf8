package palette

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Method selects how a palette is derived. Fixed is the default and the
// only method with bit-reproducible output; the others trade determinism
// for perceptually nicer palettes on photographic input.
type Method int

const (
	MethodFixed Method = iota
	MethodKMeans
	MethodDominant
)

func (m Method) String() string {
	switch m {
	case MethodKMeans:
		return "kmeans"
	case MethodDominant:
		return "dominant"
	default:
		return "fixed"
	}
}

// ParseMethod maps a config/flag token to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "fixed":
		return MethodFixed, nil
	case "kmeans":
		return MethodKMeans, nil
	case "dominant", "dominantcolor":
		return MethodDominant, nil
	}
	return MethodFixed, fmt.Errorf("palette: unknown method %q", s)
}

// ExtractWith derives a palette of exactly k colors using the given method.
// The alternative methods fall back to Fixed when they cannot produce a
// full palette, so the length invariant holds for every method.
func ExtractWith(img *image.NRGBA, k int, m Method) Palette {
	k = clampColors(k)
	switch m {
	case MethodKMeans:
		if p := extractKMeans(img, k); len(p) == k {
			return p
		}
		fmt.Fprintln(os.Stderr, "Warning: kmeans palette incomplete, falling back to fixed clustering")
	case MethodDominant:
		if p := extractDominant(img, k); len(p) == k {
			return p
		}
		fmt.Fprintln(os.Stderr, "Warning: dominantcolor palette incomplete, falling back to fixed clustering")
	}
	return Extract(img, k)
}

// extractKMeans clusters a subsampled observation set with muesli/kmeans.
// Clusters are ordered by population so dominant colors take the low
// palette indices and paint first.
func extractKMeans(img *image.NRGBA, k int) Palette {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	// Subsample to keep kmeans tractable on large images.
	const maxSamples = 12000
	step := 1
	if w*h > maxSamples {
		step = int(math.Sqrt(float64(w*h)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(w*h, maxSamples))
	for y := 0; y < h; y += step {
		for x := 0; x < w; x += step {
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			if img.Pix[i+3] == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(img.Pix[i]) / 255.0,
				float64(img.Pix[i+1]) / 255.0,
				float64(img.Pix[i+2]) / 255.0,
			})
		}
	}
	if len(dataset) < k {
		return nil
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil || len(cc) != k {
		return nil
	}

	slices.SortFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	pal := make(Palette, 0, k)
	for _, c := range cc {
		if len(c.Center) < 3 {
			return nil
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		pal = append(pal, Color{
			R: uint8(col.R*255 + 0.5),
			G: uint8(col.G*255 + 0.5),
			B: uint8(col.B*255 + 0.5),
		})
	}
	return pal
}

// extractDominant picks the k strongest candidates from
// cenkalti/dominantcolor, weight order preserved.
func extractDominant(img *image.NRGBA, k int) Palette {
	candidates := dominantcolor.FindWeight(img, max(24, k*4))
	if len(candidates) < k {
		return nil
	}
	pal := make(Palette, 0, k)
	for _, c := range candidates[:k] {
		n := color.NRGBAModel.Convert(c.RGBA).(color.NRGBA)
		pal = append(pal, Color{R: n.R, G: n.G, B: n.B})
	}
	return pal
}
