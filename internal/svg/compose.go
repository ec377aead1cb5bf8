package svg

import (
	"fmt"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"rastervec/internal/palette"
)

// Compose writes the layered vector document: a viewBox matching the canvas,
// one full-canvas background rectangle filled with palette index 0, then one
// filled path per palette color in ascending index order. Paint order is
// palette order, so a later color overlays an earlier one wherever their
// regions coincide. A color with no surviving path data is omitted entirely.
func Compose(w io.Writer, width, height int, pal palette.Palette, paths [][]string) {
	canvas := svgo.New(w)
	canvas.Startview(width, height, 0, 0, width, height)

	bg := "#000000"
	if len(pal) > 0 {
		bg = pal[0].Hex()
	}
	canvas.Rect(0, 0, width, height, fmt.Sprintf(`fill="%s"`, bg))

	for ci, c := range pal {
		if ci >= len(paths) {
			break
		}
		d := joinPaths(paths[ci])
		if d == "" {
			continue
		}
		canvas.Path(d, fmt.Sprintf(`fill="%s"`, c.Hex()))
	}
	canvas.End()
}

func joinPaths(subpaths []string) string {
	kept := subpaths[:0:0]
	for _, p := range subpaths {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
