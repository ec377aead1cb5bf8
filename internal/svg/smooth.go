// Package svg turns traced contours into quadratic path data and composes
// the layered vector document.
package svg

import (
	"strconv"
	"strings"

	"rastervec/internal/trace"
)

// SmoothContour converts a closed polyline into quadratic path data by
// corner cutting: every contour point becomes a control point and the
// midpoint to the next point becomes the curve endpoint. The path starts at
// the midpoint between the last and first point, so it closes seamlessly.
// Contours with fewer than 3 points are degenerate noise and yield "".
func SmoothContour(c trace.Contour) string {
	if len(c) < 3 {
		return ""
	}

	var b strings.Builder
	last := c[len(c)-1]
	b.WriteString("M ")
	writeCoord(&b, (last.X+c[0].X)/2)
	writeCoord(&b, (last.Y+c[0].Y)/2)
	for i, p := range c {
		next := c[(i+1)%len(c)]
		b.WriteString("Q ")
		writeCoord(&b, p.X)
		writeCoord(&b, p.Y)
		writeCoord(&b, (p.X+next.X)/2)
		writeCoord(&b, (p.Y+next.Y)/2)
	}
	b.WriteString("Z")
	return b.String()
}

func writeCoord(b *strings.Builder, v float64) {
	b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	b.WriteByte(' ')
}
