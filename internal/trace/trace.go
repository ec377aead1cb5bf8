// Package trace extracts closed region boundaries from a label map with a
// marching-squares boundary walk.
package trace

import "rastervec/internal/palette"

// Point is a boundary point lying on a cell edge. Coordinates are
// half-integers in pixel space.
type Point struct {
	X, Y float64
}

// Contour is an ordered, closed boundary polyline. One contour corresponds
// to one connected boundary component of one color's region.
type Contour []Point

// Cell edges, clockwise from the top.
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

type segment struct {
	entry, exit uint8
}

// caseTable maps the 4-bit corner case (top-left=8, top-right=4,
// bottom-right=2, bottom-left=1) to the boundary segments crossing that
// cell, oriented so the region lies to the left of travel. Cases 5 and 10
// are the saddle configurations; they get one fixed two-segment split
// rather than local disambiguation, which can visually disconnect or merge
// regions on checkerboard patterns.
var caseTable = [16][]segment{
	0:  nil,
	1:  {{edgeBottom, edgeLeft}},
	2:  {{edgeRight, edgeBottom}},
	3:  {{edgeRight, edgeLeft}},
	4:  {{edgeTop, edgeRight}},
	5:  {{edgeTop, edgeRight}, {edgeBottom, edgeLeft}},
	6:  {{edgeTop, edgeBottom}},
	7:  {{edgeTop, edgeLeft}},
	8:  {{edgeLeft, edgeTop}},
	9:  {{edgeBottom, edgeTop}},
	10: {{edgeLeft, edgeTop}, {edgeRight, edgeBottom}},
	11: {{edgeRight, edgeTop}},
	12: {{edgeLeft, edgeRight}},
	13: {{edgeBottom, edgeRight}},
	14: {{edgeLeft, edgeBottom}},
	15: nil,
}

func opposite(e uint8) uint8 {
	return (e + 2) % 4
}

// edgeMidpoint returns the midpoint of the given edge of the cell anchored
// at pixel (cx, cy).
func edgeMidpoint(cx, cy int, e uint8) Point {
	switch e {
	case edgeTop:
		return Point{float64(cx) + 0.5, float64(cy)}
	case edgeRight:
		return Point{float64(cx) + 1, float64(cy) + 0.5}
	case edgeBottom:
		return Point{float64(cx) + 0.5, float64(cy) + 1}
	default:
		return Point{float64(cx), float64(cy) + 0.5}
	}
}

func neighbor(cx, cy int, e uint8) (int, int) {
	switch e {
	case edgeTop:
		return cx, cy - 1
	case edgeRight:
		return cx + 1, cy
	case edgeBottom:
		return cx, cy + 1
	default:
		return cx - 1, cy
	}
}

// TraceColor walks the boundaries of the region where the label map equals
// label and returns its closed contours. Cells are scanned one beyond each
// image border so regions touching the border still close; out-of-bounds
// pixels never belong to the region. A region covering the whole image
// yields no contours at all: it renders through the document background
// instead.
func TraceColor(lm *palette.LabelMap, label uint8) []Contour {
	if lm.W == 0 || lm.H == 0 {
		return nil
	}
	full := true
	for _, l := range lm.Labels {
		if l != label {
			full = false
			break
		}
	}
	if full {
		return nil
	}

	inside := func(x, y int) bool {
		if x < 0 || y < 0 || x >= lm.W || y >= lm.H {
			return false
		}
		return lm.Labels[y*lm.W+x] == label
	}
	cellCase := func(cx, cy int) int {
		ci := 0
		if inside(cx, cy) {
			ci |= 8
		}
		if inside(cx+1, cy) {
			ci |= 4
		}
		if inside(cx+1, cy+1) {
			ci |= 2
		}
		if inside(cx, cy+1) {
			ci |= 1
		}
		return ci
	}

	// Visited cells, offset by one to cover the padded ring.
	vw, vh := lm.W+1, lm.H+1
	visited := make([]bool, vw*vh)

	var out []Contour
	for cy := -1; cy < lm.H; cy++ {
		for cx := -1; cx < lm.W; cx++ {
			if visited[(cy+1)*vw+(cx+1)] {
				continue
			}
			segs := caseTable[cellCase(cx, cy)]
			if len(segs) == 0 {
				continue
			}
			if c := walk(cx, cy, segs[0].entry, visited, vw, vh, cellCase); len(c) > 0 {
				out = append(out, c)
			}
		}
	}
	return out
}

// walk follows boundary segments from the seed cell until the loop returns
// to its starting cell and entry edge. A walk that finds no matching
// segment at a new cell (degenerate topology) or exhausts the step budget
// closes with the points gathered so far.
func walk(startX, startY int, startEntry uint8, visited []bool, vw, vh int, cellCase func(int, int) int) Contour {
	budget := vw * vh
	x, y, entry := startX, startY, startEntry
	pts := Contour{edgeMidpoint(x, y, entry)}

	for step := 0; step < budget; step++ {
		visited[(y+1)*vw+(x+1)] = true

		var exit uint8
		found := false
		for _, s := range caseTable[cellCase(x, y)] {
			if s.entry == entry {
				exit = s.exit
				found = true
				break
			}
		}
		if !found {
			break
		}

		nx, ny := neighbor(x, y, exit)
		nentry := opposite(exit)
		if nx == startX && ny == startY && nentry == startEntry {
			return pts // closed: the exit midpoint equals the first point
		}
		if nx < -1 || ny < -1 || nx >= vw-1 || ny >= vh-1 {
			break
		}
		pts = append(pts, edgeMidpoint(x, y, exit))
		x, y, entry = nx, ny, nentry
	}
	return pts
}
