package trace

import (
	"testing"

	"rastervec/internal/palette"
)

func labelMap(w, h int, labels ...uint8) *palette.LabelMap {
	if len(labels) != w*h {
		panic("bad label count")
	}
	return &palette.LabelMap{W: w, H: h, Labels: labels}
}

func TestUniformImageHasNoContours(t *testing.T) {
	lm := labelMap(3, 3,
		0, 0, 0,
		0, 0, 0,
		0, 0, 0,
	)
	if got := TraceColor(lm, 0); got != nil {
		t.Errorf("full-area color: got %d contours, want none", len(got))
	}
	if got := TraceColor(lm, 1); got != nil {
		t.Errorf("zero-area color: got %d contours, want none", len(got))
	}
}

func TestSinglePixelRegion(t *testing.T) {
	lm := labelMap(3, 3,
		0, 0, 0,
		0, 1, 0,
		0, 0, 0,
	)
	contours := TraceColor(lm, 1)
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
	want := Contour{{1, 0.5}, {0.5, 1}, {1, 1.5}, {1.5, 1}}
	got := contours[0]
	if len(got) != len(want) {
		t.Fatalf("contour has %d points, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBorderRegionCloses(t *testing.T) {
	// A region touching the image border must still produce a closed
	// contour; cells one beyond the border make that possible.
	lm := labelMap(2, 2,
		1, 0,
		0, 0,
	)
	contours := TraceColor(lm, 1)
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
	if len(contours[0]) != 4 {
		t.Fatalf("corner pixel contour has %d points, want 4: %v", len(contours[0]), contours[0])
	}
}

func TestDiagonalSaddleSplit(t *testing.T) {
	// Diagonally opposite pixels share a saddle cell. The fixed saddle
	// resolution keeps them as two separate contours per color.
	lm := labelMap(2, 2,
		0, 1,
		1, 0,
	)
	for _, label := range []uint8{0, 1} {
		contours := TraceColor(lm, label)
		if len(contours) != 2 {
			t.Fatalf("label %d: got %d contours, want 2", label, len(contours))
		}
		for i, c := range contours {
			if len(c) < 3 {
				t.Errorf("label %d contour %d: only %d points", label, i, len(c))
			}
		}
	}
}

func TestRectangularRegionPerimeter(t *testing.T) {
	lm := labelMap(3, 3,
		0, 0, 0,
		1, 1, 1,
		0, 0, 0,
	)
	contours := TraceColor(lm, 1)
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
	// A w x h rectangular region yields 2*(w+h) boundary points.
	if len(contours[0]) != 8 {
		t.Errorf("3x1 region contour has %d points, want 8", len(contours[0]))
	}
}

func TestDisjointRegions(t *testing.T) {
	lm := labelMap(5, 1,
		1, 0, 1, 0, 1,
	)
	contours := TraceColor(lm, 1)
	if len(contours) != 3 {
		t.Fatalf("got %d contours, want 3", len(contours))
	}
	for i, c := range contours {
		if len(c) != 4 {
			t.Errorf("contour %d: %d points, want 4", i, len(c))
		}
	}
}
