package geom

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"contained", Rect{X: 2, Y: 2, W: 4, H: 4}, true},
		{"partial", Rect{X: 8, Y: 8, W: 10, H: 10}, true},
		{"touching_right_edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching_bottom_edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"touching_corner", Rect{X: 10, Y: 10, W: 5, H: 5}, false},
		{"disjoint", Rect{X: 30, Y: 30, W: 5, H: 5}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Overlaps(base, c.b); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
			if got := Overlaps(c.b, base); got != c.want {
				t.Fatalf("expected %v both ways, got %v", c.want, got)
			}
		})
	}
}

func TestOverlapDepthSigns(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 6, Y: 3, W: 10, H: 10} // sits right of and below a

	d := OverlapDepth(a, b)
	if d.X != 4 || d.Y != 7 {
		t.Fatalf("expected penetration (4, 7), got %v", d)
	}

	// swapping the rects flips both signs
	d2 := OverlapDepth(b, a)
	if d2.X != -4 || d2.Y != -7 {
		t.Fatalf("expected penetration (-4, -7), got %v", d2)
	}
}

func TestResolveAgainstObstacle(t *testing.T) {
	obstacle := Rect{X: 100, Y: 100, W: 50, H: 50}
	cases := []struct {
		name  string
		e     Rect
		wantX float64
		wantY float64
	}{
		{"push_left", Rect{X: 92, Y: 110, W: 10, H: 30}, 90, 110},
		{"push_right", Rect{X: 148, Y: 110, W: 10, H: 30}, 150, 110},
		{"push_up", Rect{X: 110, Y: 92, W: 30, H: 10}, 110, 90},
		{"push_down", Rect{X: 110, Y: 148, W: 30, H: 10}, 110, 150},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := c.e
			if !ResolveAgainstObstacle(&e, obstacle) {
				t.Fatalf("expected a correction for %v", c.e)
			}
			if e.X != c.wantX || e.Y != c.wantY {
				t.Fatalf("expected (%v, %v), got (%v, %v)", c.wantX, c.wantY, e.X, e.Y)
			}
			if Overlaps(e, obstacle) {
				t.Fatalf("still overlapping after resolution: %v", e)
			}
		})
	}

	t.Run("tie_prefers_x", func(t *testing.T) {
		o := Rect{X: 0, Y: 0, W: 10, H: 10}
		e := Rect{X: 8, Y: 8, W: 10, H: 10}
		if !ResolveAgainstObstacle(&e, o) {
			t.Fatal("expected a correction")
		}
		if e.X != 10 || e.Y != 8 {
			t.Fatalf("expected the X axis to win, got (%v, %v)", e.X, e.Y)
		}
	})

	t.Run("no_overlap_no_change", func(t *testing.T) {
		e := Rect{X: 0, Y: 0, W: 10, H: 10}
		before := e
		if ResolveAgainstObstacle(&e, obstacle) {
			t.Fatal("expected no correction")
		}
		if e != before {
			t.Fatalf("rect changed without overlap: %v", e)
		}
	})

	t.Run("nil_rect", func(t *testing.T) {
		if ResolveAgainstObstacle(nil, obstacle) {
			t.Fatal("expected false for nil rect")
		}
	})
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	if c := r.Center(); c.X != 25 || c.Y != 40 {
		t.Fatalf("expected center (25, 40), got %v", c)
	}
	if got := CenteredAt(cp.Vector{X: 25, Y: 40}, 30, 40); got != r {
		t.Fatalf("expected %v, got %v", r, got)
	}

	if !r.Contains(cp.Vector{X: 10, Y: 20}) || !r.Contains(cp.Vector{X: 40, Y: 60}) {
		t.Fatal("expected edges to count as inside")
	}
	if r.Contains(cp.Vector{X: 9.999, Y: 20}) {
		t.Fatal("expected point left of rect to be outside")
	}

	in := r.Inset(5)
	want := Rect{X: 15, Y: 25, W: 20, H: 30}
	if in != want {
		t.Fatalf("expected %v, got %v", want, in)
	}
	out := r.Inset(-5)
	if out.X != 5 || out.W != 40 {
		t.Fatalf("expected negative inset to grow, got %v", out)
	}
}
