package core

import "testing"

func TestRectAt(t *testing.T) {
	r := RectAt(Point{X: 100, Y: 200}, Size{Width: 50, Height: 20})

	if r.Left != 100 || r.Top != 200 || r.Right != 150 || r.Bottom != 220 {
		t.Errorf("Unexpected rect: %+v", r)
	}
	if r.Width() != 50 {
		t.Errorf("Expected width 50, got %v", r.Width())
	}
	if r.Height() != 20 {
		t.Errorf("Expected height 20, got %v", r.Height())
	}
	if c := r.Center(); c.X != 125 || c.Y != 210 {
		t.Errorf("Expected center (125, 210), got %+v", c)
	}
	if tl := r.TopLeft(); tl.X != 100 || tl.Y != 200 {
		t.Errorf("Expected top-left (100, 200), got %+v", tl)
	}
}

func TestRectInflate(t *testing.T) {
	r := Rect{Left: 100, Top: 200, Right: 150, Bottom: 220}
	p := Padding{Left: 10, Top: 5, Right: 10, Bottom: 5}

	got := r.Inflate(p)
	want := Rect{Left: 90, Top: 195, Right: 160, Bottom: 225}
	if got != want {
		t.Errorf("Inflate: got %+v, want %+v", got, want)
	}

	// Zero padding is the identity.
	if r.Inflate(Padding{}) != r {
		t.Errorf("Inflate with zero padding changed the rect")
	}
}

func TestRectClampTo(t *testing.T) {
	bounds := Size{Width: 400, Height: 800}

	tests := []struct {
		name string
		in   Rect
		want Rect
	}{
		{
			name: "Fully inside is untouched",
			in:   Rect{Left: 90, Top: 195, Right: 160, Bottom: 225},
			want: Rect{Left: 90, Top: 195, Right: 160, Bottom: 225},
		},
		{
			name: "Negative left clamps to zero",
			in:   Rect{Left: -50, Top: 195, Right: 160, Bottom: 225},
			want: Rect{Left: 0, Top: 195, Right: 160, Bottom: 225},
		},
		{
			name: "Right overshoot clamps to width",
			in:   Rect{Left: 390, Top: 10, Right: 440, Bottom: 30},
			want: Rect{Left: 390, Top: 10, Right: 400, Bottom: 30},
		},
		{
			name: "All edges outside collapse onto the bounds",
			in:   Rect{Left: -20, Top: -10, Right: 500, Bottom: 900},
			want: Rect{Left: 0, Top: 0, Right: 400, Bottom: 800},
		},
		{
			name: "Rect fully past the edge degenerates at the bound",
			in:   Rect{Left: 450, Top: 10, Right: 500, Bottom: 30},
			want: Rect{Left: 400, Top: 10, Right: 400, Bottom: 30},
		},
		{
			// Clamping is per-edge, not a rectangle intersection. An
			// already-inverted input stays inverted; nothing normalizes it.
			name: "Inverted input is clamped edge by edge",
			in:   Rect{Left: 500, Top: 10, Right: -50, Bottom: 30},
			want: Rect{Left: 400, Top: 10, Right: 0, Bottom: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.ClampTo(bounds); got != tt.want {
				t.Errorf("ClampTo: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectTranslate(t *testing.T) {
	r := Rect{Left: 1, Top: 2, Right: 3, Bottom: 4}
	got := r.Translate(Point{X: 10, Y: 20})
	want := Rect{Left: 11, Top: 22, Right: 13, Bottom: 24}
	if got != want {
		t.Errorf("Translate: got %+v, want %+v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Right: 20, Bottom: 20}

	if !r.Contains(Point{X: 10, Y: 10}) {
		t.Errorf("Expected top-left corner to be contained")
	}
	if r.Contains(Point{X: 20, Y: 20}) {
		t.Errorf("Expected bottom-right corner to be excluded")
	}
	if r.Contains(Point{X: 5, Y: 15}) {
		t.Errorf("Expected outside point to be excluded")
	}
}

func TestRectIsZero(t *testing.T) {
	if !(Rect{}).IsZero() {
		t.Errorf("Expected zero rect to report IsZero")
	}
	if (Rect{Right: 1}).IsZero() {
		t.Errorf("Expected non-zero rect to not report IsZero")
	}
}

func TestPadding(t *testing.T) {
	p := PaddingAll(3)
	if p.Left != 3 || p.Top != 3 || p.Right != 3 || p.Bottom != 3 {
		t.Errorf("PaddingAll: got %+v", p)
	}
	if p.Horizontal() != 6 {
		t.Errorf("Expected horizontal padding 6, got %v", p.Horizontal())
	}
	if p.Vertical() != 6 {
		t.Errorf("Expected vertical padding 6, got %v", p.Vertical())
	}
}

func TestPointArithmetic(t *testing.T) {
	a := Point{X: 1, Y: 2}
	b := Point{X: 10, Y: 20}

	if got := a.Add(b); got != (Point{X: 11, Y: 22}) {
		t.Errorf("Add: got %+v", got)
	}
	if got := b.Sub(a); got != (Point{X: 9, Y: 18}) {
		t.Errorf("Sub: got %+v", got)
	}
}

func TestSizeIsZero(t *testing.T) {
	if !(Size{}).IsZero() {
		t.Errorf("Expected zero size to report IsZero")
	}
	if (Size{Width: 1}).IsZero() {
		t.Errorf("Expected non-zero size to not report IsZero")
	}
}
