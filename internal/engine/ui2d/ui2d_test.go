package ui2d

import (
	gomath "math"
	"testing"
)

func newTestAtlas(t *testing.T) *Atlas {
	t.Helper()
	a, err := NewAtlas(AtlasPixelSize)
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	return a
}

func layout(a *Atlas, text string, x, y, size float32) []Quad {
	var quads []Quad
	a.Layout(text, x, y, size, func(q Quad) { quads = append(quads, q) })
	return quads
}

func TestAtlasCoversHUDRunes(t *testing.T) {
	a := newTestAtlas(t)

	for _, r := range "Score: 0123456789 Vies Pointage Fin de partie ! é" {
		if _, ok := a.glyphs[r]; !ok {
			t.Errorf("atlas is missing %q", r)
		}
	}
	b := a.Image().Bounds()
	if b.Dx() != atlasWidth || b.Dy() <= 0 {
		t.Errorf("atlas bounds = %v", b)
	}
	for r, g := range a.glyphs {
		if !g.rect.In(b) {
			t.Errorf("glyph %q cell %v outside atlas %v", r, g.rect, b)
		}
	}
}

func TestLayoutQuads(t *testing.T) {
	a := newTestAtlas(t)

	quads := layout(a, "AB", 10, 20, AtlasPixelSize)
	if len(quads) != 2 {
		t.Fatalf("got %d quads, want 2", len(quads))
	}
	if quads[1].X <= quads[0].X {
		t.Errorf("second glyph at x=%f is not right of the first at x=%f", quads[1].X, quads[0].X)
	}
	for i, q := range quads {
		if q.U0 < 0 || q.U1 > 1 || q.V0 < 0 || q.V1 > 1 || q.U0 >= q.U1 || q.V0 >= q.V1 {
			t.Errorf("quad %d has bad UVs %+v", i, q)
		}
		if q.Y < 20 || q.Y+q.H > 20+AtlasPixelSize*1.5 {
			t.Errorf("quad %d spans y [%f, %f], outside the line", i, q.Y, q.Y+q.H)
		}
	}
}

func TestLayoutFallsBackToQuestionMark(t *testing.T) {
	a := newTestAtlas(t)

	got := layout(a, "中", 0, 0, 24)
	want := layout(a, "?", 0, 0, 24)
	if len(got) != 1 || len(want) != 1 || got[0] != want[0] {
		t.Errorf("unknown rune laid out as %+v, want %+v", got, want)
	}
}

func TestLookupMapsSpacesToSpace(t *testing.T) {
	a := newTestAtlas(t)

	space := a.glyphs[' ']
	for _, r := range []rune{'\u00a0', '\u202f', '\u2009'} {
		if got := a.lookup(r); got != space {
			t.Errorf("lookup(%U) = %+v, want the space glyph", r, got)
		}
	}
}

func TestMeasure(t *testing.T) {
	a := newTestAtlas(t)

	w16, h16 := a.Measure("Score: 12,000", 16)
	w32, h32 := a.Measure("Score: 12,000", 32)
	if w16 <= 0 || h16 <= 0 {
		t.Fatalf("Measure = (%f, %f), want positive", w16, h16)
	}
	if gomath.Abs(float64(w32-2*w16)) > 1e-3 || gomath.Abs(float64(h32-2*h16)) > 1e-3 {
		t.Errorf("doubling the size gave (%f, %f), want (%f, %f)", w32, h32, 2*w16, 2*h16)
	}

	short, _ := a.Measure("ab", 16)
	long, _ := a.Measure("abc", 16)
	if long <= short {
		t.Errorf("width(abc) = %f, want more than width(ab) = %f", long, short)
	}

	_, one := a.Measure("a", 16)
	w2, two := a.Measure("abc\na", 16)
	if gomath.Abs(float64(two-2*one)) > 1e-3 {
		t.Errorf("two lines are %f tall, want %f", two, 2*one)
	}
	if w2 != long {
		t.Errorf("multi-line width = %f, want the widest line %f", w2, long)
	}
}

func TestAlignX(t *testing.T) {
	tests := []struct {
		align Align
		want  float32
	}{
		{AlignLeft, 100},
		{AlignCenter, 80},
		{AlignRight, 60},
	}
	for _, tt := range tests {
		if got := alignX(100, 40, tt.align); got != tt.want {
			t.Errorf("alignX(100, 40, %d) = %f, want %f", tt.align, got, tt.want)
		}
	}
}

func TestAppendQuad(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0.25, A: 1}
	q := Quad{X: 1, Y: 2, W: 3, H: 4, U0: 0.1, V0: 0.2, U1: 0.3, V1: 0.4}

	solid := appendQuad(nil, q, c, false)
	if len(solid) != 6*7 {
		t.Fatalf("solid quad has %d floats, want %d", len(solid), 6*7)
	}
	textured := appendQuad(nil, q, c, true)
	if len(textured) != 6*9 {
		t.Fatalf("textured quad has %d floats, want %d", len(textured), 6*9)
	}

	// Third vertex is the bottom-right corner.
	v := textured[2*9 : 3*9]
	want := []float32{4, 6, 0, 0.3, 0.4, 1, 0.5, 0.25, 1}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("vertex 2 = %v, want %v", v, want)
			break
		}
	}
}

func TestColor(t *testing.T) {
	c := RGBA(255, 0, 0, 255).Darken(0.5).WithAlpha(0.25)
	if c.R != 0.5 || c.G != 0 || c.A != 0.25 {
		t.Errorf("color = %+v", c)
	}
}

func TestTextShadow(t *testing.T) {
	tests := []struct {
		name  string
		color Color
	}{
		{"white", ColorWhite},
		{"translucent red", Color{1, 0, 0, 0.5}},
		{"panel", ColorPanelBg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := textShadow(tt.color)
			if s.R > tt.color.R*0.2 || s.G > tt.color.G*0.2 || s.B > tt.color.B*0.2 {
				t.Errorf("shadow %+v is not darker than %+v", s, tt.color)
			}
			if s.A >= tt.color.A {
				t.Errorf("shadow alpha %g should be below %g", s.A, tt.color.A)
			}
		})
	}
}
