package ui2d

import (
	"fmt"
	"image"
	"image/draw"
	"unicode"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// AtlasPixelSize is the size glyphs are rasterized at. Text drawn at other
// sizes is scaled from it.
const AtlasPixelSize = 48

const (
	atlasWidth   = 1024
	atlasPadding = 2
)

// glyph is one rasterized rune.
type glyph struct {
	// Cell in the atlas image.
	rect image.Rectangle
	// Top-left of the cell relative to the pen on the baseline.
	offset  image.Point
	advance float32
}

// Quad is a glyph placed on screen, in pixels, with its atlas UVs.
type Quad struct {
	X, Y, W, H     float32
	U0, V0, U1, V1 float32
}

// Atlas is a font rasterized into a single alpha image.
type Atlas struct {
	face   font.Face
	image  *image.Alpha
	glyphs map[rune]glyph
	size   float32
	ascent float32
	height float32
}

// atlasRunes lists the runes rasterized up front: printable ASCII and
// Latin-1, which covers the HUD languages.
func atlasRunes() []rune {
	var rs []rune
	for r := rune(0x20); r <= 0xFF; r++ {
		if unicode.IsPrint(r) {
			rs = append(rs, r)
		}
	}
	return rs
}

// NewAtlas rasterizes the Go Regular font at size pixels.
func NewAtlas(size float64) (*Atlas, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}

	metrics := face.Metrics()
	a := &Atlas{
		face:   face,
		glyphs: make(map[rune]glyph),
		size:   float32(size),
		ascent: fixedToFloat(metrics.Ascent),
		height: fixedToFloat(metrics.Height),
	}

	// The face reuses its mask between calls, so every glyph is copied out
	// before the next one is rasterized.
	masks := make(map[rune]*image.Alpha)
	x, y, rowH := atlasPadding, atlasPadding, 0
	for _, r := range atlasRunes() {
		dr, mask, mp, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}
		if x+dr.Dx()+atlasPadding > atlasWidth {
			x = atlasPadding
			y += rowH + atlasPadding
			rowH = 0
		}
		g := glyph{
			rect:    image.Rect(x, y, x+dr.Dx(), y+dr.Dy()),
			offset:  dr.Min,
			advance: fixedToFloat(adv),
		}
		if !dr.Empty() {
			m := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
			draw.Draw(m, m.Bounds(), mask, mp, draw.Src)
			masks[r] = m
		}
		a.glyphs[r] = g
		x += dr.Dx() + atlasPadding
		rowH = max(rowH, dr.Dy())
	}

	if _, ok := a.glyphs['?']; !ok {
		return nil, fmt.Errorf("font has no fallback glyph")
	}

	a.image = image.NewAlpha(image.Rect(0, 0, atlasWidth, y+rowH+atlasPadding))
	for r, m := range masks {
		draw.Draw(a.image, a.glyphs[r].rect, m, image.Point{}, draw.Src)
	}
	return a, nil
}

// Image returns the rasterized atlas.
func (a *Atlas) Image() *image.Alpha {
	return a.image
}

// lookup returns the glyph for r. Unknown spaces render as a space and
// anything else as '?'.
func (a *Atlas) lookup(r rune) glyph {
	if g, ok := a.glyphs[r]; ok {
		return g
	}
	if unicode.IsSpace(r) {
		return a.glyphs[' ']
	}
	return a.glyphs['?']
}

// walk advances a pen through text at the given pixel size, calling fn for
// each rune with the pen position on the baseline.
func (a *Atlas) walk(text string, size float32, fn func(g glyph, penX, baseline float32)) (width, height float32) {
	scale := size / a.size
	penX, baseline := float32(0), a.ascent*scale
	lines := 1
	prev := rune(-1)
	for _, r := range text {
		if r == '\n' {
			width = max(width, penX)
			penX = 0
			baseline += a.height * scale
			lines++
			prev = -1
			continue
		}
		if prev >= 0 {
			penX += fixedToFloat(a.face.Kern(prev, r)) * scale
		}
		g := a.lookup(r)
		if fn != nil {
			fn(g, penX, baseline)
		}
		penX += g.advance * scale
		prev = r
	}
	return max(width, penX), float32(lines) * a.height * scale
}

// Measure returns the size of text drawn at size pixels.
func (a *Atlas) Measure(text string, size float32) (float32, float32) {
	return a.walk(text, size, nil)
}

// Layout places text with its top-left corner at (x, y) and emits one quad
// per visible glyph.
func (a *Atlas) Layout(text string, x, y, size float32, emit func(Quad)) {
	scale := size / a.size
	b := a.image.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	a.walk(text, size, func(g glyph, penX, baseline float32) {
		if g.rect.Empty() {
			return
		}
		emit(Quad{
			X:  x + penX + float32(g.offset.X)*scale,
			Y:  y + baseline + float32(g.offset.Y)*scale,
			W:  float32(g.rect.Dx()) * scale,
			H:  float32(g.rect.Dy()) * scale,
			U0: float32(g.rect.Min.X) / w,
			V0: float32(g.rect.Min.Y) / h,
			U1: float32(g.rect.Max.X) / w,
			V1: float32(g.rect.Max.Y) / h,
		})
	})
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// Font is an atlas uploaded to a GL texture.
type Font struct {
	*Atlas
	texture uint32
}

// NewFont rasterizes the HUD font and uploads it.
func NewFont() (*Font, error) {
	a, err := NewAtlas(AtlasPixelSize)
	if err != nil {
		return nil, err
	}

	f := &Font{Atlas: a}
	b := a.image.Bounds()
	gl.GenTextures(1, &f.texture)
	gl.BindTexture(gl.TEXTURE_2D, f.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(a.image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return f, nil
}

// TextureID returns the GL texture holding the atlas.
func (f *Font) TextureID() uint32 {
	return f.texture
}

// Close releases the texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}
