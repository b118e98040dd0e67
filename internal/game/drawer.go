package game

import (
	"github.com/Faultbox/skirmish/internal/engine/mesh"
	"github.com/Faultbox/skirmish/internal/engine/renderer"
	"github.com/Faultbox/skirmish/internal/engine/ui2d"
	"github.com/Faultbox/skirmish/internal/game/world"
	"github.com/Faultbox/skirmish/pkg/math"
)

// referenceHeight is the viewport height HUD text sizes are given for.
const referenceHeight = 600

// frameDrawer sends meshes and lines to the 3D renderer and text to the HUD.
type frameDrawer struct {
	renderer *renderer.Renderer
	hud      *ui2d.Renderer
}

func (d *frameDrawer) DrawMesh(transform math.Mat4, shape mesh.Shape, color mesh.Color) {
	d.renderer.DrawMesh(transform, shape, color)
}

func (d *frameDrawer) DrawLines(vertices []float32, color mesh.Color) {
	d.renderer.DrawLines(vertices, color)
}

func (d *frameDrawer) DrawText(text string, pos math.Vec2, color mesh.Color, size float32, align world.Align) {
	width, height := d.hud.GetScreenSize()
	x, y, px := hudPlacement(pos, size, width, height)
	d.hud.DrawText(x, y, text, px, ui2d.Color(color), hudAlign(align))
}

// hudPlacement converts a normalized anchor and a reference text size to
// screen pixels.
func hudPlacement(pos math.Vec2, size float32, width, height int) (x, y, px float32) {
	scale := float32(height) / referenceHeight
	return pos.X * float32(width), pos.Y * float32(height), size * scale
}

func hudAlign(a world.Align) ui2d.Align {
	switch a {
	case world.AlignCenter:
		return ui2d.AlignCenter
	case world.AlignRight:
		return ui2d.AlignRight
	default:
		return ui2d.AlignLeft
	}
}
