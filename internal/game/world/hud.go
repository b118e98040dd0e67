package world

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Faultbox/skirmish/internal/engine/mesh"
	"github.com/Faultbox/skirmish/pkg/math"
)

// HUD message keys. They double as the English text.
const (
	msgLives        = "Lives: %d"
	msgScore        = "Score: %d"
	msgGameOver     = "Game over!"
	msgInvulnerable = "INVINCIBLE!"
	msgRestart      = "Press space to play again"
)

func init() {
	fr := map[string]string{
		msgLives:        "Vies : %d",
		msgScore:        "Pointage : %d",
		msgGameOver:     "Fin de partie !",
		msgInvulnerable: "INVINCIBLE !",
		msgRestart:      "Appuyez sur espace pour rejouer",
	}
	for key, text := range fr {
		if err := message.SetString(language.French, key, text); err != nil {
			panic(err)
		}
	}
}

// NewPrinter returns a HUD printer for a BCP 47 tag. Unknown tags fall back
// to English.
func NewPrinter(tag string) *message.Printer {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.English
	}
	return message.NewPrinter(t)
}

var (
	hudWhite  = mesh.Color{R: 1, G: 1, B: 1, A: 1}
	hudYellow = mesh.Color{R: 1, G: 1, A: 1}
)

const (
	hudSmall = 16
	hudLarge = 32
)

func (c *Controller) drawHUD(d Drawer) {
	if c.state == StateGameOver {
		c.drawGameOver(d)
		return
	}
	if c.god {
		d.DrawText(c.printer.Sprintf(msgInvulnerable), math.Vec2{X: 0.5, Y: 0}, hudYellow, hudSmall, AlignCenter)
	}
	d.DrawText(c.printer.Sprintf(msgLives, c.lives), math.Vec2{X: 0.99, Y: 0.01}, hudWhite, hudSmall, AlignRight)
	d.DrawText(c.printer.Sprintf(msgScore, c.score), math.Vec2{X: 0.01, Y: 0.01}, hudWhite, hudSmall, AlignLeft)
}

func (c *Controller) drawGameOver(d Drawer) {
	d.DrawText(c.printer.Sprintf(msgGameOver), math.Vec2{X: 0.5, Y: 0.4}, hudWhite, hudLarge, AlignCenter)
	d.DrawText(c.printer.Sprintf(msgScore, c.score), math.Vec2{X: 0.5, Y: 0.5}, hudWhite, hudLarge, AlignCenter)
	d.DrawText(c.printer.Sprintf(msgRestart), math.Vec2{X: 0.5, Y: 0.6}, hudWhite, hudSmall, AlignCenter)
}
