// internal/ui/health_bar.go
package ui

import (
	"fmt"

	"go-artillery-duel/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// HealthBar — полоса здоровья турели одной из сторон.
type HealthBar struct {
	X, Y     float32
	Team     int
	Label    string
	fontFace font.Face
}

func NewHealthBar(x, y float32, team int, label string, fontFace font.Face) *HealthBar {
	return &HealthBar{X: x, Y: y, Team: team, Label: label, fontFace: fontFace}
}

// Draw отрисовывает полосу для текущего значения здоровья.
func (h *HealthBar) Draw(screen *ebiten.Image, health int) {
	vector.DrawFilledRect(screen, h.X, h.Y, config.HealthBarWidth, config.HealthBarHeight, config.HealthBackColor, false)

	frac := float32(health) / float32(config.TurretHealth)
	if frac < 0 {
		frac = 0
	}
	fill := config.TeamColors[h.Team]
	vector.DrawFilledRect(screen, h.X, h.Y, config.HealthBarWidth*frac, config.HealthBarHeight, fill, false)

	vector.StrokeRect(screen, h.X, h.Y, config.HealthBarWidth, config.HealthBarHeight, 1, config.IndicatorStroke, false)
	text.Draw(screen, fmt.Sprintf("%s %d", h.Label, health), h.fontFace, int(h.X), int(h.Y)-5, config.TextLightColor)
}
