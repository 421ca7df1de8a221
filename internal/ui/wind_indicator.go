// internal/ui/wind_indicator.go
package ui

import (
	"fmt"
	"math"

	"go-artillery-duel/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// WindIndicator — стрелка силы и направления ветра в верхней части экрана.
type WindIndicator struct {
	X, Y     float32
	fontFace font.Face
}

func NewWindIndicator(x, y float32, fontFace font.Face) *WindIndicator {
	return &WindIndicator{X: x, Y: y, fontFace: fontFace}
}

// Draw отрисовывает индикатор для текущего ускорения ветра.
func (w *WindIndicator) Draw(screen *ebiten.Image, windAccelX float64) {
	label := fmt.Sprintf("WIND %.0f", math.Abs(windAccelX))
	text.Draw(screen, label, w.fontFace, int(w.X)-30, int(w.Y)-10, config.TextLightColor)

	// Длина стрелки пропорциональна силе относительно базовой
	length := float32(windAccelX / config.WindBaseAccel * 40)
	if length == 0 {
		return
	}
	tipX := w.X + length
	vector.StrokeLine(screen, w.X, w.Y, tipX, w.Y, 3, config.WindArrowColor, true)

	// Наконечник
	dir := float32(1)
	if length < 0 {
		dir = -1
	}
	vector.StrokeLine(screen, tipX, w.Y, tipX-dir*7, w.Y-5, 3, config.WindArrowColor, true)
	vector.StrokeLine(screen, tipX, w.Y, tipX-dir*7, w.Y+5, 3, config.WindArrowColor, true)
}
