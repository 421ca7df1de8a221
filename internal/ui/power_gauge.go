// internal/ui/power_gauge.go
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

// PowerGauge — шкала мощности и угол ствола активного игрока.
type PowerGauge struct {
	X, Y     float32
	fontFace font.Face
}

func NewPowerGauge(x, y float32, fontFace font.Face) *PowerGauge {
	return &PowerGauge{X: x, Y: y, fontFace: fontFace}
}

// Draw отрисовывает шкалу для текущих мощности и угла.
func (p *PowerGauge) Draw(screen *ebiten.Image, power, angle float64) {
	vector.DrawFilledRect(screen, p.X, p.Y, config.PowerGaugeWidth, config.PowerGaugeHeight, config.HealthBackColor, false)
	vector.DrawFilledRect(screen, p.X, p.Y, config.PowerGaugeWidth*float32(power), config.PowerGaugeHeight, config.PowerFillColor, false)
	vector.StrokeRect(screen, p.X, p.Y, config.PowerGaugeWidth, config.PowerGaugeHeight, 1, config.IndicatorStroke, false)

	// Угол показываем в привычных градусах над горизонтом
	degrees := -angle * 180 / math.Pi
	label := fmt.Sprintf("POWER %3.0f%%   ANGLE %3.0f", power*100, degrees)
	text.Draw(screen, label, p.fontFace, int(p.X), int(p.Y)-5, config.TextLightColor)
}
