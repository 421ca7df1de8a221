// internal/component/explosion.go
package component

import "image/color"

// Explosion — визуальный эффект взрыва: расширяющееся затухающее кольцо
type Explosion struct {
	Age       float64
	Duration  float64
	MaxRadius float64
	Color     color.RGBA
}
