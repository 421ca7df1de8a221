// pkg/ballistics/projectile.go
package ballistics

import "math"

// Projectile — кинематическое состояние снаряда. Чистые данные:
// вся логика полёта в свободных функциях Launch/Step.
type Projectile struct {
	X, Y   float64 // позиция, мировые координаты (Y вниз)
	VX, VY float64 // скорость, px/s

	SpawnTime     float64 // игровое время выстрела, сек
	MaxFlightTime float64 // предельное время полёта, сек (0 — без лимита)
}

// Launch строит снаряд в точке старта. Экранная конвенция угла:
// рост угла поворачивает к положительным X/Y, выстрел вверх — отрицательный
// угол. power ожидается в [0, 1] и линейно выбирает скорость между
// baseSpeed и maxSpeed.
func Launch(originX, originY, angle, power, baseSpeed, maxSpeed float64) Projectile {
	speed := baseSpeed + (maxSpeed-baseSpeed)*power
	return Projectile{
		X:  originX,
		Y:  originY,
		VX: math.Cos(angle) * speed,
		VY: math.Sin(angle) * speed,
	}
}

// Step продвигает снаряд на dt под действием гравитации и ветра.
// Полунеявный Эйлер: сначала скорость, затем позиция — устойчивее
// прямого варианта при крупных кадрах.
func Step(p Projectile, dt, gravity, windAccelX float64) Projectile {
	p.VX += windAccelX * dt
	p.VY += gravity * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt
	return p
}

// Expired сообщает, исчерпал ли снаряд лимит полётного времени.
// Снятие снаряда по таймауту — политика вызывающего кода, Resolve
// таймаут не классифицирует.
func (p Projectile) Expired(now float64) bool {
	return p.MaxFlightTime > 0 && now-p.SpawnTime > p.MaxFlightTime
}
