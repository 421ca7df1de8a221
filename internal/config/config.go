// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 600

	// Мир шире экрана, камера следит за снарядом
	WorldWidth    = 3000.0
	WorldHeight   = 600.0
	BaseElevation = 500.0
	TerrainPoints = 40

	// Генерация ландшафта
	ShoreNoise   = 50.0  // разброс высот прибрежных третей, ±px
	RidgeHeight  = 350.0 // высота центрального хребта над базовым уровнем
	RidgeNoise   = 30.0  // дополнительный шум хребта, ±px
	BasesPerSide = 3
	BaseMinWidth = 60.0  // минимальная ширина площадки, px
	BaseMaxWidth = 140.0 // максимальная ширина площадки, px
	LeftBaseMinX = 120.0 // площадка левой трети не начинается ближе к краю

	// Баллистика. Стартовые скорости снарядов задаются определениями
	// оружия, здесь только общая для мира гравитация.
	Gravity = 300.0 // px/s^2, ось Y направлена вниз

	// Ветер: модель с процентом вариации, пересчитывается каждый ход
	WindBaseAccel = 40.0 // px/s^2
	WindVariation = 0.35 // доля от базовой силы

	// Турели
	TurretRadius    = 14.0
	TurretHealth    = 100
	BarrelLength    = 24.0
	AimAngleSpeed   = 1.2 // рад/с при управлении с клавиатуры
	AimPowerSpeed   = 0.6 // доля мощности в секунду
	DefaultAimPower = 0.5

	MaxDeltaTime      = 0.06
	TrailMaxPoints    = 64
	ExplosionDuration = 0.6
	ExplosionMaxR     = 46.0

	HealthBarWidth   = 160.0
	HealthBarHeight  = 14.0
	PowerGaugeWidth  = 200.0
	PowerGaugeHeight = 10.0
	TextCharWidth    = 7
)

const (
	TeamLeft = iota
	TeamRight
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	SkyTopColor     = color.RGBA{25, 30, 55, 255}
	TerrainColor    = color.RGBA{70, 100, 120, 255}
	TerrainEdge     = color.RGBA{150, 180, 200, 255}
	FlatBaseColor   = color.RGBA{194, 178, 128, 255} // песочно-жёлтые площадки
	ProjectileColor = color.RGBA{255, 255, 255, 255}
	TrailColor      = color.RGBA{255, 255, 0, 96}
	ExplosionColor  = color.RGBA{255, 140, 40, 200}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}
	WindArrowColor  = color.RGBA{120, 200, 255, 255}
	HealthBackColor = color.RGBA{60, 60, 70, 255}
	PowerFillColor  = color.RGBA{220, 60, 60, 220}
	TeamColors      = []color.RGBA{
		{255, 50, 50, 255},  // Red — левый игрок
		{50, 100, 255, 255}, // Blue — правый игрок
	}
)
