// internal/system/aim.go
package system

import (
	"math"

	"go-artillery-duel/internal/config"
	"go-artillery-duel/internal/entity"
	"go-artillery-duel/internal/types"
	"go-artillery-duel/internal/utils"
)

// AimInputKind — модальность ввода прицеливания.
type AimInputKind int

const (
	AimKeyboard AimInputKind = iota
	AimPointer
)

// AimCommand — размеченное объединение команд прицеливания: клавиатурный
// вариант несёт направления изменений, указательный — мировые координаты
// курсора. Диспетчеризация по Kind, а не по типу объекта.
type AimCommand struct {
	Kind AimInputKind

	// AimKeyboard: -1/0/+1 на каждую ось
	AngleDir float64
	PowerDir float64

	// AimPointer
	TargetX float64
	TargetY float64
}

// AimSystem обновляет угол и мощность турели активного игрока.
// Турель — чистые данные, всё поведение прицеливания живёт здесь.
type AimSystem struct {
	ecs *entity.ECS
}

func NewAimSystem(ecs *entity.ECS) *AimSystem {
	return &AimSystem{ecs: ecs}
}

// Apply применяет команду прицеливания к турели за тик длиной deltaTime.
func (s *AimSystem) Apply(id types.EntityID, cmd AimCommand, deltaTime float64) {
	turret := s.ecs.Turrets[id]
	pos := s.ecs.Positions[id]
	if turret == nil || pos == nil {
		return
	}

	switch cmd.Kind {
	case AimKeyboard:
		turret.Angle += cmd.AngleDir * config.AimAngleSpeed * deltaTime
		turret.Power += cmd.PowerDir * config.AimPowerSpeed * deltaTime
	case AimPointer:
		turret.Angle = math.Atan2(cmd.TargetY-pos.Y, cmd.TargetX-pos.X)
		// Дальность курсора от турели задаёт мощность
		turret.Power = utils.Dist(pos.X, pos.Y, cmd.TargetX, cmd.TargetY) / config.PowerGaugeWidth
	}

	// Ствол смотрит только в верхнюю полуплоскость
	turret.Angle = utils.Clamp(turret.Angle, -math.Pi, 0)
	turret.Power = utils.Clamp(turret.Power, 0, 1)
}

// BarrelTip возвращает мировые координаты среза ствола — точку старта снаряда.
func (s *AimSystem) BarrelTip(id types.EntityID) (float64, float64) {
	turret := s.ecs.Turrets[id]
	pos := s.ecs.Positions[id]
	if turret == nil || pos == nil {
		return 0, 0
	}
	return pos.X + math.Cos(turret.Angle)*config.BarrelLength,
		pos.Y + math.Sin(turret.Angle)*config.BarrelLength
}
