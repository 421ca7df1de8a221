// internal/system/aim_test.go
package system

import (
	"math"
	"testing"

	"go-artillery-duel/internal/component"
	"go-artillery-duel/internal/config"
	"go-artillery-duel/internal/entity"
	"go-artillery-duel/internal/types"

	"github.com/stretchr/testify/require"
)

func newAimFixture() (*AimSystem, *entity.ECS, types.EntityID) {
	ecs := entity.NewECS()
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 200, Y: 500}
	ecs.Turrets[id] = &component.Turret{
		Team:  config.TeamLeft,
		Angle: -math.Pi / 4,
		Power: config.DefaultAimPower,
	}
	return NewAimSystem(ecs), ecs, id
}

func TestAimSystem_Keyboard(t *testing.T) {
	aim, ecs, id := newAimFixture()

	aim.Apply(id, AimCommand{Kind: AimKeyboard, AngleDir: -1}, 0.1)
	require.InDelta(t, -math.Pi/4-config.AimAngleSpeed*0.1, ecs.Turrets[id].Angle, 1e-9)

	aim.Apply(id, AimCommand{Kind: AimKeyboard, PowerDir: 1}, 0.1)
	require.InDelta(t, config.DefaultAimPower+config.AimPowerSpeed*0.1, ecs.Turrets[id].Power, 1e-9)
}

func TestAimSystem_KeyboardClamping(t *testing.T) {
	aim, ecs, id := newAimFixture()

	// Долгое удержание упирается в границы, а не перекручивает ствол
	for i := 0; i < 1000; i++ {
		aim.Apply(id, AimCommand{Kind: AimKeyboard, AngleDir: -1, PowerDir: 1}, 0.1)
	}
	require.Equal(t, -math.Pi, ecs.Turrets[id].Angle)
	require.Equal(t, 1.0, ecs.Turrets[id].Power)

	for i := 0; i < 1000; i++ {
		aim.Apply(id, AimCommand{Kind: AimKeyboard, AngleDir: 1, PowerDir: -1}, 0.1)
	}
	require.Equal(t, 0.0, ecs.Turrets[id].Angle)
	require.Equal(t, 0.0, ecs.Turrets[id].Power)
}

func TestAimSystem_Pointer(t *testing.T) {
	aim, ecs, id := newAimFixture()

	// Курсор строго над турелью: ствол вертикально вверх, мощность по дальности
	aim.Apply(id, AimCommand{Kind: AimPointer, TargetX: 200, TargetY: 400}, 0.016)
	require.InDelta(t, -math.Pi/2, ecs.Turrets[id].Angle, 1e-9)
	require.InDelta(t, 100.0/config.PowerGaugeWidth, ecs.Turrets[id].Power, 1e-9)

	// Курсор ниже горизонта: угол прижимается к границе полуплоскости
	aim.Apply(id, AimCommand{Kind: AimPointer, TargetX: 300, TargetY: 600}, 0.016)
	require.Equal(t, 0.0, ecs.Turrets[id].Angle)

	// Дальний курсор упирается в максимум мощности
	aim.Apply(id, AimCommand{Kind: AimPointer, TargetX: 2000, TargetY: 100}, 0.016)
	require.Equal(t, 1.0, ecs.Turrets[id].Power)
}

func TestAimSystem_BarrelTip(t *testing.T) {
	aim, ecs, id := newAimFixture()

	ecs.Turrets[id].Angle = -math.Pi / 2
	x, y := aim.BarrelTip(id)
	require.InDelta(t, 200.0, x, 1e-9)
	require.InDelta(t, 500.0-config.BarrelLength, y, 1e-9)

	// Неизвестная сущность даёт нулевую точку, не панику
	x, y = aim.BarrelTip(9999)
	require.Zero(t, x)
	require.Zero(t, y)
}

func TestAimSystem_MissingComponents(t *testing.T) {
	aim, _, _ := newAimFixture()
	// Команда по несуществующей турели молча игнорируется
	aim.Apply(12345, AimCommand{Kind: AimKeyboard, AngleDir: 1}, 0.1)
}
