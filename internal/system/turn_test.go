// internal/system/turn_test.go
package system

import (
	"testing"

	"go-artillery-duel/internal/component"
	"go-artillery-duel/internal/config"
	"go-artillery-duel/internal/defs"
	"go-artillery-duel/internal/entity"
	"go-artillery-duel/internal/event"
	"go-artillery-duel/internal/types"
	"go-artillery-duel/internal/utils"

	"github.com/stretchr/testify/require"
)

type turnFixture struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	turn       *TurnSystem
	left       types.EntityID
	right      types.EntityID
	recorder   *eventRecorder
}

func newTurnFixture(t *testing.T) *turnFixture {
	t.Helper()
	require.NoError(t, defs.LoadWeaponDefinitions())

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	env := NewEnvironmentSystem(ecs, utils.NewPRNGService(5), dispatcher)
	turn := NewTurnSystem(ecs, dispatcher, env)

	rec := &eventRecorder{}
	dispatcher.Subscribe(event.TurnEnded, rec)
	dispatcher.Subscribe(event.TurretDestroyed, rec)
	dispatcher.Subscribe(event.RoundEnded, rec)
	dispatcher.Subscribe(event.WindChanged, rec)

	left := ecs.NewEntity()
	ecs.Positions[left] = &component.Position{X: 300, Y: 500}
	ecs.Turrets[left] = &component.Turret{Team: config.TeamLeft, WeaponID: defs.DefaultWeaponID}
	ecs.Healths[left] = &component.Health{Value: config.TurretHealth}

	right := ecs.NewEntity()
	ecs.Positions[right] = &component.Position{X: 2700, Y: 500}
	ecs.Turrets[right] = &component.Turret{Team: config.TeamRight, WeaponID: defs.DefaultWeaponID}
	ecs.Healths[right] = &component.Health{Value: config.TurretHealth}

	ecs.Round.CurrentTeam = config.TeamLeft
	ecs.Round.Phase = component.PhaseFlight

	return &turnFixture{ecs: ecs, dispatcher: dispatcher, turn: turn, left: left, right: right, recorder: rec}
}

func (f *turnFixture) eventsOf(typ event.EventType) []event.Event {
	var out []event.Event
	for _, e := range f.recorder.events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func TestTurnSystem_DirectHitDamagesAndSwitchesTurn(t *testing.T) {
	f := newTurnFixture(t)

	f.dispatcher.Dispatch(event.Event{Type: event.TurretHit, Data: event.ProjectileImpact{
		TargetID: f.right,
		WeaponID: defs.DefaultWeaponID,
		X:        2700, Y: 500,
	}})

	std := defs.WeaponLibrary[defs.DefaultWeaponID]
	require.Equal(t, config.TurretHealth-std.Damage, f.ecs.Healths[f.right].Value)
	require.Equal(t, config.TeamRight, f.ecs.Round.CurrentTeam)
	require.Equal(t, component.PhaseAiming, f.ecs.Round.Phase)
	require.Len(t, f.eventsOf(event.TurnEnded), 1)
	require.Len(t, f.eventsOf(event.WindChanged), 1, "wind rerolls on turn change")
	require.Empty(t, f.eventsOf(event.RoundEnded))
}

func TestTurnSystem_LostProjectileOnlyEndsTurn(t *testing.T) {
	f := newTurnFixture(t)

	f.dispatcher.Dispatch(event.Event{Type: event.ProjectileLost, Data: event.ProjectileImpact{
		WeaponID: defs.DefaultWeaponID,
		X:        -10, Y: 300,
	}})

	require.Equal(t, config.TurretHealth, f.ecs.Healths[f.left].Value)
	require.Equal(t, config.TurretHealth, f.ecs.Healths[f.right].Value)
	require.Equal(t, config.TeamRight, f.ecs.Round.CurrentTeam)
	require.Len(t, f.eventsOf(event.TurnEnded), 1)
}

func TestTurnSystem_SplashLinearFalloff(t *testing.T) {
	f := newTurnFixture(t)
	std := defs.WeaponLibrary[defs.DefaultWeaponID]

	// Взрыв о рельеф на половине радиуса от правой турели
	dist := std.ExplosionRadius / 2
	f.dispatcher.Dispatch(event.Event{Type: event.ProjectileExploded, Data: event.ProjectileImpact{
		WeaponID: defs.DefaultWeaponID,
		X:        2700 + dist, Y: 500,
	}})

	expected := int(float64(std.Damage) * 0.5)
	require.Equal(t, config.TurretHealth-expected, f.ecs.Healths[f.right].Value)
	require.Equal(t, config.TurretHealth, f.ecs.Healths[f.left].Value, "far turret untouched")
}

func TestTurnSystem_SplashOutsideRadiusNoDamage(t *testing.T) {
	f := newTurnFixture(t)
	std := defs.WeaponLibrary[defs.DefaultWeaponID]

	f.dispatcher.Dispatch(event.Event{Type: event.ProjectileExploded, Data: event.ProjectileImpact{
		WeaponID: defs.DefaultWeaponID,
		X:        2700 + std.ExplosionRadius, Y: 500,
	}})

	require.Equal(t, config.TurretHealth, f.ecs.Healths[f.right].Value)
}

func TestTurnSystem_LethalHitEndsRound(t *testing.T) {
	f := newTurnFixture(t)
	f.ecs.Healths[f.right].Value = 10

	f.dispatcher.Dispatch(event.Event{Type: event.TurretHit, Data: event.ProjectileImpact{
		TargetID: f.right,
		WeaponID: defs.DefaultWeaponID,
		X:        2700, Y: 500,
	}})

	require.Equal(t, 0, f.ecs.Healths[f.right].Value, "health clamps at zero")
	require.Equal(t, component.PhaseGameOver, f.ecs.Round.Phase)
	require.Equal(t, config.TeamLeft, f.ecs.Round.Winner)
	require.Len(t, f.eventsOf(event.TurretDestroyed), 1)
	require.Len(t, f.eventsOf(event.RoundEnded), 1)

	// Ход после конца раунда не переходит
	require.Empty(t, f.eventsOf(event.TurnEnded))
	require.Equal(t, config.TeamLeft, f.ecs.Round.CurrentTeam)
}

func TestTurnSystem_UnknownWeaponIgnored(t *testing.T) {
	f := newTurnFixture(t)

	f.dispatcher.Dispatch(event.Event{Type: event.TurretHit, Data: event.ProjectileImpact{
		TargetID: f.right,
		WeaponID: "SHELL_UNKNOWN",
	}})

	require.Equal(t, config.TurretHealth, f.ecs.Healths[f.right].Value)
	// Ход всё равно переходит: снаряд своё отлетал
	require.Len(t, f.eventsOf(event.TurnEnded), 1)
}
