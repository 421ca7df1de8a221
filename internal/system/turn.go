// internal/system/turn.go
package system

import (
	"log"

	"go-artillery-duel/internal/component"
	"go-artillery-duel/internal/config"
	"go-artillery-duel/internal/defs"
	"go-artillery-duel/internal/entity"
	"go-artillery-duel/internal/event"
	"go-artillery-duel/internal/types"
	"go-artillery-duel/internal/utils"
)

// TurnSystem применяет урон по вердиктам резолвера и ведёт очерёдность
// ходов: жизнь снаряда закончилась — ход переходит другой стороне.
type TurnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	environment     *EnvironmentSystem
}

func NewTurnSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, environment *EnvironmentSystem) *TurnSystem {
	ts := &TurnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		environment:     environment,
	}
	eventDispatcher.Subscribe(event.TurretHit, ts)
	eventDispatcher.Subscribe(event.ProjectileExploded, ts)
	eventDispatcher.Subscribe(event.ProjectileLost, ts)
	return ts
}

// OnEvent реализует интерфейс event.Listener.
func (s *TurnSystem) OnEvent(e event.Event) {
	impact, ok := e.Data.(event.ProjectileImpact)
	if !ok {
		return
	}

	switch e.Type {
	case event.TurretHit:
		s.applyDirectHit(impact)
	case event.ProjectileExploded:
		s.applySplash(impact)
	}

	s.endTurn()
}

func (s *TurnSystem) applyDirectHit(impact event.ProjectileImpact) {
	weapon, ok := defs.WeaponLibrary[impact.WeaponID]
	if !ok {
		log.Printf("unknown weapon %q on direct hit", impact.WeaponID)
		return
	}
	s.damageTurret(impact.TargetID, weapon.Damage)
}

// applySplash наносит урон по площади от взрыва о рельеф: линейное
// затухание от эпицентра до границы радиуса взрыва.
func (s *TurnSystem) applySplash(impact event.ProjectileImpact) {
	weapon, ok := defs.WeaponLibrary[impact.WeaponID]
	if !ok || weapon.ExplosionRadius <= 0 {
		return
	}

	for id := range s.ecs.Turrets {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		dist := utils.Dist(impact.X, impact.Y, pos.X, pos.Y)
		if dist >= weapon.ExplosionRadius {
			continue
		}
		dmg := int(float64(weapon.Damage) * (1 - dist/weapon.ExplosionRadius))
		if dmg > 0 {
			s.damageTurret(id, dmg)
		}
	}
}

func (s *TurnSystem) damageTurret(id types.EntityID, damage int) {
	health := s.ecs.Healths[id]
	turret := s.ecs.Turrets[id]
	if health == nil || turret == nil {
		return
	}

	health.Value -= damage
	if health.Value > 0 {
		return
	}

	health.Value = 0
	s.eventDispatcher.Dispatch(event.Event{Type: event.TurretDestroyed, Data: id})

	round := s.ecs.Round
	round.Phase = component.PhaseGameOver
	if turret.Team == config.TeamLeft {
		round.Winner = config.TeamRight
	} else {
		round.Winner = config.TeamLeft
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.RoundEnded, Data: round.Winner})
}

func (s *TurnSystem) endTurn() {
	round := s.ecs.Round
	if round.Phase == component.PhaseGameOver {
		return
	}

	if round.CurrentTeam == config.TeamLeft {
		round.CurrentTeam = config.TeamRight
	} else {
		round.CurrentTeam = config.TeamLeft
	}
	round.Phase = component.PhaseAiming
	s.environment.Reroll()
	s.eventDispatcher.Dispatch(event.Event{Type: event.TurnEnded, Data: round.CurrentTeam})
}
