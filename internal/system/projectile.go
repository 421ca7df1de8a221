// internal/system/projectile.go
package system

import (
	"go-artillery-duel/internal/component"
	"go-artillery-duel/internal/config"
	"go-artillery-duel/internal/entity"
	"go-artillery-duel/internal/event"
	"go-artillery-duel/internal/types"
	"go-artillery-duel/pkg/ballistics"
)

// ProjectileSystem продвигает снаряды и классифицирует исходы каждого тика.
// Вся физика и классификация — чистые функции pkg/ballistics; система только
// применяет их к ECS и транслирует вердикты в события.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	round := s.ecs.Round
	if round == nil || round.Surface == nil {
		return
	}

	bounds := ballistics.Bounds{Width: config.WorldWidth, Height: config.WorldHeight}

	// Обход в порядке возрастания ID: при нескольких снарядах в полёте
	// порядок применения урона стабилен
	for _, id := range s.ecs.SortedProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			s.removeProjectile(id)
			continue
		}

		state := ballistics.Projectile{
			X: pos.X, Y: pos.Y,
			VX: vel.X, VY: vel.Y,
			SpawnTime:     proj.FiredAt,
			MaxFlightTime: proj.MaxFlightTime,
		}
		state = ballistics.Step(state, deltaTime, config.Gravity, round.WindAccelX)
		pos.X, pos.Y = state.X, state.Y
		vel.X, vel.Y = state.VX, state.VY

		if trail, ok := s.ecs.Trails[id]; ok {
			trail.Append(component.Position{X: pos.X, Y: pos.Y})
		}

		outcome := ballistics.Resolve(state, round.Surface, s.collectActors(proj.OwnerID), bounds)
		impact := event.ProjectileImpact{
			ProjectileID: id,
			WeaponID:     proj.WeaponID,
			X:            pos.X,
			Y:            pos.Y,
		}

		switch outcome.Kind {
		case ballistics.OutcomeNone:
			// Таймаут полёта — политика этой системы, не резолвера
			if state.Expired(s.ecs.GameTime) {
				s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileLost, Data: impact})
				s.removeProjectile(id)
			}
		case ballistics.OutcomeBounds:
			s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileLost, Data: impact})
			s.removeProjectile(id)
		case ballistics.OutcomeActor:
			impact.TargetID = types.EntityID(outcome.Actor.ID)
			s.spawnExplosion(pos.X, pos.Y)
			s.eventDispatcher.Dispatch(event.Event{Type: event.TurretHit, Data: impact})
			s.removeProjectile(id)
		case ballistics.OutcomeTerrain:
			s.spawnExplosion(pos.X, pos.Y)
			s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileExploded, Data: impact})
			s.removeProjectile(id)
		}
	}
}

// collectActors собирает турели как цели, исключая стрелявшую: снаряд
// рождается у среза ствола, внутри радиуса засчитывания собственной турели.
func (s *ProjectileSystem) collectActors(ownerID types.EntityID) []ballistics.Actor {
	actors := make([]ballistics.Actor, 0, len(s.ecs.Turrets))
	for _, id := range s.sortedTurretIDs() {
		if id == ownerID {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		actors = append(actors, ballistics.Actor{
			ID:     uint64(id),
			X:      pos.X,
			Y:      pos.Y,
			Radius: config.TurretRadius,
		})
	}
	return actors
}

func (s *ProjectileSystem) sortedTurretIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(s.ecs.Turrets))
	for id := range s.ecs.Turrets {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
	return ids
}

func (s *ProjectileSystem) spawnExplosion(x, y float64) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Explosions[id] = &component.Explosion{
		Duration:  config.ExplosionDuration,
		MaxRadius: config.ExplosionMaxR,
		Color:     config.ExplosionColor,
	}
}

// Вспомогательная функция для удаления снаряда вместе с хвостом
func (s *ProjectileSystem) removeProjectile(id types.EntityID) {
	delete(s.ecs.Positions, id)
	delete(s.ecs.Velocities, id)
	delete(s.ecs.Projectiles, id)
	delete(s.ecs.Renderables, id)
	delete(s.ecs.Trails, id)
}
