// internal/system/explosion.go
package system

import (
	"go-artillery-duel/internal/entity"
)

// ExplosionSystem управляет визуальными эффектами взрывов.
type ExplosionSystem struct {
	ecs *entity.ECS
}

func NewExplosionSystem(ecs *entity.ECS) *ExplosionSystem {
	return &ExplosionSystem{ecs: ecs}
}

// Update обновляет все активные взрывы и удаляет отыгравшие.
func (s *ExplosionSystem) Update(deltaTime float64) {
	for id, explosion := range s.ecs.Explosions {
		explosion.Age += deltaTime
		if explosion.Age >= explosion.Duration {
			delete(s.ecs.Explosions, id)
			delete(s.ecs.Positions, id)
		}
	}
}
