// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-artillery-duel/internal/component"
	"go-artillery-duel/internal/types"
)

// ECS — центральное хранилище компонентов. Системы обходят нужные им
// мапы по ID; порядок обхода снарядов фиксируется SortedProjectileIDs,
// чтобы одновременные попадания разрешались детерминированно.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Projectiles map[types.EntityID]*component.Projectile
	Turrets     map[types.EntityID]*component.Turret
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Trails      map[types.EntityID]*component.Trail
	Explosions  map[types.EntityID]*component.Explosion

	Round *component.RoundState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Turrets:     make(map[types.EntityID]*component.Turret),
		Healths:     make(map[types.EntityID]*component.Health),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Trails:      make(map[types.EntityID]*component.Trail),
		Explosions:  make(map[types.EntityID]*component.Explosion),
		Round:       &component.RoundState{Phase: component.PhaseAiming},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Turrets, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Trails, id)
	delete(ecs.Explosions, id)
}

// SortedProjectileIDs возвращает ID снарядов по возрастанию. Обход мапы в
// Go нестабилен, а порядок применения урона при одновременных попаданиях
// должен быть воспроизводим при одинаковом входе.
func (ecs *ECS) SortedProjectileIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Projectiles))
	for id := range ecs.Projectiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
