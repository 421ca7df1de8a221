// internal/event/types.go
package event

import "go-artillery-duel/internal/types"

const (
	ProjectileFired    EventType = "ProjectileFired"    // Выстрел произведён
	ProjectileExploded EventType = "ProjectileExploded" // Снаряд взорвался о рельеф
	ProjectileLost     EventType = "ProjectileLost"     // Улетел за границы мира или по таймауту
	TurretHit          EventType = "TurretHit"          // Прямое попадание по турели
	TurretDestroyed    EventType = "TurretDestroyed"
	TurnEnded          EventType = "TurnEnded"    // Снаряд завершил жизнь, ход переходит
	WindChanged        EventType = "WindChanged"  // Ветер пересчитан на новый ход
	RoundEnded         EventType = "RoundEnded"   // Здоровье одной из сторон исчерпано
)

// ProjectileImpact — полезная нагрузка событий завершения полёта снаряда.
type ProjectileImpact struct {
	ProjectileID types.EntityID
	TargetID     types.EntityID // заполнен только для TurretHit
	WeaponID     string
	X, Y         float64
}
