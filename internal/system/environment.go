// internal/system/environment.go
package system

import (
	"go-artillery-duel/internal/config"
	"go-artillery-duel/internal/entity"
	"go-artillery-duel/internal/event"
	"go-artillery-duel/pkg/landscape"
)

// EnvironmentSystem пересчитывает ветер на каждый ход. Модель с процентом
// вариации: сила = базовая * (1 ± WindVariation), направление случайное.
type EnvironmentSystem struct {
	ecs             *entity.ECS
	rng             landscape.RandomSource
	eventDispatcher *event.Dispatcher
}

func NewEnvironmentSystem(ecs *entity.ECS, rng landscape.RandomSource, eventDispatcher *event.Dispatcher) *EnvironmentSystem {
	return &EnvironmentSystem{
		ecs:             ecs,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Reroll выбирает ветер на новый ход и публикует WindChanged.
func (s *EnvironmentSystem) Reroll() {
	strength := config.WindBaseAccel * (1 + config.WindVariation*(s.rng.Float64()*2-1))
	dir := 1.0
	if s.rng.Intn(2) == 0 {
		dir = -1.0
	}
	s.ecs.Round.WindAccelX = strength * dir
	s.eventDispatcher.Dispatch(event.Event{Type: event.WindChanged, Data: s.ecs.Round.WindAccelX})
}
