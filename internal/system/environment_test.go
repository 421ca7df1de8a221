// internal/system/environment_test.go
package system

import (
	"math"
	"testing"

	"go-artillery-duel/internal/config"
	"go-artillery-duel/internal/entity"
	"go-artillery-duel/internal/event"
	"go-artillery-duel/internal/utils"

	"github.com/stretchr/testify/require"
)

// stubRandom отдаёт заранее заданные значения — для точных проверок
type stubRandom struct {
	floats []float64
	ints   []int
}

func (s *stubRandom) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *stubRandom) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func TestEnvironmentSystem_RerollExactValues(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &eventRecorder{}
	dispatcher.Subscribe(event.WindChanged, rec)

	// Float64 = 0.5 даёт нулевое отклонение: сила ровно базовая
	env := NewEnvironmentSystem(ecs, &stubRandom{floats: []float64{0.5}, ints: []int{1}}, dispatcher)
	env.Reroll()
	require.InDelta(t, config.WindBaseAccel, ecs.Round.WindAccelX, 1e-9)
	require.Len(t, rec.events, 1)
	require.Equal(t, ecs.Round.WindAccelX, rec.events[0].Data)

	// Intn = 0 меняет знак на отрицательный
	env = NewEnvironmentSystem(ecs, &stubRandom{floats: []float64{0.5}, ints: []int{0}}, dispatcher)
	env.Reroll()
	require.InDelta(t, -config.WindBaseAccel, ecs.Round.WindAccelX, 1e-9)

	// Крайние значения вариации
	env = NewEnvironmentSystem(ecs, &stubRandom{floats: []float64{1}, ints: []int{1}}, dispatcher)
	env.Reroll()
	require.InDelta(t, config.WindBaseAccel*(1+config.WindVariation), ecs.Round.WindAccelX, 1e-9)
}

func TestEnvironmentSystem_RerollRange(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	env := NewEnvironmentSystem(ecs, utils.NewPRNGService(11), dispatcher)

	sawPositive, sawNegative := false, false
	lo := config.WindBaseAccel * (1 - config.WindVariation)
	hi := config.WindBaseAccel * (1 + config.WindVariation)

	for i := 0; i < 200; i++ {
		env.Reroll()
		w := ecs.Round.WindAccelX
		require.GreaterOrEqual(t, math.Abs(w), lo-1e-9)
		require.LessOrEqual(t, math.Abs(w), hi+1e-9)
		if w > 0 {
			sawPositive = true
		} else {
			sawNegative = true
		}
	}
	require.True(t, sawPositive)
	require.True(t, sawNegative)
}
