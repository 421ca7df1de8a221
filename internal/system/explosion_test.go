// internal/system/explosion_test.go
package system

import (
	"testing"

	"go-artillery-duel/internal/component"
	"go-artillery-duel/internal/entity"

	"github.com/stretchr/testify/require"
)

func TestExplosionSystem_ExpiresAfterDuration(t *testing.T) {
	ecs := entity.NewECS()
	sys := NewExplosionSystem(ecs)

	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: 100, Y: 100}
	ecs.Explosions[id] = &component.Explosion{Duration: 0.5, MaxRadius: 46}

	sys.Update(0.3)
	require.Contains(t, ecs.Explosions, id)
	require.InDelta(t, 0.3, ecs.Explosions[id].Age, 1e-9)

	sys.Update(0.3)
	require.NotContains(t, ecs.Explosions, id)
	require.NotContains(t, ecs.Positions, id, "position is freed with the effect")
}
