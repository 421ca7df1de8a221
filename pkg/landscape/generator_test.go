// pkg/landscape/generator_test.go
package landscape

import (
	"testing"

	"go-artillery-duel/internal/config"
	"go-artillery-duel/internal/utils"

	"github.com/stretchr/testify/require"
)

func TestGenerate_InvalidParameters(t *testing.T) {
	rng := utils.NewPRNGService(1)

	_, err := Generate(3000, 500, 5, rng)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Generate(0, 500, 40, rng)
	require.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Generate(-100, 500, 40, rng)
	require.ErrorIs(t, err, ErrInvalidParameter)
}

func TestGenerate_PointLayout(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		land, err := Generate(3000, 500, 40, utils.NewPRNGService(seed))
		require.NoError(t, err)

		require.Len(t, land.Points, 40)
		require.Equal(t, 0.0, land.Points[0].X)
		require.Equal(t, 3000.0, land.Points[len(land.Points)-1].X)

		for i := 1; i < len(land.Points); i++ {
			require.Greater(t, land.Points[i].X, land.Points[i-1].X,
				"seed %d: x must strictly increase", seed)
		}
	}
}

func TestGenerate_MiddleRidge(t *testing.T) {
	land, err := Generate(3000, 500, 40, utils.NewPRNGService(7))
	require.NoError(t, err)

	// Пик хребта в средней трети заметно выше базового уровня (Y вниз)
	third := 40 / 3
	minY := land.Points[third].Y
	for _, p := range land.Points[third : 2*third] {
		if p.Y < minY {
			minY = p.Y
		}
	}
	require.Less(t, minY, 500.0-config.RidgeHeight/2)

	// Прибрежные трети остаются в полосе шума вокруг базового уровня
	for _, p := range land.Points[:third] {
		require.InDelta(t, 500.0, p.Y, config.ShoreNoise+1)
	}
}

func TestGenerate_FlatBases(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		land, err := Generate(3000, 500, 40, utils.NewPRNGService(seed))
		require.NoError(t, err)

		third := 40 / 3
		for i, base := range land.FlatBases {
			require.Greater(t, base.EndIndex, base.StartIndex, "seed %d", seed)

			// Площадки только в крайних третях, никогда в горной середине
			inLeft := base.StartIndex >= 0 && base.EndIndex < third
			inRight := base.StartIndex >= 2*third && base.EndIndex < 40
			require.True(t, inLeft || inRight,
				"seed %d: base %v crosses the middle third", seed, base)

			// Высота внутри площадки постоянна
			flatY := land.Points[base.StartIndex].Y
			for j := base.StartIndex; j <= base.EndIndex; j++ {
				require.Equal(t, flatY, land.Points[j].Y)
			}

			// Площадки упорядочены и не пересекаются
			if i > 0 {
				require.Greater(t, base.StartIndex, land.FlatBases[i-1].EndIndex,
					"seed %d: bases overlap", seed)
			}
		}
	}
}

func TestGenerate_LeftBaseMinX(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		land, err := Generate(3000, 500, 40, utils.NewPRNGService(seed))
		require.NoError(t, err)

		third := 40 / 3
		for _, base := range land.FlatBases {
			if base.EndIndex < third {
				require.GreaterOrEqual(t, land.Points[base.StartIndex].X, config.LeftBaseMinX)
			}
		}
	}
}

func TestGenerate_BasesWithinSideRanges(t *testing.T) {
	// worldWidth=3000, pointCount=40, baseElevation=500: все площадки в
	// x ∈ [0, 1000) или x ∈ [2000, 3000]
	for seed := int64(1); seed <= 20; seed++ {
		land, err := Generate(3000, 500, 40, utils.NewPRNGService(seed))
		require.NoError(t, err)
		require.LessOrEqual(t, len(land.FlatBases), 6)

		for _, base := range land.FlatBases {
			startX := land.Points[base.StartIndex].X
			endX := land.Points[base.EndIndex].X
			left := startX >= 0 && endX < 1000
			right := startX >= 2000 && endX <= 3000
			require.True(t, left || right,
				"seed %d: base spans [%v, %v]", seed, startX, endX)
		}
	}
}
