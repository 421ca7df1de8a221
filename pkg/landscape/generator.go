// pkg/landscape/generator.go
package landscape

import (
	"fmt"
	"math"
	"sort"

	"go-artillery-duel/internal/config"
)

// Generate строит рельеф раунда: шумные прибрежные трети по краям,
// центральный хребет посередине и плоские площадки под турели в крайних
// третях. Функция стохастическая, но вся случайность идёт через rng.
func Generate(worldWidth, baseElevation float64, pointCount int, rng RandomSource) (*Landscape, error) {
	if pointCount < 6 {
		return nil, fmt.Errorf("%w: pointCount %d, need at least 6", ErrInvalidParameter, pointCount)
	}
	if worldWidth <= 0 {
		return nil, fmt.Errorf("%w: worldWidth %v", ErrInvalidParameter, worldWidth)
	}

	l := &Landscape{
		Points: make([]Point, pointCount),
		Width:  worldWidth,
	}

	// Три смежных полосы индексов: левая и правая трети — побережье,
	// средняя — горный хребет.
	third := pointCount / 3

	for i := 0; i < pointCount; i++ {
		x := math.Floor(float64(i) / float64(pointCount-1) * worldWidth)
		var y float64
		if i < third || i >= 2*third {
			y = baseElevation + noise(rng, config.ShoreNoise)
		} else {
			// Полусинусоидальная арка: пик хребта заметно выше базового
			// уровня (Y растёт вниз, поэтому вычитаем)
			t := float64(i-third) / float64(third-1)
			y = baseElevation - config.RidgeHeight*math.Sin(math.Pi*t) + noise(rng, config.RidgeNoise)
		}
		l.Points[i] = Point{X: x, Y: y}
	}

	segment := worldWidth / float64(pointCount-1)
	l.insertBases(rng, 0, third, config.LeftBaseMinX, segment)
	l.insertBases(rng, 2*third, pointCount, 0, segment)

	sort.Slice(l.FlatBases, func(a, b int) bool {
		return l.FlatBases[a].StartIndex < l.FlatBases[b].StartIndex
	})

	return l, nil
}

// insertBases размещает до config.BasesPerSide площадок внутри полосы
// индексов [bandStart, bandEnd). Запрос, для которого не нашлось места,
// молча пропускается — это не ошибка.
func (l *Landscape) insertBases(rng RandomSource, bandStart, bandEnd int, minX, segment float64) {
	for n := 0; n < config.BasesPerSide; n++ {
		widthPx := config.BaseMinWidth + rng.Float64()*(config.BaseMaxWidth-config.BaseMinWidth)
		span := int(widthPx / segment)
		if span < 1 {
			span = 1
		}

		// Все допустимые стартовые индексы: площадка целиком внутри полосы,
		// не ближе minX к краю и без пересечения с уже размещёнными
		var starts []int
		for s := bandStart; s+span < bandEnd; s++ {
			if l.Points[s].X < minX {
				continue
			}
			if l.overlapsBase(s, s+span) {
				continue
			}
			starts = append(starts, s)
		}
		if len(starts) == 0 {
			continue
		}

		s := starts[rng.Intn(len(starts))]
		flatY := l.Points[s].Y
		for i := s; i <= s+span; i++ {
			l.Points[i].Y = flatY
		}
		l.FlatBases = append(l.FlatBases, FlatBase{StartIndex: s, EndIndex: s + span})
	}
}

func (l *Landscape) overlapsBase(start, end int) bool {
	for _, b := range l.FlatBases {
		if start <= b.EndIndex && b.StartIndex <= end {
			return true
		}
	}
	return false
}

// noise возвращает равномерный шум в диапазоне [-amplitude, amplitude).
func noise(rng RandomSource, amplitude float64) float64 {
	return (rng.Float64()*2 - 1) * amplitude
}
