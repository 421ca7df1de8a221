// pkg/landscape/landscape.go
package landscape

import "errors"

// ErrInvalidParameter возвращается генератором при непригодных входных данных.
var ErrInvalidParameter = errors.New("landscape: invalid parameter")

// RandomSource — инъектируемый источник случайности. Продакшн-реализация —
// utils.PRNGService, тесты подставляют детерминированный источник.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// Point — одна опорная точка рельефа в мировых координатах.
// X строго возрастает вдоль последовательности, ось Y направлена вниз.
type Point struct {
	X, Y float64
}

// FlatBase — непрерывный участок точек с одинаковой высотой,
// посадочная площадка для турели. Диапазон индексов включительный.
type FlatBase struct {
	StartIndex int
	EndIndex   int
}

// Landscape — статичный рельеф раунда. Создаётся один раз при старте
// раунда и дальше только читается.
type Landscape struct {
	Points    []Point
	FlatBases []FlatBase
	Width     float64
}

// BaseCenter возвращает мировые координаты середины площадки.
func (l *Landscape) BaseCenter(b FlatBase) (float64, float64) {
	start := l.Points[b.StartIndex]
	end := l.Points[b.EndIndex]
	return (start.X + end.X) / 2, start.Y
}

// BasesInBand возвращает индексы площадок, целиком лежащих в диапазоне
// индексов точек [from, to).
func (l *Landscape) BasesInBand(from, to int) []int {
	var out []int
	for i, b := range l.FlatBases {
		if b.StartIndex >= from && b.EndIndex < to {
			out = append(out, i)
		}
	}
	return out
}
