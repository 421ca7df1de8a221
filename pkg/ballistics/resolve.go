// pkg/ballistics/resolve.go
package ballistics

import (
	"math"

	"go-artillery-duel/pkg/landscape"
)

const (
	// HitRadius — радиус засчитывания попадания по турели
	HitRadius = 28.0
	// groundTolerance — насколько раньше поверхности засчитывается контакт
	// с рельефом
	groundTolerance = 3.0
)

// OutcomeKind — категориальный вердикт резолвера за один тик.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeBounds
	OutcomeActor
	OutcomeTerrain
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeBounds:
		return "bounds"
	case OutcomeActor:
		return "actor"
	case OutcomeTerrain:
		return "terrain"
	default:
		return "none"
	}
}

// Actor — проверяемая цель (турель): позиция, радиус и идентификатор,
// принадлежит менеджеру ходов и передаётся по ссылке каждый тик.
type Actor struct {
	ID     uint64
	X, Y   float64
	Radius float64
}

// Bounds — границы мира [0, Width] x [0, Height].
type Bounds struct {
	Width, Height float64
}

// Outcome — результат классификации. Actor заполнен только при
// Kind == OutcomeActor.
type Outcome struct {
	Kind  OutcomeKind
	Actor *Actor
}

// Resolve классифицирует текущее состояние снаряда. Порядок проверок
// фиксирован ради детерминизма: границы мира, затем турели (первая
// подходящая в порядке списка), затем рельеф. Побочных эффектов нет —
// урон и снятие снаряда применяет вызывающий код.
func Resolve(p Projectile, surface *landscape.Surface, actors []Actor, bounds Bounds) Outcome {
	// Верхней границы нет: навесной снаряд уходит выше экрана и
	// возвращается. За пределами мира — только бока и дно.
	if p.X < 0 || p.X > bounds.Width || p.Y > bounds.Height {
		return Outcome{Kind: OutcomeBounds}
	}

	for i := range actors {
		a := &actors[i]
		dx := p.X - a.X
		dy := p.Y - a.Y
		if math.Sqrt(dx*dx+dy*dy) < HitRadius {
			return Outcome{Kind: OutcomeActor, Actor: a}
		}
	}

	if surface != nil && p.Y >= surface.HeightAt(p.X)-groundTolerance {
		return Outcome{Kind: OutcomeTerrain}
	}

	return Outcome{}
}
