// pkg/landscape/surface.go
package landscape

import "sort"

// Surface — интерфейс чтения высоты рельефа: линейная интерполяция между
// соседними опорными точками. Строится один раз из готового Landscape и
// переиспользуется весь раунд (и для размещения турелей, и для коллизий).
type Surface struct {
	points        []Point
	defaultGround float64
}

// NewSurface создаёт поверхность. defaultGround возвращается для
// вырожденного входа (меньше двух точек) вместо ошибки.
func NewSurface(l *Landscape, defaultGround float64) *Surface {
	var pts []Point
	if l != nil {
		pts = l.Points
	}
	return &Surface{points: pts, defaultGround: defaultGround}
}

// HeightAt возвращает высоту поверхности в мировой координате x.
// Запрос за пределами сгенерированного диапазона прижимается к ближайшему
// краю: плавающая математика камеры легко выходит чуть за границу,
// и это не повод для ошибки.
func (s *Surface) HeightAt(x float64) float64 {
	pts := s.points
	if len(pts) < 2 {
		return s.defaultGround
	}
	if x <= pts[0].X {
		return pts[0].Y
	}
	if x >= pts[len(pts)-1].X {
		return pts[len(pts)-1].Y
	}

	// Первая пара (p_i, p_i+1), у которой p_i+1.X >= x
	i := sort.Search(len(pts)-1, func(i int) bool { return pts[i+1].X >= x })
	p0, p1 := pts[i], pts[i+1]
	if p1.X == p0.X {
		return p0.Y
	}
	t := (x - p0.X) / (p1.X - p0.X)
	return p0.Y + t*(p1.Y-p0.Y)
}
