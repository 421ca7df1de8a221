// internal/component/trail.go
package component

// Trail — хвост последних позиций снаряда. Буфер принадлежит снаряду и
// освобождается вместе с ним, когда резолвер выносит вердикт.
type Trail struct {
	Points []Position
	Max    int
}

// Append добавляет точку, вытесняя самую старую при переполнении.
func (t *Trail) Append(p Position) {
	t.Points = append(t.Points, p)
	if t.Max > 0 && len(t.Points) > t.Max {
		t.Points = t.Points[1:]
	}
}
