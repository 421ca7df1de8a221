// internal/component/round.go
package component

import "go-artillery-duel/pkg/landscape"

// RoundPhase — фаза раунда
type RoundPhase int

const (
	PhaseAiming RoundPhase = iota // активный игрок целится
	PhaseFlight                   // снаряд в полёте, ввод заблокирован
	PhaseGameOver
)

// RoundState — явное состояние раунда. Передаётся системам по ссылке
// через ECS, никакого глобального состояния сцены.
type RoundState struct {
	Landscape   *landscape.Landscape
	Surface     *landscape.Surface
	WindAccelX  float64 // горизонтальное ускорение ветра на текущий ход
	CurrentTeam int
	Phase       RoundPhase
	Winner      int // валиден только в PhaseGameOver
}
