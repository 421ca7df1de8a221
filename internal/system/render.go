// internal/system/render.go
package system

import (
	"math"

	"go-artillery-duel/internal/config"
	"go-artillery-duel/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности. camX — смещение камеры по миру:
// мир шире экрана, все координаты сдвигаются на -camX.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, camX float64) {
	// Сначала хвосты, чтобы снаряды рисовались поверх
	for _, trail := range s.ecs.Trails {
		for _, p := range trail.Points {
			vector.DrawFilledCircle(screen, float32(p.X-camX), float32(p.Y), 2, config.TrailColor, true)
		}
	}

	// Турели: корпус и ствол
	for id, turret := range s.ecs.Turrets {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		teamColor := config.TeamColors[turret.Team]
		if health, ok := s.ecs.Healths[id]; ok && health.Value <= 0 {
			teamColor.A = 90 // подбитая турель тускнеет
		}

		tipX := pos.X + math.Cos(turret.Angle)*config.BarrelLength
		tipY := pos.Y + math.Sin(turret.Angle)*config.BarrelLength
		vector.StrokeLine(screen,
			float32(pos.X-camX), float32(pos.Y),
			float32(tipX-camX), float32(tipY),
			3.0, teamColor, true)
		vector.DrawFilledCircle(screen, float32(pos.X-camX), float32(pos.Y), config.TurretRadius, teamColor, true)
	}

	// Сущности с Renderable (снаряды)
	for id, render := range s.ecs.Renderables {
		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			vector.DrawFilledCircle(screen, float32(pos.X-camX), float32(pos.Y), render.Radius, render.Color, true)
		}
	}

	// Взрывы: расширяющееся кольцо с затуханием
	for id, explosion := range s.ecs.Explosions {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		progress := explosion.Age / explosion.Duration
		radius := float32(progress * explosion.MaxRadius)
		c := explosion.Color
		c.A = uint8(float64(c.A) * (1 - progress))
		vector.StrokeCircle(screen, float32(pos.X-camX), float32(pos.Y), radius, 4.0, c, true)
	}
}
