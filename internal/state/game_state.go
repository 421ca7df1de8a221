// internal/state/game_state.go
package state

import (
	"fmt"
	"log"

	game "go-artillery-duel/internal/app"
	"go-artillery-duel/internal/assets"
	"go-artillery-duel/internal/component"
	"go-artillery-duel/internal/config"
	"go-artillery-duel/internal/system"
	"go-artillery-duel/internal/ui"
	"go-artillery-duel/internal/utils"
	"go-artillery-duel/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// GameState — состояние раунда дуэли
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	renderer *render.TerrainRenderer
	fontFace font.Face

	windIndicator *ui.WindIndicator
	leftHealth    *ui.HealthBar
	rightHealth   *ui.HealthBar
	powerGauge    *ui.PowerGauge
}

func NewGameState(sm *StateMachine) *GameState {
	fontFace, err := assets.LoadFontFace(14)
	if err != nil {
		log.Fatal(err)
	}

	gameLogic, err := game.NewGame(utils.NewPRNGService(0))
	if err != nil {
		log.Fatal(err)
	}

	terrainColors := &render.TerrainColors{
		Sky:      config.BackgroundColor,
		SkyTop:   config.SkyTopColor,
		Ground:   config.TerrainColor,
		Edge:     config.TerrainEdge,
		FlatBase: config.FlatBaseColor,
	}
	renderer := render.NewTerrainRenderer(
		gameLogic.ECS.Round.Landscape,
		int(config.WorldWidth), int(config.WorldHeight),
		terrainColors,
	)

	return &GameState{
		sm:            sm,
		game:          gameLogic,
		renderer:      renderer,
		fontFace:      fontFace,
		windIndicator: ui.NewWindIndicator(config.ScreenWidth/2, 30, fontFace),
		leftHealth:    ui.NewHealthBar(20, 30, config.TeamLeft, "RED", fontFace),
		rightHealth:   ui.NewHealthBar(config.ScreenWidth-20-config.HealthBarWidth, 30, config.TeamRight, "BLUE", fontFace),
		powerGauge:    ui.NewPowerGauge(20, config.ScreenHeight-30, fontFace),
	}
}

func (gs *GameState) Enter() {}

func (gs *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		gs.game.TogglePause()
	}

	if gs.game.IsOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			gs.sm.SetState(NewGameState(gs.sm))
		}
		gs.game.Update(deltaTime)
		return
	}

	gs.handleAimInput(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gs.game.Fire()
	}

	gs.game.Update(deltaTime)
}

// handleAimInput переводит сырой ввод в команды прицеливания: стрелки —
// клавиатурный вариант, зажатая левая кнопка мыши — указательный.
func (gs *GameState) handleAimInput(deltaTime float64) {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		gs.game.Aim(system.AimCommand{
			Kind:    system.AimPointer,
			TargetX: float64(cx) + gs.game.CameraX(),
			TargetY: float64(cy),
		}, deltaTime)
		return
	}

	var cmd system.AimCommand
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		cmd.AngleDir -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		cmd.AngleDir += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		cmd.PowerDir += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		cmd.PowerDir -= 1
	}
	if cmd.AngleDir != 0 || cmd.PowerDir != 0 {
		gs.game.Aim(cmd, deltaTime)
	}
}

func (gs *GameState) Draw(screen *ebiten.Image) {
	camX := gs.game.CameraX()

	gs.renderer.Draw(screen, camX)
	gs.game.RenderSystem.Draw(screen, camX)

	gs.windIndicator.Draw(screen, gs.game.Wind())
	gs.leftHealth.Draw(screen, gs.game.HealthOf(config.TeamLeft))
	gs.rightHealth.Draw(screen, gs.game.HealthOf(config.TeamRight))

	if turret, ok := gs.game.ECS.Turrets[gs.game.CurrentTurretID()]; ok {
		gs.powerGauge.Draw(screen, turret.Power, turret.Angle)
	}

	if gs.game.ECS.Round.Phase == component.PhaseAiming {
		label := "RED TO FIRE"
		if gs.game.ECS.Round.CurrentTeam == config.TeamRight {
			label = "BLUE TO FIRE"
		}
		text.Draw(screen, label, gs.fontFace, config.ScreenWidth/2-40, 60, config.TextLightColor)
	}

	if gs.game.IsPaused() {
		gs.drawOverlay(screen, "PAUSED")
	} else if gs.game.IsOver() {
		winner := "RED"
		if gs.game.Winner() == config.TeamRight {
			winner = "BLUE"
		}
		gs.drawOverlay(screen, fmt.Sprintf("%s WINS — R to restart", winner))
	}
}

func (gs *GameState) drawOverlay(screen *ebiten.Image, label string) {
	dim := config.BackgroundColor
	dim.A = 128
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, dim, false)
	textWidth := len(label) * config.TextCharWidth
	text.Draw(screen, label, gs.fontFace, (config.ScreenWidth-textWidth)/2, config.ScreenHeight/2, config.TextLightColor)
}

func (gs *GameState) Exit() {}
