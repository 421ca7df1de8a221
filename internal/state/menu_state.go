// internal/state/menu_state.go
package state

import (
	"go-artillery-duel/internal/assets"
	"go-artillery-duel/internal/config"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState — стартовый экран
type MenuState struct {
	sm        *StateMachine
	titleFace font.Face
	face      font.Face
}

func NewMenuState(sm *StateMachine) *MenuState {
	titleFace, err := assets.LoadFontFace(28)
	if err != nil {
		log.Fatal(err)
	}
	face, err := assets.LoadFontFace(14)
	if err != nil {
		log.Fatal(err)
	}
	return &MenuState{sm: sm, titleFace: titleFace, face: face}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	text.Draw(screen, "ARTILLERY DUEL", m.titleFace, config.ScreenWidth/2-120, config.ScreenHeight/2-40, config.TextLightColor)
	text.Draw(screen, "SPACE — start round", m.face, config.ScreenWidth/2-70, config.ScreenHeight/2, config.TextLightColor)
	text.Draw(screen, "Arrows — aim, hold LMB — point aim, SPACE — fire, P — pause", m.face, config.ScreenWidth/2-200, config.ScreenHeight/2+24, config.TextLightColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
