// cmd/terrain_viewer/main.go
//
// Просмотрщик генератора рельефа: G — новый ландшафт, цифры 1..9 — сид.
// Полезен для подбора параметров генерации без запуска полной игры.
package main

import (
	"fmt"
	"log"

	"go-artillery-duel/internal/config"
	"go-artillery-duel/internal/utils"
	"go-artillery-duel/pkg/landscape"
	"go-artillery-duel/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const viewerScale = 0.4 // весь мир целиком в окне

type ViewerApp struct {
	land     *landscape.Landscape
	renderer *render.TerrainRenderer
	seed     int64
}

func (a *ViewerApp) regenerate() {
	land, err := landscape.Generate(config.WorldWidth, config.BaseElevation, config.TerrainPoints, utils.NewPRNGService(a.seed))
	if err != nil {
		log.Fatal(err)
	}
	a.land = land
	a.renderer = render.NewTerrainRenderer(land, int(config.WorldWidth), int(config.WorldHeight), &render.TerrainColors{
		Sky:      config.BackgroundColor,
		SkyTop:   config.SkyTopColor,
		Ground:   config.TerrainColor,
		Edge:     config.TerrainEdge,
		FlatBase: config.FlatBaseColor,
	})
}

func (a *ViewerApp) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		a.seed = 0
		a.regenerate()
	}
	for d := 0; d < 9; d++ {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(d)) {
			a.seed = int64(d + 1)
			a.regenerate()
		}
	}
	return nil
}

func (a *ViewerApp) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(viewerScale, viewerScale)
	screen.DrawImage(a.renderer.Image(), op)

	info := fmt.Sprintf("seed %d  bases %d  G — regenerate, 1..9 — fixed seed", a.seed, len(a.land.FlatBases))
	ebitenutil.DebugPrint(screen, info)
}

func (a *ViewerApp) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(config.WorldWidth * viewerScale), int(config.WorldHeight * viewerScale)
}

func main() {
	app := &ViewerApp{}
	app.regenerate()
	ebiten.SetWindowSize(int(config.WorldWidth*viewerScale), int(config.WorldHeight*viewerScale))
	ebiten.SetWindowTitle("Terrain Viewer")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
