// pkg/render/terrain_renderer.go
package render

import (
	"image/color"
	"math"

	"go-artillery-duel/pkg/landscape"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TerrainRenderer отрисовывает статичный рельеф раунда. Ландшафт
// неизменен весь раунд, поэтому рендерится в кэшированное изображение
// один раз, а дальше рисуется одним вызовом DrawImage со сдвигом камеры.
type TerrainRenderer struct {
	land        *landscape.Landscape
	worldWidth  int
	worldHeight int
	colors      *TerrainColors

	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	terrainImage *ebiten.Image
}

func NewTerrainRenderer(land *landscape.Landscape, worldWidth, worldHeight int, colors *TerrainColors) *TerrainRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	r := &TerrainRenderer{
		land:         land,
		worldWidth:   worldWidth,
		worldHeight:  worldHeight,
		colors:       colors,
		fillImg:      fillImg,
		fillVs:       make([]ebiten.Vertex, 0, 256),
		fillIs:       make([]uint16, 0, 256),
		terrainImage: ebiten.NewImage(worldWidth, worldHeight),
	}

	// Отрисовываем рельеф один раз при инициализации
	r.RenderTerrainImage()

	return r
}

// RenderTerrainImage создаёт предрендеренное изображение задника:
// небо, заливка грунта под ломаной поверхности, кромка и площадки.
func (r *TerrainRenderer) RenderTerrainImage() {
	r.drawSky()

	pts := r.land.Points
	if len(pts) < 2 {
		return
	}

	// Полигон грунта: ломаная поверхности, замкнутая через нижние углы мира
	path := vector.Path{}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.LineTo(float32(r.worldWidth), float32(r.worldHeight))
	path.LineTo(0, float32(r.worldHeight))
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(r.colors.Ground.R) / 255
		r.fillVs[i].ColorG = float32(r.colors.Ground.G) / 255
		r.fillVs[i].ColorB = float32(r.colors.Ground.B) / 255
		r.fillVs[i].ColorA = float32(r.colors.Ground.A) / 255
	}
	r.terrainImage.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	// Кромка поверхности
	for i := 0; i+1 < len(pts); i++ {
		vector.StrokeLine(r.terrainImage,
			float32(pts[i].X), float32(pts[i].Y),
			float32(pts[i+1].X), float32(pts[i+1].Y),
			2.0, r.colors.Edge, true)
	}

	// Площадки рисуем поверх кромки потолще, с тёмной подложкой
	for _, base := range r.land.FlatBases {
		start := pts[base.StartIndex]
		end := pts[base.EndIndex]
		vector.StrokeLine(r.terrainImage,
			float32(start.X), float32(start.Y+2),
			float32(end.X), float32(end.Y+2),
			4.0, DarkenColor(r.colors.FlatBase), true)
		vector.StrokeLine(r.terrainImage,
			float32(start.X), float32(start.Y),
			float32(end.X), float32(end.Y),
			3.0, r.colors.FlatBase, true)
	}
}

// drawSky заливает задник вертикальным градиентом от SkyTop к Sky.
func (r *TerrainRenderer) drawSky() {
	w := float32(r.worldWidth)
	h := float32(r.worldHeight)
	top := r.colors.SkyTop
	bottom := r.colors.Sky

	vs := []ebiten.Vertex{
		{DstX: 0, DstY: 0},
		{DstX: w, DstY: 0},
		{DstX: w, DstY: h},
		{DstX: 0, DstY: h},
	}
	for i := range vs {
		c := bottom
		if i < 2 {
			c = top
		}
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	r.terrainImage.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, r.fillImg, nil)
}

// Image возвращает предрендеренное изображение рельефа целиком.
func (r *TerrainRenderer) Image() *ebiten.Image {
	return r.terrainImage
}

// Draw рисует предрендеренный рельеф со сдвигом камеры camX.
func (r *TerrainRenderer) Draw(screen *ebiten.Image, camX float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-math.Floor(camX), 0)
	screen.DrawImage(r.terrainImage, op)
}
