// internal/app/game.go
package app

import (
	"fmt"
	"log"
	"math"

	"go-artillery-duel/internal/component"
	"go-artillery-duel/internal/config"
	"go-artillery-duel/internal/defs"
	"go-artillery-duel/internal/entity"
	"go-artillery-duel/internal/event"
	"go-artillery-duel/internal/system"
	"go-artillery-duel/internal/types"
	"go-artillery-duel/internal/utils"
	"go-artillery-duel/pkg/ballistics"
	"go-artillery-duel/pkg/landscape"
)

// Попыток генерации, прежде чем признать рельеф непригодным: сторона без
// единой площадки не может разместить турель, такой раунд перегенерируется.
const maxGenAttempts = 16

// Game holds the main game state and logic.
type Game struct {
	ECS               *entity.ECS
	ProjectileSystem  *system.ProjectileSystem
	AimSystem         *system.AimSystem
	TurnSystem        *system.TurnSystem
	EnvironmentSystem *system.EnvironmentSystem
	ExplosionSystem   *system.ExplosionSystem
	RenderSystem      *system.RenderSystem
	EventDispatcher   *event.Dispatcher
	Rng               *utils.PRNGService

	// Турели сторон, индекс — config.TeamLeft / config.TeamRight
	TurretIDs [2]types.EntityID

	gameTime float64
	cameraX  float64
	isPaused bool
}

// NewGame initializes a new game instance: генерирует рельеф, ставит
// турели на площадки и связывает системы через диспетчер событий.
func NewGame(rng *utils.PRNGService) (*Game, error) {
	if defs.WeaponLibrary == nil {
		if err := defs.LoadWeaponDefinitions(); err != nil {
			return nil, err
		}
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.AimSystem = system.NewAimSystem(ecs)
	g.EnvironmentSystem = system.NewEnvironmentSystem(ecs, rng, eventDispatcher)
	g.TurnSystem = system.NewTurnSystem(ecs, eventDispatcher, g.EnvironmentSystem)
	g.ExplosionSystem = system.NewExplosionSystem(ecs)
	g.RenderSystem = system.NewRenderSystem(ecs)

	if err := g.setupRound(); err != nil {
		return nil, err
	}
	g.EnvironmentSystem.Reroll()

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.TurretDestroyed, listener)
	eventDispatcher.Subscribe(event.RoundEnded, listener)

	g.cameraX = g.cameraTarget()

	return g, nil
}

// setupRound генерирует ландшафт и размещает по турели на случайной
// площадке каждой стороны. Рельеф, оставивший одну из третей без
// площадок, отбрасывается.
func (g *Game) setupRound() error {
	third := config.TerrainPoints / 3

	for attempt := 0; attempt < maxGenAttempts; attempt++ {
		land, err := landscape.Generate(config.WorldWidth, config.BaseElevation, config.TerrainPoints, g.Rng)
		if err != nil {
			return err
		}

		leftBases := land.BasesInBand(0, third)
		rightBases := land.BasesInBand(2*third, config.TerrainPoints)
		if len(leftBases) == 0 || len(rightBases) == 0 {
			continue
		}

		round := g.ECS.Round
		round.Landscape = land
		round.Surface = landscape.NewSurface(land, config.BaseElevation)
		round.CurrentTeam = config.TeamLeft
		round.Phase = component.PhaseAiming

		g.TurretIDs[config.TeamLeft] = g.createTurretEntity(config.TeamLeft, leftBases[g.Rng.Intn(len(leftBases))])
		g.TurretIDs[config.TeamRight] = g.createTurretEntity(config.TeamRight, rightBases[g.Rng.Intn(len(rightBases))])

		return nil
	}

	return fmt.Errorf("landscape generation: no usable flat bases on both sides after %d attempts", maxGenAttempts)
}

func (g *Game) createTurretEntity(team, baseIndex int) types.EntityID {
	land := g.ECS.Round.Landscape
	base := land.FlatBases[baseIndex]
	cx, cy := land.BaseCenter(base)

	angle := -math.Pi / 4 // левая турель смотрит вправо-вверх
	if team == config.TeamRight {
		angle = -3 * math.Pi / 4
	}

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: cx, Y: cy - config.TurretRadius}
	g.ECS.Turrets[id] = &component.Turret{
		Team:      team,
		Angle:     angle,
		Power:     config.DefaultAimPower,
		BaseIndex: baseIndex,
		WeaponID:  defs.DefaultWeaponID,
	}
	g.ECS.Healths[id] = &component.Health{Value: config.TurretHealth}
	return id
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.TurretDestroyed:
		log.Printf("turret %v destroyed", e.Data)
	case event.RoundEnded:
		log.Printf("round over, team %v wins", e.Data)
	}
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused {
		return
	}

	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.ExplosionSystem.Update(deltaTime)
	if g.ECS.Round.Phase == component.PhaseFlight {
		g.ProjectileSystem.Update(deltaTime)
		// Все снаряды завершили жизнь, но ход ещё не перешёл —
		// страховка от потерянного состояния полёта
		if len(g.ECS.Projectiles) == 0 && g.ECS.Round.Phase == component.PhaseFlight {
			g.ECS.Round.Phase = component.PhaseAiming
		}
	}

	g.updateCamera(deltaTime)
}

// Aim передаёт команду прицеливания турели активного игрока.
func (g *Game) Aim(cmd system.AimCommand, deltaTime float64) {
	if g.ECS.Round.Phase != component.PhaseAiming {
		return
	}
	g.AimSystem.Apply(g.CurrentTurretID(), cmd, deltaTime)
}

// Fire производит выстрел турели активного игрока. Во время полёта
// чужого снаряда и после конца раунда выстрел игнорируется.
func (g *Game) Fire() {
	round := g.ECS.Round
	if round.Phase != component.PhaseAiming {
		return
	}

	turretID := g.CurrentTurretID()
	turret := g.ECS.Turrets[turretID]
	if turret == nil {
		return
	}
	weapon, ok := defs.WeaponLibrary[turret.WeaponID]
	if !ok {
		log.Printf("turret %d has unknown weapon %q", turretID, turret.WeaponID)
		return
	}

	tipX, tipY := g.AimSystem.BarrelTip(turretID)
	shot := ballistics.Launch(tipX, tipY, turret.Angle, turret.Power, weapon.BaseSpeed, weapon.MaxSpeed)

	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: shot.X, Y: shot.Y}
	g.ECS.Velocities[id] = &component.Velocity{X: shot.VX, Y: shot.VY}
	g.ECS.Projectiles[id] = &component.Projectile{
		WeaponID:      turret.WeaponID,
		OwnerID:       turretID,
		FiredAt:       g.gameTime,
		MaxFlightTime: weapon.FlightTime,
	}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.ProjectileColor, Radius: 4}
	g.ECS.Trails[id] = &component.Trail{Max: config.TrailMaxPoints}

	round.Phase = component.PhaseFlight
	g.EventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: id})
}

// --- Камера ---

// cameraTarget возвращает точку интереса: снаряд в полёте, иначе турель
// активного игрока.
func (g *Game) cameraTarget() float64 {
	if g.ECS.Round.Phase == component.PhaseFlight {
		for _, id := range g.ECS.SortedProjectileIDs() {
			if pos := g.ECS.Positions[id]; pos != nil {
				return pos.X
			}
		}
	}
	if pos := g.ECS.Positions[g.CurrentTurretID()]; pos != nil {
		return pos.X
	}
	return config.WorldWidth / 2
}

func (g *Game) updateCamera(deltaTime float64) {
	target := utils.Clamp(g.cameraTarget()-config.ScreenWidth/2, 0, config.WorldWidth-config.ScreenWidth)
	t := deltaTime * 5
	if t > 1 {
		t = 1
	}
	g.cameraX = utils.Lerp(g.cameraX, target, t)
}

// --- Public Accessors & Mutators ---

func (g *Game) CameraX() float64 {
	return g.cameraX
}

func (g *Game) CurrentTurretID() types.EntityID {
	return g.TurretIDs[g.ECS.Round.CurrentTeam]
}

// HealthOf возвращает текущее здоровье турели стороны team.
func (g *Game) HealthOf(team int) int {
	if health, ok := g.ECS.Healths[g.TurretIDs[team]]; ok {
		return health.Value
	}
	return 0
}

func (g *Game) Wind() float64 {
	return g.ECS.Round.WindAccelX
}

func (g *Game) IsOver() bool {
	return g.ECS.Round.Phase == component.PhaseGameOver
}

func (g *Game) Winner() int {
	return g.ECS.Round.Winner
}

func (g *Game) TogglePause() {
	g.isPaused = !g.isPaused
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}
