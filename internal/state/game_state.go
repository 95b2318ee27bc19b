// internal/state/game_state.go
package state

import (
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-core-defense/internal/app"
	"go-core-defense/internal/audio"
	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/event"
	"go-core-defense/internal/telemetry"
	"go-core-defense/internal/ui"
	"go-core-defense/pkg/render"
)

// TelemetryAddr — адрес websocket-телеметрии; пустая строка отключает её
var TelemetryAddr = "localhost:7077"

// GameState — основной игровой экран
type GameState struct {
	sm        *StateMachine
	game      *game.Game
	renderer  *render.ArenaRenderer
	ammoRing  *ui.AmmoIndicator
	healthBar *ui.CoreHealthIndicator
	infoPanel *ui.InfoPanel
	sound     *audio.SoundManager
	telemetry *telemetry.Server
	ticks     int
}

func NewGameState(sm *StateMachine) *GameState {
	gameLogic := game.NewGame(time.Now().UnixNano())

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Println("audio:", err)
		sound.Disable()
	}
	gameLogic.EventDispatcher.Subscribe(event.BallReflected, sound)
	gameLogic.EventDispatcher.Subscribe(event.EnemyDestroyed, sound)
	gameLogic.EventDispatcher.Subscribe(event.CoreDamaged, sound)
	gameLogic.EventDispatcher.Subscribe(event.GameOver, sound)

	tele := telemetry.NewServer()
	tele.Start(TelemetryAddr)

	return &GameState{
		sm:        sm,
		game:      gameLogic,
		renderer:  render.NewArenaRenderer(config.ScreenWidth, config.ScreenHeight),
		ammoRing:  ui.NewAmmoIndicator(80, 80, 48),
		healthBar: ui.NewCoreHealthIndicator(40, 170),
		infoPanel: ui.NewInfoPanel(28, 220),
		sound:     sound,
		telemetry: tele,
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	input := g.readInput()
	g.game.Update(deltaTime, input)

	g.ticks++
	if g.ticks%config.TelemetryEveryTicks == 0 {
		g.telemetry.Broadcast(g.snapshot())
	}

	if g.game.Over() {
		g.sm.SetState(NewGameOverState(g.sm))
	}
}

// readInput переводит мышь в срез ввода: курсор задаёт направление
// ракетки от центра арены, левая кнопка стреляет, правая
// переключает режим захвата
func (g *GameState) readInput() game.Input {
	x, y := ebiten.CursorPosition()
	dx := float64(x) - float64(config.ScreenWidth)/2
	dy := float64(y) - float64(config.ScreenHeight)/2

	return game.Input{
		PointerBearing: math.Atan2(dy, dx),
		Fire:           ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ToggleCapture:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
	}
}

func (g *GameState) snapshot() telemetry.Snapshot {
	ecs := g.game.ECS
	maxSpeed := 0.0
	for id := range ecs.Balls {
		if vel, ok := ecs.Velocities[id]; ok && vel.Speed > maxSpeed {
			maxSpeed = vel.Speed
		}
	}
	ammo := 0
	if a, ok := ecs.PaddleAmmos[g.game.PaddleID]; ok {
		ammo = a.Ammo()
	}
	return telemetry.Snapshot{
		GameTime:    g.game.GameTime(),
		BallCount:   len(ecs.Balls),
		MaxSpeed:    maxSpeed,
		SpeedFactor: g.game.SpeedFactorSystem.Factor(),
		EnemyCount:  len(ecs.Enemies),
		Ammo:        ammo,
		CoreHealth:  g.game.CoreHealth(),
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	frame := render.Frame{
		ShakeOffset:    g.game.ShakeSystem.Offset(),
		BloomIntensity: g.game.SpeedFactorSystem.BloomIntensity(),
		BallColor:      g.game.SpeedFactorSystem.BallColor(),
		GameTime:       g.game.GameTime(),
	}
	g.renderer.Draw(screen, g.game.ECS, frame)
	g.ammoRing.Draw(screen, g.game.AmmoFraction())
	g.healthBar.Draw(screen, g.game.CoreHealth(), config.CoreHealth)

	ecs := g.game.ECS
	ammo := 0
	if a, ok := ecs.PaddleAmmos[g.game.PaddleID]; ok {
		ammo = a.Ammo()
	}
	capture := false
	if mode, ok := ecs.PaddleModes[g.game.PaddleID]; ok {
		capture = mode.Kind != component.PaddleReflect
	}
	g.infoPanel.Draw(screen, ui.PanelStats{
		GameTime:    g.game.GameTime(),
		EnemyCount:  len(ecs.Enemies),
		Ammo:        ammo,
		SpeedFactor: g.game.SpeedFactorSystem.Factor(),
		CaptureMode: capture,
	})
}

func (g *GameState) Exit() {
	g.telemetry.Close()
	g.sound.Cleanup()
}
