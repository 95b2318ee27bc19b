// internal/app/game.go
package app

import (
	"math"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/system"
	"go-core-defense/internal/types"
	"go-core-defense/pkg/geometry"
)

// Input — срез ввода игрока за один тик
type Input struct {
	PointerBearing float64 // направление от ядра к указателю, радианы
	Fire           bool
	ToggleCapture  bool
}

// Game держит мир и все системы; Update прогоняет один тик симуляции
type Game struct {
	ECS               *entity.ECS
	EventDispatcher   *event.Dispatcher
	MovementSystem    *system.MovementSystem
	RotationSystem    *system.RotationSystem
	ZoneSystem        *system.ZoneSystem
	CollisionSystem   *system.CollisionSystem
	TargetingSystem   *system.TargetingSystem
	HomingSystem      *system.HomingSystem
	GunSystem         *system.GunSystem
	SpawnerSystem     *system.SpawnerSystem
	CoreSystem        *system.CoreSystem
	EffectSystem      *system.EffectSystem
	CooldownSystem    *system.CooldownSystem
	SpeedFactorSystem *system.SpeedFactorSystem
	ShakeSystem       *system.ShakeSystem

	PaddleID types.EntityID
	CoreID   types.EntityID

	gameTime float64
	over     bool
}

// NewGame собирает мир: арену, ядро с шестерёнками, ракетку
// и первый мяч, уже пойманный ракеткой.
func NewGame(seed int64) *Game {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	shake := system.NewShakeSystem(seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		MovementSystem:  system.NewMovementSystem(ecs),
		RotationSystem:  system.NewRotationSystem(ecs, dispatcher),
		ZoneSystem:      system.NewZoneSystem(ecs),
		TargetingSystem: system.NewTargetingSystem(ecs),
		HomingSystem:    system.NewHomingSystem(ecs),
		SpawnerSystem:   system.NewSpawnerSystem(ecs, seed),
		EffectSystem:    system.NewEffectSystem(ecs),
		CooldownSystem:  system.NewCooldownSystem(ecs),
		ShakeSystem:     shake,
	}
	g.CollisionSystem = system.NewCollisionSystem(ecs, dispatcher, shake)
	g.GunSystem = system.NewGunSystem(ecs, dispatcher, shake)
	g.CoreSystem = system.NewCoreSystem(ecs, dispatcher, shake)
	g.SpeedFactorSystem = system.NewSpeedFactorSystem(ecs, shake)

	g.spawnLevel()
	g.spawnPaddle()
	g.spawnBallCaptured()

	listener := &GameEventListener{game: g}
	dispatcher.Subscribe(event.BallReloadRequested, listener)
	dispatcher.Subscribe(event.GameOver, listener)

	return g
}

func (g *Game) Update(deltaTime float64, input Input) {
	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	g.RotationSystem.Update(input.PointerBearing, deltaTime)
	g.ZoneSystem.Update(deltaTime)
	g.CollisionSystem.Update(deltaTime)
	g.TargetingSystem.Update(deltaTime)
	g.HomingSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)

	g.GunSystem.Update(deltaTime, system.GunInput{
		Fire:          input.Fire,
		ToggleCapture: input.ToggleCapture,
	})
	g.SpawnerSystem.Update(deltaTime)
	g.CoreSystem.Update(deltaTime)

	g.EffectSystem.Update(deltaTime)
	g.SpeedFactorSystem.Update(deltaTime)
	g.ShakeSystem.Update(deltaTime)
	g.CooldownSystem.Update(deltaTime)

	g.ECS.ApplyRemovals()
}

func (g *Game) GameTime() float64 {
	return g.gameTime
}

// Over сообщает, что здоровье ядра исчерпано
func (g *Game) Over() bool {
	return g.over
}

// AmmoFraction — доля заполнения боезапаса [0, 1] для индикатора
func (g *Game) AmmoFraction() float64 {
	if ammo, ok := g.ECS.PaddleAmmos[g.PaddleID]; ok {
		return ammo.Factor()
	}
	return 0
}

// CoreHealth возвращает текущее здоровье ядра
func (g *Game) CoreHealth() int {
	if health, ok := g.ECS.Healths[g.CoreID]; ok {
		return health.Value
	}
	return 0
}

// --- Сборка стартовых сущностей ---

func (g *Game) spawnLevel() {
	ecs := g.ECS

	wallID := ecs.NewEntity()
	ecs.Positions[wallID] = &component.Position{}
	ecs.Walls[wallID] = &component.Wall{Radius: config.ArenaRadius}

	// шестерёнки разного размера и направления, визуально сцепленные
	gearIDs := make([]types.EntityID, 0, config.GearCount)
	for i := 0; i < config.GearCount; i++ {
		gearID := ecs.NewEntity()
		ecs.Gears[gearID] = &component.Gear{
			Active:     true,
			Offset:     float64(i) * math.Pi / float64(config.GearCount),
			Multiplier: 1.0 + 0.5*float64(i),
			Invert:     i%2 == 1,
			Scale:      1.0,
		}
		ecs.Renderables[gearID] = &component.Renderable{
			Kind:   component.RenderGear,
			Radius: config.CoreRadius * (0.9 - 0.15*float64(i)),
			Color:  config.GearActiveColor,
		}
		gearIDs = append(gearIDs, gearID)
	}

	coreID := ecs.NewEntity()
	ecs.Positions[coreID] = &component.Position{}
	ecs.Cores[coreID] = &component.Core{GearIDs: gearIDs, Radius: config.CoreRadius}
	ecs.Healths[coreID] = &component.Health{Value: config.CoreHealth}
	g.CoreID = coreID
}

func (g *Game) spawnPaddle() {
	ecs := g.ECS
	id := ecs.NewEntity()

	paddle := &component.Paddle{OrbitRadius: config.PaddleRadius}
	ammo := component.NewPaddleAmmo(config.AmmoCapacity)

	at := system.PaddleWorld(paddle, geometry.Vec2{})
	ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	ecs.Paddles[id] = paddle
	ecs.PaddleModes[id] = &component.PaddleMode{Kind: component.PaddleReflect}
	ecs.PaddleAmmos[id] = &ammo
	ecs.PaddleRots[id] = &component.PaddleRotation{}
	ecs.AccumRots[id] = &component.AccumulatedRotation{}
	g.PaddleID = id
}

// spawnBallCaptured создаёт мяч, уже удерживаемый ракеткой
func (g *Game) spawnBallCaptured() {
	ecs := g.ECS
	paddle, ok := ecs.Paddles[g.PaddleID]
	if !ok {
		return
	}
	mode, ok := ecs.PaddleModes[g.PaddleID]
	if !ok || mode.Kind == component.PaddleCaptured {
		return
	}

	// в игре живёт только один мяч: прежний гаснет при перезарядке
	for oldID := range ecs.Balls {
		if !ecs.Removed(oldID) {
			ecs.QueueRemove(oldID)
		}
	}

	id := ecs.NewEntity()
	offset := geometry.V(-1.1*config.BallBaseRadius, 0)
	at := system.PaddleWorld(paddle, offset)
	ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	ecs.Velocities[id] = &component.Velocity{
		Dir:   geometry.FromAngle(paddle.Rotation).Scale(-1),
		Speed: config.BallBaseSpeed,
	}
	ecs.Balls[id] = &component.Ball{
		Radius:             config.BallBaseRadius,
		LastReflectionTime: ecs.GameTime - config.PaddleDebounce,
	}
	ecs.Parents[id] = &component.Parent{ID: g.PaddleID, LocalOffset: offset}
	ecs.Renderables[id] = &component.Renderable{
		Kind:   component.RenderCircle,
		Radius: config.BallBaseRadius,
		Color:  config.BallColorSlow,
	}

	mode.Kind = component.PaddleCaptured
	mode.BallID = id
	mode.ShootRotation = 0
}

// GameEventListener обрабатывает события, важные для основного цикла
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.BallReloadRequested:
		l.game.spawnBallCaptured()
	case event.GameOver:
		l.game.over = true
	}
}
