// cmd/arena_viewer_raylib/main.go
//
// Отладочный просмотрщик коллайдеров: гоняет ту же симуляцию, что и игра,
// но рисует голую геометрию — капсулу ракетки, радиусы свипов, границу
// зоны ядра и окно переприцеливания.
package main

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	game "go-core-defense/internal/app"
	"go-core-defense/internal/config"
	"go-core-defense/internal/system"
	"go-core-defense/pkg/geometry"
)

var (
	colliderColor = rl.NewColor(56, 189, 248, 255)
	zoneColor     = rl.NewColor(250, 204, 21, 160)
	windowColor   = rl.NewColor(148, 163, 184, 120)
	enemyColor    = rl.NewColor(167, 139, 250, 255)
	ballColor     = rl.NewColor(248, 113, 113, 255)
)

func toScreen(v geometry.Vec2) rl.Vector2 {
	return rl.NewVector2(
		float32(v.X+config.ScreenWidth/2),
		float32(v.Y+config.ScreenHeight/2),
	)
}

func main() {
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "core defense — collider view")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	g := game.NewGame(time.Now().UnixNano())

	for !rl.WindowShouldClose() {
		dt := float64(rl.GetFrameTime())
		if dt > config.MaxDeltaTime {
			dt = config.MaxDeltaTime
		}

		mouse := rl.GetMousePosition()
		bearing := math.Atan2(
			float64(mouse.Y)-config.ScreenHeight/2,
			float64(mouse.X)-config.ScreenWidth/2,
		)
		g.Update(dt, game.Input{
			PointerBearing: bearing,
			Fire:           rl.IsMouseButtonDown(rl.MouseLeftButton),
			ToggleCapture:  rl.IsMouseButtonPressed(rl.MouseRightButton),
		})

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(16, 18, 28, 255))
		drawColliders(g)
		rl.EndDrawing()
	}
}

func drawColliders(g *game.Game) {
	center := toScreen(geometry.Vec2{})
	cx, cy := int32(center.X), int32(center.Y)

	// арена, зона ядра, окно переприцеливания
	rl.DrawCircleLines(cx, cy, float32(config.ArenaRadius), colliderColor)
	rl.DrawCircleLines(cx, cy, float32(config.PaddleRadius*config.InsideCoreFactor), zoneColor)
	half := int32(config.GameSize/2 - config.SeekWindowMargin)
	rl.DrawRectangleLines(cx-half, cy-half, half*2, half*2, windowColor)

	rl.DrawCircleLines(cx, cy, float32(config.CoreRadius), colliderColor)

	for _, paddle := range g.ECS.Paddles {
		a := system.PaddleWorld(paddle, geometry.V(0, -config.PaddleCollHeight/2))
		b := system.PaddleWorld(paddle, geometry.V(0, config.PaddleCollHeight/2))
		rl.DrawLineEx(toScreen(a), toScreen(b), float32(config.PaddleCollRadius*2), colliderColor)
	}

	for id, ball := range g.ECS.Balls {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		at := toScreen(pos.Vec())
		rl.DrawCircleLines(int32(at.X), int32(at.Y), float32(ball.Radius), ballColor)
		if vel, ok := g.ECS.Velocities[id]; ok {
			tip := pos.Vec().Add(vel.Dir.Scale(ball.Radius + vel.Speed*0.1))
			rl.DrawLineV(at, toScreen(tip), ballColor)
		}
	}

	for id, enemy := range g.ECS.Enemies {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		at := toScreen(pos.Vec())
		rl.DrawCircleLines(int32(at.X), int32(at.Y), float32(enemy.Radius), enemyColor)
	}

	for id := range g.ECS.Projectiles {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		at := toScreen(pos.Vec())
		rl.DrawCircleV(at, 3, rl.Yellow)
	}
}
