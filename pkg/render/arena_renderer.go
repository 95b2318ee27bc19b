// pkg/render/arena_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/system"
	"go-core-defense/pkg/geometry"
)

// ArenaRenderer draws the whole play field each frame. World coordinates
// are centered on the core; the renderer translates them to screen space
// and applies the current shake offset to everything inside the arena.
type ArenaRenderer struct {
	centerX, centerY float64
}

func NewArenaRenderer(screenWidth, screenHeight int) *ArenaRenderer {
	return &ArenaRenderer{
		centerX: float64(screenWidth) / 2,
		centerY: float64(screenHeight) / 2,
	}
}

// Frame is everything the renderer needs for one frame beyond the ECS.
type Frame struct {
	ShakeOffset    geometry.Vec2
	BloomIntensity float64
	BallColor      color.RGBA
	GameTime       float64
}

func (r *ArenaRenderer) toScreen(world geometry.Vec2, shake geometry.Vec2) (float32, float32) {
	return float32(r.centerX + world.X + shake.X), float32(r.centerY + world.Y + shake.Y)
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, frame Frame) {
	screen.Fill(config.BackgroundColor)

	r.drawArena(screen, ecs, frame)
	r.drawCore(screen, ecs, frame)
	r.drawEnemies(screen, ecs, frame)
	r.drawProjectiles(screen, ecs, frame)
	r.drawPaddle(screen, ecs, frame)
	r.drawBalls(screen, ecs, frame)
	r.drawEffects(screen, ecs, frame)
}

func (r *ArenaRenderer) drawArena(screen *ebiten.Image, ecs *entity.ECS, frame Frame) {
	for id, wall := range ecs.Walls {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		cx, cy := r.toScreen(pos.Vec(), frame.ShakeOffset)
		vector.DrawFilledCircle(screen, cx, cy, float32(wall.Radius), config.ArenaColor, true)
		vector.StrokeCircle(screen, cx, cy, float32(wall.Radius), 4, config.WallStrokeColor, true)
	}
}

func (r *ArenaRenderer) drawCore(screen *ebiten.Image, ecs *entity.ECS, frame Frame) {
	for id, core := range ecs.Cores {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		cx, cy := r.toScreen(pos.Vec(), frame.ShakeOffset)
		vector.DrawFilledCircle(screen, cx, cy, float32(core.Radius), config.CoreColor, true)

		for _, gearID := range core.GearIDs {
			gear, hasGear := ecs.Gears[gearID]
			rend, hasRend := ecs.Renderables[gearID]
			if !hasGear || !hasRend {
				continue
			}
			r.drawGear(screen, cx, cy, gear, rend)
		}
	}
}

// drawGear renders a gear as a ring with spokes; disabled gears shrink
// and turn dim.
func (r *ArenaRenderer) drawGear(screen *ebiten.Image, cx, cy float32, gear *component.Gear, rend *component.Renderable) {
	radius := float32(rend.Radius * gear.Scale)
	clr := rend.Color
	if !gear.Active {
		clr = config.GearDisabledColor
	}
	vector.StrokeCircle(screen, cx, cy, radius, 3, clr, true)

	const spokes = 6
	for i := 0; i < spokes; i++ {
		a := gear.Rotation + float64(i)*2*math.Pi/spokes
		tip := geometry.FromAngle(a).Scale(float64(radius))
		vector.StrokeLine(screen, cx, cy, cx+float32(tip.X), cy+float32(tip.Y), 2, clr, true)
	}
}

func (r *ArenaRenderer) drawEnemies(screen *ebiten.Image, ecs *entity.ECS, frame Frame) {
	for id, enemy := range ecs.Enemies {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		cx, cy := r.toScreen(pos.Vec(), frame.ShakeOffset)
		clr := config.EnemyColor
		if rend, ok := ecs.Renderables[id]; ok {
			clr = rend.Color
		}
		vector.DrawFilledCircle(screen, cx, cy, float32(enemy.Radius), clr, true)
	}
}

func (r *ArenaRenderer) drawProjectiles(screen *ebiten.Image, ecs *entity.ECS, frame Frame) {
	for id, proj := range ecs.Projectiles {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		// narrow quad along the flight direction
		along := geometry.FromAngle(proj.Rotation).Scale(proj.Height / 2)
		cx, cy := r.toScreen(pos.Vec(), frame.ShakeOffset)
		vector.StrokeLine(screen,
			cx-float32(along.X), cy-float32(along.Y),
			cx+float32(along.X), cy+float32(along.Y),
			float32(proj.Width), config.ProjectileColor, true)
	}
}

func (r *ArenaRenderer) drawPaddle(screen *ebiten.Image, ecs *entity.ECS, frame Frame) {
	for id, paddle := range ecs.Paddles {
		// recoil animation after a hit, decays fast
		recoil := 0.0
		if paddle.LastHitTime > 0 {
			recoil = 8 * math.Exp(-10*(frame.GameTime-paddle.LastHitTime))
		}
		inward := geometry.FromAngle(paddle.Rotation).Scale(-recoil)

		half := config.PaddleCollHeight / 2
		a := system.PaddleWorld(paddle, geometry.V(0, -half)).Add(inward)
		b := system.PaddleWorld(paddle, geometry.V(0, half)).Add(inward)
		ax, ay := r.toScreen(a, frame.ShakeOffset)
		bx, by := r.toScreen(b, frame.ShakeOffset)

		clr := config.PaddleColor
		if mode, ok := ecs.PaddleModes[id]; ok && mode.Kind != component.PaddleReflect {
			clr = config.PaddleRailColor
		}
		vector.StrokeLine(screen, ax, ay, bx, by, float32(config.PaddleCollRadius*2), clr, true)
		vector.DrawFilledCircle(screen, ax, ay, float32(config.PaddleCollRadius), clr, true)
		vector.DrawFilledCircle(screen, bx, by, float32(config.PaddleCollRadius), clr, true)
	}
}

func (r *ArenaRenderer) drawBalls(screen *ebiten.Image, ecs *entity.ECS, frame Frame) {
	for id, ball := range ecs.Balls {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		cx, cy := r.toScreen(pos.Vec(), frame.ShakeOffset)

		// cheap bloom: translucent halo scaled by the smoothed intensity
		halo := frame.BallColor
		halo.A = uint8(70 * geometry.Clamp(frame.BloomIntensity, 0, 1))
		vector.DrawFilledCircle(screen, cx, cy, float32(ball.Radius*(1.2+frame.BloomIntensity)), halo, true)
		vector.DrawFilledCircle(screen, cx, cy, float32(ball.Radius), frame.BallColor, true)
	}
}

func (r *ArenaRenderer) drawEffects(screen *ebiten.Image, ecs *entity.ECS, frame Frame) {
	for id, effect := range ecs.Effects {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		t := effect.Age / effect.Lifetime
		if t > 1 {
			t = 1
		}
		cx, cy := r.toScreen(pos.Vec(), frame.ShakeOffset)
		clr := config.EffectColor
		clr.A = uint8(float64(clr.A) * (1 - t))
		radius := float32(effect.Radius * (0.5 + t))
		vector.StrokeCircle(screen, cx, cy, radius, 3, clr, true)
	}
}
