package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/types"
	"go-core-defense/pkg/geometry"
)

func newGunWorld() (*entity.ECS, *GunSystem, *ShakeSystem, *recorder, types.EntityID) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.Subscribe(event.EnemyDestroyed, rec)
	dispatcher.Subscribe(event.BallReflected, rec)
	shake := NewShakeSystem(1)

	paddleID := addArmedPaddle(ecs)
	return ecs, NewGunSystem(ecs, dispatcher, shake), shake, rec, paddleID
}

func addArmedPaddle(ecs *entity.ECS) types.EntityID {
	id := ecs.NewEntity()
	ammo := component.NewPaddleAmmo(config.AmmoCapacity)
	ammo.Offset(10)
	ecs.Paddles[id] = &component.Paddle{OrbitRadius: config.PaddleRadius}
	ecs.PaddleModes[id] = &component.PaddleMode{Kind: component.PaddleReflect}
	ecs.PaddleAmmos[id] = &ammo
	return id
}

func TestFireSpendsAmmoAndSpawnsProjectile(t *testing.T) {
	ecs, gs, _, _, paddleID := newGunWorld()

	gs.Update(0.016, GunInput{Fire: true})

	assert.Equal(t, 9, ecs.PaddleAmmos[paddleID].Ammo())
	assert.Equal(t, 1, len(ecs.Projectiles))
	assert.True(t, CooldownActive(ecs, paddleID, component.CooldownFire))

	for id := range ecs.Projectiles {
		pos := ecs.Positions[id]
		assert.InDelta(t, config.PaddleRadius+config.BarrelOffset, pos.X, 1e-9, "projectile starts at the barrel")
		vel := ecs.Velocities[id]
		assert.Equal(t, config.ProjectileSpeed, vel.Speed)
	}
}

func TestFireBlockedByCooldown(t *testing.T) {
	ecs, gs, _, _, paddleID := newGunWorld()

	gs.Update(0.016, GunInput{Fire: true})
	ecs.GameTime += 0.016
	gs.Update(0.016, GunInput{Fire: true})

	assert.Equal(t, 9, ecs.PaddleAmmos[paddleID].Ammo(), "second shot is inside the fire cooldown")
	assert.Equal(t, 1, len(ecs.Projectiles))
}

func TestEmptyMagazineShakesOncePerSecond(t *testing.T) {
	ecs, gs, shake, _, paddleID := newGunWorld()
	ecs.PaddleAmmos[paddleID].Offset(-10)

	gs.Update(0.016, GunInput{Fire: true})

	assert.Equal(t, 0, len(ecs.Projectiles))
	assert.InDelta(t, config.NoAmmoTrauma, shake.Trauma(), 1e-9)
	assert.True(t, CooldownActive(ecs, paddleID, component.CooldownNoAmmoShake))
	assert.False(t, CooldownActive(ecs, paddleID, component.CooldownFire),
		"an empty click does not block firing once ammo returns")

	// повторный щелчок внутри секунды не трясёт экран вторично
	ecs.GameTime += 0.1
	gs.Update(0.016, GunInput{Fire: true})

	assert.InDelta(t, config.NoAmmoTrauma, shake.Trauma(), 1e-9)
}

func TestFirePossibleRightAfterAmmoReturns(t *testing.T) {
	ecs, gs, _, _, paddleID := newGunWorld()
	ecs.PaddleAmmos[paddleID].Offset(-10)

	gs.Update(0.016, GunInput{Fire: true}) // холостой щелчок

	ecs.PaddleAmmos[paddleID].Offset(3)
	ecs.GameTime += 0.016
	gs.Update(0.016, GunInput{Fire: true})

	assert.Equal(t, 1, len(ecs.Projectiles), "a shot goes out the moment ammo is regained")
	assert.Equal(t, 2, ecs.PaddleAmmos[paddleID].Ammo())
}

func TestToggleCaptureMode(t *testing.T) {
	ecs, gs, _, _, paddleID := newGunWorld()

	gs.Update(0.016, GunInput{ToggleCapture: true})
	assert.Equal(t, component.PaddleCapture, ecs.PaddleModes[paddleID].Kind)

	gs.Update(0.016, GunInput{ToggleCapture: true})
	assert.Equal(t, component.PaddleReflect, ecs.PaddleModes[paddleID].Kind)
}

func TestFireReleasesCapturedBall(t *testing.T) {
	ecs, gs, _, rec, paddleID := newGunWorld()

	ballID := ecs.NewEntity()
	ecs.Positions[ballID] = &component.Position{X: config.PaddleRadius}
	ecs.Velocities[ballID] = &component.Velocity{Dir: geometry.V(1, 0), Speed: config.BallBaseSpeed}
	ecs.Balls[ballID] = &component.Ball{Radius: config.BallBaseRadius}
	ecs.Parents[ballID] = &component.Parent{ID: paddleID}

	mode := ecs.PaddleModes[paddleID]
	mode.Kind = component.PaddleCaptured
	mode.BallID = ballID
	mode.ShootRotation = 0

	gs.Update(0.016, GunInput{Fire: true})

	assert.NotContains(t, ecs.Parents, ballID, "released ball detaches from the paddle")
	assert.Equal(t, component.PaddleReflect, mode.Kind)

	vel := ecs.Velocities[ballID]
	assert.InDelta(t, -1, vel.Dir.X, 1e-9, "ball launches inward from the paddle")
	assert.InDelta(t, config.BallBaseSpeed*config.PaddleSpeedMult, vel.Speed, 1e-9)
	assert.Equal(t, 0, len(ecs.Projectiles), "releasing the ball is not a gunshot")
	assert.Equal(t, 1, rec.count(event.BallReflected))
	assert.Equal(t, 10, ecs.PaddleAmmos[paddleID].Ammo(), "no ammo is spent")
}

func TestProjectileDestroysEnemy(t *testing.T) {
	ecs, gs, _, rec, _ := newGunWorld()

	projID := ecs.NewEntity()
	ecs.Positions[projID] = &component.Position{X: 300}
	ecs.Velocities[projID] = &component.Velocity{Dir: geometry.V(1, 0), Speed: config.ProjectileSpeed}
	ecs.Projectiles[projID] = &component.Projectile{Width: config.ProjectileWidth, Height: config.ProjectileHeight}
	enemyID := addEnemy(ecs, 330, 0)

	gs.Update(0.016, GunInput{})

	assert.True(t, ecs.Removed(enemyID))
	assert.True(t, ecs.Removed(projID), "projectile is spent on impact")
	assert.Equal(t, 1, rec.count(event.EnemyDestroyed))
}

func TestProjectileDespawnsOutOfBounds(t *testing.T) {
	ecs, gs, _, _, _ := newGunWorld()

	projID := ecs.NewEntity()
	bound := config.GameSize/2 + config.OutOfBoundsMargin
	ecs.Positions[projID] = &component.Position{X: bound + 10}
	ecs.Velocities[projID] = &component.Velocity{Dir: geometry.V(1, 0), Speed: config.ProjectileSpeed}
	ecs.Projectiles[projID] = &component.Projectile{Width: config.ProjectileWidth, Height: config.ProjectileHeight}

	gs.Update(0.016, GunInput{})

	require.True(t, ecs.Removed(projID))
}
