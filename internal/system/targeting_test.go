package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/types"
	"go-core-defense/pkg/geometry"
)

func addEnemy(ecs *entity.ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Enemies[id] = &component.Enemy{Radius: config.EnemyRadius}
	return id
}

func TestRetargetTowardEnemy(t *testing.T) {
	ecs := entity.NewECS()
	ts := NewTargetingSystem(ecs)
	ballID := addBall(ecs, 0, 0, geometry.V(1, 0), config.BallBaseSpeed)
	addEnemy(ecs, 300, 50)
	ecs.SeekTargets[ballID] = struct{}{}

	ts.Update(0.016)

	want := geometry.V(300, 50).Normalize()
	vel := ecs.Velocities[ballID]
	assert.InDelta(t, want.X, vel.Dir.X, 1e-9, "ball re-aims at the enemy")
	assert.InDelta(t, want.Y, vel.Dir.Y, 1e-9)
	assert.NotContains(t, ecs.SeekTargets, ballID, "mark is consumed")
}

func TestRetargetSkipsEnemyOutsideWindow(t *testing.T) {
	ecs := entity.NewECS()
	ts := NewTargetingSystem(ecs)
	ballID := addBall(ecs, 200, 0, geometry.V(1, 0), config.BallBaseSpeed)
	// внутри свипа, но за оконной границей поля
	addEnemy(ecs, config.GameSize/2-config.SeekWindowMargin+10, 0)
	ecs.SeekTargets[ballID] = struct{}{}

	ts.Update(0.016)

	vel := ecs.Velocities[ballID]
	assert.Equal(t, geometry.V(1, 0), vel.Dir, "out-of-window enemies are not chased")
	assert.NotContains(t, ecs.SeekTargets, ballID, "mark is consumed even without a target")
}

func TestRetargetDeferredWhileMovementPaused(t *testing.T) {
	ecs := entity.NewECS()
	ts := NewTargetingSystem(ecs)
	ballID := addBall(ecs, 0, 0, geometry.V(1, 0), config.BallBaseSpeed)
	addEnemy(ecs, 300, 0)
	ecs.SeekTargets[ballID] = struct{}{}
	ArmCooldown(ecs, ballID, component.CooldownMovementPaused, 0.1)

	ts.Update(0.016)

	assert.Contains(t, ecs.SeekTargets, ballID, "mark survives until the pause ends")
	assert.Equal(t, geometry.V(1, 0), ecs.Velocities[ballID].Dir)

	// пауза истекла — переприцеливание срабатывает
	ClearCooldown(ecs, ballID, component.CooldownMovementPaused)
	ts.Update(0.016)

	assert.NotContains(t, ecs.SeekTargets, ballID)
	assert.InDelta(t, 1, ecs.Velocities[ballID].Dir.X, 1e-9)
}

func TestRetargetIgnoresRemovedEnemies(t *testing.T) {
	ecs := entity.NewECS()
	ts := NewTargetingSystem(ecs)
	ballID := addBall(ecs, 0, 0, geometry.V(1, 0), config.BallBaseSpeed)
	enemyID := addEnemy(ecs, 300, 50)
	ecs.QueueRemove(enemyID)
	ecs.SeekTargets[ballID] = struct{}{}

	ts.Update(0.016)

	assert.Equal(t, geometry.V(1, 0), ecs.Velocities[ballID].Dir, "queued-for-removal enemies are invisible")
}
