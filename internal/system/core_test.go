package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/types"
)

func newCoreWorld() (*entity.ECS, *CoreSystem, *recorder, types.EntityID) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.Subscribe(event.EnemyReachedCore, rec)
	dispatcher.Subscribe(event.EnemyDestroyed, rec)
	dispatcher.Subscribe(event.ProjectileDespawned, rec)
	dispatcher.Subscribe(event.CoreDamaged, rec)
	dispatcher.Subscribe(event.GameOver, rec)

	gearIDs := make([]types.EntityID, 0, config.GearCount)
	for i := 0; i < config.GearCount; i++ {
		gid := ecs.NewEntity()
		ecs.Gears[gid] = &component.Gear{Active: true, Multiplier: 1, Scale: 1}
		gearIDs = append(gearIDs, gid)
	}

	coreID := ecs.NewEntity()
	ecs.Positions[coreID] = &component.Position{}
	ecs.Cores[coreID] = &component.Core{GearIDs: gearIDs, Radius: config.CoreRadius}
	ecs.Healths[coreID] = &component.Health{Value: config.CoreHealth}

	return ecs, NewCoreSystem(ecs, dispatcher, NewShakeSystem(1)), rec, coreID
}

func TestBatchOfEnemiesCostsOneHealth(t *testing.T) {
	ecs, cs, rec, coreID := newCoreWorld()
	addEnemy(ecs, 50, 0)
	addEnemy(ecs, -50, 0)
	addEnemy(ecs, 0, 50)

	cs.Update(0.016)

	assert.Equal(t, config.CoreHealth-1, ecs.Healths[coreID].Value, "one tick batch costs one health point")
	assert.Equal(t, 3, rec.count(event.EnemyReachedCore), "every enemy is still absorbed")
	assert.Equal(t, 1, rec.count(event.CoreDamaged))
}

func TestEnemiesOutsideCoreUntouched(t *testing.T) {
	ecs, cs, rec, coreID := newCoreWorld()
	id := addEnemy(ecs, config.CoreRadius+config.EnemyRadius+5, 0)

	cs.Update(0.016)

	assert.False(t, ecs.Removed(id))
	assert.Equal(t, config.CoreHealth, ecs.Healths[coreID].Value)
	assert.Equal(t, 0, len(rec.events))
}

func TestGameOverDispatchedExactlyOnce(t *testing.T) {
	ecs, cs, rec, coreID := newCoreWorld()

	for i := 0; i < config.CoreHealth; i++ {
		addEnemy(ecs, 10, 0)
		cs.Update(0.016)
		ecs.ApplyRemovals()
	}
	assert.Equal(t, 0, ecs.Healths[coreID].Value)
	assert.Equal(t, 1, rec.count(event.GameOver))

	// добравшиеся после смерти ядра не оживляют его и не дублируют событие
	addEnemy(ecs, 10, 0)
	cs.Update(0.016)

	assert.Equal(t, 0, ecs.Healths[coreID].Value)
	assert.Equal(t, 1, rec.count(event.GameOver))
	assert.Equal(t, config.CoreHealth, rec.count(event.CoreDamaged))
}

func TestGearsDisableOnePerHit(t *testing.T) {
	ecs, cs, _, coreID := newCoreWorld()
	core := ecs.Cores[coreID]

	addEnemy(ecs, 10, 0)
	cs.Update(0.016)
	ecs.ApplyRemovals()

	active := 0
	for _, gid := range core.GearIDs {
		if ecs.Gears[gid].Active {
			active++
		}
	}
	assert.Equal(t, config.GearCount-1, active, "one gear goes dark per health point lost")
	assert.Equal(t, config.GearShrink, ecs.Gears[core.GearIDs[0]].Scale)
}

func TestCoreHitSweepsPaddleOrbitInterior(t *testing.T) {
	ecs, cs, rec, _ := newCoreWorld()

	inner := addEnemy(ecs, config.CoreRadius+config.EnemyRadius+5, 0)
	outer := addEnemy(ecs, config.PaddleRadius+40, 0)

	projID := ecs.NewEntity()
	ecs.Positions[projID] = &component.Position{X: 0, Y: config.PaddleRadius - 20}
	ecs.Projectiles[projID] = &component.Projectile{Width: config.ProjectileWidth, Height: config.ProjectileHeight}

	addEnemy(ecs, 10, 0) // добирается до ядра и наносит урон
	cs.Update(0.016)
	ecs.ApplyRemovals()

	assert.Nil(t, ecs.Enemies[inner], "enemy inside the paddle orbit is swept on core hit")
	assert.Nil(t, ecs.Projectiles[projID], "projectile inside the paddle orbit is swept on core hit")
	assert.NotNil(t, ecs.Enemies[outer], "enemy beyond the paddle orbit survives")
	assert.Equal(t, 1, rec.count(event.EnemyDestroyed))
	assert.Equal(t, 1, rec.count(event.ProjectileDespawned))
}

func TestGearsSpinWithPaddle(t *testing.T) {
	ecs, cs, _, coreID := newCoreWorld()
	core := ecs.Cores[coreID]

	paddleID := ecs.NewEntity()
	ecs.Paddles[paddleID] = &component.Paddle{OrbitRadius: config.PaddleRadius, Rotation: 1.5}

	straight := ecs.Gears[core.GearIDs[0]] // Offset 0, Multiplier 1
	inverted := ecs.Gears[core.GearIDs[1]]
	inverted.Invert = true
	inverted.Multiplier = 2
	inverted.Offset = 0.25

	cs.Update(0.016)

	assert.InDelta(t, -1.5, straight.Rotation, 1e-9, "plain gears counter-rotate against the paddle")
	assert.InDelta(t, (0.25+1.5)*2, inverted.Rotation, 1e-9, "inverted gears follow it, offset and geared up")
}
