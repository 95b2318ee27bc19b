package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/pkg/geometry"
)

func TestSpeedFactorConvergesToTarget(t *testing.T) {
	ecs := entity.NewECS()
	sf := NewSpeedFactorSystem(ecs, nil)
	addBall(ecs, 0, 0, geometry.V(1, 0), config.SpeedFactorLo) // цель 0, стартовый фактор 1

	sf.Update(0.016)
	first := sf.Factor()
	assert.Less(t, first, 1.0, "blending starts moving immediately")
	assert.Greater(t, first, 0.0, "but never jumps to the target")

	for i := 0; i < 400; i++ {
		sf.Update(0.016)
	}

	assert.InDelta(t, 0.0, sf.Factor(), 1e-3, "factor converges to the target")
}

func TestSpeedFactorTakesFastestBall(t *testing.T) {
	ecs := entity.NewECS()
	sf := NewSpeedFactorSystem(ecs, nil)
	addBall(ecs, 0, 0, geometry.V(1, 0), config.SpeedFactorLo) // фактор 0
	addBall(ecs, 0, 0, geometry.V(1, 0), config.SpeedFactorHi) // фактор 1

	for i := 0; i < 200; i++ {
		sf.Update(0.016)
	}

	assert.InDelta(t, 1.0, sf.Factor(), 1e-3, "the fastest ball wins")
}

func TestSpeedFactorDefaultsWithoutBalls(t *testing.T) {
	ecs := entity.NewECS()
	sf := NewSpeedFactorSystem(ecs, nil)

	for i := 0; i < 200; i++ {
		sf.Update(0.016)
	}

	assert.InDelta(t, 1.0, sf.Factor(), 1e-3, "no balls means full intensity")
}

func TestSpeedFactorDrivesBloomAndColor(t *testing.T) {
	ecs := entity.NewECS()
	sf := NewSpeedFactorSystem(ecs, nil)
	addBall(ecs, 0, 0, geometry.V(1, 0), config.SpeedFactorLo) // фактор 0

	for i := 0; i < 400; i++ {
		sf.Update(0.016)
	}

	assert.InDelta(t, config.BloomBase, sf.BloomIntensity(), 1e-2)
	c := sf.BallColor()
	assert.InDelta(t, float64(config.BallColorSlow.R), float64(c.R), 3, "slow ball keeps the slow tint")
}

func TestShakeTraumaClampedAndDecays(t *testing.T) {
	shake := NewShakeSystem(7)

	shake.AddTrauma(0.8)
	shake.AddTrauma(0.8)
	assert.Equal(t, 1.0, shake.Trauma(), "trauma saturates at one")

	shake.Update(0.5)
	assert.Less(t, shake.Trauma(), 1.0)
	offset := shake.Offset()
	assert.False(t, offset == (geometry.Vec2{}), "active trauma produces an offset")

	for i := 0; i < 100; i++ {
		shake.Update(0.1)
	}
	assert.Equal(t, 0.0, shake.Trauma())
	assert.Equal(t, geometry.Vec2{}, shake.Offset(), "offset settles once trauma is gone")
}
