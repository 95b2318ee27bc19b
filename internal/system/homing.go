// internal/system/homing.go
package system

import (
	"math"

	"go-core-defense/internal/component"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/types"
	"go-core-defense/pkg/geometry"
)

// HomingSystem плавно доворачивает мяч к ближайшему врагу в пределах
// настроенных ограничений по дистанции, углу и окну скорости.
// Компонент Homing несут только мячи вне зоны ядра.
type HomingSystem struct {
	ecs *entity.ECS
}

func NewHomingSystem(ecs *entity.ECS) *HomingSystem {
	return &HomingSystem{ecs: ecs}
}

func (s *HomingSystem) Update(deltaTime float64) {
	for id, homing := range s.ecs.Homings {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		if !hasPos || !hasVel {
			continue
		}
		if component.NegligibleSpeed(vel.Speed) || vel.Dir == (geometry.Vec2{}) {
			continue
		}
		if CooldownActive(s.ecs, id, component.CooldownMovementPaused) {
			continue
		}

		targetID, dist := s.nearestEnemy(pos.Vec(), homing.MaxDistance)
		if targetID == 0 {
			continue
		}
		epos := s.ecs.Positions[targetID]

		toTarget := epos.Vec().Sub(pos.Vec())
		angle := vel.Dir.AngleTo(toTarget)
		maxAngle := homing.MaxAngle * math.Pi / 180.0
		if math.Abs(angle) > maxAngle {
			continue
		}

		// усилие спадает с расстоянием и растёт с окном скорости
		strength := homing.MaxFactor * math.Exp(-homing.FactorDecay*dist/homing.MaxDistance)
		if homing.SpeedMultHi > homing.SpeedMultLo {
			strength *= vel.SpeedFactor(homing.SpeedMultLo, homing.SpeedMultHi)
		}
		turn := strength * math.Pi / 180.0 * deltaTime
		if turn > math.Abs(angle) {
			turn = math.Abs(angle)
		}
		vel.Dir = vel.Dir.Rotate(turn * geometry.Sign(angle))
	}
}

func (s *HomingSystem) nearestEnemy(from geometry.Vec2, maxDistance float64) (best types.EntityID, bestDist float64) {
	bestDist = maxDistance
	for id, enemy := range s.ecs.Enemies {
		if s.ecs.Removed(id) {
			continue
		}
		epos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		d := from.Distance(epos.Vec()) - enemy.Radius
		if d < bestDist {
			bestDist = d
			best = id
		}
	}
	return best, bestDist
}
