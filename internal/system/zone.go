// internal/system/zone.go
package system

import (
	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
)

// ZoneSystem следит за принадлежностью мячей зоне ядра.
// Внутри зоны мяч не несёт ни затухания, ни самонаведения;
// снаружи — всегда несёт и то и другое.
type ZoneSystem struct {
	ecs *entity.ECS
}

func NewZoneSystem(ecs *entity.ECS) *ZoneSystem {
	return &ZoneSystem{ecs: ecs}
}

func (s *ZoneSystem) Update(deltaTime float64) {
	_ = deltaTime
	captureRadius := config.PaddleRadius * config.InsideCoreFactor
	for id := range s.ecs.Balls {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		inside := pos.Vec().Length() < captureRadius
		_, marked := s.ecs.InsideCore[id]

		if inside && !marked {
			s.ecs.InsideCore[id] = struct{}{}
			delete(s.ecs.Dampings, id)
			delete(s.ecs.Homings, id)
		} else if !inside && marked {
			delete(s.ecs.InsideCore, id)
			s.ecs.Dampings[id] = &component.Damping{Value: config.OutsideDamping}
			s.ecs.Homings[id] = &component.Homing{
				MaxDistance: config.HomingMaxDistance,
				MaxFactor:   config.HomingMaxFactor,
				FactorDecay: config.HomingFactorDecay,
				MaxAngle:    config.HomingMaxAngle,
				SpeedMultLo: config.HomingSpeedMultLo,
				SpeedMultHi: config.HomingSpeedMultHi,
			}
		}
	}
}
