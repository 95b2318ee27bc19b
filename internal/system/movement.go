// internal/system/movement.go
package system

import (
	"go-core-defense/internal/component"
	"go-core-defense/internal/entity"
	"go-core-defense/pkg/geometry"
)

// MovementSystem интегрирует позиции по скоростям и применяет затухание.
// Сущности с родителем не интегрируются: их мировая позиция разрешается
// через явную цепочку родителя.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	// затухание: один множитель на тик для вектора и скаляра скорости
	for id, damping := range s.ecs.Dampings {
		if vel, ok := s.ecs.Velocities[id]; ok {
			mult := 1.0 - damping.Value*deltaTime
			if mult < 0 {
				mult = 0
			}
			vel.Speed *= mult
		}
	}

	for id, pos := range s.ecs.Positions {
		if _, parented := s.ecs.Parents[id]; parented {
			continue
		}
		vel, ok := s.ecs.Velocities[id]
		if !ok {
			continue
		}
		if CooldownActive(s.ecs, id, component.CooldownMovementPaused) {
			continue
		}
		pos.X += vel.Dir.X * vel.Speed * deltaTime
		pos.Y += vel.Dir.Y * vel.Speed * deltaTime
	}

	// разрешение позиций пристыкованных сущностей
	for id, parent := range s.ecs.Parents {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		pos.Set(s.resolveWorld(parent))
	}
}

// resolveWorld возвращает мировую позицию локального смещения
// в системе координат родителя-ракетки
func (s *MovementSystem) resolveWorld(parent *component.Parent) geometry.Vec2 {
	paddle, ok := s.ecs.Paddles[parent.ID]
	if !ok {
		// родитель без ракетки: считаем смещение мировым
		if ppos, ok := s.ecs.Positions[parent.ID]; ok {
			return ppos.Vec().Add(parent.LocalOffset)
		}
		return parent.LocalOffset
	}
	return PaddleWorld(paddle, parent.LocalOffset)
}

// PaddleWorld переводит точку из локальных координат ракетки
// (X — наружу от центра, Y — вдоль ракетки) в мировые
func PaddleWorld(paddle *component.Paddle, local geometry.Vec2) geometry.Vec2 {
	outward := geometry.FromAngle(paddle.Rotation)
	tangent := outward.Perp()
	origin := outward.Scale(paddle.OrbitRadius)
	return origin.Add(outward.Scale(local.X)).Add(tangent.Scale(local.Y))
}
