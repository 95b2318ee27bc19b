// internal/system/core.go
package system

import (
	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/types"
	"go-core-defense/pkg/geometry"
)

// CoreSystem вращает шестерёнки вслед за ракеткой, принимает врагов,
// дошедших до ядра, и списывает здоровье: сколько бы врагов ни дошло
// за один тик, ядро теряет ровно одно очко.
type CoreSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	shake      *ShakeSystem
	gameOver   bool
}

func NewCoreSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, shake *ShakeSystem) *CoreSystem {
	return &CoreSystem{ecs: ecs, dispatcher: dispatcher, shake: shake}
}

func (s *CoreSystem) Update(deltaTime float64) {
	for coreID, core := range s.ecs.Cores {
		s.spinGears(core)
		s.absorbEnemies(coreID, core)
	}
}

// GameOver сообщает, исчерпано ли здоровье ядра
func (s *CoreSystem) GameOver() bool {
	return s.gameOver
}

func (s *CoreSystem) spinGears(core *component.Core) {
	var paddleRot float64
	for _, paddle := range s.ecs.Paddles {
		paddleRot = paddle.Rotation
		break
	}
	for _, gearID := range core.GearIDs {
		gear, ok := s.ecs.Gears[gearID]
		if !ok || !gear.Active {
			continue
		}
		sign := -1.0
		if gear.Invert {
			sign = 1.0
		}
		gear.Rotation = (gear.Offset + paddleRot) * sign * gear.Multiplier
	}
}

func (s *CoreSystem) absorbEnemies(coreID types.EntityID, core *component.Core) {
	cpos, ok := s.ecs.Positions[coreID]
	if !ok {
		return
	}
	center := cpos.Vec()

	reached := false
	for id, enemy := range s.ecs.Enemies {
		if s.ecs.Removed(id) {
			continue
		}
		epos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if center.Distance(epos.Vec()) > core.Radius+enemy.Radius {
			continue
		}
		reached = true
		s.ecs.QueueRemove(id)
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyReachedCore, Data: id})
	}
	if !reached {
		return
	}

	health, ok := s.ecs.Healths[coreID]
	if !ok || health.Value == 0 {
		return
	}
	health.Damage(1)
	s.shake.AddTrauma(config.CoreTrauma)
	s.disableGear(core)
	s.clearInnerRadius(center)
	s.dispatcher.Dispatch(event.Event{Type: event.CoreDamaged, Data: health.Value})

	if health.Value == 0 && !s.gameOver {
		s.gameOver = true
		s.dispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

// clearInnerRadius при попадании по ядру выметает всех врагов и снаряды,
// оказавшиеся внутри орбиты ракетки
func (s *CoreSystem) clearInnerRadius(center geometry.Vec2) {
	for id := range s.ecs.Enemies {
		if s.ecs.Removed(id) {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok || center.Distance(pos.Vec()) >= config.PaddleRadius {
			continue
		}
		s.ecs.QueueRemove(id)
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: id})
	}
	for id := range s.ecs.Projectiles {
		if s.ecs.Removed(id) {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok || center.Distance(pos.Vec()) >= config.PaddleRadius {
			continue
		}
		s.ecs.QueueRemove(id)
		s.dispatcher.Dispatch(event.Event{Type: event.ProjectileDespawned, Data: id})
	}
}

// disableGear гасит первую ещё активную шестерёнку в порядке GearIDs
func (s *CoreSystem) disableGear(core *component.Core) {
	for _, gearID := range core.GearIDs {
		gear, ok := s.ecs.Gears[gearID]
		if !ok || !gear.Active {
			continue
		}
		gear.Active = false
		gear.Scale = config.GearShrink
		return
	}
}
