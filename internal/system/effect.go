// internal/system/effect.go
package system

import "go-core-defense/internal/entity"

// EffectSystem старит визуальные эффекты и убирает отжившие
type EffectSystem struct {
	ecs *entity.ECS
}

func NewEffectSystem(ecs *entity.ECS) *EffectSystem {
	return &EffectSystem{ecs: ecs}
}

func (s *EffectSystem) Update(deltaTime float64) {
	for id, effect := range s.ecs.Effects {
		effect.Age += deltaTime
		if effect.Age >= effect.Lifetime {
			s.ecs.QueueRemove(id)
		}
	}
}
