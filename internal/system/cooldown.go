// internal/system/cooldown.go
package system

import (
	"go-core-defense/internal/component"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/types"
)

// ArmCooldown ставит или перезаписывает кулдаун (сущность, тег).
// Повторный старт до истечения заменяет запись, записи не копятся.
func ArmCooldown(ecs *entity.ECS, id types.EntityID, tag component.CooldownTag, duration float64) {
	set, ok := ecs.Cooldowns[id]
	if !ok {
		set = make(map[component.CooldownTag]float64)
		ecs.Cooldowns[id] = set
	}
	set[tag] = ecs.GameTime + duration
}

// CooldownActive — единственное наблюдаемое состояние кулдауна: есть или нет
func CooldownActive(ecs *entity.ECS, id types.EntityID, tag component.CooldownTag) bool {
	set, ok := ecs.Cooldowns[id]
	if !ok {
		return false
	}
	_, active := set[tag]
	return active
}

// ClearCooldown снимает кулдаун досрочно
func ClearCooldown(ecs *entity.ECS, id types.EntityID, tag component.CooldownTag) {
	if set, ok := ecs.Cooldowns[id]; ok {
		delete(set, tag)
		if len(set) == 0 {
			delete(ecs.Cooldowns, id)
		}
	}
}

// CooldownSystem раз в тик вычищает истёкшие записи
type CooldownSystem struct {
	ecs *entity.ECS
}

func NewCooldownSystem(ecs *entity.ECS) *CooldownSystem {
	return &CooldownSystem{ecs: ecs}
}

func (s *CooldownSystem) Update(deltaTime float64) {
	_ = deltaTime
	for id, set := range s.ecs.Cooldowns {
		for tag, expiry := range set {
			if s.ecs.GameTime >= expiry {
				delete(set, tag)
			}
		}
		if len(set) == 0 {
			delete(s.ecs.Cooldowns, id)
		}
	}
}
