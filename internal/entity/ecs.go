// internal/entity/ecs.go
package entity

import (
	"go-core-defense/internal/component"
	"go-core-defense/internal/types"
)

// ECS — арена сущностей: компоненты лежат в разреженных мапах по EntityID
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Dampings    map[types.EntityID]*component.Damping
	Homings     map[types.EntityID]*component.Homing
	Parents     map[types.EntityID]*component.Parent
	Balls       map[types.EntityID]*component.Ball
	Paddles     map[types.EntityID]*component.Paddle
	PaddleModes map[types.EntityID]*component.PaddleMode
	PaddleAmmos map[types.EntityID]*component.PaddleAmmo
	PaddleRots  map[types.EntityID]*component.PaddleRotation
	AccumRots   map[types.EntityID]*component.AccumulatedRotation
	Enemies     map[types.EntityID]*component.Enemy
	Walls       map[types.EntityID]*component.Wall
	Cores       map[types.EntityID]*component.Core
	Gears       map[types.EntityID]*component.Gear
	Healths     map[types.EntityID]*component.Health
	Projectiles map[types.EntityID]*component.Projectile
	Renderables map[types.EntityID]*component.Renderable
	Effects     map[types.EntityID]*component.Effect

	// Маркерные компоненты без данных
	InsideCore  map[types.EntityID]struct{}
	SeekTargets map[types.EntityID]struct{} // требуется переприцеливание

	// Кулдауны: (сущность, тег) -> момент истечения в игровом времени
	Cooldowns map[types.EntityID]map[component.CooldownTag]float64

	// Отложенные структурные удаления; применяются в конце тика,
	// чтобы ни одна система не увидела наполовину изменённый мир
	pendingRemoval []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Dampings:    make(map[types.EntityID]*component.Damping),
		Homings:     make(map[types.EntityID]*component.Homing),
		Parents:     make(map[types.EntityID]*component.Parent),
		Balls:       make(map[types.EntityID]*component.Ball),
		Paddles:     make(map[types.EntityID]*component.Paddle),
		PaddleModes: make(map[types.EntityID]*component.PaddleMode),
		PaddleAmmos: make(map[types.EntityID]*component.PaddleAmmo),
		PaddleRots:  make(map[types.EntityID]*component.PaddleRotation),
		AccumRots:   make(map[types.EntityID]*component.AccumulatedRotation),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Walls:       make(map[types.EntityID]*component.Wall),
		Cores:       make(map[types.EntityID]*component.Core),
		Gears:       make(map[types.EntityID]*component.Gear),
		Healths:     make(map[types.EntityID]*component.Health),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Effects:     make(map[types.EntityID]*component.Effect),
		InsideCore:  make(map[types.EntityID]struct{}),
		SeekTargets: make(map[types.EntityID]struct{}),
		Cooldowns:   make(map[types.EntityID]map[component.CooldownTag]float64),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// QueueRemove откладывает удаление сущности до конца тика
func (ecs *ECS) QueueRemove(id types.EntityID) {
	ecs.pendingRemoval = append(ecs.pendingRemoval, id)
}

// ApplyRemovals выполняет отложенные удаления; вызывается раз в тик
func (ecs *ECS) ApplyRemovals() {
	for _, id := range ecs.pendingRemoval {
		ecs.Remove(id)
	}
	ecs.pendingRemoval = ecs.pendingRemoval[:0]
}

// Remove немедленно вычищает сущность из всех мап
func (ecs *ECS) Remove(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Dampings, id)
	delete(ecs.Homings, id)
	delete(ecs.Parents, id)
	delete(ecs.Balls, id)
	delete(ecs.Paddles, id)
	delete(ecs.PaddleModes, id)
	delete(ecs.PaddleAmmos, id)
	delete(ecs.PaddleRots, id)
	delete(ecs.AccumRots, id)
	delete(ecs.Enemies, id)
	delete(ecs.Walls, id)
	delete(ecs.Cores, id)
	delete(ecs.Gears, id)
	delete(ecs.Healths, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Renderables, id)
	delete(ecs.Effects, id)
	delete(ecs.InsideCore, id)
	delete(ecs.SeekTargets, id)
	delete(ecs.Cooldowns, id)
}

// Removed сообщает, стоит ли сущность в очереди на удаление в этом тике
func (ecs *ECS) Removed(id types.EntityID) bool {
	for _, p := range ecs.pendingRemoval {
		if p == id {
			return true
		}
	}
	return false
}
