// internal/system/targeting.go
package system

import (
	"sort"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/types"
	"go-core-defense/pkg/geometry"
)

// TargetingSystem переприцеливает мяч после отскока от стены или врага:
// широкий свип впереди по курсу, первый подходящий враг задаёт направление.
// Метка снимается безусловно, даже если цель не найдена.
type TargetingSystem struct {
	ecs *entity.ECS
}

func NewTargetingSystem(ecs *entity.ECS) *TargetingSystem {
	return &TargetingSystem{ecs: ecs}
}

func (s *TargetingSystem) Update(deltaTime float64) {
	for ballID := range s.ecs.SeekTargets {
		// переприцеливание откладывается до окончания паузы движения
		if CooldownActive(s.ecs, ballID, component.CooldownMovementPaused) {
			continue
		}
		delete(s.ecs.SeekTargets, ballID)

		pos, hasPos := s.ecs.Positions[ballID]
		vel, hasVel := s.ecs.Velocities[ballID]
		if !hasPos || !hasVel {
			continue
		}
		if component.NegligibleSpeed(vel.Speed) || vel.Dir == (geometry.Vec2{}) {
			continue
		}

		dir := vel.Dir.Normalize()
		origin := pos.Vec().Add(dir.Scale(config.SeekAheadOffset))
		sweepDist := vel.Speed * sweepSlack * deltaTime
		window := config.GameSize/2 - config.SeekWindowMargin

		for _, enemyID := range s.enemiesInSweep(origin, dir, sweepDist) {
			epos := s.ecs.Positions[enemyID]
			// цели за пределами окна не преследуются
			if maxAbs(epos.X, epos.Y) > window {
				continue
			}
			vel.Dir = epos.Vec().Sub(pos.Vec()).Normalize()
			break
		}
	}
}

// enemiesInSweep — детектирующий свип: перекрытия допустимы,
// реакция столкновения не применяется
func (s *TargetingSystem) enemiesInSweep(origin, dir geometry.Vec2, dist float64) []types.EntityID {
	type candidate struct {
		id types.EntityID
		d  float64
	}
	var found []candidate
	for id, enemy := range s.ecs.Enemies {
		if s.ecs.Removed(id) {
			continue
		}
		epos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if c, ok := geometry.SweepCircleCircle(origin, config.SeekRadius, dir, dist, epos.Vec(), enemy.Radius); ok {
			found = append(found, candidate{id: id, d: c.Distance})
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].d < found[j].d })
	if len(found) > maxSweepContacts {
		found = found[:maxSweepContacts]
	}
	ids := make([]types.EntityID, len(found))
	for i, c := range found {
		ids[i] = c.id
	}
	return ids
}

func maxAbs(x, y float64) float64 {
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	if x > y {
		return x
	}
	return y
}
