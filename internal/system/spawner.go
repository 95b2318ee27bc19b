// internal/system/spawner.go
package system

import (
	"math"
	"math/rand"

	"go-core-defense/internal/component"
	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/pkg/geometry"
)

// SpawnerSystem выпускает врагов с края арены в сторону ядра.
// Интервал между волнами понемногу сокращается с каждым спавном.
type SpawnerSystem struct {
	ecs      *entity.ECS
	rng      *rand.Rand
	interval float64
	timer    float64
}

func NewSpawnerSystem(ecs *entity.ECS, seed int64) *SpawnerSystem {
	return &SpawnerSystem{
		ecs:      ecs,
		rng:      rand.New(rand.NewSource(seed)),
		interval: config.SpawnInterval,
	}
}

func (s *SpawnerSystem) Update(deltaTime float64) {
	s.timer += deltaTime
	for s.timer >= s.interval {
		s.timer -= s.interval
		s.spawn()
		s.interval = math.Max(config.MinSpawnInterval, s.interval-config.SpawnIntervalDecay)
	}
	s.despawnStray()
}

func (s *SpawnerSystem) spawn() {
	angle := s.rng.Float64() * 2 * math.Pi
	at := geometry.FromAngle(angle).Scale(config.ArenaRadius - config.EnemyRadius)

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: at.X, Y: at.Y}
	s.ecs.Velocities[id] = &component.Velocity{
		Dir:   at.Scale(-1).Normalize(),
		Speed: config.EnemySpeed,
	}
	s.ecs.Enemies[id] = &component.Enemy{Radius: config.EnemyRadius}
}

// despawnStray убирает врагов, вытолкнутых далеко за пределы поля
func (s *SpawnerSystem) despawnStray() {
	bound := config.GameSize/2 + config.OutOfBoundsMargin
	for id := range s.ecs.Enemies {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		if maxAbs(pos.X, pos.Y) > bound {
			s.ecs.QueueRemove(id)
		}
	}
}
