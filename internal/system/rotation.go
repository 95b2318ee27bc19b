// internal/system/rotation.go
package system

import (
	"math"

	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
)

// RotationSystem задаёт угол ракетки по азимуту указателя, ведёт
// развёрнутый накопленный угол и решает, когда выдать перезарядку
type RotationSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewRotationSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *RotationSystem {
	return &RotationSystem{ecs: ecs, dispatcher: dispatcher}
}

// Update принимает текущий азимут указателя в радианах.
// Угол присваивается напрямую, без интегрирования.
func (s *RotationSystem) Update(pointerBearing float64, deltaTime float64) {
	for id, paddle := range s.ecs.Paddles {
		paddle.Rotation = pointerBearing

		acc, ok := s.ecs.AccumRots[id]
		if !ok {
			continue
		}
		if acc.HasPrev {
			acc.Rotation += shortestAngle(paddle.Rotation - acc.Prev)
		}
		acc.Prev = paddle.Rotation
		acc.HasPrev = true
	}

	s.detectReload(deltaTime)
}

// detectReload отслеживает полный оборот (±355°) и простой вращения
func (s *RotationSystem) detectReload(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}

	// пока мяч находится в зоне ядра, накопление удерживается в сброшенном
	// состоянии: перезарядка недоступна при уже активном мяче у ядра
	if s.ballInsideCore() {
		for id, rot := range s.ecs.PaddleRots {
			if acc, ok := s.ecs.AccumRots[id]; ok {
				rot.Reset(acc.Rotation)
			}
		}
		return
	}

	minRot := config.ReloadMinAngleDeg * math.Pi / 180.0
	for id, rot := range s.ecs.PaddleRots {
		acc, ok := s.ecs.AccumRots[id]
		if !ok {
			continue
		}

		switch {
		// по часовой (накопленный угол убывает от экстремума)
		case acc.Rotation-rot.CWStart <= -minRot,
			// против часовой (растёт от экстремума)
			acc.Rotation-rot.CCWStart >= minRot:
			rot.Reset(acc.Rotation)
			s.dispatcher.Dispatch(event.Event{Type: event.BallReloadRequested, Data: id})
		case acc.Rotation > rot.CWStart:
			rot.CWStart = acc.Rotation
		case acc.Rotation < rot.CCWStart:
			rot.CCWStart = acc.Rotation
		}

		// сброс зависшей частичной намотки: угловая скорость почти ноль
		rate := math.Abs(rot.PrevRot-acc.Rotation) / deltaTime
		if rate < config.IdleRateThreshold {
			rot.IdleTime += deltaTime
			if rot.IdleTime >= config.IdleResetTime {
				rot.Reset(acc.Rotation)
			}
		} else {
			rot.IdleTime = 0
		}
		rot.PrevRot = acc.Rotation
	}
}

func (s *RotationSystem) ballInsideCore() bool {
	for id := range s.ecs.Balls {
		if _, inside := s.ecs.InsideCore[id]; inside {
			return true
		}
	}
	return false
}

// shortestAngle нормализует дельту угла в (-π, π]
func shortestAngle(delta float64) float64 {
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	return delta
}
