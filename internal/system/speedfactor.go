// internal/system/speedfactor.go
package system

import (
	"image/color"
	"math"

	"go-core-defense/internal/config"
	"go-core-defense/internal/entity"
)

// SpeedFactorSystem сглаживает глобальный фактор скорости: берёт максимум
// по всем мячам и экспоненциально подтягивает внутреннее значение к нему.
// От сглаженного фактора зависят свечение, параметры тряски и цвет мяча.
type SpeedFactorSystem struct {
	ecs    *entity.ECS
	shake  *ShakeSystem
	factor float64
}

func NewSpeedFactorSystem(ecs *entity.ECS, shake *ShakeSystem) *SpeedFactorSystem {
	return &SpeedFactorSystem{ecs: ecs, shake: shake, factor: 1.0}
}

func (s *SpeedFactorSystem) Update(deltaTime float64) {
	target := 1.0
	first := true
	for id := range s.ecs.Balls {
		vel, ok := s.ecs.Velocities[id]
		if !ok {
			continue
		}
		f := vel.SpeedFactor(config.SpeedFactorLo, config.SpeedFactorHi)
		if first || f > target {
			target = f
			first = false
		}
	}

	blend := 1.0 - math.Exp(-config.SpeedFactorRate*deltaTime)
	s.factor += (target - s.factor) * blend

	if s.shake != nil {
		s.shake.SetDynamics(
			0.9+0.1*s.factor,   // скорость затухания травмы
			25.0-10.0*s.factor, // амплитуда: на скорости тряска короче и резче
			1.5+0.5*s.factor,   // степень кривой травмы
		)
	}
}

func (s *SpeedFactorSystem) Factor() float64 {
	return s.factor
}

func (s *SpeedFactorSystem) BloomIntensity() float64 {
	return config.BloomBase + 0.175*s.factor
}

// BallColor интерполирует окраску мяча между «медленным» и «быстрым» цветом
func (s *SpeedFactorSystem) BallColor() color.RGBA {
	return lerpRGBA(config.BallColorSlow, config.BallColorFast, s.factor)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), lerp(a.A, b.A)}
}
