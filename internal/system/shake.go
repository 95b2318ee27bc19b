// internal/system/shake.go
package system

import (
	"math"
	"math/rand"

	"go-core-defense/pkg/geometry"
)

// ShakeSystem — экранная тряска по накопленной «травме».
// События боя добавляют травму, она затухает со временем, а смещение
// камеры каждый кадр берётся случайным в пределах amplitude * trauma^power.
type ShakeSystem struct {
	trauma    float64
	decay     float64
	amplitude float64
	power     float64
	offset    geometry.Vec2
	rng       *rand.Rand
}

func NewShakeSystem(seed int64) *ShakeSystem {
	return &ShakeSystem{
		decay:     0.9,
		amplitude: 25.0,
		power:     1.5,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// AddTrauma накапливает травму, итог зажат в [0, 1]
func (s *ShakeSystem) AddTrauma(amount float64) {
	s.trauma = geometry.Clamp(s.trauma+amount, 0, 1)
}

// SetDynamics задаёт параметры тряски; их каждый тик
// пересчитывает SpeedFactorSystem
func (s *ShakeSystem) SetDynamics(decay, amplitude, power float64) {
	s.decay = decay
	s.amplitude = amplitude
	s.power = power
}

func (s *ShakeSystem) Update(deltaTime float64) {
	if s.trauma <= 0 {
		s.offset = geometry.Vec2{}
		return
	}
	strength := math.Pow(s.trauma, s.power) * s.amplitude
	s.offset = geometry.V(
		(s.rng.Float64()*2-1)*strength,
		(s.rng.Float64()*2-1)*strength,
	)
	s.trauma = math.Max(0, s.trauma-s.decay*deltaTime)
}

func (s *ShakeSystem) Offset() geometry.Vec2 {
	return s.offset
}

func (s *ShakeSystem) Trauma() float64 {
	return s.trauma
}
