// internal/component/movement.go
package component

import (
	"go-core-defense/internal/types"
	"go-core-defense/pkg/geometry"
)

// Position — компонент позиции в мировых координатах
type Position struct {
	X, Y float64
}

func (p *Position) Vec() geometry.Vec2 {
	return geometry.V(p.X, p.Y)
}

func (p *Position) Set(v geometry.Vec2) {
	p.X, p.Y = v.X, v.Y
}

// Velocity — направление (единичный вектор) и скалярная скорость.
// Итоговая скорость = Dir * Speed.
type Velocity struct {
	Dir   geometry.Vec2
	Speed float64
}

func (v *Velocity) Velocity() geometry.Vec2 {
	return v.Dir.Scale(v.Speed)
}

// SpeedFactor — нормированный [0,1] показатель близости скорости к верхней границе окна
func (v *Velocity) SpeedFactor(lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return geometry.Clamp((v.Speed-lo)/(hi-lo), 0, 1)
}

// Damping — экспоненциальное затухание скорости
type Damping struct {
	Value float64
}

// Homing — параметры подруливания к ближайшему врагу
type Homing struct {
	MaxDistance float64 // дальше цели не рассматриваются
	MaxFactor   float64 // максимальная угловая скорость доворота, град/с
	FactorDecay float64 // скорость спада усилия с расстоянием
	MaxAngle    float64 // максимальный угол до цели, градусы
	SpeedMultLo float64 // окно скорости, усиливающее доворот (0,0 — выключено)
	SpeedMultHi float64
}

// Parent — явная связь с родительской сущностью; мировая позиция
// вычисляется через локальное смещение в системе координат родителя
type Parent struct {
	ID          types.EntityID
	LocalOffset geometry.Vec2
}
