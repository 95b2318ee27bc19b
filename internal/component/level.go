// internal/component/level.go
package component

import "go-core-defense/internal/types"

// Wall — стена арены: окружность, по внутренней стороне которой
// отражается мяч. Другие сущности её не замечают.
type Wall struct {
	CenterX, CenterY float64
	Radius           float64
}

// Core — ядро с упорядоченным набором шестерёнок
type Core struct {
	GearIDs []types.EntityID
	Radius  float64
}

// Gear — шестерёнка ядра; Disabled — терминальное состояние
type Gear struct {
	Active     bool
	Offset     float64 // собственный фазовый сдвиг, радианы
	Multiplier float64 // множитель вращения относительно ракетки
	Invert     bool
	Rotation   float64 // текущий угол, выставляется системой ядра
	Scale      float64 // визуальный масштаб (сжимается при отключении)
}

// Health — счётчик здоровья с клампом снизу
type Health struct {
	Value int
}

// Damage уменьшает здоровье, не опуская его ниже нуля
func (h *Health) Damage(amount int) {
	h.Value -= amount
	if h.Value < 0 {
		h.Value = 0
	}
}
