// internal/ui/health_indicator.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-core-defense/internal/config"
)

const (
	healthCircleRadius  = 9.0
	healthCircleSpacing = 6.0
)

// CoreHealthIndicator — ряд кружков: по одному на очко здоровья ядра
type CoreHealthIndicator struct {
	X, Y float32
}

func NewCoreHealthIndicator(x, y float32) *CoreHealthIndicator {
	return &CoreHealthIndicator{X: x, Y: y}
}

func (i *CoreHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	for j := 0; j < maxHealth; j++ {
		x := i.X + float32(j)*(healthCircleRadius*2+healthCircleSpacing)
		if j < health {
			vector.DrawFilledCircle(screen, x, i.Y, healthCircleRadius, config.GearActiveColor, true)
		} else {
			vector.DrawFilledCircle(screen, x, i.Y, healthCircleRadius*0.6, config.GearDisabledColor, true)
		}
	}
}
