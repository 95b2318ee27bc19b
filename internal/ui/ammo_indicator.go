// internal/ui/ammo_indicator.go
package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-core-defense/internal/config"
)

const (
	ammoSegments  = 24
	ammoDotRadius = 5.0
	ammoFillScale = 0.95 // полный магазин не замыкает кольцо
)

// AmmoIndicator — кольцо из точек вокруг собственного центра;
// заполненная доля показывает остаток боезапаса
type AmmoIndicator struct {
	X, Y   float32
	Radius float32
}

func NewAmmoIndicator(x, y, radius float32) *AmmoIndicator {
	return &AmmoIndicator{X: x, Y: y, Radius: radius}
}

// Draw рисует кольцо; factor — доля заполнения [0, 1]
func (i *AmmoIndicator) Draw(screen *ebiten.Image, factor float64) {
	filled := int(math.Ceil(factor * ammoFillScale * ammoSegments))
	for s := 0; s < ammoSegments; s++ {
		a := -math.Pi/2 + 2*math.Pi*float64(s)/ammoSegments
		x := i.X + i.Radius*float32(math.Cos(a))
		y := i.Y + i.Radius*float32(math.Sin(a))
		if s < filled {
			vector.DrawFilledCircle(screen, x, y, ammoDotRadius, config.AmmoFillColor, true)
		} else {
			vector.DrawFilledCircle(screen, x, y, ammoDotRadius*0.6, config.AmmoRingColor, true)
		}
	}
}
