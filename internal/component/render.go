// internal/component/render.go
package component

import "image/color"

// RenderKind — способ отрисовки сущности
type RenderKind int

const (
	RenderCircle RenderKind = iota
	RenderRect
	RenderGear
)

// Renderable — визуальное представление сущности
type Renderable struct {
	Kind   RenderKind
	Radius float64
	Color  color.RGBA
}

// EffectKind — вид одноразового визуального эффекта
type EffectKind int

const (
	EffectReflection EffectKind = iota // вспышка при отражении ракеткой
	EffectEnemyBurst                   // распад врага
	EffectCoreHit                      // удар по ядру
)

// Effect — короткоживущий эффект с собственным временем жизни
type Effect struct {
	Kind     EffectKind
	Age      float64
	Lifetime float64
	Radius   float64
	Rotation float64
}
