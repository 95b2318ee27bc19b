// internal/component/projectile.go
package component

// Projectile — снаряд пушки: узкий прямоугольник, летящий от ствола
type Projectile struct {
	Width, Height float64
	Rotation      float64 // ориентация вдоль направления полёта
}
