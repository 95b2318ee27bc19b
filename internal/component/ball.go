// internal/component/ball.go
package component

import "math"

// Ball — мяч. Направление и скорость живут в Velocity.
type Ball struct {
	Radius             float64
	LastReflectionTime float64 // метка игрового времени последнего отражения
	ReflectionCount    int     // серия отражений ракеткой
}

// AmmoBonus — бонус к боезапасу за отражение: щедрый в начале серии,
// убывающий до единицы по мере её роста
func (b *Ball) AmmoBonus() int {
	bonus := 6 - (b.ReflectionCount - 1)
	if bonus < 1 {
		return 1
	}
	return bonus
}

// машинный эпсилон для float64
var epsilon = math.Nextafter(1, 2) - 1

// NegligibleSpeed возвращает true для пренебрежимо малой скорости:
// такой мяч пропускается до любой нормализации направления
func NegligibleSpeed(speed float64) bool {
	return math.Abs(speed) < epsilon
}
