// internal/component/cooldown.go
package component

// CooldownTag — назначение кулдауна; пары (сущность, тег) независимы
type CooldownTag int

const (
	CooldownMovementPaused CooldownTag = iota // пауза движения после отражения
	CooldownFire                              // задержка между выстрелами
	CooldownNoAmmoShake                       // дебаунс тряски при пустом боезапасе
)
