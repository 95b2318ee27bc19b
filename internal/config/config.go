// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	GameSize     = 900.0 // сторона квадратного игрового поля
	MaxDeltaTime = 0.06

	// Мяч
	BallBaseSpeed  = 250.0
	BallBaseRadius = 40.0
	BallMaxSpeed   = BallBaseSpeed * 5.0

	// Ракетка
	PaddleRadius       = 260.0 // радиус орбиты ракетки
	PaddleHeight       = 120.0
	PaddleCollHeight   = PaddleHeight + 10.0
	PaddleCollRadius   = 23.0
	MaxReflectionAngle = 20.0 // градусы
	PaddleSpeedMult    = 1.225
	PaddleDebounce     = 0.2
	AmmoCapacity       = 50

	// Стены и арена
	ArenaRadius   = 430.0
	WallSpeedMult = 0.9
	WallDebounce  = 0.1

	// Пушка
	FireCooldown     = 0.14
	NoAmmoCooldown   = 1.0
	FireTrauma       = 0.125
	NoAmmoTrauma     = 0.4
	BarrelOffset     = 70.0
	ProjectileWidth  = 10.0
	ProjectileHeight = 28.0
	ProjectileSpeed  = 700.0

	// Зона ядра
	InsideCoreFactor = 1.1
	OutsideDamping   = 0.125

	// Самонаведение вне зоны ядра
	HomingMaxDistance = 300.0
	HomingMaxFactor   = 80.0
	HomingFactorDecay = 2.0
	HomingMaxAngle    = 70.0
	HomingSpeedMultLo = BallBaseSpeed
	HomingSpeedMultHi = BallBaseSpeed * 2.0

	// Повторное прицеливание после отскока
	SeekRadius       = 170.0
	SeekAheadOffset  = 150.0
	SeekWindowMargin = 50.0

	// Перезарядка вращением
	ReloadMinAngleDeg = 355.0
	IdleResetTime     = 0.05
	IdleRateThreshold = 1.0

	// Сглаживание фактора скорости
	SpeedFactorLo   = BallBaseSpeed * 1.3
	SpeedFactorHi   = BallBaseSpeed * 2.5
	SpeedFactorRate = 10.0
	BloomBase       = 0.2

	// Ядро
	CoreRadius  = 90.0
	GearCount   = 4
	CoreHealth  = GearCount
	CoreTrauma  = 0.7
	EnemyTrauma = 0.15
	GearShrink  = 0.7

	// Враги
	EnemySpeed         = 60.0
	EnemyRadius        = 20.0
	SpawnInterval      = 2.5
	MinSpawnInterval   = 0.8
	SpawnIntervalDecay = 0.03 // уменьшение интервала за каждого заспавненного
	OutOfBoundsMargin  = 150.0

	// Телеметрия
	TelemetryEveryTicks = 6
)

var (
	BackgroundColor   = color.RGBA{16, 18, 28, 255}
	ArenaColor        = color.RGBA{40, 46, 66, 255}
	WallStrokeColor   = color.RGBA{90, 100, 130, 255}
	PaddleColor       = color.RGBA{56, 189, 248, 255}  // sky-400
	PaddleRailColor   = color.RGBA{186, 230, 253, 120} // sky-200
	BallColorSlow     = color.RGBA{248, 113, 113, 255} // red-400
	BallColorFast     = color.RGBA{252, 211, 77, 255}  // amber-300
	EnemyColor        = color.RGBA{167, 139, 250, 255}
	ProjectileColor   = color.RGBA{253, 224, 71, 255}
	CoreColor         = color.RGBA{148, 163, 184, 255}
	GearActiveColor   = color.RGBA{203, 213, 225, 255}
	GearDisabledColor = color.RGBA{71, 85, 105, 255}
	AmmoFillColor     = color.RGBA{56, 189, 248, 200}
	AmmoRingColor     = color.RGBA{186, 230, 253, 90}
	TextColor         = color.RGBA{240, 240, 240, 255}
	EffectColor       = color.RGBA{255, 255, 255, 200}
)
