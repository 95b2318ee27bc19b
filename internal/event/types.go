// internal/event/types.go
package event

const (
	BallReloadRequested EventType = "BallReloadRequested" // полный оборот ракетки
	BallReflected       EventType = "BallReflected"       // мяч отражён ракеткой
	EnemyDestroyed      EventType = "EnemyDestroyed"      // враг уничтожен мячом или снарядом
	EnemyReachedCore    EventType = "EnemyReachedCore"    // враг дошёл до ядра
	ProjectileDespawned EventType = "ProjectileDespawned" // снаряд вышел из игры
	CoreDamaged         EventType = "CoreDamaged"         // ядро получило урон
	GameOver            EventType = "GameOver"            // здоровье ядра исчерпано
)
