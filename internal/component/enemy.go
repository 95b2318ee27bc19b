// internal/component/enemy.go
package component

// Enemy — вражеская сущность, движется к ядру и уничтожается контактом
type Enemy struct {
	Radius float64
}
