// internal/component/paddle.go
package component

import "go-core-defense/internal/types"

// PaddleModeKind — режим ракетки; ровно один активен в любой момент
type PaddleModeKind int

const (
	PaddleReflect  PaddleModeKind = iota // отражает мяч
	PaddleCapture                        // поймает мяч при следующем контакте
	PaddleCaptured                       // держит пойманный мяч
)

// PaddleMode — текущий режим и данные захвата
type PaddleMode struct {
	Kind          PaddleModeKind
	BallID        types.EntityID // мяч, удерживаемый в режиме Captured
	ShootRotation float64        // записанный угол выстрела, радианы
}

// Paddle — ракетка на круговой орбите вокруг ядра
type Paddle struct {
	OrbitRadius float64
	Rotation    float64 // текущий угол, задаётся напрямую от указателя
	LastHitTime float64 // метка последнего отражения для анимации отдачи
}

// PaddleAmmo — боезапас с жёстким клампом на каждом изменении
type PaddleAmmo struct {
	ammo     int
	capacity int
}

func NewPaddleAmmo(capacity int) PaddleAmmo {
	return PaddleAmmo{capacity: capacity}
}

func (a *PaddleAmmo) Ammo() int {
	return a.ammo
}

func (a *PaddleAmmo) Capacity() int {
	return a.capacity
}

// Offset сдвигает боезапас, не выпуская его из [0, capacity]
func (a *PaddleAmmo) Offset(delta int) {
	a.ammo += delta
	if a.ammo < 0 {
		a.ammo = 0
	}
	if a.ammo > a.capacity {
		a.ammo = a.capacity
	}
}

// Factor — доля заполнения [0,1] для индикатора
func (a *PaddleAmmo) Factor() float64 {
	if a.capacity == 0 {
		return 0
	}
	return float64(a.ammo) / float64(a.capacity)
}

// PaddleRotation — трекер накопленного вращения для перезарядки
type PaddleRotation struct {
	CWStart  float64 // экстремум по часовой (максимум накопленного угла)
	CCWStart float64 // экстремум против часовой (минимум)
	PrevRot  float64
	IdleTime float64 // время почти нулевой угловой скорости
}

// Reset сбрасывает экстремумы на текущий накопленный угол
func (r *PaddleRotation) Reset(rotation float64) {
	r.CWStart = rotation
	r.CCWStart = rotation
	r.PrevRot = rotation
	r.IdleTime = 0
}

// AccumulatedRotation — развёрнутая сумма кратчайших угловых дельт
type AccumulatedRotation struct {
	Prev     float64
	HasPrev  bool
	Rotation float64
}
