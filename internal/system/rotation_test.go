package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-core-defense/internal/component"
	"go-core-defense/internal/entity"
	"go-core-defense/internal/event"
	"go-core-defense/internal/types"
)

func newRotationWorld() (*entity.ECS, *RotationSystem, *recorder, types.EntityID) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	rec := &recorder{}
	dispatcher.Subscribe(event.BallReloadRequested, rec)

	id := ecs.NewEntity()
	ecs.Paddles[id] = &component.Paddle{OrbitRadius: 260}
	ecs.PaddleRots[id] = &component.PaddleRotation{}
	ecs.AccumRots[id] = &component.AccumulatedRotation{}

	return ecs, NewRotationSystem(ecs, dispatcher), rec, id
}

// spin крутит ракетку на total радиан шагами по step
func spin(rs *RotationSystem, start, total, step, dt float64) float64 {
	bearing := start
	for turned := 0.0; turned < total; turned += math.Abs(step) {
		bearing += step
		rs.Update(bearing, dt)
	}
	return bearing
}

func TestFullTurnRequestsReload(t *testing.T) {
	_, rs, rec, _ := newRotationWorld()

	rs.Update(0, 0.016)
	spin(rs, 0, 2*math.Pi, math.Pi/20, 0.016)

	assert.Equal(t, 1, rec.count(event.BallReloadRequested), "a full counter-clockwise turn reloads")
}

func TestFullTurnClockwiseRequestsReload(t *testing.T) {
	_, rs, rec, _ := newRotationWorld()

	rs.Update(0, 0.016)
	spin(rs, 0, 2*math.Pi, -math.Pi/20, 0.016)

	assert.Equal(t, 1, rec.count(event.BallReloadRequested), "direction of the turn does not matter")
}

func TestOscillationDoesNotReload(t *testing.T) {
	_, rs, rec, _ := newRotationWorld()

	rs.Update(0, 0.016)
	// качание туда-обратно никогда не замыкает оборот
	for i := 0; i < 40; i++ {
		rs.Update(math.Pi/4, 0.016)
		rs.Update(-math.Pi/4, 0.016)
	}

	assert.Equal(t, 0, rec.count(event.BallReloadRequested))
}

func TestIdleResetsPartialTurn(t *testing.T) {
	_, rs, rec, _ := newRotationWorld()

	rs.Update(0, 0.016)
	bearing := spin(rs, 0, math.Pi, math.Pi/20, 0.016) // полоборота

	// намотка зависает: угловая скорость почти нулевая дольше порога
	for i := 0; i < 5; i++ {
		rs.Update(bearing, 0.016)
	}

	// ещё полоборота — от точки сброса этого мало
	spin(rs, bearing, math.Pi, math.Pi/20, 0.016)

	assert.Equal(t, 0, rec.count(event.BallReloadRequested), "idle reset clears accumulated rotation")
}

func TestReloadHeldWhileBallInsideCore(t *testing.T) {
	ecs, rs, rec, _ := newRotationWorld()

	ballID := ecs.NewEntity()
	ecs.Balls[ballID] = &component.Ball{Radius: 40}
	ecs.InsideCore[ballID] = struct{}{}

	rs.Update(0, 0.016)
	spin(rs, 0, 2*math.Pi, math.Pi/20, 0.016)

	assert.Equal(t, 0, rec.count(event.BallReloadRequested), "no reload while a ball is near the core")
}

func TestAccumulatedRotationUnwraps(t *testing.T) {
	ecs, rs, _, id := newRotationWorld()

	rs.Update(0, 0.016)
	spin(rs, 0, 4*math.Pi, math.Pi/20, 0.016)

	acc := ecs.AccumRots[id]
	assert.InDelta(t, 4*math.Pi, acc.Rotation, 0.2, "accumulated angle unwraps beyond a single turn")
}
