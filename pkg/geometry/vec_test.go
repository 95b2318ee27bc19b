package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi / 2)

	assert.InDelta(t, 0, v.X, 1e-12)
	assert.InDelta(t, 1, v.Y, 1e-12)
	assert.InDelta(t, 1, v.Length(), 1e-12, "FromAngle should return a unit vector")
}

func TestNormalizeZeroVector(t *testing.T) {
	v := Vec2{}.Normalize()

	assert.Equal(t, Vec2{}, v, "normalizing the zero vector should stay zero, not NaN")
}

func TestRotatePreservesLength(t *testing.T) {
	v := V(3, 4)
	r := v.Rotate(1.234)

	assert.InDelta(t, 5, r.Length(), 1e-12)
}

func TestRotateQuarterTurn(t *testing.T) {
	r := V(1, 0).Rotate(math.Pi / 2)

	assert.InDelta(t, 0, r.X, 1e-12)
	assert.InDelta(t, 1, r.Y, 1e-12)
}

func TestAngleToSign(t *testing.T) {
	right := V(1, 0)

	assert.InDelta(t, math.Pi/2, right.AngleTo(V(0, 1)), 1e-12, "counter-clockwise should be positive")
	assert.InDelta(t, -math.Pi/2, right.AngleTo(V(0, -1)), 1e-12, "clockwise should be negative")
}

func TestReflectMirror(t *testing.T) {
	// incoming at 45 degrees onto a horizontal surface
	in := V(1, -1).Normalize()
	out := in.Reflect(V(0, 1))

	assert.InDelta(t, in.X, out.X, 1e-12)
	assert.InDelta(t, -in.Y, out.Y, 1e-12)
	assert.InDelta(t, in.Length(), out.Length(), 1e-12, "reflection must preserve length")
}

func TestReflectTangentialUnchanged(t *testing.T) {
	in := V(1, 0)
	out := in.Reflect(V(0, 1))

	assert.Equal(t, in, out, "movement parallel to the surface is unchanged")
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 2.0, Clamp(5, 0, 2))
	assert.Equal(t, 0.0, Clamp(-1, 0, 2))
	assert.Equal(t, 1.5, Clamp(1.5, 0, 2))
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(0.3))
	assert.Equal(t, -1.0, Sign(-7))
	assert.Equal(t, 0.0, Sign(0))
}
