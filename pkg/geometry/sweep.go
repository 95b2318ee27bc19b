// pkg/geometry/sweep.go
package geometry

import "math"

// Contact describes a single hit produced by a swept-circle query.
type Contact struct {
	Point    Vec2    // contact point on the collider surface
	Normal   Vec2    // collider surface normal at the contact
	Distance float64 // travel distance along the sweep direction
}

// rayCircle solves |o + t*d - c| = r for the smallest t >= 0.
// d must be a unit vector. An origin already inside the circle yields t = 0.
func rayCircle(o, d, c Vec2, r float64) (float64, bool) {
	m := o.Sub(c)
	b := m.Dot(d)
	cc := m.LengthSq() - r*r
	if cc <= 0 {
		// already overlapping
		return 0, true
	}
	if b > 0 {
		// moving away
		return 0, false
	}
	disc := b*b - cc
	if disc < 0 {
		return 0, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		t = 0
	}
	return t, true
}

// SweepCircleCircle sweeps a circle of radius r from origin along unit dir
// for maxDist against a static circle (center, cr).
func SweepCircleCircle(origin Vec2, r float64, dir Vec2, maxDist float64, center Vec2, cr float64) (Contact, bool) {
	t, ok := rayCircle(origin, dir, center, r+cr)
	if !ok || t > maxDist {
		return Contact{}, false
	}
	pos := origin.Add(dir.Scale(t))
	normal := pos.Sub(center).Normalize()
	if normal == (Vec2{}) {
		normal = dir.Scale(-1)
	}
	return Contact{
		Point:    center.Add(normal.Scale(cr)),
		Normal:   normal,
		Distance: t,
	}, true
}

// SweepCircleInsideCircle sweeps a circle of radius r moving inside a
// containing circle (center, cr) and reports the contact with its inner
// surface. The normal points back into the containing circle.
func SweepCircleInsideCircle(origin Vec2, r float64, dir Vec2, maxDist float64, center Vec2, cr float64) (Contact, bool) {
	inner := cr - r
	if inner <= 0 {
		return Contact{}, false
	}
	m := origin.Sub(center)
	if m.LengthSq() >= inner*inner {
		// already touching or beyond the wall
		u := m.Normalize()
		return Contact{Point: center.Add(u.Scale(cr)), Normal: u.Scale(-1), Distance: 0}, true
	}
	// exit root of |m + t*d| = inner
	b := m.Dot(dir)
	disc := b*b - (m.LengthSq() - inner*inner)
	if disc < 0 {
		return Contact{}, false
	}
	t := -b + math.Sqrt(disc)
	if t < 0 || t > maxDist {
		return Contact{}, false
	}
	u := m.Add(dir.Scale(t)).Normalize()
	return Contact{Point: center.Add(u.Scale(cr)), Normal: u.Scale(-1), Distance: t}, true
}

// closestOnSegment returns the point on segment [a, b] closest to p.
func closestOnSegment(p, a, b Vec2) Vec2 {
	ab := b.Sub(a)
	l2 := ab.LengthSq()
	if l2 == 0 {
		return a
	}
	t := Clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	return a.Add(ab.Scale(t))
}

// SweepCircleCapsule sweeps a circle of radius r against a capsule defined by
// segment [a, b] with radius cr. The test inflates the capsule by r and casts
// a ray against the two end circles and the two side walls.
func SweepCircleCapsule(origin Vec2, r float64, dir Vec2, maxDist float64, a, b Vec2, cr float64) (Contact, bool) {
	rho := r + cr

	// origin already overlapping the capsule
	q := closestOnSegment(origin, a, b)
	if origin.Distance(q) <= rho {
		n := origin.Sub(q).Normalize()
		if n == (Vec2{}) {
			n = dir.Scale(-1)
		}
		return Contact{Point: q.Add(n.Scale(cr)), Normal: n, Distance: 0}, true
	}

	best := math.Inf(1)
	found := false

	// end circles
	for _, c := range [2]Vec2{a, b} {
		if t, ok := rayCircle(origin, dir, c, rho); ok && t <= maxDist && t < best {
			best = t
			found = true
		}
	}

	// side walls
	ab := b.Sub(a)
	if l := ab.Length(); l > 0 {
		u := ab.Scale(1 / l)
		n := u.Perp()
		for _, s := range [2]float64{1, -1} {
			wn := n.Scale(s)
			denom := dir.Dot(wn)
			if denom >= 0 {
				// parallel or exiting through this wall
				continue
			}
			t := a.Add(wn.Scale(rho)).Sub(origin).Dot(wn) / denom
			if t < 0 || t > maxDist || t >= best {
				continue
			}
			proj := origin.Add(dir.Scale(t)).Sub(a).Dot(u)
			if proj < 0 || proj > l {
				continue
			}
			best = t
			found = true
		}
	}

	if !found {
		return Contact{}, false
	}
	pos := origin.Add(dir.Scale(best))
	cp := closestOnSegment(pos, a, b)
	normal := pos.Sub(cp).Normalize()
	if normal == (Vec2{}) {
		normal = dir.Scale(-1)
	}
	return Contact{Point: cp.Add(normal.Scale(cr)), Normal: normal, Distance: best}, true
}

// SweepRectCircle sweeps an axis-oriented rectangle (half extents hw, hh,
// rotated by rot) against a static circle. The rectangle is approximated by
// its bounding circle, which is sufficient for slender fast projectiles.
func SweepRectCircle(origin Vec2, hw, hh, rot float64, dir Vec2, maxDist float64, center Vec2, cr float64) (Contact, bool) {
	_ = rot
	return SweepCircleCircle(origin, math.Hypot(hw, hh), dir, maxDist, center, cr)
}
