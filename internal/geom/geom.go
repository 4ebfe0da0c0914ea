package geom

import "math"

type Vec2 struct{ X, Y float32 }

func (v Vec2) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2    { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float32 { return v.X*o.X + v.Y*o.Y }

// Perp returns v rotated 90 degrees counter-clockwise. Used for strafing
// perpendicular to a facing direction.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// FromAngle returns the unit vector pointing at ang radians.
func FromAngle(ang float32) Vec2 {
	return Vec2{
		X: float32(math.Cos(float64(ang))),
		Y: float32(math.Sin(float64(ang))),
	}
}

func Dist(a, b Vec2) float32 { return a.Sub(b).Len() }

func Dist2(a, b Vec2) float32 {
	d := a.Sub(b)
	return d.X*d.X + d.Y*d.Y
}

func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PointSegmentDist returns the distance from p to the segment a-b.
// A degenerate segment (a == b) collapses to point distance.
func PointSegmentDist(p, a, b Vec2) float32 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return Dist(p, a)
	}
	t := Clamp(p.Sub(a).Dot(ab)/l2, 0, 1)
	closest := a.Add(ab.Mul(t))
	return Dist(p, closest)
}

func CirclesOverlap(aPos Vec2, aR float32, bPos Vec2, bR float32) bool {
	rr := aR + bR
	return Dist2(aPos, bPos) < rr*rr
}

// CircleRectOverlap tests a circle against an axis-aligned rect given by its
// top-left corner and size, via the clamped closest point on the rect.
func CircleRectOverlap(cPos Vec2, cR float32, rectPos Vec2, rectW, rectH float32) bool {
	closest := Vec2{
		X: Clamp(cPos.X, rectPos.X, rectPos.X+rectW),
		Y: Clamp(cPos.Y, rectPos.Y, rectPos.Y+rectH),
	}
	return Dist2(cPos, closest) < cR*cR
}

// BeamHit tests a circle against a rotating beam anchored at origin,
// extending length units along ang. halfWidth is the beam's half thickness.
func BeamHit(cPos Vec2, cR float32, origin Vec2, ang, length, halfWidth float32) bool {
	tip := origin.Add(FromAngle(ang).Mul(length))
	return PointSegmentDist(cPos, origin, tip) < cR+halfWidth
}

// DragChain repositions segments so each trails its leader at exactly
// spacing once it drifts farther than spacing. segments[0] follows head;
// closer segments are left alone, which keeps convergence stable with no
// oscillation.
func DragChain(head Vec2, segments []Vec2, spacing float32) {
	lead := head
	for i := range segments {
		d := segments[i].Sub(lead)
		if l := d.Len(); l > spacing && l > 0 {
			segments[i] = lead.Add(d.Mul(spacing / l))
		}
		lead = segments[i]
	}
}
