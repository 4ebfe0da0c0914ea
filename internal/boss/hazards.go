package boss

import (
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/geom"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/world"
)

// Hazard sub-entities are value types owned exclusively by their
// controller. IDs exist for the renderer (stable identity across frames),
// not for lookup.

type idGen struct{ next int }

func (g *idGen) id() int {
	g.next++
	return g.next
}

// DamageZone telegraphs for Warning seconds, then deals contact ticks, then
// fires a one-time pop shortly before expiry.
type DamageZone struct {
	ID int

	Pos world.Vec2
	R   float32

	Lifetime    float32
	MaxLifetime float32
	Warning     float32

	TickDamage   float32
	PopDamage    float32
	PopThreshold float32
	HasPopped    bool
}

func (z *DamageZone) Active() bool { return z.Lifetime >= z.Warning }

// updateDamageZones advances lifetimes, applies tick and pop damage through
// the shared funnel, and drops expired zones in place.
func updateDamageZones(zones []DamageZone, w *world.World, dt float32) []DamageZone {
	out := zones[:0]
	for i := range zones {
		z := zones[i]
		z.Lifetime += dt
		inside := geom.CirclesOverlap(z.Pos, z.R, w.Player.Pos, w.Player.R)

		// The pop fires exactly once per zone, whether or not it connects.
		// It resolves before the expiry check so a large step that jumps
		// straight past MaxLifetime still delivers it.
		if !z.HasPopped && z.Lifetime >= z.MaxLifetime-z.PopThreshold {
			z.HasPopped = true
			if inside {
				w.HurtPlayer(z.PopDamage)
			}
			w.Bursts = append(w.Bursts, world.Burst{Pos: z.Pos, Count: 10})
		}
		if z.Lifetime >= z.MaxLifetime {
			continue
		}

		if z.Active() && inside {
			w.HurtPlayer(z.TickDamage)
		}
		out = append(out, z)
	}
	return out
}

// Beam is a rotating laser anchored to a moving origin. It deals no damage
// during its warmup window.
type Beam struct {
	ID int

	Angle     float32
	RotSpeed  float32
	Length    float32
	HalfWidth float32
	Damage    float32

	Warmup float32
	Age    float32
}

func (b *Beam) Active() bool { return b.Age >= b.Warmup }

func updateBeams(beams []Beam, origin world.Vec2, w *world.World, dt float32) {
	for i := range beams {
		b := &beams[i]
		b.Age += dt
		b.Angle += b.RotSpeed * dt
		if !b.Active() {
			continue
		}
		if geom.BeamHit(w.Player.Pos, w.Player.R, origin, b.Angle, b.Length, b.HalfWidth) {
			w.HurtPlayer(b.Damage)
		}
	}
}

// VoidZone telegraphs for WarningTime, burns for ActiveTime, then expires.
type VoidZone struct {
	ID int

	Pos world.Vec2
	R   float32

	Age         float32
	WarningTime float32
	ActiveTime  float32
	Damage      float32
}

func (v *VoidZone) Active() bool { return v.Age >= v.WarningTime }

func updateVoidZones(voids []VoidZone, w *world.World, dt float32) []VoidZone {
	out := voids[:0]
	for i := range voids {
		v := voids[i]
		v.Age += dt
		if v.Age >= v.WarningTime+v.ActiveTime {
			continue
		}
		if v.Active() && geom.CirclesOverlap(v.Pos, v.R, w.Player.Pos, w.Player.R) {
			w.HurtPlayer(v.Damage)
		}
		out = append(out, v)
	}
	return out
}

// Pylon mirrors a destructible node into the shared enemy population; the
// mirror's health is authoritative so the normal damage pipeline kills it.
type Pylon struct {
	ID int // enemy id of the mirror record

	Pos       world.Vec2
	ShotTimer float32
	Destroyed bool
}

// Rift is a rotating line hazard anchored at the arena center, spanning
// Length outward on both sides. Like beams it deals no damage during its
// warmup window.
type Rift struct {
	ID int

	Angle     float32
	RotSpeed  float32
	Length    float32
	HalfWidth float32
	Damage    float32

	Warmup float32
	Age    float32
}

func (r *Rift) Active() bool { return r.Age >= r.Warmup }

func updateRifts(rifts []Rift, center world.Vec2, w *world.World, dt float32) {
	for i := range rifts {
		r := &rifts[i]
		r.Age += dt
		r.Angle += r.RotSpeed * dt
		if !r.Active() {
			continue
		}
		a := center.Add(geom.FromAngle(r.Angle).Mul(r.Length))
		b := center.Sub(geom.FromAngle(r.Angle).Mul(r.Length))
		if geom.PointSegmentDist(w.Player.Pos, a, b) < w.Player.R+r.HalfWidth {
			w.HurtPlayer(r.Damage)
		}
	}
}

// GravityWell pulls the player toward its center while they are inside the
// pull radius. It deals no damage itself.
type GravityWell struct {
	ID int

	Pos  world.Vec2
	R    float32
	Pull float32
	Life float32
}

func updateGravityWells(wells []GravityWell, w *world.World, dt float32) []GravityWell {
	out := wells[:0]
	for i := range wells {
		g := wells[i]
		g.Life -= dt
		if g.Life <= 0 {
			continue
		}
		to := g.Pos.Sub(w.Player.Pos)
		if d := to.Len(); d > 0 && d < g.R {
			// stronger near the center
			strength := g.Pull * (1 - d/g.R)
			w.Player.Pos = w.Player.Pos.Add(to.Norm().Mul(strength * dt))
			w.Player.Pos = w.ClampToArena(w.Player.Pos, w.Player.R)
		}
		out = append(out, g)
	}
	return out
}

// TrailBlob is one drop of the hazard trail a boss leaves behind itself.
type TrailBlob struct {
	ID int

	Pos      world.Vec2
	R        float32
	Age      float32
	Lifetime float32
	Damage   float32
}

func updateTrail(trail []TrailBlob, w *world.World, dt float32) []TrailBlob {
	out := trail[:0]
	for i := range trail {
		t := trail[i]
		t.Age += dt
		if t.Age >= t.Lifetime {
			continue
		}
		if geom.CirclesOverlap(t.Pos, t.R, w.Player.Pos, w.Player.R) {
			w.HurtPlayer(t.Damage)
		}
		out = append(out, t)
	}
	return out
}

// ForceField is a pulsing push or pull centered on its owner.
type ForceField struct {
	ID int

	Pos      world.Vec2
	R        float32
	Strength float32 // positive pushes away, negative pulls in
	Age      float32
	Duration float32
}

func updateForceFields(fields []ForceField, w *world.World, dt float32) []ForceField {
	out := fields[:0]
	for i := range fields {
		f := fields[i]
		f.Age += dt
		if f.Age >= f.Duration {
			continue
		}
		to := w.Player.Pos.Sub(f.Pos)
		if d := to.Len(); d > 0 && d < f.R {
			w.Player.Pos = w.Player.Pos.Add(to.Norm().Mul(f.Strength * dt))
			w.Player.Pos = w.ClampToArena(w.Player.Pos, w.Player.R)
		}
		out = append(out, f)
	}
	return out
}
