package boss

import (
	"math"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/geom"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/world"
)

type WyrmSubState int

const (
	SubCircling WyrmSubState = iota
	SubAiming
	SubLunging
	SubRecovering
)

func (s WyrmSubState) String() string {
	switch s {
	case SubAiming:
		return "aiming"
	case SubLunging:
		return "lunging"
	case SubRecovering:
		return "recovering"
	}
	return "circling"
}

// SubWorm is an autonomous short-bodied worm used while the main body is
// split in phase 3.
type SubWorm struct {
	Head     world.Vec2
	Heading  float32
	Segments []world.Vec2
}

// Wyrm is the segmented-body boss: a drag-chain body with phase-specific
// formations. Phase 1 chases freely; phase 2 becomes a rigid sweeping wall
// with a gap; phase 3 hides the head and splits into sub-worms; phase 4 is
// a constricting orbit with a telegraphed lunge.
type Wyrm struct {
	id    int
	phase phaseTracker

	segments []world.Vec2
	spacing  float32
	segR     float32

	// phase 2 wall
	wallAngle float32
	gapIndex  int

	// phase 3 split
	origHeadR float32
	subWorms  []SubWorm

	// phase 4 sub-state machine
	sub          WyrmSubState
	subTimer     float32
	circleAngle  float32
	circleRadius float32
	lungeDir     world.Vec2

	contact contactClock

	bossPos world.Vec2
	bossR   float32
}

func newWyrm(id int, w *world.World) *Wyrm {
	bal := w.Bal
	s := &Wyrm{
		id:      id,
		phase:   newPhaseTracker(),
		spacing: bal.F("boss.wyrm.segment_spacing", 26),
		segR:    bal.F("boss.wyrm.segment_radius", 14),
	}
	count := bal.I("boss.wyrm.segment_count", 12)
	head := w.ArenaCenter
	s.segments = make([]world.Vec2, count)
	for i := range s.segments {
		s.segments[i] = world.Vec2{X: head.X, Y: head.Y + float32(i+1)*s.spacing}
	}
	return s
}

func (s *Wyrm) BossID() int { return s.id }

func (s *Wyrm) Update(w *world.World, dt float32) {
	b := w.FindEnemy(s.id)
	if b == nil {
		return
	}
	s.contact.tick(dt)

	s.phase.step("wyrm", targetPhase(w.Bal, b.HP/b.MaxHP), func(p int) {
		s.enterPhase(w, b, p)
	})

	switch s.phase.Current {
	case 1:
		chasePlayer(b, w, 1)
		integrate(b, w, dt)
		geom.DragChain(b.Pos, s.segments, s.spacing)
		s.bodyContact(w, b, true)
	case 2:
		s.wallBody(w, b, dt)
	case 3:
		s.splitBody(w, b, dt)
	case 4:
		s.lungeBody(w, b, dt)
	}

	s.bossPos, s.bossR = b.Pos, b.R
}

func (s *Wyrm) enterPhase(w *world.World, b *world.Enemy, phase int) {
	bal := w.Bal
	switch phase {
	case 2:
		s.wallAngle = 0
		s.gapIndex = 0
		if len(s.segments) > 0 {
			s.gapIndex = w.RandIntn(len(s.segments))
		}
	case 3:
		s.origHeadR = b.R
		b.R = bal.F("boss.wyrm.head_hidden_radius", 2)
		count := bal.I("boss.wyrm.subworm_count", 3)
		segs := bal.I("boss.wyrm.subworm_segments", 5)
		s.subWorms = make([]SubWorm, count)
		for n := range s.subWorms {
			heading := float32(n) * 2 * math.Pi / float32(count)
			sw := SubWorm{
				Head:     b.Pos,
				Heading:  heading,
				Segments: make([]world.Vec2, segs),
			}
			for i := range sw.Segments {
				sw.Segments[i] = b.Pos
			}
			s.subWorms[n] = sw
		}
	case 4:
		// merge back: restore the head's collision size exactly once
		if s.origHeadR > 0 {
			b.R = s.origHeadR
			s.origHeadR = 0
		}
		s.subWorms = nil
		s.sub = SubCircling
		s.circleRadius = bal.F("boss.wyrm.circle_radius_start", 260)
		s.circleAngle = 0
	}
}

// wallBody sweeps a rigid segment wall around the arena center, leaving a
// pass-through gap.
func (s *Wyrm) wallBody(w *world.World, b *world.Enemy, dt float32) {
	bal := w.Bal
	moveToPoint(b, w.ArenaCenter, 6)
	integrate(b, w, dt)

	s.wallAngle += bal.F("boss.wyrm.wall_rot_speed", 0.5) * dt
	gap := bal.I("boss.wyrm.wall_gap_size", 3)
	dir := geom.FromAngle(s.wallAngle)

	for i := range s.segments {
		slot := i + 1
		if i >= s.gapIndex {
			slot += gap
		}
		s.segments[i] = b.Pos.Add(dir.Mul(float32(slot) * s.spacing))
	}
	s.bodyContact(w, b, true)
}

// splitBody drives the autonomous sub-worms while the main head hides.
func (s *Wyrm) splitBody(w *world.World, b *world.Enemy, dt float32) {
	bal := w.Bal
	stayPut(b)

	speed := bal.F("boss.wyrm.subworm_speed", 130)
	turnRate := bal.F("boss.wyrm.subworm_turn_rate", 2.5)

	for n := range s.subWorms {
		sw := &s.subWorms[n]

		want := w.Player.Pos.Sub(sw.Head)
		if want.X != 0 || want.Y != 0 {
			target := float32(math.Atan2(float64(want.Y), float64(want.X)))
			diff := target - sw.Heading
			for diff > math.Pi {
				diff -= 2 * math.Pi
			}
			for diff < -math.Pi {
				diff += 2 * math.Pi
			}
			sw.Heading += geom.Clamp(diff, -turnRate*dt, turnRate*dt)
		}

		sw.Head = sw.Head.Add(geom.FromAngle(sw.Heading).Mul(speed * dt))
		sw.Head = w.ClampToArena(sw.Head, s.segR)
		geom.DragChain(sw.Head, sw.Segments, s.spacing)

		if s.contact.touch(w, sw.Head, s.segR, b.TouchDamage) {
			continue
		}
		for i := range sw.Segments {
			if s.contact.touch(w, sw.Segments[i], s.segR, bal.F("boss.wyrm.segment_touch_damage", 8)) {
				break
			}
		}
	}

	// the hidden main body trails its parked head so the merge looks right
	geom.DragChain(b.Pos, s.segments, s.spacing)
}

// lungeBody is the phase 4 sub-state machine. The sub-state cycle
// (circling, aiming, lunging, recovering) lives entirely inside phase 4;
// returning to circling is not a phase regression.
func (s *Wyrm) lungeBody(w *world.World, b *world.Enemy, dt float32) {
	bal := w.Bal
	switch s.sub {
	case SubCircling:
		s.circleAngle += bal.F("boss.wyrm.circle_speed", 2) * dt
		s.circleRadius -= bal.F("boss.wyrm.circle_shrink_rate", 30) * dt

		orbit := w.Player.Pos.Add(geom.FromAngle(s.circleAngle).Mul(s.circleRadius))
		to := orbit.Sub(b.Pos)
		if to.X == 0 && to.Y == 0 {
			stayPut(b)
		} else {
			b.Vel = to.Norm().Mul(b.Speed * 1.3)
		}

		if s.circleRadius <= bal.F("boss.wyrm.circle_min_radius", 120) {
			s.circleRadius = bal.F("boss.wyrm.circle_radius_start", 260)
			s.sub = SubAiming
			s.subTimer = bal.F("boss.wyrm.aim_duration", 0.8)
		}
	case SubAiming:
		stayPut(b)
		s.subTimer -= dt
		if s.subTimer <= 0 {
			// lunge vector locks in at the end of the telegraph
			dir := w.Player.Pos.Sub(b.Pos).Norm()
			if dir.X == 0 && dir.Y == 0 {
				dir = world.Vec2{X: 1}
			}
			s.lungeDir = dir
			s.sub = SubLunging
			s.subTimer = bal.F("boss.wyrm.lunge_max_duration", 1.2)
		}
	case SubLunging:
		b.Vel = s.lungeDir.Mul(bal.F("boss.wyrm.lunge_speed", 420))
		s.subTimer -= dt
	case SubRecovering:
		stayPut(b)
		s.subTimer -= dt
		if s.subTimer <= 0 {
			s.sub = SubCircling
		}
	}

	integrate(b, w, dt)

	if s.sub == SubLunging {
		if s.subTimer <= 0 || s.atArenaEdge(w, b) {
			s.sub = SubRecovering
			s.subTimer = bal.F("boss.wyrm.recover_duration", 1)
		}
	}

	geom.DragChain(b.Pos, s.segments, s.spacing)
	s.bodyContact(w, b, true)
}

func (s *Wyrm) atArenaEdge(w *world.World, b *world.Enemy) bool {
	return b.Pos.X <= b.R || b.Pos.X >= w.W-b.R ||
		b.Pos.Y <= b.R || b.Pos.Y >= w.H-b.R
}

// bodyContact applies head and segment touch damage. At most one touch
// lands per call; the shared contact clock spaces out the rest.
func (s *Wyrm) bodyContact(w *world.World, b *world.Enemy, withHead bool) {
	if withHead && s.contact.touch(w, b.Pos, b.R, b.TouchDamage) {
		return
	}
	segDmg := w.Bal.F("boss.wyrm.segment_touch_damage", 8)
	for i := range s.segments {
		if s.contact.touch(w, s.segments[i], s.segR, segDmg) {
			return
		}
	}
}

func (s *Wyrm) RenderData() RenderData {
	rd := RenderData{
		Kind:    KindWyrm,
		Phase:   s.phase.Current,
		BossPos: s.bossPos,
		BossR:   s.bossR,
	}
	if s.phase.Current == 4 {
		rd.Mode = s.sub.String()
	}
	rd.Segments = append(rd.Segments, s.segments...)
	for i := range s.subWorms {
		sw := s.subWorms[i]
		cp := SubWorm{
			Head:     sw.Head,
			Heading:  sw.Heading,
			Segments: append([]world.Vec2(nil), sw.Segments...),
		}
		rd.SubWorms = append(rd.SubWorms, cp)
	}
	return rd
}
