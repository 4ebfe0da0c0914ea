package boss

import (
	"testing"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/balance"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/geom"
)

func TestWyrmBodyTrailsTheHead(t *testing.T) {
	w := newTestWorld(nil)
	s := Spawn(w, KindWyrm).(*Wyrm)
	const dt = float32(1.0 / 60.0)

	for range 120 {
		s.Update(w, dt)
	}

	b := w.FindEnemy(s.BossID())
	lead := b.Pos
	for i, seg := range s.segments {
		d := geom.Dist(lead, seg)
		if d > s.spacing+1e-2 {
			t.Fatalf("segment %d lagging: gap %.3f exceeds spacing %.3f", i, d, s.spacing)
		}
		lead = seg
	}
}

func TestWyrmZeroSegmentsFormsWall(t *testing.T) {
	bal := balance.NewProvider()
	bal.Set("boss.wyrm.segment_count", 0)
	w := newTestWorld(bal)
	s := Spawn(w, KindWyrm).(*Wyrm)
	const dt = float32(1.0 / 60.0)

	b := w.FindEnemy(s.BossID())
	b.HP = b.MaxHP * 0.6
	s.Update(w, dt)

	if got := s.RenderData().Phase; got != 2 {
		t.Fatalf("phase: got %d want 2", got)
	}
	if len(s.segments) != 0 {
		t.Fatalf("segments with a zero count: %d", len(s.segments))
	}
	// the bodyless wall still sweeps without incident
	for range 30 {
		s.Update(w, dt)
	}
}

func TestWyrmWallLeavesAGap(t *testing.T) {
	w := newTestWorld(nil)
	s := Spawn(w, KindWyrm).(*Wyrm)
	const dt = float32(1.0 / 60.0)

	b := w.FindEnemy(s.BossID())
	b.HP = b.MaxHP * 0.6
	s.Update(w, dt)
	if got := s.RenderData().Phase; got != 2 {
		t.Fatalf("phase: got %d want 2", got)
	}

	gap := w.Bal.I("boss.wyrm.wall_gap_size", 3)
	wantHole := float32(gap+1) * s.spacing

	b = w.FindEnemy(s.BossID())
	var before, after geom.Vec2
	if s.gapIndex == 0 {
		before, after = b.Pos, s.segments[0]
	} else {
		before, after = s.segments[s.gapIndex-1], s.segments[s.gapIndex]
	}
	if got := geom.Dist(before, after); !approxEqual(got, wantHole) {
		t.Fatalf("hole width: got %.2f want %.2f", got, wantHole)
	}

	// everywhere else the wall is solid
	for i := 1; i < len(s.segments); i++ {
		if i == s.gapIndex {
			continue
		}
		if got := geom.Dist(s.segments[i-1], s.segments[i]); !approxEqual(got, s.spacing) {
			t.Fatalf("wall gap at segment %d: %.2f", i, got)
		}
	}
}

func TestWyrmSplitAndMerge(t *testing.T) {
	w := newTestWorld(nil)
	s := Spawn(w, KindWyrm).(*Wyrm)
	const dt = float32(1.0 / 60.0)

	origR := w.FindEnemy(s.BossID()).R

	b := w.FindEnemy(s.BossID())
	b.HP = b.MaxHP * 0.6
	s.Update(w, dt) // phase 2

	b.HP = b.MaxHP * 0.4
	s.Update(w, dt) // phase 3: head hides, body splits
	b = w.FindEnemy(s.BossID())
	if b.R >= origR {
		t.Fatalf("hidden head should shrink: %.1f -> %.1f", origR, b.R)
	}
	rd := s.RenderData()
	if want := w.Bal.I("boss.wyrm.subworm_count", 3); len(rd.SubWorms) != want {
		t.Fatalf("sub-worms: got %d want %d", len(rd.SubWorms), want)
	}

	b.HP = b.MaxHP * 0.1
	s.Update(w, dt) // phase 4: merge back
	b = w.FindEnemy(s.BossID())
	if !approxEqual(b.R, origR) {
		t.Fatalf("merge should restore the head: got %.1f want %.1f", b.R, origR)
	}
	rd = s.RenderData()
	if len(rd.SubWorms) != 0 {
		t.Fatalf("sub-worms should despawn on merge: %d left", len(rd.SubWorms))
	}
	if rd.Mode != "circling" {
		t.Fatalf("phase 4 opens circling: got %q", rd.Mode)
	}

	// the restore happens exactly once: later updates leave the size alone
	b.R = 5
	s.Update(w, dt)
	if got := w.FindEnemy(s.BossID()).R; got != 5 {
		t.Fatalf("head size restored twice: got %.1f", got)
	}
}

func TestWyrmLungeSubStateCycle(t *testing.T) {
	w := newTestWorld(nil)
	s := Spawn(w, KindWyrm).(*Wyrm)
	const dt = float32(1.0 / 30.0)

	b := w.FindEnemy(s.BossID())
	b.HP = b.MaxHP * 0.1
	for range 3 {
		s.Update(w, dt)
	}
	if got := s.RenderData().Phase; got != 4 {
		t.Fatalf("phase: got %d want 4", got)
	}

	seen := map[string]bool{}
	for i := 0; i < 2000; i++ {
		s.Update(w, dt)
		seen[s.RenderData().Mode] = true
		if seen["aiming"] && seen["lunging"] && seen["recovering"] && seen["circling"] {
			break
		}
	}

	for _, mode := range []string{"circling", "aiming", "lunging", "recovering"} {
		if !seen[mode] {
			t.Fatalf("sub-state %q never reached: seen %v", mode, seen)
		}
	}
	// the cycle never leaves phase 4
	if got := s.RenderData().Phase; got != 4 {
		t.Fatalf("sub-states leaked into the phase counter: %d", got)
	}
}
