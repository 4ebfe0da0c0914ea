package boss

import (
	"testing"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/balance"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/world"
)

func newTestWorld(bal *balance.Provider) *world.World {
	return world.NewWorld(1280, 960, bal)
}

func TestTargetPhaseThresholds(t *testing.T) {
	bal := balance.NewProvider()

	cases := []struct {
		ratio float32
		want  int
	}{
		{1.00, 1},
		{0.76, 1},
		{0.75, 2},
		{0.60, 2},
		{0.50, 3},
		{0.30, 3},
		{0.25, 4},
		{0.01, 4},
	}
	for _, c := range cases {
		if got := targetPhase(bal, c.ratio); got != c.want {
			t.Fatalf("targetPhase(%.2f): got %d want %d", c.ratio, got, c.want)
		}
	}
}

func TestPhaseTrackerStepsOnePhasePerCall(t *testing.T) {
	p := newPhaseTracker()
	var entered []int
	enter := func(phase int) { entered = append(entered, phase) }

	// a burst that crosses several thresholds still walks each phase
	for want := 2; want <= 4; want++ {
		if !p.step("breacher", 4, enter) {
			t.Fatalf("step toward 4 should advance at phase %d", p.Current)
		}
		if p.Current != want {
			t.Fatalf("current after step: got %d want %d", p.Current, want)
		}
	}

	if p.step("breacher", 4, enter) {
		t.Fatal("step at target should not advance")
	}
	if p.step("breacher", 2, enter) {
		t.Fatal("phases never regress")
	}

	if len(entered) != 3 || entered[0] != 2 || entered[1] != 3 || entered[2] != 4 {
		t.Fatalf("enter hooks mismatch: %v", entered)
	}
}

func TestSpawnAddsBossEnemyRecord(t *testing.T) {
	w := newTestWorld(nil)
	ctrl := Spawn(w, KindMainframe)

	b := w.FindEnemy(ctrl.BossID())
	if b == nil {
		t.Fatal("boss enemy record missing")
	}
	if b.Kind != world.BossMainframe {
		t.Fatalf("boss kind: got %d want %d", b.Kind, world.BossMainframe)
	}
	if b.HP <= 0 || b.HP != b.MaxHP {
		t.Fatalf("boss health not initialized: hp=%.1f max=%.1f", b.HP, b.MaxHP)
	}
	if b.Pos != w.ArenaCenter {
		t.Fatalf("boss should spawn at the arena center, got %+v", b.Pos)
	}
	if rd := ctrl.RenderData(); rd.Phase != 1 {
		t.Fatalf("fresh encounter phase: got %d want 1", rd.Phase)
	}
}

func approxEqual(a, b float32) bool {
	const eps = 1e-3
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
