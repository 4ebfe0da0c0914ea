package boss

import (
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/balance"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/commons/logger_config"
)

// phaseTracker is the shared dispatcher state. Phases only ever move
// forward, and only one step per tick: a burst that drops the boss across
// two thresholds in a single tick still walks through the intermediate
// phase entry on the next tick.
type phaseTracker struct {
	Current int
}

func newPhaseTracker() phaseTracker { return phaseTracker{Current: 1} }

// targetPhase maps a health ratio onto the descending thresholds.
func targetPhase(bal *balance.Provider, hpRatio float32) int {
	switch {
	case hpRatio <= bal.F("boss.phase4_threshold", 0.25):
		return 4
	case hpRatio <= bal.F("boss.phase3_threshold", 0.50):
		return 3
	case hpRatio <= bal.F("boss.phase2_threshold", 0.75):
		return 2
	default:
		return 1
	}
}

// step advances at most one phase toward target, running enter exactly once
// for the phase just entered. Callers that gate a transition (pylons) clamp
// target before calling.
func (p *phaseTracker) step(name string, target int, enter func(phase int)) bool {
	if target <= p.Current {
		return false
	}
	p.Current++
	logger_config.Infof("boss: %s entering phase %d", name, p.Current)
	if enter != nil {
		enter(p.Current)
	}
	return true
}
