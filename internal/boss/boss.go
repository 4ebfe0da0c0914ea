package boss

import (
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/commons/logger_config"
	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/world"
)

// Kind is the closed set of boss encounters. The dispatch in Spawn is a
// switch over this type, so adding or removing a boss is a compile-checked
// change rather than a string match.
type Kind int

const (
	KindBreacher Kind = iota // mode-switching brawler
	KindMainframe            // raid-style, pylon-gated
	KindDaemon               // arena hazards
	KindWyrm                 // segmented body
)

func (k Kind) String() string {
	switch k {
	case KindBreacher:
		return "breacher"
	case KindMainframe:
		return "mainframe"
	case KindDaemon:
		return "daemon"
	case KindWyrm:
		return "wyrm"
	}
	return "unknown"
}

// Controller drives one boss encounter. Update is called exactly once per
// simulation tick, after the world's own tick, and is the only writer to
// the controller's hazard state. RenderData is the only sanctioned read
// path for the presentation layer.
type Controller interface {
	Update(w *world.World, dt float32)
	RenderData() RenderData
	BossID() int
}

// Spawn adds the boss's enemy record to the shared population at the arena
// center and returns its controller. The enemy record has the same shape as
// every other enemy, so the normal damage and removal pipeline applies.
func Spawn(w *world.World, kind Kind) Controller {
	bal := w.Bal
	name := kind.String()

	e := world.Enemy{
		Pos:         w.ArenaCenter,
		Kind:        enemyKindFor(kind),
		Speed:       bal.F("boss."+name+".speed", 80),
		R:           bal.F("boss."+name+".radius", 25),
		MaxHP:       bal.F("boss."+name+".base_health", 600),
		HP:          bal.F("boss."+name+".base_health", 600),
		TouchDamage: bal.F("boss."+name+".touch_damage", 15),
	}
	id := w.AddEnemy(e)
	logger_config.Infof("boss: spawned %s (id=%d hp=%.0f)", name, id, e.MaxHP)

	switch kind {
	case KindBreacher:
		return newBreacher(id, w)
	case KindMainframe:
		return newMainframe(id, w)
	case KindDaemon:
		return newDaemon(id, w)
	case KindWyrm:
		return newWyrm(id, w)
	}
	return newBreacher(id, w)
}

func enemyKindFor(kind Kind) world.EnemyKind {
	switch kind {
	case KindMainframe:
		return world.BossMainframe
	case KindDaemon:
		return world.BossDaemon
	case KindWyrm:
		return world.BossWyrm
	}
	return world.BossBreacher
}
