package world

import "github.com/wolfgangpeters02/defend-and-descend-sub008/internal/geom"

// Vec2 is re-exported so world code and its callers share one vector type
// with the geometry helpers.
type Vec2 = geom.Vec2

type EnemyKind int

const (
	EnemyDrone EnemyKind = iota
	EnemyStinger
	EnemyPylon
	BossBreacher
	BossMainframe
	BossDaemon
	BossWyrm
)

func (k EnemyKind) IsBoss() bool {
	switch k {
	case BossBreacher, BossMainframe, BossDaemon, BossWyrm:
		return true
	}
	return false
}

// IsMinion reports whether the world's chase AI moves this enemy. Bosses
// steer themselves; pylons never move.
func (k EnemyKind) IsMinion() bool {
	return k == EnemyDrone || k == EnemyStinger
}
