package balance

// defaultValues is the built-in balance sheet. It mirrors the exported
// tuning document: base stats live here, while per-hazard tunables default
// at their point of use so the sheet stays reviewable. Every key can be
// overridden from a YAML balance file either way.
func defaultValues() map[string]float32 {
	return map[string]float32{
		// Player
		"player.speed":         260,
		"player.radius":        10,
		"player.max_hp":        100,
		"player.hurt_cooldown": 0.8,

		// Shared boss pacing
		"boss.phase2_threshold": 0.75,
		"boss.phase3_threshold": 0.50,
		"boss.phase4_threshold": 0.25,
		"boss.contact_cooldown": 0.5,
		"boss.minion_cap":       8,
		"boss.minion_cap_late":  5,

		// Breacher (mode-switching brawler)
		"boss.breacher.base_health":  600,
		"boss.breacher.speed":        85,
		"boss.breacher.radius":       26,
		"boss.breacher.touch_damage": 18,

		// Mainframe (raid-style)
		"boss.mainframe.base_health":  900,
		"boss.mainframe.speed":        60,
		"boss.mainframe.radius":       32,
		"boss.mainframe.touch_damage": 20,
		"boss.mainframe.pylon_count":  4,
		"boss.mainframe.pylon_health": 120,

		// Daemon (arena hazards)
		"boss.daemon.base_health":  700,
		"boss.daemon.speed":        70,
		"boss.daemon.radius":       24,
		"boss.daemon.touch_damage": 15,

		// Wyrm (segmented body)
		"boss.wyrm.base_health":     800,
		"boss.wyrm.speed":           110,
		"boss.wyrm.radius":          22,
		"boss.wyrm.segment_count":   12,
		"boss.wyrm.segment_spacing": 26,

		// Minions
		"minion.health":       40,
		"minion.speed":        120,
		"minion.radius":       8,
		"minion.touch_damage": 8,
	}
}
