package telemetry

import (
	"sync"
	"time"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/commons/logger_config"
)

type Event struct {
	Kind string
	I    int
	F    float32
	At   time.Time
}

// Batch is one flush window of encounter telemetry.
type Batch struct {
	PlayerDmg   float32
	BossDmg     float32
	PhaseEnters int
	Frames      int
	AvgDt       float32
}

type Sink struct {
	In   chan Event
	quit chan struct{}

	closeOnce sync.Once
}

// NewSink starts a sink that logs a batch line every couple of seconds.
func NewSink() *Sink {
	return newSink(2*time.Second, func(b Batch) {
		if b.Frames == 0 && b.PlayerDmg == 0 && b.BossDmg == 0 && b.PhaseEnters == 0 {
			return
		}
		logger_config.Infof(
			"[telemetry] playerDmg=%.0f bossDmg=%.0f phases=%d frames=%d avgDt=%.4fs",
			b.PlayerDmg, b.BossDmg, b.PhaseEnters, b.Frames, b.AvgDt,
		)
	})
}

func newSink(flushEvery time.Duration, flush func(Batch)) *Sink {
	s := &Sink{
		In:   make(chan Event, 256),
		quit: make(chan struct{}),
	}
	go s.loop(flushEvery, flush)
	return s
}

func (s *Sink) Close() {
	s.closeOnce.Do(func() { close(s.quit) })
}

func (s *Sink) loop(flushEvery time.Duration, flush func(Batch)) {
	ticker := time.NewTicker(flushEvery)
	defer ticker.Stop()

	var batch Batch
	var dtSum float32

	for {
		select {
		case <-s.quit:
			return

		case ev := <-s.In:
			switch ev.Kind {
			case "player_damage":
				batch.PlayerDmg += ev.F
			case "boss_damage":
				batch.BossDmg += ev.F
			case "phase":
				batch.PhaseEnters += ev.I
			case "frame":
				batch.Frames++
				dtSum += ev.F
			}

		case <-ticker.C:
			if batch.Frames > 0 {
				batch.AvgDt = dtSum / float32(batch.Frames)
			}
			if flush != nil {
				flush(batch)
			}
			batch = Batch{}
			dtSum = 0
		}
	}
}
