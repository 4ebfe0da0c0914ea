package jobs

import (
	"math"
	"sync"
)

type MinionRole int

const (
	RoleDrone MinionRole = iota
	RoleStinger
)

type IntentMode int

const (
	IntentModePressure IntentMode = iota // close the distance
	IntentModeKite                       // hold a shooting range
)

type MinionSnapshot struct {
	MinionID int
	Role     MinionRole
	X        float32
	Y        float32
	Radius   float32
}

type IntentRequest struct {
	Tick    uint64
	PlayerX float32
	PlayerY float32
	Minions []MinionSnapshot
}

type MinionIntent struct {
	MinionID   int
	MoveX      float32
	MoveY      float32
	SpeedScale float32
	Mode       IntentMode
}

type IntentResult struct {
	Tick    uint64
	Intents []MinionIntent
}

type IntentPool struct {
	Req  chan IntentRequest
	Res  chan IntentResult
	quit chan struct{}

	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewIntentPool(workerCount, queueSize int) *IntentPool {
	if workerCount < 1 {
		workerCount = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	p := &IntentPool{
		Req:  make(chan IntentRequest, queueSize),
		Res:  make(chan IntentResult, queueSize),
		quit: make(chan struct{}),
	}

	p.wg.Add(workerCount)
	for range workerCount {
		go p.worker()
	}

	return p
}

func (p *IntentPool) Close() {
	p.closeOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
	})
}

func (p *IntentPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.quit:
			return

		case req := <-p.Req:
			res := ComputeIntents(req)

			// Never block worker shutdown on a full result queue.
			select {
			case <-p.quit:
				return
			case p.Res <- res:
			default:
			}
		}
	}
}

// stingerRange is the distance stingers try to hold; inside it they back
// off instead of closing.
const stingerRange = 160

// ComputeIntents is a pure function of its request so pool workers and the
// synchronous fallback produce identical results.
func ComputeIntents(req IntentRequest) IntentResult {
	out := IntentResult{
		Tick:    req.Tick,
		Intents: make([]MinionIntent, len(req.Minions)),
	}

	for i, m := range req.Minions {
		dx := req.PlayerX - m.X
		dy := req.PlayerY - m.Y
		dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
		dirX, dirY := normalize(dx, dy)

		in := MinionIntent{
			MinionID:   m.MinionID,
			MoveX:      dirX,
			MoveY:      dirY,
			SpeedScale: 1,
			Mode:       IntentModePressure,
		}

		if m.Role == RoleStinger {
			in.Mode = IntentModeKite
			switch {
			case dist < stingerRange*0.8:
				in.MoveX, in.MoveY = -dirX, -dirY
				in.SpeedScale = 1.2
			case dist < stingerRange*1.2:
				// in the band: strafe around the player
				in.MoveX, in.MoveY = -dirY, dirX
				in.SpeedScale = 0.7
			}
		}

		out.Intents[i] = in
	}

	return out
}

func normalize(x, y float32) (float32, float32) {
	m2 := x*x + y*y
	if m2 == 0 {
		return 0, 0
	}

	inv := float32(1.0 / math.Sqrt(float64(m2)))
	return x * inv, y * inv
}
