package tower

import (
	"math"

	"github.com/vovakirdan/stack-tower/internal/games/tower/sim"
)

// Resolution is a gate decision for one ticket.
type Resolution struct {
	Ticket   sim.Ticket
	Decision sim.Decision
}

// Gate decides whether a requested effect is granted. Begin starts the
// external flow for a ticket; Poll advances it by dt nominal ticks and
// returns the decisions reached since the last call.
type Gate interface {
	Begin(t sim.Ticket, e sim.Effect)
	Cancel(t sim.Ticket)
	Poll(dt float64) []Resolution
}

// InstantGate approves every request on the next poll.
type InstantGate struct {
	queue []Resolution
}

func (g *InstantGate) Begin(t sim.Ticket, _ sim.Effect) {
	g.queue = append(g.queue, Resolution{Ticket: t, Decision: sim.Approved})
}

func (g *InstantGate) Cancel(t sim.Ticket) {
	for i := range g.queue {
		if g.queue[i].Ticket == t {
			g.queue[i].Decision = sim.Declined
		}
	}
}

func (g *InstantGate) Poll(float64) []Resolution {
	out := g.queue
	g.queue = nil
	return out
}

// DefaultCountdown is the interstitial length in nominal ticks (5 s).
const DefaultCountdown = 300

type countdown struct {
	ticket    sim.Ticket
	effect    sim.Effect
	remaining float64
	cancelled bool
}

// CountdownGate shows one interstitial at a time and approves its ticket
// when the countdown runs out. A cancelled ticket is declined.
type CountdownGate struct {
	Duration float64
	queue    []countdown
}

// NewCountdownGate returns a gate with the given countdown in nominal ticks.
func NewCountdownGate(ticks float64) *CountdownGate {
	if ticks <= 0 {
		ticks = DefaultCountdown
	}
	return &CountdownGate{Duration: ticks}
}

func (g *CountdownGate) Begin(t sim.Ticket, e sim.Effect) {
	g.queue = append(g.queue, countdown{ticket: t, effect: e, remaining: g.Duration})
}

func (g *CountdownGate) Cancel(t sim.Ticket) {
	for i := range g.queue {
		if g.queue[i].ticket == t {
			g.queue[i].cancelled = true
		}
	}
}

func (g *CountdownGate) Poll(dt float64) []Resolution {
	var out []Resolution
	kept := g.queue[:0]
	head := true
	for _, c := range g.queue {
		switch {
		case c.cancelled:
			out = append(out, Resolution{Ticket: c.ticket, Decision: sim.Declined})
			continue
		case head:
			head = false
			c.remaining -= dt
			if c.remaining <= 0 {
				out = append(out, Resolution{Ticket: c.ticket, Decision: sim.Approved})
				continue
			}
		}
		kept = append(kept, c)
	}
	g.queue = kept
	return out
}

// Active returns the interstitial currently showing and its whole seconds
// left.
func (g *CountdownGate) Active() (sim.Effect, int, bool) {
	for _, c := range g.queue {
		if !c.cancelled {
			return c.effect, int(math.Ceil(c.remaining / 60)), true
		}
	}
	return 0, 0, false
}

// overlayGate is implemented by gates that cover the game while deciding.
type overlayGate interface {
	Active() (sim.Effect, int, bool)
}
