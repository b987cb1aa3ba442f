package sim

import "errors"

// Ticket identifies a pending gate request.
type Ticket uint64

// Decision is the external outcome of a gate.
type Decision int

const (
	Declined Decision = iota
	Approved
)

// Gate errors.
var (
	ErrGatePending   = errors.New("sim: a request for this effect is already pending")
	ErrUnknownTicket = errors.New("sim: unknown or already resolved ticket")
	ErrNotAvailable  = errors.New("sim: effect not available")
)

type pendingRequest struct {
	effect Effect
	runID  int
}

// gateBook tracks pending tickets. At most one ticket per effect is pending
// and each ticket resolves once.
type gateBook struct {
	next    Ticket
	pending map[Ticket]pendingRequest
}

func (g *gateBook) open(e Effect, runID int) (Ticket, error) {
	if g.pending == nil {
		g.pending = make(map[Ticket]pendingRequest)
	}
	for _, req := range g.pending {
		if req.effect == e {
			return 0, ErrGatePending
		}
	}
	g.next++
	g.pending[g.next] = pendingRequest{effect: e, runID: runID}
	return g.next, nil
}

func (g *gateBook) close(t Ticket) (pendingRequest, error) {
	req, ok := g.pending[t]
	if !ok {
		return pendingRequest{}, ErrUnknownTicket
	}
	delete(g.pending, t)
	return req, nil
}

func (g *gateBook) isPending(e Effect) bool {
	for _, req := range g.pending {
		if req.effect == e {
			return true
		}
	}
	return false
}
