// README: Generation guard so stale distance lookups never overwrite a newer quote.
package quote

import (
	"context"
	"sync"
)

// Guard hands out monotonically increasing generation numbers, one per
// recompute. A lookup that finishes after its generation was superseded
// must be discarded, or the displayed estimate can regress to stale
// distance data.
type Guard struct {
	mu  sync.Mutex
	seq uint64
}

// Next starts a new generation, superseding all earlier ones.
func (g *Guard) Next() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return g.seq
}

// Current reports whether seq is still the latest generation.
func (g *Guard) Current(seq uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return seq == g.seq
}

// Estimator is the recompute-on-change wrapper around Service for callers
// that re-quote on every input edit. Each Update supersedes the ones before
// it; a superseded Update reports ok=false and its result must be dropped.
type Estimator struct {
	svc   *Service
	guard Guard
}

func NewEstimator(svc *Service) *Estimator {
	return &Estimator{svc: svc}
}

// Update computes a quote for the latest inputs. ok is false when a newer
// Update started while this one's distance lookup was in flight.
func (e *Estimator) Update(ctx context.Context, req QuoteRequest) (Quote, bool, error) {
	seq := e.guard.Next()
	q, err := e.svc.Quote(ctx, req)
	if !e.guard.Current(seq) {
		return Quote{}, false, nil
	}
	return q, true, err
}
