package refresh

import (
	"context"
	"log"
	"time"

	"github.com/jasonacox/vibescape/internal/imagegen"
	"github.com/jasonacox/vibescape/internal/store"
	"github.com/jasonacox/vibescape/internal/viewer"
)

const (
	// sessionSweepInterval matches the viewer TTL granularity.
	sessionSweepInterval = time.Minute

	// pruneInterval and retainGenerations bound the generation
	// history table.
	pruneInterval     = 24 * time.Hour
	retainGenerations = 30 * 24 * time.Hour
)

// Scheduler drives the periodic work: refreshing the scene while
// viewers are connected, expiring idle sessions, and pruning old
// generation history.
type Scheduler struct {
	svc      *imagegen.Service
	tracker  *viewer.Tracker
	store    *store.Store
	interval time.Duration
}

func New(svc *imagegen.Service, tracker *viewer.Tracker, st *store.Store, interval time.Duration) *Scheduler {
	return &Scheduler{
		svc:      svc,
		tracker:  tracker,
		store:    st,
		interval: interval,
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	s.prune()

	refreshTicker := time.NewTicker(s.interval)
	sweepTicker := time.NewTicker(sessionSweepInterval)
	pruneTicker := time.NewTicker(pruneInterval)
	defer refreshTicker.Stop()
	defer sweepTicker.Stop()
	defer pruneTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("refresh: shutting down")
			return
		case <-refreshTicker.C:
			s.refresh()
		case <-sweepTicker.C:
			s.tracker.Sweep()
		case <-pruneTicker.C:
			s.prune()
		}
	}
}

// refresh regenerates the scene only while someone is watching.
func (s *Scheduler) refresh() {
	if s.tracker.Count() == 0 {
		return
	}
	s.svc.RefreshIfStale()
}

func (s *Scheduler) prune() {
	if s.store == nil {
		return
	}

	pruned, err := s.store.PruneGenerationsBefore(time.Now().Add(-retainGenerations))
	if err != nil {
		log.Printf("refresh: prune generations: %v", err)
		return
	}
	if pruned > 0 {
		log.Printf("refresh: pruned %d old generation records", pruned)
	}
}
