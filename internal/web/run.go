package web

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mbrt/algfinder/internal/cfen"
	"github.com/mbrt/algfinder/internal/cube"
	"github.com/mbrt/algfinder/internal/search"
	"github.com/mbrt/algfinder/internal/store"
)

// run tracks one in-flight or completed search launched via the API: its
// cancellation function, and the set of live websocket subscribers that
// should receive results as they are produced.
type run struct {
	id          string
	startCFEN   string
	patternCFEN string
	cancel      context.CancelFunc

	mu          sync.Mutex
	subscribers map[chan search.SearchResult]struct{}
}

func newRun(id, startCFEN, patternCFEN string, cancel context.CancelFunc) *run {
	return &run{
		id:          id,
		startCFEN:   startCFEN,
		patternCFEN: patternCFEN,
		cancel:      cancel,
		subscribers: make(map[chan search.SearchResult]struct{}),
	}
}

func (r *run) subscribe() chan search.SearchResult {
	ch := make(chan search.SearchResult, 64)
	r.mu.Lock()
	r.subscribers[ch] = struct{}{}
	r.mu.Unlock()
	return ch
}

func (r *run) unsubscribe(ch chan search.SearchResult) {
	r.mu.Lock()
	delete(r.subscribers, ch)
	r.mu.Unlock()
}

func (r *run) broadcast(result search.SearchResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for ch := range r.subscribers {
		select {
		case ch <- result:
		default:
			// A slow subscriber drops results rather than stalling the run.
		}
	}
}

func (r *run) closeSubscribers() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for ch := range r.subscribers {
		close(ch)
	}
	r.subscribers = make(map[chan search.SearchResult]struct{})
}

// runRegistry owns every run started by this server instance.
type runRegistry struct {
	st     *store.Store
	logger zerolog.Logger

	mu   sync.RWMutex
	runs map[string]*run
}

func newRunRegistry(st *store.Store, logger zerolog.Logger) *runRegistry {
	return &runRegistry{st: st, logger: logger, runs: make(map[string]*run)}
}

// start launches a new search run in the background and returns its id.
func (reg *runRegistry) start(ctx context.Context, start, pattern cube.Cube, allowed []cube.Move) string {
	id := uuid.NewString()
	runCtx, cancel := context.WithCancel(ctx)

	r := newRun(id, cfen.Format(start), cfen.Format(pattern), cancel)
	reg.mu.Lock()
	reg.runs[id] = r
	reg.mu.Unlock()

	results := make(chan search.SearchResult, 256)
	go search.Run(runCtx, start, pattern, allowed, results)
	go reg.pump(r, results)

	return id
}

func (reg *runRegistry) pump(r *run, results <-chan search.SearchResult) {
	for result := range results {
		r.broadcast(result)
		if result.Kind == search.KindAlgorithm && reg.st != nil {
			err := reg.st.SaveSolution(store.Solution{
				RunID:        r.id,
				StartCFEN:    r.startCFEN,
				PatternCFEN:  r.patternCFEN,
				Moves:        cube.FormatMoves(result.Algorithm),
				Depth:        len(result.Algorithm),
				DiscoveredAt: time.Now(),
			})
			if err != nil {
				reg.logger.Error().Err(err).Str("run_id", r.id).Msg("failed to persist solution")
			}
		}
	}
	r.closeSubscribers()
}

func (reg *runRegistry) get(id string) (*run, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.runs[id]
	return r, ok
}

func (reg *runRegistry) cancelRun(id string) bool {
	reg.mu.RLock()
	r, ok := reg.runs[id]
	reg.mu.RUnlock()
	if !ok {
		return false
	}
	r.cancel()
	return true
}
