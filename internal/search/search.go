// Package search implements the parallel iterative-deepening search over
// cube states: given a start cube, a (possibly wildcard) target pattern,
// and a set of permitted moves, it streams move sequences of increasing
// length that transform the start into any state matching the pattern.
package search

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mbrt/algfinder/internal/cube"
)

// ResultKind tags the shape of a SearchResult.
type ResultKind int

const (
	// KindDepth marks the start of a new depth; always precedes every
	// KindAlgorithm result of that depth.
	KindDepth ResultKind = iota
	// KindAlgorithm carries one solution found at the most recently
	// announced depth.
	KindAlgorithm
)

// SearchResult is the tagged union streamed by Run: either a depth marker
// or a discovered move sequence.
type SearchResult struct {
	Kind      ResultKind
	Depth     int
	Algorithm []cube.Move
}

// Depth builds a depth-marker result.
func Depth(d int) SearchResult { return SearchResult{Kind: KindDepth, Depth: d} }

// Algorithm builds a solution result. The slice is copied, so the caller
// may keep reusing its buffer afterward without changing the result.
func Algorithm(moves []cube.Move) SearchResult {
	cp := make([]cube.Move, len(moves))
	copy(cp, moves)
	return SearchResult{Kind: KindAlgorithm, Algorithm: cp}
}

// sameClass is the pruning rule from the move-tag encoding: t^u <= 0b11
// exactly when t and u share the same move class.
func sameClass(t, u cube.Move) bool {
	return (t ^ u) <= 0b11
}

// Run performs the iterative-deepening search, emitting a Depth(d) marker
// before exploring depth d and an Algorithm result for every move sequence
// of length d (built entirely from allowed) such that applying it to start
// reaches a state matching pattern. It never emits a zero-length solution,
// even when start already matches pattern: the first emission is Depth(1),
// per the documented boundary choice.
//
// Run explores depths 1, 2, 3, … without bound. The caller cancels ctx to
// stop it; cancellation is checked before every send and before descending
// into the next recursive step, bounding cancellation latency to one DFS
// step per worker. Run closes results before returning.
func Run(ctx context.Context, start, pattern cube.Cube, allowed []cube.Move, results chan<- SearchResult) {
	defer close(results)

	if len(allowed) == 0 {
		return
	}

	for depth := 1; ; depth++ {
		select {
		case <-ctx.Done():
			return
		case results <- Depth(depth):
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, first := range allowed {
			first := first
			g.Go(func() error {
				path := make([]cube.Move, depth)
				path[0] = first
				state := cube.Turn(start, first)
				dfsSearch(gctx, state, first, 1, depth, pattern, allowed, path, results)
				return nil
			})
		}
		// Errors are never returned by workers; Wait only joins them so
		// depth d+1 cannot start until depth d's workers finish.
		_ = g.Wait()

		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}

// dfsSearch explores one root-split subtree. state is the cube reached
// after applying path[0:depth]; lastMove is path[depth-1], used for the
// same-class pruning test.
func dfsSearch(ctx context.Context, state cube.Cube, lastMove cube.Move, depth, maxDepth int, pattern cube.Cube, allowed []cube.Move, path []cube.Move, results chan<- SearchResult) {
	select {
	case <-ctx.Done():
		return
	default:
	}

	if depth == maxDepth {
		if cube.Matches(state, pattern) {
			select {
			case <-ctx.Done():
			case results <- Algorithm(path[:depth]):
			}
		}
		return
	}

	for _, m := range allowed {
		if sameClass(lastMove, m) {
			continue
		}
		path[depth] = m
		dfsSearch(ctx, cube.Turn(state, m), m, depth+1, maxDepth, pattern, allowed, path, results)
	}
}
