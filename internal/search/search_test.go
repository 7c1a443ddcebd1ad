package search

import (
	"context"
	"testing"
	"time"

	"github.com/mbrt/algfinder/internal/cube"
)

func drain(t *testing.T, ctx context.Context, results <-chan SearchResult, wantDepths, wantAlgorithms int) (depths int, algorithms []SearchResult) {
	t.Helper()
	for {
		select {
		case r, ok := <-results:
			if !ok {
				return depths, algorithms
			}
			if r.Kind == KindDepth {
				depths++
			} else {
				algorithms = append(algorithms, r)
			}
			if depths >= wantDepths && len(algorithms) >= wantAlgorithms {
				return depths, algorithms
			}
		case <-ctx.Done():
			return depths, algorithms
		}
	}
}

// TestTrivialMatchNeverEmitsZeroLength verifies the documented boundary:
// when start already matches pattern, Run never emits Algorithm(nil); the
// consumer instead observes Depth(1) with no preceding Algorithm.
func TestTrivialMatchNeverEmitsZeroLength(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	results := make(chan SearchResult, 64)
	start := cube.Solved()
	go Run(ctx, start, start, cube.AllMoves, results)

	depths, algs := drain(t, ctx, results, 1, 0)
	if depths < 1 {
		t.Fatal("expected at least Depth(1) to be emitted")
	}
	for _, a := range algs {
		if len(a.Algorithm) == 0 {
			t.Error("Run emitted a zero-length Algorithm, which the boundary choice forbids")
		}
	}
}

// TestSingleMoveSolve covers scenario 2: start = turn(solved, R), pattern =
// solved. At depth 1 exactly [R'] should be found.
func TestSingleMoveSolve(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := cube.Turn(cube.Solved(), cube.R)
	pattern := cube.Solved()

	results := make(chan SearchResult, 64)
	go Run(ctx, start, pattern, cube.AllMoves, results)

	var depth1Solutions [][]cube.Move
	sawDepth1 := false
	for r := range results {
		if r.Kind == KindDepth {
			if r.Depth == 1 {
				sawDepth1 = true
			}
			if r.Depth == 2 {
				cancel()
				break
			}
			continue
		}
		if len(r.Algorithm) == 1 {
			depth1Solutions = append(depth1Solutions, r.Algorithm)
		}
	}

	if !sawDepth1 {
		t.Fatal("never saw Depth(1)")
	}
	if len(depth1Solutions) != 1 {
		t.Fatalf("expected exactly one depth-1 solution, got %v", depth1Solutions)
	}
	if depth1Solutions[0][0] != cube.RPrime {
		t.Errorf("expected solution [R'], got %v", depth1Solutions[0])
	}
}

// TestTwoMoveSolveWithClassPruning covers scenario 3: the class-pruned
// redundant solution [U, U', R'] must never appear, even though it also
// solves the cube.
func TestTwoMoveSolveWithClassPruning(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := cube.Turn(cube.Turn(cube.Solved(), cube.R), cube.U)
	pattern := cube.Solved()

	results := make(chan SearchResult, 256)
	go Run(ctx, start, pattern, cube.AllMoves, results)

	var depth2Solutions, depth3Solutions [][]cube.Move
	maxDepthSeen := 0
	for r := range results {
		if r.Kind == KindDepth {
			maxDepthSeen = r.Depth
			if r.Depth > 3 {
				cancel()
				break
			}
			continue
		}
		switch len(r.Algorithm) {
		case 2:
			depth2Solutions = append(depth2Solutions, append([]cube.Move{}, r.Algorithm...))
		case 3:
			depth3Solutions = append(depth3Solutions, append([]cube.Move{}, r.Algorithm...))
		}
	}
	_ = maxDepthSeen

	foundTarget := false
	for _, sol := range depth2Solutions {
		if sol[0] == cube.UPrime && sol[1] == cube.RPrime {
			foundTarget = true
		}
		if sol[0] == cube.U && sol[1] == cube.UPrime {
			t.Errorf("class-pruned sequence %v was emitted", sol)
		}
	}
	if !foundTarget {
		t.Errorf("expected [U', R'] among depth-2 solutions, got %v", depth2Solutions)
	}
	for _, sol := range depth3Solutions {
		if sol[0] == cube.U && sol[1] == cube.UPrime && sol[2] == cube.RPrime {
			t.Errorf("class-pruned sequence %v was emitted", sol)
		}
	}
}

// TestImpossibleWithRestrictedMoves covers scenario 5: with only U moves
// allowed, an F-scrambled cube can never be solved; Run must never emit an
// Algorithm, only ever-increasing Depth markers, until cancelled.
func TestImpossibleWithRestrictedMoves(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	start := cube.Turn(cube.Solved(), cube.F)
	pattern := cube.Solved()
	allowed := []cube.Move{cube.U, cube.UPrime, cube.U2}

	results := make(chan SearchResult, 64)
	go Run(ctx, start, pattern, allowed, results)

	lastDepth := 0
	for r := range results {
		if r.Kind == KindAlgorithm {
			t.Errorf("unsolvable search emitted an algorithm: %v", r.Algorithm)
			continue
		}
		if r.Depth <= lastDepth {
			t.Errorf("depth markers did not strictly increase: %d after %d", r.Depth, lastDepth)
		}
		lastDepth = r.Depth
	}
}

// TestDepthMarkerPrecedesAlgorithmsOfThatDepth covers the depth-ordering
// testable property: within the observed prefix, the maximum depth seen on
// an Algorithm never exceeds the maximum depth seen on a Depth marker.
func TestDepthMarkerPrecedesAlgorithmsOfThatDepth(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	start := cube.Turn(cube.Turn(cube.Solved(), cube.R), cube.U)
	pattern := cube.Solved()

	results := make(chan SearchResult, 256)
	go Run(ctx, start, pattern, cube.AllMoves, results)

	maxDepthMarker := 0
	count := 0
	for r := range results {
		if r.Kind == KindDepth {
			maxDepthMarker = r.Depth
		} else {
			if len(r.Algorithm) > maxDepthMarker {
				t.Errorf("algorithm of length %d seen before its Depth marker (max marker so far %d)", len(r.Algorithm), maxDepthMarker)
			}
		}
		count++
		if count > 200 {
			cancel()
			break
		}
	}
}

// TestCancellationStopsTheSearch verifies that cancelling the context stops
// Run from emitting further results and closes the channel.
func TestCancellationStopsTheSearch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	results := make(chan SearchResult)
	done := make(chan struct{})
	go func() {
		Run(ctx, cube.Turn(cube.Solved(), cube.F), cube.Solved(), []cube.Move{cube.U, cube.UPrime, cube.U2}, results)
		close(done)
	}()

	// Drain a handful of results, then cancel.
	for i := 0; i < 3; i++ {
		<-results
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}

	// Channel must be closed; draining it should not block.
	for range results {
	}
}

func TestEmptyAllowedMovesProducesNoResults(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	results := make(chan SearchResult)
	Run(ctx, cube.Solved(), cube.Solved(), nil, results)

	if _, ok := <-results; ok {
		t.Error("Run with no allowed moves should close results immediately without sending")
	}
}
