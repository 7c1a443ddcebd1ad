package cube

import (
	"testing"
)

func TestSolvedIsFixedByAllMoves_CentersOnly(t *testing.T) {
	// Centers (slot 4) are never touched by any move, even starting solved.
	solved := Solved()
	for _, m := range AllMoves {
		turned := Turn(solved, m)
		for _, pair := range []struct {
			name string
			a, b Face
		}{
			{"Up", solved.Up, turned.Up},
			{"Down", solved.Down, turned.Down},
			{"Left", solved.Left, turned.Left},
			{"Right", solved.Right, turned.Right},
			{"Front", solved.Front, turned.Front},
			{"Back", solved.Back, turned.Back},
		} {
			if FaceSticker(pair.a, 4) != FaceSticker(pair.b, 4) {
				t.Errorf("move %v changed center of %s face", m, pair.name)
			}
		}
	}
}

func TestQuarterTurnInvolution(t *testing.T) {
	// Applying a quarter turn four times returns to the start.
	solved := Solved()
	quarterMoves := []Move{U, D, L, R, F, B, M}
	for _, m := range quarterMoves {
		c := solved
		for i := 0; i < 4; i++ {
			c = Turn(c, m)
		}
		if !c.Equal(solved) {
			t.Errorf("move %v applied 4 times did not return to solved", m)
		}
	}
}

func TestHalfTurnInvolution(t *testing.T) {
	// A half turn applied twice returns to the start.
	solved := Solved()
	halfMoves := []Move{U2, D2, L2, R2, F2, B2, M2}
	for _, m := range halfMoves {
		c := Turn(Turn(solved, m), m)
		if !c.Equal(solved) {
			t.Errorf("move %v applied twice did not return to solved", m)
		}
	}
}

func TestPrimeIsInverseOfBase(t *testing.T) {
	solved := Solved()
	pairs := []struct{ base, prime Move }{
		{U, UPrime}, {D, DPrime}, {L, LPrime}, {R, RPrime}, {F, FPrime}, {B, BPrime}, {M, MPrime},
	}
	for _, p := range pairs {
		c := Turn(Turn(solved, p.base), p.prime)
		if !c.Equal(solved) {
			t.Errorf("%v then %v did not return to solved", p.base, p.prime)
		}
		c = Turn(Turn(solved, p.prime), p.base)
		if !c.Equal(solved) {
			t.Errorf("%v then %v did not return to solved", p.prime, p.base)
		}
	}
}

func TestHalfTurnEqualsTwoQuarterTurns(t *testing.T) {
	solved := Solved()
	pairs := []struct{ quarter, half Move }{
		{U, U2}, {D, D2}, {L, L2}, {R, R2}, {F, F2}, {B, B2}, {M, M2},
	}
	for _, p := range pairs {
		twice := Turn(Turn(solved, p.quarter), p.quarter)
		once := Turn(solved, p.half)
		if !twice.Equal(once) {
			t.Errorf("%v twice did not equal %v", p.quarter, p.half)
		}
	}
}

func TestColorConservationUnderMoves(t *testing.T) {
	// Applying any move preserves the total count of every color.
	solved := Solved()
	for _, m := range AllMoves {
		turned := Turn(solved, m)
		before, beforeEdges := cubeColorCounts(solved)
		after, afterEdges := cubeColorCounts(turned)
		if before != after || beforeEdges != afterEdges {
			t.Errorf("move %v changed the color inventory", m)
		}
	}
}

func TestFourMoveCycleOnAdjacentFaces(t *testing.T) {
	// R U R' U' applied six times returns a solved cube to solved (a
	// standard sexy-move order check).
	solved := Solved()
	seq := []Move{R, U, RPrime, UPrime}
	c := solved
	for i := 0; i < 6; i++ {
		c = TurnAll(c, seq)
	}
	if !c.Equal(solved) {
		t.Error("R U R' U' applied six times did not return to solved")
	}
}

func TestTurnAllMatchesSequentialTurn(t *testing.T) {
	solved := Solved()
	seq := []Move{R, U, F, L, D, B, M}
	got := TurnAll(solved, seq)
	want := solved
	for _, m := range seq {
		want = Turn(want, m)
	}
	if !got.Equal(want) {
		t.Error("TurnAll diverged from sequential Turn calls")
	}
}

func TestAllMovesChangeTheState(t *testing.T) {
	// None of the 21 moves are a no-op on a solved cube.
	solved := Solved()
	for _, m := range AllMoves {
		if Turn(solved, m).Equal(solved) {
			t.Errorf("move %v left the solved cube unchanged", m)
		}
	}
}

func TestClassAndVariantRoundtrip(t *testing.T) {
	for _, m := range AllMoves {
		got := Move(m.Class())<<2 | Move(m.Variant())
		if got != m {
			t.Errorf("Class/Variant did not round-trip for %v", m)
		}
	}
}

func TestSameClassPruningRule(t *testing.T) {
	// Moves on the same class have t^u <= 0b11; moves on different classes
	// have t^u > 0b11. This is the pruning identity internal/search relies
	// on for O(1) same-axis rejection.
	for _, t1 := range AllMoves {
		for _, t2 := range AllMoves {
			sameClass := t1.Class() == t2.Class()
			xorSmall := (t1 ^ t2) <= 0b11
			if sameClass != xorSmall {
				t.Errorf("pruning identity broken for %v, %v: sameClass=%v xorSmall=%v", t1, t2, sameClass, xorSmall)
			}
		}
	}
}
