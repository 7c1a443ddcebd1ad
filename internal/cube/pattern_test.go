package cube

import "testing"

func TestMatchesSolvedAgainstItself(t *testing.T) {
	solved := Solved()
	if !Matches(solved, solved) {
		t.Error("a solved cube should match itself")
	}
}

func TestMatchesAllWildcardAlwaysTrue(t *testing.T) {
	solved := Solved()
	var allWild Cube // zero value: every slot is Wildcard
	if !Matches(solved, allWild) {
		t.Error("an all-wildcard pattern should match any cube")
	}
	if !Matches(Turn(solved, R), allWild) {
		t.Error("an all-wildcard pattern should match a turned cube too")
	}
}

func TestMatchesRejectsMismatch(t *testing.T) {
	solved := Solved()
	turned := Turn(solved, R)
	if Matches(turned, solved) {
		t.Error("a turned cube should not match the solved pattern")
	}
}

func TestMatchesPartialPattern(t *testing.T) {
	solved := Solved()
	// A pattern that only constrains the Up face to be uniform yellow,
	// leaving every other face wildcard.
	pattern := Cube{Up: solved.Up}
	if !Matches(solved, pattern) {
		t.Error("solved cube should match a pattern that only constrains Up")
	}
	turned := Turn(solved, R)
	// R disturbs the Up face's right column, so it should no longer match.
	if Matches(turned, pattern) {
		t.Error("R-turned cube should not match a pattern constraining Up to solved colors")
	}
}

func TestMissingColorsEmptyForIdentical(t *testing.T) {
	solved := Solved()
	if got := MissingColors(solved, solved); len(got) != 0 {
		t.Errorf("MissingColors(solved, solved) = %v, want empty", got)
	}
}

func TestMissingColorsDetectsShortfall(t *testing.T) {
	solved := Solved()
	// A pattern requiring five yellow corner stickers (Down slot 0 is a
	// corner; the solved cube has only the four on the Up face) should report
	// Yellow missing.
	pattern := solved
	pattern.Down = packFace([9]Color{Yellow, White, White, White, White, White, White, White, White})
	missing := MissingColors(solved, pattern)
	found := false
	for _, c := range missing {
		if c == Yellow {
			found = true
		}
	}
	if !found {
		t.Errorf("MissingColors did not flag Yellow shortfall, got %v", missing)
	}
}

func TestMissingColorsMovesPreserveInventory(t *testing.T) {
	// Since every move permutes stickers without changing colors, a scrambled
	// cube's color inventory always matches the solved cube's: nothing
	// should ever be reported missing against the solved cube as pattern.
	solved := Solved()
	scrambled := TurnAll(solved, []Move{R, U, RPrime, UPrime, F2, L, D})
	if got := MissingColors(scrambled, solved); len(got) != 0 {
		t.Errorf("MissingColors(scrambled, solved) = %v, want empty", got)
	}
}
