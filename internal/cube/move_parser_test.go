package cube

import "testing"

func TestParseMoveAllCanonicalTokens(t *testing.T) {
	for _, m := range AllMoves {
		token := m.String()
		got, err := ParseMove(token)
		if err != nil {
			t.Fatalf("ParseMove(%q) returned error: %v", token, err)
		}
		if got != m {
			t.Errorf("ParseMove(%q) = %v, want %v", token, got, m)
		}
	}
}

func TestParseMoveRejectsUnknown(t *testing.T) {
	for _, bad := range []string{"", "X", "U3", "Rw", "2R", "u"} {
		if _, err := ParseMove(bad); err == nil {
			t.Errorf("ParseMove(%q) should have failed", bad)
		}
	}
}

func TestParseMovesSequence(t *testing.T) {
	got, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatalf("ParseMoves returned error: %v", err)
	}
	want := []Move{R, U, RPrime, UPrime}
	if len(got) != len(want) {
		t.Fatalf("ParseMoves returned %d moves, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("move %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseMovesEmpty(t *testing.T) {
	got, err := ParseMoves("")
	if err != nil {
		t.Fatalf("ParseMoves(\"\") returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ParseMoves(\"\") = %v, want empty", got)
	}
}

func TestFormatMovesRoundtrip(t *testing.T) {
	seq := []Move{R, U, RPrime, UPrime, F2, M}
	s := FormatMoves(seq)
	got, err := ParseMoves(s)
	if err != nil {
		t.Fatalf("ParseMoves(%q) returned error: %v", s, err)
	}
	if len(got) != len(seq) {
		t.Fatalf("roundtrip length mismatch: got %d want %d", len(got), len(seq))
	}
	for i := range seq {
		if got[i] != seq[i] {
			t.Errorf("move %d = %v, want %v", i, got[i], seq[i])
		}
	}
}
