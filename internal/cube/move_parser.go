package cube

import (
	"fmt"
	"strings"
)

var moveNames = map[string]Move{
	"U": U, "U'": UPrime, "U2": U2,
	"D": D, "D'": DPrime, "D2": D2,
	"L": L, "L'": LPrime, "L2": L2,
	"R": R, "R'": RPrime, "R2": R2,
	"F": F, "F'": FPrime, "F2": F2,
	"B": B, "B'": BPrime, "B2": B2,
	"M": M, "M'": MPrime, "M2": M2,
}

var classLetters = map[MoveClass]string{
	ClassU: "U", ClassD: "D", ClassL: "L", ClassR: "R", ClassF: "F", ClassB: "B", ClassM: "M",
}

// ParseMove parses a single move in canonical notation: a class letter
// (U D L R F B M) optionally followed by ' (counter-clockwise) or 2
// (half turn).
func ParseMove(notation string) (Move, error) {
	notation = strings.TrimSpace(notation)
	if m, ok := moveNames[notation]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("cube: unknown move notation %q", notation)
}

// ParseMoves parses a whitespace-separated sequence of moves.
func ParseMoves(sequence string) ([]Move, error) {
	sequence = strings.TrimSpace(sequence)
	if len(sequence) == 0 {
		return []Move{}, nil
	}
	parts := strings.Fields(sequence)
	moves := make([]Move, 0, len(parts))
	for _, part := range parts {
		m, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("cube: parsing move %q: %w", part, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// String returns the canonical textual form of the move, e.g. "R", "R'", "R2".
func (m Move) String() string {
	letter, ok := classLetters[m.Class()]
	if !ok {
		return "?"
	}
	switch m.Variant() {
	case VarCW:
		return letter
	case VarCCW:
		return letter + "'"
	case VarHalf:
		return letter + "2"
	default:
		return letter + "?"
	}
}

// FormatMoves renders a move sequence as space-separated canonical notation.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
