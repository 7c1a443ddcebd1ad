package cube

// OptimizeMoves collapses consecutive moves on the same class into a single
// move, or drops them entirely when they cancel: R R -> R2, R R' -> (nothing),
// R2 R -> R'.
func OptimizeMoves(moves []Move) []Move {
	if len(moves) == 0 {
		return moves
	}

	optimized := make([]Move, 0, len(moves))

	for _, current := range moves {
		if len(optimized) > 0 {
			last := optimized[len(optimized)-1]
			if last.Class() == current.Class() {
				combined, ok := combineSameClassMoves(last, current)
				if !ok {
					optimized = optimized[:len(optimized)-1]
				} else {
					optimized[len(optimized)-1] = combined
				}
				continue
			}
		}
		optimized = append(optimized, current)
	}

	return optimized
}

// combineSameClassMoves merges two moves of the same class by summing their
// quarter-turn counts mod 4. ok is false when the moves cancel out.
func combineSameClassMoves(first, second Move) (Move, bool) {
	total := (quarterTurns(first) + quarterTurns(second)) % 4
	if total == 0 {
		return 0, false
	}
	return quarterTurnsToMove(first.Class(), total), true
}

// quarterTurns expresses a move's variant as a clockwise quarter-turn count.
func quarterTurns(m Move) int {
	switch m.Variant() {
	case VarCW:
		return 1
	case VarHalf:
		return 2
	case VarCCW:
		return 3
	default:
		return 0
	}
}

func quarterTurnsToMove(class MoveClass, quarterTurns int) Move {
	switch quarterTurns {
	case 1:
		return Move(class)<<2 | Move(VarCW)
	case 2:
		return Move(class)<<2 | Move(VarHalf)
	case 3:
		return Move(class)<<2 | Move(VarCCW)
	default:
		panic("cube: invalid quarter turn count")
	}
}

// OptimizeScramble parses, optimizes, and re-renders a move sequence.
func OptimizeScramble(scramble string) (string, error) {
	moves, err := ParseMoves(scramble)
	if err != nil {
		return "", err
	}
	return FormatMoves(OptimizeMoves(moves)), nil
}

// GetMoveCount returns the length of a sequence after optimization.
func GetMoveCount(moves []Move) int {
	return len(OptimizeMoves(moves))
}

// IsCancellingSequence reports whether a sequence optimizes down to nothing.
func IsCancellingSequence(moves []Move) bool {
	return len(OptimizeMoves(moves)) == 0
}
