package cube

// Matches reports whether c satisfies pattern: every non-Wildcard sticker
// of pattern equals the corresponding sticker of c. A pattern may place
// Wildcard on any slot of any face to mean "don't care"; it need not be a
// physically reachable cube.
func Matches(c, pattern Cube) bool {
	return matchesFace(c.Up, pattern.Up) &&
		matchesFace(c.Down, pattern.Down) &&
		matchesFace(c.Left, pattern.Left) &&
		matchesFace(c.Right, pattern.Right) &&
		matchesFace(c.Front, pattern.Front) &&
		matchesFace(c.Back, pattern.Back)
}

func matchesFace(face, pattern Face) bool {
	for _, mask := range pieceMasks {
		if pattern&mask == 0 {
			continue // Wildcard: this slot is unconstrained
		}
		if pattern&mask != face&mask {
			return false
		}
	}
	return true
}

// colorCounts tallies how many of each real color occupy the four corner
// slots (0,2,6,8) and the five edge-or-center slots (1,3,4,5,7) of a face.
// Indexed by Color - 1, since Wildcard never contributes a count.
func colorCounts(face Face) (corners, edges [6]int) {
	for _, slot := range [4]int{0, 2, 6, 8} {
		if col := unpackSlot(face, slot); col != Wildcard {
			corners[col-1]++
		}
	}
	for _, slot := range [5]int{1, 3, 4, 5, 7} {
		if col := unpackSlot(face, slot); col != Wildcard {
			edges[col-1]++
		}
	}
	return corners, edges
}

func cubeColorCounts(c Cube) (corners, edges [6]int) {
	for _, f := range c.faces() {
		fc, fe := colorCounts(f)
		for i := range corners {
			corners[i] += fc[i]
			edges[i] += fe[i]
		}
	}
	return corners, edges
}

// realColors lists the six non-wildcard colors in their canonical order.
var realColors = [6]Color{White, Yellow, Green, Blue, Red, Orange}

// MissingColors returns the real colors for which c's corner count or edge
// count falls short of pattern's requirement: a cheap necessary (not
// sufficient) condition for c being able to reach pattern via any sequence
// of moves, since moves never change the cube's total color multiset.
func MissingColors(c, pattern Cube) []Color {
	fromCorners, fromEdges := cubeColorCounts(c)
	toCorners, toEdges := cubeColorCounts(pattern)

	var missing []Color
	for _, color := range realColors {
		i := color - 1
		if fromCorners[i] < toCorners[i] || fromEdges[i] < toEdges[i] {
			missing = append(missing, color)
		}
	}
	return missing
}
