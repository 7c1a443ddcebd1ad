// Package cube implements the bit-packed 3x3x3 cube representation, its 21
// move operators, and the wildcard-aware pattern predicate used by the
// search engine in internal/search.
package cube

// Color is a sticker color. Wildcard is the "don't care" color used only in
// pattern cubes; it never appears in a state reached by applying moves to
// the solved cube.
type Color uint8

const (
	Wildcard Color = iota
	White
	Yellow
	Green
	Blue
	Red
	Orange
)

var colorLetters = [...]byte{'_', 'W', 'Y', 'G', 'B', 'R', 'O'}

// String returns the canonical single-letter textual form of the color.
func (c Color) String() string {
	if int(c) >= len(colorLetters) {
		return "?"
	}
	return string(colorLetters[c])
}

// ParseColor parses the canonical single-letter textual form of a color.
func ParseColor(s string) (Color, bool) {
	if len(s) != 1 {
		return 0, false
	}
	for i, b := range colorLetters {
		if s[0] == b {
			return Color(i), true
		}
	}
	return 0, false
}

// Cube holds the six face words of a 3x3x3 cube. Values are cheap to copy:
// every move returns a new Cube rather than mutating the receiver.
type Cube struct {
	Up    Face
	Down  Face
	Left  Face
	Right Face
	Front Face
	Back  Face
}

// Solved is the canonical solved state: yellow up, white down, red left,
// orange right, green front, blue back.
func Solved() Cube {
	return Cube{
		Up:    packFace([9]Color{Yellow, Yellow, Yellow, Yellow, Yellow, Yellow, Yellow, Yellow, Yellow}),
		Down:  packFace([9]Color{White, White, White, White, White, White, White, White, White}),
		Left:  packFace([9]Color{Red, Red, Red, Red, Red, Red, Red, Red, Red}),
		Right: packFace([9]Color{Orange, Orange, Orange, Orange, Orange, Orange, Orange, Orange, Orange}),
		Front: packFace([9]Color{Green, Green, Green, Green, Green, Green, Green, Green, Green}),
		Back:  packFace([9]Color{Blue, Blue, Blue, Blue, Blue, Blue, Blue, Blue, Blue}),
	}
}

// PackFromColors builds a Cube from per-face, slot-ordered color arrays. The
// caller is responsible for presenting stickers in the canonical per-face
// reading order (0..8, top-left to bottom-right in that face's local
// frame).
func PackFromColors(up, down, left, right, front, back [9]Color) Cube {
	return Cube{
		Up:    packFace(up),
		Down:  packFace(down),
		Left:  packFace(left),
		Right: packFace(right),
		Front: packFace(front),
		Back:  packFace(back),
	}
}

// faces returns the six face words in a fixed order, used by pattern
// matching and the color inventory check.
func (c Cube) faces() [6]Face {
	return [6]Face{c.Up, c.Down, c.Left, c.Right, c.Front, c.Back}
}

// FaceSticker extracts the color at slot i (0..8) of one face word.
func FaceSticker(f Face, i int) Color {
	return unpackSlot(f, i)
}

// Equal reports whether two cubes have identical stickers on every face.
func (c Cube) Equal(other Cube) bool {
	return c.Up == other.Up && c.Down == other.Down && c.Left == other.Left &&
		c.Right == other.Right && c.Front == other.Front && c.Back == other.Back
}
