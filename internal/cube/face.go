package cube

// A Face is one side of the cube packed into the low 27 bits of a uint32:
// nine stickers, three bits each, slot i occupying bits [3i, 3i+3). Slots
// read left-to-right, top-to-bottom in the face's own local frame:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Slot 4 is the center and is never touched by a face rotation.
type Face uint32

const (
	shift2 = 6
	shift4 = 12
	shift6 = 18
	shift8 = 24
)

const (
	piece0 Face = 0b111 << (3 * 0)
	piece1 Face = 0b111 << (3 * 1)
	piece2 Face = 0b111 << (3 * 2)
	piece3 Face = 0b111 << (3 * 3)
	piece4 Face = 0b111 << (3 * 4)
	piece5 Face = 0b111 << (3 * 5)
	piece6 Face = 0b111 << (3 * 6)
	piece7 Face = 0b111 << (3 * 7)
	piece8 Face = 0b111 << (3 * 8)
)

// Row/column masks used by the move operators to select a three-sticker
// band across a face.
const (
	maskTop    = piece0 | piece1 | piece2 // slots 0,1,2
	maskLeft   = piece0 | piece3 | piece6 // slots 0,3,6
	maskMiddle = piece1 | piece4 | piece7 // slots 1,4,7
	maskRight  = piece2 | piece5 | piece8 // slots 2,5,8
	maskBottom = piece6 | piece7 | piece8 // slots 6,7,8
)

var pieceMasks = [9]Face{piece0, piece1, piece2, piece3, piece4, piece5, piece6, piece7, piece8}

// packFace builds a Face from nine slot-ordered colors.
func packFace(colors [9]Color) Face {
	var f Face
	for i, c := range colors {
		f |= Face(c) << uint(3*i)
	}
	return f
}

// PackFace builds a single Face word from nine slot-ordered colors, for
// callers (such as internal/cfen) that construct one face at a time.
func PackFace(colors [9]Color) Face {
	return packFace(colors)
}

// unpackSlot extracts the color at slot i (0..8). It panics on an out of
// range slot, which would be a programming error in this package.
func unpackSlot(f Face, i int) Color {
	if i < 0 || i > 8 {
		panic("cube: face slot out of range")
	}
	c := Color((f >> uint(3*i)) & 0b111)
	if c > Orange {
		panic("cube: invalid color code in face word")
	}
	return c
}

// rotateCW permutes the eight outer slots clockwise: corners 0->2->8->6->0,
// edges 1->5->7->3->1. The center (slot 4) is unchanged.
func rotateCW(f Face) Face {
	center := f & piece4

	to2 := (f & (piece0 | piece5)) << shift2
	to5 := (f & piece1) << shift4
	to8 := (f & piece2) << shift6

	to1 := (f & (piece3 | piece8)) >> shift2
	to3 := (f & piece7) >> shift4
	to0 := (f & piece6) >> shift6

	return center | to2 | to5 | to8 | to1 | to3 | to0
}

// rotateCCW is the inverse of rotateCW.
func rotateCCW(f Face) Face {
	center := f & piece4

	to1 := (f & (piece1 | piece6)) << shift2
	to3 := (f & piece3) << shift4
	to0 := (f & piece0) << shift6

	to2 := (f & (piece2 | piece7)) >> shift2
	to5 := (f & piece5) >> shift4
	to8 := (f & piece8) >> shift6

	return center | to1 | to3 | to0 | to2 | to5 | to8
}

// rotate180 swaps 0<->8, 1<->7, 2<->6, 3<->5. The center is unchanged.
func rotate180(f Face) Face {
	return ((f & piece0) << shift8) | ((f & piece1) << shift6) | ((f & piece2) << shift4) |
		((f & piece3) << shift2) |
		(f & piece4) |
		((f & piece5) >> shift2) | ((f & piece6) >> shift4) | ((f & piece7) >> shift6) | ((f & piece8) >> shift8)
}
