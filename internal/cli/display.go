package cli

import (
	"fmt"
	"strings"

	"github.com/mbrt/algfinder/internal/cube"
)

// unfoldedNet renders a cube as an unfolded cross:
//
//	      U U U
//	      U U U
//	      U U U
//	L L L F F F R R R B B B
//	L L L F F F R R R B B B
//	L L L F F F R R R B B B
//	      D D D
//	      D D D
//	      D D D
func unfoldedNet(c cube.Cube) string {
	var sb strings.Builder
	writeFaceRow(&sb, c.Up, 0, "      ")
	writeFaceRow(&sb, c.Up, 1, "      ")
	writeFaceRow(&sb, c.Up, 2, "      ")

	for row := 0; row < 3; row++ {
		sb.WriteString(faceSlots(c.Left, row))
		sb.WriteByte(' ')
		sb.WriteString(faceSlots(c.Front, row))
		sb.WriteByte(' ')
		sb.WriteString(faceSlots(c.Right, row))
		sb.WriteByte(' ')
		sb.WriteString(faceSlots(c.Back, row))
		sb.WriteByte('\n')
	}

	writeFaceRow(&sb, c.Down, 0, "      ")
	writeFaceRow(&sb, c.Down, 1, "      ")
	writeFaceRow(&sb, c.Down, 2, "      ")
	return sb.String()
}

func faceSlots(f cube.Face, row int) string {
	return fmt.Sprintf("%s %s %s",
		cube.FaceSticker(f, row*3).String(),
		cube.FaceSticker(f, row*3+1).String(),
		cube.FaceSticker(f, row*3+2).String())
}

func writeFaceRow(sb *strings.Builder, f cube.Face, row int, indent string) {
	sb.WriteString(indent)
	sb.WriteString(faceSlots(f, row))
	sb.WriteByte('\n')
}
