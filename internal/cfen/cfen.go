// Package cfen implements the compact textual cube notation used by the
// CLI and HTTP hosts: a run-length encoding of each face's nine stickers,
// prefixed by an informational up/front orientation label.
package cfen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mbrt/algfinder/internal/cube"
)

// ErrMalformed is wrapped into every parse failure, so callers can
// distinguish a bad CFEN string from other error kinds with errors.Is.
var ErrMalformed = errors.New("cfen: malformed string")

var runPattern = regexp.MustCompile(`([_WYGBRO])(\d*)`)

// faceOrder is the fixed U/D/L/R/F/B field order used by both Parse and
// Format, matching cube.Cube's field order.
var faceOrder = []string{"U", "D", "L", "R", "F", "B"}

// Format renders c as a CFEN string: "<up><front>|<U>/<D>/<L>/<R>/<F>/<B>"
// where each face is its nine stickers run-length encoded. The orientation
// prefix is informational only; it labels the up and front face center
// colors and does not affect the encoded face contents.
func Format(c cube.Cube) string {
	var sb strings.Builder
	sb.WriteString(cube.FaceSticker(c.Up, 4).String())
	sb.WriteString(cube.FaceSticker(c.Front, 4).String())
	sb.WriteByte('|')

	faces := []cube.Face{c.Up, c.Down, c.Left, c.Right, c.Front, c.Back}
	for i, f := range faces {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(formatFace(f))
	}
	return sb.String()
}

func formatFace(f cube.Face) string {
	var sb strings.Builder
	run := cube.FaceSticker(f, 0)
	count := 1
	flush := func() {
		sb.WriteString(run.String())
		if count > 1 {
			sb.WriteString(strconv.Itoa(count))
		}
	}
	for i := 1; i < 9; i++ {
		c := cube.FaceSticker(f, i)
		if c == run {
			count++
			continue
		}
		flush()
		run = c
		count = 1
	}
	flush()
	return sb.String()
}

// Parse parses a CFEN string into a Cube. The orientation prefix is
// consumed but not otherwise validated against the face contents: it is a
// label, not a re-orientation instruction.
func Parse(s string) (cube.Cube, error) {
	parts := strings.SplitN(s, "|", 2)
	if len(parts) != 2 {
		return cube.Cube{}, fmt.Errorf("%w: missing '|' separator in %q", ErrMalformed, s)
	}
	if len(parts[0]) != 2 {
		return cube.Cube{}, fmt.Errorf("%w: orientation field must be 2 characters, got %q", ErrMalformed, parts[0])
	}
	if _, ok := cube.ParseColor(string(parts[0][0])); !ok {
		return cube.Cube{}, fmt.Errorf("%w: invalid up-color letter %q", ErrMalformed, parts[0][0])
	}
	if _, ok := cube.ParseColor(string(parts[0][1])); !ok {
		return cube.Cube{}, fmt.Errorf("%w: invalid front-color letter %q", ErrMalformed, parts[0][1])
	}

	faceStrs := strings.Split(parts[1], "/")
	if len(faceStrs) != 6 {
		return cube.Cube{}, fmt.Errorf("%w: expected 6 faces separated by '/', got %d", ErrMalformed, len(faceStrs))
	}

	faces := make([]cube.Face, 6)
	for i, fs := range faceStrs {
		f, err := parseFace(fs)
		if err != nil {
			return cube.Cube{}, fmt.Errorf("%w: face %s: %v", ErrMalformed, faceOrder[i], err)
		}
		faces[i] = f
	}

	return cube.Cube{
		Up: faces[0], Down: faces[1], Left: faces[2], Right: faces[3], Front: faces[4], Back: faces[5],
	}, nil
}

func parseFace(s string) (cube.Face, error) {
	matches := runPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return 0, fmt.Errorf("no color tokens in %q", s)
	}

	reconstructed := ""
	var colors [9]cube.Color
	idx := 0
	for _, m := range matches {
		reconstructed += m[0]
		col, ok := cube.ParseColor(m[1])
		if !ok {
			return 0, fmt.Errorf("invalid color letter %q", m[1])
		}
		count := 1
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil || n < 1 {
				return 0, fmt.Errorf("invalid run count %q", m[2])
			}
			count = n
		}
		for i := 0; i < count; i++ {
			if idx >= 9 {
				return 0, fmt.Errorf("face %q encodes more than 9 stickers", s)
			}
			colors[idx] = col
			idx++
		}
	}
	if reconstructed != s {
		return 0, fmt.Errorf("could not parse all of %q (parsed %q)", s, reconstructed)
	}
	if idx != 9 {
		return 0, fmt.Errorf("face %q encodes %d stickers, want 9", s, idx)
	}
	return cube.PackFace(colors), nil
}
