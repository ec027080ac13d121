// Package cfen implements CFEN, a compact textual notation for a fixed
// 3x3x3 cube state: a run-length-encoded facelet string plus an orientation
// prefix, analogous in spirit to FEN for chess boards.
package cfen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/behrlich/cubecost/internal/cube"
)

// wildcard marks a sticker position that matches any color -- used only in
// pattern strings passed to Matches, never produced by Generate.
const wildcard = cube.Face(-1)

// cfenFaceOrder is the fixed U/R/F/D/L/B ordering CFEN writes faces in.
var cfenFaceOrder = [6]cube.Face{cube.Up, cube.Right, cube.Front, cube.Down, cube.Left, cube.Back}

// CFENState is a parsed CFEN string: an orientation together with the 54
// facelets it describes, nine per face in row-major order.
type CFENState struct {
	Up    cube.Face
	Front cube.Face
	Faces [6][9]cube.Face
}

// String renders state back to CFEN text.
func (state *CFENState) String() string {
	var sb strings.Builder
	sb.WriteString(state.Up.String())
	sb.WriteString(state.Front.String())
	sb.WriteByte('|')
	for i, face := range state.Faces {
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(compactString(face[:]))
	}
	return sb.String()
}

// compactString run-length-encodes a row of facelets.
func compactString(stickers []cube.Face) string {
	var sb strings.Builder
	i := 0
	for i < len(stickers) {
		j := i + 1
		for j < len(stickers) && stickers[j] == stickers[i] {
			j++
		}
		sb.WriteString(facelet(stickers[i]))
		if run := j - i; run > 1 {
			sb.WriteString(strconv.Itoa(run))
		}
		i = j
	}
	return sb.String()
}

func facelet(f cube.Face) string {
	if f == wildcard {
		return "?"
	}
	return f.String()
}

// Parse reads a CFEN string into a CFENState.
func Parse(s string) (*CFENState, error) {
	parts := strings.SplitN(s, "|", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("cfen: expected \"orientation|faces\", got %q", s)
	}

	up, front, err := parseOrientation(parts[0])
	if err != nil {
		return nil, fmt.Errorf("cfen: invalid orientation %q: %w", parts[0], err)
	}

	faceStrs := strings.Split(parts[1], "/")
	if len(faceStrs) != 6 {
		return nil, fmt.Errorf("cfen: expected 6 faces separated by '/', got %d", len(faceStrs))
	}

	var faces [6][9]cube.Face
	for i, fs := range faceStrs {
		stickers, err := parseFace(fs)
		if err != nil {
			return nil, fmt.Errorf("cfen: face %d (%s): %w", i, cfenFaceOrder[i], err)
		}
		faces[i] = stickers
	}

	return &CFENState{Up: up, Front: front, Faces: faces}, nil
}

func parseOrientation(s string) (up, front cube.Face, err error) {
	if len(s) != 2 {
		return 0, 0, fmt.Errorf("orientation must be exactly 2 letters, got %q", s)
	}
	up, ok := cube.ParseFace(s[0])
	if !ok {
		return 0, 0, fmt.Errorf("unknown up face letter %q", s[0])
	}
	front, ok = cube.ParseFace(s[1])
	if !ok {
		return 0, 0, fmt.Errorf("unknown front face letter %q", s[1])
	}
	return up, front, nil
}

// parseFace decodes a single run-length-encoded row of 9 facelets.
func parseFace(s string) ([9]cube.Face, error) {
	var out [9]cube.Face
	n := 0
	i := 0
	for i < len(s) {
		var f cube.Face
		if s[i] == '?' {
			f = wildcard
		} else {
			parsed, ok := cube.ParseFace(s[i])
			if !ok {
				return out, fmt.Errorf("unknown facelet %q at offset %d", s[i], i)
			}
			f = parsed
		}
		i++

		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		count := 1
		if i > start {
			parsedCount, err := strconv.Atoi(s[start:i])
			if err != nil || parsedCount < 1 {
				return out, fmt.Errorf("invalid run count in %q", s)
			}
			count = parsedCount
		}

		for k := 0; k < count; k++ {
			if n >= 9 {
				return out, fmt.Errorf("face has more than 9 facelets: %q", s)
			}
			out[n] = f
			n++
		}
	}
	if n != 9 {
		return out, fmt.Errorf("face has %d facelets, want 9: %q", n, s)
	}
	return out, nil
}
