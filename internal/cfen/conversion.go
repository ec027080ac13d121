package cfen

import (
	"fmt"

	"github.com/behrlich/cubecost/internal/cube"
)

// ToCube builds a cube.Cube from state. state's orientation must be the
// canonical U/F frame: this package describes one fixed physical cube, and
// since a facelet's letter already names the face it belongs to, any other
// orientation would require re-deriving every facelet under a whole-cube
// rotation the core cube package has no notion of (it only ever turns one
// face at a time). Reorientation is left to a future extension if a caller
// ever needs it.
func (state *CFENState) ToCube() (*cube.Cube, error) {
	if state.Up != cube.Up || state.Front != cube.Front {
		return nil, fmt.Errorf("cfen: only the canonical %s%s orientation is supported, got %s%s",
			cube.Up, cube.Front, state.Up, state.Front)
	}

	if err := checkColorTally(state); err != nil {
		return nil, err
	}

	var c cube.Cube
	for i, face := range cfenFaceOrder {
		grid, err := toFaceGrid(face, state.Faces[i])
		if err != nil {
			return nil, err
		}
		c.SetFaceGrid(face, grid)
	}
	return &c, nil
}

// checkColorTally rejects a board whose facelets can't belong to any legal
// cube: a physical cube has exactly 9 stickers of each of the 6 colors, so
// any other count means the board is under- or over-determined.
func checkColorTally(state *CFENState) error {
	var counts [6]int
	for _, faces := range state.Faces {
		for _, f := range faces {
			if f == wildcard {
				continue
			}
			counts[f]++
		}
	}
	for _, f := range cfenFaceOrder {
		if counts[f] != 9 {
			return fmt.Errorf("cfen: color %s appears %d times, want 9", f, counts[f])
		}
	}
	return nil
}

func toFaceGrid(face cube.Face, stickers [9]cube.Face) ([3][3]cube.Face, error) {
	var grid [3][3]cube.Face
	for i, f := range stickers {
		if f == wildcard {
			return grid, fmt.Errorf("cfen: wildcard facelet not allowed when building a cube")
		}
		grid[i/3][i%3] = f
	}
	return grid, nil
}

// Generate renders c as a canonically-oriented CFEN string.
func Generate(c *cube.Cube) (string, error) {
	state, err := FromCube(c)
	if err != nil {
		return "", err
	}
	return state.String(), nil
}

// FromCube captures c's current facelets into a canonically-oriented
// CFENState.
func FromCube(c *cube.Cube) (*CFENState, error) {
	if c == nil {
		return nil, fmt.Errorf("cfen: cube cannot be nil")
	}

	state := &CFENState{Up: cube.Up, Front: cube.Front}
	for i, face := range cfenFaceOrder {
		grid := cube.FaceGrid(*c, face)
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				state.Faces[i][r*3+col] = grid[r][col]
			}
		}
	}
	return state, nil
}

// Matches reports whether c's facelets match state, treating state's
// wildcard positions as always matching.
func (state *CFENState) Matches(c *cube.Cube) (bool, error) {
	actual, err := FromCube(c)
	if err != nil {
		return false, err
	}

	for i := range state.Faces {
		for j := range state.Faces[i] {
			want := state.Faces[i][j]
			if want == wildcard {
				continue
			}
			if want != actual.Faces[i][j] {
				return false, nil
			}
		}
	}
	return true, nil
}
