package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/behrlich/cubecost/internal/cube"
	"github.com/behrlich/cubecost/internal/evaluator"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Twist the cube live and watch a background solve stream in",
	Long: `Interactive opens a TUI: apply moves by keypress and watch the sticker
grid update immediately, then trigger a background solve of the current
state and watch its moves stream in one at a time as the solver finds them.

Keys:
  u d f b l r     - turn that face clockwise
  U D F B L R     - turn that face counter-clockwise
  2               - hold before a face letter to turn it a half turn
  s               - start a background solve of the current state
  q / esc / ctrl+c - quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		evalName, _ := cmd.Flags().GetString("evaluator")

		ev, err := evaluator.Parse(evalName)
		if err != nil {
			return err
		}

		p := tea.NewProgram(newInteractiveModel(ev))
		_, err = p.Run()
		return err
	},
}

func init() {
	interactiveCmd.Flags().String("evaluator", "uniform", "Cost model to use (uniform, blast)")
	rootCmd.AddCommand(interactiveCmd)
}

var (
	interactiveTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	interactiveHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	interactiveMoveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	interactiveErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	stickerStyles = map[cube.Face]lipgloss.Style{
		cube.Up:    lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
		cube.Down:  lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
		cube.Front: lipgloss.NewStyle().Background(lipgloss.Color("46")).Foreground(lipgloss.Color("0")),
		cube.Back:  lipgloss.NewStyle().Background(lipgloss.Color("21")).Foreground(lipgloss.Color("0")),
		cube.Left:  lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
		cube.Right: lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("0")),
	}
)

// solveMoveMsg carries one move arriving from the background solver.
type solveMoveMsg struct{ move cube.Move }

// solveDoneMsg signals the background solver's channel has closed.
type solveDoneMsg struct{}

type interactiveModel struct {
	c         cube.Cube
	evaluator evaluator.Evaluator
	applied   []cube.Move

	doubleNext bool
	solving    bool
	solveMoves []cube.Move
	solveCh    <-chan cube.Move
	err        error
	quitting   bool
}

func newInteractiveModel(ev evaluator.Evaluator) *interactiveModel {
	return &interactiveModel{c: cube.Solved(), evaluator: ev}
}

func (m *interactiveModel) Init() tea.Cmd { return nil }

// waitForMove returns a tea.Cmd that blocks on the next move or channel
// close, bridging the solver's plain Go channel into bubbletea's message
// loop one move at a time.
func waitForMove(ch <-chan cube.Move) tea.Cmd {
	return func() tea.Msg {
		move, ok := <-ch
		if !ok {
			return solveDoneMsg{}
		}
		return solveMoveMsg{move: move}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "2":
			m.doubleNext = true
			return m, nil
		case "s":
			if m.solving {
				return m, nil
			}
			m.solving = true
			m.solveMoves = nil
			m.err = nil
			solver := cube.NewSolver(m.evaluator, 0)
			ch := solver.Solve(m.c)
			m.solveCh = ch
			return m, waitForMove(ch)
		default:
			if face, reverse, ok := faceKey(msg.String()); ok {
				dir := cube.Single
				switch {
				case m.doubleNext:
					dir = cube.Double
				case reverse:
					dir = cube.Reverse
				}
				m.doubleNext = false
				move := cube.Move{Face: face, Direction: dir}
				m.c = m.c.Apply(move)
				m.applied = append(m.applied, move)
			} else {
				m.doubleNext = false
			}
		}

	case solveMoveMsg:
		m.solveMoves = append(m.solveMoves, msg.move)
		m.c = m.c.Apply(msg.move)
		return m, waitForMove(m.solveCh)

	case solveDoneMsg:
		m.solving = false
		m.solveCh = nil
	}

	return m, nil
}

// faceKey maps a keypress to a face turn: lowercase is clockwise, uppercase
// is counter-clockwise.
func faceKey(key string) (face cube.Face, reverse bool, ok bool) {
	if len(key) != 1 {
		return 0, false, false
	}
	b := key[0]
	switch {
	case b >= 'a' && b <= 'z':
		f, found := cube.ParseFace(b)
		return f, false, found
	case b >= 'A' && b <= 'Z':
		f, found := cube.ParseFace(b)
		return f, true, found
	default:
		return 0, false, false
	}
}

func (m *interactiveModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(interactiveTitleStyle.Render("Cube Interactive"))
	b.WriteString("\n\n")
	b.WriteString(renderCube(m.c))
	b.WriteString("\n")

	if len(m.applied) > 0 {
		b.WriteString(fmt.Sprintf("Applied (%d): ", len(m.applied)))
		b.WriteString(interactiveMoveStyle.Render(cube.FormatSequence(m.applied)))
		b.WriteString("\n")
	}

	if m.solving {
		b.WriteString(fmt.Sprintf("Solving (kociemba / %s)... %d moves so far: ", evaluatorName(m.evaluator), len(m.solveMoves)))
		b.WriteString(interactiveMoveStyle.Render(cube.FormatSequence(m.solveMoves)))
		b.WriteString("\n")
	} else if len(m.solveMoves) > 0 {
		b.WriteString("Solve complete: ")
		b.WriteString(interactiveMoveStyle.Render(cube.FormatSequence(m.solveMoves)))
		b.WriteString("\n")
	}

	if m.c.IsSolved() {
		b.WriteString(interactiveMoveStyle.Render("SOLVED"))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(interactiveErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(interactiveHelpStyle.Render("Keys: u d f b l r (turn) | shift = reverse | 2+letter = double | s = solve | q = quit"))
	b.WriteString("\n")
	return b.String()
}

// evaluatorName reports a human label for the evaluator currently in use.
func evaluatorName(ev evaluator.Evaluator) string {
	switch ev.(type) {
	case evaluator.BlastMachineEvaluator:
		return "blast"
	case evaluator.UniformEvaluator:
		return "uniform"
	default:
		return "custom"
	}
}

// renderCube lays the six faces out as an unfolded cross, with each face's
// 3x3 grid colored by sticker.
func renderCube(c cube.Cube) string {
	grid := func(f cube.Face) [3][3]cube.Face { return cube.FaceGrid(c, f) }

	var b strings.Builder
	pad := strings.Repeat(" ", 8)

	writeRow := func(row [3]cube.Face) {
		for _, f := range row {
			b.WriteString(stickerStyles[f].Render(" " + f.String() + " "))
		}
	}

	up := grid(cube.Up)
	for _, row := range up {
		b.WriteString(pad)
		writeRow(row)
		b.WriteString("\n")
	}

	left, front, right, back := grid(cube.Left), grid(cube.Front), grid(cube.Right), grid(cube.Back)
	for i := 0; i < 3; i++ {
		writeRow(left[i])
		writeRow(front[i])
		writeRow(right[i])
		writeRow(back[i])
		b.WriteString("\n")
	}

	down := grid(cube.Down)
	for _, row := range down {
		b.WriteString(pad)
		writeRow(row)
		b.WriteString("\n")
	}

	return b.String()
}
