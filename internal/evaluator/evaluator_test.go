package evaluator

import (
	"testing"
	"time"

	"github.com/behrlich/cubecost/internal/cube"
)

func TestUniformEvaluatorEval(t *testing.T) {
	u := NewUniformEvaluator(5 * time.Millisecond)

	seq := []cube.Move{
		{Face: cube.Right, Direction: cube.Single},
		{Face: cube.Up, Direction: cube.Reverse},
		{Face: cube.Front, Direction: cube.Double},
	}

	if got, want := u.Eval(seq), 15*time.Millisecond; got != want {
		t.Errorf("Eval() = %v, want %v", got, want)
	}
	if got, want := u.Eval(nil), time.Duration(0); got != want {
		t.Errorf("Eval(nil) = %v, want %v", got, want)
	}
}

func TestUniformEvaluatorMinTime(t *testing.T) {
	u := NewUniformEvaluator(time.Millisecond)

	cases := []struct {
		name string
		n    int
		want time.Duration
	}{
		{"empty", 0, 0},
		{"single", 1, 0},
		{"two", 2, 0},
		{"three", 3, time.Millisecond},
		{"five", 5, 3 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seq := make([]cube.Move, tc.n)
			for i := range seq {
				seq[i] = cube.Move{Face: cube.Up, Direction: cube.Single}
			}
			if got := u.MinTime(seq); got != tc.want {
				t.Errorf("MinTime(%d) = %v, want %v", tc.n, got, tc.want)
			}
		})
	}
}

func TestBlastMachineEvaluatorEval(t *testing.T) {
	b := BlastMachineEvaluator{}

	cases := []struct {
		name string
		seq  []cube.Move
		want time.Duration
	}{
		{
			name: "single quarter turn",
			seq:  []cube.Move{{Face: cube.Right, Direction: cube.Single}},
			want: singleMoveTime,
		},
		{
			name: "single half turn",
			seq:  []cube.Move{{Face: cube.Right, Direction: cube.Double}},
			want: doubleMoveTime,
		},
		{
			name: "two different axes",
			seq: []cube.Move{
				{Face: cube.Right, Direction: cube.Single},
				{Face: cube.Up, Direction: cube.Single},
			},
			want: 2 * singleMoveTime,
		},
		{
			name: "same axis back to back is free",
			seq: []cube.Move{
				{Face: cube.Right, Direction: cube.Single},
				{Face: cube.Left, Direction: cube.Reverse},
			},
			want: singleMoveTime,
		},
		{
			name: "same face repeated is free",
			seq: []cube.Move{
				{Face: cube.Right, Direction: cube.Single},
				{Face: cube.Right, Direction: cube.Single},
			},
			want: singleMoveTime,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Eval(tc.seq); got != tc.want {
				t.Errorf("Eval() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBlastMachineEvaluatorMinTime(t *testing.T) {
	b := BlastMachineEvaluator{}

	short := []cube.Move{{Face: cube.Up, Direction: cube.Single}}
	if got := b.MinTime(short); got != 0 {
		t.Errorf("MinTime(single move) = %v, want 0", got)
	}

	seq := []cube.Move{
		{Face: cube.Up, Direction: cube.Single},
		{Face: cube.Right, Direction: cube.Single},
		{Face: cube.Down, Direction: cube.Double},
		{Face: cube.Left, Direction: cube.Single},
	}
	want := b.Eval(seq[1 : len(seq)-1])
	if got := b.MinTime(seq); got != want {
		t.Errorf("MinTime() = %v, want %v", got, want)
	}
}

func TestEvaluatorFunc(t *testing.T) {
	var called []cube.Move
	f := EvaluatorFunc(func(seq []cube.Move) time.Duration {
		called = seq
		return time.Duration(len(seq)) * time.Second
	})

	seq := []cube.Move{{Face: cube.Front, Direction: cube.Single}}
	if got, want := f.Eval(seq), time.Second; got != want {
		t.Errorf("Eval() = %v, want %v", got, want)
	}
	if len(called) != len(seq) {
		t.Errorf("underlying function did not receive seq")
	}
	if got := f.MinTime(seq); got != 0 {
		t.Errorf("MinTime() = %v, want 0", got)
	}
}
