package testutil

import (
	"math/rand/v2"
	"testing"
)

// ScriptedSource is an rng.Source that replays queued draws in order and
// falls back to a seeded generator once the script runs out.
//
// A scripted value that is out of range for the requested n fails the test:
// it means the script and the draw order of the code under test disagree.
type ScriptedSource struct {
	t        testing.TB
	script   []int
	fallback *rand.Rand
	calls    []int
}

// NewScriptedSource creates a source replaying draws, then seed-42 randomness.
func NewScriptedSource(t testing.TB, draws ...int) *ScriptedSource {
	t.Helper()
	return &ScriptedSource{
		t:        t,
		script:   append([]int(nil), draws...),
		fallback: rand.New(rand.NewPCG(42, 1024)),
	}
}

// Push appends draws to the end of the script.
func (s *ScriptedSource) Push(draws ...int) {
	s.script = append(s.script, draws...)
}

// IntN returns the next scripted draw, or a random one when the script is exhausted.
func (s *ScriptedSource) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.script) == 0 {
		return s.fallback.IntN(n)
	}

	v := s.script[0]
	s.script = s.script[1:]
	if v < 0 || v >= n {
		s.t.Errorf("scripted draw %d out of range [0, %d) at call %d", v, n, len(s.calls))
		return n - 1
	}
	return v
}

// Remaining returns the number of scripted draws not consumed yet.
func (s *ScriptedSource) Remaining() int {
	return len(s.script)
}

// Calls returns the n argument of every IntN call so far.
func (s *ScriptedSource) Calls() []int {
	return append([]int(nil), s.calls...)
}

// FixedSource always returns the same value clamped into [0, n).
type FixedSource int

// IntN returns the fixed value clamped into range.
func (f FixedSource) IntN(n int) int {
	v := int(f)
	if v >= n {
		return n - 1
	}
	if v < 0 {
		return 0
	}
	return v
}
