package viterbi

import (
	"fmt"
	"io"
)

// A Tracer observes the decoder as it fills the trellis.
//
// Tracing is diagnostic only: the decoder's results never
// depend on it.
type Tracer interface {
	// Init is called once per state at the first timestep
	// with the probability of starting in that state and
	// emitting the first observation.
	Init(state State, prob float64)

	// Step is called once per state at every later
	// timestep with the chosen predecessor transition and
	// the probability of the best path ending in trans.To
	// after emitting obs.
	Step(t int, obs Obs, trans Transition, prob float64)

	// Final is called once with the winning terminal
	// state and the probability of its path.
	Final(state State, prob float64)
}

// NewWriterTracer returns a Tracer that writes a
// human-readable trace of every trellis cell to w.
//
// The output format is not stable and exists only for
// inspection by humans.
func NewWriterTracer(w io.Writer) Tracer {
	return &writerTracer{w: w}
}

type writerTracer struct {
	w io.Writer
}

func (wt *writerTracer) Init(state State, prob float64) {
	fmt.Fprintf(wt.w, "t=0 state=%v prob=%v\n", state, prob)
}

func (wt *writerTracer) Step(t int, obs Obs, trans Transition, prob float64) {
	fmt.Fprintf(wt.w, "t=%d obs=%v state=%v prob=%v from=%v\n",
		t, obs, trans.To, prob, trans.From)
}

func (wt *writerTracer) Final(state State, prob float64) {
	fmt.Fprintf(wt.w, "final state=%v prob=%v\n", state, prob)
}
