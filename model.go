// Package viterbi decodes discrete hidden Markov models:
// given a model and an observation sequence, it finds the
// most probable sequence of hidden states.
package viterbi

// State is a hidden state label in a model.
// States must be comparable with the == operator.
type State any

// An Obs is an observation symbol for a single timestep.
// Observations must be comparable with the == operator.
type Obs any

// Transition represents the transition between a source
// state and a destination state.
type Transition struct {
	From State
	To   State
}

// A Model is a discrete hidden Markov model with tabular
// probabilities.
//
// Probabilities are plain (non-log) values.
// The decoder does not require each distribution to sum
// to 1, but results are only meaningful when callers
// supply normalized distributions.
type Model struct {
	// States lists every hidden state.
	// The order is authoritative: when two states tie on
	// probability, the earlier one wins.
	States []State

	// Start maps each state to its initial probability.
	// Its key set must cover exactly the states.
	Start map[State]float64

	// Transitions maps a source state to the probability
	// of moving to each destination state.
	// The outer key set and every row's key set must
	// cover exactly the states.
	Transitions map[State]map[State]float64

	// Emissions maps each state to the probability of
	// emitting each observation symbol.
	// The outer key set must cover exactly the states,
	// and every row's key set must cover exactly the
	// distinct symbols of the sequence being decoded.
	Emissions map[State]map[Obs]float64
}
