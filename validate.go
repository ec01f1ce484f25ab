package viterbi

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// A Rule identifies one structural consistency rule that
// a model and observation sequence must satisfy before
// decoding.
type Rule int

const (
	// RuleObservations requires a non-empty observation
	// sequence.
	RuleObservations Rule = iota

	// RuleStates requires a non-empty state list.
	RuleStates

	// RuleStart requires the start table's key set to
	// equal the state set.
	RuleStart

	// RuleTransitions requires the transition table's
	// outer key set to equal the state set.
	RuleTransitions

	// RuleTransitionRow requires a transition row's key
	// set to equal the state set.
	RuleTransitionRow

	// RuleEmissions requires the emission table's outer
	// key set to equal the state set.
	RuleEmissions

	// RuleEmissionRow requires an emission row's key set
	// to equal the set of distinct observed symbols.
	RuleEmissionRow
)

func (r Rule) String() string {
	switch r {
	case RuleObservations:
		return "observations must be a non-empty sequence"
	case RuleStates:
		return "states must be a non-empty sequence"
	case RuleStart:
		return "start probabilities must match states"
	case RuleTransitions:
		return "transition probabilities must match states"
	case RuleTransitionRow:
		return "transition probabilities must be defined for all states"
	case RuleEmissions:
		return "emission probabilities must match states"
	case RuleEmissionRow:
		return "emission probabilities must be defined for all observed symbols"
	default:
		return fmt.Sprintf("unknown rule %d", int(r))
	}
}

// A ValidationError reports one violated rule.
// State names the offending row for the per-row rules and
// is nil otherwise.
type ValidationError struct {
	Rule  Rule
	State State
}

func (v *ValidationError) Error() string {
	if v.State != nil {
		return fmt.Sprintf("%v (state %v)", v.Rule, v.State)
	}
	return v.Rule.String()
}

// Validate checks the given tables against obs without
// decoding.
//
// It is shorthand for assembling a Model and calling its
// Validate method.
func Validate(obs []Obs, states []State, start map[State]float64,
	trans map[State]map[State]float64,
	emit map[State]map[Obs]float64) error {
	m := &Model{
		States:      states,
		Start:       start,
		Transitions: trans,
		Emissions:   emit,
	}
	return m.Validate(obs)
}

// Validate checks the model tables against the given
// observation sequence.
//
// Every violated rule is reported as a *ValidationError;
// multiple violations are joined in rule order.
// The result is nil exactly when every rule holds, in
// which case decoding cannot fail.
func (m *Model) Validate(obs []Obs) error {
	var errs *multierror.Error

	if len(obs) == 0 {
		errs = multierror.Append(errs, &ValidationError{Rule: RuleObservations})
	}
	if len(m.States) == 0 {
		errs = multierror.Append(errs, &ValidationError{Rule: RuleStates})
	}

	states := stateSet(m.States)
	if !stateKeysEqual(m.Start, states) {
		errs = multierror.Append(errs, &ValidationError{Rule: RuleStart})
	}
	if !stateKeysEqual(m.Transitions, states) {
		errs = multierror.Append(errs, &ValidationError{Rule: RuleTransitions})
	}
	for _, state := range m.States {
		if !stateKeysEqual(m.Transitions[state], states) {
			errs = multierror.Append(errs,
				&ValidationError{Rule: RuleTransitionRow, State: state})
		}
	}
	if !stateKeysEqual(m.Emissions, states) {
		errs = multierror.Append(errs, &ValidationError{Rule: RuleEmissions})
	}
	symbols := symbolSet(obs)
	for _, state := range m.States {
		if !obsKeysEqual(m.Emissions[state], symbols) {
			errs = multierror.Append(errs,
				&ValidationError{Rule: RuleEmissionRow, State: state})
		}
	}

	return errs.ErrorOrNil()
}
