package viterbi

import "math"

// Decode returns the probability of the most likely state
// sequence explaining obs, together with that sequence.
//
// It is shorthand for assembling a Model from the given
// tables and calling its Decode method.
func Decode(obs []Obs, states []State, start map[State]float64,
	trans map[State]map[State]float64,
	emit map[State]map[Obs]float64) (float64, []State, error) {
	m := &Model{
		States:      states,
		Start:       start,
		Transitions: trans,
		Emissions:   emit,
	}
	return m.Decode(obs)
}

// Decode returns the probability of the most likely state
// sequence explaining obs, together with that sequence.
//
// The returned sequence has the same length as obs.
// If the model tables are inconsistent with obs, the
// validation error is returned unchanged and the results
// are zero.
func (m *Model) Decode(obs []Obs) (float64, []State, error) {
	return m.DecodeTraced(obs, nil)
}

// DecodeTraced is Decode with a Tracer observing every
// trellis cell as it is filled.
// A nil tracer disables tracing.
func (m *Model) DecodeTraced(obs []Obs, tracer Tracer) (float64, []State, error) {
	if err := m.Validate(obs); err != nil {
		return 0, nil, err
	}

	// Only the previous trellis row is needed to fill the
	// next one; the history is kept as predecessor indices
	// rather than growing per-state path copies.
	prev := make([]float64, len(m.States))
	cur := make([]float64, len(m.States))
	preds := make([][]int, len(obs))

	for i, state := range m.States {
		prev[i] = m.Start[state] * m.Emissions[state][obs[0]]
		if tracer != nil {
			tracer.Init(state, prev[i])
		}
	}

	for t := 1; t < len(obs); t++ {
		pred := make([]int, len(m.States))
		for i, state := range m.States {
			emitProb := m.Emissions[state][obs[t]]
			best := math.Inf(-1)
			bestPred := 0
			for j, from := range m.States {
				// Strictly greater, so a tie keeps the
				// earliest state in m.States order.
				if p := prev[j] * m.Transitions[from][state] * emitProb; p > best {
					best = p
					bestPred = j
				}
			}
			cur[i] = best
			pred[i] = bestPred
			if tracer != nil {
				tr := Transition{From: m.States[bestPred], To: state}
				tracer.Step(t, obs[t], tr, best)
			}
		}
		preds[t] = pred
		prev, cur = cur, prev
	}

	final := 0
	for i := 1; i < len(prev); i++ {
		if prev[i] > prev[final] {
			final = i
		}
	}
	maxProb := prev[final]
	if tracer != nil {
		tracer.Final(m.States[final], maxProb)
	}

	path := make([]State, len(obs))
	at := final
	for t := len(obs) - 1; ; t-- {
		path[t] = m.States[at]
		if t == 0 {
			break
		}
		at = preds[t][at]
	}
	return maxProb, path, nil
}
