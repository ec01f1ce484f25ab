package viterbi

import "math/rand"

// SampleLen samples a hidden state sequence of length n
// from the model, together with the observations the
// states emit.
//
// If gen is not nil, it is used as the source of
// randomness; otherwise the global routines in package
// rand are used.
//
// SampleLen requires the model tables to be populated for
// every state it walks through; it panics on empty rows.
func (m *Model) SampleLen(gen *rand.Rand, n int) ([]State, []Obs) {
	states := make([]State, 0, n)
	obs := make([]Obs, 0, n)

	state := m.sampleStart(gen)
	for i := 0; i < n; i++ {
		states = append(states, state)
		obs = append(obs, m.sampleObs(gen, state))
		if i+1 < n {
			state = m.sampleNext(gen, state)
		}
	}
	return states, obs
}

func (m *Model) sampleStart(gen *rand.Rand) State {
	probs := make([]float64, len(m.States))
	for i, state := range m.States {
		probs[i] = m.Start[state]
	}
	return m.States[sampleIndex(gen, probs)]
}

func (m *Model) sampleObs(gen *rand.Rand, state State) Obs {
	if len(m.Emissions[state]) == 0 {
		panic("no emission entries for the given state")
	}
	var obses []Obs
	var probs []float64
	for obs, prob := range m.Emissions[state] {
		obses = append(obses, obs)
		probs = append(probs, prob)
	}
	return obses[sampleIndex(gen, probs)]
}

func (m *Model) sampleNext(gen *rand.Rand, from State) State {
	probs := make([]float64, len(m.States))
	for i, state := range m.States {
		probs[i] = m.Transitions[from][state]
	}
	return m.States[sampleIndex(gen, probs)]
}

// RandomModel creates a model with random normalized
// tables over the given states and observation symbols.
//
// If gen is non-nil, it is used to generate all of the
// random parameters.
//
// The result validates against any observation sequence
// that uses every symbol in symbols at least once.
func RandomModel(gen *rand.Rand, states []State, symbols []Obs) *Model {
	m := &Model{
		States:      states,
		Start:       map[State]float64{},
		Transitions: map[State]map[State]float64{},
		Emissions:   map[State]map[Obs]float64{},
	}
	for i, prob := range randomDist(gen, len(states)) {
		m.Start[states[i]] = prob
	}
	for _, state := range states {
		trans := map[State]float64{}
		for i, prob := range randomDist(gen, len(states)) {
			trans[states[i]] = prob
		}
		m.Transitions[state] = trans

		emit := map[Obs]float64{}
		for i, prob := range randomDist(gen, len(symbols)) {
			emit[symbols[i]] = prob
		}
		m.Emissions[state] = emit
	}
	return m
}

// sampleIndex samples an index from the list, given the
// probability of each index.
func sampleIndex(gen *rand.Rand, probs []float64) int {
	if len(probs) == 0 {
		panic("cannot sample from empty list")
	}
	var offset float64
	if gen == nil {
		offset = rand.Float64()
	} else {
		offset = gen.Float64()
	}
	for i, p := range probs {
		offset -= p
		if offset < 0 {
			return i
		}
	}
	return len(probs) - 1
}

// randomDist generates a random probability distribution.
func randomDist(gen *rand.Rand, n int) []float64 {
	res := make([]float64, n)
	var sum float64
	for i := range res {
		if gen == nil {
			res[i] = rand.Float64()
		} else {
			res[i] = gen.Float64()
		}
		sum += res[i]
	}
	for i := range res {
		res[i] /= sum
	}
	return res
}
