package viterbi

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/net/context"
)

// weatherModel is the rainy/sunny example model used as
// the canonical regression case.
func weatherModel() *Model {
	return &Model{
		States: []State{"Rainy", "Sunny"},
		Start: map[State]float64{
			"Rainy": 0.6,
			"Sunny": 0.4,
		},
		Transitions: map[State]map[State]float64{
			"Rainy": {"Rainy": 0.7, "Sunny": 0.3},
			"Sunny": {"Rainy": 0.4, "Sunny": 0.6},
		},
		Emissions: map[State]map[Obs]float64{
			"Rainy": {"walk": 0.1, "shop": 0.4, "clean": 0.5},
			"Sunny": {"walk": 0.6, "shop": 0.3, "clean": 0.1},
		},
	}
}

func obsSeqsEqual(s1, s2 []Obs) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i, x := range s1 {
		if x != s2[i] {
			return false
		}
	}
	return true
}

func stateSeqsEqual(s1, s2 []State) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i, x := range s1 {
		if x != s2[i] {
			return false
		}
	}
	return true
}

// pathProb computes the joint probability of a state
// sequence and the observations it explains.
func pathProb(m *Model, obs []Obs, path []State) float64 {
	prob := m.Start[path[0]] * m.Emissions[path[0]][obs[0]]
	for t := 1; t < len(obs); t++ {
		prob *= m.Transitions[path[t-1]][path[t]] * m.Emissions[path[t]][obs[t]]
	}
	return prob
}

// bruteForce enumerates every state sequence and returns
// the best probability along with the first sequence
// attaining it in lexicographic state order.
func bruteForce(m *Model, obs []Obs) (float64, []State) {
	best := math.Inf(-1)
	var bestPath []State
	seq := make([]State, len(obs))

	var walk func(t int, prob float64)
	walk = func(t int, prob float64) {
		if t == len(obs) {
			if prob > best {
				best = prob
				bestPath = append([]State{}, seq...)
			}
			return
		}
		for _, state := range m.States {
			var p float64
			if t == 0 {
				p = m.Start[state] * m.Emissions[state][obs[0]]
			} else {
				p = prob * m.Transitions[seq[t-1]][state] * m.Emissions[state][obs[t]]
			}
			seq[t] = state
			walk(t+1, p)
		}
	}
	walk(0, 1)
	return best, bestPath
}

// sampleConditionalHidden repeatedly samples state/obs
// sequences from the model and emits the state sequences
// whose observations match out.
func sampleConditionalHidden(ctx context.Context, m *Model, out []Obs) <-chan []State {
	res := make(chan []State, runtime.GOMAXPROCS(0))
	for i := 0; i < runtime.GOMAXPROCS(0); i++ {
		go func() {
			gen := rand.New(rand.NewSource(rand.Int63()))
			for {
				states, outs := m.SampleLen(gen, len(out))
				if obsSeqsEqual(outs, out) {
					select {
					case res <- states:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}
	return res
}

func mostFrequentStateSeq(all [][]State) []State {
	counts := map[string]int{}
	reps := map[string][]State{}
	for _, seq := range all {
		key := fmt.Sprintf("%v", seq)
		counts[key]++
		reps[key] = seq
	}

	var maxKey string
	var maxCount int
	for key, count := range counts {
		if count >= maxCount {
			maxCount = count
			maxKey = key
		}
	}
	return reps[maxKey]
}
