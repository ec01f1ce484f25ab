package viterbi

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOK(t *testing.T) {
	m := weatherModel()
	assert.NoError(t, m.Validate([]Obs{"walk", "shop", "clean"}))
}

func TestValidateRejects(t *testing.T) {
	obs := []Obs{"walk", "shop", "clean"}

	cases := []struct {
		name   string
		obs    []Obs
		mutate func(m *Model)
		rule   Rule
		state  State
	}{
		{
			name: "EmptyObservations",
			obs:  nil,
			rule: RuleObservations,
		},
		{
			name:   "EmptyStates",
			obs:    obs,
			mutate: func(m *Model) { m.States = nil },
			rule:   RuleStates,
		},
		{
			name:   "StartMissingState",
			obs:    obs,
			mutate: func(m *Model) { delete(m.Start, "Sunny") },
			rule:   RuleStart,
		},
		{
			name:   "StartUnknownState",
			obs:    obs,
			mutate: func(m *Model) { m.Start["Foggy"] = 0.1 },
			rule:   RuleStart,
		},
		{
			name:   "TransitionsMissingSource",
			obs:    obs,
			mutate: func(m *Model) { delete(m.Transitions, "Rainy") },
			rule:   RuleTransitions,
		},
		{
			name:   "TransitionRowMissingDest",
			obs:    obs,
			mutate: func(m *Model) { delete(m.Transitions["Rainy"], "Sunny") },
			rule:   RuleTransitionRow,
			state:  "Rainy",
		},
		{
			name:   "TransitionRowUnknownDest",
			obs:    obs,
			mutate: func(m *Model) { m.Transitions["Sunny"]["Foggy"] = 0.2 },
			rule:   RuleTransitionRow,
			state:  "Sunny",
		},
		{
			name:   "EmissionsUnknownState",
			obs:    obs,
			mutate: func(m *Model) { m.Emissions["Foggy"] = map[Obs]float64{} },
			rule:   RuleEmissions,
		},
		{
			name:   "EmissionRowMissingSymbol",
			obs:    obs,
			mutate: func(m *Model) { delete(m.Emissions["Sunny"], "clean") },
			rule:   RuleEmissionRow,
			state:  "Sunny",
		},
		{
			name: "EmissionRowUnobservedSymbol",
			// "clean" never occurs, so both emission rows
			// carry an extra key.
			obs:   []Obs{"walk", "shop"},
			rule:  RuleEmissionRow,
			state: "Rainy",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := weatherModel()
			if c.mutate != nil {
				c.mutate(m)
			}

			prob, path, err := m.Decode(c.obs)
			require.Error(t, err)
			assert.Zero(t, prob)
			assert.Nil(t, path)

			found := false
			for _, verr := range validationErrors(t, err) {
				if verr.Rule == c.rule && (c.state == nil || verr.State == c.state) {
					found = true
				}
			}
			assert.True(t, found, "expected rule %v in %v", c.rule, err)
		})
	}
}

// validationErrors unpacks every ValidationError joined
// in a Validate result.
func validationErrors(t *testing.T, err error) []*ValidationError {
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)

	var verrs []*ValidationError
	for _, wrapped := range merr.WrappedErrors() {
		var verr *ValidationError
		require.ErrorAs(t, wrapped, &verr)
		verrs = append(verrs, verr)
	}
	return verrs
}
