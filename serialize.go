package viterbi

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/serializer"
)

func init() {
	serializer.RegisterTypedDeserializer((&Model{}).SerializerType(), DeserializeModel)
}

// DeserializeModel deserializes a Model.
func DeserializeModel(d []byte) (m *Model, err error) {
	defer essentials.AddCtxTo("deserialize Model", &err)

	var states []serializer.Serializer
	var startProbs []float64
	var transProbs []float64
	var emitStates []serializer.Serializer
	var emitObses []serializer.Serializer
	var emitProbs []float64
	err = serializer.DeserializeAny(d, &states, &startProbs, &transProbs,
		&emitStates, &emitObses, &emitProbs)
	if err != nil {
		return nil, err
	}

	n := len(states)
	if len(startProbs) != n || len(transProbs) != n*n ||
		len(emitObses) != len(emitStates) || len(emitProbs) != len(emitStates) {
		return nil, errors.New("mismatching slice lengths")
	} else if !serializersComparable(states, emitStates, emitObses) {
		return nil, errors.New("State or Obs not comparable")
	}

	m = &Model{
		Start:       map[State]float64{},
		Transitions: map[State]map[State]float64{},
		Emissions:   map[State]map[Obs]float64{},
	}
	for _, state := range states {
		m.States = append(m.States, state)
	}
	for i, state := range states {
		m.Start[state] = startProbs[i]
		row := map[State]float64{}
		for j, to := range states {
			row[to] = transProbs[i*n+j]
		}
		m.Transitions[state] = row
		m.Emissions[state] = map[Obs]float64{}
	}
	for i, state := range emitStates {
		row, ok := m.Emissions[state]
		if !ok {
			return nil, errors.New("emission entry for unknown state")
		}
		row[emitObses[i]] = emitProbs[i]
	}
	return m, nil
}

// SerializerType returns the unique ID used to serialize
// a Model with the serializer package.
func (m *Model) SerializerType() string {
	return "github.com/damory/viterbi.Model"
}

// Serialize serializes the Model.
//
// This requires that the states and observation symbols
// implement the serializer.Serializer interface.
func (m *Model) Serialize() (data []byte, err error) {
	defer essentials.AddCtxTo("serialize Model", &err)

	n := len(m.States)
	states := make([]serializer.Serializer, 0, n)
	for _, state := range m.States {
		ser, ok := state.(serializer.Serializer)
		if !ok {
			return nil, fmt.Errorf("not a Serializer: %T", state)
		}
		states = append(states, ser)
	}

	startProbs := make([]float64, n)
	transProbs := make([]float64, n*n)
	for i, state := range m.States {
		startProbs[i] = m.Start[state]
		for j, to := range m.States {
			transProbs[i*n+j] = m.Transitions[state][to]
		}
	}

	var emitStates []serializer.Serializer
	var emitObses []serializer.Serializer
	var emitProbs []float64
	for i, state := range m.States {
		for obs, prob := range m.Emissions[state] {
			obsSer, ok := obs.(serializer.Serializer)
			if !ok {
				return nil, fmt.Errorf("not a Serializer: %T", obs)
			}
			emitStates = append(emitStates, states[i])
			emitObses = append(emitObses, obsSer)
			emitProbs = append(emitProbs, prob)
		}
	}
	return serializer.SerializeAny(states, startProbs, transProbs,
		emitStates, emitObses, emitProbs)
}

// serializersComparable checks that every deserialized
// label can be used as a map key.
func serializersComparable(slices ...[]serializer.Serializer) bool {
	for _, slice := range slices {
		for _, obj := range slice {
			if !reflect.TypeOf(obj).Comparable() {
				return false
			}
		}
	}
	return true
}
