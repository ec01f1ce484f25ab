// Command viterbi decodes an observation sequence against
// a hidden Markov model and prints the most probable
// state sequence.
//
// With no flags it runs the classic rainy/sunny weather
// example.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/damory/viterbi"
	"github.com/unixpickle/essentials"
)

func main() {
	modelPath := flag.String("model", "", "path to a YAML model file (default: built-in weather model)")
	obsList := flag.String("obs", "walk,shop,clean", "comma-separated observation sequence")
	trace := flag.Bool("trace", false, "print every trellis cell as it is filled")
	flag.Parse()

	model := weatherModel()
	if *modelPath != "" {
		var err error
		model, err = viterbi.LoadModelFile(*modelPath)
		if err != nil {
			essentials.Die(err)
		}
	}

	var obs []viterbi.Obs
	for _, sym := range strings.Split(*obsList, ",") {
		sym = strings.TrimSpace(sym)
		if sym == "" {
			essentials.Die("empty observation symbol in -obs")
		}
		obs = append(obs, sym)
	}

	var tracer viterbi.Tracer
	if *trace {
		tracer = viterbi.NewWriterTracer(os.Stdout)
	}

	prob, path, err := model.DecodeTraced(obs, tracer)
	if err != nil {
		essentials.Die(err)
	}

	names := make([]string, len(path))
	for i, state := range path {
		names[i] = fmt.Sprint(state)
	}
	fmt.Printf("probability: %v\n", prob)
	fmt.Printf("path: %s\n", strings.Join(names, " "))
}

// weatherModel is the rainy/sunny example model with
// walk/shop/clean observations.
func weatherModel() *viterbi.Model {
	return &viterbi.Model{
		States: []viterbi.State{"Rainy", "Sunny"},
		Start: map[viterbi.State]float64{
			"Rainy": 0.6,
			"Sunny": 0.4,
		},
		Transitions: map[viterbi.State]map[viterbi.State]float64{
			"Rainy": {"Rainy": 0.7, "Sunny": 0.3},
			"Sunny": {"Rainy": 0.4, "Sunny": 0.6},
		},
		Emissions: map[viterbi.State]map[viterbi.Obs]float64{
			"Rainy": {"walk": 0.1, "shop": 0.4, "clean": 0.5},
			"Sunny": {"walk": 0.6, "shop": 0.3, "clean": 0.1},
		},
	}
}
