package scenario

import "github.com/dumptruck-sim/dumptruck-sim/sim"

// Textbook dimensions, re-exported for scenario files.
const (
	TextbookTrucks  = sim.TextbookTrucks
	TextbookLoaders = sim.TextbookLoaders
	TextbookScales  = sim.TextbookScales
)

// Textbook dump-truck distributions.
const (
	defaultLoading = `5, 0.30
10, 0.50
15, 0.20
`
	defaultWeighing = `12, 0.70
16, 0.30
`
	defaultTravel = `40, 0.40
60, 0.30
80, 0.20
100, 0.10
`
)

// Default returns the textbook scenario: 6 trucks, 2 loaders, 1 scale, horizon 76.
func Default() *Scenario {
	return &Scenario{
		Name:         "textbook",
		Trucks:       TextbookTrucks,
		Loaders:      TextbookLoaders,
		Scales:       TextbookScales,
		Horizon:      76,
		Seed:         42,
		RNG:          string(sim.RNGMath),
		InitialState: "",
		Distributions: Distributions{
			Loading:  defaultLoading,
			Weighing: defaultWeighing,
			Travel:   defaultTravel,
		},
	}
}
