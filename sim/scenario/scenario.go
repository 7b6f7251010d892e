// Package scenario loads simulation scenarios from YAML and provides the
// built-in textbook dump-truck scenario.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/dumptruck-sim/dumptruck-sim/sim"
)

// Scenario is the top-level scenario file.
// Distributions are block strings in the "<value>, <probability>" line format.
type Scenario struct {
	Name         string  `yaml:"name,omitempty"`
	Trucks       int     `yaml:"trucks"`
	Loaders      int     `yaml:"loaders"`
	Scales       int     `yaml:"scales"`
	Horizon      float64 `yaml:"horizon"`
	Seed         int64   `yaml:"seed"`
	RNG          string  `yaml:"rng,omitempty"`
	InitialState string  `yaml:"initial_state,omitempty"`

	Distributions Distributions `yaml:"distributions"`
}

// Distributions holds the three service/travel time tables as text.
type Distributions struct {
	Loading  string `yaml:"loading"`
	Weighing string `yaml:"weighing"`
	Travel   string `yaml:"travel"`
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a YAML scenario. Fields absent from data keep the
// values of Default().
func ParseScenario(data []byte) (*Scenario, error) {
	sc := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if sc.Trucks == TextbookTrucks && sc.Loaders == TextbookLoaders && sc.Scales == TextbookScales &&
		sc.InitialState == "" {
		logrus.Debugf("scenario %q matches textbook dimensions; textbook initial state applies", sc.Name)
	}
	return sc, nil
}

// Validate checks the scalar fields of the scenario.
func (s *Scenario) Validate() error {
	if !sim.IsValidRNGKind(s.RNG) {
		return fmt.Errorf("%w: unknown rng %q; valid: math, mrg32k3a", sim.ErrInvalidConfig, s.RNG)
	}
	if !sim.IsValidInitialState(s.InitialState) {
		return fmt.Errorf("%w: unknown initial_state %q; valid: auto, general, textbook", sim.ErrInvalidConfig, s.InitialState)
	}
	return nil
}

// ToSimConfig parses the distribution texts and returns the engine config.
// Parse errors name the offending distribution.
func (s *Scenario) ToSimConfig() (sim.SimConfig, error) {
	if err := s.Validate(); err != nil {
		return sim.SimConfig{}, err
	}
	loading, err := sim.ParseTable(s.Distributions.Loading)
	if err != nil {
		return sim.SimConfig{}, fmt.Errorf("distributions.loading: %w", err)
	}
	weighing, err := sim.ParseTable(s.Distributions.Weighing)
	if err != nil {
		return sim.SimConfig{}, fmt.Errorf("distributions.weighing: %w", err)
	}
	travel, err := sim.ParseTable(s.Distributions.Travel)
	if err != nil {
		return sim.SimConfig{}, fmt.Errorf("distributions.travel: %w", err)
	}
	if sim.InitialState(s.InitialState) == sim.InitialStateTextbook &&
		(s.Trucks != TextbookTrucks || s.Loaders != TextbookLoaders || s.Scales != TextbookScales) {
		logrus.Warnf("scenario %q forces the textbook initial state with %d trucks, %d loaders, %d scales; "+
			"trucks 1..%d start at the loader and truck %d at the scale",
			s.Name, s.Trucks, s.Loaders, s.Scales, s.Trucks-1, s.Trucks)
	}
	cfg := sim.SimConfig{
		Trucks:       s.Trucks,
		Loaders:      s.Loaders,
		Scales:       s.Scales,
		Horizon:      s.Horizon,
		InitialState: sim.InitialState(s.InitialState),
		Loading:      loading,
		Weighing:     weighing,
		Travel:       travel,
	}
	return cfg, cfg.Validate()
}
