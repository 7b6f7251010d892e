package sim

// scriptedSource replays a fixed list of uniforms, cycling when exhausted.
type scriptedSource struct {
	vals []float64
	i    int
}

func newScriptedSource(vals ...float64) *scriptedSource {
	return &scriptedSource{vals: vals}
}

func (s *scriptedSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// textbookTables returns the classic dump-truck distributions.
func textbookTables() (loading, weighing, travel Table) {
	loading = Table{{5, 0.30}, {10, 0.50}, {15, 0.20}}
	weighing = Table{{12, 0.70}, {16, 0.30}}
	travel = Table{{40, 0.40}, {60, 0.30}, {80, 0.20}, {100, 0.10}}
	return
}

// newTestConfig returns a valid config with textbook distributions.
func newTestConfig(trucksN, loadersN, scalesN int, horizon float64) SimConfig {
	loading, weighing, travel := textbookTables()
	return SimConfig{
		Trucks:   trucksN,
		Loaders:  loadersN,
		Scales:   scalesN,
		Horizon:  horizon,
		Loading:  loading,
		Weighing: weighing,
		Travel:   travel,
	}
}
