package models

// SignalFile is the YAML document the CLI reads. It carries the rotation
// grid, the signal shape and the flattened signal values.
type SignalFile struct {
	// Grid lists the (alpha, beta, gamma) Euler angle triplets, in radians,
	// in the spatial order of the signal's trailing axis. Optional: when
	// absent the CLI generates a grid from its configuration.
	Grid [][3]float64 `yaml:"grid,omitempty"`

	// Shape is the full signal shape; the trailing axis must match the grid
	// length. Optional for a single signal: when absent it defaults to one
	// axis covering all values.
	Shape []int `yaml:"shape,omitempty"`

	// Values holds the real signal samples, flattened row-major.
	Values []float64 `yaml:"values"`
}

// SpectrumFile is the YAML document the CLI writes.
type SpectrumFile struct {
	// Bandwidth is the transform bandwidth that produced the coefficients.
	Bandwidth int `yaml:"bandwidth"`

	// Shape is the output shape, the input's leading axes followed by
	// (coefficient count, 2).
	Shape []int `yaml:"shape"`

	// Values holds real and imaginary parts interleaved, flattened row-major
	// to match Shape.
	Values []float64 `yaml:"values"`
}
