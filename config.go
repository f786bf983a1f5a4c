package kernel

import "runtime"

// Epsilon is the default geometric tolerance and the default of
// Config.Epsilon. Of the kernel's packages only tessellate reads it, as
// Config.Epsilon, its fallback sampling tolerance.
const Epsilon = 1e-7

// TopoEpsilon is the default, coarser tolerance for topological work.
// Package geom uses it as the distance bound of Surface.Inclusion; the
// topo and model constructors take their tolerance as an argument.
const TopoEpsilon = 1e-3

// MaxNewtonIterations is the default of Config.MaxNewtonIterations.
// Package geom's searches use their own fixed budget of the same size and
// read neither this constant nor the Config field.
const MaxNewtonIterations = 50

// Config groups the kernel's tolerances and worker-pool sizing. Build one
// with New and the With* options; DefaultConfig is the zero-configuration
// default used when a caller does not need to override anything. Only
// tessellate.Tessellate takes a Config, and it reads only Epsilon; geom,
// topo, model and fillet take explicit tolerances or use fixed values.
type Config struct {
	Epsilon             float64
	TopoEpsilon         float64
	MaxNewtonIterations int
	Workers             int
}

// DefaultConfig mirrors the package-level constants above.
var DefaultConfig = New()

// Option configures a Config during construction.
type Option func(*Config)

// New builds a Config from the given options, defaulting every field not
// overridden.
func New(opts ...Option) Config {
	c := Config{
		Epsilon:             Epsilon,
		TopoEpsilon:         TopoEpsilon,
		MaxNewtonIterations: MaxNewtonIterations,
		Workers:             runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithEpsilon overrides the geometric tolerance.
func WithEpsilon(eps float64) Option {
	return func(c *Config) { c.Epsilon = eps }
}

// WithTopoEpsilon overrides the topological merge tolerance.
func WithTopoEpsilon(eps float64) Option {
	return func(c *Config) { c.TopoEpsilon = eps }
}

// WithMaxNewtonIterations overrides the Newton iteration budget.
func WithMaxNewtonIterations(n int) Option {
	return func(c *Config) { c.MaxNewtonIterations = n }
}

// WithWorkers overrides Config.Workers. A value <= 0 means GOMAXPROCS.
// No package reads Config.Workers: Shell.FaceIterPar, which Tessellate
// uses, always sizes its pool by GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Config) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		c.Workers = n
	}
}
