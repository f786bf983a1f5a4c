package kernel

import "testing"

func TestNewDefaults(t *testing.T) {
	c := New()
	if c.Epsilon != Epsilon {
		t.Errorf("Epsilon = %v, want %v", c.Epsilon, Epsilon)
	}
	if c.TopoEpsilon != TopoEpsilon {
		t.Errorf("TopoEpsilon = %v, want %v", c.TopoEpsilon, TopoEpsilon)
	}
	if c.Workers <= 0 {
		t.Errorf("Workers = %d, want > 0", c.Workers)
	}
}

func TestOptionsOverride(t *testing.T) {
	c := New(WithEpsilon(1e-4), WithTopoEpsilon(1e-2), WithWorkers(3), WithMaxNewtonIterations(10))
	if c.Epsilon != 1e-4 || c.TopoEpsilon != 1e-2 || c.Workers != 3 || c.MaxNewtonIterations != 10 {
		t.Fatalf("options not applied: %+v", c)
	}
}

func TestWithWorkersNonPositiveFallsBackToGOMAXPROCS(t *testing.T) {
	c := New(WithWorkers(0))
	if c.Workers <= 0 {
		t.Fatalf("expected positive worker count, got %d", c.Workers)
	}
}
