package kernelerr

import (
	"errors"
	"testing"
)

func TestNonManifoldEdgeErrorIs(t *testing.T) {
	err := error(&NonManifoldEdgeError{Count: 3})
	if !errors.Is(err, &NonManifoldEdgeError{Count: 1}) {
		t.Fatal("expected NonManifoldEdgeError to match regardless of Count")
	}
	if errors.Is(err, ErrDegenerateEdge) {
		t.Fatal("NonManifoldEdgeError must not match an unrelated sentinel")
	}
}

func TestConvergenceWarningMessage(t *testing.T) {
	w := &ConvergenceWarning{Iterations: 50, Residual: 1e-3}
	if w.Error() == "" {
		t.Fatal("expected non-empty message")
	}
}
