package topo

import "github.com/go-brep/kernel/identity"

// Entity is any topological entity carrying a process-unique identity:
// Vertex (0-dimensional), Edge (1-dimensional), Wire (a closed loop of
// edges, still 1-dimensional as a boundary), Face (2-dimensional), Shell,
// and Solid (3-dimensional) all satisfy it. model.TSweep dispatches on
// the concrete type behind Entity to lift a profile by one dimension: a
// Vertex sweeps to an Edge, an Edge sweeps to a Face, and a closed Wire
// or Face sweeps to a Solid.
type Entity interface {
	ID() identity.Token
}
