package topo

import (
	"github.com/go-brep/kernel/identity"
	"github.com/go-brep/kernel/internal/parallel"
)

// Shell is a collection of Faces, not necessarily forming a closed
// boundary: a Shell can be disconnected, open (boundary edges shared by
// only one face), or closed. Solid requires its shells to be closed and
// consistently oriented; the weaker states are legal intermediate
// results during modeling (e.g. a single swept face before capping).
type Shell struct {
	id    identity.Token
	faces []*Face
}

// NewShell wraps faces in a Shell with a fresh identity. No closure or
// orientation check is performed here; call the predicate methods to
// classify the result.
func NewShell(faces []*Face) *Shell {
	cp := make([]*Face, len(faces))
	copy(cp, faces)
	return &Shell{id: identity.New(), faces: cp}
}

// ID returns the shell's identity token.
func (s *Shell) ID() identity.Token { return s.id }

// Faces returns the shell's faces.
func (s *Shell) Faces() []*Face {
	cp := make([]*Face, len(s.faces))
	copy(cp, s.faces)
	return cp
}

// edgeUse records which faces use an edge identity and in which sense,
// the bookkeeping unit every shell predicate is built from.
type edgeUse struct {
	faceCount     int
	forwardCount  int
	backwardCount int
}

func (s *Shell) edgeUses() map[identity.Token]*edgeUse {
	uses := make(map[identity.Token]*edgeUse)
	record := func(w *Wire) {
		for _, e := range w.Edges() {
			u := uses[e.ID()]
			if u == nil {
				u = &edgeUse{}
				uses[e.ID()] = u
			}
			u.faceCount++
			if _, reversed := e.(Reversed); reversed {
				u.backwardCount++
			} else {
				u.forwardCount++
			}
		}
	}
	for _, f := range s.faces {
		record(f.outer)
		for _, h := range f.holes {
			record(h)
		}
	}
	return uses
}

// Disconnected reports whether the shell's faces split into more than
// one connected component under shared-edge adjacency.
func (s *Shell) Disconnected() bool {
	return s.componentCount() > 1
}

func (s *Shell) componentCount() int {
	if len(s.faces) == 0 {
		return 0
	}
	adjacency := make(map[identity.Token][]identity.Token)
	edgeToFaces := make(map[identity.Token][]identity.Token)
	walk := func(faceID identity.Token, w *Wire) {
		for _, e := range w.Edges() {
			edgeToFaces[e.ID()] = append(edgeToFaces[e.ID()], faceID)
		}
	}
	for _, f := range s.faces {
		walk(f.id, f.outer)
		for _, h := range f.holes {
			walk(f.id, h)
		}
	}
	for _, faces := range edgeToFaces {
		for i := range faces {
			for j := range faces {
				if i != j {
					adjacency[faces[i]] = append(adjacency[faces[i]], faces[j])
				}
			}
		}
	}
	visited := make(map[identity.Token]bool)
	components := 0
	for _, f := range s.faces {
		if visited[f.id] {
			continue
		}
		components++
		stack := []identity.Token{f.id}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[cur] {
				continue
			}
			visited[cur] = true
			stack = append(stack, adjacency[cur]...)
		}
	}
	return components
}

// Open reports whether any edge is used by exactly one face (a free
// boundary), as opposed to exactly two for a closed manifold shell.
func (s *Shell) Open() bool {
	for _, u := range s.edgeUses() {
		if u.faceCount == 1 {
			return true
		}
	}
	return false
}

// Oriented reports whether every edge shared by two faces is traversed in
// opposite senses by each (the consistent-orientation requirement for a
// manifold, orientable shell).
func (s *Shell) Oriented() bool {
	for _, u := range s.edgeUses() {
		if u.faceCount == 2 && (u.forwardCount != 1 || u.backwardCount != 1) {
			return false
		}
	}
	return true
}

// ClosedButNotOriented reports whether the shell is closed (every edge
// used by exactly two faces) but fails the orientation check.
func (s *Shell) ClosedButNotOriented() bool {
	closed := true
	for _, u := range s.edgeUses() {
		if u.faceCount != 2 {
			closed = false
			break
		}
	}
	return closed && !s.Oriented()
}

// Regular reports whether the shell is connected, closed, and oriented:
// the state Solid requires of every shell it wraps.
func (s *Shell) Regular() bool {
	return !s.Disconnected() && !s.Open() && s.Oriented()
}

// SingularVertices returns the identities of vertices where more than two
// edges of the shell meet, a configuration Euler operators must reject
// (cut_face_by_edge, add_boundary) since it breaks the manifold
// assumption the fillet engine and tessellator both depend on.
func (s *Shell) SingularVertices() []identity.Token {
	degree := make(map[identity.Token]int)
	walk := func(w *Wire) {
		for _, e := range w.Edges() {
			degree[e.Front().ID()]++
			degree[e.Back().ID()]++
		}
	}
	for _, f := range s.faces {
		walk(f.outer)
		for _, h := range f.holes {
			walk(h)
		}
	}
	var out []identity.Token
	for v, d := range degree {
		if d > 4 { // two edges each contribute to both endpoints => 4 is regular for a manifold vertex shared by 2 edges
			out = append(out, v)
		}
	}
	return out
}

// FaceIterPar runs fn over every face of s concurrently using a worker
// pool sized by GOMAXPROCS, returning the first error any call reports
// (in face order, not completion order). Used by the tessellator's
// per-face fan-out.
func (s *Shell) FaceIterPar(fn func(*Face) error) error {
	pool := parallel.NewWorkerPool(0)
	defer pool.Close()

	errs := make([]error, len(s.faces))
	work := make([]func(), len(s.faces))
	for i, f := range s.faces {
		i, f := i, f
		work[i] = func() { errs[i] = fn(f) }
	}
	pool.ExecuteAll(work)
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
