// Package kernel is the B-rep CAD kernel: parametric geometry (package
// geom), B-rep topology (package topo), modeling operators (package
// model), the fillet engine (package fillet), polygon meshes (package
// mesh), and the tessellator (package tessellate). This root package
// holds the cross-cutting ambient concerns the sub-packages share:
// logging, configuration, and default tolerances.
//
// # Quick start
//
//	v := topo.NewVertex(geom.Point3{X: -0.5, Y: -0.5, Z: -0.5})
//	e, _ := model.TSweep(v, geom.Vector3{X: 1}, 1e-6)
//	f, _ := model.TSweep(e.(*topo.Edge), geom.Vector3{Y: 1}, 1e-6)
//	s, _ := model.TSweep(f.(*topo.Face), geom.Vector3{Z: 1}, 1e-6)
//	solid := s.(*topo.Solid)
//	mesh, _ := tessellate.Tessellate(solid.OuterShell(), 0.01, kernel.DefaultConfig)
//
// # Tolerances
//
// A single tolerance epsilon (default 1e-7) governs geometric equality; a
// coarser topology tolerance (default 1e-3) governs topological merge.
// Both are fields of Config, but only tessellate.Tessellate takes a
// Config (and reads only its Epsilon); geom uses TopoEpsilon directly for
// Surface.Inclusion, and topo, model and fillet take explicit tolerance
// arguments or fixed values.
package kernel

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely,
// making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger, accessed atomically so SetLogger can
// race safely with logging from tessellation worker goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger that Logger returns. By default the
// kernel produces no log output. Pass nil to restore the silent default.
// The kernel's own packages emit no records through it.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger currently in use. Callers that fetch it on
// each use rather than holding their own copy see SetLogger take effect
// immediately.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
