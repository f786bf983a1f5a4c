// Package serialize converts the kernel's in-memory model (topo.Solid,
// topo.CompressedShell, mesh.PolygonMesh) to and from a deterministic
// JSON wire format, and declares the external-format export contracts
// (StepExporter, MeshExporter) that a downstream adapter implements.
//
// Every geometry variant that carries only exported, JSON-native fields
// (Point3, Vector3, Interval, Transform and anything built from them)
// round-trips directly. Curve and Surface are interfaces, so CurveDTO and
// SurfaceDTO provide the discriminated union a bare json.Marshal can't
// produce for an interface value; MarshalCurve/UnmarshalCurve and
// MarshalSurface/UnmarshalSurface walk it. RbfSurface, PCurve, and
// IntersectionCurve hold closures or Newton-refined runtime state with no
// static payload to serialize -- Document encoding rejects a shell that
// references one of them with kernelerr.ErrIoFormat rather than silently
// dropping geometry, per the same "closed set of error kinds" convention
// kernelerr documents for the rest of the module.
package serialize

import (
	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/kernelerr"
)

// CurveDTO is the discriminated-union wire form of a geom.Curve. Exactly
// one payload field is set, named by Kind.
type CurveDTO struct {
	Kind        string             `json:"kind"`
	Line        *lineDTO           `json:"line,omitempty"`
	Circle      *circleDTO         `json:"circle,omitempty"`
	Parabola    *parabolaDTO       `json:"parabola,omitempty"`
	Hyperbola   *hyperbolaDTO      `json:"hyperbola,omitempty"`
	RotationArc *rotationArcDTO    `json:"rotationArc,omitempty"`
	BSpline     *bsplineCurveDTO   `json:"bspline,omitempty"`
	Nurbs       *nurbsCurveDTO     `json:"nurbs,omitempty"`
	Trimmed     *trimmedCurveDTO   `json:"trimmed,omitempty"`
	Processor   *curveProcessorDTO `json:"processor,omitempty"`
}

type lineDTO struct {
	Origin    geom.Point3   `json:"origin"`
	Direction geom.Vector3  `json:"direction"`
	Bounds    geom.Interval `json:"bounds"`
}

type circleDTO struct {
	Xf geom.Transform `json:"xf"`
}

type parabolaDTO struct {
	Xf     geom.Transform `json:"xf"`
	Bounds geom.Interval  `json:"bounds"`
}

type hyperbolaDTO struct {
	Xf     geom.Transform `json:"xf"`
	Bounds geom.Interval  `json:"bounds"`
}

type rotationArcDTO struct {
	Origin geom.Point3   `json:"origin"`
	Axis   geom.Vector3  `json:"axis"`
	Point  geom.Point3   `json:"point"`
	Bounds geom.Interval `json:"bounds"`
}

type knotVectorDTO struct {
	Knots  []float64 `json:"knots"`
	Degree int       `json:"degree"`
}

type bsplineCurveDTO struct {
	Knots    knotVectorDTO `json:"knots"`
	Controls []geom.Point3 `json:"controls"`
}

type nurbsCurveDTO struct {
	Knots    knotVectorDTO `json:"knots"`
	Controls []geom.Point3 `json:"controls"`
	Weights  []float64     `json:"weights"`
}

type trimmedCurveDTO struct {
	Inner CurveDTO      `json:"inner"`
	Range geom.Interval `json:"range"`
}

type curveProcessorDTO struct {
	Inner CurveDTO       `json:"inner"`
	Xf    geom.Transform `json:"xf"`
}

// MarshalCurve converts c to its wire form, or returns
// kernelerr.ErrIoFormat if c is a variant with no static representation.
func MarshalCurve(c geom.Curve) (CurveDTO, error) {
	switch v := c.(type) {
	case *geom.Line:
		return CurveDTO{Kind: "line", Line: &lineDTO{Origin: v.Origin, Direction: v.Direction, Bounds: v.Bounds()}}, nil
	case geom.UnitCircle:
		return CurveDTO{Kind: "circle", Circle: &circleDTO{Xf: v.Xf}}, nil
	case geom.UnitParabola:
		return CurveDTO{Kind: "parabola", Parabola: &parabolaDTO{Xf: v.Xf, Bounds: v.Bounds()}}, nil
	case geom.UnitHyperbola:
		return CurveDTO{Kind: "hyperbola", Hyperbola: &hyperbolaDTO{Xf: v.Xf, Bounds: v.Bounds()}}, nil
	case *geom.RotationArc:
		return CurveDTO{Kind: "rotationArc", RotationArc: &rotationArcDTO{Origin: v.Origin, Axis: v.Axis, Point: v.Point, Bounds: v.Bounds()}}, nil
	case *geom.BSplineCurve3D:
		return CurveDTO{Kind: "bspline", BSpline: &bsplineCurveDTO{
			Knots:    knotVectorToDTO(v.Knots()),
			Controls: v.ControlPoints(),
		}}, nil
	case *geom.NurbsCurve:
		controls, weights := dehomogenizeCurve(v)
		return CurveDTO{Kind: "nurbs", Nurbs: &nurbsCurveDTO{
			Knots:    knotVectorToDTO(v.Knots()),
			Controls: controls,
			Weights:  weights,
		}}, nil
	case geom.TrimmedCurve:
		inner, err := MarshalCurve(v.Inner)
		if err != nil {
			return CurveDTO{}, err
		}
		return CurveDTO{Kind: "trimmed", Trimmed: &trimmedCurveDTO{Inner: inner, Range: v.Range}}, nil
	case geom.CurveProcessor:
		inner, err := MarshalCurve(v.Inner)
		if err != nil {
			return CurveDTO{}, err
		}
		return CurveDTO{Kind: "processor", Processor: &curveProcessorDTO{Inner: inner, Xf: v.Xf}}, nil
	default:
		return CurveDTO{}, kernelerr.ErrIoFormat
	}
}

// UnmarshalCurve rebuilds a geom.Curve from its wire form.
func UnmarshalCurve(dto CurveDTO) (geom.Curve, error) {
	switch dto.Kind {
	case "line":
		d := dto.Line
		return geom.NewLine(d.Origin, d.Direction, d.Bounds.Min, d.Bounds.Max), nil
	case "circle":
		return geom.UnitCircle{Xf: dto.Circle.Xf}, nil
	case "parabola":
		d := dto.Parabola
		return geom.NewUnitParabola(d.Xf, d.Bounds.Min, d.Bounds.Max), nil
	case "hyperbola":
		d := dto.Hyperbola
		return geom.NewUnitHyperbola(d.Xf, d.Bounds.Min, d.Bounds.Max), nil
	case "rotationArc":
		// NewUnitCircleArc normalizes bounds to [min(0,angle), max(0,angle)],
		// so exactly one of Min/Max is zero and the other recovers angle's
		// original sign and magnitude.
		d := dto.RotationArc
		return geom.NewUnitCircleArc(d.Origin, d.Axis, d.Point, d.Bounds.Max+d.Bounds.Min), nil
	case "bspline":
		d := dto.BSpline
		kv, err := knotVectorFromDTO(d.Knots)
		if err != nil {
			return nil, err
		}
		return geom.NewBSplineCurve3D(kv, d.Controls)
	case "nurbs":
		d := dto.Nurbs
		kv, err := knotVectorFromDTO(d.Knots)
		if err != nil {
			return nil, err
		}
		return geom.NewNurbsCurve(kv, d.Controls, d.Weights)
	case "trimmed":
		d := dto.Trimmed
		inner, err := UnmarshalCurve(d.Inner)
		if err != nil {
			return nil, err
		}
		return geom.NewTrimmedCurve(inner, d.Range.Min, d.Range.Max), nil
	case "processor":
		d := dto.Processor
		inner, err := UnmarshalCurve(d.Inner)
		if err != nil {
			return nil, err
		}
		return geom.CurveProcessor{Inner: inner, Xf: d.Xf}, nil
	default:
		return nil, kernelerr.ErrIoFormat
	}
}

func knotVectorToDTO(kv geom.KnotVector) knotVectorDTO {
	knots := make([]float64, kv.Len())
	for i := range knots {
		knots[i] = kv.At(i)
	}
	return knotVectorDTO{Knots: knots, Degree: kv.Degree()}
}

func knotVectorFromDTO(d knotVectorDTO) (geom.KnotVector, error) {
	return geom.NewKnotVector(d.Knots, d.Degree)
}

func dehomogenizeCurve(c *geom.NurbsCurve) ([]geom.Point3, []float64) {
	return c.ControlPolygon()
}
