package serialize

import (
	"github.com/go-brep/kernel/geom"
	"github.com/go-brep/kernel/kernelerr"
)

// SurfaceDTO is the discriminated-union wire form of a geom.Surface.
type SurfaceDTO struct {
	Kind      string               `json:"kind"`
	Plane     *planeDTO            `json:"plane,omitempty"`
	Sphere    *sphereDTO           `json:"sphere,omitempty"`
	Revolved  *revolvedSurfaceDTO  `json:"revolved,omitempty"`
	Extruded  *extrudedSurfaceDTO  `json:"extruded,omitempty"`
	BSpline   *bsplineSurfaceDTO   `json:"bspline,omitempty"`
	Nurbs     *nurbsSurfaceDTO     `json:"nurbs,omitempty"`
	Trimmed   *trimmedSurfaceDTO   `json:"trimmed,omitempty"`
	Processor *surfaceProcessorDTO `json:"processor,omitempty"`
}

type planeDTO struct {
	Origin geom.Point3  `json:"origin"`
	U      geom.Vector3 `json:"u"`
	V      geom.Vector3 `json:"v"`
}

type sphereDTO struct {
	Origin geom.Point3 `json:"origin"`
	R      float64     `json:"r"`
}

type revolvedSurfaceDTO struct {
	Profile CurveDTO     `json:"profile"`
	Origin  geom.Point3  `json:"origin"`
	Axis    geom.Vector3 `json:"axis"`
}

type extrudedSurfaceDTO struct {
	Profile   CurveDTO      `json:"profile"`
	Direction geom.Vector3  `json:"direction"`
	Length    geom.Interval `json:"length"`
}

type bsplineSurfaceDTO struct {
	UKnots   knotVectorDTO   `json:"uKnots"`
	VKnots   knotVectorDTO   `json:"vKnots"`
	Controls [][]geom.Point3 `json:"controls"`
}

type nurbsSurfaceDTO struct {
	UKnots   knotVectorDTO   `json:"uKnots"`
	VKnots   knotVectorDTO   `json:"vKnots"`
	Controls [][]geom.Point3 `json:"controls"`
	Weights  [][]float64     `json:"weights"`
}

type trimmedSurfaceDTO struct {
	Inner  SurfaceDTO    `json:"inner"`
	URange geom.Interval `json:"uRange"`
	VRange geom.Interval `json:"vRange"`
}

type surfaceProcessorDTO struct {
	Inner SurfaceDTO     `json:"inner"`
	Xf    geom.Transform `json:"xf"`
}

// MarshalSurface converts s to its wire form, or returns
// kernelerr.ErrIoFormat for a variant with no static representation
// (RbfSurface, whose Center/E1/E2/Radius/Angle fields are closures built
// fresh by the fillet engine for each blend and never meant to outlive
// that call).
func MarshalSurface(s geom.Surface) (SurfaceDTO, error) {
	switch v := s.(type) {
	case geom.Plane:
		return SurfaceDTO{Kind: "plane", Plane: &planeDTO{Origin: v.Origin, U: v.U, V: v.V}}, nil
	case geom.Sphere:
		return SurfaceDTO{Kind: "sphere", Sphere: &sphereDTO{Origin: v.Origin, R: v.R}}, nil
	case geom.RevolutedSurface:
		profile, err := MarshalCurve(v.Profile)
		if err != nil {
			return SurfaceDTO{}, err
		}
		return SurfaceDTO{Kind: "revolved", Revolved: &revolvedSurfaceDTO{Profile: profile, Origin: v.Origin, Axis: v.Axis}}, nil
	case geom.ExtrudedSurface:
		profile, err := MarshalCurve(v.Profile)
		if err != nil {
			return SurfaceDTO{}, err
		}
		return SurfaceDTO{Kind: "extruded", Extruded: &extrudedSurfaceDTO{Profile: profile, Direction: v.Direction, Length: v.Length}}, nil
	case *geom.BSplineSurface:
		uk, vk := v.Knots()
		return SurfaceDTO{Kind: "bspline", BSpline: &bsplineSurfaceDTO{
			UKnots: knotVectorToDTO(uk), VKnots: knotVectorToDTO(vk), Controls: v.ControlGrid(),
		}}, nil
	case *geom.NurbsSurface:
		uk, vk := v.Knots()
		points, weights := v.ControlGrid()
		return SurfaceDTO{Kind: "nurbs", Nurbs: &nurbsSurfaceDTO{
			UKnots: knotVectorToDTO(uk), VKnots: knotVectorToDTO(vk), Controls: points, Weights: weights,
		}}, nil
	case *geom.TrimmedSurface:
		if len(v.Holes) > 0 || len(v.OuterBounds) > 0 {
			return SurfaceDTO{}, kernelerr.ErrIoFormat
		}
		inner, err := MarshalSurface(v.Inner)
		if err != nil {
			return SurfaceDTO{}, err
		}
		return SurfaceDTO{Kind: "trimmed", Trimmed: &trimmedSurfaceDTO{Inner: inner, URange: v.URange, VRange: v.VRange}}, nil
	case geom.SurfaceProcessor:
		inner, err := MarshalSurface(v.Inner)
		if err != nil {
			return SurfaceDTO{}, err
		}
		return SurfaceDTO{Kind: "processor", Processor: &surfaceProcessorDTO{Inner: inner, Xf: v.Xf}}, nil
	default:
		return SurfaceDTO{}, kernelerr.ErrIoFormat
	}
}

// UnmarshalSurface rebuilds a geom.Surface from its wire form.
func UnmarshalSurface(dto SurfaceDTO) (geom.Surface, error) {
	switch dto.Kind {
	case "plane":
		d := dto.Plane
		return geom.Plane{Origin: d.Origin, U: d.U, V: d.V}, nil
	case "sphere":
		d := dto.Sphere
		return geom.Sphere{Origin: d.Origin, R: d.R}, nil
	case "revolved":
		d := dto.Revolved
		profile, err := UnmarshalCurve(d.Profile)
		if err != nil {
			return nil, err
		}
		return geom.RevolutedSurface{Profile: profile, Origin: d.Origin, Axis: d.Axis}, nil
	case "extruded":
		d := dto.Extruded
		profile, err := UnmarshalCurve(d.Profile)
		if err != nil {
			return nil, err
		}
		return geom.ExtrudedSurface{Profile: profile, Direction: d.Direction, Length: d.Length}, nil
	case "bspline":
		d := dto.BSpline
		uk, err := knotVectorFromDTO(d.UKnots)
		if err != nil {
			return nil, err
		}
		vk, err := knotVectorFromDTO(d.VKnots)
		if err != nil {
			return nil, err
		}
		return geom.NewBSplineSurface(uk, vk, d.Controls)
	case "nurbs":
		d := dto.Nurbs
		uk, err := knotVectorFromDTO(d.UKnots)
		if err != nil {
			return nil, err
		}
		vk, err := knotVectorFromDTO(d.VKnots)
		if err != nil {
			return nil, err
		}
		return geom.NewNurbsSurface(uk, vk, d.Controls, d.Weights)
	case "trimmed":
		d := dto.Trimmed
		inner, err := UnmarshalSurface(d.Inner)
		if err != nil {
			return nil, err
		}
		return geom.NewTrimmedSurface(inner, d.URange.Min, d.URange.Max, d.VRange.Min, d.VRange.Max), nil
	case "processor":
		d := dto.Processor
		inner, err := UnmarshalSurface(d.Inner)
		if err != nil {
			return nil, err
		}
		return geom.SurfaceProcessor{Inner: inner, Xf: d.Xf}, nil
	default:
		return nil, kernelerr.ErrIoFormat
	}
}
