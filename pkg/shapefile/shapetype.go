package shapefile

import "fmt"

// ShapeType identifies a geometry kind by its wire code.
//
// Reference: ESRI Shapefile Technical Description (July 1998), Table 1.
type ShapeType int32

const (
	ShapeTypeNull        ShapeType = 0
	ShapeTypePoint       ShapeType = 1
	ShapeTypePolyline    ShapeType = 3
	ShapeTypePolygon     ShapeType = 5
	ShapeTypeMultiPoint  ShapeType = 8
	ShapeTypePointZ      ShapeType = 11
	ShapeTypePolylineZ   ShapeType = 13
	ShapeTypePolygonZ    ShapeType = 15
	ShapeTypeMultiPointZ ShapeType = 18
	ShapeTypePointM      ShapeType = 21
	ShapeTypePolylineM   ShapeType = 23
	ShapeTypePolygonM    ShapeType = 25
	ShapeTypeMultiPointM ShapeType = 28
	ShapeTypeMultiPatch  ShapeType = 31
)

// String returns the shape type name.
func (t ShapeType) String() string {
	switch t {
	case ShapeTypeNull:
		return "NullShape"
	case ShapeTypePoint:
		return "Point"
	case ShapeTypePolyline:
		return "Polyline"
	case ShapeTypePolygon:
		return "Polygon"
	case ShapeTypeMultiPoint:
		return "MultiPoint"
	case ShapeTypePointZ:
		return "PointZ"
	case ShapeTypePolylineZ:
		return "PolylineZ"
	case ShapeTypePolygonZ:
		return "PolygonZ"
	case ShapeTypeMultiPointZ:
		return "MultiPointZ"
	case ShapeTypePointM:
		return "PointM"
	case ShapeTypePolylineM:
		return "PolylineM"
	case ShapeTypePolygonM:
		return "PolygonM"
	case ShapeTypeMultiPointM:
		return "MultiPointM"
	case ShapeTypeMultiPatch:
		return "MultiPatch"
	default:
		return fmt.Sprintf("ShapeType(%d)", int32(t))
	}
}

// IsSupported reports whether records of this type can be decoded and
// encoded. MultiPoint and MultiPatch codes are recognized but not supported.
func (t ShapeType) IsSupported() bool {
	switch t {
	case ShapeTypeNull,
		ShapeTypePoint, ShapeTypePointM, ShapeTypePointZ,
		ShapeTypePolyline, ShapeTypePolylineM, ShapeTypePolylineZ,
		ShapeTypePolygon, ShapeTypePolygonM, ShapeTypePolygonZ:
		return true
	}
	return false
}

// HasZ reports whether the type carries elevation values.
func (t ShapeType) HasZ() bool {
	switch t {
	case ShapeTypePointZ, ShapeTypePolylineZ, ShapeTypePolygonZ, ShapeTypeMultiPointZ, ShapeTypeMultiPatch:
		return true
	}
	return false
}

// HasM reports whether the type carries measure values. Z types carry a
// measure block as well.
func (t ShapeType) HasM() bool {
	switch t {
	case ShapeTypePointM, ShapeTypePolylineM, ShapeTypePolygonM, ShapeTypeMultiPointM:
		return true
	}
	return t.HasZ()
}

func (t ShapeType) isPoint() bool {
	return t == ShapeTypePoint || t == ShapeTypePointM || t == ShapeTypePointZ
}
