package shapefile

import "math"

// NoData is the canonical "value not present" measure.
//
// Values at or below noDataThreshold decode to NoData; producers use nearby
// magnitudes (-1e38, -1.0000001e38, -1e39) for the same meaning.
const NoData = -1e38

// noDataThreshold sits one part per million above NoData.
const noDataThreshold = NoData * (1 - 1e-6)

// IsNoData reports whether v means "no value".
func IsNoData(v float64) bool {
	return v <= noDataThreshold
}

// NormalizeNoData maps every no-data magnitude to the exact NoData constant.
func NormalizeNoData(v float64) float64 {
	if IsNoData(v) {
		return NoData
	}
	return v
}

// BoundingBox is an axis-aligned XY extent.
type BoundingBox struct {
	XMin, YMin, XMax, YMax float64
}

// Width returns XMax-XMin.
func (b BoundingBox) Width() float64 { return b.XMax - b.XMin }

// Height returns YMax-YMin.
func (b BoundingBox) Height() float64 { return b.YMax - b.YMin }

// Union returns the smallest box covering both b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{
		XMin: math.Min(b.XMin, other.XMin),
		YMin: math.Min(b.YMin, other.YMin),
		XMax: math.Max(b.XMax, other.XMax),
		YMax: math.Max(b.YMax, other.YMax),
	}
}

// Intersects reports whether the boxes overlap. Touching edges count.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.XMin <= other.XMax && other.XMin <= b.XMax &&
		b.YMin <= other.YMax && other.YMin <= b.YMax
}

// Contains reports whether (x, y) lies inside or on the box.
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// Range is a [Min, Max] pair summarizing Z or M values.
type Range struct {
	Min, Max float64
}

// NoDataRange is the range of a dimension with no values.
func NoDataRange() Range {
	return Range{Min: NoData, Max: NoData}
}

// IsNoData reports whether both bounds are no-data.
func (r Range) IsNoData() bool {
	return IsNoData(r.Min) && IsNoData(r.Max)
}

// Shape is one decoded record geometry.
//
// The set of implementations is closed: *Null, *Point, *PointM, *PointZ,
// *Polyline, *PolylineM, *PolylineZ, *Polygon, *PolygonM and *PolygonZ.
type Shape interface {
	ShapeType() ShapeType
	isShape()
}

// Null is an empty record that holds a position in the file.
type Null struct{}

// Point is a 2D point.
type Point struct {
	X, Y float64
}

// PointM is a point with a measure.
type PointM struct {
	X, Y, M float64
}

// PointZ is a point with elevation and measure. M is NoData when the record
// carries no measure.
type PointZ struct {
	X, Y, Z, M float64
}

// MultiPart holds the flattened coordinates shared by polylines and polygons.
//
// Parts holds the index into Xs and Ys where each part begins. Part i runs
// to Parts[i+1], the last part to len(Xs).
type MultiPart struct {
	BBox  BoundingBox
	Parts []int32
	Xs    []float64
	Ys    []float64
}

// NumParts returns the number of parts.
func (mp *MultiPart) NumParts() int { return len(mp.Parts) }

// NumPoints returns the total number of points across all parts.
func (mp *MultiPart) NumPoints() int { return len(mp.Xs) }

// PartRange returns the [start, end) point indexes of part i.
func (mp *MultiPart) PartRange(i int) (start, end int) {
	start = int(mp.Parts[i])
	if i == len(mp.Parts)-1 {
		end = len(mp.Xs)
	} else {
		end = int(mp.Parts[i+1])
	}
	return start, end
}

// Extent computes the bounding box of the coordinates, ignoring BBox.
// An empty geometry has a zero box.
func (mp *MultiPart) Extent() BoundingBox {
	if len(mp.Xs) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{XMin: mp.Xs[0], YMin: mp.Ys[0], XMax: mp.Xs[0], YMax: mp.Ys[0]}
	for i := 1; i < len(mp.Xs); i++ {
		b.XMin = math.Min(b.XMin, mp.Xs[i])
		b.XMax = math.Max(b.XMax, mp.Xs[i])
		b.YMin = math.Min(b.YMin, mp.Ys[i])
		b.YMax = math.Max(b.YMax, mp.Ys[i])
	}
	return b
}

// Measures holds per-point M values.
type Measures struct {
	MRange Range
	Ms     []float64
}

// Elevations holds per-point Z values.
type Elevations struct {
	ZRange Range
	Zs     []float64
}

// Polyline is one or more 2D paths.
type Polyline struct {
	MultiPart
}

// PolylineM is a polyline with measures.
type PolylineM struct {
	MultiPart
	Measures
}

// PolylineZ is a polyline with elevations and measures.
type PolylineZ struct {
	MultiPart
	Elevations
	Measures
}

// Polygon is one or more 2D rings.
type Polygon struct {
	MultiPart
}

// PolygonM is a polygon with measures.
type PolygonM struct {
	MultiPart
	Measures
}

// PolygonZ is a polygon with elevations and measures.
type PolygonZ struct {
	MultiPart
	Elevations
	Measures
}

func (*Null) ShapeType() ShapeType      { return ShapeTypeNull }
func (*Point) ShapeType() ShapeType     { return ShapeTypePoint }
func (*PointM) ShapeType() ShapeType    { return ShapeTypePointM }
func (*PointZ) ShapeType() ShapeType    { return ShapeTypePointZ }
func (*Polyline) ShapeType() ShapeType  { return ShapeTypePolyline }
func (*PolylineM) ShapeType() ShapeType { return ShapeTypePolylineM }
func (*PolylineZ) ShapeType() ShapeType { return ShapeTypePolylineZ }
func (*Polygon) ShapeType() ShapeType   { return ShapeTypePolygon }
func (*PolygonM) ShapeType() ShapeType  { return ShapeTypePolygonM }
func (*PolygonZ) ShapeType() ShapeType  { return ShapeTypePolygonZ }

func (*Null) isShape()      {}
func (*Point) isShape()     {}
func (*PointM) isShape()    {}
func (*PointZ) isShape()    {}
func (*Polyline) isShape()  {}
func (*PolylineM) isShape() {}
func (*PolylineZ) isShape() {}
func (*Polygon) isShape()   {}
func (*PolygonM) isShape()  {}
func (*PolygonZ) isShape()  {}

// components splits a shape into its multi-part coordinates and optional
// Z and M arrays. Points and Null return a nil MultiPart.
func components(s Shape) (mp *MultiPart, zs *Elevations, ms *Measures) {
	switch v := s.(type) {
	case *Polyline:
		return &v.MultiPart, nil, nil
	case *PolylineM:
		return &v.MultiPart, nil, &v.Measures
	case *PolylineZ:
		return &v.MultiPart, &v.Elevations, &v.Measures
	case *Polygon:
		return &v.MultiPart, nil, nil
	case *PolygonM:
		return &v.MultiPart, nil, &v.Measures
	case *PolygonZ:
		return &v.MultiPart, &v.Elevations, &v.Measures
	}
	return nil, nil, nil
}

// MultiPartOf returns the shared coordinate arrays of a polyline or polygon
// variant. ok is false for points and Null.
func MultiPartOf(s Shape) (mp *MultiPart, ok bool) {
	mp, _, _ = components(s)
	return mp, mp != nil
}

// ShapeBounds returns the XY extent of s computed from its coordinates.
// ok is false for Null shapes and empty multi-part shapes.
func ShapeBounds(s Shape) (b BoundingBox, ok bool) {
	switch v := s.(type) {
	case *Null:
		return BoundingBox{}, false
	case *Point:
		return BoundingBox{XMin: v.X, YMin: v.Y, XMax: v.X, YMax: v.Y}, true
	case *PointM:
		return BoundingBox{XMin: v.X, YMin: v.Y, XMax: v.X, YMax: v.Y}, true
	case *PointZ:
		return BoundingBox{XMin: v.X, YMin: v.Y, XMax: v.X, YMax: v.Y}, true
	case *Polyline, *PolylineM, *PolylineZ, *Polygon, *PolygonM, *PolygonZ:
		mp, _, _ := components(v)
		if mp.NumPoints() == 0 {
			return BoundingBox{}, false
		}
		return mp.Extent(), true
	}
	return BoundingBox{}, false
}
