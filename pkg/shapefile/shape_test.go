package shapefile

import (
	"math"
	"testing"
)

func TestIsNoData(t *testing.T) {
	tests := []struct {
		v    float64
		want bool
	}{
		{NoData, true},
		{-1.0000001e38, true},
		{-1e39, true},
		{-math.MaxFloat64, true},
		{math.Inf(-1), true},
		{-9.999999e37, true},
		{-9.99e37, false},
		{0, false},
		{1e38, false},
	}
	for _, tt := range tests {
		if got := IsNoData(tt.v); got != tt.want {
			t.Errorf("IsNoData(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
	if got := NormalizeNoData(-1e39); got != NoData {
		t.Errorf("NormalizeNoData(-1e39) = %v, want NoData", got)
	}
	if got := NormalizeNoData(3.5); got != 3.5 {
		t.Errorf("NormalizeNoData(3.5) = %v, want 3.5", got)
	}
}

func TestBoundingBox(t *testing.T) {
	a := BoundingBox{XMin: 0, YMin: 0, XMax: 10, YMax: 5}
	b := BoundingBox{XMin: 10, YMin: 5, XMax: 20, YMax: 8}
	c := BoundingBox{XMin: 11, YMin: 0, XMax: 12, YMax: 1}

	if a.Width() != 10 || a.Height() != 5 {
		t.Errorf("Unexpected size %vx%v", a.Width(), a.Height())
	}
	if !a.Intersects(b) {
		t.Error("Expected touching boxes to intersect")
	}
	if a.Intersects(c) {
		t.Error("Expected disjoint boxes not to intersect")
	}
	if u := a.Union(c); u != (BoundingBox{XMin: 0, YMin: 0, XMax: 12, YMax: 5}) {
		t.Errorf("Unexpected union %+v", u)
	}
	if !a.Contains(10, 5) || a.Contains(10.1, 5) {
		t.Error("Contains must include edges and exclude outside points")
	}
}

func TestShapeTypeProperties(t *testing.T) {
	tests := []struct {
		st        ShapeType
		name      string
		supported bool
		z, m      bool
	}{
		{ShapeTypeNull, "NullShape", true, false, false},
		{ShapeTypePoint, "Point", true, false, false},
		{ShapeTypePointM, "PointM", true, false, true},
		{ShapeTypePointZ, "PointZ", true, true, true},
		{ShapeTypePolyline, "Polyline", true, false, false},
		{ShapeTypePolylineM, "PolylineM", true, false, true},
		{ShapeTypePolylineZ, "PolylineZ", true, true, true},
		{ShapeTypePolygon, "Polygon", true, false, false},
		{ShapeTypePolygonM, "PolygonM", true, false, true},
		{ShapeTypePolygonZ, "PolygonZ", true, true, true},
		{ShapeTypeMultiPoint, "MultiPoint", false, false, false},
		{ShapeTypeMultiPatch, "MultiPatch", false, true, true},
		{7, "ShapeType(7)", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.st.String(); got != tt.name {
				t.Errorf("String() = %q", got)
			}
			if got := tt.st.IsSupported(); got != tt.supported {
				t.Errorf("IsSupported() = %v", got)
			}
			if tt.st.HasZ() != tt.z || tt.st.HasM() != tt.m {
				t.Errorf("HasZ() = %v, HasM() = %v", tt.st.HasZ(), tt.st.HasM())
			}
		})
	}
}

func TestShapeBounds(t *testing.T) {
	if _, ok := ShapeBounds(&Null{}); ok {
		t.Error("Expected Null to have no bounds")
	}
	if _, ok := ShapeBounds(&Polygon{}); ok {
		t.Error("Expected empty polygon to have no bounds")
	}

	b, ok := ShapeBounds(&PointZ{X: 3, Y: 4, Z: 5})
	if !ok || b != (BoundingBox{XMin: 3, YMin: 4, XMax: 3, YMax: 4}) {
		t.Errorf("Unexpected point bounds %+v", b)
	}

	line := &Polyline{MultiPart: MultiPart{
		BBox:  BoundingBox{XMax: 1000},
		Parts: lineParts,
		Xs:    lineXs,
		Ys:    lineYs,
	}}
	b, ok = ShapeBounds(line)
	if !ok || b != lineBox {
		t.Errorf("Expected bounds from coordinates %+v, got %+v", lineBox, b)
	}
}

func TestPartRange(t *testing.T) {
	mp := MultiPart{Parts: lineZParts, Xs: lineZXs, Ys: lineZYs}
	want := [][2]int{{0, 5}, {5, 7}, {7, 10}}
	for i, w := range want {
		start, end := mp.PartRange(i)
		if start != w[0] || end != w[1] {
			t.Errorf("PartRange(%d) = [%d, %d), want [%d, %d)", i, start, end, w[0], w[1])
		}
	}
}

func TestComputeExtent(t *testing.T) {
	shapes := []Shape{
		&Null{},
		&PolylineZ{
			MultiPart:  MultiPart{Parts: []int32{0}, Xs: []float64{1, 4}, Ys: []float64{2, 8}},
			Elevations: Elevations{Zs: []float64{-3, 7}},
			Measures:   Measures{Ms: []float64{NoData, 12}},
		},
		&PolylineZ{
			MultiPart:  MultiPart{Parts: []int32{0}, Xs: []float64{-1, 0}, Ys: []float64{0, 0}},
			Elevations: Elevations{Zs: []float64{0, 0}},
			Measures:   Measures{Ms: []float64{-1e39, 5}},
		},
	}
	ext := ComputeExtent(shapes)
	if ext.BBox != (BoundingBox{XMin: -1, YMin: 0, XMax: 4, YMax: 8}) {
		t.Errorf("Unexpected box %+v", ext.BBox)
	}
	if ext.ZRange != (Range{Min: -3, Max: 7}) {
		t.Errorf("Unexpected Z range %+v", ext.ZRange)
	}
	if ext.MRange != (Range{Min: 5, Max: 12}) {
		t.Errorf("Unexpected M range %+v", ext.MRange)
	}

	empty := ComputeExtent([]Shape{&Null{}})
	if empty.BBox != (BoundingBox{}) || empty.MRange != NoDataRange() || empty.ZRange != NoDataRange() {
		t.Errorf("Unexpected extent of nulls %+v", empty)
	}
}

func TestMultiPartOf(t *testing.T) {
	line := &PolylineM{MultiPart: MultiPart{Parts: lineParts, Xs: lineXs, Ys: lineYs}}
	mp, ok := MultiPartOf(line)
	if !ok || mp != &line.MultiPart {
		t.Errorf("Expected the polyline's own coordinates, got %v %v", mp, ok)
	}
	for _, s := range []Shape{&Null{}, &Point{}, &PointZ{}, nil} {
		if _, ok := MultiPartOf(s); ok {
			t.Errorf("Expected no multi-part for %T", s)
		}
	}
}
