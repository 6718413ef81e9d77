package shapefile

import (
	"errors"
	"testing"
)

func TestAsPoints(t *testing.T) {
	shapes := []Shape{&Point{X: 1, Y: 2}, &Point{X: 3, Y: 4}}
	points, err := AsPoints(shapes)
	if err != nil {
		t.Fatalf("Failed to narrow: %v", err)
	}
	if len(points) != 2 || *points[1] != (Point{X: 3, Y: 4}) {
		t.Errorf("Unexpected points %+v", points)
	}
	// Narrowing keeps identity, so edits are visible through the original slice.
	points[0].X = 10
	if shapes[0].(*Point).X != 10 {
		t.Error("Expected narrowed slice to share shapes")
	}
}

func TestConversionErrors(t *testing.T) {
	tests := []struct {
		name   string
		shapes []Shape
		narrow func([]Shape) error
		index  int
		want   ShapeType
		got    ShapeType
	}{
		{
			name:   "point in polylines",
			shapes: []Shape{&Polyline{}, &Point{}},
			narrow: func(s []Shape) error { _, err := AsPolylines(s); return err },
			index:  1, want: ShapeTypePolyline, got: ShapeTypePoint,
		},
		{
			name:   "null in points",
			shapes: []Shape{&Null{}},
			narrow: func(s []Shape) error { _, err := AsPoints(s); return err },
			index:  0, want: ShapeTypePoint, got: ShapeTypeNull,
		},
		{
			name:   "polygon in polygonsz",
			shapes: []Shape{&PolygonZ{}, &PolygonZ{}, &Polygon{}},
			narrow: func(s []Shape) error { _, err := AsPolygonsZ(s); return err },
			index:  2, want: ShapeTypePolygonZ, got: ShapeTypePolygon,
		},
		{
			name:   "pointz in pointsm",
			shapes: []Shape{&PointZ{}},
			narrow: func(s []Shape) error { _, err := AsPointsM(s); return err },
			index:  0, want: ShapeTypePointM, got: ShapeTypePointZ,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.narrow(tt.shapes)
			var conv *ErrConversion
			if !errors.As(err, &conv) {
				t.Fatalf("Expected ErrConversion, got %v", err)
			}
			if conv.Index != tt.index || conv.Want != tt.want || conv.Got != tt.got {
				t.Errorf("Expected index=%d want=%v got=%v, got %+v", tt.index, tt.want, tt.got, conv)
			}
		})
	}
}

func TestConversionEmpty(t *testing.T) {
	lines, err := AsPolylinesM(nil)
	if err != nil {
		t.Fatalf("Failed to narrow empty input: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Expected no shapes, got %d", len(lines))
	}
	if got := ToShapes(lines); len(got) != 0 {
		t.Errorf("Expected no shapes after widening, got %d", len(got))
	}
}
