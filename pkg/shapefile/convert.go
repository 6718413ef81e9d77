package shapefile

// narrow asserts every shape is of variant T.
func narrow[T Shape](shapes []Shape, want ShapeType) ([]T, error) {
	out := make([]T, 0, len(shapes))
	for i, s := range shapes {
		v, ok := s.(T)
		if !ok {
			got := ShapeTypeNull
			if s != nil {
				got = s.ShapeType()
			}
			return nil, &ErrConversion{Index: i, Want: want, Got: got}
		}
		out = append(out, v)
	}
	return out, nil
}

// AsPoints narrows shapes to points. It fails on the first shape that is
// not a *Point.
func AsPoints(shapes []Shape) ([]*Point, error) {
	return narrow[*Point](shapes, ShapeTypePoint)
}

// AsPointsM narrows shapes to measured points.
func AsPointsM(shapes []Shape) ([]*PointM, error) {
	return narrow[*PointM](shapes, ShapeTypePointM)
}

// AsPointsZ narrows shapes to points with elevation.
func AsPointsZ(shapes []Shape) ([]*PointZ, error) {
	return narrow[*PointZ](shapes, ShapeTypePointZ)
}

// AsPolylines narrows shapes to polylines.
func AsPolylines(shapes []Shape) ([]*Polyline, error) {
	return narrow[*Polyline](shapes, ShapeTypePolyline)
}

// AsPolylinesM narrows shapes to measured polylines.
func AsPolylinesM(shapes []Shape) ([]*PolylineM, error) {
	return narrow[*PolylineM](shapes, ShapeTypePolylineM)
}

// AsPolylinesZ narrows shapes to polylines with elevation.
func AsPolylinesZ(shapes []Shape) ([]*PolylineZ, error) {
	return narrow[*PolylineZ](shapes, ShapeTypePolylineZ)
}

// AsPolygons narrows shapes to polygons.
func AsPolygons(shapes []Shape) ([]*Polygon, error) {
	return narrow[*Polygon](shapes, ShapeTypePolygon)
}

// AsPolygonsM narrows shapes to measured polygons.
func AsPolygonsM(shapes []Shape) ([]*PolygonM, error) {
	return narrow[*PolygonM](shapes, ShapeTypePolygonM)
}

// AsPolygonsZ narrows shapes to polygons with elevation.
func AsPolygonsZ(shapes []Shape) ([]*PolygonZ, error) {
	return narrow[*PolygonZ](shapes, ShapeTypePolygonZ)
}

// ToShapes widens a narrowed slice back to []Shape, for WriteShapes.
func ToShapes[T Shape](in []T) []Shape {
	out := make([]Shape, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
