package shapefile

import (
	"fmt"

	"github.com/twpayne/go-geom"
)

// ToGeom converts s to a go-geom geometry.
//
//	Point, PointM, PointZ          -> *geom.Point (XY, XYM, XYZM)
//	Polyline, PolylineM, PolylineZ -> *geom.MultiLineString
//	Polygon, PolygonM, PolygonZ    -> *geom.MultiPolygon
//	Null                           -> nil
//
// Polygon rings are grouped by orientation: the first ring and every later
// clockwise ring start a new polygon, counter-clockwise rings are holes of
// the polygon before them.
func ToGeom(s Shape) (geom.T, error) {
	if err := ValidateShape(s); err != nil {
		return nil, err
	}
	switch v := s.(type) {
	case *Null:
		return nil, nil
	case *Point:
		return geom.NewPointFlat(geom.XY, []float64{v.X, v.Y}), nil
	case *PointM:
		return geom.NewPointFlat(geom.XYM, []float64{v.X, v.Y, v.M}), nil
	case *PointZ:
		return geom.NewPointFlat(geom.XYZM, []float64{v.X, v.Y, v.Z, v.M}), nil
	case *Polyline:
		flat, ends := flatten(geom.XY, &v.MultiPart, nil, nil)
		return geom.NewMultiLineStringFlat(geom.XY, flat, ends), nil
	case *PolylineM:
		flat, ends := flatten(geom.XYM, &v.MultiPart, nil, v.Ms)
		return geom.NewMultiLineStringFlat(geom.XYM, flat, ends), nil
	case *PolylineZ:
		flat, ends := flatten(geom.XYZM, &v.MultiPart, v.Zs, v.Ms)
		return geom.NewMultiLineStringFlat(geom.XYZM, flat, ends), nil
	case *Polygon:
		return toMultiPolygon(ShapeTypePolygon, geom.XY, &v.MultiPart, nil, nil)
	case *PolygonM:
		return toMultiPolygon(ShapeTypePolygonM, geom.XYM, &v.MultiPart, nil, v.Ms)
	case *PolygonZ:
		return toMultiPolygon(ShapeTypePolygonZ, geom.XYZM, &v.MultiPart, v.Zs, v.Ms)
	}
	return nil, &ErrUnsupportedShapeType{Type: s.ShapeType()}
}

// flatten interleaves the coordinate arrays into go-geom's flat layout and
// returns the end offset of each part.
func flatten(layout geom.Layout, mp *MultiPart, zs, ms []float64) ([]float64, []int) {
	stride := layout.Stride()
	flat := make([]float64, 0, stride*len(mp.Xs))
	for i := range mp.Xs {
		flat = append(flat, mp.Xs[i], mp.Ys[i])
		if zs != nil {
			flat = append(flat, zs[i])
		}
		if ms != nil {
			flat = append(flat, ms[i])
		}
	}
	ends := make([]int, len(mp.Parts))
	for i := range mp.Parts {
		_, end := mp.PartRange(i)
		ends[i] = end * stride
	}
	return flat, ends
}

func toMultiPolygon(t ShapeType, layout geom.Layout, mp *MultiPart, zs, ms []float64) (*geom.MultiPolygon, error) {
	flat, ends := flatten(layout, mp, zs, ms)
	stride := layout.Stride()

	var endss [][]int
	polygonStart, offset := 0, 0
	for i, end := range ends {
		if (end-offset)/stride < 4 {
			return nil, &ErrInvalidShape{Type: t, Reason: fmt.Sprintf("ring %d has fewer than 4 points", i)}
		}
		switch area := doubleArea(flat, offset, end, stride); {
		case area == 0:
			return nil, &ErrInvalidShape{Type: t, Reason: fmt.Sprintf("ring %d has zero area", i)}
		case i != 0 && area < 0:
			endss = append(endss, ends[polygonStart:i])
			polygonStart = i
		}
		offset = end
	}
	if len(ends) > 0 {
		endss = append(endss, ends[polygonStart:])
	}
	return geom.NewMultiPolygonFlat(layout, flat, endss), nil
}

// doubleArea returns twice the signed area of the ring flat[offset:end].
// Clockwise rings are negative.
func doubleArea(flat []float64, offset, end, stride int) float64 {
	var area float64
	for i := offset + stride; i < end; i += stride {
		area += (flat[i+1] - flat[i+1-stride]) * (flat[i] + flat[i-stride])
	}
	return area
}
