package shapefile

import "math"

// rangeBuilder accumulates a min/max over values, skipping no-data.
type rangeBuilder struct {
	r  Range
	ok bool
}

func (b *rangeBuilder) add(v float64) {
	if IsNoData(v) {
		return
	}
	if !b.ok {
		b.r = Range{Min: v, Max: v}
		b.ok = true
		return
	}
	b.r.Min = math.Min(b.r.Min, v)
	b.r.Max = math.Max(b.r.Max, v)
}

func (b *rangeBuilder) addAll(vs []float64) {
	for _, v := range vs {
		b.add(v)
	}
}

// result returns the accumulated range, or NoDataRange when every value
// was no-data or none were added.
func (b *rangeBuilder) result() Range {
	if !b.ok {
		return NoDataRange()
	}
	return b.r
}

// valueRange returns the range of vs excluding no-data values.
func valueRange(vs []float64) Range {
	var b rangeBuilder
	b.addAll(vs)
	return b.result()
}

// Extent is the aggregate extent of a shape collection, as stored in the
// file header.
type Extent struct {
	BBox   BoundingBox
	ZRange Range
	MRange Range
}

// ComputeExtent recomputes the aggregate extent of shapes from their
// coordinates. Stored BBox, ZRange and MRange fields are ignored. Null and
// empty shapes do not contribute; with no contributing shape the box is
// zero and both ranges are NoDataRange.
func ComputeExtent(shapes []Shape) Extent {
	var (
		bbox  BoundingBox
		hasXY bool
		z, m  rangeBuilder
	)
	for _, s := range shapes {
		if s == nil {
			continue
		}
		if b, ok := ShapeBounds(s); ok {
			if hasXY {
				bbox = bbox.Union(b)
			} else {
				bbox, hasXY = b, true
			}
		}
		switch v := s.(type) {
		case *PointM:
			m.add(v.M)
		case *PointZ:
			z.add(v.Z)
			m.add(v.M)
		default:
			_, zs, ms := components(s)
			if zs != nil {
				z.addAll(zs.Zs)
			}
			if ms != nil {
				m.addAll(ms.Ms)
			}
		}
	}
	return Extent{BBox: bbox, ZRange: z.result(), MRange: m.result()}
}
