package shapefile

import (
	"encoding/binary"
	"math"
)

// The builders below assemble .shp bytes field by field with encoding/binary
// so reader tests do not depend on the Writer.

type payload []byte

func (p payload) i32(v int32) payload {
	return binary.LittleEndian.AppendUint32(p, uint32(v))
}

func (p payload) f64(vs ...float64) payload {
	for _, v := range vs {
		p = binary.LittleEndian.AppendUint64(p, math.Float64bits(v))
	}
	return p
}

func (p payload) xys(xs, ys []float64) payload {
	for i := range xs {
		p = p.f64(xs[i], ys[i])
	}
	return p
}

func (p payload) parts(parts ...int32) payload {
	for _, v := range parts {
		p = p.i32(v)
	}
	return p
}

// multiPartPayload encodes type, box, counts, parts and points.
func multiPartPayload(t ShapeType, box BoundingBox, parts []int32, xs, ys []float64) payload {
	return payload{}.
		i32(int32(t)).
		f64(box.XMin, box.YMin, box.XMax, box.YMax).
		i32(int32(len(parts))).
		i32(int32(len(xs))).
		parts(parts...).
		xys(xs, ys)
}

// buildFile wraps payloads in record headers behind a main file header.
func buildFile(t ShapeType, box BoundingBox, payloads ...payload) []byte {
	var body []byte
	for i, p := range payloads {
		body = binary.BigEndian.AppendUint32(body, uint32(i+1))
		body = binary.BigEndian.AppendUint32(body, uint32(len(p)/2))
		body = append(body, p...)
	}

	hdr := make([]byte, 0, 100)
	hdr = binary.BigEndian.AppendUint32(hdr, 9994)
	hdr = append(hdr, make([]byte, 20)...)
	hdr = binary.BigEndian.AppendUint32(hdr, uint32((100+len(body))/2))
	hdr = binary.LittleEndian.AppendUint32(hdr, 1000)
	hdr = binary.LittleEndian.AppendUint32(hdr, uint32(t))
	hdr = payload(hdr).f64(box.XMin, box.YMin, box.XMax, box.YMax, 0, 0, 0, 0)
	return append(hdr, body...)
}

var (
	lineParts = []int32{0, 5}
	lineXs    = []float64{1.0, 5.0, 5.0, 3.0, 1.0, 3.0, 2.0}
	lineYs    = []float64{5.0, 5.0, 1.0, 3.0, 1.0, 2.0, 6.0}
	lineBox   = BoundingBox{XMin: 1, YMin: 1, XMax: 5, YMax: 6}

	lineZParts = []int32{0, 5, 7}
	lineZXs    = []float64{1.0, 5.0, 5.0, 3.0, 1.0, 3.0, 2.0, 3.0, 2.0, 1.0}
	lineZYs    = []float64{5.0, 5.0, 1.0, 3.0, 1.0, 2.0, 6.0, 2.0, 6.0, 9.0}
	lineZZs    = []float64{18.0, 20.0, 22.0, 0.0, 0.0, 0.0, 0.0, 15.0, 13.0, 14.0}
	lineZBox   = BoundingBox{XMin: 1, YMin: 1, XMax: 5, YMax: 9}

	polygonParts = []int32{0, 5, 8}
	polygonXs    = []float64{122.0, 117.0, 115.0, 118.0, 113.0, 15.0, 17.0, 22.0, 122.0, 117.0, 115.0}
	polygonYs    = []float64{37.0, 36.0, 32.0, 20.0, 24.0, 2.0, 6.0, 7.0, 37.0, 36.0, 32.0}
	polygonBox   = BoundingBox{XMin: 15, YMin: 2, XMax: 122, YMax: 37}
)

// lineFile is a single two-part polyline over 7 points.
func lineFile() []byte {
	return buildFile(ShapeTypePolyline, lineBox,
		multiPartPayload(ShapeTypePolyline, lineBox, lineParts, lineXs, lineYs))
}

// lineMFile stores measures using several no-data magnitudes.
func lineMFile() []byte {
	p := multiPartPayload(ShapeTypePolylineM, lineBox, lineParts, lineXs, lineYs).
		f64(0, 3).
		f64(0.0, -1e38, 3.0, -1.0000001e38, 0.0, -1e39, -1.7976931348623157e308)
	return buildFile(ShapeTypePolylineM, lineBox, p)
}

// lineZFile carries Z values for every point and measures only on the last part.
func lineZFile() []byte {
	nd := -1e38
	p := multiPartPayload(ShapeTypePolylineZ, lineZBox, lineZParts, lineZXs, lineZYs).
		f64(0, 22).
		f64(lineZZs...).
		f64(0, 3).
		f64(nd, nd, nd, nd, nd, nd, nd, 0.0, 3.0, 2.0)
	return buildFile(ShapeTypePolylineZ, lineZBox, p)
}

func pointFile() []byte {
	box := BoundingBox{XMin: 122, YMin: 37, XMax: 122, YMax: 37}
	return buildFile(ShapeTypePoint, box, payload{}.i32(int32(ShapeTypePoint)).f64(122.0, 37.0))
}

func pointMFile() []byte {
	return buildFile(ShapeTypePointM, BoundingBox{},
		payload{}.i32(int32(ShapeTypePointM)).f64(160477.9000324604, 5403959.561417906, 0.0),
		payload{}.i32(int32(ShapeTypePointM)).f64(160467.63787299366, 5403971.985031904, 0.0),
	)
}

// pointZFile holds one PointZ without the optional measure and one whose
// measure is a no-data value.
func pointZFile() []byte {
	return buildFile(ShapeTypePointZ, BoundingBox{},
		payload{}.i32(int32(ShapeTypePointZ)).f64(1422464.3681007193, 4188962.3364355816, 72.40956470558095),
		payload{}.i32(int32(ShapeTypePointZ)).f64(1422459.0908050265, 4188942.211755641, 72.58286959604922, -1e38),
	)
}

func polygonFile() []byte {
	return buildFile(ShapeTypePolygon, polygonBox,
		multiPartPayload(ShapeTypePolygon, polygonBox, polygonParts, polygonXs, polygonYs))
}

// polygonZFile is a single ring whose record omits the M block.
func polygonZFile() []byte {
	xs := []float64{0, 0, 10, 10, 0}
	ys := []float64{0, 10, 10, 0, 0}
	zs := []float64{72.5, 72.5, 72.5, 72.5, 72.5}
	box := BoundingBox{XMax: 10, YMax: 10}
	p := multiPartPayload(ShapeTypePolygonZ, box, []int32{0}, xs, ys).
		f64(72.5, 72.5).
		f64(zs...)
	return buildFile(ShapeTypePolygonZ, box, p)
}
