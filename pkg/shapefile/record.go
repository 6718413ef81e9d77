package shapefile

import (
	"bytes"
	"io"
	"math"

	"github.com/beetlebugorg/shapefile/internal/wire"
	"github.com/cockroachdb/errors"
)

// recordHeaderSize is the record number plus content length, both
// big-endian int32. Content length excludes these 8 bytes.
const recordHeaderSize = 8

// Record is one decoded record together with its record header.
type Record struct {
	Number        int // 1-based record number as stored
	ContentLength int // Payload length in bytes
	Shape         Shape
}

// ReadRecord reads the next record from r.
//
// It returns io.EOF when r is exhausted exactly at a record boundary, and
// *ErrTruncatedRecord when r ends inside the record. The payload is
// dispatched on its own shape type code; declared is the header's type and
// is enforced only when opts.StrictShapeType is set.
func ReadRecord(r io.Reader, declared ShapeType, opts ReadOptions) (*Record, error) {
	rec, _, err := readRecord(r, 1, declared, opts)
	return rec, err
}

// readRecord reads one record and returns the number of bytes consumed.
// position is the record's 1-based position in the stream.
func readRecord(r io.Reader, position int, declared ShapeType, opts ReadOptions) (*Record, int, error) {
	var hdr [recordHeaderSize]byte
	n, err := io.ReadFull(r, hdr[:])
	switch {
	case errors.Is(err, io.EOF):
		return nil, 0, io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return nil, n, &ErrTruncatedRecord{Record: position, Offset: int64(n)}
	case err != nil:
		return nil, n, err
	}

	dec := wire.NewDecoder(hdr[:])
	number := int(dec.BigInt32())
	contentLength := 2 * int(dec.BigInt32())
	if contentLength < 4 {
		return nil, n, &ErrRecordLengthMismatch{Record: number, Declared: contentLength, Actual: 4}
	}
	if opts.MaxRecordSize > 0 && contentLength > opts.MaxRecordSize {
		return nil, n, &ErrRecordTooLarge{Record: number, Limit: "record size", Value: contentLength, Max: opts.MaxRecordSize}
	}

	payload, err := readPayload(r, contentLength)
	n += len(payload)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return nil, n, &ErrTruncatedRecord{Record: position, Offset: int64(n)}
	case err != nil:
		return nil, n, err
	}

	shape, err := decodePayload(number, payload, opts)
	if err != nil {
		return nil, n, err
	}
	if opts.StrictShapeType {
		if t := shape.ShapeType(); t != ShapeTypeNull && t != declared {
			return nil, n, &ErrMixedShapeTypes{Index: position - 1, Want: declared, Got: t}
		}
	}
	return &Record{Number: number, ContentLength: contentLength, Shape: shape}, n, nil
}

// payloadChunk caps the up-front allocation for one payload. Larger
// payloads grow as bytes arrive, so a forged content length costs no more
// memory than the input actually holds.
const payloadChunk = 64 << 10

// readPayload reads exactly size bytes from r. On a short read it returns
// the bytes read and io.ErrUnexpectedEOF.
func readPayload(r io.Reader, size int) ([]byte, error) {
	if size <= payloadChunk {
		buf := make([]byte, size)
		m, err := io.ReadFull(r, buf)
		return buf[:m], err
	}
	var buf bytes.Buffer
	buf.Grow(payloadChunk)
	m, err := buf.ReadFrom(io.LimitReader(r, int64(size)))
	if err != nil {
		return buf.Bytes(), err
	}
	if m < int64(size) {
		return buf.Bytes(), io.ErrUnexpectedEOF
	}
	return buf.Bytes(), nil
}

// decodePayload decodes the content of one record. The payload must be
// consumed exactly, except for the optional trailing M block of Z types.
func decodePayload(number int, payload []byte, opts ReadOptions) (Shape, error) {
	dec := wire.NewDecoder(payload)
	shapeType := ShapeType(dec.Int32())

	var shape Shape
	var err error
	switch shapeType {
	case ShapeTypeNull:
		shape = &Null{}
	case ShapeTypePoint:
		shape = &Point{X: dec.Float64(), Y: dec.Float64()}
	case ShapeTypePointM:
		shape = &PointM{X: dec.Float64(), Y: dec.Float64(), M: NormalizeNoData(dec.Float64())}
	case ShapeTypePointZ:
		p := &PointZ{X: dec.Float64(), Y: dec.Float64(), Z: dec.Float64(), M: NoData}
		if dec.Remaining() > 0 {
			p.M = NormalizeNoData(dec.Float64())
		}
		shape = p
	case ShapeTypePolyline, ShapeTypePolygon,
		ShapeTypePolylineM, ShapeTypePolygonM,
		ShapeTypePolylineZ, ShapeTypePolygonZ:
		shape, err = decodeMultiPartShape(dec, shapeType, number, opts)
	default:
		return nil, &ErrUnsupportedShapeType{Type: shapeType}
	}
	if err != nil {
		return nil, err
	}

	if err := dec.Err(); err != nil {
		actual := len(payload)
		var short *wire.ErrShortBuffer
		if errors.As(err, &short) {
			actual = short.Offset + short.Need
		}
		return nil, &ErrRecordLengthMismatch{Record: number, Declared: len(payload), Actual: actual}
	}
	if dec.Remaining() != 0 {
		return nil, &ErrRecordLengthMismatch{Record: number, Declared: len(payload), Actual: dec.Offset()}
	}

	if opts.ValidateParts {
		if err := ValidateShape(shape); err != nil {
			return nil, errors.Wrapf(err, "record %d", number)
		}
	}
	return shape, nil
}

func decodeMultiPartShape(dec *wire.Decoder, shapeType ShapeType, number int, opts ReadOptions) (Shape, error) {
	var mp MultiPart
	mp.BBox = BoundingBox{XMin: dec.Float64(), YMin: dec.Float64(), XMax: dec.Float64(), YMax: dec.Float64()}
	numParts := int(dec.Int32())
	numPoints := int(dec.Int32())
	if dec.Err() != nil {
		// Reported as a length mismatch by the caller.
		return &Null{}, nil
	}
	if numParts < 0 || numPoints < 0 {
		return nil, &ErrInvalidShape{Type: shapeType, Reason: "negative part or point count"}
	}
	if opts.MaxParts > 0 && numParts > opts.MaxParts {
		return nil, &ErrRecordTooLarge{Record: number, Limit: "parts", Value: numParts, Max: opts.MaxParts}
	}
	if opts.MaxPoints > 0 && numPoints > opts.MaxPoints {
		return nil, &ErrRecordTooLarge{Record: number, Limit: "points", Value: numPoints, Max: opts.MaxPoints}
	}
	mp.Parts = dec.Int32s(numParts)
	mp.Xs, mp.Ys = dec.XYs(numPoints)
	if mp.Parts == nil {
		mp.Parts = []int32{}
	}
	if mp.Xs == nil {
		mp.Xs, mp.Ys = []float64{}, []float64{}
	}

	switch shapeType {
	case ShapeTypePolyline:
		return &Polyline{MultiPart: mp}, nil
	case ShapeTypePolygon:
		return &Polygon{MultiPart: mp}, nil
	case ShapeTypePolylineM:
		return &PolylineM{MultiPart: mp, Measures: decodeMeasures(dec, numPoints)}, nil
	case ShapeTypePolygonM:
		return &PolygonM{MultiPart: mp, Measures: decodeMeasures(dec, numPoints)}, nil
	case ShapeTypePolylineZ:
		z := decodeElevations(dec, numPoints)
		return &PolylineZ{MultiPart: mp, Elevations: z, Measures: decodeOptionalMeasures(dec, numPoints)}, nil
	case ShapeTypePolygonZ:
		z := decodeElevations(dec, numPoints)
		return &PolygonZ{MultiPart: mp, Elevations: z, Measures: decodeOptionalMeasures(dec, numPoints)}, nil
	}
	return nil, &ErrUnsupportedShapeType{Type: shapeType}
}

func decodeElevations(dec *wire.Decoder, n int) Elevations {
	z := Elevations{ZRange: Range{Min: dec.Float64(), Max: dec.Float64()}}
	z.Zs = dec.Float64s(n)
	if z.Zs == nil {
		z.Zs = []float64{}
	}
	return z
}

func decodeMeasures(dec *wire.Decoder, n int) Measures {
	m := Measures{MRange: Range{Min: NormalizeNoData(dec.Float64()), Max: NormalizeNoData(dec.Float64())}}
	m.Ms = dec.Float64s(n)
	if m.Ms == nil {
		m.Ms = []float64{}
	}
	for i, v := range m.Ms {
		m.Ms[i] = NormalizeNoData(v)
	}
	return m
}

// decodeOptionalMeasures reads the M block of a Z record, which writers may
// omit or leave incomplete. A missing block, or one too short to hold a
// range and n values, yields NoData for every point.
func decodeOptionalMeasures(dec *wire.Decoder, n int) Measures {
	if dec.Err() == nil && dec.Remaining() < 16+8*n {
		dec.Skip(dec.Remaining())
		ms := make([]float64, n)
		for i := range ms {
			ms[i] = NoData
		}
		return Measures{MRange: NoDataRange(), Ms: ms}
	}
	return decodeMeasures(dec, n)
}

// WriteRecord encodes s as record number to w and returns the number of
// bytes written, record header included.
func WriteRecord(w io.Writer, number int, s Shape) (int, error) {
	if err := ValidateShape(s); err != nil {
		return 0, err
	}
	enc := wire.NewEncoder(recordHeaderSize + 64)
	if _, err := appendRecord(enc, number, s); err != nil {
		return 0, err
	}
	n, err := w.Write(enc.Bytes())
	if err != nil {
		return n, errors.Wrapf(err, "write record %d", number)
	}
	return n, nil
}

// appendRecord encodes a record header and payload. The content length is
// patched in from the payload actually encoded.
func appendRecord(enc *wire.Encoder, number int, s Shape) (int, error) {
	start := enc.Len()
	enc.PutBigInt32(int32(number))
	lengthAt := enc.Reserve(4)
	if err := encodePayload(enc, s); err != nil {
		return 0, err
	}
	n := enc.Len() - start
	words, err := toWords(int64(n - recordHeaderSize))
	if err != nil {
		return 0, errors.Wrapf(err, "record %d content length", number)
	}
	enc.PatchBigInt32(lengthAt, words)
	return n, nil
}

func encodePayload(enc *wire.Encoder, s Shape) error {
	if s == nil {
		return &ErrInvalidShape{Type: ShapeTypeNull, Reason: "nil shape"}
	}
	if mp, _, _ := components(s); mp != nil {
		if len(mp.Parts) > math.MaxInt32 || len(mp.Xs) > math.MaxInt32 {
			return errors.Wrapf(ErrFileTooLarge, "%d parts, %d points", len(mp.Parts), len(mp.Xs))
		}
	}
	enc.PutInt32(int32(s.ShapeType()))
	switch v := s.(type) {
	case *Null:
	case *Point:
		enc.PutFloat64(v.X)
		enc.PutFloat64(v.Y)
	case *PointM:
		enc.PutFloat64(v.X)
		enc.PutFloat64(v.Y)
		enc.PutFloat64(NormalizeNoData(v.M))
	case *PointZ:
		enc.PutFloat64(v.X)
		enc.PutFloat64(v.Y)
		enc.PutFloat64(v.Z)
		enc.PutFloat64(NormalizeNoData(v.M))
	case *Polyline:
		encodeMultiPart(enc, &v.MultiPart)
	case *Polygon:
		encodeMultiPart(enc, &v.MultiPart)
	case *PolylineM:
		encodeMultiPart(enc, &v.MultiPart)
		encodeMeasures(enc, v.Ms)
	case *PolygonM:
		encodeMultiPart(enc, &v.MultiPart)
		encodeMeasures(enc, v.Ms)
	case *PolylineZ:
		encodeMultiPart(enc, &v.MultiPart)
		encodeElevations(enc, v.Zs)
		encodeMeasures(enc, v.Ms)
	case *PolygonZ:
		encodeMultiPart(enc, &v.MultiPart)
		encodeElevations(enc, v.Zs)
		encodeMeasures(enc, v.Ms)
	default:
		return &ErrUnsupportedShapeType{Type: s.ShapeType()}
	}
	return nil
}

// encodeMultiPart writes the box recomputed from the coordinates, never the
// stored BBox.
func encodeMultiPart(enc *wire.Encoder, mp *MultiPart) {
	b := mp.Extent()
	enc.PutFloat64(b.XMin)
	enc.PutFloat64(b.YMin)
	enc.PutFloat64(b.XMax)
	enc.PutFloat64(b.YMax)
	enc.PutInt32(int32(len(mp.Parts)))
	enc.PutInt32(int32(len(mp.Xs)))
	enc.PutInt32s(mp.Parts)
	enc.PutXYs(mp.Xs, mp.Ys)
}

func encodeElevations(enc *wire.Encoder, zs []float64) {
	r := valueRange(zs)
	enc.PutFloat64(r.Min)
	enc.PutFloat64(r.Max)
	enc.PutFloat64s(zs)
}

func encodeMeasures(enc *wire.Encoder, ms []float64) {
	r := valueRange(ms)
	enc.PutFloat64(r.Min)
	enc.PutFloat64(r.Max)
	for _, m := range ms {
		enc.PutFloat64(NormalizeNoData(m))
	}
}
