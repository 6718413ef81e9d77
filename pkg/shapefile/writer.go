package shapefile

import (
	"io"

	"github.com/beetlebugorg/shapefile/internal/wire"
	"github.com/cockroachdb/errors"
)

// Writer encodes one homogeneous shape collection as a .shp stream.
//
// A Writer is single use and not safe for concurrent use.
type Writer struct {
	w       io.Writer
	used    bool
	written int64
}

// NewWriter returns a Writer that emits to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteShapes writes the header followed by one record per shape, numbered
// from 1 in input order.
//
// All non-null shapes must share one shape type; Null shapes may appear
// anywhere. Header and record extents are recomputed from coordinates. On a
// validation error nothing is written.
func (wr *Writer) WriteShapes(shapes []Shape) error {
	if wr.used {
		return ErrWriterClosed
	}
	wr.used = true

	shapeType, err := collectionType(shapes)
	if err != nil {
		return err
	}
	for i, s := range shapes {
		if err := ValidateShape(s); err != nil {
			return errors.Wrapf(err, "shape %d", i)
		}
	}

	enc := wire.NewEncoder(headerSize + len(shapes)*(recordHeaderSize+20))
	enc.Reserve(headerSize)
	for i, s := range shapes {
		if _, err := appendRecord(enc, i+1, s); err != nil {
			return errors.Wrapf(err, "shape %d", i)
		}
	}

	ext := ComputeExtent(shapes)
	h := &Header{
		FileCode:   fileCode,
		FileLength: int64(enc.Len()),
		Version:    version,
		ShapeType:  shapeType,
		BBox:       ext.BBox,
		ZRange:     ext.ZRange,
		MRange:     ext.MRange,
	}
	hdr, err := h.MarshalBinary()
	if err != nil {
		return err
	}
	out := enc.Bytes()
	copy(out[:headerSize], hdr)

	n, err := wr.w.Write(out)
	wr.written += int64(n)
	if err != nil {
		return errors.Wrapf(err, "write shapes at offset %d", n)
	}
	return nil
}

// Written returns the number of bytes emitted.
func (wr *Writer) Written() int64 { return wr.written }

// collectionType returns the shared non-null shape type of shapes, or
// ShapeTypeNull when every shape is Null.
func collectionType(shapes []Shape) (ShapeType, error) {
	want := ShapeTypeNull
	for i, s := range shapes {
		if s == nil {
			return 0, errors.Wrapf(&ErrInvalidShape{Type: ShapeTypeNull, Reason: "nil shape"}, "shape %d", i)
		}
		t := s.ShapeType()
		switch {
		case t == ShapeTypeNull:
		case want == ShapeTypeNull:
			want = t
		case t != want:
			return 0, &ErrMixedShapeTypes{Index: i, Want: want, Got: t}
		}
	}
	return want, nil
}
