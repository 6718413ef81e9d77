package shapefile

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrWriterClosed is returned when WriteShapes is called on a Writer that
// has already written its stream.
var ErrWriterClosed = errors.New("shapefile: writer already used")

// ErrFileTooLarge is returned when a length or count does not fit the
// format's signed 32-bit fields. File and content lengths are stored in
// 16-bit words, so a stream is limited to just under 4 GiB.
var ErrFileTooLarge = errors.New("shapefile: exceeds 32-bit format limit")

// ErrInvalidFileCode indicates the header magic is not 9994.
type ErrInvalidFileCode struct {
	Code int32
}

func (e *ErrInvalidFileCode) Error() string {
	return fmt.Sprintf("invalid file code %d (expected %d)", e.Code, fileCode)
}

// ErrUnsupportedShapeType indicates a header or record type code outside
// the supported set.
type ErrUnsupportedShapeType struct {
	Type ShapeType
}

func (e *ErrUnsupportedShapeType) Error() string {
	return fmt.Sprintf("unsupported shape type: %v", e.Type)
}

// ErrRecordLengthMismatch indicates the bytes consumed by a record's payload
// differ from its declared content length.
type ErrRecordLengthMismatch struct {
	Record   int // 1-based record number from the record header
	Declared int // Declared content length in bytes
	Actual   int // Bytes the payload layout requires
}

func (e *ErrRecordLengthMismatch) Error() string {
	return fmt.Sprintf("record %d: content length %d bytes, payload needs %d",
		e.Record, e.Declared, e.Actual)
}

// ErrTruncatedRecord indicates the input ended inside a record.
type ErrTruncatedRecord struct {
	Record int   // 1-based position of the record being read
	Offset int64 // Stream offset where input ran out
}

func (e *ErrTruncatedRecord) Error() string {
	return fmt.Sprintf("record %d truncated at offset %d", e.Record, e.Offset)
}

// ErrMixedShapeTypes indicates a collection (or file) holding more than one
// non-null shape type.
type ErrMixedShapeTypes struct {
	Index int // 0-based position of the offending shape
	Want  ShapeType
	Got   ShapeType
}

func (e *ErrMixedShapeTypes) Error() string {
	return fmt.Sprintf("shape %d is %v, expected %v", e.Index, e.Got, e.Want)
}

// ErrConversion indicates a narrowing conversion met a shape of the wrong
// variant.
type ErrConversion struct {
	Index int
	Want  ShapeType
	Got   ShapeType
}

func (e *ErrConversion) Error() string {
	return fmt.Sprintf("cannot convert shape %d: %v is not %v", e.Index, e.Got, e.Want)
}

// ErrInvalidShape indicates a multi-part shape whose arrays violate the
// structural invariants (parallel lengths, part offsets).
type ErrInvalidShape struct {
	Type   ShapeType
	Reason string
}

func (e *ErrInvalidShape) Error() string {
	return fmt.Sprintf("invalid %v: %s", e.Type, e.Reason)
}

// ErrRecordTooLarge indicates a record exceeding a ReadOptions limit.
type ErrRecordTooLarge struct {
	Record int
	Limit  string // Name of the exceeded limit
	Value  int
	Max    int
}

func (e *ErrRecordTooLarge) Error() string {
	return fmt.Sprintf("record %d: %s %d exceeds limit %d", e.Record, e.Limit, e.Value, e.Max)
}
