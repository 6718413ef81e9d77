package shapefile

import (
	"io"
	"math"

	"github.com/beetlebugorg/shapefile/internal/wire"
	"github.com/cockroachdb/errors"
)

const (
	fileCode   = 9994
	version    = 1000
	headerSize = 100
)

// Header is the fixed 100-byte main file header.
//
// Layout (byte offsets):
//
//	0..4    file code 9994          big-endian
//	4..24   unused                  big-endian
//	24..28  file length in words    big-endian
//	28..32  version 1000            little-endian
//	32..36  shape type              little-endian
//	36..68  Xmin Ymin Xmax Ymax     little-endian
//	68..84  Zmin Zmax               little-endian
//	84..100 Mmin Mmax               little-endian
type Header struct {
	FileCode   int32
	FileLength int64 // Total stream length in bytes, header included
	Version    int32
	ShapeType  ShapeType
	BBox       BoundingBox
	ZRange     Range
	MRange     Range
}

// ParseHeader decodes a header from its 100-byte encoding.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < headerSize {
		return nil, &ErrTruncatedRecord{Record: 0, Offset: int64(len(data))}
	}
	dec := wire.NewDecoder(data[:headerSize])

	h := &Header{}
	h.FileCode = dec.BigInt32()
	if h.FileCode != fileCode {
		return nil, &ErrInvalidFileCode{Code: h.FileCode}
	}
	dec.Skip(20)
	h.FileLength = 2 * int64(dec.BigInt32())
	h.Version = dec.Int32()
	h.ShapeType = ShapeType(dec.Int32())
	if !h.ShapeType.IsSupported() {
		return nil, &ErrUnsupportedShapeType{Type: h.ShapeType}
	}
	h.BBox = BoundingBox{XMin: dec.Float64(), YMin: dec.Float64(), XMax: dec.Float64(), YMax: dec.Float64()}
	h.ZRange = Range{Min: dec.Float64(), Max: dec.Float64()}
	h.MRange = Range{Min: NormalizeNoData(dec.Float64()), Max: NormalizeNoData(dec.Float64())}
	if err := dec.Err(); err != nil {
		return nil, errors.Wrap(err, "parse header")
	}
	return h, nil
}

// ReadHeader reads and decodes a header from r.
func ReadHeader(r io.Reader) (*Header, error) {
	data := make([]byte, headerSize)
	n, err := io.ReadFull(r, data)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return nil, &ErrTruncatedRecord{Record: 0, Offset: int64(n)}
	case err != nil:
		return nil, errors.Wrap(err, "read header at offset 0")
	}
	return ParseHeader(data)
}

// MarshalBinary encodes the header into its 100-byte form.
func (h *Header) MarshalBinary() ([]byte, error) {
	words, err := toWords(h.FileLength)
	if err != nil {
		return nil, errors.Wrap(err, "file length")
	}
	enc := wire.NewEncoder(headerSize)
	h.encode(enc, words)
	return enc.Bytes(), nil
}

// toWords converts a byte length to the 16-bit word count stored on disk.
func toWords(n int64) (int32, error) {
	if n < 0 || n/2 > math.MaxInt32 {
		return 0, errors.Wrapf(ErrFileTooLarge, "%d bytes", n)
	}
	return int32(n / 2), nil
}

func (h *Header) encode(enc *wire.Encoder, words int32) {
	enc.PutBigInt32(fileCode)
	for i := 0; i < 5; i++ {
		enc.PutBigInt32(0)
	}
	enc.PutBigInt32(words)
	enc.PutInt32(version)
	enc.PutInt32(int32(h.ShapeType))
	enc.PutFloat64(h.BBox.XMin)
	enc.PutFloat64(h.BBox.YMin)
	enc.PutFloat64(h.BBox.XMax)
	enc.PutFloat64(h.BBox.YMax)
	enc.PutFloat64(h.ZRange.Min)
	enc.PutFloat64(h.ZRange.Max)
	enc.PutFloat64(NormalizeNoData(h.MRange.Min))
	enc.PutFloat64(NormalizeNoData(h.MRange.Max))
}

// WriteHeader encodes h to w.
func WriteHeader(w io.Writer, h *Header) error {
	data, err := h.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "write header")
	}
	return nil
}
