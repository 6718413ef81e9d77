// Package wire reads and writes the fixed-width little- and big-endian
// fields used by the shapefile binary layout.
//
// Shapefiles store structural integers (file code, lengths, record numbers)
// big-endian and everything else little-endian. The Decoder and Encoder keep
// both orders explicit at every call site so the mix is never implicit.
package wire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ErrShortBuffer indicates a read past the end of the decoder's buffer.
type ErrShortBuffer struct {
	Offset int // Offset of the failed read
	Need   int // Bytes requested
	Have   int // Bytes remaining at Offset
}

func (e *ErrShortBuffer) Error() string {
	return fmt.Sprintf("short buffer at offset %d: need %d bytes, have %d", e.Offset, e.Need, e.Have)
}

// Decoder reads fields sequentially from a byte slice.
//
// The first failed read is sticky: every later read returns a zero value
// and Err reports the original failure.
type Decoder struct {
	buf []byte
	off int
	err error
}

// NewDecoder returns a decoder positioned at the start of buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Err returns the first error encountered.
func (d *Decoder) Err() error { return d.err }

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int { return d.off }

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int { return len(d.buf) - d.off }

func (d *Decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n < 0 || n > d.Remaining() {
		d.err = &ErrShortBuffer{Offset: d.off, Need: n, Have: d.Remaining()}
		return nil
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b
}

// BigInt32 reads a big-endian signed 32-bit integer.
func (d *Decoder) BigInt32() int32 {
	b := d.take(4)
	if b == nil {
		return 0
	}
	return int32(binary.BigEndian.Uint32(b))
}

// Int32 reads a little-endian signed 32-bit integer.
func (d *Decoder) Int32() int32 {
	b := d.take(4)
	if b == nil {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

// Float64 reads a little-endian IEEE 754 double.
func (d *Decoder) Float64() float64 {
	b := d.take(8)
	if b == nil {
		return 0
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

// Int32s reads n little-endian signed 32-bit integers.
func (d *Decoder) Int32s(n int) []int32 {
	if n < 0 || n > d.Remaining()/4 {
		d.take(4 * n)
		return nil
	}
	out := make([]int32, n)
	for i := range out {
		out[i] = d.Int32()
	}
	return out
}

// Float64s reads n little-endian doubles.
func (d *Decoder) Float64s(n int) []float64 {
	if n < 0 || n > d.Remaining()/8 {
		d.take(8 * n)
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Float64()
	}
	return out
}

// XYs reads n interleaved (x, y) pairs into two parallel slices.
func (d *Decoder) XYs(n int) (xs, ys []float64) {
	if n < 0 || n > d.Remaining()/16 {
		d.take(16 * n)
		return nil, nil
	}
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = d.Float64()
		ys[i] = d.Float64()
	}
	return xs, ys
}

// Skip advances past n bytes.
func (d *Decoder) Skip(n int) {
	d.take(n)
}
