package wire

import (
	"encoding/binary"
	"math"
)

// Encoder appends fields to a growing byte slice.
type Encoder struct {
	buf []byte
}

// NewEncoder returns an encoder with capacity for size bytes.
func NewEncoder(size int) *Encoder {
	return &Encoder{buf: make([]byte, 0, size)}
}

// Bytes returns the encoded bytes. The slice aliases the encoder's buffer.
func (e *Encoder) Bytes() []byte { return e.buf }

// Len returns the number of bytes encoded so far.
func (e *Encoder) Len() int { return len(e.buf) }

// Reset discards the encoded bytes but keeps the buffer.
func (e *Encoder) Reset() { e.buf = e.buf[:0] }

// PutBigInt32 appends a big-endian signed 32-bit integer.
func (e *Encoder) PutBigInt32(v int32) {
	e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(v))
}

// PutInt32 appends a little-endian signed 32-bit integer.
func (e *Encoder) PutInt32(v int32) {
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(v))
}

// PutFloat64 appends a little-endian IEEE 754 double.
func (e *Encoder) PutFloat64(v float64) {
	e.buf = binary.LittleEndian.AppendUint64(e.buf, math.Float64bits(v))
}

// PutInt32s appends each value little-endian.
func (e *Encoder) PutInt32s(vs []int32) {
	for _, v := range vs {
		e.PutInt32(v)
	}
}

// PutFloat64s appends each value little-endian.
func (e *Encoder) PutFloat64s(vs []float64) {
	for _, v := range vs {
		e.PutFloat64(v)
	}
}

// PutXYs appends interleaved (x, y) pairs from two parallel slices.
// xs and ys must have the same length.
func (e *Encoder) PutXYs(xs, ys []float64) {
	for i := range xs {
		e.PutFloat64(xs[i])
		e.PutFloat64(ys[i])
	}
}

// Reserve appends n zero bytes and returns their offset, so a field whose
// value depends on later output can be filled in with PatchBigInt32.
func (e *Encoder) Reserve(n int) int {
	off := len(e.buf)
	e.buf = append(e.buf, make([]byte, n)...)
	return off
}

// PatchBigInt32 overwrites four bytes at off with a big-endian integer.
func (e *Encoder) PatchBigInt32(off int, v int32) {
	binary.BigEndian.PutUint32(e.buf[off:off+4], uint32(v))
}
