package shapefile

import (
	"bufio"
	"io"
	"os"

	"github.com/cockroachdb/errors"
)

// readerState tracks where a Reader is in the stream.
type readerState int

const (
	stateUninitialized readerState = iota
	stateHeaderParsed
	stateRecordParsed
	stateExhausted
	stateFailed
)

// Reader decodes a .shp stream in a single forward pass.
//
// A Reader is not safe for concurrent use. Independent Readers over
// independent streams share no state and may run in parallel.
type Reader struct {
	r      io.Reader
	opts   ReadOptions
	header *Header
	state  readerState
	offset int64 // Bytes consumed, header included
	count  int   // Records decoded
	err    error // Sticky error once state is stateFailed
}

// NewReader reads the header from r and returns a Reader positioned at the
// first record. With no options, DefaultReadOptions is used.
func NewReader(r io.Reader, opts ...ReadOptions) (*Reader, error) {
	o := DefaultReadOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	rd := &Reader{r: r, opts: o}
	if err := rd.readHeader(); err != nil {
		return nil, err
	}
	return rd, nil
}

// Open is NewReader with default options.
func Open(r io.Reader) (*Reader, error) {
	return NewReader(r)
}

func (rd *Reader) readHeader() error {
	h, err := ReadHeader(rd.r)
	if err != nil {
		return rd.fail(err)
	}
	rd.header = h
	rd.offset = headerSize
	rd.state = stateHeaderParsed
	return nil
}

// Header returns the parsed file header.
func (rd *Reader) Header() *Header {
	return rd.header
}

// Next decodes the next record. It returns io.EOF once the stream ends
// cleanly at a record boundary. After any other error the Reader is failed
// and every later call returns the same error.
func (rd *Reader) Next() (Shape, error) {
	switch rd.state {
	case stateExhausted:
		return nil, io.EOF
	case stateFailed:
		return nil, rd.err
	case stateUninitialized:
		return nil, errors.New("shapefile: reader has no header")
	}

	position := rd.count + 1
	rec, n, err := readRecord(rd.r, position, rd.header.ShapeType, rd.opts)
	start := rd.offset
	rd.offset += int64(n)
	if errors.Is(err, io.EOF) {
		return nil, rd.finish()
	}
	if err != nil {
		var truncated *ErrTruncatedRecord
		if errors.As(err, &truncated) {
			truncated.Offset = rd.offset
		}
		return nil, rd.fail(errors.Wrapf(err, "record %d at offset %d", position, start))
	}
	rd.count++
	rd.state = stateRecordParsed
	return rec.Shape, nil
}

// finish moves to stateExhausted, checking the declared length when asked.
func (rd *Reader) finish() error {
	if rd.opts.StrictFileLength && rd.offset != rd.header.FileLength {
		if rd.offset < rd.header.FileLength {
			return rd.fail(&ErrTruncatedRecord{Record: rd.count + 1, Offset: rd.offset})
		}
		return rd.fail(&ErrRecordLengthMismatch{
			Record:   rd.count,
			Declared: int(rd.header.FileLength),
			Actual:   int(rd.offset),
		})
	}
	rd.state = stateExhausted
	return io.EOF
}

func (rd *Reader) fail(err error) error {
	rd.state = stateFailed
	rd.err = err
	return err
}

// Read decodes every remaining record. Either all records decode or the
// first error is returned with no partial result.
func (rd *Reader) Read() ([]Shape, error) {
	var shapes []Shape
	for {
		s, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return shapes, nil
		}
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, s)
	}
}

// Offset returns the number of bytes consumed from the stream.
func (rd *Reader) Offset() int64 { return rd.offset }

// File is a fully decoded .shp file.
type File struct {
	Path   string
	Header *Header
	Shapes []Shape
}

// ReadFile opens and decodes the .shp file at path.
func ReadFile(path string, opts ReadOptions) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open shapefile")
	}
	defer f.Close()

	rd, err := NewReader(bufio.NewReader(f), opts)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	shapes, err := rd.Read()
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return &File{Path: path, Header: rd.Header(), Shapes: shapes}, nil
}
