package shapefile

import (
	"io"
	"runtime"
)

// ReadOptions configures decoding behavior.
type ReadOptions struct {
	// ValidateParts checks that each decoded multi-part record has strictly
	// ascending part offsets starting at 0 and inside the point array.
	// Default: true
	ValidateParts bool

	// StrictShapeType rejects non-null records whose type differs from the
	// header's declared shape type.
	// Default: false (NullShape is always accepted)
	StrictShapeType bool

	// StrictFileLength compares the bytes consumed against the header's file
	// length at end of stream.
	// Default: false (the header length is informational)
	StrictFileLength bool

	// MaxParts, MaxPoints and MaxRecordSize bound allocations for untrusted
	// input. Zero means unlimited. MaxRecordSize is in bytes.
	MaxParts      int
	MaxPoints     int
	MaxRecordSize int
}

// DefaultReadOptions returns read options with defaults.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		ValidateParts:    true,
		StrictShapeType:  false,
		StrictFileLength: false,
	}
}

// LoadOptions controls parallel file loading and error handling.
type LoadOptions struct {
	// Workers is the number of files decoded concurrently.
	// If 0, defaults to runtime.NumCPU().
	Workers int

	// SkipErrors continues loading when individual files fail. Failed files
	// are left out of the result and their errors collected.
	// When false, the first error cancels the remaining work.
	SkipErrors bool

	// Progress is called after each file is processed, successfully or not.
	Progress func(loaded, total int)

	// ErrorLog receives one line per failed file.
	ErrorLog io.Writer

	// Read configures each file's Reader.
	Read ReadOptions
}

// DefaultLoadOptions returns load options with sensible defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
		Read:       DefaultReadOptions(),
	}
}
