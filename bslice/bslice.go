// Package bslice implements the zero-copy (buffer, offset, length) window
// that every protocol layer in packetview is built on top of. A [Slice]
// never owns a copy of the data it describes: cloning a Slice aliases the
// same backing array, so a write through any clone is visible to every
// other view over that array.
package bslice

import "errors"

// ErrInvalidBounds is returned when a length or offset assignment would
// push a Slice outside the bounds of its backing buffer.
var ErrInvalidBounds = errors.New("bslice: invalid slice bounds")

// ErrShortBuffer is returned by field accessors when the region they need
// to read or write does not fit entirely inside the Slice.
var ErrShortBuffer = errors.New("bslice: short buffer")

// Slice is a logical window (buffer, offset, length) into a shared mutable
// byte array. The zero value is an empty Slice over a nil buffer.
//
// Slice is intentionally a small value type: copying it copies the window,
// never the underlying bytes, matching the "owning-buffer + offset + length
// cursor" every layer in this module is built from.
type Slice struct {
	buf    []byte
	offset int
	length int
}

// New returns a Slice spanning the whole of buf.
func New(buf []byte) Slice {
	return Slice{buf: buf, offset: 0, length: len(buf)}
}

// NewAt returns a Slice over buf starting at offset and running for length
// bytes. It returns ErrInvalidBounds if the window falls outside buf.
func NewAt(buf []byte, offset, length int) (Slice, error) {
	if offset < 0 || length < 0 || offset+length > len(buf) {
		return Slice{}, ErrInvalidBounds
	}
	return Slice{buf: buf, offset: offset, length: length}, nil
}

// Buffer returns the Slice's shared backing array, unsliced. Mutating it
// mutates every Slice that aliases it.
func (s Slice) Buffer() []byte { return s.buf }

// Offset returns the start of the Slice's window within its buffer.
func (s Slice) Offset() int { return s.offset }

// Length returns the size in bytes of the Slice's window.
func (s Slice) Length() int { return s.length }

// Actual returns the length bytes starting at offset. The returned slice
// aliases the backing buffer; callers needing an isolated copy should clone
// it themselves (e.g. via append([]byte(nil), s.Actual()...)).
func (s Slice) Actual() []byte {
	return s.buf[s.offset : s.offset+s.length]
}

// Encapsulated returns a Slice starting immediately after this Slice's
// window and running to the end of the backing buffer, or to cap bytes if
// cap is supplied and smaller than the remaining buffer. This is how a
// parent layer hands its payload to the next layer without copying.
func (s Slice) Encapsulated(cap ...int) Slice {
	rest := len(s.buf) - s.offset - s.length
	if rest < 0 {
		rest = 0
	}
	if len(cap) > 0 && cap[0] >= 0 && cap[0] < rest {
		rest = cap[0]
	}
	return Slice{buf: s.buf, offset: s.offset + s.length, length: rest}
}

// SetLength resizes the Slice's window in place. It fails with
// ErrInvalidBounds if the new length would push the window past the end of
// the backing buffer.
func (s *Slice) SetLength(n int) error {
	if n < 0 || s.offset+n > len(s.buf) {
		return ErrInvalidBounds
	}
	s.length = n
	return nil
}

// At returns the byte at logical index i (0 <= i < Length()).
func (s Slice) At(i int) byte { return s.buf[s.offset+i] }

// SetAt assigns the byte at logical index i (0 <= i < Length()).
func (s Slice) SetAt(i int, v byte) { s.buf[s.offset+i] = v }

// IsZero reports whether the Slice has no backing buffer.
func (s Slice) IsZero() bool { return s.buf == nil }
