package bslice

import "encoding/binary"

// The endian accessors below route every multi-byte protocol field through
// a bounds-checked read/write, per spec: "Fails with ShortBuffer if the
// region is not fully inside the slice." Protocol packages that already
// validate header length up front (via ValidateSize) use the unchecked
// encoding/binary calls directly against Actual(), matching teacher idiom;
// these helpers exist for the option/TLV frameworks which walk
// variable-length regions where no prior bounds check has happened.

// Uint16BE reads a big-endian uint16 at byte offset off within s.
func (s Slice) Uint16BE(off int) (uint16, error) {
	b := s.Actual()
	if off < 0 || off+2 > len(b) {
		return 0, ErrShortBuffer
	}
	return binary.BigEndian.Uint16(b[off:]), nil
}

// SetUint16BE writes a big-endian uint16 at byte offset off within s.
func (s Slice) SetUint16BE(off int, v uint16) error {
	b := s.Actual()
	if off < 0 || off+2 > len(b) {
		return ErrShortBuffer
	}
	binary.BigEndian.PutUint16(b[off:], v)
	return nil
}

// Uint32BE reads a big-endian uint32 at byte offset off within s.
func (s Slice) Uint32BE(off int) (uint32, error) {
	b := s.Actual()
	if off < 0 || off+4 > len(b) {
		return 0, ErrShortBuffer
	}
	return binary.BigEndian.Uint32(b[off:]), nil
}

// SetUint32BE writes a big-endian uint32 at byte offset off within s.
func (s Slice) SetUint32BE(off int, v uint32) error {
	b := s.Actual()
	if off < 0 || off+4 > len(b) {
		return ErrShortBuffer
	}
	binary.BigEndian.PutUint32(b[off:], v)
	return nil
}

// Uint16LE reads a little-endian uint16 at byte offset off within s. Used by
// IEEE 802.11 and radiotap/PPI layers, which are little-endian on the wire.
func (s Slice) Uint16LE(off int) (uint16, error) {
	b := s.Actual()
	if off < 0 || off+2 > len(b) {
		return 0, ErrShortBuffer
	}
	return binary.LittleEndian.Uint16(b[off:]), nil
}

// SetUint16LE writes a little-endian uint16 at byte offset off within s.
func (s Slice) SetUint16LE(off int, v uint16) error {
	b := s.Actual()
	if off < 0 || off+2 > len(b) {
		return ErrShortBuffer
	}
	binary.LittleEndian.PutUint16(b[off:], v)
	return nil
}

// Uint32LE reads a little-endian uint32 at byte offset off within s.
func (s Slice) Uint32LE(off int) (uint32, error) {
	b := s.Actual()
	if off < 0 || off+4 > len(b) {
		return 0, ErrShortBuffer
	}
	return binary.LittleEndian.Uint32(b[off:]), nil
}

// SetUint32LE writes a little-endian uint32 at byte offset off within s.
func (s Slice) SetUint32LE(off int, v uint32) error {
	b := s.Actual()
	if off < 0 || off+4 > len(b) {
		return ErrShortBuffer
	}
	binary.LittleEndian.PutUint32(b[off:], v)
	return nil
}
