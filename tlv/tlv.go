// Package tlv implements the type-then-length-then-value iteration pattern
// shared by TCP options, LLDP TLVs and IEEE 802.11 information elements:
// each protocol supplies a [Header] strategy describing how to read a
// unit's kind/length from a byte position, and tlv.Iterate walks the
// region calling back once per unit.
//
// Grounded on the teacher's tcp/options.go ForEachOption loop (same
// "advance by kind, read a length byte, advance by length" shape), and on
// the CDP TLV encode/decode pattern in the reference pack, generalized
// here so every protocol's option/TLV list shares one walker.
package tlv

import "errors"

var (
	// ErrShortBuffer is returned when a unit's declared length runs past
	// the end of the region being iterated.
	ErrShortBuffer = errors.New("tlv: short buffer")
	// ErrUnknownOption is returned for a kind the protocol package does
	// not recognize at all.
	ErrUnknownOption = errors.New("tlv: unknown option kind")
	// ErrUnsupportedOption is returned for a kind the protocol package
	// recognizes as an experimental/reserved option it deliberately does
	// not support.
	ErrUnsupportedOption = errors.New("tlv: unsupported (experimental) option")
)

// Unit is one type-length-value record found during iteration.
type Unit struct {
	Kind  uint16 // protocol-specific kind/type discriminator
	Value []byte // the unit's value bytes, aliasing the iterated region
	Start int    // byte offset of the unit (including its header) within the region
	End   int    // byte offset one past the end of the unit within the region
}

// Header describes how a protocol packs a TLV unit's kind and length at a
// given byte position within a region.
type Header interface {
	// Peek reads the unit starting at region[off:]. It returns the
	// unit's kind, the total size of the unit in bytes (header + value,
	// i.e. how far to advance), and the size of the header alone (so
	// Value = region[off+headerSize : off+size]). terminal is true for a
	// terminator unit (e.g. TCP's EndOfOptionList, LLDP's type-0
	// End-of-LLDPDU); Iterate still passes a terminator to fn as the
	// final Unit and then stops.
	Peek(region []byte, off int) (kind uint16, size, headerSize int, terminal bool, err error)
}

// Iterate walks region calling fn once per unit, in order, stopping at the
// first terminal unit (inclusive) or at the end of region. It returns the
// first error returned by fn or by the Header strategy.
func Iterate(region []byte, h Header, fn func(Unit) error) error {
	off := 0
	for off < len(region) {
		kind, size, headerSize, terminal, err := h.Peek(region, off)
		if err != nil {
			return err
		}
		if off+size > len(region) {
			return ErrShortBuffer
		}
		u := Unit{
			Kind:  kind,
			Value: region[off+headerSize : off+size],
			Start: off,
			End:   off + size,
		}
		if err := fn(u); err != nil {
			return err
		}
		off += size
		if terminal {
			return nil
		}
	}
	return nil
}

// Count returns the number of units Iterate visits with a no-op fn, i.e.
// purely a structural walk. An error from the Header strategy (including
// ErrUnknownOption/ErrUnsupportedOption) is returned along with the
// number of units visited before it.
func Count(region []byte, h Header) (int, error) {
	n := 0
	err := Iterate(region, h, func(Unit) error { n++; return nil })
	return n, err
}
