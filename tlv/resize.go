package tlv

import "github.com/soypat/packetview/bslice"

// Resizer is a Header strategy that additionally knows how to re-encode a
// unit's own header for a new value length. LLDP's ManagementAddress and
// OrganizationSpecific TLVs, and IEEE 802.11 information elements, use this
// to grow or shrink a single unit's value in place.
type Resizer interface {
	Header
	// HeaderSize is the fixed size in bytes of this protocol's TLV
	// header (2 for LLDP's packed type+length word, 2 for an 802.11 IE's
	// id+length bytes).
	HeaderSize() int
	// WriteHeader writes exactly HeaderSize() bytes encoding kind and a
	// value of length valueLen into dst. Returns ErrValueTooLarge if
	// valueLen does not fit the protocol's length field.
	WriteHeader(dst []byte, kind uint16, valueLen int) error
}

// Resize replaces unit's value with newValue. parent is the Slice whose
// Actual() contains the TLV/IE region (and, for protocols like 802.11 where
// the IE list follows fixed header fields, any bytes preceding it);
// regionOffset is where the TLV/IE region begins within parent.Actual().
// unit's Start/End are relative to that region, as produced by
// [Iterate]/[Count] called over region = parent.Actual()[regionOffset:].
//
// When len(newValue) != len(unit.Value), Resize allocates a fresh backing
// buffer sized to fit, copies the preserved prefix (everything before the
// unit, including non-TLV header bytes) and the trailing units unchanged,
// writes the new header and value in between, and rebinds parent to the
// new buffer — per the spec's "affected layer owns a fresh larger buffer
// and reassigns its ByteSlice" contract. Callers must discard any cached
// sub-slices of parent's old buffer after a successful Resize; the
// returned Unit is valid immediately.
func Resize(parent *bslice.Slice, regionOffset int, unit Unit, h Resizer, newValue []byte) (Unit, error) {
	hs := h.HeaderSize()
	old := parent.Actual()
	prefixLen := regionOffset + unit.Start
	suffixStart := regionOffset + unit.End
	suffixLen := len(old) - suffixStart
	newUnitTotal := hs + len(newValue)
	newTotal := prefixLen + newUnitTotal + suffixLen

	buf := make([]byte, newTotal)
	copy(buf[:prefixLen], old[:prefixLen])
	if err := h.WriteHeader(buf[prefixLen:prefixLen+hs], unit.Kind, len(newValue)); err != nil {
		return Unit{}, err
	}
	copy(buf[prefixLen+hs:prefixLen+newUnitTotal], newValue)
	copy(buf[prefixLen+newUnitTotal:], old[suffixStart:])

	*parent = bslice.New(buf)
	return Unit{
		Kind:  unit.Kind,
		Start: unit.Start,
		End:   unit.Start + newUnitTotal,
		Value: buf[prefixLen+hs : prefixLen+newUnitTotal],
	}, nil
}
