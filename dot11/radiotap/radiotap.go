// Package radiotap implements a thin reader for the de-facto radiotap
// header that precedes captured IEEE 802.11 frames: a length-delimited,
// bitmask-driven field set, per spec §4.4's requirement for "length-
// delimited field sets with lossless Unknown(type, bytes) preservation."
//
// No teacher or pack file implements radiotap; the header shape (fixed
// version/pad/length/present prefix, then present-bit-ordered aligned
// fields) follows the widely-deployed radiotap.org specification. Only
// the small set of fields every capture tool emits are given named
// accessors (TSFT, Flags, Rate, Channel, Antenna Signal); anything else
// present is preserved as a single trailing Unknown field rather than
// mis-parsed, since later field offsets depend on knowing every
// preceding field's exact size and alignment.
package radiotap

import (
	"encoding/binary"
	"errors"
)

var errShort = errors.New("radiotap: buffer shorter than declared length")

const sizeFixedHeader = 8

// Bit positions of the present-flags fields this package recognizes
// (radiotap.org "Radiotap field list").
const (
	BitTSFT           = 0
	BitFlags          = 1
	BitRate           = 2
	BitChannel        = 3
	BitFHSS           = 4
	BitAntennaSignal  = 5
	BitAntennaNoise   = 6
	BitLockQuality    = 7
	BitTxAttenuation  = 8
	BitTxAttenuationDB = 9
	BitTxPower        = 10
	BitAntenna        = 11
	BitAntennaSignalDB = 12
	BitAntennaNoiseDB  = 13
	BitRxFlags        = 14
	bitExtendedPresent = 31
)

type fieldSpec struct {
	size, align int
}

var knownFields = map[int]fieldSpec{
	BitTSFT:            {8, 8},
	BitFlags:           {1, 1},
	BitRate:            {1, 1},
	BitChannel:         {4, 2},
	BitFHSS:            {2, 1},
	BitAntennaSignal:   {1, 1},
	BitAntennaNoise:    {1, 1},
	BitLockQuality:     {2, 2},
	BitTxAttenuation:   {2, 2},
	BitTxAttenuationDB: {2, 2},
	BitTxPower:         {1, 1},
	BitAntenna:         {1, 1},
	BitAntennaSignalDB: {1, 1},
	BitAntennaNoiseDB:  {1, 1},
	BitRxFlags:         {2, 2},
}

// Field is one entry of a radiotap header's field set: either a
// recognized field (BitIndex one of the Bit* constants) or, when
// iteration reaches a present bit this package does not model, a
// single trailing Field with BitIndex -1 carrying every remaining byte
// of the header unparsed, preserving it losslessly.
type Field struct {
	BitIndex int
	Data     []byte
}

// UnknownBitIndex is the BitIndex of the trailing Unknown field, if any.
const UnknownBitIndex = -1

// NewHeader returns a Header over buf. An error is returned if buf is
// shorter than the fixed 8-byte prefix or the declared Length field.
func NewHeader(buf []byte) (Header, error) {
	if len(buf) < sizeFixedHeader {
		return Header{}, errShort
	}
	h := Header{buf: buf}
	if len(buf) < int(h.PacketLength()) {
		return Header{}, errShort
	}
	return h, nil
}

// Header provides field accessors over a radiotap header.
type Header struct {
	buf []byte
}

// RawData returns the underlying slice the Header was created over.
func (h Header) RawData() []byte { return h.buf }

// Version returns the it_version byte (always 0).
func (h Header) Version() uint8 { return h.buf[0] }

// PacketLength returns the it_len field: the total length in bytes of
// this radiotap header, including the fields that follow it.
func (h Header) PacketLength() uint16 { return binary.LittleEndian.Uint16(h.buf[2:4]) }

// presentWords returns every present-flags word, following the
// extended-presence chain (bit 31 of a word means another word
// follows).
func (h Header) presentWords() []uint32 {
	var words []uint32
	off := 4
	for {
		if off+4 > len(h.buf) {
			break
		}
		w := binary.LittleEndian.Uint32(h.buf[off : off+4])
		words = append(words, w)
		off += 4
		if w&(1<<bitExtendedPresent) == 0 {
			break
		}
	}
	return words
}

func (h Header) fieldsOffset() int { return 4 + 4*len(h.presentWords()) }

// Fields walks the field set described by the present-flags word(s),
// in bit order, returning one Field per recognized bit plus (if
// iteration reaches an unrecognized present bit) a single trailing
// Field{BitIndex: UnknownBitIndex} with every remaining declared byte.
func (h Header) Fields() []Field {
	words := h.presentWords()
	if len(words) == 0 {
		return nil
	}
	present := words[0] // only the base word's small field set is modeled
	off := h.fieldsOffset()
	end := int(h.PacketLength())
	if end > len(h.buf) {
		end = len(h.buf)
	}
	var out []Field
	for bit := 0; bit < 31; bit++ {
		if present&(1<<uint(bit)) == 0 {
			continue
		}
		spec, ok := knownFields[bit]
		if !ok {
			if off < end {
				out = append(out, Field{BitIndex: UnknownBitIndex, Data: h.buf[off:end]})
			}
			return out
		}
		if off%spec.align != 0 {
			off += spec.align - off%spec.align
		}
		if off+spec.size > end {
			break
		}
		out = append(out, Field{BitIndex: bit, Data: h.buf[off : off+spec.size]})
		off += spec.size
	}
	return out
}

// find returns the data of the first Field with the given bit index.
func (h Header) find(bit int) ([]byte, bool) {
	for _, f := range h.Fields() {
		if f.BitIndex == bit {
			return f.Data, true
		}
	}
	return nil, false
}

// TSFT returns the Time Synchronization Function Timer field in
// microseconds, if present.
func (h Header) TSFT() (uint64, bool) {
	d, ok := h.find(BitTSFT)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint64(d), true
}

// Flags returns the Flags field, if present.
func (h Header) Flags() (uint8, bool) {
	d, ok := h.find(BitFlags)
	if !ok {
		return 0, false
	}
	return d[0], true
}

// Rate returns the Rate field in units of 500 kbps, if present.
func (h Header) Rate() (uint8, bool) {
	d, ok := h.find(BitRate)
	if !ok {
		return 0, false
	}
	return d[0], true
}

// ChannelFrequency returns the Channel field's frequency in MHz, if
// present.
func (h Header) ChannelFrequency() (uint16, bool) {
	d, ok := h.find(BitChannel)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(d[0:2]), true
}

// ChannelFlags returns the Channel field's flags, if present.
func (h Header) ChannelFlags() (uint16, bool) {
	d, ok := h.find(BitChannel)
	if !ok {
		return 0, false
	}
	return binary.LittleEndian.Uint16(d[2:4]), true
}

// AntennaSignal returns the Antenna Signal field in dBm (signed), if
// present.
func (h Header) AntennaSignal() (int8, bool) {
	d, ok := h.find(BitAntennaSignal)
	if !ok {
		return 0, false
	}
	return int8(d[0]), true
}

// Payload returns the bytes following this radiotap header: the
// captured 802.11 frame itself.
func (h Header) Payload() []byte {
	l := int(h.PacketLength())
	if l > len(h.buf) {
		l = len(h.buf)
	}
	return h.buf[l:]
}
