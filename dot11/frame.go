package dot11

import (
	"encoding/binary"

	"github.com/soypat/packetview/layer"
	"github.com/soypat/packetview/tlv"
)

// NewFrame returns a Frame over buf, computing the variable header
// layout (address count, presence of Sequence Control/QoS Control) from
// the Frame Control field. An error is returned if buf is too short for
// the minimum 2-byte Frame Control plus 2-byte Duration.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < sizeFrameControl+sizeDuration {
		return Frame{}, errShort
	}
	frm := Frame{buf: buf}
	if len(buf) < frm.HeaderLength() {
		return Frame{}, errShort
	}
	return frm, nil
}

// Frame provides field accessors over the raw bytes of an IEEE 802.11
// MAC frame header. All multi-byte fields are little-endian.
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice the Frame was created over.
func (frm Frame) RawData() []byte { return frm.buf }

// FrameControlRaw returns the raw 16-bit Frame Control field.
func (frm Frame) FrameControlRaw() uint16 { return binary.LittleEndian.Uint16(frm.buf[0:2]) }

// SetFrameControlRaw sets the raw 16-bit Frame Control field.
func (frm Frame) SetFrameControlRaw(v uint16) { binary.LittleEndian.PutUint16(frm.buf[0:2], v) }

// ProtocolVersion returns the 2-bit Protocol Version subfield.
func (frm Frame) ProtocolVersion() uint8 { return uint8(frm.buf[0] & 0x3) }

// Type returns the 2-bit Type subfield.
func (frm Frame) Type() Type { return Type((frm.buf[0] >> 2) & 0x3) }

// Subtype returns the 4-bit Subtype subfield.
func (frm Frame) Subtype() Subtype { return Subtype((frm.buf[0] >> 4) & 0xf) }

// SetTypeSubtype sets the Type and Subtype subfields, preserving
// Protocol Version.
func (frm Frame) SetTypeSubtype(t Type, s Subtype) {
	frm.buf[0] = frm.buf[0]&0x3 | uint8(t&0x3)<<2 | uint8(s&0xf)<<4
}

// ToDS reports the ToDS flag bit.
func (frm Frame) ToDS() bool { return frm.buf[1]&0x1 != 0 }

// FromDS reports the FromDS flag bit.
func (frm Frame) FromDS() bool { return frm.buf[1]&0x2 != 0 }

// SetToDS sets the ToDS flag bit.
func (frm Frame) SetToDS(v bool) { frm.setFlag(0x1, v) }

// SetFromDS sets the FromDS flag bit.
func (frm Frame) SetFromDS(v bool) { frm.setFlag(0x2, v) }

// MoreFragments reports the More Fragments flag bit.
func (frm Frame) MoreFragments() bool { return frm.buf[1]&0x4 != 0 }

// Retry reports the Retry flag bit.
func (frm Frame) Retry() bool { return frm.buf[1]&0x8 != 0 }

// PowerManagement reports the Power Management flag bit.
func (frm Frame) PowerManagement() bool { return frm.buf[1]&0x10 != 0 }

// MoreData reports the More Data flag bit.
func (frm Frame) MoreData() bool { return frm.buf[1]&0x20 != 0 }

// Protected reports the Protected Frame flag bit.
func (frm Frame) Protected() bool { return frm.buf[1]&0x40 != 0 }

// Order reports the Order flag bit.
func (frm Frame) Order() bool { return frm.buf[1]&0x80 != 0 }

func (frm Frame) setFlag(mask uint8, v bool) {
	if v {
		frm.buf[1] |= mask
	} else {
		frm.buf[1] &^= mask
	}
}

// Duration returns the Duration/ID field.
func (frm Frame) Duration() uint16 { return binary.LittleEndian.Uint16(frm.buf[2:4]) }

// SetDuration sets the Duration/ID field.
func (frm Frame) SetDuration(v uint16) { binary.LittleEndian.PutUint16(frm.buf[2:4], v) }

const addr1Offset = 4

// Addr1 returns the first address field, always present.
func (frm Frame) Addr1() *[6]byte { return (*[6]byte)(frm.buf[addr1Offset : addr1Offset+addrLen]) }

// hasAddr2And3 reports whether this frame carries Addr2/Addr3/Sequence
// Control: true for all management and data frames, false for most
// control frames (whose body follows Addr1 directly).
func (frm Frame) hasAddr2And3() bool { return frm.Type() != TypeControl }

// Addr2 returns the second address field, if present (see
// HeaderLength).
func (frm Frame) Addr2() *[6]byte {
	off := addr1Offset + addrLen
	return (*[6]byte)(frm.buf[off : off+addrLen])
}

// Addr3 returns the third address field, if present.
func (frm Frame) Addr3() *[6]byte {
	off := addr1Offset + 2*addrLen
	return (*[6]byte)(frm.buf[off : off+addrLen])
}

// SequenceControl returns the Sequence Control field, if present.
func (frm Frame) SequenceControl() uint16 {
	off := addr1Offset + 3*addrLen
	return binary.LittleEndian.Uint16(frm.buf[off : off+sizeSequenceControl])
}

// SetSequenceControl sets the Sequence Control field.
func (frm Frame) SetSequenceControl(v uint16) {
	off := addr1Offset + 3*addrLen
	binary.LittleEndian.PutUint16(frm.buf[off:off+sizeSequenceControl], v)
}

// HasAddr4 reports whether this frame carries a 4th address (WDS:
// both ToDS and FromDS set), per IEEE 802.11-2020 §9.2.4.
func (frm Frame) HasAddr4() bool {
	return frm.hasAddr2And3() && frm.ToDS() && frm.FromDS()
}

func (frm Frame) addr4Offset() int {
	return addr1Offset + 3*addrLen + sizeSequenceControl
}

// Addr4 returns the fourth address field, if present (see HasAddr4).
func (frm Frame) Addr4() *[6]byte {
	off := frm.addr4Offset()
	return (*[6]byte)(frm.buf[off : off+addrLen])
}

func (frm Frame) qosOffset() int {
	off := addr1Offset + addrLen
	if frm.hasAddr2And3() {
		off += 2*addrLen + sizeSequenceControl
	}
	if frm.HasAddr4() {
		off += addrLen
	}
	return off
}

// HasQoSControl reports whether this frame carries a QoS Control field
// (a Data-type frame with a QoS subtype).
func (frm Frame) HasQoSControl() bool {
	return frm.Type() == TypeData && frm.Subtype().IsQoS()
}

// QoSControl returns the QoS Control field, if present (see
// HasQoSControl).
func (frm Frame) QoSControl() uint16 {
	off := frm.qosOffset()
	return binary.LittleEndian.Uint16(frm.buf[off : off+sizeQoSControl])
}

// SetQoSControl sets the QoS Control field.
func (frm Frame) SetQoSControl(v uint16) {
	off := frm.qosOffset()
	binary.LittleEndian.PutUint16(frm.buf[off:off+sizeQoSControl], v)
}

// HeaderLength returns this frame's total MAC header length: Frame
// Control, Duration, the addresses and Sequence Control this frame's
// Type/Subtype/flags declare, and QoS Control if present.
func (frm Frame) HeaderLength() int {
	n := addr1Offset + addrLen
	if frm.hasAddr2And3() {
		n += 2*addrLen + sizeSequenceControl
	}
	if frm.HasAddr4() {
		n += addrLen
	}
	if frm.HasQoSControl() {
		n += sizeQoSControl
	}
	return n
}

// Body returns the bytes following the MAC header (the frame body: IEs
// for management frames, payload for data frames).
func (frm Frame) Body() []byte { return frm.buf[frm.HeaderLength():] }

// ClearHeader zeros out the header bytes.
func (frm Frame) ClearHeader() {
	for i := range frm.buf[:frm.HeaderLength()] {
		frm.buf[i] = 0
	}
}

// ieHeader implements tlv.Resizer over IEEE 802.11 Information
// Elements: a 1-byte Element ID followed by a 1-byte length, the
// simplest of the three TLV shapes tlv.Header generalizes (LLDP packs
// type+length into one word; PPPoE uses 2+2 bytes; this uses 1+1).
type ieHeader struct{}

func (ieHeader) Peek(region []byte, off int) (kind uint16, size, headerSize int, terminal bool, err error) {
	if off+2 > len(region) {
		return 0, 0, 0, false, tlv.ErrShortBuffer
	}
	id := region[off]
	length := int(region[off+1])
	return uint16(id), 2 + length, 2, false, nil
}

func (ieHeader) HeaderSize() int { return 2 }

func (ieHeader) WriteHeader(dst []byte, kind uint16, valueLen int) error {
	if valueLen > 0xff {
		return layer.ErrValueTooLarge
	}
	dst[0] = byte(kind)
	dst[1] = byte(valueLen)
	return nil
}

// ForEachIE walks a management frame's Information Element list (the
// Frame's Body()), calling fn once per IE.
func ForEachIE(body []byte, fn func(id InformationElementID, value []byte) error) error {
	return tlv.Iterate(body, ieHeader{}, func(u tlv.Unit) error {
		return fn(InformationElementID(u.Kind), u.Value)
	})
}

// FindIE returns the value of the first IE of the given id in body, or
// (nil, false) if none is present.
func FindIE(body []byte, id InformationElementID) (value []byte, ok bool) {
	ForEachIE(body, func(i InformationElementID, v []byte) error {
		if i == id && !ok {
			value, ok = v, true
		}
		return nil
	})
	return value, ok
}
