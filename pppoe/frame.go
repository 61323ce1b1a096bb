package pppoe

import (
	"encoding/binary"

	"github.com/soypat/packetview/layer"
	"github.com/soypat/packetview/tlv"
)

// NewFrame returns a Frame over buf. An error is returned if buf is
// shorter than the 6-byte common header.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < sizeHeader {
		return Frame{}, errShort
	}
	return Frame{buf: buf}, nil
}

// Frame provides field accessors over the raw bytes of a PPPoE frame's
// common header (RFC 2516 §5), shared by both Discovery and Session
// stages.
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice the Frame was created over.
func (frm Frame) RawData() []byte { return frm.buf }

// HeaderLength returns the fixed 6-byte common header length.
func (frm Frame) HeaderLength() int { return sizeHeader }

// VersionType returns the packed Version (high nibble) and Type (low
// nibble) byte. Both are fixed at 0x1 by RFC 2516.
func (frm Frame) VersionType() uint8 { return frm.buf[0] }

// Code returns the Code field.
func (frm Frame) Code() Code { return Code(frm.buf[1]) }

// SetCode sets the Code field.
func (frm Frame) SetCode(c Code) { frm.buf[1] = byte(c) }

// SessionID returns the Session ID field.
func (frm Frame) SessionID() uint16 { return binary.BigEndian.Uint16(frm.buf[2:4]) }

// SetSessionID sets the Session ID field.
func (frm Frame) SetSessionID(id uint16) { binary.BigEndian.PutUint16(frm.buf[2:4], id) }

// PayloadLength returns the declared Length field: the size in bytes of
// the payload following the 6-byte header (tag list for Discovery, PPP
// frame for Session).
func (frm Frame) PayloadLength() uint16 { return binary.BigEndian.Uint16(frm.buf[4:6]) }

// SetPayloadLength sets the Length field.
func (frm Frame) SetPayloadLength(n uint16) { binary.BigEndian.PutUint16(frm.buf[4:6], n) }

// Payload returns the bytes following the 6-byte header, bounded by the
// declared Length field.
func (frm Frame) Payload() []byte {
	pl := int(frm.PayloadLength())
	if sizeHeader+pl > len(frm.buf) {
		pl = len(frm.buf) - sizeHeader
	}
	return frm.buf[sizeHeader : sizeHeader+pl]
}

// ClearHeader zeros out the header bytes.
func (frm Frame) ClearHeader() {
	for i := range frm.buf[:sizeHeader] {
		frm.buf[i] = 0
	}
}

// ValidateSize checks the frame's declared Length against the actual
// buffer length.
func (frm Frame) ValidateSize() error {
	if len(frm.buf) < sizeHeader {
		return errShort
	}
	if sizeHeader+int(frm.PayloadLength()) > len(frm.buf) {
		return layer.ErrInvariantViolated
	}
	return nil
}

// tagHeader implements tlv.Header (and tlv.Resizer, for Tag value
// resizing) over Discovery-stage tags: a 2-byte TagType followed by a
// 2-byte length, both big-endian, unlike LLDP's packed 16-bit word.
type tagHeader struct{}

func (tagHeader) Peek(region []byte, off int) (kind uint16, size, headerSize int, terminal bool, err error) {
	if off+4 > len(region) {
		return 0, 0, 0, false, tlv.ErrShortBuffer
	}
	typ := binary.BigEndian.Uint16(region[off : off+2])
	length := int(binary.BigEndian.Uint16(region[off+2 : off+4]))
	return typ, 4 + length, 4, typ == uint16(TagEndOfList), nil
}

func (tagHeader) HeaderSize() int { return 4 }

func (tagHeader) WriteHeader(dst []byte, kind uint16, valueLen int) error {
	if valueLen > 0xffff {
		return layer.ErrValueTooLarge
	}
	binary.BigEndian.PutUint16(dst[0:2], kind)
	binary.BigEndian.PutUint16(dst[2:4], uint16(valueLen))
	return nil
}

// ForEachTag walks a Discovery-stage tag list (the Payload of a Frame
// whose Code is not CodeSession), calling fn once per tag.
func ForEachTag(tags []byte, fn func(typ TagType, value []byte) error) error {
	return tlv.Iterate(tags, tagHeader{}, func(u tlv.Unit) error {
		return fn(TagType(u.Kind), u.Value)
	})
}

// FindTag returns the value of the first tag of the given type in tags,
// or (nil, false) if none is present.
func FindTag(tags []byte, typ TagType) (value []byte, ok bool) {
	ForEachTag(tags, func(t TagType, v []byte) error {
		if t == typ && !ok {
			value, ok = v, true
		}
		return nil
	})
	return value, ok
}
