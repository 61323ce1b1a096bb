package dot1q

import (
	"encoding/binary"
	"errors"

	"github.com/soypat/packetview/ethernet"
)

const sizeHeader = 4

var errShort = errors.New("dot1q: buffer shorter than 4-byte tag")

// Frame provides field accessors over a raw 802.1Q tag: 2 bytes of tag
// control information followed by 2 bytes of inner EtherType.
type Frame struct {
	buf []byte
}

// NewFrame returns a Frame over buf, which must be at least 4 bytes.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < sizeHeader {
		return Frame{}, errShort
	}
	return Frame{buf: buf}, nil
}

// RawData returns the underlying slice the Frame was created over.
func (f Frame) RawData() []byte { return f.buf }

// HeaderLength returns the fixed 4-byte tag length.
func (f Frame) HeaderLength() int { return sizeHeader }

// Tag returns the tag control information field.
func (f Frame) Tag() Tag { return Tag(binary.BigEndian.Uint16(f.buf[0:2])) }

// SetTag sets the tag control information field.
func (f Frame) SetTag(t Tag) { binary.BigEndian.PutUint16(f.buf[0:2], uint16(t)) }

// InnerType returns the EtherType following this tag. When it reads
// TypeVLAN or TypeServiceVLAN the payload is another dot1q.Frame
// (double-tagged, "QinQ").
func (f Frame) InnerType() ethernet.Type { return ethernet.Type(binary.BigEndian.Uint16(f.buf[2:4])) }

// SetInnerType sets the EtherType following this tag.
func (f Frame) SetInnerType(t ethernet.Type) { binary.BigEndian.PutUint16(f.buf[2:4], uint16(t)) }

// IsStacked reports whether InnerType is itself a VLAN TPID.
func (f Frame) IsStacked() bool {
	it := f.InnerType()
	return it == ethernet.TypeVLAN || it == ethernet.TypeServiceVLAN
}

// Payload returns the bytes following the 4-byte tag.
func (f Frame) Payload() []byte { return f.buf[sizeHeader:] }

// ValidateSize checks buf is at least the fixed 4-byte tag length.
func (f Frame) ValidateSize() error {
	if len(f.buf) < sizeHeader {
		return errShort
	}
	return nil
}
