package ipv6

import (
	"encoding/binary"
	"errors"

	"github.com/soypat/packetview/checksum"
	"github.com/soypat/packetview/ipv4"
)

var (
	errShortBuf   = errors.New("ipv6: buffer shorter than 40-byte header")
	errShortFrame = errors.New("ipv6: declared payload length exceeds buffer")
)

// NewFrame returns a Frame over buf. An error is returned if buf is
// shorter than the fixed 40-byte header. Call [Frame.ValidateSize]
// before reading Payload to avoid a panic on a short buffer.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < sizeHeader {
		return Frame{}, errShortBuf
	}
	return Frame{buf: buf}, nil
}

// Frame provides field accessors over the raw bytes of an IPv6 fixed
// header.
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice the Frame was created over.
func (i6frm Frame) RawData() []byte { return i6frm.buf }

// HeaderLength returns the fixed 40-byte IPv6 header length. Extension
// headers, if any, are part of the payload as far as this module is
// concerned (see package doc).
func (i6frm Frame) HeaderLength() int { return sizeHeader }

// Payload returns the data following the fixed header, per the
// declared PayloadLength.
func (i6frm Frame) Payload() []byte {
	pl := i6frm.PayloadLength()
	return i6frm.buf[sizeHeader : sizeHeader+int(pl)]
}

// VersionTrafficAndFlow returns the version, traffic class and flow
// label fields packed into the first 32 bits of the header.
func (i6frm Frame) VersionTrafficAndFlow() (version uint8, tos ToS, flow uint32) {
	v := binary.BigEndian.Uint32(i6frm.buf[0:4])
	version = uint8(v >> 28)
	tos = ToS(v >> 20)
	flow = v & 0x000fffff
	return version, tos, flow
}

// SetVersionTrafficAndFlow sets the version, traffic class and flow
// label fields. Version must be 6.
func (i6frm Frame) SetVersionTrafficAndFlow(version uint8, tos ToS, flow uint32) {
	v := flow&0x000fffff | uint32(tos)<<20 | uint32(version)<<28
	binary.BigEndian.PutUint32(i6frm.buf[0:4], v)
}

// PayloadLength returns the size in bytes of the payload following the
// fixed header, including any extension headers.
func (i6frm Frame) PayloadLength() uint16 { return binary.BigEndian.Uint16(i6frm.buf[4:6]) }

// SetPayloadLength sets the payload length field.
func (i6frm Frame) SetPayloadLength(pl uint16) { binary.BigEndian.PutUint16(i6frm.buf[4:6], pl) }

// NextHeader returns the Next Header field, usually the upper-layer
// protocol carried in Payload.
func (i6frm Frame) NextHeader() ipv4.Proto { return ipv4.Proto(i6frm.buf[6]) }

// SetNextHeader sets the Next Header field.
func (i6frm Frame) SetNextHeader(proto ipv4.Proto) { i6frm.buf[6] = uint8(proto) }

// HopLimit returns the Hop Limit field.
func (i6frm Frame) HopLimit() uint8 { return i6frm.buf[7] }

// SetHopLimit sets the Hop Limit field.
func (i6frm Frame) SetHopLimit(hop uint8) { i6frm.buf[7] = hop }

// SourceAddr returns a pointer to the source address field.
func (i6frm Frame) SourceAddr() *[16]byte { return (*[16]byte)(i6frm.buf[8:24]) }

// DestinationAddr returns a pointer to the destination address field.
func (i6frm Frame) DestinationAddr() *[16]byte { return (*[16]byte)(i6frm.buf[24:40]) }

// WritePseudoHeader writes the IPv6 pseudo-header TCP/UDP/ICMPv6
// checksums are computed over into s.
func (i6frm Frame) WritePseudoHeader(s *checksum.Sum) {
	ph := checksum.IPv6Pseudo(*i6frm.SourceAddr(), *i6frm.DestinationAddr(), uint8(i6frm.NextHeader()), uint32(i6frm.PayloadLength()))
	s.Write(ph[:])
}

// ClearHeader zeros out the header bytes.
func (i6frm Frame) ClearHeader() {
	for i := range i6frm.buf[:sizeHeader] {
		i6frm.buf[i] = 0
	}
}

// ValidateSize checks the declared payload length against the actual
// buffer length.
func (i6frm Frame) ValidateSize() error {
	if len(i6frm.buf) < sizeHeader {
		return errShortBuf
	}
	if int(i6frm.PayloadLength())+sizeHeader > len(i6frm.buf) {
		return errShortFrame
	}
	return nil
}
