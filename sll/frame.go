package sll

import (
	"encoding/binary"

	"github.com/soypat/packetview/ethernet"
)

// NewFrame returns a Frame over buf. An error is returned if buf is
// shorter than the fixed 16-byte header.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < sizeHeader {
		return Frame{}, errShort
	}
	return Frame{buf: buf}, nil
}

// Frame provides field accessors over the raw bytes of a Linux cooked
// capture (SLL) header.
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice the Frame was created over.
func (frm Frame) RawData() []byte { return frm.buf }

// HeaderLength returns the fixed 16-byte SLL header length.
func (frm Frame) HeaderLength() int { return sizeHeader }

// PacketType returns the packet type field.
func (frm Frame) PacketType() PacketType { return PacketType(binary.BigEndian.Uint16(frm.buf[0:2])) }

// SetPacketType sets the packet type field.
func (frm Frame) SetPacketType(p PacketType) { binary.BigEndian.PutUint16(frm.buf[0:2], uint16(p)) }

// ARPHRDType returns the ARP hardware type field.
func (frm Frame) ARPHRDType() ARPHRDType { return ARPHRDType(binary.BigEndian.Uint16(frm.buf[2:4])) }

// SetARPHRDType sets the ARP hardware type field.
func (frm Frame) SetARPHRDType(t ARPHRDType) { binary.BigEndian.PutUint16(frm.buf[2:4], uint16(t)) }

// AddrLength returns the declared link-layer address length (bytes
// significant within the 8-byte Address field).
func (frm Frame) AddrLength() uint16 { return binary.BigEndian.Uint16(frm.buf[4:6]) }

// SetAddrLength sets the declared link-layer address length.
func (frm Frame) SetAddrLength(n uint16) { binary.BigEndian.PutUint16(frm.buf[4:6], n) }

// Address returns the AddrLength() significant bytes of the fixed
// 8-byte link-layer address field.
func (frm Frame) Address() []byte {
	n := int(frm.AddrLength())
	if n > addrMaxLen {
		n = addrMaxLen
	}
	return frm.buf[6 : 6+n]
}

// ProtocolType returns the protocol type field, reusing ethernet.Type
// since SLL's protocol field occupies the same EtherType space.
func (frm Frame) ProtocolType() ethernet.Type {
	return ethernet.Type(binary.BigEndian.Uint16(frm.buf[14:16]))
}

// SetProtocolType sets the protocol type field.
func (frm Frame) SetProtocolType(t ethernet.Type) {
	binary.BigEndian.PutUint16(frm.buf[14:16], uint16(t))
}

// Payload returns the data following the 16-byte SLL header.
func (frm Frame) Payload() []byte { return frm.buf[sizeHeader:] }

// ClearHeader zeros out the header bytes.
func (frm Frame) ClearHeader() {
	for i := range frm.buf[:sizeHeader] {
		frm.buf[i] = 0
	}
}

// ValidateSize checks buf is at least as long as the fixed header.
func (frm Frame) ValidateSize() error {
	if len(frm.buf) < sizeHeader {
		return errShort
	}
	return nil
}
