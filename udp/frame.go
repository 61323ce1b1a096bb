package udp

import (
	"encoding/binary"
	"errors"

	"github.com/soypat/packetview/checksum"
)

var (
	errShort  = errors.New("udp: buffer shorter than 8-byte header")
	errBadLen = errors.New("udp: length field is smaller than the header")
	errTooShort = errors.New("udp: declared length exceeds buffer")
)

// NewFrame returns a Frame over buf. An error is returned if buf is
// shorter than the fixed 8-byte header. Call [Frame.ValidateSize]
// before reading Payload to avoid a panic on a short buffer.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < sizeHeader {
		return Frame{}, errShort
	}
	return Frame{buf: buf}, nil
}

// Frame provides field accessors over the raw bytes of a UDP
// datagram, per RFC 768.
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice the Frame was created over.
func (ufrm Frame) RawData() []byte { return ufrm.buf }

// SourcePort returns the source port field.
func (ufrm Frame) SourcePort() uint16 { return binary.BigEndian.Uint16(ufrm.buf[0:2]) }

// SetSourcePort sets the source port field.
func (ufrm Frame) SetSourcePort(port uint16) { binary.BigEndian.PutUint16(ufrm.buf[0:2], port) }

// DestinationPort returns the destination port field.
func (ufrm Frame) DestinationPort() uint16 { return binary.BigEndian.Uint16(ufrm.buf[2:4]) }

// SetDestinationPort sets the destination port field.
func (ufrm Frame) SetDestinationPort(port uint16) { binary.BigEndian.PutUint16(ufrm.buf[2:4], port) }

// Length returns the datagram length field (header plus payload,
// minimum 8).
func (ufrm Frame) Length() uint16 { return binary.BigEndian.Uint16(ufrm.buf[4:6]) }

// SetLength sets the datagram length field.
func (ufrm Frame) SetLength(length uint16) { binary.BigEndian.PutUint16(ufrm.buf[4:6], length) }

// CRC returns the checksum field.
func (ufrm Frame) CRC() uint16 { return binary.BigEndian.Uint16(ufrm.buf[6:8]) }

// SetCRC sets the checksum field.
func (ufrm Frame) SetCRC(crc uint16) { binary.BigEndian.PutUint16(ufrm.buf[6:8], crc) }

// Payload returns the datagram's payload, per the declared Length.
// Call [Frame.ValidateSize] first to avoid a panic on a short buffer.
func (ufrm Frame) Payload() []byte { return ufrm.buf[sizeHeader:ufrm.Length()] }

// ClearHeader zeros out the header bytes.
func (ufrm Frame) ClearHeader() {
	for i := range ufrm.buf[:sizeHeader] {
		ufrm.buf[i] = 0
	}
}

// ValidateSize checks the frame's declared length field against the
// actual buffer length.
func (ufrm Frame) ValidateSize() error {
	l := ufrm.Length()
	if l < sizeHeader {
		return errBadLen
	}
	if int(l) > len(ufrm.buf) {
		return errTooShort
	}
	return nil
}

// CalculateCRC returns the folded ones' sum, not complemented, of pseudo
// (built with checksum.IPv4Pseudo or checksum.IPv6Pseudo) followed by the
// whole datagram with its checksum field treated as zero, per RFC 768 as
// amended by RFC 791 §3.1/RFC 8200 §8.1. The checksum field value is the
// complement of this sum, which is what UpdateCRC writes.
func (ufrm Frame) CalculateCRC(pseudo []byte) uint16 {
	var s checksum.Sum
	s.Write(pseudo)
	s.Write(ufrm.buf[0:6])
	s.AddUint16(0) // checksum field itself, zeroed
	s.Write(ufrm.buf[8:])
	return s.Sum16()
}

// UpdateCRC recomputes and writes the checksum field given the
// enclosing pseudo-header bytes. A computed value of exactly zero is
// replaced with 0xFFFF, since a transmitted checksum of zero
// conventionally means "no checksum computed" over IPv4 (RFC 768).
func (ufrm Frame) UpdateCRC(pseudo []byte) {
	ufrm.SetCRC(0)
	ufrm.SetCRC(checksum.NeverZero(^ufrm.CalculateCRC(pseudo)))
}

// ValidateCRC reports whether the stored checksum is consistent with
// pseudo and the datagram contents. A stored checksum of zero is
// always treated as valid (checksum not computed, permitted over
// IPv4).
func (ufrm Frame) ValidateCRC(pseudo []byte) bool {
	if ufrm.CRC() == 0 {
		return true
	}
	var s checksum.Sum
	s.Write(pseudo)
	s.Write(ufrm.buf)
	return checksum.Valid(s.Sum16())
}
