// Package icmpv4 implements ICMP for IPv4 (RFC 792) dissection and
// construction: the common 4-byte header plus type-specific views for
// Echo/Echo-Reply and Destination-Unreachable messages.
//
// Directly grounded on and adapted from the teacher's
// ipv4/icmpv4/icmpv4.go.
package icmpv4

import (
	"encoding/binary"
	"errors"

	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/checksum"
	"github.com/soypat/packetview/layer"
)

var errShortFrame = errors.New("icmpv4: buffer shorter than 8-byte header")

// Type is the ICMPv4 message type field.
type Type uint8

const (
	TypeEchoReply Type = 0
	TypeEcho      Type = 8

	TypeDestinationUnreachable Type = 3
	TypeSourceQuench           Type = 4
	TypeRedirect               Type = 5

	TypeTimeExceeded     Type = 11
	TypeParameterProblem Type = 12

	TypeTimestamp      Type = 13
	TypeTimestampReply Type = 14

	TypeInfoRequest      Type = 15
	TypeInfoRequestReply Type = 16
)

// CodeTimeExceeded enumerates the Code field values of a
// TypeTimeExceeded message.
type CodeTimeExceeded uint8

const (
	CodeExceededInTransit CodeTimeExceeded = iota
	CodeFragmentReassembly
)

// CodeDestinationUnreachable enumerates the Code field values of a
// TypeDestinationUnreachable message.
type CodeDestinationUnreachable uint8

const (
	CodeNetUnreachable CodeDestinationUnreachable = iota
	CodeHostUnreachable
	CodeProtoUnreachable
	CodePortUnreachable
	CodeFragNeededAndDFSet
	CodeSourceRouteFailed
)

// CodeRedirect enumerates the Code field values of a TypeRedirect
// message.
type CodeRedirect uint8

const (
	CodeRedirectForNetwork CodeRedirect = iota
	CodeRedirectForHost
	CodeRedirectForToSAndNetwork
	CodeRedirectToSAndHost
)

// NewFrame returns a Frame over buf, which must be at least 8 bytes (the
// common header, reserved/rest-of-header word included).
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < 8 {
		return Frame{}, errShortFrame
	}
	return Frame{buf: buf}, nil
}

// Frame provides field accessors over the raw bytes of an ICMPv4
// message's common 8-byte header.
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice the Frame was created over.
func (frm Frame) RawData() []byte { return frm.buf }

// Type returns the message type field.
func (frm Frame) Type() Type { return Type(frm.buf[0]) }

// SetType sets the message type field.
func (frm Frame) SetType(t Type) { frm.buf[0] = uint8(t) }

// Code returns the message code field.
func (frm Frame) Code() uint8 { return frm.buf[1] }

// SetCode sets the message code field.
func (frm Frame) SetCode(code uint8) { frm.buf[1] = code }

// CRC returns the checksum field.
func (frm Frame) CRC() uint16 { return binary.BigEndian.Uint16(frm.buf[2:4]) }

// SetCRC sets the checksum field.
func (frm Frame) SetCRC(crc uint16) { binary.BigEndian.PutUint16(frm.buf[2:4], crc) }

// CalculateCRC returns the folded ones' sum, not complemented, of the
// whole message (type, code, the rest-of-header word, and any trailing
// data), treating the checksum field itself as zero per RFC 792. The
// checksum field value is the complement of this sum, which is what
// UpdateCRC writes.
func (frm Frame) CalculateCRC() uint16 {
	var s checksum.Sum
	s.AddUint16(binary.BigEndian.Uint16(frm.buf[0:2]))
	s.Write(frm.buf[4:])
	return s.Sum16()
}

// UpdateCRC recomputes and writes the checksum field.
func (frm Frame) UpdateCRC() {
	frm.SetCRC(0)
	frm.SetCRC(^frm.CalculateCRC())
}

// ValidateCRC reports whether the stored checksum is consistent with
// the message contents.
func (frm Frame) ValidateCRC() bool {
	var s checksum.Sum
	s.Write(frm.buf[0:4])
	s.Write(frm.buf[4:])
	return checksum.Valid(s.Sum16())
}

// Payload returns the data following the common 8-byte header.
func (frm Frame) Payload() []byte { return frm.buf[8:] }

// Echo returns an Echo/Echo-Reply view over this Frame.
func (frm Frame) Echo() FrameEcho { return FrameEcho{Frame: frm} }

// DestinationUnreachable returns a Destination-Unreachable view over
// this Frame.
func (frm Frame) DestinationUnreachable() FrameDestinationUnreachable {
	return FrameDestinationUnreachable{Frame: frm}
}

// FrameDestinationUnreachable narrows Frame.Code to
// CodeDestinationUnreachable.
type FrameDestinationUnreachable struct{ Frame }

func (frm FrameDestinationUnreachable) Code() CodeDestinationUnreachable {
	return CodeDestinationUnreachable(frm.Frame.Code())
}

func (frm FrameDestinationUnreachable) SetCode(code CodeDestinationUnreachable) {
	frm.Frame.SetCode(uint8(code))
}

// FrameEcho narrows Frame to the Echo/Echo-Reply layout: identifier and
// sequence number replace the generic rest-of-header word.
type FrameEcho struct{ Frame }

// Identifier returns the echo identifier field.
func (frm FrameEcho) Identifier() uint16 { return binary.BigEndian.Uint16(frm.buf[4:6]) }

// SetIdentifier sets the echo identifier field.
func (frm FrameEcho) SetIdentifier(id uint16) { binary.BigEndian.PutUint16(frm.buf[4:6], id) }

// SequenceNumber returns the echo sequence number field.
func (frm FrameEcho) SequenceNumber() uint16 { return binary.BigEndian.Uint16(frm.buf[6:8]) }

// SetSequenceNumber sets the echo sequence number field.
func (frm FrameEcho) SetSequenceNumber(seq uint16) { binary.BigEndian.PutUint16(frm.buf[6:8], seq) }

// Data returns the echo payload following the 8-byte header.
func (frm FrameEcho) Data() []byte { return frm.buf[8:] }

// ValidateSize checks buf is at least the 8-byte common header.
func (frm Frame) ValidateSize() error {
	if len(frm.buf) < 8 {
		return errShortFrame
	}
	return nil
}

// Layer is the ICMPv4 protocol layer. The message body (echo data or
// the offending packet fragment quoted by an error message) is carried
// as terminal bytes in the payload slot; this module does not recurse
// into the quoted packet.
type Layer struct {
	layer.Base
}

// NewLayer parses an ICMPv4 common header out of the start of buf.
func NewLayer(buf []byte) (*Layer, error) {
	frm, err := NewFrame(buf)
	if err != nil {
		return nil, err
	}
	hdr, err := bslice.NewAt(buf, 0, 8)
	if err != nil {
		return nil, err
	}
	l := &Layer{Base: layer.NewBase(hdr)}
	if rest := frm.Payload(); len(rest) > 0 {
		body, err := bslice.NewAt(buf, 8, len(rest))
		if err != nil {
			return nil, err
		}
		l.SetBytes(body)
	}
	return l, nil
}

// Kind reports layer.KindICMPv4.
func (l *Layer) Kind() layer.Kind { return layer.KindICMPv4 }

// Frame returns the Frame view over this layer's header bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes serializes this layer and its payload.
func (l *Layer) Bytes() []byte { return layer.Bytes(l) }

// UpdateCalculatedValues recomputes the checksum field over the current
// header and payload bytes.
func (l *Layer) UpdateCalculatedValues() error {
	frm := l.Frame()
	var s checksum.Sum
	s.AddUint16(binary.BigEndian.Uint16(frm.buf[0:2]))
	s.AddUint16(0) // checksum field itself, zeroed
	s.Write(frm.buf[4:])
	switch p := l.Payload(); p.Tag {
	case layer.PayloadChild:
		s.Write(layer.Bytes(p.Child))
	case layer.PayloadBytes:
		s.Write(p.Bytes.Actual())
	}
	frm.SetCRC(^s.Sum16())
	return nil
}
