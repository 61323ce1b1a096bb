// Package icmpv6 implements ICMP for IPv6 (RFC 4443) dissection and
// construction: the common 4-byte header plus an Echo/Echo-Reply view,
// mirroring RFC 792's ICMPv4 layout closely enough to share this
// module's icmpv4 package shape. ICMPv6's checksum additionally covers
// the IPv6 pseudo-header (RFC 4443 §2.3), unlike ICMPv4's.
//
// Grounded on the teacher's ipv4/icmpv4/icmpv4.go structure, generalized
// to ICMPv6's pseudo-header-inclusive checksum per RFC 4443; no
// teacher/pack file implements ICMPv6 directly.
package icmpv6

import (
	"encoding/binary"
	"errors"

	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/checksum"
	"github.com/soypat/packetview/layer"
)

var errShortFrame = errors.New("icmpv6: buffer shorter than 4-byte header")

// Type is the ICMPv6 message type field.
type Type uint8

const (
	TypeDestinationUnreachable Type = 1
	TypePacketTooBig           Type = 2
	TypeTimeExceeded           Type = 3
	TypeParameterProblem       Type = 4

	TypeEchoRequest Type = 128
	TypeEchoReply   Type = 129

	TypeRouterSolicitation    Type = 133
	TypeRouterAdvertisement   Type = 134
	TypeNeighborSolicitation  Type = 135
	TypeNeighborAdvertisement Type = 136
	TypeRedirect              Type = 137
)

// CodeDestinationUnreachable enumerates the Code field values of a
// TypeDestinationUnreachable message.
type CodeDestinationUnreachable uint8

const (
	CodeNoRouteToDestination CodeDestinationUnreachable = iota
	CodeAdministrativelyProhibited
	CodeBeyondScopeOfSourceAddr
	CodeAddressUnreachable
	CodePortUnreachable
)

// NewFrame returns a Frame over buf, which must be at least 4 bytes.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < 4 {
		return Frame{}, errShortFrame
	}
	return Frame{buf: buf}, nil
}

// Frame provides field accessors over the raw bytes of an ICMPv6
// message's common 4-byte header.
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

// Payload returns the data following the common 4-byte header.
func (frm Frame) Payload() []byte { return frm.buf[4:] }

// Echo returns an Echo Request/Reply view over this Frame.
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

// FrameEcho narrows Frame to the Echo Request/Reply layout.
type FrameEcho struct{ Frame }

// Identifier returns the echo identifier field.
func (frm FrameEcho) Identifier() uint16 { return binary.BigEndian.Uint16(frm.buf[4:6]) }

// SetIdentifier sets the echo identifier field.
func (frm FrameEcho) SetIdentifier(id uint16) { binary.BigEndian.PutUint16(frm.buf[4:6], id) }

// SequenceNumber returns the echo sequence number field.
func (frm FrameEcho) SequenceNumber() uint16 { return binary.BigEndian.Uint16(frm.buf[6:8]) }

// SetSequenceNumber sets the echo sequence number field.
func (frm FrameEcho) SetSequenceNumber(seq uint16) { binary.BigEndian.PutUint16(frm.buf[6:8], seq) }

// Data returns the echo payload following its 8-byte header.
func (frm FrameEcho) Data() []byte { return frm.buf[8:] }

// ValidateSize checks buf is at least the 4-byte common header.
func (frm Frame) ValidateSize() error {
	if len(frm.buf) < 4 {
		return errShortFrame
	}
	return nil
}

// CalculateCRC returns the folded ones' sum, not complemented, of pseudo
// (the IPv6 pseudo-header, built with checksum.IPv6Pseudo) followed by
// the whole ICMPv6 message with its checksum field treated as zero, per
// RFC 4443 §2.3 / RFC 8200 §8.1. The checksum field value is the
// complement of this sum, which is what UpdateCRC writes.
func (frm Frame) CalculateCRC(pseudo []byte) uint16 {
	var s checksum.Sum
	s.Write(pseudo)
	s.Write(frm.buf[0:2])
	s.AddUint16(0) // checksum field itself, zeroed
	s.Write(frm.buf[4:])
	return s.Sum16()
}

// UpdateCRC recomputes and writes the checksum field given the IPv6
// pseudo-header bytes.
func (frm Frame) UpdateCRC(pseudo []byte) {
	frm.SetCRC(0)
	frm.SetCRC(^frm.CalculateCRC(pseudo))
}

// ValidateCRC reports whether the stored checksum is consistent with
// pseudo and the message contents.
func (frm Frame) ValidateCRC(pseudo []byte) bool {
	var s checksum.Sum
	s.Write(pseudo)
	s.Write(frm.buf)
	return checksum.Valid(s.Sum16())
}

// Layer is the ICMPv6 protocol layer. Like icmpv4.Layer, the message
// body is carried as terminal bytes; this module does not recurse into
// a quoted offending packet.
type Layer struct {
	layer.Base
	pseudo []byte
}

// NewLayer parses an ICMPv6 common header out of the start of buf.
func NewLayer(buf []byte) (*Layer, error) {
	frm, err := NewFrame(buf)
	if err != nil {
		return nil, err
	}
	hdr, err := bslice.NewAt(buf, 0, 4)
	if err != nil {
		return nil, err
	}
	l := &Layer{Base: layer.NewBase(hdr)}
	if rest := frm.Payload(); len(rest) > 0 {
		body, err := bslice.NewAt(buf, 4, len(rest))
		if err != nil {
			return nil, err
		}
		l.SetBytes(body)
	}
	return l, nil
}

// Kind reports layer.KindICMPv6.
func (l *Layer) Kind() layer.Kind { return layer.KindICMPv6 }

// Frame returns the Frame view over this layer's header bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes serializes this layer and its payload.
func (l *Layer) Bytes() []byte { return layer.Bytes(l) }

// UpdateCalculatedValues recomputes the checksum field given the IPv6
// pseudo-header bytes over the current header and payload. Unlike most
// layers, ICMPv6's checksum depends on its enclosing IPv6 header, so
// callers (the packet tree walk) must supply pseudo via SetPseudoHeader
// before calling this.
func (l *Layer) UpdateCalculatedValues() error {
	frm := l.Frame()
	var s checksum.Sum
	if l.pseudo != nil {
		s.Write(l.pseudo)
	}
	s.Write(frm.buf[0:2])
	s.AddUint16(0)
	switch p := l.Payload(); p.Tag {
	case layer.PayloadChild:
		s.Write(layer.Bytes(p.Child))
	case layer.PayloadBytes:
		s.Write(p.Bytes.Actual())
	}
	frm.SetCRC(^s.Sum16())
	return nil
}

// SetPseudoHeader supplies the enclosing IPv6 pseudo-header bytes (see
// checksum.IPv6Pseudo) that UpdateCalculatedValues folds into the
// checksum. The packet tree builder calls this when attaching an
// icmpv6.Layer as an ipv6.Layer's child.
func (l *Layer) SetPseudoHeader(pseudo []byte) { l.pseudo = pseudo }
