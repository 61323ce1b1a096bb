package ipv6

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/ipv4"
	"github.com/soypat/packetview/layer"
)

// Layer is the IPv6 protocol layer: a fixed 40-byte header Slice and
// whatever child layer or raw bytes NextHeader dispatches to. IPv6
// carries no header checksum (spec/RFC 8200): UpdateCalculatedValues
// only refreshes PayloadLength.
type Layer struct {
	layer.Base
}

// NewLayer parses an IPv6 fixed header out of the start of buf.
func NewLayer(buf []byte) (*Layer, error) {
	frm, err := NewFrame(buf)
	if err != nil {
		return nil, err
	}
	if err := frm.ValidateSize(); err != nil {
		return nil, err
	}
	hdr, err := bslice.NewAt(buf, 0, sizeHeader)
	if err != nil {
		return nil, err
	}
	return &Layer{Base: layer.NewBase(hdr)}, nil
}

// Kind reports layer.KindIPv6.
func (l *Layer) Kind() layer.Kind { return layer.KindIPv6 }

// Frame returns the Frame view over this layer's header bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes serializes this layer and its payload.
func (l *Layer) Bytes() []byte { return layer.Bytes(l) }

// SetPayloadKind sets the Next Header field to match the kind of child
// being attached.
func (l *Layer) SetPayloadKind(k layer.Kind) {
	var p ipv4.Proto
	switch k {
	case layer.KindTCP:
		p = ipv4.ProtoTCP
	case layer.KindUDP:
		p = ipv4.ProtoUDP
	case layer.KindICMPv6:
		p = ipv4.ProtoIPv6ICMP
	case layer.KindOSPF:
		p = ipv4.ProtoOSPFIGP
	default:
		p = 0
	}
	l.Frame().SetNextHeader(p)
}

// SetChild attaches child as this layer's payload and updates Next
// Header to match.
func (l *Layer) SetChild(child layer.Layer) {
	l.SetPayloadKind(child.Kind())
	l.Base.SetChild(child)
}

// UpdateCalculatedValues recomputes PayloadLength from the current
// child/payload size. IPv6 has no header checksum to refresh.
func (l *Layer) UpdateCalculatedValues() error {
	frm := l.Frame()
	payloadLen := 0
	switch p := l.Payload(); p.Tag {
	case layer.PayloadChild:
		payloadLen = len(layer.Bytes(p.Child))
	case layer.PayloadBytes:
		payloadLen = p.Bytes.Length()
	}
	frm.SetPayloadLength(uint16(payloadLen))
	return nil
}
