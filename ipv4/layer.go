package ipv4

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
)

// Layer is the IPv4 protocol layer: a header Slice (20 bytes plus any
// options, per IHL) and whatever child layer or raw bytes Protocol
// dispatches to.
type Layer struct {
	layer.Base
}

// NewLayer parses an IPv4 header (including options) out of the start
// of buf.
func NewLayer(buf []byte) (*Layer, error) {
	frm, err := NewFrame(buf)
	if err != nil {
		return nil, err
	}
	if err := frm.ValidateSize(); err != nil {
		return nil, err
	}
	hdr, err := bslice.NewAt(buf, 0, frm.HeaderLength())
	if err != nil {
		return nil, err
	}
	return &Layer{Base: layer.NewBase(hdr)}, nil
}

// Kind reports layer.KindIPv4.
func (l *Layer) Kind() layer.Kind { return layer.KindIPv4 }

// Frame returns the Frame view over this layer's header bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes serializes this layer and its payload.
func (l *Layer) Bytes() []byte { return layer.Bytes(l) }

// SetPayloadKind sets the protocol field to match the kind of child
// being attached.
func (l *Layer) SetPayloadKind(k layer.Kind) {
	var p Proto
	switch k {
	case layer.KindTCP:
		p = ProtoTCP
	case layer.KindUDP:
		p = ProtoUDP
	case layer.KindICMPv4:
		p = ProtoICMP
	case layer.KindIGMP:
		p = ProtoIGMP
	case layer.KindOSPF:
		p = ProtoOSPFIGP
	case layer.KindIPv6:
		p = ProtoIPv6
	default:
		p = 0
	}
	l.Frame().SetProtocol(p)
}

// SetChild attaches child as this layer's payload and updates the
// protocol field to match.
func (l *Layer) SetChild(child layer.Layer) {
	l.SetPayloadKind(child.Kind())
	l.Base.SetChild(child)
}

// UpdateCalculatedValues recomputes TotalLength from the current header
// and payload sizes and refreshes the header checksum. Callers update
// children first (innermost-out), so TotalLength reflects their final
// size.
func (l *Layer) UpdateCalculatedValues() error {
	frm := l.Frame()
	payloadLen := 0
	switch p := l.Payload(); p.Tag {
	case layer.PayloadChild:
		payloadLen = len(layer.Bytes(p.Child))
	case layer.PayloadBytes:
		payloadLen = p.Bytes.Length()
	}
	frm.SetTotalLength(uint16(frm.HeaderLength() + payloadLen))
	frm.UpdateHeaderCRC()
	return nil
}
