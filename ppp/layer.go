package ppp

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
)

// Layer is the PPP protocol layer: an optional Address/Control prefix,
// a 2-byte Protocol field, and whatever child layer the Protocol field
// dispatches to.
type Layer struct {
	layer.Base
}

// NewLayer parses a PPP header out of the start of buf. The returned
// Layer's payload slot is empty; packet.ParseLinkLayer dispatches it.
func NewLayer(buf []byte) (*Layer, error) {
	frm, err := NewFrame(buf)
	if err != nil {
		return nil, err
	}
	hdr, err := bslice.NewAt(buf, 0, frm.HeaderLength())
	if err != nil {
		return nil, err
	}
	return &Layer{Base: layer.NewBase(hdr)}, nil
}

// Kind reports layer.KindPPP.
func (l *Layer) Kind() layer.Kind { return layer.KindPPP }

// Frame returns the Frame view over this layer's header bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual(), protoOff: l.protoOff()} }

func (l *Layer) protoOff() int {
	if l.Header().Length() == 4 {
		return 2
	}
	return 0
}

// Bytes serializes this layer and its payload.
func (l *Layer) Bytes() []byte { return layer.Bytes(l) }

// SetPayloadKind sets the Protocol field to match the kind of child
// being attached.
func (l *Layer) SetPayloadKind(k layer.Kind) {
	var p Protocol
	switch k {
	case layer.KindIPv4:
		p = ProtocolIPv4
	case layer.KindIPv6:
		p = ProtocolIPv6
	default:
		p = 0
	}
	l.Frame().SetProtocol(p)
}

// SetChild attaches child as this layer's payload and updates the
// Protocol field to match.
func (l *Layer) SetChild(child layer.Layer) {
	l.SetPayloadKind(child.Kind())
	l.Base.SetChild(child)
}

// UpdateCalculatedValues is a no-op: PPP carries no length or checksum
// fields of its own.
func (l *Layer) UpdateCalculatedValues() error { return nil }
