package dot1q

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/ethernet"
	"github.com/soypat/packetview/layer"
)

// Layer is the 802.1Q VLAN tag layer: a 4-byte header Slice plus
// whatever child layer the inner EtherType dispatches to (including,
// for QinQ double-tagged frames, another dot1q.Layer).
type Layer struct {
	layer.Base
}

// NewLayer parses a 4-byte 802.1Q tag out of the start of buf.
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

// Kind reports layer.KindDot1Q.
func (l *Layer) Kind() layer.Kind { return layer.KindDot1Q }

// Frame returns the Frame view over this layer's header bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes serializes this layer and its payload.
func (l *Layer) Bytes() []byte { return layer.Bytes(l) }

// SetPayloadKind sets the inner EtherType to match the kind of child
// being attached, mirroring ethernet.Layer's auto-update rule: "setting
// the payload packet auto-updates the type."
func (l *Layer) SetPayloadKind(k layer.Kind) {
	var t ethernet.Type
	switch k {
	case layer.KindIPv4:
		t = ethernet.TypeIPv4
	case layer.KindIPv6:
		t = ethernet.TypeIPv6
	case layer.KindARP:
		t = ethernet.TypeARP
	case layer.KindLLDP:
		t = ethernet.TypeLLDP
	case layer.KindPPPoESession:
		t = ethernet.TypePPPoESession
	case layer.KindDot1Q:
		t = ethernet.TypeVLAN
	case layer.KindWakeOnLAN:
		t = ethernet.TypeWakeOnLAN
	default:
		t = 0
	}
	l.Frame().SetInnerType(t)
}

// SetChild attaches child as this layer's payload and updates the inner
// EtherType to match.
func (l *Layer) SetChild(child layer.Layer) {
	l.SetPayloadKind(child.Kind())
	l.Base.SetChild(child)
}

// UpdateCalculatedValues is a no-op: a VLAN tag carries no length or
// checksum fields of its own.
func (l *Layer) UpdateCalculatedValues() error { return nil }
