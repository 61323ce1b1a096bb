package ethernet

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
)

// Layer is the Ethernet II protocol layer: a 14-byte header Slice plus
// whatever child layer or raw bytes the EtherType field dispatches to (an
// 802.1Q tag is its own dot1q.Layer child, not part of this header).
type Layer struct {
	layer.Base
}

// NewLayer parses an Ethernet header out of the start of buf. The
// returned Layer's payload slot is empty; callers building a tree use
// packet.ParseLinkLayer instead, which also dispatches the payload.
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

// Kind reports layer.KindEthernet.
func (l *Layer) Kind() layer.Kind { return layer.KindEthernet }

// Frame returns the Frame view over this layer's header bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes serializes this layer and its payload.
func (l *Layer) Bytes() []byte { return layer.Bytes(l) }

// SetPayloadKind sets the EtherType to match the kind of child being
// attached, per spec: "setting the payload packet auto-updates the type."
// Kinds not in the table below set EtherType to 0, matching "otherwise 0."
func (l *Layer) SetPayloadKind(k layer.Kind) {
	var t Type
	switch k {
	case layer.KindIPv4:
		t = TypeIPv4
	case layer.KindIPv6:
		t = TypeIPv6
	case layer.KindARP:
		t = TypeARP
	case layer.KindLLDP:
		t = TypeLLDP
	case layer.KindPPPoESession:
		t = TypePPPoESession
	case layer.KindDot1Q:
		t = TypeVLAN
	case layer.KindWakeOnLAN:
		t = TypeWakeOnLAN
	default:
		t = 0
	}
	l.Frame().SetEtherType(t)
}

// SetChild attaches child as this layer's payload and updates EtherType to
// match, per spec §4.5.
func (l *Layer) SetChild(child layer.Layer) {
	l.SetPayloadKind(child.Kind())
	l.Base.SetChild(child)
}

// UpdateCalculatedValues is a no-op for Ethernet: it carries no length or
// checksum fields of its own (EtherType is set explicitly by SetChild, not
// recomputed here).
func (l *Layer) UpdateCalculatedValues() error { return nil }
