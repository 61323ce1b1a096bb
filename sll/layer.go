package sll

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/ethernet"
	"github.com/soypat/packetview/layer"
)

// Layer is the Linux cooked capture (SLL) pseudo link-layer: a fixed
// 16-byte header plus whatever child layer or raw bytes the
// ProtocolType field dispatches to.
type Layer struct {
	layer.Base
}

// NewLayer parses an SLL header out of the start of buf. The returned
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

// Kind reports layer.KindLinuxSLL.
func (l *Layer) Kind() layer.Kind { return layer.KindLinuxSLL }

// Frame returns the Frame view over this layer's header bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes serializes this layer and its payload.
func (l *Layer) Bytes() []byte { return layer.Bytes(l) }

// SetPayloadKind sets the ProtocolType field to match the kind of
// child being attached, mirroring ethernet.Layer's auto-update rule.
func (l *Layer) SetPayloadKind(k layer.Kind) {
	var t ethernet.Type
	switch k {
	case layer.KindIPv4:
		t = ethernet.TypeIPv4
	case layer.KindIPv6:
		t = ethernet.TypeIPv6
	case layer.KindARP:
		t = ethernet.TypeARP
	default:
		t = 0
	}
	l.Frame().SetProtocolType(t)
}

// SetChild attaches child as this layer's payload and updates the
// ProtocolType field to match.
func (l *Layer) SetChild(child layer.Layer) {
	l.SetPayloadKind(child.Kind())
	l.Base.SetChild(child)
}

// UpdateCalculatedValues is a no-op: SLL carries no length or checksum
// fields of its own.
func (l *Layer) UpdateCalculatedValues() error { return nil }
