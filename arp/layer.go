package arp

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
)

// Layer is the ARP protocol layer. ARP carries no encapsulated payload
// of its own (spec §4.2): its Payload slot is always empty.
type Layer struct {
	layer.Base
}

// NewLayer parses an ARP frame out of the start of buf, sized according
// to its declared hardware/protocol address lengths.
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

// Kind reports layer.KindARP.
func (l *Layer) Kind() layer.Kind { return layer.KindARP }

// Frame returns the Frame view over this layer's header bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes serializes this layer (ARP has no payload to append).
func (l *Layer) Bytes() []byte { return layer.Bytes(l) }

// UpdateCalculatedValues is a no-op: ARP has no length or checksum
// fields to recompute.
func (l *Layer) UpdateCalculatedValues() error { return nil }
