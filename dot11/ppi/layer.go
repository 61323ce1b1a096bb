package ppi

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
)

// Layer is the PPI pseudo-header layer: a fixed prefix plus a
// self-describing field list, followed by the captured 802.11 frame
// it describes.
type Layer struct {
	layer.Base
}

// NewLayer wraps a PPI header out of the start of buf.
func NewLayer(buf []byte) (*Layer, error) {
	h, err := NewHeader(buf)
	if err != nil {
		return nil, err
	}
	hdr, err := bslice.NewAt(buf, 0, int(h.Length()))
	if err != nil {
		return nil, err
	}
	return &Layer{Base: layer.NewBase(hdr)}, nil
}

// Kind reports layer.KindDot11PPI.
func (l *Layer) Kind() layer.Kind { return layer.KindDot11PPI }

// PPIHeader returns the Header view over this layer's header bytes.
func (l *Layer) PPIHeader() Header { return Header{buf: l.Base.Header().Actual()} }

// Bytes serializes this layer and its payload (the 802.11 frame it
// precedes).
func (l *Layer) Bytes() []byte { return layer.Bytes(l) }

// UpdateCalculatedValues is a no-op: this reader never resizes the
// field list it was constructed over.
func (l *Layer) UpdateCalculatedValues() error { return nil }
