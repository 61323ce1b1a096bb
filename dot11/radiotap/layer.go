package radiotap

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
)

// Layer is the radiotap pseudo-header layer: a length-delimited field
// set followed by the captured 802.11 frame it describes.
type Layer struct {
	layer.Base
}

// NewLayer wraps a radiotap header out of the start of buf.
func NewLayer(buf []byte) (*Layer, error) {
	h, err := NewHeader(buf)
	if err != nil {
		return nil, err
	}
	hdr, err := bslice.NewAt(buf, 0, int(h.PacketLength()))
	if err != nil {
		return nil, err
	}
	return &Layer{Base: layer.NewBase(hdr)}, nil
}

// Kind reports layer.KindDot11Radiotap.
func (l *Layer) Kind() layer.Kind { return layer.KindDot11Radiotap }

// RadiotapHeader returns the Header view over this layer's header bytes.
func (l *Layer) RadiotapHeader() Header { return Header{buf: l.Base.Header().Actual()} }

// Bytes serializes this layer and its payload (the 802.11 frame it
// precedes).
func (l *Layer) Bytes() []byte { return layer.Bytes(l) }

// UpdateCalculatedValues is a no-op: this reader never resizes the
// field set it was constructed over, so the declared Length field
// never goes stale.
func (l *Layer) UpdateCalculatedValues() error { return nil }
