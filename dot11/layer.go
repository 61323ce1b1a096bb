package dot11

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
	"github.com/soypat/packetview/tlv"
)

// Layer is the IEEE 802.11 MAC frame layer. Like lldp.Layer and
// pppoe.DiscoveryLayer, it wraps the whole buffer rather than slicing a
// fixed header off the front: a management frame's Information Element
// list is this layer's own variable-length content (addressed via
// ForEachIE/ResizeIE), while non-management frame bodies are exposed
// as Frame().Body() for an external packet tree builder to dispatch.
type Layer struct {
	layer.Base
}

// NewLayer wraps buf as an 802.11 MAC frame.
func NewLayer(buf []byte) (*Layer, error) {
	if _, err := NewFrame(buf); err != nil {
		return nil, err
	}
	hdr := bslice.New(buf)
	return &Layer{Base: layer.NewBase(hdr)}, nil
}

// Kind reports layer.KindDot11.
func (l *Layer) Kind() layer.Kind { return layer.KindDot11 }

// Frame returns the Frame view over this layer's bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes returns this layer's serialized bytes.
func (l *Layer) Bytes() []byte { return append([]byte(nil), l.Header().Actual()...) }

// UpdateCalculatedValues is a no-op: 802.11 carries no length or
// checksum field of its own in the MAC header (FCS, when captured, is
// trailing and out of scope).
func (l *Layer) UpdateCalculatedValues() error { return nil }

// IsManagement reports whether this frame is a management frame, i.e.
// whether ForEachIE/ResizeIE apply to its body.
func (l *Layer) IsManagement() bool { return l.Frame().Type() == TypeManagement }

// ForEachIE walks this frame's Information Element list. Only valid
// for management frames (see IsManagement).
func (l *Layer) ForEachIE(fn func(id InformationElementID, value []byte) error) error {
	return ForEachIE(l.Frame().Body(), fn)
}

// ResizeIE replaces unit's value with newValue, reallocating this
// layer's backing buffer if the size changes, the same resize
// discipline lldp.Layer.ResizeTLV applies to LLDP TLVs (spec's
// Testable Property 8: "re-parsing its IE list after an IE resize
// yields byte-identical trailing IEs").
func (l *Layer) ResizeIE(unit tlv.Unit, newValue []byte) (tlv.Unit, error) {
	h := l.Header()
	headerLen := l.Frame().HeaderLength()
	newUnit, err := tlv.Resize(&h, headerLen, unit, ieHeader{}, newValue)
	if err != nil {
		return tlv.Unit{}, err
	}
	l.SetHeader(h)
	return newUnit, nil
}
