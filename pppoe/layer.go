package pppoe

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
	"github.com/soypat/packetview/tlv"
)

// DiscoveryLayer is a PPPoE Discovery-stage frame (PADI/PADO/PADR/PADS/
// PADT): the 6-byte common header plus an ordered Tag list bounded by
// the header's Length field. Like lldp.Layer, it wraps the whole buffer
// rather than slicing a fixed header off the front, since its tag list
// is the layer's own variable-length content, not a child Layer.
type DiscoveryLayer struct {
	layer.Base
}

// NewDiscoveryLayer wraps buf as a PPPoE Discovery frame.
func NewDiscoveryLayer(buf []byte) (*DiscoveryLayer, error) {
	frm, err := NewFrame(buf)
	if err != nil {
		return nil, err
	}
	if err := frm.ValidateSize(); err != nil {
		return nil, err
	}
	hdr := bslice.New(buf[:sizeHeader+int(frm.PayloadLength())])
	return &DiscoveryLayer{Base: layer.NewBase(hdr)}, nil
}

// Kind reports layer.KindPPPoEDiscovery.
func (l *DiscoveryLayer) Kind() layer.Kind { return layer.KindPPPoEDiscovery }

// Frame returns the Frame view over this layer's bytes.
func (l *DiscoveryLayer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes returns this layer's serialized bytes.
func (l *DiscoveryLayer) Bytes() []byte { return append([]byte(nil), l.Header().Actual()...) }

// ForEachTag walks this frame's tag list.
func (l *DiscoveryLayer) ForEachTag(fn func(typ TagType, value []byte) error) error {
	return ForEachTag(l.Frame().Payload(), fn)
}

// UpdateCalculatedValues recomputes the Length field from the tag
// list's actual size.
func (l *DiscoveryLayer) UpdateCalculatedValues() error {
	l.Frame().SetPayloadLength(uint16(l.Header().Length() - sizeHeader))
	return nil
}

// ResizeTag replaces unit's value with newValue, reallocating this
// layer's backing buffer if the size changes, the same resize
// discipline lldp.Layer.ResizeTLV applies to LLDP TLVs.
func (l *DiscoveryLayer) ResizeTag(unit tlv.Unit, newValue []byte) (tlv.Unit, error) {
	h := l.Header()
	newUnit, err := tlv.Resize(&h, sizeHeader, unit, tagHeader{}, newValue)
	if err != nil {
		return tlv.Unit{}, err
	}
	l.SetHeader(h)
	return newUnit, l.UpdateCalculatedValues()
}

// SessionLayer is a PPPoE Session-stage frame: the 6-byte common header
// followed by a PPP frame (ppp.Layer), per RFC 2516 §7.
type SessionLayer struct {
	layer.Base
}

// NewSessionLayer parses the 6-byte PPPoE header out of the start of
// buf. The returned Layer's payload slot is empty; packet.ParseLinkLayer
// dispatches the PPP child.
func NewSessionLayer(buf []byte) (*SessionLayer, error) {
	frm, err := NewFrame(buf)
	if err != nil {
		return nil, err
	}
	hdr, err := bslice.NewAt(buf, 0, frm.HeaderLength())
	if err != nil {
		return nil, err
	}
	return &SessionLayer{Base: layer.NewBase(hdr)}, nil
}

// Kind reports layer.KindPPPoESession.
func (l *SessionLayer) Kind() layer.Kind { return layer.KindPPPoESession }

// Frame returns the Frame view over this layer's header bytes.
func (l *SessionLayer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes serializes this layer and its payload.
func (l *SessionLayer) Bytes() []byte { return layer.Bytes(l) }

// UpdateCalculatedValues recomputes the Length field from the PPP
// child's serialized size, if one is attached.
func (l *SessionLayer) UpdateCalculatedValues() error {
	if p := l.Payload(); p.Tag == layer.PayloadChild {
		l.Frame().SetPayloadLength(uint16(len(layer.Bytes(p.Child))))
	} else if p.Tag == layer.PayloadBytes {
		l.Frame().SetPayloadLength(uint16(p.Bytes.Length()))
	}
	return nil
}
