package lldp

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
	"github.com/soypat/packetview/tlv"
)

// Layer is the LLDP protocol layer: an ordered TLV list is its entire
// content, so Layer wraps the whole LLDPDU buffer rather than slicing
// a fixed header off the front, the same way igmp.Layer and
// ospf.Layer do for protocols whose total size is not known up front.
type Layer struct {
	layer.Base
}

// NewLayer wraps the whole of buf as an LLDPDU.
func NewLayer(buf []byte) (*Layer, error) {
	hdr := bslice.New(buf)
	return &Layer{Base: layer.NewBase(hdr)}, nil
}

// Kind reports layer.KindLLDP.
func (l *Layer) Kind() layer.Kind { return layer.KindLLDP }

// Frame returns the Frame view over this layer's bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes returns this layer's serialized bytes.
func (l *Layer) Bytes() []byte { return append([]byte(nil), l.Header().Actual()...) }

// UpdateCalculatedValues is a no-op: LLDP TLVs carry no length or
// checksum field that depends on the rest of the tree (each TLV's own
// length field is maintained by ResizeTLV).
func (l *Layer) UpdateCalculatedValues() error { return nil }

// ResizeTLV replaces unit's value with newValue, reallocating this
// layer's backing buffer if the size changes (per spec: "allocate a
// new backing buffer of the correct total length, copy the preserved
// header bytes and the trailing fixed fields into place, rebind the
// TLV's slice, and write the new value"). unit must have been produced
// by this layer's own Frame().ForEachTLV. Trailing TLVs are preserved
// byte-for-byte; any previously obtained Unit values for this layer
// must be discarded after a successful call.
func (l *Layer) ResizeTLV(unit tlv.Unit, newValue []byte) (tlv.Unit, error) {
	h := l.Header()
	newUnit, err := tlv.Resize(&h, 0, unit, tlvHeader{}, newValue)
	if err != nil {
		return tlv.Unit{}, err
	}
	l.SetHeader(h)
	return newUnit, nil
}
