package wol

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
)

// Layer is the Wake-on-LAN magic packet layer: the fixed 102-byte sync
// stream plus MAC repetitions, with an optional trailing SecureOn
// password as its payload (always raw bytes; WoL is terminal, nothing
// encapsulates further).
type Layer struct {
	layer.Base
}

// NewLayer parses a magic packet out of the start of buf.
func NewLayer(buf []byte) (*Layer, error) {
	frm, err := NewFrame(buf)
	if err != nil {
		return nil, err
	}
	hdr, err := bslice.NewAt(buf, 0, frm.HeaderLength())
	if err != nil {
		return nil, err
	}
	l := &Layer{Base: layer.NewBase(hdr)}
	if len(buf) > sizeMinPacket {
		l.SetBytes(hdr.Encapsulated())
	}
	return l, nil
}

// Kind reports layer.KindWakeOnLAN.
func (l *Layer) Kind() layer.Kind { return layer.KindWakeOnLAN }

// Frame returns the Frame view over this layer's header bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes serializes this layer and any trailing password bytes.
func (l *Layer) Bytes() []byte { return layer.Bytes(l) }

// UpdateCalculatedValues is a no-op: a magic packet carries no length
// or checksum fields of its own.
func (l *Layer) UpdateCalculatedValues() error { return nil }
