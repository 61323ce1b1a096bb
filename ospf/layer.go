package ospf

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
)

// Layer is the OSPFv2 protocol layer. OSPF rides directly over IPv4
// (protocol 89) and carries no further encapsulated payload of its
// own: like igmp.Layer, its total size depends on its packet Type, so
// it wraps the whole buffer rather than slicing a fixed header off the
// front.
type Layer struct {
	layer.Base
}

// NewLayer wraps buf, up to the declared PacketLength, as an OSPF packet.
func NewLayer(buf []byte) (*Layer, error) {
	frm, err := NewFrame(buf)
	if err != nil {
		return nil, err
	}
	if err := frm.ValidateSize(); err != nil {
		return nil, err
	}
	hdr := bslice.New(buf[:frm.PacketLength()])
	return &Layer{Base: layer.NewBase(hdr)}, nil
}

// Kind reports layer.KindOSPF.
func (l *Layer) Kind() layer.Kind { return layer.KindOSPF }

// Frame returns the common-header Frame view over this layer's bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes returns this layer's serialized bytes.
func (l *Layer) Bytes() []byte { return append([]byte(nil), l.Header().Actual()...) }

// UpdateCalculatedValues recomputes the checksum field. It does not
// touch PacketLength: a caller that edits the body's record lists must
// set that itself via Frame.SetPacketLength before calling this.
func (l *Layer) UpdateCalculatedValues() error {
	l.Frame().UpdateCRC()
	return nil
}
