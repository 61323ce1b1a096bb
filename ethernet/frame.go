package ethernet

import (
	"encoding/binary"
	"errors"
)

var errShort = errors.New("ethernet: buffer shorter than minimum header")

// NewFrame returns a Frame over buf. An error is returned if buf is
// shorter than the 14-byte header.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < sizeHeaderNoVLAN {
		return Frame{}, errShort
	}
	return Frame{buf: buf}, nil
}

// Frame provides field accessors over the raw bytes of an Ethernet II
// frame, starting at the destination MAC (no preamble/FCS). 802.1Q VLAN
// tags are not part of this header: an EtherType of TypeVLAN or
// TypeServiceVLAN means the payload is a dot1q.Frame rather than
// whatever TypeIPv4/TypeARP/etc. would otherwise mean, the same way any
// other EtherType dispatches to its own layer.
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice the Frame was created over.
func (efrm Frame) RawData() []byte { return efrm.buf }

// HeaderLength returns the fixed 14-byte Ethernet II header length.
func (efrm Frame) HeaderLength() int { return sizeHeaderNoVLAN }

// Payload returns the data following the Ethernet header, accounting for
// IEEE 802.3 length-as-size framing.
func (efrm Frame) Payload() []byte {
	hl := efrm.HeaderLength()
	et := efrm.EtherTypeOrSize()
	if et.IsSize() {
		return efrm.buf[hl : hl+int(et)]
	}
	return efrm.buf[hl:]
}

// DestinationHardwareAddr returns the destination MAC address.
func (efrm Frame) DestinationHardwareAddr() *[6]byte { return (*[6]byte)(efrm.buf[0:6]) }

// SourceHardwareAddr returns the source MAC address.
func (efrm Frame) SourceHardwareAddr() *[6]byte { return (*[6]byte)(efrm.buf[6:12]) }

// IsBroadcast reports whether the destination is ff:ff:ff:ff:ff:ff.
func (efrm Frame) IsBroadcast() bool {
	d := efrm.buf[0:6]
	return d[0] == 0xff && d[1] == 0xff && d[2] == 0xff && d[3] == 0xff && d[4] == 0xff && d[5] == 0xff
}

// EtherTypeOrSize returns the EtherType/Size field. Check [Type.IsSize]
// before interpreting it as a length rather than a protocol.
func (efrm Frame) EtherTypeOrSize() Type { return Type(binary.BigEndian.Uint16(efrm.buf[12:14])) }

// SetEtherType sets the EtherType field.
func (efrm Frame) SetEtherType(v Type) { binary.BigEndian.PutUint16(efrm.buf[12:14], uint16(v)) }

// IsVLAN reports whether the EtherType/Size field is a VLAN TPID (0x8100
// or 0x88a8), meaning the payload is a dot1q.Frame.
func (efrm Frame) IsVLAN() bool {
	et := efrm.EtherTypeOrSize()
	return et == TypeVLAN || et == TypeServiceVLAN
}

// ClearHeader zeros out the header bytes.
func (efrm Frame) ClearHeader() {
	for i := range efrm.buf[:sizeHeaderNoVLAN] {
		efrm.buf[i] = 0
	}
}

// ValidateSize checks the frame's declared sizes against the actual
// buffer length.
func (efrm Frame) ValidateSize() error {
	if len(efrm.buf) < sizeHeaderNoVLAN {
		return errShort
	}
	sz := efrm.EtherTypeOrSize()
	if sz.IsSize() && len(efrm.buf) < efrm.HeaderLength()+int(sz) {
		return errShort
	}
	return nil
}
