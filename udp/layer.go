package udp

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/checksum"
	"github.com/soypat/packetview/layer"
)

// Layer is the UDP protocol layer. Like TCP, UDP carries application
// data identified by port number rather than a next-protocol header
// field, so NewLayer always sets the payload slot to terminal bytes;
// the packet tree builder calls SetChild when it recognizes a further
// protocol (e.g. LLDP-over-UDP is not a thing, but DHCP/DNS/NTP style
// port-keyed dispatch would work the same way if added later).
//
// Its checksum covers the enclosing IPv4/IPv6 pseudo-header, so Layer
// carries the same SetPseudoHeader contract as tcp.Layer and
// icmpv6.Layer.
type Layer struct {
	layer.Base
	pseudo []byte
}

// NewLayer parses a UDP header out of the start of buf.
func NewLayer(buf []byte) (*Layer, error) {
	frm, err := NewFrame(buf)
	if err != nil {
		return nil, err
	}
	if err := frm.ValidateSize(); err != nil {
		return nil, err
	}
	hdr, err := bslice.NewAt(buf, 0, sizeHeader)
	if err != nil {
		return nil, err
	}
	l := &Layer{Base: layer.NewBase(hdr)}
	if rest := frm.Payload(); len(rest) > 0 {
		body, err := bslice.NewAt(buf, sizeHeader, len(rest))
		if err != nil {
			return nil, err
		}
		l.SetBytes(body)
	}
	return l, nil
}

// Kind reports layer.KindUDP.
func (l *Layer) Kind() layer.Kind { return layer.KindUDP }

// Frame returns the Frame view over this layer's header bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes serializes this layer and its payload.
func (l *Layer) Bytes() []byte { return layer.Bytes(l) }

// SetPseudoHeader supplies the enclosing IPv4/IPv6 pseudo-header bytes
// that UpdateCalculatedValues folds into the checksum.
func (l *Layer) SetPseudoHeader(pseudo []byte) { l.pseudo = pseudo }

// UpdateCalculatedValues recomputes Length and the checksum field from
// the current header and payload size, using the pseudo-header bytes
// supplied via SetPseudoHeader.
func (l *Layer) UpdateCalculatedValues() error {
	frm := l.Frame()
	var payload []byte
	switch p := l.Payload(); p.Tag {
	case layer.PayloadChild:
		payload = layer.Bytes(p.Child)
	case layer.PayloadBytes:
		payload = p.Bytes.Actual()
	}
	frm.SetLength(uint16(sizeHeader + len(payload)))

	full := append([]byte(nil), frm.buf[:sizeHeader]...)
	full = append(full, payload...)
	var crcFrm Frame
	crcFrm.buf = full
	frm.SetCRC(0)
	frm.SetCRC(checksum.NeverZero(^crcFrm.CalculateCRC(l.pseudo)))
	return nil
}
