package tcp

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
)

// Layer is the TCP protocol layer. TCP has no next-protocol field —
// which upper-layer protocol (if any) a segment carries is a matter of
// well-known ports, decided by the packet tree builder, not by TCP
// itself — so NewLayer always sets the payload slot to terminal bytes;
// callers that recognize the payload (e.g. a DRDA stream on port 446/
// 448/3700) call SetChild themselves to replace it.
//
// Like icmpv6.Layer, TCP's checksum covers the enclosing IPv4/IPv6
// pseudo-header, so Layer carries a SetPseudoHeader hook the packet
// tree walk calls before UpdateCalculatedValues.
type Layer struct {
	layer.Base
	pseudo []byte
}

// NewLayer parses a TCP header (fixed header plus options) out of the
// start of buf.
func NewLayer(buf []byte) (*Layer, error) {
	frm, err := NewFrame(buf)
	if err != nil {
		return nil, err
	}
	if err := frm.ValidateSize(); err != nil {
		return nil, err
	}
	hl := frm.HeaderLength()
	hdr, err := bslice.NewAt(buf, 0, hl)
	if err != nil {
		return nil, err
	}
	l := &Layer{Base: layer.NewBase(hdr)}
	if rest := buf[hl:]; len(rest) > 0 {
		body, err := bslice.NewAt(buf, hl, len(rest))
		if err != nil {
			return nil, err
		}
		l.SetBytes(body)
	}
	return l, nil
}

// Kind reports layer.KindTCP.
func (l *Layer) Kind() layer.Kind { return layer.KindTCP }

// Frame returns the Frame view over this layer's header bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// Bytes serializes this layer and its payload.
func (l *Layer) Bytes() []byte { return layer.Bytes(l) }

// SetPseudoHeader supplies the enclosing IPv4/IPv6 pseudo-header bytes
// (see checksum.IPv4Pseudo/IPv6Pseudo) that UpdateCalculatedValues
// folds into the checksum. The packet tree builder calls this when
// attaching a tcp.Layer as an ipv4.Layer or ipv6.Layer's child.
func (l *Layer) SetPseudoHeader(pseudo []byte) { l.pseudo = pseudo }

// UpdateCalculatedValues recomputes the checksum field over the
// current header and payload, using the pseudo-header bytes supplied
// via SetPseudoHeader. It does not touch the data offset field: a
// changed options region is the caller's responsibility to re-encode
// and re-declare via SetOffset before calling this.
func (l *Layer) UpdateCalculatedValues() error {
	frm := l.Frame()
	frm.SetCRC(0)
	full := append([]byte(nil), frm.buf...)
	full = append(full, payloadBytes(l)...)
	var crcFrm Frame
	crcFrm.buf = full
	crc := ^crcFrm.CalculateCRC(l.pseudo)
	frm.SetCRC(crc)
	return nil
}

func payloadBytes(l *Layer) []byte {
	switch p := l.Payload(); p.Tag {
	case layer.PayloadChild:
		return layer.Bytes(p.Child)
	case layer.PayloadBytes:
		return p.Bytes.Actual()
	default:
		return nil
	}
}
