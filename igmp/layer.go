package igmp

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
)

// Layer is the IGMP protocol layer. IGMP has no payload beyond its own
// header/group-record list — it is always terminal, there is nothing
// for it to encapsulate.
type Layer struct {
	layer.Base
}

// NewLayer wraps the whole of buf as an IGMP message. Unlike most
// layers, IGMP's total size depends on its message Type (a v3 report's
// length depends on its group record list), so NewLayer does not slice
// a fixed header off the front — callers use Frame/V3Query/V3Report
// views over the full buffer via Layer.Frame/V3Query/V3Report.
func NewLayer(buf []byte) (*Layer, error) {
	frm, err := NewFrame(buf)
	if err != nil {
		return nil, err
	}
	if err := frm.ValidateSize(); err != nil {
		return nil, err
	}
	hdr := bslice.New(buf)
	return &Layer{Base: layer.NewBase(hdr)}, nil
}

// Kind reports layer.KindIGMP.
func (l *Layer) Kind() layer.Kind { return layer.KindIGMP }

// Frame returns the common-header Frame view over this layer's bytes.
func (l *Layer) Frame() Frame { return Frame{buf: l.Header().Actual()} }

// V3Query returns an IGMPv3 Membership Query view over this layer's
// bytes. Valid only when Frame().Type() == TypeMembershipQuery and the
// buffer is long enough for a v3 query (check with V3Query.ValidateSize).
func (l *Layer) V3Query() V3Query { return V3Query{Frame: l.Frame()} }

// V3Report returns an IGMPv3 Membership Report view over this layer's
// bytes. Valid only when Frame().Type() == TypeV3MembershipReport.
func (l *Layer) V3Report() V3Report { return V3Report{buf: l.Header().Actual()} }

// Bytes returns this layer's serialized bytes.
func (l *Layer) Bytes() []byte { return append([]byte(nil), l.Header().Actual()...) }

// UpdateCalculatedValues recomputes the checksum field over the
// layer's full bytes. It does not touch NumGroupRecords/NumSources:
// those are structural fields a caller that edits the record list must
// set itself.
func (l *Layer) UpdateCalculatedValues() error {
	frm := l.Frame()
	frm.UpdateCRC()
	return nil
}
