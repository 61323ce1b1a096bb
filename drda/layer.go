package drda

import (
	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
)

// Layer wraps a single DDM header as a terminal layer: DRDA command
// parsing beyond byte-accurate framing is out of scope, so the payload
// slot always holds raw bytes, never a further child.
type Layer struct {
	layer.Base
}

// NewLayer parses a DDM header out of the start of buf, after the
// caller has already recognized buf as DRDA (see LooksLikeDRDA).
func NewLayer(buf []byte) (*Layer, error) {
	if _, err := NewDDMHeader(buf); err != nil {
		return nil, err
	}
	hdr, err := bslice.NewAt(buf, 0, sizeDDMHeader)
	if err != nil {
		return nil, err
	}
	l := &Layer{Base: layer.NewBase(hdr)}
	l.SetBytes(hdr.Encapsulated())
	return l, nil
}

// Kind reports layer.KindDRDA.
func (l *Layer) Kind() layer.Kind { return layer.KindDRDA }

// DDMHeader returns the DDMHeader view over this layer's header bytes.
func (l *Layer) DDMHeader() DDMHeader { h, _ := NewDDMHeader(l.Base.Header().Actual()); return h }

// Bytes serializes this layer and its trailing bytes.
func (l *Layer) Bytes() []byte { return layer.Bytes(l) }

// UpdateCalculatedValues is a no-op: this minimal DDM header reader
// does not recompute the Length field, since it never resizes the
// payload it was constructed over.
func (l *Layer) UpdateCalculatedValues() error { return nil }
