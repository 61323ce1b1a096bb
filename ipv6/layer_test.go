package ipv6

import (
	"testing"

	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/ipv4"
	"github.com/soypat/packetview/layer"
)

type rawLayer struct {
	layer.Base
	kind layer.Kind
}

func (r *rawLayer) Kind() layer.Kind             { return r.kind }
func (r *rawLayer) Bytes() []byte                { return layer.Bytes(r) }
func (r *rawLayer) UpdateCalculatedValues() error { return nil }

func TestLayerSetChildUpdatesNextHeader(t *testing.T) {
	buf := make([]byte, sizeHeader)
	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	l.SetChild(&rawLayer{kind: layer.KindUDP})
	if l.Frame().NextHeader() != ipv4.ProtoUDP {
		t.Fatalf("expected next header to auto-update to UDP, got %v", l.Frame().NextHeader())
	}
}

func TestLayerUpdateCalculatedValues(t *testing.T) {
	buf := make([]byte, sizeHeader)
	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	child := &rawLayer{kind: layer.KindUDP}
	child.SetBytes(bslice.New(make([]byte, 12)))
	l.SetChild(child)
	if err := l.UpdateCalculatedValues(); err != nil {
		t.Fatal(err)
	}
	if got := l.Frame().PayloadLength(); got != 12 {
		t.Fatalf("PayloadLength = %d, want 12", got)
	}
}

func TestNewLayerShortBuffer(t *testing.T) {
	_, err := NewLayer(make([]byte, 10))
	if err == nil {
		t.Fatal("expected error constructing a layer over a 10-byte buffer")
	}
}
