package ipv4

import (
	"testing"

	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
)

type rawLayer struct {
	layer.Base
	kind layer.Kind
}

func (r *rawLayer) Kind() layer.Kind             { return r.kind }
func (r *rawLayer) Bytes() []byte                { return layer.Bytes(r) }
func (r *rawLayer) UpdateCalculatedValues() error { return nil }

func TestLayerSetChildUpdatesProtocol(t *testing.T) {
	buf := make([]byte, 20)
	frm, _ := NewFrame(buf)
	frm.SetVersionAndIHL(4, 5)
	frm.SetTotalLength(20)

	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	l.SetChild(&rawLayer{kind: layer.KindUDP})
	if l.Frame().Protocol() != ProtoUDP {
		t.Fatalf("expected protocol to auto-update to UDP, got %v", l.Frame().Protocol())
	}
}

func TestLayerUpdateCalculatedValues(t *testing.T) {
	buf := make([]byte, 20)
	frm, _ := NewFrame(buf)
	frm.SetVersionAndIHL(4, 5)
	frm.SetTotalLength(20)

	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	child := &rawLayer{kind: layer.KindUDP}
	child.SetBytes(bslice.New(make([]byte, 8)))
	l.SetChild(child)

	if err := l.UpdateCalculatedValues(); err != nil {
		t.Fatal(err)
	}
	if got := l.Frame().TotalLength(); got != 28 {
		t.Fatalf("TotalLength = %d, want 28 (20 header + 8 payload)", got)
	}
	if !l.Frame().ValidateHeaderCRC() {
		t.Fatal("expected header checksum to validate after UpdateCalculatedValues")
	}
}

func TestNewLayerShortBuffer(t *testing.T) {
	_, err := NewLayer(make([]byte, 10))
	if err == nil {
		t.Fatal("expected error constructing a layer over a 10-byte buffer")
	}
}
