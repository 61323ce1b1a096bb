package ethernet

import (
	"bytes"
	"testing"

	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/layer"
)

type rawLayer struct {
	layer.Base
	kind layer.Kind
}

func (r *rawLayer) Kind() layer.Kind            { return r.kind }
func (r *rawLayer) Bytes() []byte               { return layer.Bytes(r) }
func (r *rawLayer) UpdateCalculatedValues() error { return nil }

func TestLayerSetChildUpdatesEtherType(t *testing.T) {
	buf := make([]byte, 14)
	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	child := &rawLayer{kind: layer.KindIPv4}
	l.SetChild(child)
	if l.Frame().EtherTypeOrSize() != TypeIPv4 {
		t.Fatalf("expected EtherType to auto-update to IPv4, got %v", l.Frame().EtherTypeOrSize())
	}
}

func TestLayerBytesRoundTrip(t *testing.T) {
	header := make([]byte, 14)
	l, err := NewLayer(header)
	if err != nil {
		t.Fatal(err)
	}
	*l.Frame().DestinationHardwareAddr() = BroadcastAddr()
	l.Frame().SetEtherType(TypeARP)
	l.SetBytes(bslice.New([]byte{1, 2, 3, 4}))

	got := l.Bytes()
	want := append(append([]byte{}, header...), 1, 2, 3, 4)
	if !bytes.Equal(got, want) {
		t.Fatalf("Bytes() = %x, want %x", got, want)
	}
}

func TestNewLayerShortBuffer(t *testing.T) {
	_, err := NewLayer(make([]byte, 4))
	if err == nil {
		t.Fatal("expected error constructing a layer over a 4-byte buffer")
	}
}
