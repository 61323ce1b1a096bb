package arp

import (
	"testing"

	"github.com/soypat/packetview/ethernet"
)

func TestNewLayerIPv4(t *testing.T) {
	buf := make([]byte, sizeHeaderv4)
	frm, err := NewFrame(buf)
	if err != nil {
		t.Fatal(err)
	}
	frm.SetHardware(HTypeEthernet, 6)
	frm.SetProtocol(ethernet.TypeIPv4, 4)
	frm.SetOperation(OpRequest)

	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	if l.Frame().Operation() != OpRequest {
		t.Fatal("layer frame view diverges from underlying buffer")
	}
	if len(l.Bytes()) != sizeHeaderv4 {
		t.Fatalf("Bytes() length = %d, want %d", len(l.Bytes()), sizeHeaderv4)
	}
}

func TestNewLayerShortBuffer(t *testing.T) {
	_, err := NewLayer(make([]byte, 20))
	if err == nil {
		t.Fatal("expected error constructing a layer over a 20-byte buffer")
	}
}
