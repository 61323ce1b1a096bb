package lldp

import (
	"bytes"
	"testing"

	"github.com/soypat/packetview/layer"
)

func TestLayerKindAndBytes(t *testing.T) {
	chassis := buildTLV(TLVChassisID, append([]byte{byte(ChassisIDMACAddress)}, 0, 1, 2, 3, 4, 5))
	end := buildTLV(TLVEndOfLLDPDU, nil)
	var buf []byte
	buf = append(buf, chassis...)
	buf = append(buf, end...)

	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	if l.Kind() != layer.KindLLDP {
		t.Fatalf("got kind %v, want KindLLDP", l.Kind())
	}
	if !bytes.Equal(l.Bytes(), buf) {
		t.Fatal("Bytes() mismatch")
	}
	if err := l.UpdateCalculatedValues(); err != nil {
		t.Fatal(err)
	}
}

func TestLayerChassisIDRoundTrip(t *testing.T) {
	mac := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
	chassis := buildTLV(TLVChassisID, append([]byte{byte(ChassisIDMACAddress)}, mac...))
	end := buildTLV(TLVEndOfLLDPDU, nil)
	var buf []byte
	buf = append(buf, chassis...)
	buf = append(buf, end...)

	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}

	val, ok := l.Frame().Find(TLVChassisID)
	if !ok {
		t.Fatal("expected ChassisID TLV")
	}
	subtype, id := ChassisID(val)
	if subtype != ChassisIDMACAddress {
		t.Fatalf("got subtype %v, want ChassisIDMACAddress", subtype)
	}
	if !bytes.Equal(id, mac) {
		t.Fatal("chassis id mismatch")
	}
}
