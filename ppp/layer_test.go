package ppp

import (
	"bytes"
	"testing"

	"github.com/soypat/packetview/layer"
)

func TestLayerRoundTrip(t *testing.T) {
	buf := []byte{0xff, 0x03, 0x00, 0x21, 1, 2, 3, 4}
	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	if l.Kind() != layer.KindPPP {
		t.Fatalf("got kind %v, want KindPPP", l.Kind())
	}
	if l.Frame().Protocol() != ProtocolIPv4 {
		t.Fatal("expected IPv4 protocol")
	}
	l.SetBytes(l.Header().Encapsulated())
	if !bytes.Equal(l.Bytes(), buf) {
		t.Fatal("Bytes() mismatch")
	}
}

func TestLayerSetChildUpdatesProtocol(t *testing.T) {
	buf := make([]byte, 2)
	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	l.SetPayloadKind(layer.KindIPv6)
	if l.Frame().Protocol() != ProtocolIPv6 {
		t.Fatal("expected IPv6 protocol after SetPayloadKind")
	}
}
