package sll

import (
	"testing"

	"github.com/soypat/packetview/ethernet"
	"github.com/soypat/packetview/layer"
)

func TestLayerKindAndSetPayloadKind(t *testing.T) {
	buf := make([]byte, sizeHeader)
	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	if l.Kind() != layer.KindLinuxSLL {
		t.Fatalf("got kind %v, want KindLinuxSLL", l.Kind())
	}
	l.SetPayloadKind(layer.KindIPv6)
	if l.Frame().ProtocolType() != ethernet.TypeIPv6 {
		t.Fatal("expected IPv6 protocol type after SetPayloadKind")
	}
	if err := l.UpdateCalculatedValues(); err != nil {
		t.Fatal(err)
	}
}
