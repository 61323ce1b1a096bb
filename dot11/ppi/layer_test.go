package ppi

import (
	"bytes"
	"testing"

	"github.com/soypat/packetview/layer"
)

func TestLayerRoundTrip(t *testing.T) {
	buf := buildPPI()
	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	if l.Kind() != layer.KindDot11PPI {
		t.Fatalf("got kind %v, want KindDot11PPI", l.Kind())
	}
	l.SetBytes(l.Base.Header().Encapsulated())
	if !bytes.Equal(l.Bytes(), buf) {
		t.Fatal("Bytes() mismatch")
	}
}
