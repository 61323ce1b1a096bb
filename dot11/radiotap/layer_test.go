package radiotap

import (
	"bytes"
	"testing"

	"github.com/soypat/packetview/layer"
)

func TestLayerRoundTrip(t *testing.T) {
	buf := buildRadiotap()
	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	if l.Kind() != layer.KindDot11Radiotap {
		t.Fatalf("got kind %v, want KindDot11Radiotap", l.Kind())
	}
	l.SetBytes(l.Base.Header().Encapsulated())
	if !bytes.Equal(l.Bytes(), buf) {
		t.Fatal("Bytes() mismatch")
	}
}
