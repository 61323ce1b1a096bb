package drda

import (
	"testing"

	"github.com/soypat/packetview/layer"
)

func TestLayerKind(t *testing.T) {
	buf := append(buildDDM(10, 1), []byte{0xaa, 0xbb}...)
	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	if l.Kind() != layer.KindDRDA {
		t.Fatalf("got kind %v, want KindDRDA", l.Kind())
	}
	if l.DDMHeader().Correlator() != 1 {
		t.Fatal("correlator mismatch")
	}
	if err := l.UpdateCalculatedValues(); err != nil {
		t.Fatal(err)
	}
}

func TestLayerRejectsNonDRDA(t *testing.T) {
	_, err := NewLayer([]byte{0, 0, 0, 0, 0, 0})
	if err == nil {
		t.Fatal("expected error for non-DRDA bytes")
	}
}
