package icmpv4

import "testing"

func TestLayerUpdateCalculatedValues(t *testing.T) {
	buf := make([]byte, 16)
	frm, err := NewFrame(buf)
	if err != nil {
		t.Fatal(err)
	}
	frm.SetType(TypeEchoReply)
	echo := frm.Echo()
	echo.SetIdentifier(42)
	echo.SetSequenceNumber(1)
	for i := range echo.Data() {
		echo.Data()[i] = byte(i)
	}

	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.UpdateCalculatedValues(); err != nil {
		t.Fatal(err)
	}
	// l.Frame() is scoped to the 8-byte header; checksum validity over
	// the whole message is checked via a Frame over the full buffer.
	full, _ := NewFrame(buf)
	if !full.ValidateCRC() {
		t.Fatal("expected checksum to validate over the full buffer after UpdateCalculatedValues")
	}
}

func TestNewLayerShortBuffer(t *testing.T) {
	_, err := NewLayer(make([]byte, 4))
	if err == nil {
		t.Fatal("expected error constructing a layer over a 4-byte buffer")
	}
}
