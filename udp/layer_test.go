package udp

import (
	"testing"

	"github.com/soypat/packetview/checksum"
)

func TestLayerUpdateCalculatedValues(t *testing.T) {
	buf := make([]byte, sizeHeader+4)
	frm, err := NewFrame(buf)
	if err != nil {
		t.Fatal(err)
	}
	frm.SetSourcePort(1234)
	frm.SetDestinationPort(53)
	frm.SetLength(uint16(len(buf)))
	copy(buf[sizeHeader:], []byte{5, 6, 7, 8})

	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	var src, dst [4]byte
	src[0], dst[0] = 1, 2
	pseudo := checksum.IPv4Pseudo(src, dst, 17, uint16(len(buf)))
	l.SetPseudoHeader(pseudo[:])
	if err := l.UpdateCalculatedValues(); err != nil {
		t.Fatal(err)
	}

	full, _ := NewFrame(buf)
	if full.Length() != uint16(len(buf)) {
		t.Fatalf("length: got %d want %d", full.Length(), len(buf))
	}
	if !full.ValidateCRC(pseudo[:]) {
		t.Fatal("expected checksum to validate after UpdateCalculatedValues")
	}
}

func TestNewLayerShortBuffer(t *testing.T) {
	_, err := NewLayer(make([]byte, 4))
	if err == nil {
		t.Fatal("expected error constructing a layer over a 4-byte buffer")
	}
}
