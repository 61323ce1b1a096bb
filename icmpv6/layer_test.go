package icmpv6

import (
	"testing"

	"github.com/soypat/packetview/checksum"
)

func TestLayerUpdateCalculatedValuesWithPseudoHeader(t *testing.T) {
	buf := make([]byte, 16)
	frm, err := NewFrame(buf)
	if err != nil {
		t.Fatal(err)
	}
	frm.SetType(TypeEchoReply)
	echo := frm.Echo()
	echo.SetIdentifier(7)
	echo.SetSequenceNumber(1)

	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	var src, dst [16]byte
	src[0], dst[0] = 1, 2
	pseudo := checksum.IPv6Pseudo(src, dst, 58, uint32(len(buf)))
	l.SetPseudoHeader(pseudo[:])
	if err := l.UpdateCalculatedValues(); err != nil {
		t.Fatal(err)
	}

	full, _ := NewFrame(buf)
	if !full.ValidateCRC(pseudo[:]) {
		t.Fatal("expected checksum to validate after UpdateCalculatedValues")
	}
}

func TestNewLayerShortBuffer(t *testing.T) {
	_, err := NewLayer(make([]byte, 2))
	if err == nil {
		t.Fatal("expected error constructing a layer over a 2-byte buffer")
	}
}
