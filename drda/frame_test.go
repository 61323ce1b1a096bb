package drda

import (
	"encoding/binary"
	"testing"
)

func buildDDM(length uint16, correlator uint16) []byte {
	buf := make([]byte, sizeDDMHeader)
	binary.BigEndian.PutUint16(buf[0:2], length)
	buf[2] = ddmMagic
	binary.BigEndian.PutUint16(buf[3:5], correlator)
	buf[5] = 0
	return buf
}

func TestLooksLikeDRDA(t *testing.T) {
	buf := buildDDM(10, 1)
	if !LooksLikeDRDA(buf) {
		t.Fatal("expected LooksLikeDRDA to recognize a DDM header")
	}
	other := []byte{0, 0, 0, 0, 0, 0}
	if LooksLikeDRDA(other) {
		t.Fatal("did not expect LooksLikeDRDA to recognize non-DRDA bytes")
	}
	if LooksLikeDRDA(buf[:4]) {
		t.Fatal("did not expect LooksLikeDRDA to recognize a too-short buffer")
	}
}

func TestDDMHeaderFields(t *testing.T) {
	buf := buildDDM(20, 0x1234)
	h, err := NewDDMHeader(buf)
	if err != nil {
		t.Fatal(err)
	}
	if h.Length() != 20 {
		t.Fatalf("got length %d, want 20", h.Length())
	}
	if h.Magic() != ddmMagic {
		t.Fatal("magic byte mismatch")
	}
	if h.Correlator() != 0x1234 {
		t.Fatalf("got correlator %#x, want 0x1234", h.Correlator())
	}
}

func TestDDMHeaderShortBuffer(t *testing.T) {
	_, err := NewDDMHeader([]byte{0, 1, 2})
	if err != errShort {
		t.Fatalf("got %v, want errShort", err)
	}
}

func TestIsWellKnownPort(t *testing.T) {
	if !IsWellKnownPort(446) {
		t.Fatal("expected 446 to be a well-known DRDA port")
	}
	if IsWellKnownPort(80) {
		t.Fatal("did not expect 80 to be a well-known DRDA port")
	}
}
