package wol

import (
	"bytes"
	"testing"
)

func TestFrameRoundTrip(t *testing.T) {
	buf := make([]byte, sizeMinPacket)
	frm, err := NewFrame(buf)
	if err != nil {
		t.Fatal(err)
	}
	frm.SetSync()
	mac := [6]byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	frm.SetTargetMAC(mac)

	if !frm.IsSync() {
		t.Fatal("expected sync stream")
	}
	if *frm.TargetMAC() != mac {
		t.Fatal("target MAC mismatch")
	}
	if !frm.ValidateRepetitions() {
		t.Fatal("expected all 16 repetitions to match")
	}
}

func TestFrameShortBuffer(t *testing.T) {
	_, err := NewFrame(make([]byte, 10))
	if err != errShort {
		t.Fatalf("got %v, want errShort", err)
	}
}

func TestFramePassword(t *testing.T) {
	buf := make([]byte, sizeMinPacket+6)
	frm, err := NewFrame(buf)
	if err != nil {
		t.Fatal(err)
	}
	pw := []byte{1, 2, 3, 4, 5, 6}
	copy(frm.Password(), pw)
	if !bytes.Equal(frm.Password(), pw) {
		t.Fatal("password mismatch")
	}
}

func TestFrameInvalidRepetitions(t *testing.T) {
	buf := make([]byte, sizeMinPacket)
	frm, err := NewFrame(buf)
	if err != nil {
		t.Fatal(err)
	}
	frm.SetSync()
	frm.SetTargetMAC([6]byte{1, 2, 3, 4, 5, 6})
	frm.buf[sizeSync] = 0xff // corrupt first repetition byte
	if frm.ValidateRepetitions() {
		t.Fatal("expected corrupted repetition to be detected")
	}
}
