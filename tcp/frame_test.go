package tcp

import (
	"math/rand"
	"testing"

	"github.com/soypat/packetview/checksum"
)

func TestFrameFieldRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		buf := make([]byte, sizeHeader+rng.Intn(64))
		frm, err := NewFrame(buf)
		if err != nil {
			t.Fatal(err)
		}
		sport := uint16(rng.Intn(65536))
		dport := uint16(rng.Intn(65536))
		seq := rng.Uint32()
		ack := rng.Uint32()
		win := uint16(rng.Intn(65536))
		urg := uint16(rng.Intn(65536))
		frm.SetSourcePort(sport)
		frm.SetDestinationPort(dport)
		frm.SetSeq(seq)
		frm.SetAck(ack)
		frm.SetOffset(5)
		frm.SetFlags(FlagSYN | FlagACK)
		frm.SetWindowSize(win)
		frm.SetUrgentPtr(urg)

		if got := frm.SourcePort(); got != sport {
			t.Fatalf("source port: got %d want %d", got, sport)
		}
		if got := frm.DestinationPort(); got != dport {
			t.Fatalf("destination port: got %d want %d", got, dport)
		}
		if got := frm.Seq(); got != seq {
			t.Fatalf("seq: got %d want %d", got, seq)
		}
		if got := frm.Ack(); got != ack {
			t.Fatalf("ack: got %d want %d", got, ack)
		}
		if got := frm.WindowSize(); got != win {
			t.Fatalf("window: got %d want %d", got, win)
		}
		if got := frm.UrgentPtr(); got != urg {
			t.Fatalf("urgent ptr: got %d want %d", got, urg)
		}
		if got := frm.Flags(); got != (FlagSYN | FlagACK) {
			t.Fatalf("flags: got %v want %v", got, FlagSYN|FlagACK)
		}
		if got := frm.Offset(); got != 5 {
			t.Fatalf("offset: got %d want 5", got)
		}

		// Aliasing: a Frame is a view, not a copy.
		frm.SetSourcePort(sport ^ 0xffff)
		frm2, _ := NewFrame(buf)
		if frm2.SourcePort() != sport^0xffff {
			t.Fatal("expected Frame to alias the backing buffer")
		}
	}
}

func TestFrameChecksum(t *testing.T) {
	buf := make([]byte, sizeHeader+4)
	frm, err := NewFrame(buf)
	if err != nil {
		t.Fatal(err)
	}
	frm.SetOffset(5)
	frm.SetSourcePort(1234)
	frm.SetDestinationPort(80)
	frm.SetSeq(1)
	frm.SetAck(0)
	frm.SetFlags(FlagSYN)
	frm.SetWindowSize(65535)
	copy(buf[sizeHeader:], []byte{1, 2, 3, 4})

	var src, dst [4]byte
	src[0], dst[0] = 10, 20
	pseudo := checksum.IPv4Pseudo(src, dst, 6, uint16(len(buf)))
	frm.UpdateCRC(pseudo[:])
	if !frm.ValidateCRC(pseudo[:]) {
		t.Fatal("expected checksum to validate after UpdateCRC")
	}
	buf[sizeHeader] ^= 0xff
	if frm.ValidateCRC(pseudo[:]) {
		t.Fatal("expected checksum to be invalid after corrupting payload")
	}
}

func TestFrameValidateSize(t *testing.T) {
	buf := make([]byte, sizeHeader)
	frm, _ := NewFrame(buf)
	frm.SetOffset(4) // below minimum of 5
	if err := frm.ValidateSize(); err == nil {
		t.Fatal("expected error for data offset below 5")
	}
	frm.SetOffset(10) // declares 40 bytes, buffer is only 20
	if err := frm.ValidateSize(); err == nil {
		t.Fatal("expected error for data offset beyond buffer")
	}
	frm.SetOffset(5)
	if err := frm.ValidateSize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewFrameShortBuffer(t *testing.T) {
	_, err := NewFrame(make([]byte, 10))
	if err == nil {
		t.Fatal("expected error for a 10-byte buffer")
	}
}
