package icmpv4

import (
	"math/rand"
	"testing"
)

func TestFrameEchoRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 100; i++ {
		buf := make([]byte, 8+rng.Intn(32))
		frm, err := NewFrame(buf)
		if err != nil {
			t.Fatal(err)
		}
		frm.SetType(TypeEcho)
		frm.SetCode(0)
		echo := frm.Echo()
		id := uint16(rng.Intn(65536))
		seq := uint16(rng.Intn(65536))
		echo.SetIdentifier(id)
		echo.SetSequenceNumber(seq)
		rng.Read(echo.Data())

		if echo.Identifier() != id {
			t.Fatalf("identifier mismatch: got %d want %d", echo.Identifier(), id)
		}
		if echo.SequenceNumber() != seq {
			t.Fatalf("sequence mismatch: got %d want %d", echo.SequenceNumber(), seq)
		}
		if frm.Type() != TypeEcho {
			t.Fatalf("type mismatch: got %v", frm.Type())
		}

		frm.UpdateCRC()
		if !frm.ValidateCRC() {
			t.Fatal("expected checksum to validate after UpdateCRC")
		}
		if len(echo.Data()) > 0 {
			echo.Data()[0] ^= 0xff
			if frm.ValidateCRC() {
				t.Fatal("expected checksum to be invalid after corrupting echo data")
			}
		}
	}
}

func TestFrameDestinationUnreachable(t *testing.T) {
	buf := make([]byte, 36)
	frm, err := NewFrame(buf)
	if err != nil {
		t.Fatal(err)
	}
	frm.SetType(TypeDestinationUnreachable)
	du := frm.DestinationUnreachable()
	du.SetCode(CodePortUnreachable)
	if du.Code() != CodePortUnreachable {
		t.Fatalf("code mismatch: got %v", du.Code())
	}
}

func TestNewFrameShortBuffer(t *testing.T) {
	_, err := NewFrame(make([]byte, 7))
	if err == nil {
		t.Fatal("expected error for a 7-byte buffer")
	}
}
