package ppp

import "testing"

func TestFrameNoAddressControl(t *testing.T) {
	buf := []byte{0x00, 0x21, 0xde, 0xad}
	frm, err := NewFrame(buf)
	if err != nil {
		t.Fatal(err)
	}
	if frm.HasAddressControl() {
		t.Fatal("expected no Address/Control prefix")
	}
	if frm.HeaderLength() != 2 {
		t.Fatalf("got header length %d, want 2", frm.HeaderLength())
	}
	if frm.Protocol() != ProtocolIPv4 {
		t.Fatalf("got protocol %v, want IPv4", frm.Protocol())
	}
	if len(frm.Payload()) != 2 {
		t.Fatalf("got payload length %d, want 2", len(frm.Payload()))
	}
}

func TestFrameWithAddressControl(t *testing.T) {
	buf := []byte{0xff, 0x03, 0x00, 0x57, 0x01, 0x02, 0x03}
	frm, err := NewFrame(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !frm.HasAddressControl() {
		t.Fatal("expected Address/Control prefix")
	}
	if frm.HeaderLength() != 4 {
		t.Fatalf("got header length %d, want 4", frm.HeaderLength())
	}
	if frm.Protocol() != ProtocolIPv6 {
		t.Fatalf("got protocol %v, want IPv6", frm.Protocol())
	}
	if len(frm.Payload()) != 3 {
		t.Fatalf("got payload length %d, want 3", len(frm.Payload()))
	}
}

func TestFrameShortBuffer(t *testing.T) {
	_, err := NewFrame([]byte{0x00})
	if err != errShort {
		t.Fatalf("got %v, want errShort", err)
	}
}

func TestProtocolIsControl(t *testing.T) {
	if !ProtocolLCP.IsControl() {
		t.Fatal("expected LCP to be a control protocol")
	}
	if ProtocolIPv4.IsControl() {
		t.Fatal("expected IPv4 not to be a control protocol")
	}
}
