package ospf

import (
	"encoding/binary"
	"testing"
)

func newTestHello(t *testing.T, numNeighbors int) ([]byte, Frame) {
	t.Helper()
	bodyLen := 20 + 4*numNeighbors
	buf := make([]byte, sizeHeader+bodyLen)
	frm, err := NewFrame(buf)
	if err != nil {
		t.Fatal(err)
	}
	frm.SetVersion(2)
	frm.SetType(TypeHello)
	frm.SetPacketLength(uint16(len(buf)))
	return buf, frm
}

func TestFrameValidateSize(t *testing.T) {
	buf, frm := newTestHello(t, 0)
	if err := frm.ValidateSize(); err != nil {
		t.Fatalf("expected well-formed header to validate, got %v", err)
	}
	frm.SetPacketLength(uint16(len(buf) + 100))
	if err := frm.ValidateSize(); err == nil {
		t.Fatal("expected ValidateSize to reject a length exceeding the buffer")
	}
	frm.SetPacketLength(4)
	if err := frm.ValidateSize(); err == nil {
		t.Fatal("expected ValidateSize to reject a length smaller than the header")
	}
	frm.SetPacketLength(uint16(len(buf)))
	frm.SetVersion(3)
	if err := frm.ValidateSize(); err == nil {
		t.Fatal("expected ValidateSize to reject a non-2 version")
	}
}

func TestHelloFields(t *testing.T) {
	_, frm := newTestHello(t, 2)
	hello := frm.Hello()
	*hello.NetworkMask() = [4]byte{255, 255, 255, 0}
	if *hello.NetworkMask() != [4]byte{255, 255, 255, 0} {
		t.Fatal("network mask mismatch")
	}
	*hello.Neighbor(0) = [4]byte{10, 0, 0, 1}
	*hello.Neighbor(1) = [4]byte{10, 0, 0, 2}
	if hello.NumNeighbors() != 2 {
		t.Fatalf("expected 2 neighbors, got %d", hello.NumNeighbors())
	}
	if *hello.Neighbor(0) != [4]byte{10, 0, 0, 1} || *hello.Neighbor(1) != [4]byte{10, 0, 0, 2} {
		t.Fatal("neighbor list mismatch")
	}
}

func TestChecksum(t *testing.T) {
	_, frm := newTestHello(t, 1)
	*frm.RouterID() = [4]byte{1, 1, 1, 1}
	*frm.AreaID() = [4]byte{0, 0, 0, 0}
	frm.UpdateCRC()
	if !frm.ValidateCRC() {
		t.Fatal("expected checksum to validate after UpdateCRC")
	}
	frm.RawData()[4] ^= 0xff // corrupt router ID
	if frm.ValidateCRC() {
		t.Fatal("expected checksum to be invalid after corruption")
	}
}

func TestRouterLSALinks(t *testing.T) {
	buf := make([]byte, 4+2*sizeRouterLink)
	r := NewRouterLSA(buf)
	r.buf[1] = byte(RouterLSAFlagExternal)
	binary.BigEndian.PutUint16(r.buf[2:4], 2)
	var seen []uint16
	err := r.ForEachLink(func(l RouterLink) error {
		seen = append(seen, l.Metric())
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 {
		t.Fatalf("expected 2 links, got %d", len(seen))
	}
	if r.Flags() != RouterLSAFlagExternal {
		t.Fatalf("expected External flag, got %v", r.Flags())
	}
}

func TestASExternalLSAMetric(t *testing.T) {
	buf := make([]byte, 4+sizeExternalMetric)
	a := NewASExternalLSA(buf)
	*a.NetworkMask() = [4]byte{255, 255, 255, 0}
	binary.BigEndian.PutUint32(a.buf[4:8], 0x80000064) // E bit set, metric 100
	var tos TOSWord
	err := a.ForEachMetric(func(m ExternalMetric) error {
		tos = m.TOS()
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !tos.External() {
		t.Fatal("expected External bit set")
	}
	if tos.Metric() != 100 {
		t.Fatalf("expected metric 100, got %d", tos.Metric())
	}
}
