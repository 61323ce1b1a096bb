package ppi

import (
	"encoding/binary"
	"testing"
)

func buildPPI() []byte {
	common := make([]byte, 20)
	binary.LittleEndian.PutUint16(common[2:4], 0x0011)

	field := make([]byte, 4+len(common))
	fieldHeader{}.WriteHeader(field, uint16(FieldType80211Common), len(common))
	copy(field[4:], common)

	payload := []byte{0xaa, 0xbb}
	total := sizeFixedHeader + len(field) + len(payload)

	buf := make([]byte, total)
	buf[0] = 0 // version
	binary.LittleEndian.PutUint16(buf[2:4], uint16(sizeFixedHeader+len(field)))
	binary.LittleEndian.PutUint32(buf[4:8], 105) // DLT_IEEE802_11
	copy(buf[sizeFixedHeader:], field)
	copy(buf[sizeFixedHeader+len(field):], payload)
	return buf
}

func TestHeaderFields(t *testing.T) {
	buf := buildPPI()
	h, err := NewHeader(buf)
	if err != nil {
		t.Fatal(err)
	}
	if h.DLT() != 105 {
		t.Fatalf("got DLT %d, want 105", h.DLT())
	}
	val, ok := h.Find(FieldType80211Common)
	if !ok {
		t.Fatal("expected 802.11-Common field")
	}
	if CommonFlags80211(val) != 0x0011 {
		t.Fatalf("got common flags %#x, want 0x0011", CommonFlags80211(val))
	}
	if len(h.Payload()) != 2 {
		t.Fatalf("got payload length %d, want 2", len(h.Payload()))
	}
}

func TestHeaderShortBuffer(t *testing.T) {
	_, err := NewHeader([]byte{0, 0, 0})
	if err != errShort {
		t.Fatalf("got %v, want errShort", err)
	}
}
