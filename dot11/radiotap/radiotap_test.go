package radiotap

import (
	"encoding/binary"
	"testing"
)

func buildRadiotap() []byte {
	// present: TSFT(bit0) | Flags(bit1) | Rate(bit2) | AntennaSignal(bit5)
	present := uint32(1<<BitTSFT | 1<<BitFlags | 1<<BitRate | 1<<BitAntennaSignal)
	// TSFT needs 8-byte alignment: header is 8 bytes already aligned.
	tsftOff := 8
	flagsOff := tsftOff + 8
	rateOff := flagsOff + 1
	sigOff := rateOff + 1
	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	total := sigOff + 1 + len(payload)

	buf := make([]byte, total)
	buf[0] = 0 // version
	binary.LittleEndian.PutUint16(buf[2:4], uint16(sigOff+1))
	binary.LittleEndian.PutUint32(buf[4:8], present)
	binary.LittleEndian.PutUint64(buf[tsftOff:tsftOff+8], 123456789)
	buf[flagsOff] = 0x10
	buf[rateOff] = 2 // 1 Mbps
	sig := int8(-65)
	buf[sigOff] = byte(sig)
	copy(buf[sigOff+1:], payload)
	return buf
}

func TestHeaderFields(t *testing.T) {
	buf := buildRadiotap()
	h, err := NewHeader(buf)
	if err != nil {
		t.Fatal(err)
	}
	tsft, ok := h.TSFT()
	if !ok || tsft != 123456789 {
		t.Fatalf("got TSFT %d, ok=%v, want 123456789", tsft, ok)
	}
	flags, ok := h.Flags()
	if !ok || flags != 0x10 {
		t.Fatalf("got flags %#x, ok=%v, want 0x10", flags, ok)
	}
	rate, ok := h.Rate()
	if !ok || rate != 2 {
		t.Fatalf("got rate %d, ok=%v, want 2", rate, ok)
	}
	sig, ok := h.AntennaSignal()
	if !ok || sig != -65 {
		t.Fatalf("got antenna signal %d, ok=%v, want -65", sig, ok)
	}
	payload := h.Payload()
	if len(payload) != 4 {
		t.Fatalf("got payload length %d, want 4", len(payload))
	}
}

func TestHeaderShortBuffer(t *testing.T) {
	_, err := NewHeader([]byte{0, 0, 0})
	if err != errShort {
		t.Fatalf("got %v, want errShort", err)
	}
}

func TestHeaderUnknownFieldPreserved(t *testing.T) {
	// present bit 20 (AMPDU status) is not modeled; everything from
	// its offset on should come back as one Unknown field.
	present := uint32(1 << 20)
	buf := make([]byte, 8+6)
	binary.LittleEndian.PutUint16(buf[2:4], uint16(len(buf)))
	binary.LittleEndian.PutUint32(buf[4:8], present)
	copy(buf[8:], []byte{1, 2, 3, 4, 5, 6})

	h, err := NewHeader(buf)
	if err != nil {
		t.Fatal(err)
	}
	fields := h.Fields()
	if len(fields) != 1 || fields[0].BitIndex != UnknownBitIndex {
		t.Fatalf("expected a single Unknown field, got %+v", fields)
	}
	if len(fields[0].Data) != 6 {
		t.Fatalf("got unknown field length %d, want 6", len(fields[0].Data))
	}
}
