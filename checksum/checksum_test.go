package checksum

import "testing"

func TestSumKnownVector(t *testing.T) {
	// RFC 1071 §3 worked example.
	b := []byte{0x00, 0x01, 0xf2, 0x03, 0xf4, 0xf5, 0xf6, 0xf7}
	var s Sum
	s.Write(b)
	got := s.Complement16()
	want := uint16(0x220d)
	if got != want {
		t.Errorf("Complement16() = %#04x, want %#04x", got, want)
	}
}

func TestSumOddLength(t *testing.T) {
	var s Sum
	s.Write([]byte{0x01, 0x02, 0x03})
	var s2 Sum
	s2.Write([]byte{0x01, 0x02, 0x03, 0x00})
	if s.Sum16() != s2.Sum16() {
		t.Errorf("odd-length tail not treated as zero-padded: %#04x != %#04x", s.Sum16(), s2.Sum16())
	}
}

func TestOnesSumValidityRoundTrip(t *testing.T) {
	payload := []byte{0x45, 0x00, 0x00, 0x28, 0x00, 0x01, 0x00, 0x00, 0x40, 0x06, 0x00, 0x00, 0x0A, 0x00, 0x00, 0x01, 0x0A, 0x00, 0x00, 0x02}
	c := OnesComplementSum(payload)
	payload[10], payload[11] = byte(c>>8), byte(c)
	if !Valid(OnesSum(payload)) {
		t.Fatal("expected valid checksum after writing complement back")
	}
	payload[0] ^= 0xFF
	if Valid(OnesSum(payload)) {
		t.Fatal("expected corrupted header to fail validation")
	}
}

func TestAddUint16AndUint32Agree(t *testing.T) {
	var byWrite, byAdd Sum
	byWrite.Write([]byte{0x12, 0x34, 0x56, 0x78})
	byAdd.AddUint32(0x12345678)
	if byWrite.Sum16() != byAdd.Sum16() {
		t.Errorf("AddUint32 disagrees with Write: %#04x != %#04x", byAdd.Sum16(), byWrite.Sum16())
	}
}

func TestNeverZero(t *testing.T) {
	if NeverZero(0) != 0xFFFF {
		t.Errorf("NeverZero(0) = %#04x, want 0xFFFF", NeverZero(0))
	}
	if NeverZero(0x1234) != 0x1234 {
		t.Errorf("NeverZero(0x1234) changed a non-zero value")
	}
}

func TestIPv4PseudoLayout(t *testing.T) {
	src := [4]byte{10, 0, 0, 1}
	dst := [4]byte{10, 0, 0, 2}
	ph := IPv4Pseudo(src, dst, 6, 20)
	want := [12]byte{10, 0, 0, 1, 10, 0, 0, 2, 0, 6, 0, 20}
	if ph != want {
		t.Errorf("IPv4Pseudo() = %v, want %v", ph, want)
	}
}

func TestIPv6PseudoLayout(t *testing.T) {
	var src, dst [16]byte
	src[0] = 0x20
	dst[15] = 0x01
	ph := IPv6Pseudo(src, dst, 17, 16)
	if ph[32] != 0 || ph[33] != 0 || ph[34] != 0 || ph[35] != 16 {
		t.Errorf("IPv6Pseudo() upperLayerLength field = %v, want [0 0 0 16]", ph[32:36])
	}
	if ph[39] != 17 {
		t.Errorf("IPv6Pseudo() nextHeader field = %d, want 17", ph[39])
	}
	if ph[36] != 0 || ph[37] != 0 || ph[38] != 0 {
		t.Errorf("IPv6Pseudo() zero-padding field = %v, want [0 0 0]", ph[36:39])
	}
}

func TestWritePseudoAndUpper(t *testing.T) {
	pseudo := IPv4Pseudo([4]byte{10, 0, 0, 1}, [4]byte{10, 0, 0, 2}, 17, 8)
	upper := []byte{0x00, 0x35, 0x1F, 0x90, 0x00, 0x08, 0x00, 0x00}

	var combined Sum
	combined.WritePseudoAndUpper(pseudo[:], upper)

	var separate Sum
	separate.Write(pseudo[:])
	separate.Write(upper)

	if combined.Sum16() != separate.Sum16() {
		t.Errorf("WritePseudoAndUpper disagrees with sequential Write calls")
	}
}
