package wol

// NewFrame returns a Frame over buf. An error is returned if buf is
// shorter than the fixed 102-byte magic packet (6-byte sync stream plus
// 16 MAC repetitions).
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < sizeMinPacket {
		return Frame{}, errShort
	}
	return Frame{buf: buf}, nil
}

// Frame provides field accessors over the raw bytes of a Wake-on-LAN
// magic packet.
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice the Frame was created over.
func (frm Frame) RawData() []byte { return frm.buf }

// HeaderLength returns the fixed 102-byte magic packet length (the
// optional SecureOn password, if present, is this layer's payload).
func (frm Frame) HeaderLength() int { return sizeMinPacket }

// IsSync reports whether the first 6 bytes are the 0xFF sync stream.
func (frm Frame) IsSync() bool {
	for _, b := range frm.buf[:sizeSync] {
		if b != 0xff {
			return false
		}
	}
	return true
}

// TargetMAC returns the target MAC address, read from the first of the
// 16 repetitions.
func (frm Frame) TargetMAC() *[6]byte { return (*[6]byte)(frm.buf[sizeSync : sizeSync+macLen]) }

// SetTargetMAC writes mac into all 16 repetitions.
func (frm Frame) SetTargetMAC(mac [6]byte) {
	for i := 0; i < repetitions; i++ {
		off := sizeSync + i*macLen
		copy(frm.buf[off:off+macLen], mac[:])
	}
}

// ValidateRepetitions reports whether all 16 MAC repetitions match the
// first one, i.e. the packet is a well-formed magic packet rather than
// malformed/truncated data that happened to pass the length check.
func (frm Frame) ValidateRepetitions() bool {
	want := frm.TargetMAC()
	for i := 1; i < repetitions; i++ {
		off := sizeSync + i*macLen
		got := (*[6]byte)(frm.buf[off : off+macLen])
		if *got != *want {
			return false
		}
	}
	return true
}

// Password returns the bytes following the fixed 102-byte magic packet:
// either empty, or a 4-byte (IPv4) or 6-byte (MAC) SecureOn password.
func (frm Frame) Password() []byte { return frm.buf[sizeMinPacket:] }

// ClearHeader zeros out the sync stream and all MAC repetitions.
func (frm Frame) ClearHeader() {
	for i := range frm.buf[:sizeMinPacket] {
		frm.buf[i] = 0
	}
}

// SetSync writes the 6-byte 0xFF sync stream.
func (frm Frame) SetSync() {
	for i := range frm.buf[:sizeSync] {
		frm.buf[i] = 0xff
	}
}
