package drda

import "encoding/binary"

// LooksLikeDRDA reports whether tcpPayload's bytes are shaped like the
// start of a DDM header: at least 6 bytes long with the magic byte
// 0xD0 at offset 2 (DRDA's "magic" field, DSS format byte).
func LooksLikeDRDA(tcpPayload []byte) bool {
	return len(tcpPayload) >= sizeDDMHeader && tcpPayload[2] == ddmMagic
}

// NewDDMHeader returns a DDMHeader over buf. An error is returned if
// buf is shorter than the 6-byte DDM header or does not look like DRDA
// (see LooksLikeDRDA).
func NewDDMHeader(buf []byte) (DDMHeader, error) {
	if len(buf) < sizeDDMHeader {
		return DDMHeader{}, errShort
	}
	if buf[2] != ddmMagic {
		return DDMHeader{}, errShort
	}
	return DDMHeader{buf: buf}, nil
}

// DDMHeader provides field accessors over a single DDM header: length,
// magic, format, correlator, and the codepoint of the object that follows
// (DRDA/DDM specification, Volume 3, "DSS Header"). The following
// object's own length field is not exposed.
type DDMHeader struct {
	buf []byte
}

// RawData returns the underlying slice the DDMHeader was created over.
func (h DDMHeader) RawData() []byte { return h.buf }

// Length returns the DSS length field: the total length of this DDM
// object, including the 6-byte header.
func (h DDMHeader) Length() uint16 { return binary.BigEndian.Uint16(h.buf[0:2]) }

// Magic returns the fixed magic byte (always 0xD0).
func (h DDMHeader) Magic() uint8 { return h.buf[2] }

// Format returns the DSS format byte, whose high nibble is the magic
// value and whose low nibbles carry DSS type/chaining flags.
func (h DDMHeader) Format() uint8 { return h.buf[2] }

// Correlator returns the DSS correlator, used to associate replies with
// requests.
func (h DDMHeader) Correlator() uint16 { return binary.BigEndian.Uint16(h.buf[3:5]) }

// CodePoint returns the codepoint of the first DDM object following
// this header, if the header is immediately followed by one (the
// 2-byte object length plus 2-byte codepoint at offset 6).
func (h DDMHeader) CodePoint() uint16 {
	if len(h.buf) < sizeDDMHeader+4 {
		return 0
	}
	return binary.BigEndian.Uint16(h.buf[sizeDDMHeader+2 : sizeDDMHeader+4])
}

// Payload returns the bytes following the 6-byte DDM header, bounded by
// the declared Length field when it does not exceed the buffer.
func (h DDMHeader) Payload() []byte {
	l := int(h.Length())
	if l < sizeDDMHeader || l > len(h.buf) {
		return h.buf[sizeDDMHeader:]
	}
	return h.buf[sizeDDMHeader:l]
}
