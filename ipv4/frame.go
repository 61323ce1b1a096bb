package ipv4

import (
	"encoding/binary"
	"errors"

	"github.com/soypat/packetview/checksum"
)

var (
	errShort      = errors.New("ipv4: buffer shorter than 20-byte header")
	errBadTL      = errors.New("ipv4: total length field is smaller than the header")
	errTooShort   = errors.New("ipv4: declared total length exceeds buffer")
	errBadIHL     = errors.New("ipv4: IHL field declares fewer than 5 words")
	errBadVersion = errors.New("ipv4: version field is not 4")
)

// NewFrame returns a Frame over buf. An error is returned if buf is
// shorter than the 20-byte fixed header. Call [Frame.ValidateSize]
// before reading Options/Payload to avoid a panic on a short buffer.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < sizeHeader {
		return Frame{}, errShort
	}
	return Frame{buf: buf}, nil
}

// Frame provides field accessors over the raw bytes of an IPv4 header
// and its declared payload, per RFC 791.
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice the Frame was created over.
func (ifrm Frame) RawData() []byte { return ifrm.buf }

// HeaderLength returns the IPv4 header length in bytes, including
// options, as declared by the IHL field.
func (ifrm Frame) HeaderLength() int { return int(ifrm.ihl()) * 4 }

func (ifrm Frame) ihl() uint8     { return ifrm.buf[0] & 0xf }
func (ifrm Frame) version() uint8 { return ifrm.buf[0] >> 4 }

// VersionAndIHL returns the version and IHL fields.
func (ifrm Frame) VersionAndIHL() (version, ihl uint8) {
	v := ifrm.buf[0]
	return v >> 4, v & 0xf
}

// SetVersionAndIHL sets the version and IHL fields.
func (ifrm Frame) SetVersionAndIHL(version, ihl uint8) {
	ifrm.buf[0] = version<<4 | ihl&0xf
}

// ToS returns the Type of Service/DiffServ byte.
func (ifrm Frame) ToS() ToS { return ToS(ifrm.buf[1]) }

// SetToS sets the Type of Service/DiffServ byte.
func (ifrm Frame) SetToS(tos ToS) { ifrm.buf[1] = byte(tos) }

// TotalLength returns the entire datagram size in bytes, header and
// payload included.
func (ifrm Frame) TotalLength() uint16 { return binary.BigEndian.Uint16(ifrm.buf[2:4]) }

// SetTotalLength sets the total datagram length field.
func (ifrm Frame) SetTotalLength(tl uint16) { binary.BigEndian.PutUint16(ifrm.buf[2:4], tl) }

// ID returns the fragmentation identification field.
func (ifrm Frame) ID() uint16 { return binary.BigEndian.Uint16(ifrm.buf[4:6]) }

// SetID sets the fragmentation identification field.
func (ifrm Frame) SetID(id uint16) { binary.BigEndian.PutUint16(ifrm.buf[4:6], id) }

// Flags returns the combined flags/fragment-offset field.
func (ifrm Frame) Flags() Flags { return Flags(binary.BigEndian.Uint16(ifrm.buf[6:8])) }

// SetFlags sets the combined flags/fragment-offset field.
func (ifrm Frame) SetFlags(flags Flags) { binary.BigEndian.PutUint16(ifrm.buf[6:8], uint16(flags)) }

// TTL returns the time-to-live field.
func (ifrm Frame) TTL() uint8 { return ifrm.buf[8] }

// SetTTL sets the time-to-live field.
func (ifrm Frame) SetTTL(ttl uint8) { ifrm.buf[8] = ttl }

// Protocol returns the upper-layer protocol field.
func (ifrm Frame) Protocol() Proto { return Proto(ifrm.buf[9]) }

// SetProtocol sets the upper-layer protocol field.
func (ifrm Frame) SetProtocol(proto Proto) { ifrm.buf[9] = uint8(proto) }

// CRC returns the header checksum field.
func (ifrm Frame) CRC() uint16 { return binary.BigEndian.Uint16(ifrm.buf[10:12]) }

// SetCRC sets the header checksum field.
func (ifrm Frame) SetCRC(cs uint16) { binary.BigEndian.PutUint16(ifrm.buf[10:12], cs) }

// CalculateHeaderCRC computes the ones'-complement checksum over the
// header (with the CRC field itself treated as zero), per RFC 791 §3.1.
func (ifrm Frame) CalculateHeaderCRC() uint16 {
	var s checksum.Sum
	hl := ifrm.HeaderLength()
	s.Write(ifrm.buf[0:10])
	s.Write(ifrm.buf[12:hl])
	return s.Complement16()
}

// UpdateHeaderCRC recomputes and writes the header checksum field.
func (ifrm Frame) UpdateHeaderCRC() {
	ifrm.SetCRC(0)
	ifrm.SetCRC(ifrm.CalculateHeaderCRC())
}

// ValidateHeaderCRC reports whether the stored checksum is consistent
// with the header contents. A header whose IHL runs past the buffer is
// reported invalid.
func (ifrm Frame) ValidateHeaderCRC() bool {
	var s checksum.Sum
	hl := ifrm.HeaderLength()
	if hl > len(ifrm.buf) {
		return false
	}
	s.Write(ifrm.buf[0:hl])
	return checksum.Valid(s.Sum16())
}

// SourceAddr returns a pointer to the source address field.
func (ifrm Frame) SourceAddr() *[4]byte { return (*[4]byte)(ifrm.buf[12:16]) }

// DestinationAddr returns a pointer to the destination address field.
func (ifrm Frame) DestinationAddr() *[4]byte { return (*[4]byte)(ifrm.buf[16:20]) }

// upperLayerLength is TotalLength minus the header, the length field
// pseudo-headers checksum over.
func (ifrm Frame) upperLayerLength() uint16 {
	return ifrm.TotalLength() - uint16(ifrm.HeaderLength())
}

// WriteTCPPseudoHeader writes the IPv4 pseudo-header TCP/UDP checksums
// are computed over into s.
func (ifrm Frame) WriteTCPPseudoHeader(s *checksum.Sum) {
	ph := checksum.IPv4Pseudo(*ifrm.SourceAddr(), *ifrm.DestinationAddr(), uint8(ProtoTCP), ifrm.upperLayerLength())
	s.Write(ph[:])
}

// WriteUDPPseudoHeader writes the IPv4 pseudo-header UDP checksums are
// computed over into s.
func (ifrm Frame) WriteUDPPseudoHeader(s *checksum.Sum) {
	ph := checksum.IPv4Pseudo(*ifrm.SourceAddr(), *ifrm.DestinationAddr(), uint8(ProtoUDP), ifrm.upperLayerLength())
	s.Write(ph[:])
}

// Payload returns the datagram's payload, per the declared TotalLength.
// Call [Frame.ValidateSize] first to avoid a panic on a short buffer.
func (ifrm Frame) Payload() []byte {
	off := ifrm.HeaderLength()
	return ifrm.buf[off:ifrm.TotalLength()]
}

// Options returns the variable-length options region between the fixed
// 20-byte header and HeaderLength(). May be zero length.
func (ifrm Frame) Options() []byte {
	return ifrm.buf[sizeHeader:ifrm.HeaderLength()]
}

// ClearHeader zeros out the fixed (non-option) header bytes.
func (ifrm Frame) ClearHeader() {
	for i := range ifrm.buf[:sizeHeader] {
		ifrm.buf[i] = 0
	}
}

// ValidateSize checks the frame's declared length fields against the
// actual buffer length.
func (ifrm Frame) ValidateSize() error {
	if ifrm.version() != 4 {
		return errBadVersion
	}
	if ifrm.ihl() < 5 {
		return errBadIHL
	}
	tl := ifrm.TotalLength()
	if int(tl) < ifrm.HeaderLength() {
		return errBadTL
	}
	if int(tl) > len(ifrm.buf) {
		return errTooShort
	}
	return nil
}
