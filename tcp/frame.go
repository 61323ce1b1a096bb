package tcp

import (
	"encoding/binary"
	"errors"

	"github.com/soypat/packetview/checksum"
)

var (
	errShort       = errors.New("tcp: buffer shorter than 20-byte header")
	errBadOffset   = errors.New("tcp: data offset field declares fewer than 5 words")
	errTooShort    = errors.New("tcp: declared data offset exceeds buffer")
)

// NewFrame returns a Frame over buf. An error is returned if buf is
// shorter than the fixed 20-byte header. Call [Frame.ValidateSize]
// before reading Options/Payload to avoid a panic on a short buffer.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < sizeHeader {
		return Frame{}, errShort
	}
	return Frame{buf: buf}, nil
}

// Frame provides field accessors over the raw bytes of a TCP segment,
// per RFC 9293 §3.1.
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice the Frame was created over.
func (frm Frame) RawData() []byte { return frm.buf }

// SourcePort returns the source port field.
func (frm Frame) SourcePort() uint16 { return binary.BigEndian.Uint16(frm.buf[0:2]) }

// SetSourcePort sets the source port field.
func (frm Frame) SetSourcePort(port uint16) { binary.BigEndian.PutUint16(frm.buf[0:2], port) }

// DestinationPort returns the destination port field.
func (frm Frame) DestinationPort() uint16 { return binary.BigEndian.Uint16(frm.buf[2:4]) }

// SetDestinationPort sets the destination port field.
func (frm Frame) SetDestinationPort(port uint16) { binary.BigEndian.PutUint16(frm.buf[2:4], port) }

// Seq returns the sequence number field.
func (frm Frame) Seq() uint32 { return binary.BigEndian.Uint32(frm.buf[4:8]) }

// SetSeq sets the sequence number field.
func (frm Frame) SetSeq(seq uint32) { binary.BigEndian.PutUint32(frm.buf[4:8], seq) }

// Ack returns the acknowledgment number field.
func (frm Frame) Ack() uint32 { return binary.BigEndian.Uint32(frm.buf[8:12]) }

// SetAck sets the acknowledgment number field.
func (frm Frame) SetAck(ack uint32) { binary.BigEndian.PutUint32(frm.buf[8:12], ack) }

// OffsetAndFlags returns the raw 16-bit word packing the 4-bit data
// offset, 3 reserved bits, and the 9 flag bits.
func (frm Frame) OffsetAndFlags() uint16 { return binary.BigEndian.Uint16(frm.buf[12:14]) }

// SetOffsetAndFlags sets the raw data-offset/flags word.
func (frm Frame) SetOffsetAndFlags(v uint16) { binary.BigEndian.PutUint16(frm.buf[12:14], v) }

// Offset returns the data offset field: the header length in 32-bit
// words, including options.
func (frm Frame) Offset() uint8 { return uint8(frm.OffsetAndFlags() >> 12) }

// SetOffset sets the data offset field, preserving the flags bits.
func (frm Frame) SetOffset(words uint8) {
	v := frm.OffsetAndFlags()&0x0fff | uint16(words)<<12
	frm.SetOffsetAndFlags(v)
}

// Flags returns the flag bits.
func (frm Frame) Flags() Flags { return Flags(frm.OffsetAndFlags()) & flagMask }

// SetFlags sets the flag bits, preserving the data offset.
func (frm Frame) SetFlags(flags Flags) {
	v := frm.OffsetAndFlags()&^uint16(flagMask) | uint16(flags.Mask())
	frm.SetOffsetAndFlags(v)
}

// HeaderLength returns the header length in bytes, options included,
// as declared by the data offset field.
func (frm Frame) HeaderLength() int { return int(frm.Offset()) * 4 }

// WindowSize returns the window size field.
func (frm Frame) WindowSize() uint16 { return binary.BigEndian.Uint16(frm.buf[14:16]) }

// SetWindowSize sets the window size field.
func (frm Frame) SetWindowSize(ws uint16) { binary.BigEndian.PutUint16(frm.buf[14:16], ws) }

// CRC returns the checksum field.
func (frm Frame) CRC() uint16 { return binary.BigEndian.Uint16(frm.buf[16:18]) }

// SetCRC sets the checksum field.
func (frm Frame) SetCRC(crc uint16) { binary.BigEndian.PutUint16(frm.buf[16:18], crc) }

// UrgentPtr returns the urgent pointer field. Its presence in the
// header is unconditional; whether it is meaningful is signaled by
// Flags().HasAny(FlagURG), per RFC 9293 §3.1 — this Frame does not
// gate reading it on that flag.
func (frm Frame) UrgentPtr() uint16 { return binary.BigEndian.Uint16(frm.buf[18:20]) }

// SetUrgentPtr sets the urgent pointer field.
func (frm Frame) SetUrgentPtr(ptr uint16) { binary.BigEndian.PutUint16(frm.buf[18:20], ptr) }

// Options returns the variable-length options region between the
// fixed 20-byte header and HeaderLength(). May be zero length.
// Options are always present and parseable regardless of FlagURG —
// URG only qualifies UrgentPtr, it has no bearing on option parsing.
func (frm Frame) Options() []byte { return frm.buf[sizeHeader:frm.HeaderLength()] }

// Payload returns the segment data following the header.
func (frm Frame) Payload() []byte { return frm.buf[frm.HeaderLength():] }

// ClearHeader zeros out the fixed (non-option) header bytes.
func (frm Frame) ClearHeader() {
	for i := range frm.buf[:sizeHeader] {
		frm.buf[i] = 0
	}
}

// ValidateSize checks the frame's declared data offset against the
// actual buffer length.
func (frm Frame) ValidateSize() error {
	off := frm.Offset()
	if off < 5 {
		return errBadOffset
	}
	if int(off)*4 > len(frm.buf) {
		return errTooShort
	}
	return nil
}

// CalculateCRC returns the folded ones' sum, not complemented, of pseudo
// (built with checksum.IPv4Pseudo or checksum.IPv6Pseudo) followed by the
// whole segment with its checksum field treated as zero, per RFC 9293
// §3.1. The checksum field value is the complement of this sum, which is
// what UpdateCRC writes.
func (frm Frame) CalculateCRC(pseudo []byte) uint16 {
	var s checksum.Sum
	s.Write(pseudo)
	s.Write(frm.buf[0:16])
	s.AddUint16(0) // checksum field itself, zeroed
	s.Write(frm.buf[18:])
	return s.Sum16()
}

// UpdateCRC recomputes and writes the checksum field given the
// enclosing IPv4/IPv6 pseudo-header bytes.
func (frm Frame) UpdateCRC(pseudo []byte) {
	frm.SetCRC(0)
	frm.SetCRC(^frm.CalculateCRC(pseudo))
}

// ValidateCRC reports whether the stored checksum is consistent with
// pseudo and the segment contents.
func (frm Frame) ValidateCRC(pseudo []byte) bool {
	var s checksum.Sum
	s.Write(pseudo)
	s.Write(frm.buf)
	return checksum.Valid(s.Sum16())
}
