// Package igmp implements IGMPv2 (RFC 2236) and IGMPv3 (RFC 3376)
// message dissection and construction: membership queries, v2
// reports/leaves, and v3 reports with their group-record lists.
//
// No teacher or pack file implements IGMP; grounded on this module's
// own icmpv4/icmpv6 shape (a type+code+checksum common header sharing
// the same RFC-1071 checksum discipline as every other control-plane
// protocol here) and on RFC 2236/3376 for the wire layout.
package igmp

import (
	"encoding/binary"
	"errors"

	"github.com/soypat/packetview/checksum"
)

var (
	errShort      = errors.New("igmp: buffer shorter than 8-byte header")
	errShortV3    = errors.New("igmp: v3 report buffer shorter than declared group record count")
	errBadRecords = errors.New("igmp: group record declares more source addresses than fit in buffer")
)

// Type is the IGMP message type field, shared across v2 and v3.
type Type uint8

const (
	TypeMembershipQuery       Type = 0x11
	TypeV1MembershipReport    Type = 0x12
	TypeV2MembershipReport    Type = 0x16
	TypeV2LeaveGroup          Type = 0x17
	TypeV3MembershipReport    Type = 0x22
)

func (t Type) String() string {
	switch t {
	case TypeMembershipQuery:
		return "MembershipQuery"
	case TypeV1MembershipReport:
		return "V1MembershipReport"
	case TypeV2MembershipReport:
		return "V2MembershipReport"
	case TypeV2LeaveGroup:
		return "V2LeaveGroup"
	case TypeV3MembershipReport:
		return "V3MembershipReport"
	default:
		return "Unknown"
	}
}

// RecordType is the Record Type field of an IGMPv3 group record
// (RFC 3376 §4.2).
type RecordType uint8

const (
	RecordModeIsInclude        RecordType = 1
	RecordModeIsExclude        RecordType = 2
	RecordChangeToIncludeMode  RecordType = 3
	RecordChangeToExcludeMode  RecordType = 4
	RecordAllowNewSources      RecordType = 5
	RecordBlockOldSources      RecordType = 6
)

// NewFrame returns a Frame over buf, which must be at least 8 bytes
// (the common v2/v3-query header size).
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < 8 {
		return Frame{}, errShort
	}
	return Frame{buf: buf}, nil
}

// Frame provides field accessors over the common IGMP header shared by
// a Membership Query and a v2 Report/Leave: type(1), max response
// time/code(1), checksum(2), group address(4).
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice the Frame was created over.
func (frm Frame) RawData() []byte { return frm.buf }

// Type returns the message type field.
func (frm Frame) Type() Type { return Type(frm.buf[0]) }

// SetType sets the message type field.
func (frm Frame) SetType(t Type) { frm.buf[0] = uint8(t) }

// MaxRespCode returns the Max Response Time/Code byte. For
// TypeMembershipQuery values >= 128 are encoded in a floating-point
// format per RFC 3376 §4.1.1; see [MaxRespCodeToMillis].
func (frm Frame) MaxRespCode() uint8 { return frm.buf[1] }

// SetMaxRespCode sets the Max Response Time/Code byte.
func (frm Frame) SetMaxRespCode(v uint8) { frm.buf[1] = v }

// CRC returns the checksum field.
func (frm Frame) CRC() uint16 { return binary.BigEndian.Uint16(frm.buf[2:4]) }

// SetCRC sets the checksum field.
func (frm Frame) SetCRC(crc uint16) { binary.BigEndian.PutUint16(frm.buf[2:4], crc) }

// GroupAddr returns a pointer to the group address field (zero for a
// General Query).
func (frm Frame) GroupAddr() *[4]byte { return (*[4]byte)(frm.buf[4:8]) }

// CalculateCRC returns the folded ones' sum, not complemented, of the
// whole message with its checksum field treated as zero. The checksum
// field value is the complement of this sum, which is what UpdateCRC
// writes.
func (frm Frame) CalculateCRC() uint16 {
	var s checksum.Sum
	s.Write(frm.buf[0:2])
	s.AddUint16(0)
	s.Write(frm.buf[4:])
	return s.Sum16()
}

// UpdateCRC recomputes and writes the checksum field.
func (frm Frame) UpdateCRC() {
	frm.SetCRC(0)
	frm.SetCRC(^frm.CalculateCRC())
}

// ValidateCRC reports whether the stored checksum is consistent with
// the message contents.
func (frm Frame) ValidateCRC() bool {
	var s checksum.Sum
	s.Write(frm.buf)
	return checksum.Valid(s.Sum16())
}

// ValidateSize checks buf is at least the 8-byte common header.
func (frm Frame) ValidateSize() error {
	if len(frm.buf) < 8 {
		return errShort
	}
	return nil
}

// MaxRespCodeToMillis decodes the Max Response Code field per
// RFC 3376 §4.1.1 into milliseconds: values under 128 count tenths of a
// second directly (result code×100); 128 and above pack a floating-point
// exp/mantissa, also in tenths of a second.
func MaxRespCodeToMillis(code uint8) uint32 {
	if code < 128 {
		return uint32(code) * 100
	}
	mant := uint32(code & 0x0f)
	exp := uint32((code >> 4) & 0x07)
	return (mant | 0x10) << (exp + 3) * 100
}

// V3Query narrows Frame to the IGMPv3 Membership Query layout, which
// extends the common header with S/QRV flags, QQIC, and a source list
// (RFC 3376 §4.1).
type V3Query struct{ Frame }

// SQRV returns the raw Resv/S/QRV byte at offset 8.
func (q V3Query) SQRV() uint8 { return q.buf[8] }

// SuppressRouterSideProcessing reports the S flag.
func (q V3Query) SuppressRouterSideProcessing() bool { return q.SQRV()&0x08 != 0 }

// QRV returns the Querier's Robustness Variable.
func (q V3Query) QRV() uint8 { return q.SQRV() & 0x07 }

// QQIC returns the raw Querier's Query Interval Code byte.
func (q V3Query) QQIC() uint8 { return q.buf[9] }

// NumSources returns the declared number of source addresses.
func (q V3Query) NumSources() uint16 { return binary.BigEndian.Uint16(q.buf[10:12]) }

// Sources returns the source address list, each 4 bytes, per
// NumSources. Call [V3Query.ValidateSize] first.
func (q V3Query) Sources() []byte { return q.buf[12 : 12+int(q.NumSources())*4] }

// ValidateSize checks the declared source count fits the buffer, in
// addition to the common header check.
func (q V3Query) ValidateSize() error {
	if err := q.Frame.ValidateSize(); err != nil {
		return err
	}
	if len(q.buf) < 12 {
		return errShort
	}
	if 12+int(q.NumSources())*4 > len(q.buf) {
		return errBadRecords
	}
	return nil
}

// NewV3Report returns a V3Report over buf, which must be at least 8
// bytes (type/reserved/checksum/reserved).
func NewV3Report(buf []byte) (V3Report, error) {
	if len(buf) < 8 {
		return V3Report{}, errShort
	}
	return V3Report{buf: buf}, nil
}

// V3Report is an IGMPv3 Membership Report (RFC 3376 §4.2): type(1),
// reserved(1), checksum(2), reserved(2), number of group records(2),
// followed by that many GroupRecords back to back.
type V3Report struct {
	buf []byte
}

// RawData returns the underlying slice the V3Report was created over.
func (r V3Report) RawData() []byte { return r.buf }

// Type returns the message type field; always TypeV3MembershipReport
// for a well-formed report.
func (r V3Report) Type() Type { return Type(r.buf[0]) }

// SetType sets the message type field.
func (r V3Report) SetType(t Type) { r.buf[0] = uint8(t) }

// CRC returns the checksum field.
func (r V3Report) CRC() uint16 { return binary.BigEndian.Uint16(r.buf[2:4]) }

// SetCRC sets the checksum field.
func (r V3Report) SetCRC(crc uint16) { binary.BigEndian.PutUint16(r.buf[2:4], crc) }

// NumGroupRecords returns the declared number of group records.
func (r V3Report) NumGroupRecords() uint16 { return binary.BigEndian.Uint16(r.buf[6:8]) }

// SetNumGroupRecords sets the declared number of group records.
func (r V3Report) SetNumGroupRecords(n uint16) { binary.BigEndian.PutUint16(r.buf[6:8], n) }

// CalculateCRC returns the folded ones' sum, not complemented, of the
// whole report with its checksum field treated as zero. The checksum
// field value is the complement of this sum, which is what UpdateCRC
// writes.
func (r V3Report) CalculateCRC() uint16 {
	var s checksum.Sum
	s.Write(r.buf[0:2])
	s.AddUint16(0)
	s.Write(r.buf[4:])
	return s.Sum16()
}

// UpdateCRC recomputes and writes the checksum field.
func (r V3Report) UpdateCRC() {
	r.SetCRC(0)
	r.SetCRC(^r.CalculateCRC())
}

// ValidateCRC reports whether the stored checksum is consistent with
// the report contents.
func (r V3Report) ValidateCRC() bool {
	var s checksum.Sum
	s.Write(r.buf)
	return checksum.Valid(s.Sum16())
}

// ForEachGroupRecord walks the report's group record list, calling fn
// once per record.
func (r V3Report) ForEachGroupRecord(fn func(GroupRecord) error) error {
	off := 8
	for i := 0; i < int(r.NumGroupRecords()); i++ {
		if off+8 > len(r.buf) {
			return errShortV3
		}
		auxLen := int(r.buf[off+1])
		numSrc := int(binary.BigEndian.Uint16(r.buf[off+2 : off+4]))
		size := 8 + numSrc*4 + auxLen*4
		if off+size > len(r.buf) {
			return errBadRecords
		}
		rec := GroupRecord{buf: r.buf[off : off+size]}
		if err := fn(rec); err != nil {
			return err
		}
		off += size
	}
	return nil
}

// GroupRecord is one IGMPv3 group record within a V3Report
// (RFC 3376 §4.2.12): record type(1), aux data length in 32-bit
// words(1), number of sources(2), multicast address(4), source
// list(4*N), auxiliary data(4*auxLen).
type GroupRecord struct {
	buf []byte
}

// Type returns the record type field.
func (g GroupRecord) Type() RecordType { return RecordType(g.buf[0]) }

// SetType sets the record type field.
func (g GroupRecord) SetType(t RecordType) { g.buf[0] = uint8(t) }

// AuxDataLen returns the auxiliary data length in 32-bit words.
func (g GroupRecord) AuxDataLen() uint8 { return g.buf[1] }

// NumSources returns the number of source addresses in this record.
func (g GroupRecord) NumSources() uint16 { return binary.BigEndian.Uint16(g.buf[2:4]) }

// MulticastAddr returns a pointer to the record's multicast group
// address.
func (g GroupRecord) MulticastAddr() *[4]byte { return (*[4]byte)(g.buf[4:8]) }

// Sources returns the source address list, each 4 bytes.
func (g GroupRecord) Sources() []byte {
	n := int(g.NumSources()) * 4
	return g.buf[8 : 8+n]
}

// AuxData returns the record's auxiliary data, if any.
func (g GroupRecord) AuxData() []byte {
	srcEnd := 8 + int(g.NumSources())*4
	return g.buf[srcEnd : srcEnd+int(g.AuxDataLen())*4]
}
