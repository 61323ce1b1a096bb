package ospf

import (
	"encoding/binary"

	"github.com/soypat/packetview/checksum"
)

// NewFrame returns a Frame over buf. An error is returned if buf is
// shorter than the 24-byte common header.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < sizeHeader {
		return Frame{}, errShort
	}
	return Frame{buf: buf}, nil
}

// Frame provides field accessors over the raw bytes of an OSPFv2
// common packet header (RFC 2328 §A.3.1): version(1), type(1),
// length(2), router ID(4), area ID(4), checksum(2), auth type(2),
// auth data(8).
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice the Frame was created over.
func (frm Frame) RawData() []byte { return frm.buf }

// Version returns the OSPF version field. Only version 2 is dissected.
func (frm Frame) Version() uint8 { return frm.buf[0] }

// SetVersion sets the OSPF version field.
func (frm Frame) SetVersion(v uint8) { frm.buf[0] = v }

// Type returns the packet type field.
func (frm Frame) Type() Type { return Type(frm.buf[1]) }

// SetType sets the packet type field.
func (frm Frame) SetType(t Type) { frm.buf[1] = uint8(t) }

// PacketLength returns the declared total packet length field,
// including this header.
func (frm Frame) PacketLength() uint16 { return binary.BigEndian.Uint16(frm.buf[2:4]) }

// SetPacketLength sets the declared total packet length field.
func (frm Frame) SetPacketLength(n uint16) { binary.BigEndian.PutUint16(frm.buf[2:4], n) }

// RouterID returns a pointer to the originating router's ID, encoded
// as an IPv4-shaped 4-byte value per convention.
func (frm Frame) RouterID() *[4]byte { return (*[4]byte)(frm.buf[4:8]) }

// AreaID returns a pointer to the area ID field.
func (frm Frame) AreaID() *[4]byte { return (*[4]byte)(frm.buf[8:12]) }

// CRC returns the checksum field.
func (frm Frame) CRC() uint16 { return binary.BigEndian.Uint16(frm.buf[12:14]) }

// SetCRC sets the checksum field.
func (frm Frame) SetCRC(crc uint16) { binary.BigEndian.PutUint16(frm.buf[12:14], crc) }

// AuthType returns the authentication type field.
func (frm Frame) AuthType() uint16 { return binary.BigEndian.Uint16(frm.buf[14:16]) }

// SetAuthType sets the authentication type field.
func (frm Frame) SetAuthType(t uint16) { binary.BigEndian.PutUint16(frm.buf[14:16], t) }

// AuthData returns the 64-bit authentication data field, aliasing the
// backing buffer.
func (frm Frame) AuthData() []byte { return frm.buf[16:24] }

// Payload returns the packet body following the 24-byte common
// header, sized to the declared PacketLength.
func (frm Frame) Payload() []byte {
	n := int(frm.PacketLength())
	if n < sizeHeader || n > len(frm.buf) {
		n = len(frm.buf)
	}
	return frm.buf[sizeHeader:n]
}

// ClearHeader zeros out the common header bytes.
func (frm Frame) ClearHeader() {
	for i := range frm.buf[:sizeHeader] {
		frm.buf[i] = 0
	}
}

// ValidateSize checks the frame's declared length against the actual
// buffer length and that Version is 2.
func (frm Frame) ValidateSize() error {
	if len(frm.buf) < sizeHeader {
		return errShort
	}
	if frm.Version() != 2 {
		return errBadVersion
	}
	n := int(frm.PacketLength())
	if n < sizeHeader {
		return errBadLength
	}
	if n > len(frm.buf) {
		return errTooShort
	}
	return nil
}

// CalculateCRC returns the folded ones' sum, not complemented, that the
// OSPF checksum (RFC 2328 §D.4.3) is built from: the whole packet with
// its checksum field treated as zero, excluding the 64-bit
// authentication field (AuthType itself is included). The checksum
// field value is the complement of this sum, which is what UpdateCRC
// writes.
func (frm Frame) CalculateCRC() uint16 {
	var s checksum.Sum
	s.Write(frm.buf[0:12])
	s.AddUint16(0) // checksum field itself, zeroed
	s.Write(frm.buf[14:16])
	s.Write(frm.buf[24:])
	return s.Sum16()
}

// UpdateCRC recomputes and writes the checksum field.
func (frm Frame) UpdateCRC() {
	frm.SetCRC(0)
	frm.SetCRC(^frm.CalculateCRC())
}

// ValidateCRC reports whether the stored checksum is consistent with
// the packet contents (authentication data excluded, as computed).
func (frm Frame) ValidateCRC() bool {
	var s checksum.Sum
	s.Write(frm.buf[0:14])
	s.Write(frm.buf[14:16])
	s.Write(frm.buf[24:])
	return checksum.Valid(s.Sum16())
}

// Hello narrows Frame to a Hello packet body view (valid when
// Type() == TypeHello).
func (frm Frame) Hello() Hello { return Hello{buf: frm.Payload()} }

// Hello is the OSPFv2 Hello packet body (RFC 2328 §A.3.2): network
// mask(4), hello interval(2), options(1), router priority(1), router
// dead interval(4), designated router(4), backup designated router(4),
// followed by a list of 4-byte neighbor router IDs.
type Hello struct {
	buf []byte
}

// NetworkMask returns a pointer to the Hello's network mask field.
func (h Hello) NetworkMask() *[4]byte { return (*[4]byte)(h.buf[0:4]) }

// HelloInterval returns the hello interval field, in seconds.
func (h Hello) HelloInterval() uint16 { return binary.BigEndian.Uint16(h.buf[4:6]) }

// Options returns the options byte (RFC 2328 §A.2).
func (h Hello) Options() uint8 { return h.buf[6] }

// RouterPriority returns the router priority field.
func (h Hello) RouterPriority() uint8 { return h.buf[7] }

// RouterDeadInterval returns the router dead interval field, in
// seconds.
func (h Hello) RouterDeadInterval() uint32 { return binary.BigEndian.Uint32(h.buf[8:12]) }

// DesignatedRouter returns a pointer to the designated router field.
func (h Hello) DesignatedRouter() *[4]byte { return (*[4]byte)(h.buf[12:16]) }

// BackupDesignatedRouter returns a pointer to the backup designated
// router field.
func (h Hello) BackupDesignatedRouter() *[4]byte { return (*[4]byte)(h.buf[16:20]) }

// Neighbors returns the trailing list of 4-byte neighbor router IDs.
func (h Hello) Neighbors() []byte { return h.buf[20:] }

// NumNeighbors returns the number of whole 4-byte neighbor entries
// present.
func (h Hello) NumNeighbors() int { return len(h.Neighbors()) / 4 }

// Neighbor returns a pointer to the i'th neighbor router ID.
func (h Hello) Neighbor(i int) *[4]byte { return (*[4]byte)(h.buf[20+4*i : 24+4*i]) }

// DatabaseDescription narrows Frame to a Database Description packet
// body view (valid when Type() == TypeDatabaseDescription).
func (frm Frame) DatabaseDescription() DatabaseDescription {
	return DatabaseDescription{buf: frm.Payload()}
}

// DatabaseDescription is the OSPFv2 Database Description packet body
// (RFC 2328 §A.3.3): interface MTU(2), options(1), flags(1, I/M/MS
// bits), DD sequence number(4), followed by a list of 20-byte LSA
// headers describing the originator's link-state database.
type DatabaseDescription struct {
	buf []byte
}

// InterfaceMTU returns the interface MTU field.
func (d DatabaseDescription) InterfaceMTU() uint16 { return binary.BigEndian.Uint16(d.buf[0:2]) }

// Options returns the options byte.
func (d DatabaseDescription) Options() uint8 { return d.buf[2] }

// DDFlags is the I(init)/M(more)/MS(master) flag byte of a Database
// Description packet.
type DDFlags uint8

const (
	DDFlagMaster DDFlags = 1 << iota
	DDFlagMore
	DDFlagInit
)

// Flags returns the I/M/MS flag bits.
func (d DatabaseDescription) Flags() DDFlags { return DDFlags(d.buf[3] & 0x07) }

// SeqNumber returns the DD sequence number field.
func (d DatabaseDescription) SeqNumber() uint32 { return binary.BigEndian.Uint32(d.buf[4:8]) }

// ForEachLSAHeader walks the trailing list of 20-byte LSA headers.
func (d DatabaseDescription) ForEachLSAHeader(fn func(LSAHeader) error) error {
	region := d.buf[8:]
	for off := 0; off+sizeLSAHeader <= len(region); off += sizeLSAHeader {
		if err := fn(LSAHeader{buf: region[off : off+sizeLSAHeader]}); err != nil {
			return err
		}
	}
	return nil
}

const sizeLSAHeader = 20

// LSAHeader is the 20-byte header common to every Link State
// Advertisement (RFC 2328 §A.4.1): age(2), options(1), type(1), link
// state ID(4), advertising router(4), sequence number(4), checksum(2),
// length(2).
type LSAHeader struct {
	buf []byte
}

// Age returns the LS age field, in seconds.
func (l LSAHeader) Age() uint16 { return binary.BigEndian.Uint16(l.buf[0:2]) }

// Options returns the options byte.
func (l LSAHeader) Options() uint8 { return l.buf[2] }

// Type returns the LS type field.
func (l LSAHeader) Type() LSType { return LSType(l.buf[3]) }

// LinkStateID returns a pointer to the link state ID field.
func (l LSAHeader) LinkStateID() *[4]byte { return (*[4]byte)(l.buf[4:8]) }

// AdvertisingRouter returns a pointer to the advertising router field.
func (l LSAHeader) AdvertisingRouter() *[4]byte { return (*[4]byte)(l.buf[8:12]) }

// SeqNumber returns the LS sequence number field.
func (l LSAHeader) SeqNumber() uint32 { return binary.BigEndian.Uint32(l.buf[12:16]) }

// CRC returns the LS checksum field.
func (l LSAHeader) CRC() uint16 { return binary.BigEndian.Uint16(l.buf[16:18]) }

// Length returns the LS length field: the size, in bytes, of the LSA
// including this 20-byte header.
func (l LSAHeader) Length() uint16 { return binary.BigEndian.Uint16(l.buf[18:20]) }

// RouterLSA narrows Frame's payload to a Router-LSA body view, given
// the bytes following an LSAHeader of LSTypeRouter.
type RouterLSA struct {
	buf []byte
}

// NewRouterLSA returns a RouterLSA view over buf, the bytes following
// a Router-LSA's 20-byte LSAHeader.
func NewRouterLSA(buf []byte) RouterLSA { return RouterLSA{buf: buf} }

// RouterLSAFlags is the V/E/B bit flags of a Router-LSA (RFC 2328
// §A.4.2), packed into the low byte of the flags/0 word.
type RouterLSAFlags uint8

const (
	RouterLSAFlagBorder  RouterLSAFlags = 1 << iota // B: area border router
	RouterLSAFlagExternal                           // E: AS boundary router
	RouterLSAFlagVirtual                            // V: endpoint of a virtual link
)

// Flags returns the V/E/B flag bits.
func (r RouterLSA) Flags() RouterLSAFlags { return RouterLSAFlags(r.buf[1]) }

// NumLinks returns the declared number of router links.
func (r RouterLSA) NumLinks() uint16 { return binary.BigEndian.Uint16(r.buf[2:4]) }

const sizeRouterLink = 12

// ForEachLink walks the router's link list, calling fn once per
// 12-byte link record.
func (r RouterLSA) ForEachLink(fn func(RouterLink) error) error {
	region := r.buf[4:]
	for off := 0; off+sizeRouterLink <= len(region); off += sizeRouterLink {
		if err := fn(RouterLink{buf: region[off : off+sizeRouterLink]}); err != nil {
			return err
		}
	}
	return nil
}

// RouterLink is one Router-LSA link record (RFC 2328 §A.4.2): link ID
// (4), link data(4), type(1), number of TOS metrics(1), base
// (TOS-0) metric(2). Additional per-TOS metric entries, if declared,
// follow but are not decoded (only the TOS-0 metric is in scope).
type RouterLink struct {
	buf []byte
}

// LinkID returns a pointer to the link ID field.
func (l RouterLink) LinkID() *[4]byte { return (*[4]byte)(l.buf[0:4]) }

// LinkData returns a pointer to the link data field.
func (l RouterLink) LinkData() *[4]byte { return (*[4]byte)(l.buf[4:8]) }

// Type returns the link type field.
func (l RouterLink) Type() RouterLinkType { return RouterLinkType(l.buf[8]) }

// NumTOS returns the declared number of additional TOS metrics beyond
// the mandatory TOS-0 entry.
func (l RouterLink) NumTOS() uint8 { return l.buf[9] }

// Metric returns the TOS-0 (default) metric field.
func (l RouterLink) Metric() uint16 { return binary.BigEndian.Uint16(l.buf[10:12]) }

// ASExternalLSA narrows Frame's payload to an AS-External-LSA body
// view, given the bytes following an LSAHeader of LSTypeASExternal.
type ASExternalLSA struct {
	buf []byte
}

// NewASExternalLSA returns an ASExternalLSA view over buf, the bytes
// following an AS-External-LSA's 20-byte LSAHeader.
func NewASExternalLSA(buf []byte) ASExternalLSA { return ASExternalLSA{buf: buf} }

// NetworkMask returns a pointer to the LSA's network mask field.
func (a ASExternalLSA) NetworkMask() *[4]byte { return (*[4]byte)(a.buf[0:4]) }

// TOSWord is the 32-bit E-bit/TOS/metric word of an AS-External-LSA's
// metric entry (RFC 2328 §A.4.5): the top bit is the E (external
// metric type) bit, the remaining bits of the top byte are reserved,
// and the low 24 bits are the metric.
type TOSWord uint32

// External reports the E bit: true means Type 2 (non-comparable)
// external metric, false means Type 1.
func (w TOSWord) External() bool { return w&0x80000000 != 0 }

// Metric returns the low 24-bit metric field.
func (w TOSWord) Metric() uint32 { return uint32(w) & 0x00ffffff }

const sizeExternalMetric = 12

// ExternalMetric is one AS-External-LSA metric entry (RFC 2328
// §A.4.5): the E-bit/TOS/metric word(4), forwarding address(4),
// external route tag(4).
type ExternalMetric struct {
	buf []byte
}

// TOS returns the E-bit/TOS/metric word.
func (e ExternalMetric) TOS() TOSWord { return TOSWord(binary.BigEndian.Uint32(e.buf[0:4])) }

// ForwardingAddress returns a pointer to the forwarding address field.
func (e ExternalMetric) ForwardingAddress() *[4]byte { return (*[4]byte)(e.buf[4:8]) }

// ExternalRouteTag returns the external route tag field.
func (e ExternalMetric) ExternalRouteTag() uint32 { return binary.BigEndian.Uint32(e.buf[8:12]) }

// ForEachMetric walks the LSA's metric entry list, calling fn once per
// 12-byte entry (one mandatory TOS-0 entry, plus one per additional
// TOS declared elsewhere in the advertisement).
func (a ASExternalLSA) ForEachMetric(fn func(ExternalMetric) error) error {
	region := a.buf[4:]
	for off := 0; off+sizeExternalMetric <= len(region); off += sizeExternalMetric {
		if err := fn(ExternalMetric{buf: region[off : off+sizeExternalMetric]}); err != nil {
			return err
		}
	}
	return nil
}
