package lldp

import (
	"encoding/binary"

	"github.com/soypat/packetview/layer"
	"github.com/soypat/packetview/tlv"
)

// tlvHeader implements tlv.Resizer for LLDP's packed 16-bit
// 7-bit-type/9-bit-length TLV header.
type tlvHeader struct{}

func (tlvHeader) Peek(region []byte, off int) (kind uint16, size, headerSize int, terminal bool, err error) {
	if off+2 > len(region) {
		return 0, 0, 0, false, tlv.ErrShortBuffer
	}
	word := binary.BigEndian.Uint16(region[off : off+2])
	typ := (word >> 9) & 0x7f
	length := int(word & 0x1ff)
	return typ, 2 + length, 2, typ == uint16(TLVEndOfLLDPDU), nil
}

func (tlvHeader) HeaderSize() int { return 2 }

func (tlvHeader) WriteHeader(dst []byte, kind uint16, valueLen int) error {
	if valueLen > 0x1ff {
		return layer.ErrValueTooLarge
	}
	word := (kind&0x7f)<<9 | uint16(valueLen)&0x1ff
	binary.BigEndian.PutUint16(dst, word)
	return nil
}

// NewFrame returns a Frame over buf, the raw bytes of an LLDPDU (an
// ordered sequence of TLVs terminating in TLVEndOfLLDPDU).
func NewFrame(buf []byte) (Frame, error) { return Frame{buf: buf}, nil }

// Frame provides TLV iteration over an LLDPDU.
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice the Frame was created over.
func (frm Frame) RawData() []byte { return frm.buf }

// ForEachTLV walks the LLDPDU's TLV list, calling fn once per TLV. It
// stops at the first TLVEndOfLLDPDU (inclusive) or at the end of the
// buffer, whichever comes first.
func (frm Frame) ForEachTLV(fn func(typ TLVType, value []byte) error) error {
	return tlv.Iterate(frm.buf, tlvHeader{}, func(u tlv.Unit) error {
		return fn(TLVType(u.Kind), u.Value)
	})
}

// Find returns the value of the first TLV of the given type, or
// (nil, false) if none is present.
func (frm Frame) Find(typ TLVType) (value []byte, ok bool) {
	frm.ForEachTLV(func(t TLVType, v []byte) error {
		if t == typ && !ok {
			value, ok = v, true
		}
		return nil
	})
	return value, ok
}

// ChassisID decodes a ChassisID TLV value: subtype(1) followed by the
// chassis identifier.
func ChassisID(value []byte) (subtype ChassisIDSubtype, id []byte) {
	return ChassisIDSubtype(value[0]), value[1:]
}

// PortID decodes a PortID TLV value: subtype(1) followed by the port
// identifier.
func PortID(value []byte) (subtype PortIDSubtype, id []byte) {
	return PortIDSubtype(value[0]), value[1:]
}

// TimeToLive decodes a TimeToLive TLV value, in seconds.
func TimeToLive(value []byte) uint16 { return binary.BigEndian.Uint16(value[0:2]) }

// Capabilities decodes a SystemCapabilities TLV value: the system's
// declared capabilities followed by its enabled subset.
func Capabilities(value []byte) (capable, enabled SystemCapabilities) {
	return SystemCapabilities(binary.BigEndian.Uint16(value[0:2])), SystemCapabilities(binary.BigEndian.Uint16(value[2:4]))
}

// ManagementAddress decodes a ManagementAddress TLV value (IEEE
// 802.1AB §8.5.9): address-string-length(1), address subtype(1),
// address(N), interface-numbering subtype(1), interface number(4),
// OID string length(1), OID(M).
type ManagementAddress struct {
	AddrSubtype   uint8
	Addr          []byte
	IfSubtype     uint8
	IfNumber      uint32
	OID           []byte
}

// DecodeManagementAddress parses a ManagementAddress TLV value.
func DecodeManagementAddress(value []byte) ManagementAddress {
	addrLen := int(value[0])
	addrSubtype := value[1]
	addr := value[2 : 1+addrLen]
	rest := value[1+addrLen:]
	ifSubtype := rest[0]
	ifNumber := binary.BigEndian.Uint32(rest[1:5])
	oidLen := int(rest[5])
	oid := rest[6 : 6+oidLen]
	return ManagementAddress{
		AddrSubtype: addrSubtype,
		Addr:        addr,
		IfSubtype:   ifSubtype,
		IfNumber:    ifNumber,
		OID:         oid,
	}
}

// EncodeManagementAddress builds a ManagementAddress TLV value ready
// to pass to [tlv.Resize] (via Layer.ResizeTLV).
func EncodeManagementAddress(m ManagementAddress) []byte {
	addrLen := 1 + len(m.Addr)
	out := make([]byte, 1+addrLen+1+4+1+len(m.OID))
	i := 0
	out[i] = byte(addrLen)
	i++
	out[i] = m.AddrSubtype
	i++
	i += copy(out[i:], m.Addr)
	out[i] = m.IfSubtype
	i++
	binary.BigEndian.PutUint32(out[i:], m.IfNumber)
	i += 4
	out[i] = byte(len(m.OID))
	i++
	copy(out[i:], m.OID)
	return out
}

// OrganizationSpecific decodes an OrganizationSpecific TLV value (IEEE
// 802.1AB §8.5.11): organizationally unique identifier(3), subtype(1),
// followed by the organization-defined info string.
func OrganizationSpecific(value []byte) (oui [3]byte, subtype uint8, info []byte) {
	copy(oui[:], value[0:3])
	return oui, value[3], value[4:]
}

// EncodeOrganizationSpecific builds an OrganizationSpecific TLV value
// ready to pass to [tlv.Resize] (via Layer.ResizeTLV).
func EncodeOrganizationSpecific(oui [3]byte, subtype uint8, info []byte) []byte {
	out := make([]byte, 4+len(info))
	copy(out[0:3], oui[:])
	out[3] = subtype
	copy(out[4:], info)
	return out
}
