// Package ipv4 implements IPv4 (RFC 791) header dissection and
// construction, including header checksum computation and the
// TCP/UDP pseudo-header writers transport-layer checksums need.
//
// Grounded on the teacher's ipv4/frame.go and ipv4/definitions.go.
package ipv4

const sizeHeader = 20

// ToS is the Type of Service / DiffServ+ECN byte.
type ToS uint8

// DS returns the 6-bit Differentiated Services Code Point.
func (tos ToS) DS() uint8 { return uint8(tos) >> 2 }

// ECN returns the 2-bit Explicit Congestion Notification field.
func (tos ToS) ECN() uint8 { return uint8(tos) & 0b11 }

// Flags holds the 3-bit flags plus 13-bit fragment offset field.
type Flags uint16

// DontFragment reports the DF bit.
func (f Flags) DontFragment() bool { return f&0x4000 != 0 }

// MoreFragments reports the MF bit; cleared on the last fragment (or an
// unfragmented datagram).
func (f Flags) MoreFragments() bool { return f&0x2000 != 0 }

// FragmentOffset is the 13-bit offset, in 8-byte units, of this
// fragment's data relative to the original datagram.
func (f Flags) FragmentOffset() uint16 { return uint16(f) & 0x1fff }

// NewFlags packs DF/MF bits and a fragment offset (in 8-byte units)
// into a Flags value.
func NewFlags(df, mf bool, fragOffset uint16) Flags {
	var v Flags
	if df {
		v |= 0x4000
	}
	if mf {
		v |= 0x2000
	}
	v |= Flags(fragOffset) & 0x1fff
	return v
}

// Proto is an IP protocol number (IANA "Assigned Internet Protocol
// Numbers"), identifying the payload carried after the IPv4/IPv6
// header. Trimmed to the protocols this module dissects; unlisted
// values still round-trip through SetProtocol/Protocol.
type Proto uint8

const (
	ProtoICMP     Proto = 1
	ProtoIGMP     Proto = 2
	ProtoTCP      Proto = 6
	ProtoUDP      Proto = 17
	ProtoIPv6     Proto = 41 // IPv6 encapsulated in IPv4, RFC 2003
	ProtoGRE      Proto = 47
	ProtoIPv6ICMP Proto = 58 // only valid as an IPv6 next-header value
	ProtoOSPFIGP  Proto = 89
)

func (p Proto) String() string {
	switch p {
	case ProtoICMP:
		return "ICMP"
	case ProtoIGMP:
		return "IGMP"
	case ProtoTCP:
		return "TCP"
	case ProtoUDP:
		return "UDP"
	case ProtoIPv6:
		return "IPv6"
	case ProtoGRE:
		return "GRE"
	case ProtoOSPFIGP:
		return "OSPFIGP"
	case ProtoIPv6ICMP:
		return "IPv6-ICMP"
	default:
		return "unknown"
	}
}
