// Package ethernet implements IEEE 802.3 Ethernet II frame dissection and
// construction, including 802.1Q VLAN tag detection.
//
// Field layout and EtherType table grounded on the teacher's
// ethernet/definitions.go.
package ethernet

import "strconv"

const sizeHeaderNoVLAN = 14

//go:generate stringer -type=Type -linecomment -output stringers.go .

// Type is the EtherType/Size field of an Ethernet II frame.
type Type uint16

// IsSize reports whether Type is actually the size of an IEEE 802.3
// payload and should not be interpreted as an EtherType.
func (et Type) IsSize() bool { return et <= 1500 }

// Ethernet type values, per IANA's ethernet numbers registry.
const (
	TypeIPv4                Type = 0x0800
	TypeARP                 Type = 0x0806
	TypeWakeOnLAN           Type = 0x0842
	TypeVLAN                Type = 0x8100
	TypeRARP                Type = 0x8035
	TypeAppleTalk           Type = 0x809B
	TypeIPv6                Type = 0x86DD
	TypeEthernetFlowControl Type = 0x8808
	TypeMPLSUnicast         Type = 0x8847
	TypeMPLSMulticast       Type = 0x8848
	TypePPPoEDiscovery      Type = 0x8863
	TypePPPoESession        Type = 0x8864
	TypeJumboFrames         Type = 0x8870
	TypeLLDP                Type = 0x88CC
	TypeServiceVLAN         Type = 0x88a8
)

// AppendAddr appends the colon-separated hex text form of a MAC address.
func AppendAddr(dst []byte, hwAddr [6]byte) []byte {
	for i, b := range hwAddr {
		if i != 0 {
			dst = append(dst, ':')
		}
		if b < 16 {
			dst = append(dst, '0')
		}
		dst = strconv.AppendUint(dst, uint64(b), 16)
	}
	return dst
}

// BroadcastAddr returns the all-0xff broadcast MAC address.
func BroadcastAddr() [6]byte { return [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff} }
