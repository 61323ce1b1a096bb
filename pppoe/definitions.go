// Package pppoe implements RFC 2516 PPP over Ethernet: the Discovery
// stage's tagged-option negotiation (PADI/PADO/PADR/PADS/PADT) and the
// Session stage's thin wrapper around a ppp.Layer, per spec §4.5
// "PPP / PPPoE: PPP protocol field (big-endian u16) drives encapsulation."
//
// Grounded on the teacher's ethernet package for the common-header shape
// and on the tlv package (shared with lldp) for the Discovery tag list,
// whose 2-byte-type/2-byte-length encoding is a simpler unpacked sibling
// of LLDP's packed type/length word.
package pppoe

import "errors"

var errShort = errors.New("pppoe: buffer shorter than minimum header")

const sizeHeader = 6

// Code is the PPPoE discovery Code field (RFC 2516 §5).
type Code uint8

const (
	CodePADI Code = 0x09 // PPPoE Active Discovery Initiation
	CodePADO Code = 0x07 // PPPoE Active Discovery Offer
	CodePADR Code = 0x19 // PPPoE Active Discovery Request
	CodePADS Code = 0x65 // PPPoE Active Discovery Session-confirmation
	CodePADT Code = 0xa7 // PPPoE Active Discovery Terminate
	CodeSession Code = 0x00
)

func (c Code) String() string {
	switch c {
	case CodePADI:
		return "PADI"
	case CodePADO:
		return "PADO"
	case CodePADR:
		return "PADR"
	case CodePADS:
		return "PADS"
	case CodePADT:
		return "PADT"
	case CodeSession:
		return "Session"
	default:
		return "Unknown"
	}
}

// TagType is the type field of a Discovery-stage tag (RFC 2516 §5.1).
type TagType uint16

const (
	TagEndOfList         TagType = 0x0000
	TagServiceName       TagType = 0x0101
	TagACName            TagType = 0x0102
	TagHostUniq          TagType = 0x0103
	TagACCookie          TagType = 0x0104
	TagVendorSpecific    TagType = 0x0105
	TagRelaySessionID    TagType = 0x0110
	TagServiceNameError  TagType = 0x0201
	TagACSystemError     TagType = 0x0202
	TagGenericError      TagType = 0x0203
)

func (t TagType) String() string {
	switch t {
	case TagEndOfList:
		return "EndOfList"
	case TagServiceName:
		return "ServiceName"
	case TagACName:
		return "ACName"
	case TagHostUniq:
		return "HostUniq"
	case TagACCookie:
		return "ACCookie"
	case TagVendorSpecific:
		return "VendorSpecific"
	case TagRelaySessionID:
		return "RelaySessionID"
	case TagServiceNameError:
		return "ServiceNameError"
	case TagACSystemError:
		return "ACSystemError"
	case TagGenericError:
		return "GenericError"
	default:
		return "Unknown"
	}
}
