// Package lldp implements IEEE 802.1AB Link Layer Discovery Protocol
// TLV dissection and construction: the packed 7-bit-type/9-bit-length
// TLV header, the mandatory ChassisID/PortID/TTL/EndOfLLDPDU TLVs, and
// the resizable ManagementAddress/OrganizationSpecific TLVs.
//
// No teacher or pack file implements LLDP directly; the TLV iteration
// shares the generic tlv package framework grounded on
// other_examples' CDP TLV encode/decode (CDP is IEEE-standardized
// LLDP's Cisco-proprietary sibling, same type-length-value shape).
package lldp

import "errors"

var (
	// errShort is returned when a TLV's declared length runs past the
	// end of the LLDPDU buffer.
	errShort = errors.New("lldp: TLV length exceeds buffer")
)

// TLVType is the 7-bit TLV type field (IEEE 802.1AB §8).
type TLVType uint8

const (
	TLVEndOfLLDPDU         TLVType = 0
	TLVChassisID           TLVType = 1
	TLVPortID              TLVType = 2
	TLVTimeToLive          TLVType = 3
	TLVPortDescription     TLVType = 4
	TLVSystemName          TLVType = 5
	TLVSystemDescription   TLVType = 6
	TLVSystemCapabilities  TLVType = 7
	TLVManagementAddress   TLVType = 8
	TLVOrganizationSpecific TLVType = 127
)

func (t TLVType) String() string {
	switch t {
	case TLVEndOfLLDPDU:
		return "EndOfLLDPDU"
	case TLVChassisID:
		return "ChassisID"
	case TLVPortID:
		return "PortID"
	case TLVTimeToLive:
		return "TimeToLive"
	case TLVPortDescription:
		return "PortDescription"
	case TLVSystemName:
		return "SystemName"
	case TLVSystemDescription:
		return "SystemDescription"
	case TLVSystemCapabilities:
		return "SystemCapabilities"
	case TLVManagementAddress:
		return "ManagementAddress"
	case TLVOrganizationSpecific:
		return "OrganizationSpecific"
	default:
		return "Unknown"
	}
}

// ChassisIDSubtype is the subtype byte of a ChassisID TLV value
// (IEEE 802.1AB §8.5.2).
type ChassisIDSubtype uint8

const (
	ChassisIDChassisComponent ChassisIDSubtype = 1
	ChassisIDInterfaceAlias   ChassisIDSubtype = 2
	ChassisIDPortComponent    ChassisIDSubtype = 3
	ChassisIDMACAddress       ChassisIDSubtype = 4
	ChassisIDNetworkAddress   ChassisIDSubtype = 5
	ChassisIDInterfaceName    ChassisIDSubtype = 6
	ChassisIDLocal            ChassisIDSubtype = 7
)

// PortIDSubtype is the subtype byte of a PortID TLV value
// (IEEE 802.1AB §8.5.3).
type PortIDSubtype uint8

const (
	PortIDInterfaceAlias  PortIDSubtype = 1
	PortIDPortComponent   PortIDSubtype = 2
	PortIDMACAddress      PortIDSubtype = 3
	PortIDNetworkAddress  PortIDSubtype = 4
	PortIDInterfaceName   PortIDSubtype = 5
	PortIDAgentCircuitID  PortIDSubtype = 6
	PortIDLocal           PortIDSubtype = 7
)

// SystemCapabilities is the bitmask of a SystemCapabilities TLV's
// capability fields (IEEE 802.1AB §8.5.8).
type SystemCapabilities uint16

const (
	CapOther       SystemCapabilities = 1 << 0
	CapRepeater    SystemCapabilities = 1 << 1
	CapBridge      SystemCapabilities = 1 << 2
	CapWLANAP      SystemCapabilities = 1 << 3
	CapRouter      SystemCapabilities = 1 << 4
	CapTelephone   SystemCapabilities = 1 << 5
	CapDOCSIS      SystemCapabilities = 1 << 6
	CapStationOnly SystemCapabilities = 1 << 7
)
