// Package dot11 implements IEEE 802.11 MAC frame dissection and
// construction: the Frame Control field, Duration, up to 4 addresses,
// Sequence Control, optional QoS Control, and — for management frames —
// an Information Element list, per spec §4.5: "management/control/data
// frames share a Frame Control field (little-endian), Duration, up to
// 4 addresses, Sequence Control, optional QoS control, then body...
// All 802.11 multi-byte fields are little-endian (distinct from
// Ethernet/IP which are big-endian)."
//
// No teacher or pack file implements 802.11; field layout follows the
// IEEE 802.11-2020 standard directly, and the Information Element list
// shares the generic tlv package framework used by lldp and pppoe (a
// 1-byte id + 1-byte length IE header, the simplest of the three shapes
// tlv.Header generalizes over).
package dot11

import "errors"

var errShort = errors.New("dot11: buffer shorter than minimum header")

const sizeFrameControl = 2
const sizeDuration = 2
const addrLen = 6
const sizeSequenceControl = 2
const sizeQoSControl = 2

// Type is the 2-bit Type subfield of Frame Control.
type Type uint8

const (
	TypeManagement Type = 0
	TypeControl    Type = 1
	TypeData       Type = 2
	TypeExtension  Type = 3
)

// Subtype is the 4-bit Subtype subfield of Frame Control, interpreted
// according to Type.
type Subtype uint8

// Common management subtypes.
const (
	SubtypeAssociationRequest    Subtype = 0x0
	SubtypeAssociationResponse   Subtype = 0x1
	SubtypeReassociationRequest  Subtype = 0x2
	SubtypeReassociationResponse Subtype = 0x3
	SubtypeProbeRequest          Subtype = 0x4
	SubtypeProbeResponse         Subtype = 0x5
	SubtypeBeacon                Subtype = 0x8
	SubtypeDisassociation        Subtype = 0xa
	SubtypeAuthentication        Subtype = 0xb
	SubtypeDeauthentication      Subtype = 0xc
	SubtypeAction                Subtype = 0xd
)

// Common data subtypes. QoS subtypes (bit 3 set) carry a QoS Control
// field.
const (
	SubtypeData       Subtype = 0x0
	SubtypeQoSData    Subtype = 0x8
	SubtypeQoSNull    Subtype = 0xc
)

// IsQoS reports whether subtype is one of the QoS data subtypes (IEEE
// 802.11-2020 Table 9-1: bit 3 of the Data-type subtype set).
func (s Subtype) IsQoS() bool { return s&0x8 != 0 }

// InformationElementID is the 1-byte Element ID of a management frame
// Information Element (IEEE 802.11-2020 Table 9-92, abbreviated set).
type InformationElementID uint8

const (
	IESSID             InformationElementID = 0
	IESupportedRates   InformationElementID = 1
	IEDSParameterSet   InformationElementID = 3
	IETIM              InformationElementID = 5
	IEERPInformation   InformationElementID = 42
	IEHTCapabilities   InformationElementID = 45
	IERSN              InformationElementID = 48
	IEExtendedSupportedRates InformationElementID = 50
	IEVendorSpecific   InformationElementID = 221
)
