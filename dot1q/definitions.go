// Package dot1q implements IEEE 802.1Q VLAN tag dissection and
// construction: the 4-byte tag control information plus inner EtherType
// that Ethernet (or another 802.1Q tag, for QinQ stacking) defers to
// when its EtherType/Size field reads 0x8100 or 0x88a8.
//
// Field layout grounded on the teacher's ethernet/frame.go VLANTag
// accessors (TCI bit layout), pulled out into its own recursive layer
// per the spec's module boundary.
package dot1q

import "github.com/soypat/packetview/ethernet"

// Tag holds the priority (PCP), drop-eligible indicator (DEI) and VLAN
// ID bits of an 802.1Q tag control information field.
type Tag uint16

// DropEligibleIndicator reports whether the DEI bit is set.
func (t Tag) DropEligibleIndicator() bool { return t&(1<<12) != 0 }

// PriorityCodePoint is the 3-bit 802.1p class-of-service field.
func (t Tag) PriorityCodePoint() uint8 { return uint8(t >> 13) }

// VLANIdentifier is the 12-bit field identifying which VLAN the frame
// belongs to. 0 and 4095 are reserved.
func (t Tag) VLANIdentifier() uint16 { return uint16(t) & 0x0fff }

// NewTag packs a PCP, DEI bit and VLAN ID into a Tag.
func NewTag(pcp uint8, dei bool, vid uint16) Tag {
	v := Tag(vid&0x0fff) | Tag(pcp&0x7)<<13
	if dei {
		v |= 1 << 12
	}
	return v
}

// InnerType re-exports ethernet.Type so callers constructing a dot1q
// Frame don't need to import ethernet directly for the common case.
type InnerType = ethernet.Type
