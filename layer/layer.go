// Package layer defines the small capability set every protocol layer in
// packetview implements, replacing the deep Packet -> TransportPacket ->
// TcpPacket inheritance chains common in object-oriented packet libraries
// with a single interface plus a tagged-union payload.
package layer

import (
	"errors"

	"github.com/soypat/packetview/bslice"
)

// Sentinel error kinds, one per spec failure mode. Concrete layers return
// these directly or wrapped with fmt.Errorf("...: %w", ...) for context,
// matching the teacher's package-level sentinel-error convention (see e.g.
// ipv4's errBadTL/errShort/errBadIHL).
var (
	// ErrShortBuffer is wrapped by packet.ParseLinkLayer when the
	// outermost link-layer constructor rejects the buffer; the protocol
	// packages' own constructors return their package-level errors.
	ErrShortBuffer = errors.New("layer: buffer too short for header")
	// ErrInvariantViolated is returned when a declared inner length
	// exceeds the remaining buffer.
	ErrInvariantViolated = errors.New("layer: declared length exceeds buffer")
	// ErrInvalidAddress is returned by address setters given a
	// wrong-length MAC/IP value.
	ErrInvalidAddress = errors.New("layer: invalid address length")
	// ErrValueTooLarge is returned when an option/TLV value would not
	// fit in its length field's range.
	ErrValueTooLarge = errors.New("layer: value exceeds field range")
	// ErrNotImplemented marks a deliberately unimplemented code path.
	ErrNotImplemented = errors.New("layer: not implemented")
)

// Kind identifies the concrete protocol of a Layer without requiring a
// type switch over every possible concrete type.
type Kind uint16

const (
	KindInvalid Kind = iota
	KindRaw          // undissected trailing bytes; terminal payload kind
	KindEthernet
	KindDot1Q
	KindARP
	KindIPv4
	KindIPv6
	KindTCP
	KindUDP
	KindICMPv4
	KindICMPv6
	KindIGMP
	KindOSPF
	KindLLDP
	KindPPP
	KindPPPoEDiscovery
	KindPPPoESession
	KindWakeOnLAN
	KindDot11
	KindDot11Radiotap
	KindDot11PPI
	KindLinuxSLL
	KindDRDA
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "Raw"
	case KindEthernet:
		return "Ethernet"
	case KindDot1Q:
		return "802.1Q"
	case KindARP:
		return "ARP"
	case KindIPv4:
		return "IPv4"
	case KindIPv6:
		return "IPv6"
	case KindTCP:
		return "TCP"
	case KindUDP:
		return "UDP"
	case KindICMPv4:
		return "ICMPv4"
	case KindICMPv6:
		return "ICMPv6"
	case KindIGMP:
		return "IGMP"
	case KindOSPF:
		return "OSPF"
	case KindLLDP:
		return "LLDP"
	case KindPPP:
		return "PPP"
	case KindPPPoEDiscovery:
		return "PPPoEDiscovery"
	case KindPPPoESession:
		return "PPPoESession"
	case KindWakeOnLAN:
		return "WakeOnLAN"
	case KindDot11:
		return "802.11"
	case KindDot11Radiotap:
		return "radiotap"
	case KindDot11PPI:
		return "PPI"
	case KindLinuxSLL:
		return "LinuxSLL"
	case KindDRDA:
		return "DRDA"
	default:
		return "Invalid"
	}
}

// PayloadTag discriminates the three shapes a Layer's payload slot can
// take: a parsed child layer, terminal undissected bytes, or nothing.
type PayloadTag uint8

const (
	PayloadNone PayloadTag = iota
	PayloadChild
	PayloadBytes
)

// Payload is the tagged union spec §3/§6 calls for: "(a) a child Layer,
// (b) a terminal ByteSlice of bytes, (c) empty."
type Payload struct {
	Tag   PayloadTag
	Child Layer
	Bytes bslice.Slice
}

// Layer is the capability set common to every protocol layer: access to
// its header window, its encapsulated payload, and the ability to
// recompute any length/checksum fields the layer owns. Concrete layers
// (ethernet.Layer, ipv4.Layer, tcp.Layer, ...) embed a Base and add
// protocol-specific field accessors over the same header Slice.
type Layer interface {
	// Kind reports the concrete protocol of this layer.
	Kind() Kind
	// Header returns the Slice spanning this layer's header (including
	// any variable-length options/extension data it owns).
	Header() bslice.Slice
	// Payload returns this layer's payload slot.
	Payload() Payload
	// Bytes returns the serialized byte image of this layer and
	// everything it encapsulates: Header().Actual() followed by the
	// payload's bytes, recursively.
	Bytes() []byte
	// UpdateCalculatedValues recomputes this layer's own length and
	// checksum fields (not its children's); callers walk the tree
	// innermost-out to update a whole packet.
	UpdateCalculatedValues() error
}

// Base is the common state every concrete Layer embeds: its header window
// and its payload slot. It is not itself a complete Layer (it has no Kind
// and no UpdateCalculatedValues) — protocol packages embed Base and add
// those.
type Base struct {
	header  bslice.Slice
	payload Payload
}

// NewBase returns a Base over the given header Slice with no payload set.
func NewBase(header bslice.Slice) Base {
	return Base{header: header}
}

// Header returns the layer's header Slice.
func (b Base) Header() bslice.Slice { return b.header }

// SetHeader rebinds the layer's header Slice. Used by layers whose TLV
// or information-element list can resize a value and reallocate the
// backing buffer (see tlv.Resize): the caller resizes a local copy of
// Header(), then calls SetHeader to commit it.
func (b *Base) SetHeader(h bslice.Slice) { b.header = h }

// Payload returns the layer's current payload slot.
func (b Base) Payload() Payload { return b.payload }

// SetChild sets the payload slot to a parsed child layer.
func (b *Base) SetChild(child Layer) { b.payload = Payload{Tag: PayloadChild, Child: child} }

// SetBytes sets the payload slot to terminal undissected bytes.
func (b *Base) SetBytes(s bslice.Slice) { b.payload = Payload{Tag: PayloadBytes, Bytes: s} }

// ClearPayload empties the payload slot.
func (b *Base) ClearPayload() { b.payload = Payload{} }

// Bytes returns Header().Actual() followed by the payload's bytes,
// recursively walking child layers. Because every layer aliases the same
// root buffer and children are laid out immediately after their parent's
// header, this is simply the root buffer from this layer's header offset
// through the end of the deepest descendant's window — but it is computed
// structurally (not by assuming contiguity) so it stays correct after a
// TLV resize that reallocated a descendant's buffer onto a different
// backing array.
func Bytes(l Layer) []byte {
	out := append([]byte(nil), l.Header().Actual()...)
	switch p := l.Payload(); p.Tag {
	case PayloadChild:
		out = append(out, Bytes(p.Child)...)
	case PayloadBytes:
		out = append(out, p.Bytes.Actual()...)
	}
	return out
}
