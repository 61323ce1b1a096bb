// Package ipv6 implements IPv6 (RFC 8200) fixed header dissection and
// construction, including the TCP/UDP/ICMPv6 pseudo-header writer.
//
// Grounded on the teacher's ipv6/frame.go. Extension header chains
// (Hop-by-Hop, Routing, Fragment, Destination Options) are out of
// scope: the teacher's own ipv6 package does not walk them either, and
// the spec's dissection model treats NextHeader as a direct dispatch
// to the upper-layer protocol.
package ipv6

const sizeHeader = 40

// ToS is the IPv6 Traffic Class byte (DiffServ+ECN, same layout as
// ipv4.ToS).
type ToS uint8

// DS returns the 6-bit Differentiated Services Code Point.
func (tos ToS) DS() uint8 { return uint8(tos) >> 2 }

// ECN returns the 2-bit Explicit Congestion Notification field.
func (tos ToS) ECN() uint8 { return uint8(tos) & 0b11 }
