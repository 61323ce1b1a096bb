// Package checksum implements the 16-bit ones'-complement Internet
// checksum (RFC 791/1071) shared by IPv4, TCP, UDP, ICMP and IGMP, and the
// pseudo-header builders used by transport-layer checksums.
//
// The zero value of [Sum] is ready to use.
package checksum

import "encoding/binary"

// Sum accumulates a running ones'-complement checksum. It mirrors the
// teacher's CRC791 accumulator: Write/AddUint16/AddUint32 feed it, Sum16
// folds it down to the final 16-bit value.
type Sum struct {
	acc uint32
}

// Write adds the bytes in b to the running sum. If len(b) is odd the final
// byte is treated as the high byte of a zero-padded 16-bit word, per the
// "pad the tail with a zero if length is odd" rule.
func (s *Sum) Write(b []byte) {
	n := len(b) &^ 1
	for i := 0; i < n; i += 2 {
		s.acc += uint32(binary.BigEndian.Uint16(b[i:]))
	}
	if len(b)&1 != 0 {
		s.acc += uint32(b[len(b)-1]) << 8
	}
}

// AddUint16 adds a single big-endian 16-bit value to the running sum.
func (s *Sum) AddUint16(v uint16) { s.acc += uint32(v) }

// AddUint32 adds a big-endian 32-bit value to the running sum as two
// 16-bit words.
func (s *Sum) AddUint32(v uint32) {
	s.AddUint16(uint16(v >> 16))
	s.AddUint16(uint16(v))
}

// Sum16 folds the accumulated carries and returns the raw 16-bit ones' sum
// (not complemented). Over a region containing a valid checksum field the
// result is 0xFFFF.
func (s *Sum) Sum16() uint16 {
	v := s.acc
	v = (v & 0xffff) + (v >> 16)
	v = (v & 0xffff) + (v >> 16) // second fold: max value after first fold is 0x1fffe
	return uint16(v)
}

// Complement16 returns the ones'-complement of Sum16, i.e. the value to
// write into a checksum field to make the region sum to 0xFFFF.
func (s *Sum) Complement16() uint16 { return ^s.Sum16() }

// Reset zeros the running sum.
func (s *Sum) Reset() { s.acc = 0 }

// OnesSum folds b into the raw 16-bit ones'-complement sum. Over a region
// containing a valid checksum field, OnesSum(region) == 0xFFFF.
func OnesSum(b []byte) uint16 {
	var s Sum
	s.Write(b)
	return s.Sum16()
}

// OnesComplementSum returns the complement of OnesSum(b), i.e. the value to
// write back into b's checksum field to make it valid.
func OnesComplementSum(b []byte) uint16 {
	return ^OnesSum(b)
}

// Valid reports whether sum (as returned by OnesSum over a region that
// includes its own checksum field) represents a valid checksum: a
// correctly checksummed region folds to exactly 0xFFFF.
func Valid(sum uint16) bool { return sum == 0xFFFF }

// NeverZero returns sum unless it is zero, in which case it returns 0xFFFF
// (0 and 0xFFFF are the same value in ones'-complement math, and a
// transmitted checksum of exactly zero conventionally means "no checksum
// computed" for UDP over IPv4).
func NeverZero(sum uint16) uint16 {
	if sum == 0 {
		return 0xFFFF
	}
	return sum
}

// IPv4Pseudo builds the IPv4 pseudo-header used by TCP/UDP/ICMP checksums:
// source(4) | destination(4) | zero(1) | protocol(1) | upperLayerLength(2).
func IPv4Pseudo(src, dst [4]byte, protocol uint8, upperLayerLength uint16) [12]byte {
	var out [12]byte
	copy(out[0:4], src[:])
	copy(out[4:8], dst[:])
	out[8] = 0
	out[9] = protocol
	binary.BigEndian.PutUint16(out[10:12], upperLayerLength)
	return out
}

// IPv6Pseudo builds the IPv6 pseudo-header used by TCP/UDP/ICMPv6
// checksums: source(16) | destination(16) | upperLayerLength(4) | zero(3) |
// nextHeader(1).
func IPv6Pseudo(src, dst [16]byte, nextHeader uint8, upperLayerLength uint32) [40]byte {
	var out [40]byte
	copy(out[0:16], src[:])
	copy(out[16:32], dst[:])
	binary.BigEndian.PutUint32(out[32:36], upperLayerLength)
	out[36], out[37], out[38] = 0, 0, 0
	out[39] = nextHeader
	return out
}

// WritePseudoAndUpper feeds a pseudo-header into s the way IPv4Pseudo/IPv6Pseudo's
// caller typically wants: Write(pseudo[:]) followed by Write(upperLayer).
func (s *Sum) WritePseudoAndUpper(pseudo, upperLayer []byte) {
	s.Write(pseudo)
	s.Write(upperLayer)
}
