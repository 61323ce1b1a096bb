// Package udp implements UDP (RFC 768) datagram dissection and
// construction: the fixed 8-byte header and its IPv4/IPv6
// pseudo-header checksum.
//
// Grounded on the teacher's udp/frame.go, built on the shared checksum
// package instead of its commented-out CRC791 sketch.
package udp

const sizeHeader = 8
