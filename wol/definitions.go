// Package wol implements Wake-on-LAN "magic packet" dissection and
// construction: a 6-byte 0xFF sync stream followed by 16 repetitions of
// a target MAC address, and an optional trailing SecureOn password, per
// spec §4.5 "Wake-on-LAN: 6-byte 0xFF sync stream followed by 16
// repetitions of a target MAC."
//
// Grounded on the teacher's ethernet package for MAC address handling
// (AppendAddr); the magic packet layout itself has no teacher analogue
// and is specified directly from the widely-implemented AMD Magic
// Packet Technology whitepaper.
package wol

import "errors"

var errShort = errors.New("wol: buffer shorter than minimum magic packet")

const (
	sizeSync      = 6
	macLen        = 6
	repetitions   = 16
	sizeMinPacket = sizeSync + repetitions*macLen
)
