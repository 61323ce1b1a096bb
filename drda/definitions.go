// Package drda implements a byte-offset heuristic for detecting IBM's
// Distributed Relational Database Architecture protocol riding over
// TCP, plus a minimal reader for a single DDM (Distributed Data
// Management) header, per spec's glossary entry defining "the DDM
// magic byte as the DRDA heuristic over TCP."
//
// This is deliberately not a full DRDA command parser (application-layer
// parsing beyond byte-accurate framing is out of scope): it mirrors how
// gopacket treats DRDA, as a well-known-port-plus-magic-byte heuristic,
// not a full protocol stack. No teacher or pack file implements DRDA;
// the DDM header field layout is taken from the DRDA/DDM specification
// (IBM, DRDA Volume 3).
package drda

import "errors"

var errShort = errors.New("drda: buffer shorter than minimum DDM header")

const sizeDDMHeader = 6

// ddmMagic is the fixed magic byte at offset 2 of every DDM header
// (the "format" byte's high nibble is always 0xD).
const ddmMagic = 0xD0

// WellKnownPorts lists the TCP ports DRDA conventionally runs over,
// for package packet's port-based recognition heuristic (DRDA has no
// next-protocol discriminator of its own to dispatch on; a TCP child
// is recognized as DRDA by port plus LooksLikeDRDA).
var WellKnownPorts = [...]uint16{446, 448, 3700}

// IsWellKnownPort reports whether port is one of DRDA's conventional
// TCP ports.
func IsWellKnownPort(port uint16) bool {
	for _, p := range WellKnownPorts {
		if p == port {
			return true
		}
	}
	return false
}
