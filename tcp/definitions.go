// Package tcp implements TCP (RFC 9293) segment dissection and
// construction: the fixed 20-byte header, the options region (rebuilt
// atop the shared tlv package), and the IPv4/IPv6 pseudo-header
// checksum. Connection state machines, retransmission, and stream
// reassembly are out of scope (spec §1 Non-goals).
//
// Grounded on the teacher's tcp/frame.go (header layout) and
// tcp/definitions.go (the Flags bitmask, kept close to verbatim); the
// teacher's Segment/State/RejectError/ControlBlock machinery is out of
// scope, see DESIGN.md.
package tcp

import "math/bits"

const sizeHeader = 20

// Flags is the TCP flags bitmask (RFC 9293 §3.1, plus ECN/NS from
// RFC 3168/3540).
type Flags uint16

const (
	FlagFIN Flags = 1 << iota
	FlagSYN
	FlagRST
	FlagPSH
	FlagACK
	FlagURG
	FlagECE
	FlagCWR
	FlagNS
)

const flagMask = 0x01ff

// HasAll reports whether every bit in mask is set in flags.
func (flags Flags) HasAll(mask Flags) bool { return flags&mask == mask }

// HasAny reports whether any bit in mask is set in flags.
func (flags Flags) HasAny(mask Flags) bool { return flags&mask != 0 }

// Mask returns flags with any non-flag bits cleared.
func (flags Flags) Mask() Flags { return flags & flagMask }

func (flags Flags) String() string {
	switch flags.Mask() {
	case 0:
		return "[]"
	case FlagSYN | FlagACK:
		return "[SYN,ACK]"
	case FlagFIN | FlagACK:
		return "[FIN,ACK]"
	case FlagPSH | FlagACK:
		return "[PSH,ACK]"
	case FlagACK:
		return "[ACK]"
	case FlagSYN:
		return "[SYN]"
	case FlagFIN:
		return "[FIN]"
	case FlagRST:
		return "[RST]"
	}
	buf := make([]byte, 0, 2+4*bits.OnesCount16(uint16(flags.Mask())))
	buf = append(buf, '[')
	buf = flags.AppendFormat(buf)
	buf = append(buf, ']')
	return string(buf)
}

// AppendFormat appends a human-readable, comma-separated flag list (no
// brackets) to b, in LSB-to-MSB order, and returns the extended slice.
func (flags Flags) AppendFormat(b []byte) []byte {
	f := flags.Mask()
	if f == 0 {
		return b
	}
	const names = "FIN,SYN,RST,PSH,ACK,URG,ECE,CWR,NS,"
	var comma bool
	for f != 0 {
		i := bits.TrailingZeros16(uint16(f))
		if comma {
			b = append(b, ',')
		}
		comma = true
		name := names
		for ; i > 0; i-- {
			_, name, _ = cutComma(name)
		}
		n, _, _ := cutComma(name)
		b = append(b, n...)
		f &= f - 1
	}
	return b
}

func cutComma(s string) (before, after string, found bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
