package tcp

import (
	"encoding/binary"

	"github.com/soypat/packetview/tlv"
)

// OptionKind enumerates the TCP option kind byte (RFC 9293 §3.1,
// RFC 1072, RFC 1146, RFC 2018, RFC 7323, RFC 2385, RFC 5482).
type OptionKind uint8

const (
	OptEnd              OptionKind = 0
	OptNop              OptionKind = 1
	OptMaxSegmentSize   OptionKind = 2
	OptWindowScale      OptionKind = 3
	OptSACKPermitted    OptionKind = 4
	OptSACK             OptionKind = 5
	OptEcho             OptionKind = 6
	OptEchoReply        OptionKind = 7
	OptTimestamps       OptionKind = 8
	OptPOConnPermitted  OptionKind = 9
	OptPOServiceProfile OptionKind = 10
	OptConnectionCount     OptionKind = 11
	OptConnectionCountNew  OptionKind = 12
	OptConnectionCountEcho OptionKind = 13
	OptAltChecksumReq   OptionKind = 14
	OptAltChecksumData  OptionKind = 15
	OptMD5Signature     OptionKind = 19
	OptQuickStartResp   OptionKind = 27
	OptUserTimeout      OptionKind = 28
)

// experimentalKinds are recognized but deliberately unsupported: kinds
// belonging to obsolete/experimental proposals (RFC 1693 partial-order
// delivery, RFC 1644 T/TCP connection counting, RFC 4782 Quick-Start)
// that this module does not implement the semantics of. Peek reports
// these with tlv.ErrUnsupportedOption rather than silently decoding
// them as opaque bytes.
var experimentalKinds = map[OptionKind]bool{
	OptPOConnPermitted:     true,
	OptPOServiceProfile:    true,
	OptConnectionCount:     true,
	OptConnectionCountNew:  true,
	OptConnectionCountEcho: true,
	OptQuickStartResp:      true,
}

// knownKinds are every kind Peek recognizes as well-formed, whether
// supported or deliberately rejected as experimental. Any kind byte
// outside this set is reported via tlv.ErrUnknownOption.
var knownKinds = map[OptionKind]bool{
	OptEnd: true, OptNop: true, OptMaxSegmentSize: true,
	OptWindowScale: true, OptSACKPermitted: true, OptSACK: true,
	OptEcho: true, OptEchoReply: true, OptTimestamps: true,
	OptPOConnPermitted: true, OptPOServiceProfile: true,
	OptConnectionCount: true, OptConnectionCountNew: true, OptConnectionCountEcho: true,
	OptAltChecksumReq: true, OptAltChecksumData: true,
	OptMD5Signature: true, OptQuickStartResp: true, OptUserTimeout: true,
}

func (k OptionKind) String() string {
	switch k {
	case OptEnd:
		return "End"
	case OptNop:
		return "NOP"
	case OptMaxSegmentSize:
		return "MSS"
	case OptWindowScale:
		return "WindowScale"
	case OptSACKPermitted:
		return "SACKPermitted"
	case OptSACK:
		return "SACK"
	case OptEcho:
		return "Echo"
	case OptEchoReply:
		return "EchoReply"
	case OptTimestamps:
		return "Timestamps"
	case OptPOConnPermitted:
		return "PartialOrderConnectionPermitted"
	case OptPOServiceProfile:
		return "PartialOrderServiceProfile"
	case OptConnectionCount:
		return "ConnectionCount"
	case OptConnectionCountNew:
		return "ConnectionCountNew"
	case OptConnectionCountEcho:
		return "ConnectionCountEcho"
	case OptAltChecksumReq:
		return "AltChecksumRequest"
	case OptAltChecksumData:
		return "AltChecksumData"
	case OptMD5Signature:
		return "MD5Signature"
	case OptQuickStartResp:
		return "QuickStartResponse"
	case OptUserTimeout:
		return "UserTimeout"
	default:
		return "Unknown"
	}
}

// optionsHeader implements tlv.Header for the TCP options encoding:
// a single kind byte for OptEnd/OptNop, or kind(1)+length(1)+value for
// every other kind, where length counts the whole unit (header
// included).
type optionsHeader struct{}

func (optionsHeader) Peek(region []byte, off int) (kind uint16, size, headerSize int, terminal bool, err error) {
	k := OptionKind(region[off])
	switch k {
	case OptEnd:
		return uint16(k), 1, 1, true, nil
	case OptNop:
		return uint16(k), 1, 1, false, nil
	}
	if !knownKinds[k] {
		return uint16(k), 0, 0, false, tlv.ErrUnknownOption
	}
	if off+1 >= len(region) {
		return 0, 0, 0, false, tlv.ErrShortBuffer
	}
	length := int(region[off+1])
	if length < 2 {
		return 0, 0, 0, false, tlv.ErrShortBuffer
	}
	if experimentalKinds[k] {
		return uint16(k), 0, 0, false, tlv.ErrUnsupportedOption
	}
	return uint16(k), length, 2, false, nil
}

// ForEachOption walks frm's options region, calling fn once per
// option. Iteration stops at the first OptEnd (inclusive) or at the
// end of the options region, whichever comes first; a segment with no
// OptEnd padding simply runs to the region's end. This walk is
// unconditional on Flags().HasAny(FlagURG) — the urgent flag only
// qualifies UrgentPtr, it has no bearing on whether options are
// present or well-formed.
//
// A kind from one of the experimental/obsolete proposals this module
// declines to implement (partial-order delivery, T/TCP connection
// counting, Quick-Start) stops iteration with tlv.ErrUnsupportedOption.
// A kind byte outside the RFC 9293/1072/1146/2018/7323/2385/5482 set
// stops iteration with tlv.ErrUnknownOption.
func (frm Frame) ForEachOption(fn func(kind OptionKind, value []byte) error) error {
	return tlv.Iterate(frm.Options(), optionsHeader{}, func(u tlv.Unit) error {
		return fn(OptionKind(u.Kind), u.Value)
	})
}

// MaxSegmentSize decodes an OptMaxSegmentSize option value.
func MaxSegmentSize(value []byte) uint16 { return binary.BigEndian.Uint16(value[0:2]) }

// WindowScaleShift decodes an OptWindowScale option value.
func WindowScaleShift(value []byte) uint8 { return value[0] }

// Timestamps decodes an OptTimestamps option value: TSval followed by
// TSecr (RFC 7323 §3.2).
func Timestamps(value []byte) (tsval, tsecr uint32) {
	return binary.BigEndian.Uint32(value[0:4]), binary.BigEndian.Uint32(value[4:8])
}

// SACKBlocks decodes an OptSACK option value into left/right edge
// pairs (RFC 2018 §3). len(value) must be a multiple of 8.
func SACKBlocks(value []byte) [][2]uint32 {
	n := len(value) / 8
	out := make([][2]uint32, n)
	for i := 0; i < n; i++ {
		out[i][0] = binary.BigEndian.Uint32(value[i*8 : i*8+4])
		out[i][1] = binary.BigEndian.Uint32(value[i*8+4 : i*8+8])
	}
	return out
}
