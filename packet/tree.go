package packet

import (
	"fmt"

	"github.com/soypat/packetview/bslice"
	"github.com/soypat/packetview/checksum"
	"github.com/soypat/packetview/dot11"
	"github.com/soypat/packetview/dot11/ppi"
	"github.com/soypat/packetview/dot11/radiotap"
	"github.com/soypat/packetview/dot1q"
	"github.com/soypat/packetview/drda"
	"github.com/soypat/packetview/ethernet"
	"github.com/soypat/packetview/ipv4"
	"github.com/soypat/packetview/ipv6"
	"github.com/soypat/packetview/layer"
	"github.com/soypat/packetview/ppp"
	"github.com/soypat/packetview/pppoe"
	"github.com/soypat/packetview/sll"
	"github.com/soypat/packetview/tcp"
)

// LinkKind identifies the outermost link-layer framing ParseLinkLayer
// should expect, per spec §6's parse_link_layer kind enum.
type LinkKind uint8

const (
	LinkInvalid LinkKind = iota
	LinkEthernet
	LinkPPP
	LinkLinuxSLL
	LinkRaw
	LinkIeee80211
	LinkIeee80211Radiotap
	LinkIeee80211PPI
)

func (k LinkKind) String() string {
	switch k {
	case LinkEthernet:
		return "Ethernet"
	case LinkPPP:
		return "PPP"
	case LinkLinuxSLL:
		return "LinuxSLL"
	case LinkRaw:
		return "Raw"
	case LinkIeee80211:
		return "802.11"
	case LinkIeee80211Radiotap:
		return "802.11-radiotap"
	case LinkIeee80211PPI:
		return "802.11-PPI"
	default:
		return "Invalid"
	}
}

// childSetter is satisfied by every concrete Layer in this module: each
// embeds layer.Base, which provides SetChild.
type childSetter interface{ SetChild(layer.Layer) }

// bytesSetter is satisfied by every concrete Layer too, via the same
// Base embedding: Base.SetBytes takes a bslice.Slice rather than a bare
// []byte so the terminal payload stays bound to the same backing array
// as the rest of the tree (see bslice's zero-copy contract).
type bytesSetter interface{ SetBytes(bslice.Slice) }

// pseudoSetter is satisfied by tcp.Layer, udp.Layer and icmpv6.Layer,
// the three layers whose checksum depends on the enclosing IPv4/IPv6
// pseudo-header.
type pseudoSetter interface{ SetPseudoHeader([]byte) }

var defaultRegistry = DefaultRegistry()

// ParseLinkLayer dissects buf as a frame of the given link kind,
// recursively dispatching as many nested layers as DefaultRegistry
// recognizes, and returns the outermost layer.Layer. A discriminator
// value DefaultRegistry has no Constructor for (an unrecognized
// EtherType, IP protocol number, or PPP protocol) is not an error: the
// encapsulating layer's payload is simply left as raw bytes. A
// genuinely malformed or truncated buffer surfaces as an error
// wrapping layer.ErrShortBuffer (Testable Property 9) — every
// Constructor this package calls already validates its input length
// before touching it, so no call here can panic.
func ParseLinkLayer(kind LinkKind, buf []byte) (layer.Layer, error) {
	return defaultRegistry.ParseLinkLayer(kind, buf)
}

// ParseLinkLayer is the Registry-bound form of the package-level
// ParseLinkLayer, letting callers plug in application-specific
// protocol pairs (via Register*) before parsing.
func (r *Registry) ParseLinkLayer(kind LinkKind, buf []byte) (layer.Layer, error) {
	switch kind {
	case LinkEthernet:
		return r.parseEthernet(buf)
	case LinkPPP:
		return r.parsePPP(buf)
	case LinkLinuxSLL:
		return r.parseSLL(buf)
	case LinkRaw:
		return nil, fmt.Errorf("packet: LinkRaw has no dissectable header")
	case LinkIeee80211:
		return r.parse80211(buf)
	case LinkIeee80211Radiotap:
		return r.parseRadiotap(buf)
	case LinkIeee80211PPI:
		return r.parsePPI(buf)
	default:
		return nil, fmt.Errorf("packet: unrecognized link kind %v", kind)
	}
}

func shortBufErr(context string, err error) error {
	return fmt.Errorf("%w: %s: %v", layer.ErrShortBuffer, context, err)
}

func (r *Registry) parseEthernet(buf []byte) (layer.Layer, error) {
	l, err := ethernet.NewLayer(buf)
	if err != nil {
		return nil, shortBufErr("ethernet", err)
	}
	et := l.Frame().EtherTypeOrSize()
	payload := l.Header().Encapsulated()
	if et.IsSize() {
		payload = l.Header().Encapsulated(int(et))
	}
	r.attachByEtherType(l, et, payload)
	return l, nil
}

func (r *Registry) parsePPP(buf []byte) (layer.Layer, error) {
	l, err := ppp.NewLayer(buf)
	if err != nil {
		return nil, shortBufErr("ppp", err)
	}
	r.attachPPPPayload(l)
	return l, nil
}

func (r *Registry) parseSLL(buf []byte) (layer.Layer, error) {
	l, err := sll.NewLayer(buf)
	if err != nil {
		return nil, shortBufErr("sll", err)
	}
	r.attachByEtherType(l, l.Frame().ProtocolType(), l.Header().Encapsulated())
	return l, nil
}

// parse80211 wraps buf as an 802.11 MAC frame. Non-management frame
// bodies (data/control) carry application payload that this module
// does not dissect further (802.11 data frames are typically
// encrypted, and even decrypted ones carry an 802.2 LLC/SNAP header
// outside this spec's scope), so the body is left as raw bytes.
// dot11.Layer wraps its whole buffer as the header window (like
// lldp.Layer and pppoe.DiscoveryLayer), so the body is also reachable
// without reparsing via Layer.Frame().Body(); recording it as the
// payload slot too lets generic tree walkers (pretty-printers,
// random-packet generators) find it without a type switch on dot11.
func (r *Registry) parse80211(buf []byte) (layer.Layer, error) {
	l, err := dot11.NewLayer(buf)
	if err != nil {
		return nil, shortBufErr("802.11", err)
	}
	frm := l.Frame()
	if hl := frm.HeaderLength(); len(frm.Body()) > 0 {
		setRawBytes(l, afterHeader(l.Header(), hl))
	}
	return l, nil
}

func (r *Registry) parseRadiotap(buf []byte) (layer.Layer, error) {
	l, err := radiotap.NewLayer(buf)
	if err != nil {
		return nil, shortBufErr("radiotap", err)
	}
	rest := l.Header().Encapsulated()
	if rest.Length() > 0 {
		child, err := r.parse80211(rest.Actual())
		if err == nil {
			l.SetChild(child)
		} else {
			setRawBytes(l, rest)
		}
	}
	return l, nil
}

func (r *Registry) parsePPI(buf []byte) (layer.Layer, error) {
	l, err := ppi.NewLayer(buf)
	if err != nil {
		return nil, shortBufErr("ppi", err)
	}
	rest := l.Header().Encapsulated()
	if rest.Length() > 0 {
		child, err := r.parse80211(rest.Actual())
		if err == nil {
			l.SetChild(child)
		} else {
			setRawBytes(l, rest)
		}
	}
	return l, nil
}

// attachByEtherType looks up ctor for et in r's EtherType table and
// attaches its result (or raw bytes) as parent's child, used by both
// ethernet.Layer and sll.Layer (which share EtherType's discriminator
// space) and, recursively, by dot1q.Layer's inner EtherType.
func (r *Registry) attachByEtherType(parent layer.Layer, et ethernet.Type, payload bslice.Slice) {
	r.attachGeneric(parent, r.etherType[et], payload, nil)
}

// attachPPPPayload looks up ctor for l's Protocol field (skipping
// control protocols, which this module does not dissect) and attaches
// its result as l's child. Shared by the top-level PPP link layer and
// by a PPPoE Session frame's inner PPP frame.
func (r *Registry) attachPPPPayload(l *ppp.Layer) {
	proto := l.Frame().Protocol()
	var ctor Constructor
	if !proto.IsControl() {
		ctor = r.pppProto[proto]
	}
	r.attachGeneric(l, ctor, l.Header().Encapsulated(), nil)
}

// attachGeneric builds a child layer out of payload using ctor (if
// non-nil), wires pseudo (if non-nil and the child supports
// SetPseudoHeader), and falls back to raw bytes when ctor is nil,
// absent from the registry, or fails to parse payload (a malformed or
// merely unrecognized payload is not itself a parse failure for the
// encapsulating layer). On success it recurses into the new child via
// dissectFurther, continuing the tree past protocols (802.1Q, IPv4,
// IPv6, PPPoE Session) whose own next-protocol dispatch this package
// — not the child package itself — is responsible for driving.
func (r *Registry) attachGeneric(parent layer.Layer, ctor Constructor, payload bslice.Slice, pseudo []byte) {
	if payload.Length() == 0 {
		return
	}
	if ctor == nil {
		setRawBytes(parent, payload)
		return
	}
	child, err := ctor(payload.Actual())
	if err != nil {
		setRawBytes(parent, payload)
		return
	}
	if pseudo != nil {
		if ps, ok := child.(pseudoSetter); ok {
			ps.SetPseudoHeader(pseudo)
		}
	}
	if cs, ok := parent.(childSetter); ok {
		cs.SetChild(child)
	}
	r.dissectFurther(child)
}

// dissectFurther continues the recursive descent past a just-attached
// child whose own encapsulation this package must drive (protocols
// whose dispatch table is keyed on a field the child package itself
// does not know how to consult generically): 802.1Q's inner EtherType,
// IPv4/IPv6's protocol number (plus pseudo-header construction), a
// PPPoE Session frame's inner PPP frame, and TCP's DRDA port heuristic.
// Every other concrete Layer type is already terminal or already fully
// materialized by its own NewLayer (UDP, ICMPv4/6, IGMP, OSPF, ARP,
// LLDP, Wake-on-LAN).
func (r *Registry) dissectFurther(child layer.Layer) {
	switch c := child.(type) {
	case *dot1q.Layer:
		r.attachByEtherType(c, c.Frame().InnerType(), c.Header().Encapsulated())
	case *ipv4.Layer:
		r.dissectIPv4(c)
	case *ipv6.Layer:
		r.dissectIPv6(c)
	case *pppoe.SessionLayer:
		r.dissectPPPoESession(c)
	case *tcp.Layer:
		maybeDissectTCPPayload(c)
	}
}

// dissectIPv4 dispatches an IPv4 datagram's payload by Protocol number,
// bounding the payload to TotalLength-HeaderLength (spec §4.5's "avoids
// trailing capture padding" rule) and supplying the IPv4 pseudo-header
// TCP/UDP (and, defensively, ICMPv6-over-IPv4) checksums need.
func (r *Registry) dissectIPv4(ipl *ipv4.Layer) {
	frm := ipl.Frame()
	proto := frm.Protocol()
	upperLen := int(frm.TotalLength()) - frm.HeaderLength()
	if upperLen < 0 {
		upperLen = 0
	}
	payload := ipl.Header().Encapsulated(upperLen)
	r.attachGeneric(ipl, r.ipProto[proto], payload, ipv4PseudoHeader(frm, proto, upperLen))
}

// dissectIPv6 dispatches an IPv6 datagram's payload by Next Header,
// bounding the payload to the declared PayloadLength and supplying the
// IPv6 pseudo-header TCP/UDP/ICMPv6 checksums need.
func (r *Registry) dissectIPv6(ipl *ipv6.Layer) {
	frm := ipl.Frame()
	proto := frm.NextHeader()
	upperLen := int(frm.PayloadLength())
	payload := ipl.Header().Encapsulated(upperLen)
	r.attachGeneric(ipl, r.ipProto[proto], payload, ipv6PseudoHeader(frm, proto, upperLen))
}

// ipv4PseudoHeader returns the IPv4 pseudo-header bytes checksum.go's
// pseudo-header-consuming protocols need, or nil for protocols (plain
// ICMPv4) whose checksum does not cover one.
func ipv4PseudoHeader(frm ipv4.Frame, proto ipv4.Proto, upperLen int) []byte {
	switch proto {
	case ipv4.ProtoTCP, ipv4.ProtoUDP, ipv4.ProtoIPv6ICMP:
		ph := checksum.IPv4Pseudo(*frm.SourceAddr(), *frm.DestinationAddr(), uint8(proto), uint16(upperLen))
		return ph[:]
	default:
		return nil
	}
}

// ipv6PseudoHeader is ipv4PseudoHeader's IPv6 counterpart.
func ipv6PseudoHeader(frm ipv6.Frame, proto ipv4.Proto, upperLen int) []byte {
	switch proto {
	case ipv4.ProtoTCP, ipv4.ProtoUDP, ipv4.ProtoIPv6ICMP:
		ph := checksum.IPv6Pseudo(*frm.SourceAddr(), *frm.DestinationAddr(), uint8(proto), uint32(upperLen))
		return ph[:]
	default:
		return nil
	}
}

// dissectPPPoESession parses the PPP frame a PPPoE Session frame
// carries (RFC 2516 §7) and continues dissecting past it exactly as the
// top-level PPP link layer would.
func (r *Registry) dissectPPPoESession(s *pppoe.SessionLayer) {
	payload := s.Header().Encapsulated(int(s.Frame().PayloadLength()))
	if payload.Length() == 0 {
		return
	}
	pl, err := ppp.NewLayer(payload.Actual())
	if err != nil {
		setRawBytes(s, payload)
		return
	}
	s.SetChild(pl)
	r.attachPPPPayload(pl)
}

// maybeDissectTCPPayload recognizes a DRDA stream riding over TCP by
// the spec glossary's "well-known port plus DDM magic byte" heuristic
// (see drda.WellKnownPorts/LooksLikeDRDA) and, if it matches, replaces
// the segment's raw-bytes payload with a parsed drda.Layer. TCP has no
// next-protocol field of its own (spec §4.5), so this is the one
// upper-layer protocol this module recognizes by port convention rather
// than an explicit discriminator.
func maybeDissectTCPPayload(t *tcp.Layer) {
	p := t.Payload()
	if p.Tag != layer.PayloadBytes {
		return
	}
	frm := t.Frame()
	if !drda.IsWellKnownPort(frm.SourcePort()) && !drda.IsWellKnownPort(frm.DestinationPort()) {
		return
	}
	body := p.Bytes.Actual()
	if !drda.LooksLikeDRDA(body) {
		return
	}
	child, err := drda.NewLayer(body)
	if err != nil {
		return
	}
	t.SetChild(child)
}

// afterHeader returns the Slice of hdr's backing buffer running from n
// bytes into hdr's window through the end of that window, for layers
// (dot11.Layer) that wrap their whole buffer as a single header window
// rather than splitting header and payload into separate Slices.
func afterHeader(hdr bslice.Slice, n int) bslice.Slice {
	s, _ := bslice.NewAt(hdr.Buffer(), hdr.Offset()+n, hdr.Length()-n)
	return s
}

func setRawBytes(parent layer.Layer, payload bslice.Slice) {
	if bs, ok := parent.(bytesSetter); ok {
		bs.SetBytes(payload)
	}
}
