// Package packet ties every per-protocol layer package together into a
// recursive tree builder: given a link-layer kind and a raw capture
// buffer, it dissects as many nested layers as it recognizes and hands
// back the outermost layer.Layer, matching the teacher's pattern of a
// small coordinating package sitting above many focused protocol
// packages (see soypat-lneto's stack.go wiring arp/tcp/ipv4 handlers
// together) rather than one monolithic parser.
package packet

import (
	"github.com/soypat/packetview/dot1q"
	"github.com/soypat/packetview/ethernet"
	"github.com/soypat/packetview/ipv4"
	"github.com/soypat/packetview/layer"
	"github.com/soypat/packetview/ppp"
)

// Constructor builds a layer.Layer out of the start of buf, the same
// signature every protocol package's NewLayer function already has.
type Constructor func(buf []byte) (layer.Layer, error)

// Registry holds the dispatch tables a Tree walk consults at each
// encapsulating layer: Ethernet/802.1Q/SLL EtherType, IPv4/IPv6
// protocol number, and PPP Protocol field, each mapping a
// protocol-specific discriminator to the Constructor for the layer
// that discriminator selects. A Registry is not safe for concurrent
// Register calls racing a Parse call, matching every other type in this
// module's single-threaded, no-goroutine design (see §5).
type Registry struct {
	etherType map[ethernet.Type]Constructor
	ipProto   map[ipv4.Proto]Constructor
	pppProto  map[ppp.Protocol]Constructor
}

// NewRegistry returns an empty Registry with no protocol pairs
// registered.
func NewRegistry() *Registry {
	return &Registry{
		etherType: make(map[ethernet.Type]Constructor),
		ipProto:   make(map[ipv4.Proto]Constructor),
		pppProto:  make(map[ppp.Protocol]Constructor),
	}
}

// RegisterEtherType adds (or replaces) the Constructor consulted for
// Ethernet/802.1Q/SLL frames carrying the given EtherType, the
// one-line-registration extension point named in spec §4.6.
func (r *Registry) RegisterEtherType(t ethernet.Type, ctor Constructor) {
	r.etherType[t] = ctor
}

// RegisterIPProto adds (or replaces) the Constructor consulted for
// IPv4/IPv6 payloads carrying the given protocol number.
func (r *Registry) RegisterIPProto(p ipv4.Proto, ctor Constructor) {
	r.ipProto[p] = ctor
}

// RegisterPPPProto adds (or replaces) the Constructor consulted for PPP
// frames carrying the given Protocol field.
func (r *Registry) RegisterPPPProto(p ppp.Protocol, ctor Constructor) {
	r.pppProto[p] = ctor
}

// wrap adapts a protocol package's NewLayer(buf) (*T, error) function
// (T being the concrete *ethernet.Layer/*ipv4.Layer/etc. type) to the
// Constructor signature, since Go generics can't express "any function
// returning a layer.Layer-satisfying pointer" directly as a map value
// type.
func wrap[L layer.Layer](fn func([]byte) (L, error)) Constructor {
	return func(buf []byte) (layer.Layer, error) {
		l, err := fn(buf)
		if err != nil {
			return nil, err
		}
		return l, nil
	}
}

// DefaultRegistry returns a Registry pre-populated with every protocol
// pair spec §4.5/§4.6 names: the Ethernet/802.1Q/SLL ethertype table
// from spec §4.2 (IPv4, IPv6, ARP, LLDP, PPPoE Session, 802.1Q,
// Wake-on-LAN), and the IPv4/IPv6 protocol-number table (TCP, UDP,
// ICMPv4/ICMPv6, IGMP, OSPF).
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.RegisterEtherType(ethernet.TypeIPv4, wrap(ipv4NewLayer))
	r.RegisterEtherType(ethernet.TypeIPv6, wrap(ipv6NewLayer))
	r.RegisterEtherType(ethernet.TypeARP, wrap(arpNewLayer))
	r.RegisterEtherType(ethernet.TypeLLDP, wrap(lldpNewLayer))
	r.RegisterEtherType(ethernet.TypePPPoEDiscovery, wrap(pppoeDiscoveryNewLayer))
	r.RegisterEtherType(ethernet.TypePPPoESession, wrap(pppoeSessionNewLayer))
	r.RegisterEtherType(ethernet.TypeVLAN, wrap(dot1qNewLayer))
	r.RegisterEtherType(ethernet.TypeServiceVLAN, wrap(dot1qNewLayer))
	r.RegisterEtherType(ethernet.TypeWakeOnLAN, wrap(wolNewLayer))

	r.RegisterIPProto(ipv4.ProtoTCP, wrap(tcpNewLayer))
	r.RegisterIPProto(ipv4.ProtoUDP, wrap(udpNewLayer))
	r.RegisterIPProto(ipv4.ProtoICMP, wrap(icmpv4NewLayer))
	r.RegisterIPProto(ipv4.ProtoIPv6ICMP, wrap(icmpv6NewLayer))
	r.RegisterIPProto(ipv4.ProtoIGMP, wrap(igmpNewLayer))
	r.RegisterIPProto(ipv4.ProtoOSPFIGP, wrap(ospfNewLayer))

	r.RegisterPPPProto(ppp.ProtocolIPv4, wrap(ipv4NewLayer))
	r.RegisterPPPProto(ppp.ProtocolIPv6, wrap(ipv6NewLayer))

	return r
}

// dot1qNewLayer adapts dot1q.NewLayer's *dot1q.Layer return to the
// Constructor signature via wrap's generic instantiation.
func dot1qNewLayer(buf []byte) (*dot1q.Layer, error) { return dot1q.NewLayer(buf) }
