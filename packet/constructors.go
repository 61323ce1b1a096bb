package packet

import (
	"github.com/soypat/packetview/arp"
	"github.com/soypat/packetview/icmpv4"
	"github.com/soypat/packetview/icmpv6"
	"github.com/soypat/packetview/igmp"
	"github.com/soypat/packetview/ipv4"
	"github.com/soypat/packetview/ipv6"
	"github.com/soypat/packetview/lldp"
	"github.com/soypat/packetview/ospf"
	"github.com/soypat/packetview/pppoe"
	"github.com/soypat/packetview/tcp"
	"github.com/soypat/packetview/udp"
	"github.com/soypat/packetview/wol"
)

func ipv4NewLayer(buf []byte) (*ipv4.Layer, error) { return ipv4.NewLayer(buf) }
func ipv6NewLayer(buf []byte) (*ipv6.Layer, error) { return ipv6.NewLayer(buf) }
func arpNewLayer(buf []byte) (*arp.Layer, error)   { return arp.NewLayer(buf) }
func lldpNewLayer(buf []byte) (*lldp.Layer, error) { return lldp.NewLayer(buf) }
func wolNewLayer(buf []byte) (*wol.Layer, error)   { return wol.NewLayer(buf) }

func pppoeDiscoveryNewLayer(buf []byte) (*pppoe.DiscoveryLayer, error) {
	return pppoe.NewDiscoveryLayer(buf)
}

func pppoeSessionNewLayer(buf []byte) (*pppoe.SessionLayer, error) {
	return pppoe.NewSessionLayer(buf)
}

func tcpNewLayer(buf []byte) (*tcp.Layer, error)       { return tcp.NewLayer(buf) }
func udpNewLayer(buf []byte) (*udp.Layer, error)       { return udp.NewLayer(buf) }
func icmpv4NewLayer(buf []byte) (*icmpv4.Layer, error) { return icmpv4.NewLayer(buf) }
func icmpv6NewLayer(buf []byte) (*icmpv6.Layer, error) { return icmpv6.NewLayer(buf) }
func igmpNewLayer(buf []byte) (*igmp.Layer, error)     { return igmp.NewLayer(buf) }
func ospfNewLayer(buf []byte) (*ospf.Layer, error)     { return ospf.NewLayer(buf) }
