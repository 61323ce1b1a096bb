// Package sll implements the Linux "cooked capture" pseudo link-layer
// header (DLT_LINUX_SLL) that libpcap synthesizes for "any"-interface
// captures, per spec §4.5's supplemented detail: "packet type, ARPHRD
// type, address length + address, protocol type," a fixed 16-byte
// header.
//
// Grounded on the teacher's ethernet package for the trailing
// EtherType-style ProtocolType discriminator (reused directly via
// ethernet.Type, since SLL's protocol field uses the same space as
// Ethernet's EtherType).
package sll

import "errors"

var errShort = errors.New("sll: buffer shorter than minimum header")

const (
	sizeHeader  = 16
	addrMaxLen  = 8
)

// PacketType is the packet type field (linux/if_packet.h PACKET_*
// constants).
type PacketType uint16

const (
	PacketHost      PacketType = 0 // addressed to this host
	PacketBroadcast PacketType = 1
	PacketMulticast PacketType = 2
	PacketOtherHost PacketType = 3 // addressed to another host, captured promiscuously
	PacketOutgoing  PacketType = 4 // originated from this host
)

func (p PacketType) String() string {
	switch p {
	case PacketHost:
		return "Host"
	case PacketBroadcast:
		return "Broadcast"
	case PacketMulticast:
		return "Multicast"
	case PacketOtherHost:
		return "OtherHost"
	case PacketOutgoing:
		return "Outgoing"
	default:
		return "Unknown"
	}
}

// ARPHRDType is the ARP hardware type field (linux/if_arp.h ARPHRD_*
// constants), identifying the kind of link-layer address in Address().
type ARPHRDType uint16

const (
	ARPHRDEthernet ARPHRDType = 1
	ARPHRDLoopback ARPHRDType = 772
	ARPHRDNone     ARPHRDType = 65534 // no link-layer address (e.g. tun/ppp)
)
