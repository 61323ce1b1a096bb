package arp

import (
	"encoding/binary"

	"github.com/soypat/packetview/ethernet"
)

// NewFrame returns a Frame over buf. An error is returned if buf is
// shorter than the 28-byte IPv4 minimum; callers working with IPv6 or
// other address-length combinations should call [Frame.ValidateSize]
// before reading Sender/Target to avoid a panic on a short buffer.
func NewFrame(buf []byte) (Frame, error) {
	if len(buf) < sizeHeaderv4 {
		return Frame{}, errShortARP
	}
	return Frame{buf: buf}, nil
}

// Frame provides field accessors over the raw bytes of an ARP packet, per
// RFC 826 generalized to arbitrary hardware/protocol address lengths.
type Frame struct {
	buf []byte
}

// RawData returns the underlying slice the Frame was created over.
func (afrm Frame) RawData() []byte { return afrm.buf }

// Hardware returns the hardware type and hardware address length fields.
func (afrm Frame) Hardware() (htype uint16, length uint8) {
	return binary.BigEndian.Uint16(afrm.buf[0:2]), afrm.hwlen()
}

func (afrm Frame) hwlen() uint8 { return afrm.buf[4] }

// SetHardware sets the hardware type and address length fields.
func (afrm Frame) SetHardware(htype uint16, length uint8) {
	binary.BigEndian.PutUint16(afrm.buf[0:2], htype)
	afrm.buf[4] = length
}

// Protocol returns the protocol type (an EtherType, typically
// ethernet.TypeIPv4) and protocol address length fields.
func (afrm Frame) Protocol() (ptype ethernet.Type, length uint8) {
	return ethernet.Type(binary.BigEndian.Uint16(afrm.buf[2:4])), afrm.protolen()
}

func (afrm Frame) protolen() uint8 { return afrm.buf[5] }

// SetProtocol sets the protocol type and address length fields.
func (afrm Frame) SetProtocol(ptype ethernet.Type, length uint8) {
	binary.BigEndian.PutUint16(afrm.buf[2:4], uint16(ptype))
	afrm.buf[5] = length
}

// Operation returns the ARP operation field.
func (afrm Frame) Operation() Operation { return Operation(binary.BigEndian.Uint16(afrm.buf[6:8])) }

// SetOperation sets the ARP operation field.
func (afrm Frame) SetOperation(op Operation) { binary.BigEndian.PutUint16(afrm.buf[6:8], uint16(op)) }

// HeaderLength returns the total size of the fixed header plus the four
// variable-length address fields, per the declared hardware/protocol
// address lengths.
func (afrm Frame) HeaderLength() int {
	_, hlen := afrm.Hardware()
	_, plen := afrm.Protocol()
	return sizeHeader + 2*int(hlen) + 2*int(plen)
}

// Sender returns the sender hardware and protocol addresses, aliasing
// the backing buffer.
func (afrm Frame) Sender() (hardwareAddr, proto []byte) {
	_, hlen := afrm.Hardware()
	_, plen := afrm.Protocol()
	return afrm.buf[8 : 8+hlen], afrm.buf[8+hlen : 8+hlen+plen]
}

// Target returns the target hardware and protocol addresses, aliasing
// the backing buffer.
func (afrm Frame) Target() (hardwareAddr, proto []byte) {
	_, hlen := afrm.Hardware()
	_, plen := afrm.Protocol()
	toff := 8 + int(hlen) + int(plen)
	return afrm.buf[toff : toff+int(hlen)], afrm.buf[toff+int(hlen) : toff+int(hlen)+int(plen)]
}

// Sender4 returns the sender hardware/IPv4 address pointers for the
// common Ethernet+IPv4 case (6-byte MAC, 4-byte IPv4).
func (afrm Frame) Sender4() (hardwareAddr *[6]byte, proto *[4]byte) {
	return (*[6]byte)(afrm.buf[8:14]), (*[4]byte)(afrm.buf[14:18])
}

// Target4 returns the target hardware/IPv4 address pointers for the
// common Ethernet+IPv4 case.
func (afrm Frame) Target4() (hardwareAddr *[6]byte, proto *[4]byte) {
	return (*[6]byte)(afrm.buf[18:24]), (*[4]byte)(afrm.buf[24:28])
}

// Sender6 returns the sender hardware/IPv6 address pointers for the
// Ethernet+IPv6 case (6-byte MAC, 16-byte IPv6).
func (afrm Frame) Sender6() (hardwareAddr *[6]byte, proto *[16]byte) {
	return (*[6]byte)(afrm.buf[8:14]), (*[16]byte)(afrm.buf[14:30])
}

// Target6 returns the target hardware/IPv6 address pointers for the
// Ethernet+IPv6 case.
func (afrm Frame) Target6() (hardwareAddr *[6]byte, proto *[16]byte) {
	return (*[6]byte)(afrm.buf[30:36]), (*[16]byte)(afrm.buf[36:52])
}

// ClearHeader zeros out the fixed (non-address) header bytes.
func (afrm Frame) ClearHeader() {
	for i := range afrm.buf[:sizeHeader] {
		afrm.buf[i] = 0
	}
}

// SwapTargetSender exchanges the sender and target address fields in
// place, the transform a request-to-reply turnaround needs.
func (afrm Frame) SwapTargetSender() {
	hwTarget, protoTarget := afrm.Target()
	hwSender, protoSender := afrm.Sender()
	for i := range hwTarget {
		hwTarget[i], hwSender[i] = hwSender[i], hwTarget[i]
	}
	for i := range protoTarget {
		protoTarget[i], protoSender[i] = protoSender[i], protoTarget[i]
	}
}

// ValidateSize checks the frame's declared address-length fields against
// the actual buffer length.
func (afrm Frame) ValidateSize() error {
	if len(afrm.buf) < sizeHeader {
		return errShortARP
	}
	if len(afrm.buf) < afrm.HeaderLength() {
		return errShortARP
	}
	return nil
}
