package lldp

import (
	"bytes"
	"testing"

	"github.com/soypat/packetview/tlv"
)

func buildTLV(typ TLVType, value []byte) []byte {
	out := make([]byte, 2+len(value))
	tlvHeader{}.WriteHeader(out, uint16(typ), len(value))
	copy(out[2:], value)
	return out
}

func TestForEachTLV(t *testing.T) {
	chassis := buildTLV(TLVChassisID, append([]byte{byte(ChassisIDMACAddress)}, 0, 1, 2, 3, 4, 5))
	port := buildTLV(TLVPortID, append([]byte{byte(PortIDInterfaceName)}, []byte("eth0")...))
	ttl := buildTLV(TLVTimeToLive, []byte{0, 120})
	end := buildTLV(TLVEndOfLLDPDU, nil)

	var buf []byte
	buf = append(buf, chassis...)
	buf = append(buf, port...)
	buf = append(buf, ttl...)
	buf = append(buf, end...)

	frm, err := NewFrame(buf)
	if err != nil {
		t.Fatal(err)
	}

	var types []TLVType
	err = frm.ForEachTLV(func(typ TLVType, value []byte) error {
		types = append(types, typ)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []TLVType{TLVChassisID, TLVPortID, TLVTimeToLive, TLVEndOfLLDPDU}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("tlv %d: got %v want %v", i, types[i], want[i])
		}
	}

	ttlVal, ok := frm.Find(TLVTimeToLive)
	if !ok || TimeToLive(ttlVal) != 120 {
		t.Fatal("expected TimeToLive TLV with value 120")
	}
}

func TestManagementAddressResize(t *testing.T) {
	mgmt4 := ManagementAddress{
		AddrSubtype: 1, // IPv4
		Addr:        []byte{10, 0, 0, 1},
		IfSubtype:   2,
		IfNumber:    7,
		OID:         nil,
	}
	mgmtTLV := buildTLV(TLVManagementAddress, EncodeManagementAddress(mgmt4))
	trailing := buildTLV(TLVSystemName, []byte("switch1"))
	end := buildTLV(TLVEndOfLLDPDU, nil)

	var buf []byte
	buf = append(buf, mgmtTLV...)
	buf = append(buf, trailing...)
	buf = append(buf, end...)
	trailingCopy := append([]byte(nil), trailing...)
	endCopy := append([]byte(nil), end...)

	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}

	var unit tlv.Unit
	err = l.Frame().ForEachTLV(func(typ TLVType, value []byte) error {
		if typ == TLVManagementAddress && unit.Value == nil {
			unit = tlv.Unit{Kind: uint16(typ), Value: value, Start: 0, End: 2 + len(value)}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	mgmt6 := ManagementAddress{
		AddrSubtype: 2, // IPv6
		Addr:        make([]byte, 16),
		IfSubtype:   2,
		IfNumber:    7,
	}
	for i := range mgmt6.Addr {
		mgmt6.Addr[i] = byte(i)
	}
	newValue := EncodeManagementAddress(mgmt6)

	newUnit, err := l.ResizeTLV(unit, newValue)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(newUnit.Value, newValue) {
		t.Fatal("resized TLV value mismatch")
	}

	// The trailing TLVs must be byte-identical to before the resize.
	after := l.Header().Actual()
	afterTrailing := after[newUnit.End : newUnit.End+len(trailingCopy)]
	if !bytes.Equal(afterTrailing, trailingCopy) {
		t.Fatal("trailing SystemName TLV changed after resize")
	}
	afterEnd := after[newUnit.End+len(trailingCopy):]
	if !bytes.Equal(afterEnd, endCopy) {
		t.Fatal("trailing EndOfLLDPDU TLV changed after resize")
	}

	// Re-reading the TLV list yields the new value.
	decoded := DecodeManagementAddress(newUnit.Value)
	if len(decoded.Addr) != 16 {
		t.Fatalf("expected 16-byte IPv6 address after resize, got %d bytes", len(decoded.Addr))
	}
}
