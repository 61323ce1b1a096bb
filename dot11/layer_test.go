package dot11

import (
	"bytes"
	"testing"

	"github.com/soypat/packetview/layer"
	"github.com/soypat/packetview/tlv"
)

func buildIE(id InformationElementID, value []byte) []byte {
	out := make([]byte, 2+len(value))
	ieHeader{}.WriteHeader(out, uint16(id), len(value))
	copy(out[2:], value)
	return out
}

func TestLayerIEResizePreservesTrailing(t *testing.T) {
	ssid := buildIE(IESSID, []byte("short"))
	rates := buildIE(IESupportedRates, []byte{0x82, 0x84, 0x8b, 0x96})

	header := make([]byte, 24)
	header[0] = byte(TypeManagement)<<2 | byte(SubtypeBeacon)<<4

	var buf []byte
	buf = append(buf, header...)
	buf = append(buf, ssid...)
	buf = append(buf, rates...)
	ratesCopy := append([]byte(nil), rates...)

	l, err := NewLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	if l.Kind() != layer.KindDot11 {
		t.Fatal("expected KindDot11")
	}
	if !l.IsManagement() {
		t.Fatal("expected a management frame")
	}

	var unit tlv.Unit
	err = l.ForEachIE(func(id InformationElementID, value []byte) error {
		if id == IESSID && unit.Value == nil {
			unit = tlv.Unit{Kind: uint16(id), Value: value, Start: 0, End: 2 + len(value)}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	newSSID := []byte("a much longer ssid value")
	newUnit, err := l.ResizeIE(unit, newSSID)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(newUnit.Value, newSSID) {
		t.Fatal("resized IE value mismatch")
	}

	headerLen := l.Frame().HeaderLength()
	after := l.Header().Actual()
	afterRates := after[headerLen+newUnit.End : headerLen+newUnit.End+len(ratesCopy)]
	if !bytes.Equal(afterRates, ratesCopy) {
		t.Fatal("trailing SupportedRates IE changed after resize")
	}

	// Re-parsing the IE list from scratch yields the new value and the
	// unchanged trailing IE.
	var found []byte
	var foundRates []byte
	err = l.ForEachIE(func(id InformationElementID, value []byte) error {
		switch id {
		case IESSID:
			found = value
		case IESupportedRates:
			foundRates = append([]byte(nil), value...)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(found, newSSID) {
		t.Fatal("re-parsed SSID IE does not match resized value")
	}
	if !bytes.Equal(foundRates, ratesCopy[2:]) {
		t.Fatal("re-parsed SupportedRates IE changed after resize")
	}
}
