package pppoe

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/soypat/packetview/layer"
	"github.com/soypat/packetview/ppp"
	"github.com/soypat/packetview/tlv"
)

func TestDiscoveryLayerResizeTag(t *testing.T) {
	hostUniq := buildTag(TagHostUniq, []byte{1, 2})
	acName := buildTag(TagACName, []byte("concentrator"))
	end := buildTag(TagEndOfList, nil)

	var tags []byte
	tags = append(tags, hostUniq...)
	tags = append(tags, acName...)
	tags = append(tags, end...)

	buf := make([]byte, sizeHeader+len(tags))
	buf[0] = 0x11
	buf[1] = byte(CodePADI)
	binary.BigEndian.PutUint16(buf[4:6], uint16(len(tags)))
	copy(buf[sizeHeader:], tags)

	acNameCopy := append([]byte(nil), acName...)
	endCopy := append([]byte(nil), end...)

	l, err := NewDiscoveryLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	if l.Kind() != layer.KindPPPoEDiscovery {
		t.Fatal("expected KindPPPoEDiscovery")
	}

	var unit tlv.Unit
	err = l.ForEachTag(func(typ TagType, value []byte) error {
		if typ == TagHostUniq && unit.Value == nil {
			unit = tlv.Unit{Kind: uint16(typ), Value: value, Start: 0, End: 4 + len(value)}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	newValue := []byte{9, 9, 9, 9, 9, 9}
	newUnit, err := l.ResizeTag(unit, newValue)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(newUnit.Value, newValue) {
		t.Fatal("resized tag value mismatch")
	}

	after := l.Header().Actual()
	afterACName := after[sizeHeader+newUnit.End : sizeHeader+newUnit.End+len(acNameCopy)]
	if !bytes.Equal(afterACName, acNameCopy) {
		t.Fatal("trailing ACName tag changed after resize")
	}
	afterEnd := after[sizeHeader+newUnit.End+len(acNameCopy):]
	if !bytes.Equal(afterEnd, endCopy) {
		t.Fatal("trailing EndOfList tag changed after resize")
	}
	if l.Frame().PayloadLength() != uint16(len(after)-sizeHeader) {
		t.Fatal("Length field not updated after resize")
	}
}

func TestSessionLayerUpdateCalculatedValues(t *testing.T) {
	buf := make([]byte, sizeHeader)
	buf[0] = 0x11
	buf[1] = byte(CodeSession)

	l, err := NewSessionLayer(buf)
	if err != nil {
		t.Fatal(err)
	}
	if l.Kind() != layer.KindPPPoESession {
		t.Fatal("expected KindPPPoESession")
	}

	pppBuf := []byte{0x00, 0x21, 1, 2, 3, 4}
	child, err := ppp.NewLayer(pppBuf)
	if err != nil {
		t.Fatal(err)
	}
	child.SetBytes(child.Header().Encapsulated())
	l.SetChild(child)

	if err := l.UpdateCalculatedValues(); err != nil {
		t.Fatal(err)
	}
	if l.Frame().PayloadLength() != uint16(len(pppBuf)) {
		t.Fatalf("got length %d, want %d", l.Frame().PayloadLength(), len(pppBuf))
	}
}
