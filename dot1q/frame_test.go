package dot1q

import (
	"math/rand"
	"testing"

	"github.com/soypat/packetview/ethernet"
)

func TestTagFieldRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		pcp := uint8(rng.Intn(8))
		dei := rng.Intn(2) == 1
		vid := uint16(rng.Intn(4096))
		tag := NewTag(pcp, dei, vid)
		if tag.PriorityCodePoint() != pcp {
			t.Fatalf("pcp mismatch: got %d want %d", tag.PriorityCodePoint(), pcp)
		}
		if tag.DropEligibleIndicator() != dei {
			t.Fatalf("dei mismatch: got %v want %v", tag.DropEligibleIndicator(), dei)
		}
		if tag.VLANIdentifier() != vid {
			t.Fatalf("vid mismatch: got %d want %d", tag.VLANIdentifier(), vid)
		}
	}
}

func TestFrameFieldRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	frm, err := NewFrame(buf)
	if err != nil {
		t.Fatal(err)
	}
	tag := NewTag(5, true, 100)
	frm.SetTag(tag)
	frm.SetInnerType(ethernet.TypeIPv4)

	if frm.Tag() != tag {
		t.Fatalf("tag mismatch: got %v want %v", frm.Tag(), tag)
	}
	if frm.InnerType() != ethernet.TypeIPv4 {
		t.Fatalf("inner type mismatch: got %v", frm.InnerType())
	}
	if frm.IsStacked() {
		t.Fatal("IPv4 inner type must not be seen as stacked VLAN")
	}
}

func TestFrameIsStacked(t *testing.T) {
	buf := make([]byte, 4)
	frm, _ := NewFrame(buf)
	frm.SetInnerType(ethernet.TypeVLAN)
	if !frm.IsStacked() {
		t.Fatal("expected inner 0x8100 to be detected as QinQ stacking")
	}
}

func TestNewFrameShortBuffer(t *testing.T) {
	_, err := NewFrame(make([]byte, 3))
	if err == nil {
		t.Fatal("expected error for 3-byte buffer")
	}
}
