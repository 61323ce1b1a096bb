package layer

import (
	"testing"

	"github.com/soypat/packetview/bslice"
)

// rawLayer is the minimal Layer implementation used to exercise Bytes'
// recursion without depending on any concrete protocol package.
type rawLayer struct {
	Base
	kind Kind
}

func (r *rawLayer) Kind() Kind                   { return r.kind }
func (r *rawLayer) Bytes() []byte                { return Bytes(r) }
func (r *rawLayer) UpdateCalculatedValues() error { return nil }

func newRawLayer(buf []byte, kind Kind) *rawLayer {
	return &rawLayer{Base: NewBase(bslice.New(buf)), kind: kind}
}

func TestBaseSetChildAndPayload(t *testing.T) {
	var b Base
	if b.Payload().Tag != PayloadNone {
		t.Fatalf("zero-value Base payload tag = %v, want PayloadNone", b.Payload().Tag)
	}
	child := newRawLayer([]byte{1, 2}, KindRaw)
	b.SetChild(child)
	p := b.Payload()
	if p.Tag != PayloadChild || p.Child != child {
		t.Fatalf("SetChild did not set a PayloadChild pointing at child")
	}
	b.ClearPayload()
	if b.Payload().Tag != PayloadNone {
		t.Fatal("ClearPayload did not reset the payload tag")
	}
}

func TestBaseSetBytes(t *testing.T) {
	buf := []byte{0xAA, 0xBB, 0xCC}
	var b Base
	s, err := bslice.NewAt(buf, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	b.SetBytes(s)
	p := b.Payload()
	if p.Tag != PayloadBytes {
		t.Fatalf("payload tag = %v, want PayloadBytes", p.Tag)
	}
	if got := p.Bytes.Actual(); got[0] != 0xBB || got[1] != 0xCC {
		t.Fatalf("payload bytes = %v, want [0xBB 0xCC]", got)
	}
}

func TestBytesRecursesThroughChildren(t *testing.T) {
	grandchildBuf := []byte{0x03, 0x04}
	grandchild := newRawLayer(grandchildBuf, KindRaw)

	childBuf := []byte{0x02}
	child := newRawLayer(childBuf, KindRaw)
	child.SetChild(grandchild)

	rootBuf := []byte{0x01}
	root := newRawLayer(rootBuf, KindRaw)
	root.SetChild(child)

	got := Bytes(root)
	want := []byte{0x01, 0x02, 0x03, 0x04}
	if len(got) != len(want) {
		t.Fatalf("Bytes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Bytes() = %v, want %v", got, want)
		}
	}
}

func TestBytesWithTerminalPayload(t *testing.T) {
	buf := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	hdr, err := bslice.NewAt(buf, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	root := &rawLayer{Base: NewBase(hdr), kind: KindRaw}
	tail, err := bslice.NewAt(buf, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	root.SetBytes(tail)

	got := Bytes(root)
	want := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	if len(got) != len(want) {
		t.Fatalf("Bytes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Bytes() = %v, want %v", got, want)
		}
	}
}

func TestKindString(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{KindEthernet, "Ethernet"},
		{KindIPv4, "IPv4"},
		{KindTCP, "TCP"},
		{Kind(0xFFFF), "Invalid"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", c.k, got, c.want)
		}
	}
}
