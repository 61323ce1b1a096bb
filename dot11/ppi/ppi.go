// Package ppi implements a reader for the Per-Packet Information (PPI)
// pseudo-header that some 802.11 capture tools emit in place of
// radiotap: a fixed prefix (version, flags, length, DLT) followed by a
// self-describing field list, per spec §4.4's "length-delimited field
// sets with lossless Unknown(type, bytes) preservation" (DLT, flags,
// and the 802.11-Common field are the named accessors spec calls for).
//
// Unlike radiotap's bitmask-plus-fixed-size-table field set, PPI fields
// are individually length-prefixed (CACE Technologies PPI header
// specification, §3.2: 16-bit little-endian type, 16-bit little-endian
// length, then data), so they iterate through the same generic tlv
// package framework lldp/pppoe/dot11 use, just with a little-endian
// Peek (grounded on bslice's Uint16LE helpers, since PPI — like the
// 802.11 frames it precedes — is little-endian on the wire).
package ppi

import (
	"encoding/binary"
	"errors"

	"github.com/soypat/packetview/layer"
	"github.com/soypat/packetview/tlv"
)

var errShort = errors.New("ppi: buffer shorter than declared length")

const sizeFixedHeader = 8

// FieldType is a PPI field's 16-bit type identifier (CACE PPI spec
// §3.3).
type FieldType uint16

const (
	FieldType80211Common FieldType = 2
	FieldType80211nMAC   FieldType = 3
	FieldType80211nMACPHY FieldType = 4
	FieldTypeSpectrum     FieldType = 5
)

// fieldHeader implements tlv.Header over PPI's little-endian
// 2-byte-type/2-byte-length field header.
type fieldHeader struct{}

func (fieldHeader) Peek(region []byte, off int) (kind uint16, size, headerSize int, terminal bool, err error) {
	if off+4 > len(region) {
		return 0, 0, 0, false, tlv.ErrShortBuffer
	}
	typ := binary.LittleEndian.Uint16(region[off : off+2])
	length := int(binary.LittleEndian.Uint16(region[off+2 : off+4]))
	return typ, 4 + length, 4, false, nil
}

func (fieldHeader) HeaderSize() int { return 4 }

func (fieldHeader) WriteHeader(dst []byte, kind uint16, valueLen int) error {
	if valueLen > 0xffff {
		return layer.ErrValueTooLarge
	}
	binary.LittleEndian.PutUint16(dst[0:2], kind)
	binary.LittleEndian.PutUint16(dst[2:4], uint16(valueLen))
	return nil
}

// NewHeader returns a Header over buf. An error is returned if buf is
// shorter than the fixed 8-byte prefix or the declared Length field.
func NewHeader(buf []byte) (Header, error) {
	if len(buf) < sizeFixedHeader {
		return Header{}, errShort
	}
	h := Header{buf: buf}
	if len(buf) < int(h.Length()) {
		return Header{}, errShort
	}
	return h, nil
}

// Header provides field accessors over a PPI pseudo-header.
type Header struct {
	buf []byte
}

// RawData returns the underlying slice the Header was created over.
func (h Header) RawData() []byte { return h.buf }

// Version returns the pfh_version byte.
func (h Header) Version() uint8 { return h.buf[0] }

// Flags returns the pfh_flags byte.
func (h Header) Flags() uint8 { return h.buf[1] }

// Length returns the pfh_len field: the total length in bytes of this
// PPI header, including the field list.
func (h Header) Length() uint16 { return binary.LittleEndian.Uint16(h.buf[2:4]) }

// DLT returns the pfh_dlt field: the libpcap link type of the frame
// following this header.
func (h Header) DLT() uint32 { return binary.LittleEndian.Uint32(h.buf[4:8]) }

// ForEachField walks this header's field list, calling fn once per
// field.
func (h Header) ForEachField(fn func(typ FieldType, value []byte) error) error {
	end := int(h.Length())
	if end > len(h.buf) {
		end = len(h.buf)
	}
	return tlv.Iterate(h.buf[sizeFixedHeader:end], fieldHeader{}, func(u tlv.Unit) error {
		return fn(FieldType(u.Kind), u.Value)
	})
}

// Find returns the value of the first field of the given type, or
// (nil, false) if none is present — used for the 802.11-Common field
// spec calls out by name, and equally for any other/unknown field
// type, preserving it losslessly via its own raw bytes.
func (h Header) Find(typ FieldType) (value []byte, ok bool) {
	h.ForEachField(func(t FieldType, v []byte) error {
		if t == typ && !ok {
			value, ok = v, true
		}
		return nil
	})
	return value, ok
}

// CommonFlags80211 decodes the flags subfield of an 802.11-Common
// field value (CACE PPI spec §4.1.2), the first named subfield every
// PPI-emitting tool sets.
func CommonFlags80211(value []byte) uint16 { return binary.LittleEndian.Uint16(value[2:4]) }

// Payload returns the bytes following this PPI header: the captured
// 802.11 frame itself.
func (h Header) Payload() []byte {
	l := int(h.Length())
	if l > len(h.buf) {
		l = len(h.buf)
	}
	return h.buf[l:]
}
