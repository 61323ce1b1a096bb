package ethernet

import "hash/crc32"

// crcTable is the IEEE CRC-32 table used for Ethernet FCS calculation.
var crcTable = crc32.MakeTable(crc32.IEEE)

// FCS32 computes the Ethernet Frame Check Sequence for data, which should
// span destination MAC through payload, excluding any existing FCS. Most
// captures (including every example in this package's tests) are taken
// below the FCS and never carry one; FCS32 exists for link layers that do
// capture it (some 802.11 monitor-mode captures).
func FCS32(data []byte) uint32 { return crc32.Checksum(data, crcTable) }
