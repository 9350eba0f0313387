package rsfs

import "encoding/binary"

// VersionList decodes one of the cache's version side-tables: a flat array
// of big-endian uint16 version numbers, one per indexed file, with no
// internal length prefix (the caller already knows the byte length from
// the archive entry that contains it). Clients of the original cache used
// these to decide what needed re-downloading; this package only decodes
// them; it never writes or updates anything.
type VersionList struct {
	versions []uint32
}

// DecodeVersionList decodes data as a flat array of big-endian uint16
// version numbers. Any trailing odd byte is ignored.
func DecodeVersionList(data []byte) VersionList {
	count := len(data) / 2
	versions := make([]uint32, count)
	for i := 0; i < count; i++ {
		versions[i] = uint32(binary.BigEndian.Uint16(data[i*2 : i*2+2]))
	}
	return VersionList{versions: versions}
}

// Get returns the version for fileID, or false if fileID is out of range.
func (v VersionList) Get(fileID uint32) (uint32, bool) {
	if int(fileID) >= len(v.versions) {
		return 0, false
	}
	return v.versions[fileID], true
}

// Len returns the number of decoded version entries.
func (v VersionList) Len() int { return len(v.versions) }

// CrcList decodes the companion CRC32 side-table: a flat array of
// big-endian uint32 checksums, one per indexed file, again with no
// internal length prefix.
type CrcList struct {
	crcs []uint32
}

// DecodeCrcList decodes data as a flat array of big-endian uint32 CRC32
// values. Any trailing partial record is ignored.
func DecodeCrcList(data []byte) CrcList {
	count := len(data) / 4
	crcs := make([]uint32, count)
	for i := 0; i < count; i++ {
		crcs[i] = binary.BigEndian.Uint32(data[i*4 : i*4+4])
	}
	return CrcList{crcs: crcs}
}

// Get returns the CRC32 for fileID, or false if fileID is out of range.
func (c CrcList) Get(fileID uint32) (uint32, bool) {
	if int(fileID) >= len(c.crcs) {
		return 0, false
	}
	return c.crcs[fileID], true
}

// Len returns the number of decoded CRC entries.
func (c CrcList) Len() int { return len(c.crcs) }
