package rsfs

import "os"

const sectorSize = 520

const (
	standardHeaderSize = 8
	standardChunkSize  = 512
	extendedHeaderSize = 10
	extendedChunkSize  = 510
)

// extendedEntryThreshold is the entry-id above which the extended sector
// header layout is used. The choice is determined by the entry-id alone,
// never negotiated on disk: entryID == 65535 still uses the standard layout.
const extendedEntryThreshold = 65535

// readSectors reassembles the logical payload of one (category, entryID)
// pair by walking its sector chain in the data file, starting at
// entry.FirstSector, validating each sector's header against the expected
// (category+1, sequence, entry-id) triple.
func readSectors(data *os.File, category Category, entryID uint32, entry IndexEntry) ([]byte, error) {
	out := make([]byte, 0, entry.Size)
	if entry.Size == 0 {
		return out, nil
	}

	headerSize, chunkSize := standardHeaderSize, standardChunkSize
	if entryID > extendedEntryThreshold {
		headerSize, chunkSize = extendedHeaderSize, extendedChunkSize
	}

	var block [sectorSize]byte
	sector := entry.FirstSector
	remaining := entry.Size
	var sequence uint16

	for remaining > 0 {
		if _, err := data.ReadAt(block[:], int64(sector)*sectorSize); err != nil {
			return nil, wrapIO(err, "read sector")
		}

		hdrEntryID, hdrSequence, nextSector, nextCategoryPlusOne := parseSectorHeader(block[:headerSize], headerSize)

		if nextCategoryPlusOne != uint32(category)+1 {
			return nil, &SectorMismatchError{Field: "category", Expected: uint32(category) + 1, Actual: nextCategoryPlusOne}
		}
		if hdrSequence != uint32(sequence) {
			return nil, &SectorMismatchError{Field: "sequence", Expected: uint32(sequence), Actual: hdrSequence}
		}
		if hdrEntryID != entryID {
			return nil, &SectorMismatchError{Field: "entry_id", Expected: entryID, Actual: hdrEntryID}
		}

		take := remaining
		if take > uint32(chunkSize) {
			take = uint32(chunkSize)
		}

		out = append(out, block[headerSize:headerSize+int(take)]...)

		remaining -= take
		sector = nextSector
		sequence++
	}

	return out, nil
}

// parseSectorHeader decodes the big-endian sector header, returning
// (entryID, sequence, nextSector, nextCategoryPlusOne). headerSize must be
// 8 (standard: 2-byte entry-id) or 10 (extended: 4-byte entry-id).
func parseSectorHeader(b []byte, headerSize int) (entryID, sequence, nextSector, nextCategoryPlusOne uint32) {
	var off int
	if headerSize == extendedHeaderSize {
		entryID = uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
		off = 4
	} else {
		entryID = uint32(b[0])<<8 | uint32(b[1])
		off = 2
	}

	sequence = uint32(b[off])<<8 | uint32(b[off+1])
	nextSector = uint32(b[off+2])<<16 | uint32(b[off+3])<<8 | uint32(b[off+4])
	nextCategoryPlusOne = uint32(b[off+5])

	return entryID, sequence, nextSector, nextCategoryPlusOne
}
