package rsfs

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// sectorChainBuilder accumulates sectors into a data file buffer, handing
// back the first-sector number of each chain it writes. Sector 0 is always
// reserved/unused: the first valid sector is 1.
type sectorChainBuilder struct {
	sectors [][sectorSize]byte
}

func newSectorChainBuilder() *sectorChainBuilder {
	b := &sectorChainBuilder{}
	b.sectors = append(b.sectors, [sectorSize]byte{}) // sector 0, reserved
	return b
}

// writeChain lays down a correct sector chain for (category, entryID,
// payload) and returns the first sector number.
func (b *sectorChainBuilder) writeChain(category Category, entryID uint32, payload []byte) uint32 {
	headerSize, chunkSize := standardHeaderSize, standardChunkSize
	if entryID > extendedEntryThreshold {
		headerSize, chunkSize = extendedHeaderSize, extendedChunkSize
	}

	if len(payload) == 0 {
		return 0
	}

	first := uint32(len(b.sectors))
	remaining := payload
	var sequence uint16

	for len(remaining) > 0 {
		take := len(remaining)
		if take > chunkSize {
			take = chunkSize
		}

		thisSector := uint32(len(b.sectors))
		isLast := take == len(remaining)

		var next uint32
		if !isLast {
			next = thisSector + 1
		}

		var sec [sectorSize]byte
		writeSectorHeader(sec[:headerSize], headerSize, entryID, sequence, next, uint8(category)+1)
		copy(sec[headerSize:], remaining[:take])

		b.sectors = append(b.sectors, sec)

		remaining = remaining[take:]
		sequence++
	}

	return first
}

func writeSectorHeader(b []byte, headerSize int, entryID uint32, sequence uint16, nextSector uint32, nextCategoryPlusOne uint8) {
	off := 0
	if headerSize == extendedHeaderSize {
		b[0] = byte(entryID >> 24)
		b[1] = byte(entryID >> 16)
		b[2] = byte(entryID >> 8)
		b[3] = byte(entryID)
		off = 4
	} else {
		b[0] = byte(entryID >> 8)
		b[1] = byte(entryID)
		off = 2
	}
	b[off] = byte(sequence >> 8)
	b[off+1] = byte(sequence)
	b[off+2] = byte(nextSector >> 16)
	b[off+3] = byte(nextSector >> 8)
	b[off+4] = byte(nextSector)
	b[off+5] = nextCategoryPlusOne
}

func (b *sectorChainBuilder) bytes() []byte {
	out := make([]byte, 0, len(b.sectors)*sectorSize)
	for _, s := range b.sectors {
		out = append(out, s[:]...)
	}
	return out
}

// buildIndexBytes lays out index records at entryID*6, sized to cover the
// highest entryID given. Gaps default to the zero record.
func buildIndexBytes(entries map[uint32]IndexEntry) []byte {
	var maxID uint32
	for id := range entries {
		if id > maxID {
			maxID = id
		}
	}

	out := make([]byte, (maxID+1)*indexEntrySize)
	for id, e := range entries {
		off := id * indexEntrySize
		out[off] = byte(e.Size >> 16)
		out[off+1] = byte(e.Size >> 8)
		out[off+2] = byte(e.Size)
		out[off+3] = byte(e.FirstSector >> 16)
		out[off+4] = byte(e.FirstSector >> 8)
		out[off+5] = byte(e.FirstSector)
	}
	return out
}

// testCacheDir writes a synthetic cache directory: dataFile bytes plus one
// index file per category->records map, and returns its path.
func testCacheDir(t *testing.T, dataFile []byte, indices map[Category]map[uint32]IndexEntry) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, dataFileName), dataFile, 0o600))

	for category, entries := range indices {
		name := filepath.Join(dir, indexFileName(category))
		require.NoError(t, os.WriteFile(name, buildIndexBytes(entries), 0o600))
	}

	return dir
}

func indexFileName(category Category) string {
	return indexFilePrefix + strconv.Itoa(int(category))
}
