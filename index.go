package rsfs

import "os"

// indexEntrySize is the width in bytes of one index-file record.
const indexEntrySize = 6

// Category identifies one index file within a cache directory. It is an
// open-ended numeric tag: 0..255 are all addressable, with the low values
// carrying conventional meaning.
type Category uint8

// Named categories with well-known meaning. Higher numeric categories exist
// in the corpus but have no conventional name.
const (
	CategoryArchive   Category = 0
	CategoryModel     Category = 1
	CategoryAnimation Category = 2
	CategoryMidi      Category = 3
	CategoryMap       Category = 4
)

// IndexEntry is a decoded index-file record: the logical payload size and
// the first data-file sector of the entry's sector chain. A zero-valued
// IndexEntry is legal and denotes an empty payload.
type IndexEntry struct {
	ID          uint32
	Size        uint32
	FirstSector uint32
}

// Index is the per-category table mapping entry-id to (size, first-sector).
// It caches the underlying file's length at construction to avoid a stat
// syscall on every lookup; the file is never mutated afterward.
type Index struct {
	category Category
	file     *os.File
	fileSize int64
}

func openIndex(category Category, file *os.File) (*Index, error) {
	fi, err := file.Stat()
	if err != nil {
		return nil, wrapIO(err, "stat index file")
	}
	return &Index{category: category, file: file, fileSize: fi.Size()}, nil
}

// Category returns the index's category id.
func (idx *Index) Category() Category { return idx.category }

// FileCount returns the maximum number of potentially-addressable entries,
// i.e. cached_file_size / 6. Gaps and all-zero entries are included.
func (idx *Index) FileCount() int {
	return int(idx.fileSize / indexEntrySize)
}

// Entry resolves one index-file record. Returns EntryNotFoundError if
// entryID*6 falls at or beyond the end of the index file.
func (idx *Index) Entry(entryID uint32) (IndexEntry, error) {
	ptr := int64(entryID) * indexEntrySize
	if ptr >= idx.fileSize {
		return IndexEntry{}, &EntryNotFoundError{EntryID: entryID}
	}

	var buf [indexEntrySize]byte
	if _, err := idx.file.ReadAt(buf[:], ptr); err != nil {
		return IndexEntry{}, wrapIO(err, "read index entry")
	}

	size := uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2])
	firstSector := uint32(buf[3])<<16 | uint32(buf[4])<<8 | uint32(buf[5])

	return IndexEntry{ID: entryID, Size: size, FirstSector: firstSector}, nil
}

func (idx *Index) Close() error {
	return idx.file.Close()
}
