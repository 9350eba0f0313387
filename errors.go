package rsfs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel error kinds. Use errors.Is against these; the concrete types
// below carry the detail and unwrap to one of these.
var (
	// ErrDataFileNotFound indicates main_file_cache.dat could not be opened.
	ErrDataFileNotFound = errors.New("rsfs: data file not found")
	// ErrIndexNotFound indicates no index file exists for a requested category.
	ErrIndexNotFound = errors.New("rsfs: index not found")
	// ErrEntryNotFound indicates an index pointer landed beyond the end of the index file.
	ErrEntryNotFound = errors.New("rsfs: index entry not found")
	// ErrArchiveNotFound indicates the archive-category read for an archive type failed.
	ErrArchiveNotFound = errors.New("rsfs: archive not found")
	// ErrEmptyArchive indicates the archive decoder was given zero bytes.
	ErrEmptyArchive = errors.New("rsfs: empty archive")
	// ErrInvalidBlockHeader indicates a sector header slice was neither 8 nor 10 bytes.
	// Reserved for defensive callers; unreachable via the public Read path.
	ErrInvalidBlockHeader = errors.New("rsfs: invalid block header length")
	// ErrSectorMismatch indicates a sector-chain integrity check failed.
	ErrSectorMismatch = errors.New("rsfs: sector mismatch")
	// ErrArchiveSizeOverflow indicates an archive's 3-byte size field claims more
	// bytes than remain in the buffer being decoded.
	ErrArchiveSizeOverflow = errors.New("rsfs: archive size exceeds remaining buffer")

	// ErrCompressionEmpty indicates the codec was given zero bytes to decompress.
	ErrCompressionEmpty = errors.New("rsfs: empty input")
	// ErrCompressionTooShort indicates the codec was given fewer bytes than the
	// minimum needed to contain a valid stream.
	ErrCompressionTooShort = errors.New("rsfs: input too short")
	// ErrInvalidGzipHeader indicates the first two bytes were not the gzip magic.
	ErrInvalidGzipHeader = errors.New("rsfs: invalid gzip header")
)

// DataFileNotFoundError reports that main_file_cache.dat is absent from a
// cache directory.
type DataFileNotFoundError struct {
	Path string
}

func (e *DataFileNotFoundError) Error() string {
	return fmt.Sprintf("rsfs: data file not found: %s", e.Path)
}

func (e *DataFileNotFoundError) Unwrap() error { return ErrDataFileNotFound }

// IndexNotFoundError reports that no index file is open for a category.
type IndexNotFoundError struct {
	Category Category
}

func (e *IndexNotFoundError) Error() string {
	return fmt.Sprintf("rsfs: index not found for category %d", e.Category)
}

func (e *IndexNotFoundError) Unwrap() error { return ErrIndexNotFound }

// EntryNotFoundError reports that an entry-id has no index record.
type EntryNotFoundError struct {
	EntryID uint32
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("rsfs: index entry not found: %d", e.EntryID)
}

func (e *EntryNotFoundError) Unwrap() error { return ErrEntryNotFound }

// ArchiveNotFoundError reports that the archive-category read failed for an archive id.
type ArchiveNotFoundError struct {
	ID uint32
}

func (e *ArchiveNotFoundError) Error() string {
	return fmt.Sprintf("rsfs: archive not found: %d", e.ID)
}

func (e *ArchiveNotFoundError) Unwrap() error { return ErrArchiveNotFound }

// InvalidBlockHeaderError reports a sector header slice of the wrong length.
type InvalidBlockHeaderError struct {
	Len int
}

func (e *InvalidBlockHeaderError) Error() string {
	return fmt.Sprintf("rsfs: invalid block header length %d, want 8 or 10", e.Len)
}

func (e *InvalidBlockHeaderError) Unwrap() error { return ErrInvalidBlockHeader }

// SectorMismatchError reports a failed integrity check inside a sector chain.
// Field is one of "category", "sequence", "entry_id".
type SectorMismatchError struct {
	Field    string
	Expected uint32
	Actual   uint32
}

func (e *SectorMismatchError) Error() string {
	return fmt.Sprintf("rsfs: sector %s mismatch: expected %d, got %d", e.Field, e.Expected, e.Actual)
}

func (e *SectorMismatchError) Unwrap() error { return ErrSectorMismatch }

// CompressionTooShortError reports that compressed input was shorter than
// the minimum length a valid stream could have.
type CompressionTooShortError struct {
	Given int
	Min   int
}

func (e *CompressionTooShortError) Error() string {
	return fmt.Sprintf("rsfs: compressed input too short: got %d bytes, need at least %d", e.Given, e.Min)
}

func (e *CompressionTooShortError) Unwrap() error { return ErrCompressionTooShort }

// wrapIO annotates an underlying I/O failure with the operation that triggered it.
func wrapIO(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, "rsfs: io: %s", op)
}
