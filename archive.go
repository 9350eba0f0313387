package rsfs

import (
	"encoding/binary"
	"io"

	"github.com/sirupsen/logrus"
)

const archiveHeaderSize = 6
const archiveDescriptorSize = 10

// ArchiveEntry is one named sub-file decoded out of an Archive.
type ArchiveEntry struct {
	Identifier       int32
	UncompressedSize uint32
	CompressedSize   uint32
	Data             []byte
}

// Archive is a decoded container of named sub-files, keyed by the 32-bit
// signed name-hash of their original file name (see NameHash).
type Archive struct {
	entries map[int32]*ArchiveEntry
	// preExtracted records whether the outer envelope was bzip2-compressed
	// (entries were then stored raw) as opposed to per-entry-compressed.
	preExtracted bool
}

// EntryByName looks up an entry by the name-hash of name.
func (a *Archive) EntryByName(name string) (*ArchiveEntry, bool) {
	return a.EntryByID(NameHash(name))
}

// EntryByID looks up an entry directly by its 32-bit signed identifier.
func (a *Archive) EntryByID(id int32) (*ArchiveEntry, bool) {
	e, ok := a.entries[id]
	return e, ok
}

// EntryCount returns the number of decoded entries.
func (a *Archive) EntryCount() int {
	return len(a.entries)
}

// defaultArchiveLogger is used by the public DecodeArchive entry point when
// no caller-supplied logger is available (e.g. called outside a FileSystem).
// Silent by default; see WithLogger on FileSystem for the wired-in path.
var defaultArchiveLogger = logrus.New()

func init() {
	defaultArchiveLogger.SetOutput(io.Discard)
}

// DecodeArchive parses the nested archive container format: a 6-byte
// header (uncompressed/compressed size of an optional whole-archive bzip2
// envelope), an optional bzip2 stream, a 2-byte entry count, N 10-byte
// per-entry descriptors, then the entries' payload bytes in the same order.
func DecodeArchive(data []byte) (*Archive, error) {
	return decodeArchive(data, defaultArchiveLogger)
}

func decodeArchive(data []byte, logger *logrus.Logger) (*Archive, error) {
	if len(data) == 0 {
		return nil, ErrEmptyArchive
	}
	if len(data) < archiveHeaderSize {
		return nil, &CompressionTooShortError{Given: len(data), Min: archiveHeaderSize}
	}

	uncompressedSize := readUint24(data[0:3])
	compressedSize := readUint24(data[3:6])
	buf := data[archiveHeaderSize:]

	preExtracted := uncompressedSize != compressedSize
	if preExtracted {
		if int(compressedSize) > len(buf) {
			return nil, ErrArchiveSizeOverflow
		}
		decoded, err := DecompressBzip2(buf[:compressedSize], int(uncompressedSize))
		if err != nil {
			return nil, err
		}
		buf = decoded
	}

	if len(buf) < 2 {
		return nil, &CompressionTooShortError{Given: len(buf), Min: 2}
	}
	count := int(binary.BigEndian.Uint16(buf[0:2]))
	buf = buf[2:]

	if len(buf) < count*archiveDescriptorSize {
		return nil, ErrArchiveSizeOverflow
	}

	identifiers := make([]int32, count)
	uncompressedSizes := make([]uint32, count)
	compressedSizes := make([]uint32, count)

	for i := 0; i < count; i++ {
		rec := buf[i*archiveDescriptorSize : (i+1)*archiveDescriptorSize]
		identifiers[i] = int32(binary.BigEndian.Uint32(rec[0:4]))
		uncompressedSizes[i] = readUint24(rec[4:7])
		compressedSizes[i] = readUint24(rec[7:10])
	}
	buf = buf[count*archiveDescriptorSize:]

	entries := make(map[int32]*ArchiveEntry, count)
	for i := 0; i < count; i++ {
		identifier := identifiers[i]
		uSize, cSize := uncompressedSizes[i], compressedSizes[i]

		var payload []byte
		if preExtracted {
			if int(uSize) > len(buf) {
				return nil, ErrArchiveSizeOverflow
			}
			payload = append([]byte(nil), buf[:uSize]...)
			buf = buf[uSize:]
		} else {
			if int(cSize) > len(buf) {
				return nil, ErrArchiveSizeOverflow
			}
			decoded, err := DecompressBzip2(buf[:cSize], int(uSize))
			if err != nil {
				return nil, err
			}
			payload = decoded
			buf = buf[cSize:]
		}

		if _, dup := entries[identifier]; dup {
			logger.WithField("identifier", identifier).Warn("duplicate archive entry identifier, overwriting")
		}

		entries[identifier] = &ArchiveEntry{
			Identifier:       identifier,
			UncompressedSize: uSize,
			CompressedSize:   cSize,
			Data:             payload,
		}
	}

	return &Archive{entries: entries, preExtracted: preExtracted}, nil
}

func readUint24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}
