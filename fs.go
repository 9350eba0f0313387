package rsfs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	dataFileName    = "main_file_cache.dat"
	indexFilePrefix = "main_file_cache.idx"
	maxIndexCount   = 255
)

// FileSystem is the facade over one cache directory: the monolithic data
// file plus whichever per-category index files exist. It is constructed
// once via Open and is safe to use read-only for its lifetime; nothing
// about it is mutated after construction except, optionally, the data-file
// read serialization enabled by WithMutex.
type FileSystem struct {
	dataFile *os.File
	indices  map[Category]*Index

	logger *logrus.Logger
	mu     *sync.Mutex // nil unless WithMutex was given
}

// Open opens a cache directory: main_file_cache.dat is required (its
// absence is a DataFileNotFoundError), and each main_file_cache.idx0 ..
// idx255 that exists becomes an Index keyed by its category id. A missing
// index file is not an error at open time; it simply means reads against
// that category later fail with IndexNotFoundError.
func Open(dir string, opts ...Option) (*FileSystem, error) {
	dataPath := filepath.Join(dir, dataFileName)
	dataFile, err := os.Open(dataPath)
	if err != nil {
		return nil, &DataFileNotFoundError{Path: dataPath}
	}

	fs := &FileSystem{
		dataFile: dataFile,
		indices:  make(map[Category]*Index),
		logger:   defaultLogger(),
	}
	for _, opt := range opts {
		opt(fs)
	}

	for id := 0; id <= maxIndexCount; id++ {
		category := Category(id)
		path := filepath.Join(dir, fmt.Sprintf("%s%d", indexFilePrefix, id))

		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			_ = fs.Close()
			return nil, wrapIO(err, "open index file")
		}

		idx, err := openIndex(category, f)
		if err != nil {
			_ = f.Close()
			_ = fs.Close()
			return nil, err
		}
		fs.indices[category] = idx
	}

	return fs, nil
}

// Read resolves an index entry and reassembles its sector chain, returning
// exactly entry.Size bytes.
func (fs *FileSystem) Read(category Category, entryID uint32) ([]byte, error) {
	if fs.mu != nil {
		fs.mu.Lock()
		defer fs.mu.Unlock()
	}

	idx, ok := fs.indices[category]
	if !ok {
		return nil, &IndexNotFoundError{Category: category}
	}

	entry, err := idx.Entry(entryID)
	if err != nil {
		return nil, err
	}

	return readSectors(fs.dataFile, category, entryID, entry)
}

// ReadArchive reads the Archive-category entry for the given archive type
// and decodes it as a nested archive container. A failure to read the
// underlying bytes is surfaced as ArchiveNotFoundError regardless of the
// more specific underlying cause: callers that just want to know "is this
// archive present" get one uniform error to check.
func (fs *FileSystem) ReadArchive(archiveType ArchiveType) (*Archive, error) {
	data, err := fs.Read(CategoryArchive, uint32(archiveType))
	if err != nil {
		return nil, &ArchiveNotFoundError{ID: uint32(archiveType)}
	}
	return decodeArchive(data, fs.logger)
}

// Index returns the opened Index for category, if any.
func (fs *FileSystem) Index(category Category) (*Index, bool) {
	idx, ok := fs.indices[category]
	return idx, ok
}

// Close releases the data-file handle and every opened index-file handle.
// It attempts to close everything even if an early close fails, and
// returns the first error encountered.
func (fs *FileSystem) Close() error {
	var firstErr error

	if fs.dataFile != nil {
		if err := fs.dataFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for _, idx := range fs.indices {
		if err := idx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
