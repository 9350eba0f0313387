package rsfs

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Option configures a FileSystem at Open time. The mandatory argument is
// the cache directory path; everything else is an optional functional-option
// knob.
type Option func(*FileSystem)

// WithLogger attaches a logger used for the few non-fatal diagnostics this
// package emits (currently: a duplicate archive entry identifier). The
// default is a logger writing to io.Discard, so FileSystem is silent
// unless a caller opts in.
func WithLogger(logger *logrus.Logger) Option {
	return func(fs *FileSystem) {
		fs.logger = logger
	}
}

// WithMutex wraps the data-file handle in a sync.Mutex, serializing Read
// calls and the read step of ReadArchive (archive decoding runs outside the
// lock). Off by default. Without it, concurrent reads on one FileSystem
// still work: index and sector reads go through os.File.ReadAt, which keeps
// no shared file cursor.
func WithMutex() Option {
	return func(fs *FileSystem) {
		fs.mu = &sync.Mutex{}
	}
}

func defaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
