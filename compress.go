package rsfs

import (
	"bytes"
	"compress/gzip"
	"io"

	dsbzip2 "github.com/dsnet/compress/bzip2"
)

// bzip2MagicSize is the length of the bzip2 stream magic ("BZh" + a block
// size digit) that on-disk payloads in this cache format omit.
const bzip2MagicSize = 4

// bzip2Magic is the magic this package prepends/strips. The cache always
// uses a 100k block size, so the digit is fixed at '1'.
var bzip2Magic = [bzip2MagicSize]byte{'B', 'Z', 'h', '1'}

const gzipMagic0, gzipMagic1 = 0x1F, 0x8B

// DecompressBzip2 decodes a bzip2 stream that has had its 4-byte magic
// preamble stripped (the on-disk convention used throughout this cache),
// returning exactly expectedSize bytes.
func DecompressBzip2(data []byte, expectedSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrCompressionEmpty
	}
	if len(data) < 5 {
		return nil, &CompressionTooShortError{Given: len(data), Min: 5}
	}

	full := make([]byte, 0, bzip2MagicSize+len(data))
	full = append(full, bzip2Magic[:]...)
	full = append(full, data...)

	r, err := dsbzip2.NewReader(bytes.NewReader(full), nil)
	if err != nil {
		return nil, wrapIO(err, "bzip2 open")
	}
	defer r.Close()

	out := make([]byte, expectedSize)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, wrapIO(err, "bzip2 read")
	}
	return out, nil
}

// DecompressGzip decodes a standard gzip stream to end-of-stream.
func DecompressGzip(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrCompressionEmpty
	}
	if len(data) < 2 || data[0] != gzipMagic0 || data[1] != gzipMagic1 {
		return nil, ErrInvalidGzipHeader
	}

	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, wrapIO(err, "gzip open")
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapIO(err, "gzip read")
	}
	return out, nil
}

// CompressBzip2 encodes data with a standard bzip2 encoder, then strips the
// 4-byte magic preamble to match the on-disk convention this cache uses.
func CompressBzip2(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := dsbzip2.NewWriter(&buf, &dsbzip2.WriterConfig{Level: 1})
	if err != nil {
		return nil, wrapIO(err, "bzip2 writer init")
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, wrapIO(err, "bzip2 write")
	}
	if err := w.Close(); err != nil {
		return nil, wrapIO(err, "bzip2 close")
	}

	out := buf.Bytes()
	if len(out) < bzip2MagicSize {
		return nil, wrapIO(io.ErrUnexpectedEOF, "bzip2 write")
	}
	return out[bzip2MagicSize:], nil
}

// CompressGzip encodes data with a standard gzip encoder using default settings.
func CompressGzip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, wrapIO(err, "gzip write")
	}
	if err := w.Close(); err != nil {
		return nil, wrapIO(err, "gzip close")
	}
	return buf.Bytes(), nil
}
