// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package delim

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression is a compression format of delimited text.
type Compression int32

const (
	// None is uncompressed text.
	None Compression = iota

	// Gzip is gzip compression, with the .gz extension.
	Gzip

	// LZ4 is lz4 frame compression, with the .lz4 extension.
	LZ4

	// Zstd is zstandard compression, with the .zst extension.
	Zstd
)

// magic numbers at the start of compressed streams.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	}
	return "none"
}

// Ext returns the file extension of the compression, including the dot.
func (c Compression) Ext() string {
	switch c {
	case Gzip:
		return ".gz"
	case LZ4:
		return ".lz4"
	case Zstd:
		return ".zst"
	}
	return ""
}

// CompressionFromName returns the compression implied by
// the extension of the given filename.
func CompressionFromName(filename string) Compression {
	lc := strings.ToLower(filename)
	for _, c := range []Compression{Gzip, LZ4, Zstd} {
		if strings.HasSuffix(lc, c.Ext()) {
			return c
		}
	}
	return None
}

// peekReader is a reader that can look ahead.
type peekReader interface {
	io.ReadCloser
	Peek(n int) ([]byte, error)
}

// bufReader is a buffered reader that closes its closer.
type bufReader struct {
	*bufio.Reader
	closer io.Closer
}

func (br *bufReader) Close() error {
	if br.closer == nil {
		return nil
	}
	return br.closer.Close()
}

// Decompress returns a buffered reader of the decompressed contents
// of r, which is detected from its leading bytes, together with the
// detected compression. The returned reader must be closed.
func Decompress(r io.Reader) (io.ReadCloser, Compression, error) {
	br := bufio.NewReader(r)
	magic, _ := br.Peek(4)
	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gr, err := gzip.NewReader(br)
		if err != nil {
			return nil, Gzip, err
		}
		return &bufReader{Reader: bufio.NewReader(gr), closer: gr}, Gzip, nil
	case bytes.HasPrefix(magic, lz4Magic):
		return &bufReader{Reader: bufio.NewReader(lz4.NewReader(br))}, LZ4, nil
	case bytes.HasPrefix(magic, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, Zstd, err
		}
		zc := zr.IOReadCloser()
		return &bufReader{Reader: bufio.NewReader(zc), closer: zc}, Zstd, nil
	}
	return &bufReader{Reader: br}, None, nil
}

// Compress returns a writer compressing to w with the given
// compression. It must be closed to flush the compressed stream;
// closing it does not close w.
func Compress(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case Gzip:
		return gzip.NewWriter(w), nil
	case LZ4:
		return lz4.NewWriter(w), nil
	case Zstd:
		return zstd.NewWriter(w)
	}
	return nopCloser{w}, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
