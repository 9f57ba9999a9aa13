package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrCorruptGzip marks input that is gzip by name or magic but does not decode.
var ErrCorruptGzip = errors.New("fasta: corrupt gzip input")

var gzipMagic = []byte{0x1f, 0x8b}

// source is a decoded input stream and the handles behind it, closed
// innermost first.
type source struct {
	io.Reader
	closers []io.Closer
}

func (s *source) Close() error {
	errs := make([]error, 0, len(s.closers))
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// open returns a reader over path. "-" reads stdin. Compressed input is
// recognized by its magic bytes on any source and by a ".gz" suffix on files.
func open(path string) (io.ReadCloser, error) {
	var (
		raw     io.Reader = os.Stdin
		closers []io.Closer
	)
	if path != "-" {
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		raw, closers = fh, []io.Closer{fh}
	}
	fail := func(err error) (io.ReadCloser, error) {
		_ = (&source{closers: closers}).Close()
		return nil, err
	}

	br := bufio.NewReader(raw)
	sig, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		// Directories and unreadable files fail here, not mid-parse.
		return fail(err)
	}
	if !bytes.Equal(sig, gzipMagic) && !(path != "-" && strings.HasSuffix(path, ".gz")) {
		return &source{Reader: br, closers: closers}, nil
	}

	gr, err := gzip.NewReader(br)
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrCorruptGzip, err))
	}
	return &source{Reader: gr, closers: append([]io.Closer{gr}, closers...)}, nil
}

// corruptStream reports a decode failure surfacing after the gzip header.
func corruptStream(err error) bool {
	return errors.Is(err, gzip.ErrChecksum) || errors.Is(err, gzip.ErrHeader)
}
