// Package fasta loads a single protein sequence from FASTA text.
//
// Only the first non-blank line may be a header. Later '>' lines are
// ordinary sequence data unless Options.Strict is set.
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// UnknownID is the identifier used when the input has no header line.
const UnknownID = "unknown sequence"

// ErrMultipleHeaders is returned in strict mode when a '>' line appears after
// sequence data has started.
var ErrMultipleHeaders = errors.New("fasta: multiple header lines in single-sequence input")

// Record is a parsed single-sequence FASTA input.
type Record struct {
	ID  string
	Seq string
}

// Options control parsing.
type Options struct {
	// Strict rejects a second '>' header instead of appending it as residues.
	Strict bool
}

// FileAccessError reports an input that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("open input %q: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// Load reads the FASTA file at path ("-" for stdin, gzip allowed).
func Load(path string, opt Options) (Record, error) {
	rc, err := open(path)
	if err != nil {
		if errors.Is(err, ErrCorruptGzip) {
			return Record{}, fmt.Errorf("%s: %w", path, err)
		}
		return Record{}, &FileAccessError{Path: path, Err: err}
	}
	defer rc.Close()

	rec, err := Parse(rc, opt)
	switch {
	case err == nil:
		return rec, nil
	case errors.Is(err, ErrMultipleHeaders):
		return Record{}, fmt.Errorf("%s: %w", path, err)
	case corruptStream(err):
		return Record{}, fmt.Errorf("%s: %w: %w", path, ErrCorruptGzip, err)
	default:
		return Record{}, &FileAccessError{Path: path, Err: err}
	}
}

// Parse reads FASTA text from r. Sequence lines are trimmed of surrounding
// whitespace and concatenated; no case folding or alphabet check is done.
func Parse(r io.Reader, opt Options) (Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		id      string
		seq     strings.Builder
		started bool
	)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := sc.Text()
		if !started {
			if strings.TrimSpace(line) == "" {
				continue
			}
			started = true
			if strings.HasPrefix(line, ">") {
				id = normalizeID(line[1:])
				continue
			}
		}
		if opt.Strict && strings.HasPrefix(line, ">") {
			return Record{}, fmt.Errorf("line %d: %w", lineNo, ErrMultipleHeaders)
		}
		seq.WriteString(strings.TrimSpace(line))
	}
	if err := sc.Err(); err != nil {
		return Record{}, fmt.Errorf("fasta scan: %w", err)
	}
	if id == "" {
		id = UnknownID
	}
	return Record{ID: id, Seq: seq.String()}, nil
}

// normalizeID drops trailing line terminators left on a header.
func normalizeID(s string) string {
	return strings.TrimRight(s, "\r\n")
}
