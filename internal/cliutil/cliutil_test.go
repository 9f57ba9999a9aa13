package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFS() *flag.FlagSet {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	fs.Bool("strict", false, "")
	fs.Int("s", 6, "")
	return fs
}

func TestSplitFlagsAndPositionals(t *testing.T) {
	flagArgs, posArgs := SplitFlagsAndPositionals(newFS(), []string{"in.fa", "-s", "9", "--strict"})
	assert.Equal(t, []string{"-s", "9", "--strict"}, flagArgs)
	assert.Equal(t, []string{"in.fa"}, posArgs)
}

func TestSplitDoubleDashAndStdin(t *testing.T) {
	flagArgs, posArgs := SplitFlagsAndPositionals(newFS(), []string{"-s=3", "-", "--", "-weird.fa"})
	assert.Equal(t, []string{"-s=3"}, flagArgs)
	assert.Equal(t, []string{"-", "-weird.fa"}, posArgs)
}

func TestSplitNegativeValue(t *testing.T) {
	flagArgs, posArgs := SplitFlagsAndPositionals(newFS(), []string{"-s", "-1", "in.fa"})
	assert.Equal(t, []string{"-s", "-1"}, flagArgs)
	assert.Equal(t, []string{"in.fa"}, posArgs)
}

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	_ = os.WriteFile(filepath.Join(dir, "a.fa"), []byte(">a\nA\n"), 0o644)
	_ = os.WriteFile(filepath.Join(dir, "b.fa"), []byte(">b\nA\n"), 0o644)
	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa")})
	if err != nil || len(got) != 2 {
		t.Fatalf("expand: err=%v got=%v", err, got)
	}
	if _, err := ExpandPositionals([]string{filepath.Join(dir, "*.none")}); err == nil {
		t.Fatalf("expected error for unmatched glob")
	}
}
