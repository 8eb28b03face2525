package ioformat_test

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/galenhuntington/ingraphs/bitword"
	"github.com/galenhuntington/ingraphs/ioformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteThenReadGraphsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graphs.txt")

	require.NoError(t, ioformat.WriteLines(path, []string{
		"0",
		"1,[0–1]",
		"100",
	}))

	got, err := ioformat.ReadGraphs(path)
	require.NoError(t, err)

	want := []bitword.Word{
		bitword.FromUint64(0),
		bitword.FromUint64(1),
		bitword.FromUint64(100),
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(got[i]), "line %d: got %v want %v", i, got[i], want[i])
	}
}

func TestReadGraphsSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graphs.txt")
	require.NoError(t, ioformat.WriteLines(path, []string{"1", "", "2", "  "}))

	got, err := ioformat.ReadGraphs(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestReadGraphsRejectsMalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graphs.txt")
	require.NoError(t, ioformat.WriteLines(path, []string{"not-a-number"}))

	_, err := ioformat.ReadGraphs(path)
	assert.Error(t, err)
}

func TestReadGraphsMissingFile(t *testing.T) {
	_, err := ioformat.ReadGraphs(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

var isoTimestamp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{6}$`)

func TestTimestampFormat(t *testing.T) {
	ts := ioformat.Timestamp()
	assert.Regexp(t, isoTimestamp, ts)
}
