// Package ioformat implements the graph-file line format and timestamp
// rendering used by the CLI, via bufio.Scanner over os.Open.
package ioformat

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/galenhuntington/ingraphs/bitword"
)

// ReadGraphs reads one bitword per line from path. Each line is either a
// bare decimal integer or a comma-separated record whose first field is
// the decimal bitword; trailing blank lines are skipped.
func ReadGraphs(path string) ([]bitword.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioformat: open %s: %w", path, err)
	}
	defer f.Close()

	var out []bitword.Word
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		field := line
		if i := strings.IndexByte(line, ','); i >= 0 {
			field = line[:i]
		}
		w, err := bitword.ParseDecimal(field)
		if err != nil {
			return nil, fmt.Errorf("ioformat: %s:%d: %w", path, lineNo, err)
		}
		out = append(out, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: read %s: %w", path, err)
	}
	return out, nil
}

// WriteLines writes one line per record to path, truncating any existing
// file, via a buffered writer.
func WriteLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ioformat: create %s: %w", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("ioformat: write %s: %w", path, err)
		}
	}
	return w.Flush()
}

// Timestamp renders the current instant as an ISO-8601 UTC datetime with
// microsecond precision.
func Timestamp() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000")
}
