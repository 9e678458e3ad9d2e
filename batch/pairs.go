package batch

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xhgen/reticle"
)

// ErrMalformedRow is returned for data rows without a comma separator.
var ErrMalformedRow = errors.New("batch: malformed row")

// MaxRowSize bounds a single color-pair line. Longer lines fail with a
// RowError wrapping bufio.ErrTooLong.
const MaxRowSize = 1 << 20

// RowError reports a color-pair row that could not be parsed. Line is
// 1-based and counts the header.
type RowError struct {
	Line int
	Text string
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("batch: line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the underlying error: ErrMalformedRow, bufio.ErrTooLong, or
// an error wrapping reticle.ErrInvalidHexColor.
func (e *RowError) Unwrap() error { return e.Err }

// Pair is one rim/arm color combination.
type Pair struct {
	Rim reticle.ColorSpec
	Arm reticle.ColorSpec
}

// ParsePairs reads a color-pair list: the first line is a header and is
// always skipped, blank lines are ignored, and every other line is
// "rim_hex,arm_hex". The first bad row aborts parsing.
func ParsePairs(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), MaxRowSize)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if line == 1 || strings.TrimSpace(text) == "" {
			continue
		}
		p, err := parseRow(text)
		if err != nil {
			return nil, &RowError{Line: line, Text: text, Err: err}
		}
		pairs = append(pairs, p)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &RowError{Line: line + 1, Err: err}
		}
		return nil, fmt.Errorf("batch: read color pairs: %w", err)
	}
	return pairs, nil
}

func parseRow(text string) (Pair, error) {
	rim, arm, ok := strings.Cut(text, ",")
	if !ok {
		return Pair{}, ErrMalformedRow
	}
	rimSpec, err := reticle.ParseColorSpec(rim)
	if err != nil {
		return Pair{}, err
	}
	armSpec, err := reticle.ParseColorSpec(arm)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Rim: rimSpec, Arm: armSpec}, nil
}

// LoadPairs reads and parses the color-pair file at path.
func LoadPairs(path string) ([]Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, reticle.NewPathError("read", path, err)
	}
	return ParsePairs(bytes.NewReader(data))
}
