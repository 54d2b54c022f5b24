package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse decodes the free-form puzzle input format: '#' introduces a
// line comment extending to end of line; the first non-empty logical
// line (after comment-stripping and whitespace-trimming) holds the
// dimension N; the next N non-empty logical lines each hold N
// whitespace-separated non-negative integers forming a permutation of
// 0..N²-1, assembled row-major.
//
// This is a pure decoder, not a CLI: Parse has no knowledge of files,
// flags, or process exit codes — a command-line front-end is expected
// to open the file and hand Parse the resulting io.Reader.
func Parse(r io.Reader) (Board, error) {
	logicalLines, err := tokenizeLines(r)
	if err != nil {
		return Board{}, err
	}
	if len(logicalLines) == 0 {
		return Board{}, ErrEmptyInput
	}

	header := logicalLines[0]
	n, err := strconv.Atoi(header[0])
	if err != nil {
		return Board{}, fmt.Errorf("%w: %v", ErrNonIntegerToken, err)
	}
	if n < 1 {
		return Board{}, ErrBadDimension
	}

	rows := logicalLines[1:]
	if len(rows) != n {
		return Board{}, fmt.Errorf("%w: want %d rows, got %d", ErrBadRowCount, n, len(rows))
	}

	tiles := make([]int, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return Board{}, fmt.Errorf("%w: want %d columns, got %d", ErrBadColumnCount, n, len(row))
		}
		for _, tok := range row {
			v, err := strconv.Atoi(tok)
			if err != nil || v < 0 {
				return Board{}, fmt.Errorf("%w: %q", ErrNonIntegerToken, tok)
			}
			tiles = append(tiles, v)
		}
	}

	seen := make([]bool, n*n)
	for _, v := range tiles {
		if v < n*n {
			seen[v] = true
		}
	}
	for k, ok := range seen {
		if !ok {
			return Board{}, fmt.Errorf("%w: %d", ErrMissingValue, k)
		}
	}

	return New(n, tiles)
}

// tokenizeLines strips '#' comments and blank lines from r, returning
// the whitespace-separated tokens of each remaining logical line.
func tokenizeLines(r io.Reader) ([][]string, error) {
	var lines [][]string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		lines = append(lines, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
