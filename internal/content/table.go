// internal/content/table.go
package content

import (
	"regexp"
	"strings"
)

// Sentinel lines delimiting a pseudo-table block.
const (
	TableStartMarker = "## 테이블 시작 ##"
	TableEndMarker   = "## 테이블 끝 ##"
)

// headingLine matches a markdown heading, which cannot appear inside a table block.
var headingLine = regexp.MustCompile(`^#{1,6}\s`)

// Table is a parsed pseudo-table. Every row has len(Header) cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// TableBlock is an accepted table together with the positions of its start
// and end marker lines in the scanned line stream.
type TableBlock struct {
	Start int
	End   int
	Table Table
}

type scanState int

const (
	scanning scanState = iota
	inTable
)

// ScanTables reads lines from next until it reports false and calls emit for
// every accepted pseudo-table block, in order.
//
// Lines are compared after trimming and blank lines inside a block are
// ignored. A block is accepted when it is closed by TableEndMarker, holds at
// least two lines and every line contains a comma. Another start marker or a
// markdown heading inside a block abandons it; a start marker then opens a
// new block. A block still open at the end of input is dropped.
func ScanTables(next func() (string, bool), emit func(TableBlock)) {
	state := scanning
	start := 0
	var lines []string

	for idx := 0; ; idx++ {
		raw, ok := next()
		if !ok {
			return
		}
		line := strings.TrimSpace(raw)

		switch state {
		case scanning:
			if line == TableStartMarker {
				state, start, lines = inTable, idx, lines[:0]
			}

		case inTable:
			switch {
			case line == TableEndMarker:
				if validTableLines(lines) {
					emit(TableBlock{Start: start, End: idx, Table: parseTable(lines)})
				}
				state = scanning
			case line == TableStartMarker:
				start, lines = idx, lines[:0]
			case headingLine.MatchString(line):
				state = scanning
			case line == "":
			default:
				lines = append(lines, line)
			}
		}
	}
}

func validTableLines(lines []string) bool {
	if len(lines) < 2 {
		return false
	}
	for _, l := range lines {
		if !strings.Contains(l, ",") {
			return false
		}
	}
	return true
}

// parseTable splits lines on commas. The first line is the header and sets
// the column count; shorter rows are padded with empty cells and longer rows
// truncated.
func parseTable(lines []string) Table {
	header := splitCells(lines[0])
	width := len(header)

	rows := make([][]string, 0, len(lines)-1)
	for _, l := range lines[1:] {
		cells := splitCells(l)
		row := make([]string, width)
		copy(row, cells)
		rows = append(rows, row)
	}
	return Table{Header: header, Rows: rows}
}

func splitCells(line string) []string {
	cells := strings.Split(line, ",")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// sliceLines adapts a slice to the next callback ScanTables consumes.
func sliceLines(lines []string) func() (string, bool) {
	i := 0
	return func() (string, bool) {
		if i >= len(lines) {
			return "", false
		}
		l := lines[i]
		i++
		return l, true
	}
}
