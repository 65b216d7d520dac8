package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single line of the input file.
const maxLineBytes = 1024 * 1024

// ParseHeaderLine turns the first line of a data file into column names.
// One leading comment marker and the surrounding whitespace are removed.
func ParseHeaderLine(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, CommentMarker)
	return strings.Fields(strings.TrimSpace(line))
}

// LoadTable reads a whitespace-delimited data file whose first line names the columns.
// Field i of every following row is bound to header name i.
// No table is returned when any row is malformed.
func LoadTable(filepath string) (*DataTable, error) {
	// Access is checked before anything is parsed
	info, err := os.Stat(filepath)
	if err != nil {
		return nil, &FileAccessError{Path: filepath, Err: err}
	}
	if info.IsDir() {
		return nil, &FileAccessError{Path: filepath, Err: fmt.Errorf("is a directory")}
	}

	file, err := os.Open(filepath)
	if err != nil {
		return nil, &FileAccessError{Path: filepath, Err: err}
	}
	defer file.Close()

	return parseTable(filepath, file)
}

func parseTable(filepath string, r io.Reader) (*DataTable, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, &FileAccessError{Path: filepath, Err: err}
		}
		return nil, &DataFormatError{Path: filepath, Msg: "file is empty, expected a header line and data rows"}
	}

	columns := ParseHeaderLine(scanner.Text())
	if len(columns) == 0 {
		return nil, &DataFormatError{Path: filepath, Line: 1, Msg: "header line declares no column names"}
	}
	seen := make(map[string]bool, len(columns))
	for _, name := range columns {
		if seen[name] {
			return nil, &DataFormatError{Path: filepath, Line: 1, Column: name, Msg: "duplicate column name in header"}
		}
		seen[name] = true
	}

	table := NewDataTable(filepath, columns)

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 { // Skip blank lines
			continue
		}
		if len(fields) != len(columns) {
			return nil, &DataFormatError{
				Path: filepath,
				Line: lineNo,
				Msg:  fmt.Sprintf("expected %d fields to match the header, found %d", len(columns), len(fields)),
			}
		}
		for i, valStr := range fields {
			val, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				return nil, &DataFormatError{
					Path:   filepath,
					Line:   lineNo,
					Column: columns[i],
					Msg:    fmt.Sprintf("field %d is not numeric: %q", i+1, valStr),
				}
			}
			table.Data[columns[i]] = append(table.Data[columns[i]], val)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &FileAccessError{Path: filepath, Err: fmt.Errorf("failed to read line %d: %w", lineNo+1, err)}
	}

	if table.NumRows() == 0 {
		return nil, &DataFormatError{Path: filepath, Line: lineNo, Msg: "no data rows after the header line"}
	}
	return table, nil
}
