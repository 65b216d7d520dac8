package parser

import "fmt"

// FileAccessError reports an input path that does not exist or cannot be opened.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot access input file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// DataFormatError reports a malformed header or data row.
// Line is 1-based; Column is empty when the problem is not tied to one field.
type DataFormatError struct {
	Path   string
	Line   int
	Column string
	Msg    string
}

func (e *DataFormatError) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	if e.Column != "" {
		return fmt.Sprintf("error reading file %s: column %q: %s", loc, e.Column, e.Msg)
	}
	return fmt.Sprintf("error reading file %s: %s", loc, e.Msg)
}
