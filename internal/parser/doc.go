// Package parser loads optical simulation output files.
//
// The first line of a file is a header naming the columns (optionally
// prefixed with '#'); every following non-blank line is one row of
// whitespace-separated numbers. The result is a DataTable keyed by the
// header names, so files may list their columns in any order or carry
// extra diagnostic columns.
package parser
