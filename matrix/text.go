// SPDX-License-Identifier: MIT

// Package matrix - plain-text codec.
//
// Format:
//   - One matrix row per nonblank line; blank (or whitespace-only) lines are skipped.
//   - Cells are whitespace-separated decimal literals of the element type.
//   - Row length may vary; the width is the longest row and short rows are zero-padded.
//
// Loading is all-or-nothing: rows are staged first and appended only when the
// whole source parsed, so a format error never leaves a half-loaded matrix.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
)

const (
	ctxLoad     = "LoadText" // method tag used in error wrappers
	ctxReadFile = "ReadFile" // func tag used in error wrappers

	// maxLineBytes bounds a single input line (one matrix row).
	maxLineBytes = 16 << 20
)

// LoadText appends every nonblank line of r to m as one row (see AddRow).
//
// Errors:
//   - ErrFormat naming the 1-based line number and the offending token.
//   - Read errors from r, wrapped with the line being read.
//
// On any error m is left unchanged.
// Complexity: O(total tokens).
func (m *Dense[T]) LoadText(r io.Reader) error {
	rows, err := scanRows[T](r)
	if err != nil {
		return err
	}
	for _, row := range rows {
		m.AddRow(row)
	}

	return nil
}

// ParseText reads a new matrix from r. Same format and errors as LoadText.
func ParseText[T Number](r io.Reader) (*Dense[T], error) {
	rows, err := scanRows[T](r)
	if err != nil {
		return nil, err
	}

	return NewFromRows(rows), nil
}

// ReadFile opens path and parses it with ParseText.
// Open errors keep their *fs.PathError so callers can tell them apart from ErrFormat.
func ReadFile[T Number](path string) (*Dense[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxReadFile, err)
	}
	defer f.Close()

	m, err := ParseText[T](f)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ctxReadFile, path, err)
	}

	return m, nil
}

// scanRows tokenizes r into rows of T, skipping blank lines.
func scanRows[T Number](r io.Reader) ([][]T, error) {
	parse := tokenParser[T]()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		rows [][]T
		line int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]T, len(fields))
		for j, tok := range fields {
			v, err := parse(tok)
			if err != nil {
				return nil, fmt.Errorf("%s: line %d: token %q: %w", ctxLoad, line, tok, ErrFormat)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: line %d: %w", ctxLoad, line+1, err)
	}

	return rows, nil
}

// tokenParser picks the strconv routine matching T's underlying kind and bit size,
// so "1.5" is rejected for integer matrices and "300" for int8 ones.
func tokenParser[T Number]() func(string) (T, error) {
	typ := reflect.TypeOf(T(0))
	bits := typ.Bits()

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(s string) (T, error) {
			v, err := strconv.ParseInt(s, 10, bits)
			return T(v), err
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(s string) (T, error) {
			v, err := strconv.ParseUint(s, 10, bits)
			return T(v), err
		}
	default: // reflect.Float32, reflect.Float64
		return func(s string) (T, error) {
			v, err := strconv.ParseFloat(s, bits)
			return T(v), err
		}
	}
}
