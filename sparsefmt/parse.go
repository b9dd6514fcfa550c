// SPDX-License-Identifier: MIT

package sparsefmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// maxLineBytes bounds a single input line; longer lines are malformed.
const maxLineBytes = 1 << 20

// Header keys, in their required order.
const (
	headerRows = "rows"
	headerCols = "cols"
)

// stage is the position of the parser within the fixed file layout.
type stage int

const (
	wantRows stage = iota
	wantCols
	inEntries
)

// position is a (row, col) key used for duplicate detection.
type position struct{ row, col int }

// parser holds per-input state. One parser reads one input.
type parser struct {
	opts    options
	stage   stage
	rows    int
	cols    int
	b       *sparse.Builder
	seen    map[position]int // position -> first line; only with rejectDuplicates
	collect bool             // keep going after entry errors (Validate)
	errs    *multierror.Error
}

func newParser(opts []Option, collect bool) *parser {
	p := &parser{opts: gatherOptions(opts...), collect: collect}
	if p.opts.rejectDuplicates {
		p.seen = make(map[position]int)
	}

	return p
}

// Parse converts text into a validated SparseMatrix.
// Every failure is a *FormatError (errors.Is(err, ErrFormat) holds) naming
// the offending line; see the package documentation for the grammar.
func Parse(text string, opts ...Option) (*sparse.SparseMatrix, error) {
	return Decode(strings.NewReader(text), opts...)
}

// Decode is Parse over an io.Reader. Read failures are returned as-is
// (wrapped), not as *FormatError.
// Complexity: O(len(input)) time, O(nnz) memory.
func Decode(r io.Reader, opts ...Option) (*sparse.SparseMatrix, error) {
	p := newParser(opts, false)
	if err := p.run(r); err != nil {
		return nil, err
	}

	return p.b.Build(), nil
}

// Validate reads the whole input and reports every malformed entry line
// instead of stopping at the first one. Header problems still stop the
// scan, since entries cannot be checked without dimensions.
// The result is nil or a *multierror.Error whose elements are *FormatError
// (or a read error).
func Validate(r io.Reader, opts ...Option) error {
	p := newParser(opts, true)
	if err := p.run(r); err != nil {
		p.errs = multierror.Append(p.errs, err)
	}

	return p.errs.ErrorOrNil()
}

// run scans r line by line, skipping blank lines.
func (p *parser) run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if err := p.line(n, text); err != nil {
			if p.collect && p.stage == inEntries {
				p.errs = multierror.Append(p.errs, err)
				continue
			}
			return err
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return formatErrorf(n+1, "", ErrMalformedEntry, "line longer than %d bytes", maxLineBytes)
		}
		return fmt.Errorf("sparsefmt: read line %d: %w", n+1, err)
	}
	switch p.stage {
	case wantRows:
		return formatErrorf(0, "", ErrMissingHeader, "expected %s=<integer>", headerRows)
	case wantCols:
		return formatErrorf(0, "", ErrMissingHeader, "expected %s=<integer>", headerCols)
	}

	return nil
}

// line dispatches one non-blank, trimmed line by stage.
func (p *parser) line(n int, text string) error {
	switch p.stage {
	case wantRows:
		v, err := p.header(n, text, headerRows)
		if err != nil {
			return err
		}
		p.rows = v
		p.stage = wantCols
	case wantCols:
		v, err := p.header(n, text, headerCols)
		if err != nil {
			return err
		}
		b, err := sparse.NewBuilder(p.rows, v)
		if err != nil {
			return formatErrorf(n, text, ErrMalformedHeader, "%v", err)
		}
		p.cols = v
		p.b = b
		p.stage = inEntries
	default:
		return p.entry(n, text)
	}

	return nil
}

// header parses "name=<int>" with optional spaces around '='.
func (p *parser) header(n int, text, name string) (int, error) {
	key, val, ok := strings.Cut(text, "=")
	if !ok || strings.TrimSpace(key) != name {
		return 0, formatErrorf(n, text, ErrMalformedHeader, "expected %s=<integer>", name)
	}
	val = strings.TrimSpace(val)
	v, err := strconv.Atoi(val)
	if err != nil {
		return 0, formatErrorf(n, text, ErrMalformedHeader, "%s value %q is not an integer", name, val)
	}
	if v < 0 {
		return 0, formatErrorf(n, text, ErrNegativeDimension, "%s=%d", name, v)
	}
	if p.opts.maxDimension > 0 && v > p.opts.maxDimension {
		return 0, formatErrorf(n, text, ErrDimensionTooLarge, "%s=%d exceeds %d", name, v, p.opts.maxDimension)
	}

	return v, nil
}

// isHeaderLine reports whether text looks like "rows=..." or "cols=...".
func isHeaderLine(text string) bool {
	key, _, ok := strings.Cut(text, "=")
	if !ok {
		return false
	}
	key = strings.TrimSpace(key)

	return key == headerRows || key == headerCols
}

// entry parses and stores one "(row, col, value)" line.
func (p *parser) entry(n int, text string) error {
	if isHeaderLine(text) {
		return formatErrorf(n, text, ErrMalformedHeader, "header repeated after %s= and %s=", headerRows, headerCols)
	}
	fields, detail := splitTriple(text)
	if detail != "" {
		return formatErrorf(n, text, ErrMalformedEntry, "%s", detail)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return indexError(n, text, "row", fields[0], err)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return indexError(n, text, "col", fields[1], err)
	}
	val, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return formatErrorf(n, text, ErrMalformedEntry, "value %s overflows int64", fields[2])
		}
		return formatErrorf(n, text, ErrMalformedEntry, "value %q is not an integer", fields[2])
	}

	return p.store(n, text, row, col, val)
}

// store range-checks (row, col), applies the duplicate policy and writes val.
// Last value wins by default; a 0 value removes an earlier one.
func (p *parser) store(n int, text string, row, col int, val int64) error {
	if row < 0 || row >= p.rows {
		return formatErrorf(n, text, ErrIndexOutOfRange, "row %d not in [0,%d)", row, p.rows)
	}
	if col < 0 || col >= p.cols {
		return formatErrorf(n, text, ErrIndexOutOfRange, "col %d not in [0,%d)", col, p.cols)
	}
	if p.seen != nil {
		key := position{row: row, col: col}
		if first, dup := p.seen[key]; dup {
			return formatErrorf(n, text, ErrDuplicateEntry, "(%d, %d) first set on line %d", row, col, first)
		}
		p.seen[key] = n
	}
	if err := p.b.Set(row, col, val); err != nil {
		return formatErrorf(n, text, ErrIndexOutOfRange, "%v", err)
	}

	return nil
}

// indexError classifies a bad row/col token: too large is out of range,
// anything else is a malformed entry.
func indexError(n int, text, name, tok string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return formatErrorf(n, text, ErrIndexOutOfRange, "%s %s overflows int", name, tok)
	}

	return formatErrorf(n, text, ErrMalformedEntry, "%s %q is not an integer", name, tok)
}

// splitTriple checks the "(a, b, c)" envelope and returns the three trimmed
// tokens, or a non-empty detail describing the first violation.
func splitTriple(text string) ([3]string, string) {
	var out [3]string
	if !strings.HasPrefix(text, "(") {
		return out, "expected '(' at start of entry"
	}
	end := strings.IndexByte(text, ')')
	if end < 0 {
		return out, "missing ')'"
	}
	if end != len(text)-1 {
		return out, fmt.Sprintf("unexpected %q after ')'", text[end+1:])
	}
	inner := text[1:end]
	if strings.ContainsRune(inner, '(') {
		return out, "nested '('"
	}
	fields := strings.Split(inner, ",")
	if len(fields) != len(out) {
		return out, fmt.Sprintf("expected 3 comma-separated integers, got %d field(s)", len(fields))
	}
	for i, f := range fields {
		out[i] = strings.TrimSpace(f)
		if out[i] == "" {
			return out, fmt.Sprintf("field %d is empty", i+1)
		}
	}

	return out, ""
}
