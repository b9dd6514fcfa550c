// SPDX-License-Identifier: MIT

package sparsefmt_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/sparse"
	"github.com/katalvlaran/sparsecalc/sparsefmt"
)

func e(row, col int, v int64) sparse.Entry {
	return sparse.Entry{Row: row, Col: col, Value: v}
}

func TestParse_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		in         string
		rows, cols int
		want       []sparse.Entry
	}{
		{
			name: "minimal",
			in:   "rows=2\ncols=3\n(0, 1, 5)\n(1, 2, -4)\n",
			rows: 2, cols: 3,
			want: []sparse.Entry{e(0, 1, 5), e(1, 2, -4)},
		},
		{
			name: "headers only",
			in:   "rows=4\ncols=4",
			rows: 4, cols: 4,
			want: []sparse.Entry{},
		},
		{
			name: "zero shape",
			in:   "rows=0\ncols=0\n",
			rows: 0, cols: 0,
			want: []sparse.Entry{},
		},
		{
			name: "blank lines and padding",
			in:   "\n  \nrows=2\n\t\ncols=2\n\n(0,  0,   5)\n\n   (1 ,1, 7)   \n\n",
			rows: 2, cols: 2,
			want: []sparse.Entry{e(0, 0, 5), e(1, 1, 7)},
		},
		{
			name: "spaces around header equals and CRLF",
			in:   "rows = 2\r\ncols= 2\r\n(1, 0, 3)\r\n",
			rows: 2, cols: 2,
			want: []sparse.Entry{e(1, 0, 3)},
		},
		{
			name: "spaces next to parentheses",
			in:   "rows=2\ncols=2\n( 1, 1, 9 )\n",
			rows: 2, cols: 2,
			want: []sparse.Entry{e(1, 1, 9)},
		},
		{
			name: "zero values dropped",
			in:   "rows=2\ncols=2\n(0, 0, 0)\n(1, 1, 2)\n",
			rows: 2, cols: 2,
			want: []sparse.Entry{e(1, 1, 2)},
		},
		{
			name: "large shape stays sparse",
			in:   "rows=40000\ncols=30000\n(39999, 29999, 1)\n",
			rows: 40000, cols: 30000,
			want: []sparse.Entry{e(39999, 29999, 1)},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := sparsefmt.Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			require.Equal(t, tc.want, m.Entries())
		})
	}
}

func TestParse_WhitespaceToleranceMatchesCompactForm(t *testing.T) {
	t.Parallel()

	loose, err := sparsefmt.Parse("rows=2\ncols=2\n\n(0,  0,   5)\n\n")
	require.NoError(t, err)
	compact, err := sparsefmt.Parse("rows=2\ncols=2\n(0,0,5)")
	require.NoError(t, err)
	require.True(t, compact.Equal(loose))
}

func TestParse_DuplicateLastWins(t *testing.T) {
	t.Parallel()

	m, err := sparsefmt.Parse("rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 4)\n(0, 0, 9)\n")
	require.NoError(t, err)
	require.Equal(t, []sparse.Entry{e(0, 0, 9), e(1, 1, 4)}, m.Entries())

	// A later zero removes the earlier value.
	m, err = sparsefmt.Parse("rows=2\ncols=2\n(0, 0, 1)\n(0, 0, 0)\n")
	require.NoError(t, err)
	require.Zero(t, m.NNZ())
}

func TestParse_FormatErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		cause    error
		wantLine int
	}{
		{"missing value", "rows=3\ncols=3\n(0,0)", sparsefmt.ErrMalformedEntry, 3},
		{"negative rows", "rows=-1\ncols=3\n", sparsefmt.ErrNegativeDimension, 1},
		{"negative cols", "rows=1\ncols=-3\n", sparsefmt.ErrNegativeDimension, 2},
		{"row out of range", "rows=2\ncols=2\n(5, 0, 1)", sparsefmt.ErrIndexOutOfRange, 3},
		{"col out of range", "rows=2\ncols=2\n(0, 2, 1)", sparsefmt.ErrIndexOutOfRange, 3},
		{"negative index", "rows=2\ncols=2\n(-1, 0, 1)", sparsefmt.ErrIndexOutOfRange, 3},
		{"square brackets", "rows=2\ncols=2\n[0, 0, 1]", sparsefmt.ErrMalformedEntry, 3},
		{"trailing garbage", "rows=2\ncols=2\n(0, 0, 1) x", sparsefmt.ErrMalformedEntry, 3},
		{"two entries on a line", "rows=2\ncols=2\n(0, 0, 1)(1, 1, 1)", sparsefmt.ErrMalformedEntry, 3},
		{"missing close", "rows=2\ncols=2\n(0, 0, 1", sparsefmt.ErrMalformedEntry, 3},
		{"nested paren", "rows=2\ncols=2\n((0, 0, 1)", sparsefmt.ErrMalformedEntry, 3},
		{"four fields", "rows=2\ncols=2\n(0, 0, 1, 2)", sparsefmt.ErrMalformedEntry, 3},
		{"empty field", "rows=2\ncols=2\n(0, , 1)", sparsefmt.ErrMalformedEntry, 3},
		{"float value", "rows=2\ncols=2\n(0, 0, 1.5)", sparsefmt.ErrMalformedEntry, 3},
		{"non-integer row", "rows=2\ncols=2\n(a, 0, 1)", sparsefmt.ErrMalformedEntry, 3},
		{"inner whitespace in token", "rows=2\ncols=2\n(0, 1 1, 1)", sparsefmt.ErrMalformedEntry, 3},
		{"value overflow", "rows=2\ncols=2\n(0, 0, 99999999999999999999)", sparsefmt.ErrMalformedEntry, 3},
		{"non-numeric rows", "rows=abc\ncols=3\n", sparsefmt.ErrMalformedHeader, 1},
		{"cols before rows", "cols=3\nrows=3\n", sparsefmt.ErrMalformedHeader, 1},
		{"entry before headers", "(0, 0, 1)\nrows=1\ncols=1\n", sparsefmt.ErrMalformedHeader, 1},
		{"entry before cols", "rows=1\n(0, 0, 1)\ncols=1\n", sparsefmt.ErrMalformedHeader, 2},
		{"repeated rows", "rows=1\ncols=1\nrows=1\n", sparsefmt.ErrMalformedHeader, 3},
		{"misspelled header", "row=1\ncols=1\n", sparsefmt.ErrMalformedHeader, 1},
		{"empty input", "", sparsefmt.ErrMissingHeader, 0},
		{"only rows", "rows=1\n\n", sparsefmt.ErrMissingHeader, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := sparsefmt.Parse(tc.in)
			require.Nil(t, m)
			require.ErrorIs(t, err, sparsefmt.ErrFormat)
			require.ErrorIs(t, err, tc.cause)

			var fe *sparsefmt.FormatError
			require.True(t, errors.As(err, &fe))
			require.Equal(t, tc.wantLine, fe.Line)
			if tc.wantLine > 0 {
				require.Contains(t, err.Error(), "line")
				require.NotEmpty(t, fe.Text)
			}
		})
	}
}

func TestFormatError_Message(t *testing.T) {
	t.Parallel()

	_, err := sparsefmt.Parse("rows=2\ncols=2\n\n(5, 0, 1)")
	require.EqualError(t, err, `sparsefmt: line 4 "(5, 0, 1)": sparsefmt: index out of range: row 5 not in [0,2)`)

	_, err = sparsefmt.Parse("rows=2\n")
	require.EqualError(t, err, "sparsefmt: at end of input: sparsefmt: missing header: expected cols=<integer>")
}

func TestDecode_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk on fire")
	_, err := sparsefmt.Decode(failingReader{err: boom})
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, sparsefmt.ErrFormat)
}

func TestDecode_LineTooLong(t *testing.T) {
	t.Parallel()

	in := "rows=1\ncols=1\n(" + strings.Repeat("0", 2<<20) + ", 0, 1)\n"
	_, err := sparsefmt.Decode(strings.NewReader(in))
	require.ErrorIs(t, err, sparsefmt.ErrMalformedEntry)
}

func TestDecode_SampleFiles(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"testdata/matrix1.txt", "testdata/matrix2.txt"} {
		f, err := os.Open(name)
		require.NoError(t, err)
		m, err := sparsefmt.Decode(f)
		require.NoError(t, f.Close())
		require.NoError(t, err, name)
		require.Positive(t, m.NNZ(), name)
	}
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }
