// SPDX-License-Identifier: MIT

// Package matrixio loads and saves sparse matrix files through an afero.Fs,
// so callers can run against the OS filesystem or an in-memory one.
package matrixio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"github.com/katalvlaran/sparsecalc/sparse"
	"github.com/katalvlaran/sparsecalc/sparsefmt"
)

// File and directory modes for written results.
const (
	fileMode os.FileMode = 0o644
	dirMode  os.FileMode = 0o755
)

// Store reads and writes matrices in the sparsefmt text format.
type Store struct {
	fs   afero.Fs
	log  hclog.Logger
	opts []sparsefmt.Option
}

// NewStore returns a Store over fs. A nil logger discards output.
// opts are passed to every parse.
func NewStore(fs afero.Fs, logger hclog.Logger, opts ...sparsefmt.Option) *Store {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Store{fs: fs, log: logger, opts: opts}
}

// Load opens path and parses it. Format problems keep their
// *sparsefmt.FormatError identity; open/read failures are wrapped as-is.
func (s *Store) Load(path string) (*sparse.SparseMatrix, error) {
	start := time.Now()
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrixio: load %q: %w", path, err)
	}
	defer f.Close()

	m, err := sparsefmt.Decode(f, s.opts...)
	if err != nil {
		s.log.Debug("parse failed", "path", path, "error", err)
		return nil, fmt.Errorf("matrixio: load %q: %w", path, err)
	}
	s.log.Debug("loaded matrix", "path", path, "rows", m.Rows(), "cols", m.Cols(),
		"nnz", m.NNZ(), "elapsed", time.Since(start))

	return m, nil
}

// Check validates path and reports every malformed line (see sparsefmt.Validate).
func (s *Store) Check(path string) error {
	f, err := s.fs.Open(path)
	if err != nil {
		return fmt.Errorf("matrixio: check %q: %w", path, err)
	}
	defer f.Close()

	if err = sparsefmt.Validate(f, s.opts...); err != nil {
		return fmt.Errorf("matrixio: check %q: %w", path, err)
	}

	return nil
}

// Save writes m to path, creating missing parent directories.
func (s *Store) Save(path string, m *sparse.SparseMatrix) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matrixio: save %q: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("matrixio: save %q: %w", path, err)
		}
	}

	var sb strings.Builder
	if err := sparsefmt.Encode(&sb, m); err != nil {
		return fmt.Errorf("matrixio: save %q: %w", path, err)
	}
	if err := afero.WriteFile(s.fs, path, []byte(sb.String()), fileMode); err != nil {
		return fmt.Errorf("matrixio: save %q: %w", path, err)
	}
	s.log.Debug("saved matrix", "path", path, "rows", m.Rows(), "cols", m.Cols(), "nnz", m.NNZ())

	return nil
}
