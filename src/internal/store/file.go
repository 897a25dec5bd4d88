// FILE: logbook/src/internal/store/file.go
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"logbook/src/internal/core"
	"logbook/src/internal/format"
)

// Export writes every entry to path, one line each, replacing any existing
// content.
func (s *Store) Export(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open export file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close export file: %w", closeErr)
		}
	}()

	if err := s.ExportTo(f); err != nil {
		return fmt.Errorf("failed to export to %s: %w", path, err)
	}

	s.logger.Info("msg", "Logs exported",
		"component", "store",
		"path", path,
		"format", s.codec.Name(),
		"entries", len(s.entries))
	return nil
}

// ExportTo writes every entry to w in insertion order.
func (s *Store) ExportTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, entry := range s.entries {
		line, err := s.codec.Format(entry)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Import appends the entries read from path and returns how many were
// added. A malformed line stops the import with a *format.ParseError;
// entries appended before it stay in the store. A line longer than
// core.MaxLineSize also stops it, with bufio.ErrTooLong instead.
func (s *Store) Import(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	n, err := s.ImportFrom(f)
	if err != nil {
		var parseErr *format.ParseError
		if errors.As(err, &parseErr) {
			s.logger.Warn("msg", "Import stopped at malformed line",
				"component", "store",
				"path", path,
				"line", parseErr.Line,
				"imported", n,
				"error", parseErr.Err)
		} else {
			s.logger.Warn("msg", "Import stopped by read error",
				"component", "store",
				"path", path,
				"imported", n,
				"error", err)
		}
		return n, fmt.Errorf("failed to import %s: %w", path, err)
	}

	s.logger.Info("msg", "Logs imported",
		"component", "store",
		"path", path,
		"format", s.codec.Name(),
		"entries", n)
	return n, nil
}

// ImportFrom appends the entries read from r, one per line. Lines are
// capped at core.MaxLineSize; a longer one ends the import with an error
// wrapping bufio.ErrTooLong, which is not a *format.ParseError.
func (s *Store) ImportFrom(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), core.MaxLineSize)

	imported := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		entry, err := s.codec.Parse(line)
		if err != nil {
			return imported, &format.ParseError{Line: lineNo, Text: line, Err: err}
		}

		s.entries = append(s.entries, entry)
		imported++
	}

	if err := scanner.Err(); err != nil {
		return imported, fmt.Errorf("read failed after line %d: %w", lineNo, err)
	}
	return imported, nil
}
