// Package jsonstore persists a collection as a single JSON file.
// Human-readable, portable, no locking; fine for a local single-user CLI.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// CorruptError reports a file that exists but cannot be parsed. Callers
// get the path and the underlying decode error; the file is left as-is
// so no data is silently discarded.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt storage file %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// File persists one collection of type T at a fixed path.
type File[T any] struct {
	path string
}

func New[T any](path string) *File[T] {
	return &File[T]{path: path}
}

func (f *File[T]) Path() string { return f.path }

// Load reads the collection. A missing file is an empty collection, not
// an error.
func (f *File[T]) Load() (T, error) {
	var v T
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return v, nil
		}
		return v, fmt.Errorf("read file: %w", err)
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, &CorruptError{Path: f.path, Err: err}
	}
	return v, nil
}

// Save overwrites the file with the full collection. The bytes go to a
// temp file in the same directory first and are renamed over the target,
// so an interrupted write leaves the previous content intact.
//
// HTML escaping is off: shortcuts and item text must survive byte-exact,
// non-ASCII scripts included.
func (f *File[T]) Save(v T) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
