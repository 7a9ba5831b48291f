// Copyright 2026 the PeanutButter Authors.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNoPath is reported by Persist when it is called with an empty path on
// a file that did not come from Load.
var ErrNoPath = errors.New("no file path associated")

// Load reads and parses the INI file at path. If the file does not exist,
// its containing directory and an empty file are created first. The
// returned File remembers path as its default Persist target.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
			return nil, fmt.Errorf("load ini file: %w", err)
		}
		if err := os.WriteFile(path, nil, 0o666); err != nil {
			return nil, fmt.Errorf("load ini file: %w", err)
		}
		data = nil
	} else if err != nil {
		return nil, fmt.Errorf("load ini file: %w", err)
	}
	f := &File{path: path}
	f.parse(string(data))
	return f, nil
}

// Path returns the path established by Load, or "".
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Persist writes the serialized form to path, creating the containing
// directory if needed. An empty path falls back to the path established by
// Load; if neither is available, Persist reports an error wrapping
// ErrNoPath. A non-empty path does not rebind the file's stored path.
func (f *File) Persist(path string) error {
	if path == "" {
		path = f.Path()
	}
	if path == "" {
		return fmt.Errorf("persist ini file: %w", ErrNoPath)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o777); err != nil {
		return fmt.Errorf("persist ini file: %w", err)
	}
	data, _ := f.MarshalText()
	if err := os.WriteFile(path, data, 0o666); err != nil {
		return fmt.Errorf("persist ini file: %w", err)
	}
	return nil
}
