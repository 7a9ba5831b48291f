// Copyright 2026 the PeanutButter Authors.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// FileSet is a list of files to obtain configuration from in descending
// order of precedence, in the manner of system/global/local configuration
// scopes.
type FileSet []*File

// ParseFiles parses the files at the given paths and returns a FileSet.
// If the returned error is nil, the returned file set's length will be the
// same as the number of arguments. ParseFiles stops on the first error,
// but ignores missing file errors, instead filling the corresponding
// element of the set with a nil *File. It never creates files; use Load
// for that.
func ParseFiles(paths ...string) (FileSet, error) {
	fset := make(FileSet, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			fset = append(fset, nil)
			continue
		}
		if err != nil {
			return fset, fmt.Errorf("parse ini files: %w", err)
		}
		f := &File{path: p}
		f.parse(string(data))
		fset = append(fset, f)
	}
	return fset, nil
}

// Get returns the value from the highest-precedence file holding the
// setting, or the empty string if no file holds it.
func (fset FileSet) Get(section, key string) string {
	v, _ := fset.Lookup(section, key)
	return v
}

// Lookup returns the value from the highest-precedence file holding the
// setting. As with File.Lookup, an absent value reports false.
func (fset FileSet) Lookup(section, key string) (string, bool) {
	for _, f := range fset {
		if f.HasSetting(section, key) {
			return f.Lookup(section, key)
		}
	}
	return "", false
}

// GetDefault returns the value from the highest-precedence file holding
// the setting, or defaultValue when no file holds it.
func (fset FileSet) GetDefault(section, key, defaultValue string) string {
	for _, f := range fset {
		if f.HasSetting(section, key) {
			return f.GetDefault(section, key, defaultValue)
		}
	}
	return defaultValue
}

// HasSection reports whether any file in the set has the named section.
func (fset FileSet) HasSection(name string) bool {
	for _, f := range fset {
		if f.HasSection(name) {
			return true
		}
	}
	return false
}

// HasSetting reports whether any file in the set has the given setting.
func (fset FileSet) HasSetting(section, key string) bool {
	for _, f := range fset {
		if f.HasSetting(section, key) {
			return true
		}
	}
	return false
}

// Sections returns the section names of all files in the set, in file
// order then insertion order, deduplicated case-insensitively on the
// first-seen casing.
func (fset FileSet) Sections() []string {
	var names []string
	for _, f := range fset {
		for _, name := range f.Sections() {
			seen := false
			for _, n := range names {
				if strings.EqualFold(n, name) {
					seen = true
					break
				}
			}
			if !seen {
				names = append(names, name)
			}
		}
	}
	return names
}

// Section returns the named section merged across the set, with
// higher-precedence files overriding lower ones key by key.
func (fset FileSet) Section(name string) Section {
	var merged Section
	for i := len(fset) - 1; i >= 0; i-- {
		for k, v := range fset[i].Section(name) {
			if merged == nil {
				merged = make(Section)
			}
			for existing := range merged {
				if strings.EqualFold(existing, k) {
					delete(merged, existing)
					break
				}
			}
			merged[k] = v
		}
	}
	return merged
}

// Set sets the setting on the first file and deletes it from all
// subsequent files, so that the new value takes precedence everywhere.
// Set panics if len(fset) == 0. If fset[0] == nil, Set allocates a new
// File.
func (fset FileSet) Set(section, key, value string) {
	if fset[0] == nil {
		fset[0] = new(File)
	}
	fset[0].Set(section, key, value)
	fset[1:].Delete(section, key)
}

// Delete removes the setting from every file in the set. Nil elements are
// ignored.
func (fset FileSet) Delete(section, key string) {
	for _, f := range fset {
		f.Delete(section, key)
	}
}
