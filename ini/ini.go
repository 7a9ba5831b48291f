// Copyright 2026 the PeanutButter Authors.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"
	"io"
	"strings"
)

// A File is an ordered collection of sections and their settings. The zero
// value is an empty file. Sections and keys are looked up
// case-insensitively; the casing seen first is preserved for serialization.
//
// A File is single-owner: it is not safe for concurrent mutation.
type File struct {
	path     string
	sections []*section
	trailing []string
}

type section struct {
	name     string
	comments []string
	settings []*setting
}

// A setting's value may be absent (a bare key with no '='), which is
// distinct from an empty string.
type setting struct {
	comments []string
	key      string
	value    string
	hasValue bool
}

// Parse reads r to the end and parses it as an INI file. The only errors
// it can return come from r itself: malformed input never fails, it
// degrades to a best-effort interpretation as described in the package
// documentation.
func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parse ini file: %w", err)
	}
	f := new(File)
	f.parse(string(data))
	return f, nil
}

// ParseString parses an in-memory string. It never fails.
func ParseString(text string) *File {
	f := new(File)
	f.parse(text)
	return f
}

// UnmarshalText parses the INI data, replacing all sections, settings, and
// comments in f. The path established by Load, if any, is kept.
func (f *File) UnmarshalText(data []byte) error {
	f.parse(string(data))
	return nil
}

func isLineBreak(r rune) bool { return r == '\n' || r == '\r' }

// parse rebuilds f's store from text. The preamble section always exists
// after parsing, even when empty.
func (f *File) parse(text string) {
	f.sections = nil
	f.trailing = nil
	cur := f.getOrCreate("")
	var comments []string
	for _, raw := range strings.FieldsFunc(text, isLineBreak) {
		data, comment, hasComment := splitComment(raw)
		if hasComment {
			comments = append(comments, comment)
		}
		data = strings.TrimSpace(data)
		if data == "" {
			continue
		}
		if len(data) >= 2 && data[0] == '[' && data[len(data)-1] == ']' {
			cur = f.getOrCreate(strings.TrimSpace(data[1 : len(data)-1]))
			cur.comments = append(cur.comments, comments...)
			comments = nil
			continue
		}
		key, value, hasValue := splitSetting(data)
		st := cur.find(key)
		if st == nil {
			st = &setting{key: key}
			cur.settings = append(cur.settings, st)
		}
		// Duplicate keys: last write wins, comments included.
		st.value, st.hasValue = value, hasValue
		st.comments = comments
		comments = nil
	}
	f.trailing = comments
}

// splitComment separates the data portion of a line from the comment
// following the first unquoted semicolon. Fragments are absorbed into the
// data prefix while its double-quote count is odd, so semicolons inside a
// quoted span stay literal. A line whose quotes never balance is all data.
func splitComment(line string) (data, comment string, ok bool) {
	frags := strings.Split(line, ";")
	quotes := strings.Count(frags[0], `"`)
	n := 1
	for n < len(frags) && quotes%2 == 1 {
		quotes += strings.Count(frags[n], `"`)
		n++
	}
	if quotes%2 == 1 || n == len(frags) {
		return line, "", false
	}
	return strings.Join(frags[:n], ";"), strings.Join(frags[n:], ";"), true
}

// splitSetting splits a data line at its first equals sign. Only the first
// '=' is structural; the rest belong to the value. A surrounding quote
// pair is stripped from the value, otherwise it is merely trimmed.
func splitSetting(data string) (key, value string, hasValue bool) {
	i := strings.IndexByte(data, '=')
	if i < 0 {
		return strings.TrimSpace(data), "", false
	}
	key = strings.TrimSpace(data[:i])
	value = strings.TrimSpace(data[i+1:])
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

func (f *File) find(name string) *section {
	if f == nil {
		return nil
	}
	for _, s := range f.sections {
		if strings.EqualFold(s.name, name) {
			return s
		}
	}
	return nil
}

func (f *File) getOrCreate(name string) *section {
	if s := f.find(name); s != nil {
		return s
	}
	s := &section{name: name}
	if name == "" {
		// The preamble must serialize before any heading.
		f.sections = append([]*section{s}, f.sections...)
	} else {
		f.sections = append(f.sections, s)
	}
	return s
}

func (s *section) find(key string) *setting {
	for _, st := range s.settings {
		if strings.EqualFold(st.key, key) {
			return st
		}
	}
	return nil
}

// Get returns the value of the given setting, or the empty string if the
// setting does not exist or its value is absent.
func (f *File) Get(section, key string) string {
	v, _ := f.Lookup(section, key)
	return v
}

// Lookup returns the value of the given setting. The second result is
// false when the setting does not exist or exists with an absent value;
// combined with HasSetting this distinguishes the two.
func (f *File) Lookup(section, key string) (string, bool) {
	s := f.find(section)
	if s == nil {
		return "", false
	}
	st := s.find(key)
	if st == nil || !st.hasValue {
		return "", false
	}
	return st.value, true
}

// GetDefault returns the value of the given setting, or defaultValue when
// the setting does not exist. A setting that exists with an absent value
// returns the empty string, not defaultValue.
func (f *File) GetDefault(section, key, defaultValue string) string {
	s := f.find(section)
	if s == nil {
		return defaultValue
	}
	st := s.find(key)
	if st == nil {
		return defaultValue
	}
	return st.value
}

// HasSection reports whether the named section exists. After parsing, the
// preamble section ("") always exists.
func (f *File) HasSection(name string) bool {
	return f.find(name) != nil
}

// HasSetting reports whether the given setting exists, absent-valued or
// not.
func (f *File) HasSetting(section, key string) bool {
	s := f.find(section)
	return s != nil && s.find(key) != nil
}

// AddSection creates the named section if it does not exist. Adding an
// existing name is a no-op that preserves the original entry and its
// casing.
func (f *File) AddSection(name string) {
	f.getOrCreate(name)
}

// RemoveSection removes the named section and all of its settings.
// Removing a nonexistent section is a no-op.
func (f *File) RemoveSection(name string) {
	if f == nil {
		return
	}
	for i, s := range f.sections {
		if strings.EqualFold(s.name, name) {
			f.sections = append(f.sections[:i], f.sections[i+1:]...)
			return
		}
	}
}

// Set sets the setting to the given value, creating the section and the
// setting as needed. Comments already attached to an existing setting are
// left untouched.
func (f *File) Set(section, key, value string) {
	s := f.getOrCreate(section)
	if st := s.find(key); st != nil {
		st.value, st.hasValue = value, true
		return
	}
	s.settings = append(s.settings, &setting{key: key, value: value, hasValue: true})
}

// Delete removes the given setting and its comments. Deleting from a
// nonexistent section or a nonexistent key is a no-op; the section is kept
// even when it becomes empty.
func (f *File) Delete(section, key string) {
	s := f.find(section)
	if s == nil {
		return
	}
	for i, st := range s.settings {
		if strings.EqualFold(st.key, key) {
			s.settings = append(s.settings[:i], s.settings[i+1:]...)
			return
		}
	}
}

// Sections returns section names in insertion order. The preamble section
// is included only when it holds settings or comments.
func (f *File) Sections() []string {
	if f == nil {
		return nil
	}
	names := make([]string, 0, len(f.sections))
	for _, s := range f.sections {
		if s.name == "" && len(s.settings) == 0 && len(s.comments) == 0 {
			continue
		}
		names = append(names, s.name)
	}
	return names
}

// Keys returns the keys of the named section in insertion order.
func (f *File) Keys(section string) []string {
	s := f.find(section)
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.settings))
	for _, st := range s.settings {
		keys = append(keys, st.key)
	}
	return keys
}

// A Section is a copy of one section's settings. Absent values are
// represented by the empty string.
type Section map[string]string

// Section returns a copy of the settings in the named section, or nil if
// the section does not exist. Mutating the copy does not affect the file.
func (f *File) Section(name string) Section {
	s := f.find(name)
	if s == nil {
		return nil
	}
	out := make(Section, len(s.settings))
	for _, st := range s.settings {
		out[st.key] = st.value
	}
	return out
}

// Get returns the value associated with the given key, compared
// case-insensitively. If the key is not present, Get returns the empty
// string.
func (sect Section) Get(key string) string {
	for k, v := range sect {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}
