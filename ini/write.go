// Copyright 2026 the PeanutButter Authors.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"io"
	"runtime"
	"strings"
)

// lineEnding separates serialized lines. The parser accepts '\n' and '\r'
// interchangeably on every platform.
var lineEnding = "\n"

func init() {
	if runtime.GOOS == "windows" {
		lineEnding = "\r\n"
	}
}

// MarshalText serializes the file in INI format: sections in insertion
// order, settings in insertion order within each section, comment lines
// re-emitted with a ';' prefix immediately before their owner. Present
// values are always double-quoted; absent values serialize as a bare key.
// There is no terminator after the final line.
func (f *File) MarshalText() ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	var lines []string
	for _, s := range f.sections {
		for _, c := range s.comments {
			lines = append(lines, ";"+c)
		}
		if s.name != "" {
			lines = append(lines, "["+s.name+"]")
		}
		for _, st := range s.settings {
			for _, c := range st.comments {
				lines = append(lines, ";"+c)
			}
			if st.hasValue {
				lines = append(lines, st.key+`="`+st.value+`"`)
			} else {
				lines = append(lines, st.key)
			}
		}
	}
	for _, c := range f.trailing {
		lines = append(lines, ";"+c)
	}
	return []byte(strings.Join(lines, lineEnding)), nil
}

// String returns the serialized form without touching any file.
func (f *File) String() string {
	b, _ := f.MarshalText()
	return string(b)
}

// WriteTo writes the serialized form to w. Like MarshalText, it does not
// write a terminator after the final line.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	b, _ := f.MarshalText()
	if len(b) == 0 {
		return 0, nil
	}
	n, err := w.Write(b)
	return int64(n), err
}
