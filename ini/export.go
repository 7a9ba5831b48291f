// Copyright 2026 the PeanutButter Authors.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// Export formats supported by File.Export.
const (
	YAML = "yaml"
	JSON = "json"
)

// Export flattens the file into a section-name to settings mapping and
// encodes it in the given format. Absent values become empty strings,
// comments are dropped, and insertion order is not preserved: export is
// one-way and lossy by design.
func (f *File) Export(format string) ([]byte, error) {
	m := make(map[string]Section)
	if f != nil {
		for _, s := range f.sections {
			if s.name == "" && len(s.settings) == 0 {
				continue
			}
			out := make(Section, len(s.settings))
			for _, st := range s.settings {
				out[st.key] = st.value
			}
			m[s.name] = out
		}
	}
	switch format {
	case JSON:
		return json.MarshalIndent(m, "", "  ")
	case YAML:
		return yaml.Marshal(m)
	default:
		return nil, fmt.Errorf("export ini file: unknown format %q", format)
	}
}
