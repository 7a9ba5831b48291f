// Copyright 2026 the PeanutButter Authors.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	t.Run("Existing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.ini")
		const source = "[Main]\nbob=1\n"
		if err := os.WriteFile(path, []byte(source), 0o666); err != nil {
			t.Fatal(err)
		}
		f, err := Load(path)
		if err != nil {
			t.Fatal("Load:", err)
		}
		if got := f.Get("Main", "bob"); got != "1" {
			t.Errorf(`Get("Main", "bob") = %q; want "1"`, got)
		}
		if got := f.Path(); got != path {
			t.Errorf("Path() = %q; want %q", got, path)
		}
	})

	t.Run("CreatesMissingFileAndDirectory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conf", "app.ini")
		f, err := Load(path)
		if err != nil {
			t.Fatal("Load:", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Load did not create the file: %v", err)
		}
		if got := f.Sections(); len(got) > 0 {
			t.Errorf("Sections() = %q; want empty", got)
		}
	})

	t.Run("RoundTripThroughDisk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.ini")
		f, err := Load(path)
		if err != nil {
			t.Fatal("Load:", err)
		}
		f.Set("Main", "bob", "builder")
		if err := f.Persist(""); err != nil {
			t.Fatal("Persist:", err)
		}
		g, err := Load(path)
		if err != nil {
			t.Fatal("Load:", err)
		}
		if got := g.Get("main", "BOB"); got != "builder" {
			t.Errorf(`Get("main", "BOB") = %q; want "builder"`, got)
		}
	})
}

func TestPersist(t *testing.T) {
	t.Run("NoPath", func(t *testing.T) {
		err := ParseString("a=1\n").Persist("")
		if !errors.Is(err, ErrNoPath) {
			t.Errorf("Persist(\"\") = %v; want ErrNoPath", err)
		}
	})

	t.Run("ExplicitPath", func(t *testing.T) {
		f := ParseString("; note\na=1\n")
		path := filepath.Join(t.TempDir(), "sub", "out.ini")
		if err := f.Persist(path); err != nil {
			t.Fatal("Persist:", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(f.String(), string(got)); diff != "" {
			t.Errorf("file contents (-want +got):\n%s", diff)
		}
		// An explicit path does not rebind the file.
		if got := f.Path(); got != "" {
			t.Errorf("Path() = %q; want empty", got)
		}
	})
}

func TestWriteTo(t *testing.T) {
	f := ParseString("[Main]\nbob=1\n")
	buf := new(bytes.Buffer)
	n, err := f.WriteTo(buf)
	if err != nil {
		t.Fatal("WriteTo:", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo reported %d bytes; wrote %d", n, buf.Len())
	}
	if diff := cmp.Diff(f.String(), buf.String()); diff != "" {
		t.Errorf("WriteTo (-want +got):\n%s", diff)
	}
	if bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		t.Error("WriteTo emitted a trailing line terminator")
	}
}

func TestUnmarshalTextKeepsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.ini")
	f, err := Load(path)
	if err != nil {
		t.Fatal("Load:", err)
	}
	if err := f.UnmarshalText([]byte("[New]\nk=1\n")); err != nil {
		t.Fatal("UnmarshalText:", err)
	}
	if got := f.Path(); got != path {
		t.Errorf("Path() = %q; want %q", got, path)
	}
}
