// Copyright 2026 the PeanutButter Authors.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini provides a parser and serializer for the INI file format.
See https://en.wikipedia.org/wiki/INI_file.

This package is specifically designed for read-modify-write scenarios: it
preserves comments and the order in which sections and settings appear, and
it serializes them back in that order.

# Syntax

An INI file is Unicode text encoded in UTF-8. Lines are terminated by any
run of '\n' or '\r' characters and are trimmed of surrounding whitespace.

A setting is a key and value written on a single line, separated by the
first equals sign ('='); any further equals signs belong to the value:

	key=value

A key written with no equals sign at all is a valid setting whose value is
absent. An absent value is distinct from an empty string ("key=" or
"key=\"\"").

Values may be surrounded by double quotes ('"'). Quotes keep a semicolon
literal instead of starting a comment; no escape sequences are interpreted.
On output every present value is written double-quoted, whether or not it
was quoted in the source.

Settings may be grouped into sections. A section is started by writing its
name in square brackets ('[' and ']') on its own line and ends at the next
section name or the end of file:

	[section]
	key1=value1
	key2=value2

Settings encountered before a section name are permitted. They are
considered part of the preamble section, identified by the empty string
(""), which serializes without a heading line.

Section names and keys are looked up case-insensitively. The casing seen
first is kept and used when serializing. When a key repeats within one
section, the later occurrence replaces the earlier one, comments included.

A comment runs from an unquoted semicolon (';') to the end of the line.
Comment lines preceding a section heading or setting, together with any
comment trailing it on the same line, attach to that heading or setting and
are written back immediately before it.

# Leniency

Parsing never fails on malformed input. A line with unbalanced quotes is
taken wholly as data, a heading with no closing bracket is read as a
setting, and a bare token becomes a key with an absent value. The format is
meant to be hand-edited and hand-edited files contain mistakes.
*/
package ini
