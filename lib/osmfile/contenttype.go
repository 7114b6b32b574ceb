// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package osmfile

// ContentType classifies the semantic structure of a file: a snapshot
// with one current version per entity, a history with all retained
// versions, or a change stream of create/modify/delete operations.
type ContentType int

const (
	// Plain is a snapshot: a single current version per entity.
	Plain ContentType = iota

	// History retains multiple versions per entity.
	History

	// Change is a diff stream of create/modify/delete operations.
	Change
)

// String returns the canonical content-type name.
func (t ContentType) String() string {
	switch t {
	case Plain:
		return "osm"
	case History:
		return "history"
	case Change:
		return "change"
	default:
		return "unknown"
	}
}

// Suffix returns the canonical filename suffix for the content type,
// including the leading dot.
func (t ContentType) Suffix() string {
	switch t {
	case History:
		return ".osh"
	case Change:
		return ".osc"
	default:
		return ".osm"
	}
}

// HasMultipleVersions reports whether files of this content type may
// contain more than one version of the same entity.
func (t ContentType) HasMultipleVersions() bool {
	return t != Plain
}

// ParseContentType parses a content-type name as accepted by
// File.SetContentTypeName: "osm", "history"/"osh", "change"/"osc".
// Unknown names return an *ArgumentError carrying the offending value.
func ParseContentType(name string) (ContentType, error) {
	switch name {
	case "osm":
		return Plain, nil
	case "history", "osh":
		return History, nil
	case "change", "osc":
		return Change, nil
	default:
		return 0, &ArgumentError{What: "unknown content type", Value: name}
	}
}
