// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package serialize

import (
	"github.com/osmforge/osmio/lib/osm"
)

// Meta is the global framing information written before any entity.
type Meta struct {
	// Bounds is the bounding box of the data, or nil when unknown.
	// Writers emit bounds only when present.
	Bounds *osm.Bounds

	// Generator identifies the producing program. Empty means the
	// library's own version.Generator() string.
	Generator string
}

// Writer serializes entities into a File opened for output.
//
// The call protocol is a strict lifecycle: SetMeta exactly once,
// before any entity; then any number of Node/Way/Relation calls; then
// Close exactly once. Close finalizes the framing, flushes buffers,
// and closes the underlying File, which reaps any helper process —
// errors deferred by the transcoding pipeline surface from Close.
//
// For change-content files the writer groups consecutive entities
// with the same change operation (create, modify, delete). Grouping
// relies on input order: the caller must present entities already
// ordered by operation adjacency, the writer never sorts or buffers.
//
// Writers are bound to a single File and are not safe for concurrent
// use.
type Writer interface {
	SetMeta(meta Meta) error
	Node(node *osm.Node) error
	Way(way *osm.Way) error
	Relation(relation *osm.Relation) error
	Close() error
}
