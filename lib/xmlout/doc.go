// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

// Package xmlout serializes entities as the XML interchange format.
// It registers itself for the markup encodings (plain, gzip, bzip2);
// importing the package is what makes them available to
// serialize.NewWriter.
//
// Snapshot and history files get an <osm> root; change files get
// <osmChange> with entities grouped into <create>/<modify>/<delete>
// elements. Grouping is streaming: a group element stays open while
// consecutive entities share the same operation, so callers must
// order change entities by operation adjacency (see serialize.Writer).
package xmlout
