// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

// Package osm defines the minimal in-memory entity model the serializers
// consume: nodes, ways, and relations with their shared metadata, tags,
// and the interchange timestamp convention.
//
// The model is deliberately small. It carries exactly the fields the
// interchange formats emit and nothing else — no geometry operations, no
// spatial indexing, no referential integrity. Richer object models can
// feed serializers by converting down to these types.
package osm
