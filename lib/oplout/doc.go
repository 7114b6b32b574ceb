// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

// Package oplout serializes entities as the OPL line-record format:
// one entity per line, single-character field prefixes, %-escaped
// reserved characters. It registers itself for the line-record
// encodings (plain, gzip, bzip2).
//
// OPL has no document framing: SetMeta is accepted for the contract
// but writes nothing, and deleted entities are marked with the dD
// field rather than grouped the way the markup format groups change
// operations.
package oplout
