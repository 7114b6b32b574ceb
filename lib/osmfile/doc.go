// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

// Package osmfile resolves the identity of a map-data file — its
// content type and encoding — from a path or URL, and opens it for
// input or output as a single byte stream.
//
// A File is created from a filename; the compound filename suffix
// determines the content type (snapshot, history, change) and encoding
// (serialization family plus compression scheme). Both can be
// overridden before the file is opened. An empty filename or "-" means
// standard input or output.
//
// Opening a File hides the transport behind one stream endpoint:
// plain local files and the std streams are used directly, while
// compressed encodings and http(s) URLs interpose an external helper
// process (gzip, bzcat, curl, ...) through lib/transcode. Helper
// failures are deferred: OpenForInput and OpenForOutput succeed
// optimistically, and Close reports the authoritative result after
// reaping the helper. Callers must treat Close as fallible.
//
// A File is single-owner and not reentrant: at most one open transport
// per instance, opened once, closed exactly once. Clone copies only
// the identity, never a live transport.
package osmfile
