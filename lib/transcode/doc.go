// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

// Package transcode turns a resolved file identity into one usable
// byte-stream endpoint, hiding whether the bytes come from a plain
// local file, the std streams, a remote fetch, or an external helper
// process that compresses or decompresses on the fly.
//
// # Helper processes and deferred failure
//
// Compressed encodings and URL fetching run an external helper (gzip,
// bzcat, curl, ...) connected to the caller through an OS pipe. The
// failure contract is two-phase, matching when a subprocess's exit
// status actually becomes knowable:
//
//   - StartReadHelper and StartWriteHelper succeed optimistically.
//     A missing helper binary does not fail the start: the returned
//     stream reads as empty (or rejects writes with a pipe error) and
//     the start failure is remembered.
//   - Close blocks until the helper terminates and returns the
//     authoritative result. A helper that was missing, was killed, or
//     exited nonzero surfaces here as a *HelperError.
//
// Only pipe creation and local-file opens fail synchronously. Callers
// must treat Close as fallible even though it transfers no data of its
// own, and callers that abandon a stream without closing it leak the
// helper until process exit (helpers carry a parent-death signal, so
// they never outlive the process).
//
// There is no cancellation and no timeout: Close waits indefinitely
// for the helper. A caller needing to abort must kill the helper's
// process itself and still call Close to reap it.
package transcode
