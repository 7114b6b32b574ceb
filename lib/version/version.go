// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

// Package version holds the library name and version. Serializers use
// Generator as the default generator identification written into output
// file headers, so downstream consumers can tell which tool produced a
// file.
package version

// Name is the library name as it appears in generator strings.
const Name = "osmio"

// Version is the semantic version. This is set manually for releases.
const Version = "0.3.0"

// Generator returns the generator identification string written by
// serializers when the caller does not provide one.
func Generator() string {
	return Name + "/" + Version
}
