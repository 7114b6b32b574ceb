// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

// Package serialize defines the writer contract shared by all output
// encodings and the process-wide registry that maps an encoding to its
// writer factory.
//
// Concrete writer packages (lib/xmlout, lib/oplout) register
// themselves from their init functions; importing a writer package is
// what makes its encodings available:
//
//	import (
//		_ "github.com/osmforge/osmio/lib/xmlout"
//	)
//
//	writer, err := serialize.NewWriter(file)
//
// The registry is written only during init and is read-only
// afterwards, so lookups are safe from any goroutine.
package serialize
