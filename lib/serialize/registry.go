// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package serialize

import (
	"errors"
	"fmt"

	"github.com/osmforge/osmio/lib/osmfile"
)

// ErrEncodingNotSupported is returned by NewWriter when no writer
// package has registered a factory for the file's encoding.
var ErrEncodingNotSupported = errors.New("encoding not supported")

// Factory builds a Writer bound to a File that is already open for
// output.
type Factory func(file *osmfile.File) (Writer, error)

// registry is populated from writer-package init functions and never
// mutated afterwards.
var registry = map[osmfile.Encoding]Factory{}

// Register installs a writer factory for an encoding. It is meant to
// be called from init; registering twice for the same encoding is a
// programming error and panics.
func Register(encoding osmfile.Encoding, factory Factory) {
	if _, exists := registry[encoding]; exists {
		panic(fmt.Sprintf("serialize: writer already registered for encoding %q", encoding))
	}
	registry[encoding] = factory
}

// NewWriter builds the registered writer for the file's encoding. The
// file must already be open for output. Encodings with no registered
// writer return an error wrapping ErrEncodingNotSupported.
func NewWriter(file *osmfile.File) (Writer, error) {
	factory, ok := registry[file.Encoding()]
	if !ok {
		return nil, fmt.Errorf("%q: %w", file.Encoding(), ErrEncodingNotSupported)
	}
	return factory(file)
}
