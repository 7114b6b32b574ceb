// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package osmfile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Commands names the external helper programs used by the transcoding
// pipeline. Each program is invoked directly (no shell): the
// decompression and fetch helpers get the source path or URL as their
// single argument and stream decoded bytes to stdout; the compression
// helpers stream from stdin to stdout with no arguments.
type Commands struct {
	// Fetch retrieves an http(s) URL and streams the body to stdout.
	Fetch string

	// GzipCompress and GzipDecompress handle the gzip scheme.
	GzipCompress   string
	GzipDecompress string

	// Bzip2Compress and Bzip2Decompress handle the bzip2 scheme.
	Bzip2Compress   string
	Bzip2Decompress string
}

// DefaultCommands returns the standard helper set: zcat/gzip,
// bzcat/bzip2, and curl.
func DefaultCommands() Commands {
	return Commands{
		Fetch:           "curl",
		GzipCompress:    "gzip",
		GzipDecompress:  "zcat",
		Bzip2Compress:   "bzip2",
		Bzip2Decompress: "bzcat",
	}
}

// decompress returns the helper program for reading the given
// compression scheme, or "" when none is needed.
func (c Commands) decompress(scheme Compression) string {
	switch scheme {
	case CompressionGzip:
		return c.GzipDecompress
	case CompressionBzip2:
		return c.Bzip2Decompress
	default:
		return ""
	}
}

// compress returns the helper program for writing the given
// compression scheme, or "" when none is needed.
func (c Commands) compress(scheme Compression) string {
	switch scheme {
	case CompressionGzip:
		return c.GzipCompress
	case CompressionBzip2:
		return c.Bzip2Compress
	default:
		return ""
	}
}

// commandsFile is the YAML schema for LoadCommands. All keys are
// optional; absent keys keep their defaults.
type commandsFile struct {
	Fetch string `yaml:"fetch"`
	Gzip  struct {
		Compress   string `yaml:"compress"`
		Decompress string `yaml:"decompress"`
	} `yaml:"gzip"`
	Bzip2 struct {
		Compress   string `yaml:"compress"`
		Decompress string `yaml:"decompress"`
	} `yaml:"bzip2"`
}

// LoadCommands reads a helper-command override file and returns the
// default command set with the file's entries applied. The path must
// be explicit: there is no discovery and no fallback locations, so
// configuration stays deterministic and auditable.
//
// Unknown keys are rejected. Helper entries are program names or
// paths, not shell fragments, so values containing whitespace are
// rejected too.
func LoadCommands(path string) (Commands, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Commands{}, fmt.Errorf("read command config: %w", err)
	}

	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)

	var parsed commandsFile
	if err := decoder.Decode(&parsed); err != nil {
		return Commands{}, fmt.Errorf("parse command config %s: %w", path, err)
	}

	commands := DefaultCommands()
	overrides := []struct {
		name   string
		value  string
		target *string
	}{
		{"fetch", parsed.Fetch, &commands.Fetch},
		{"gzip.compress", parsed.Gzip.Compress, &commands.GzipCompress},
		{"gzip.decompress", parsed.Gzip.Decompress, &commands.GzipDecompress},
		{"bzip2.compress", parsed.Bzip2.Compress, &commands.Bzip2Compress},
		{"bzip2.decompress", parsed.Bzip2.Decompress, &commands.Bzip2Decompress},
	}
	for _, override := range overrides {
		if override.value == "" {
			continue
		}
		if strings.ContainsAny(override.value, " \t") {
			return Commands{}, fmt.Errorf("command config %s: %s: program name %q contains whitespace (helpers are invoked directly, not through a shell)",
				path, override.name, override.value)
		}
		*override.target = override.value
	}

	return commands, nil
}
