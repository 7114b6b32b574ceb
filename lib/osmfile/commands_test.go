// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package osmfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "helpers.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCommandsOverrides(t *testing.T) {
	path := writeConfig(t, `
fetch: wget
gzip:
  compress: pigz
  decompress: unpigz
`)
	commands, err := LoadCommands(path)
	if err != nil {
		t.Fatalf("LoadCommands failed: %v", err)
	}
	if commands.Fetch != "wget" {
		t.Errorf("Fetch = %q, want %q", commands.Fetch, "wget")
	}
	if commands.GzipCompress != "pigz" || commands.GzipDecompress != "unpigz" {
		t.Errorf("gzip commands = (%q, %q), want (pigz, unpigz)",
			commands.GzipCompress, commands.GzipDecompress)
	}
	// Absent keys keep their defaults.
	if commands.Bzip2Compress != "bzip2" || commands.Bzip2Decompress != "bzcat" {
		t.Errorf("bzip2 commands = (%q, %q), want defaults",
			commands.Bzip2Compress, commands.Bzip2Decompress)
	}
}

func TestLoadCommandsRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "curl: /usr/bin/curl\n")
	if _, err := LoadCommands(path); err == nil {
		t.Error("unknown keys should be rejected")
	}
}

func TestLoadCommandsRejectsShellFragments(t *testing.T) {
	path := writeConfig(t, "gzip:\n  decompress: \"gzip -d -c\"\n")
	_, err := LoadCommands(path)
	if err == nil {
		t.Fatal("program names with whitespace should be rejected")
	}
	if !strings.Contains(err.Error(), "whitespace") {
		t.Errorf("error %q should mention whitespace", err)
	}
}

func TestLoadCommandsMissingFile(t *testing.T) {
	if _, err := LoadCommands(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing config file should be an error, not a fallback")
	}
}

func TestDefaultCommands(t *testing.T) {
	commands := DefaultCommands()
	if commands.decompress(CompressionGzip) != "zcat" {
		t.Errorf("gzip decompress = %q", commands.decompress(CompressionGzip))
	}
	if commands.compress(CompressionBzip2) != "bzip2" {
		t.Errorf("bzip2 compress = %q", commands.compress(CompressionBzip2))
	}
	if commands.decompress(CompressionNone) != "" || commands.compress(CompressionNone) != "" {
		t.Error("no-compression scheme should have no helper commands")
	}
}
