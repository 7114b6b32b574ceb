// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGzipRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.gz")
	payload := strings.Repeat("compressible payload ", 64)

	destination, err := OpenFileWrite(path)
	if err != nil {
		t.Fatal(err)
	}
	writer := NewGzipWriter(destination)
	if _, err := writer.Write([]byte(payload)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// The file on disk is framed gzip, not the raw payload.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(raw) == 0 || string(raw) == payload {
		t.Fatal("destination should contain gzip-framed data")
	}

	source, err := OpenFileRead(path)
	if err != nil {
		t.Fatal(err)
	}
	reader, err := NewGzipReader(source)
	if err != nil {
		t.Fatalf("NewGzipReader failed: %v", err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != payload {
		t.Error("gzip round trip mismatch")
	}
	if err := reader.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestGzipReaderRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-gzip")
	if err := os.WriteFile(path, []byte("plain text, no gzip header"), 0o644); err != nil {
		t.Fatal(err)
	}
	source, err := OpenFileRead(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewGzipReader(source); err == nil {
		t.Error("NewGzipReader should reject a missing gzip header")
	}
}

func TestBzip2ReaderRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-bzip2")
	if err := os.WriteFile(path, []byte("certainly not bzip2 data"), 0o644); err != nil {
		t.Fatal(err)
	}
	source, err := OpenFileRead(path)
	if err != nil {
		t.Fatal(err)
	}
	reader := NewBzip2Reader(source)
	if _, err := io.ReadAll(reader); err == nil {
		t.Error("reading garbage as bzip2 should fail")
	}
	if err := reader.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestReadOnlyStreamRejectsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	source, err := OpenFileRead(path)
	if err != nil {
		t.Fatal(err)
	}
	reader := NewBzip2Reader(source)
	defer reader.Close()
	if _, err := reader.Write([]byte("y")); err == nil {
		t.Error("writes to an input stream should fail")
	}
}

func TestOpenRemote(t *testing.T) {
	const payload = "<osm version=\"0.6\"/>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, payload)
	}))
	defer server.Close()

	stream, err := OpenRemote(server.URL + "/api/map")
	if err != nil {
		t.Fatalf("OpenRemote failed: %v", err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != payload {
		t.Errorf("fetched %q, want %q", data, payload)
	}
	if err := stream.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestOpenRemoteNonOK(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	if _, err := OpenRemote(server.URL + "/absent"); err == nil {
		t.Error("OpenRemote should fail on a non-200 response")
	}
}
