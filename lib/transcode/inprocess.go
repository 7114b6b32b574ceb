// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import (
	"compress/bzip2"
	"fmt"
	"io"
	"net/http"

	"github.com/klauspost/compress/gzip"
)

// In-process alternatives to the helper processes: gzip in both
// directions, bzip2 for reading, and the Go HTTP client for remote
// fetches. They exist for environments where spawning helpers is
// unwanted or the helper binaries are unavailable. In-process bzip2
// writing has no implementation; callers keep using the external
// helper for that.

// readOnlyStream adapts a decoding reader plus a close chain.
type readOnlyStream struct {
	reader    io.Reader
	closeFunc func() error
}

func (s *readOnlyStream) Read(p []byte) (int, error) { return s.reader.Read(p) }
func (s *readOnlyStream) Write([]byte) (int, error)  { return 0, errNotWritable }
func (s *readOnlyStream) Close() error               { return s.closeFunc() }

// writeOnlyStream adapts an encoding writer plus a close chain.
type writeOnlyStream struct {
	writer    io.Writer
	closeFunc func() error
}

func (s *writeOnlyStream) Write(p []byte) (int, error) { return s.writer.Write(p) }
func (s *writeOnlyStream) Read([]byte) (int, error)    { return 0, errNotReadable }
func (s *writeOnlyStream) Close() error                { return s.closeFunc() }

// NewGzipReader returns a stream of the decompressed bytes of source.
// The gzip header is read immediately, so a source that is not gzip
// data fails here; source is closed on failure.
func NewGzipReader(source Stream) (Stream, error) {
	decoder, err := gzip.NewReader(source)
	if err != nil {
		source.Close()
		return nil, fmt.Errorf("gzip: %w", err)
	}
	return &readOnlyStream{
		reader: decoder,
		closeFunc: func() error {
			decodeErr := decoder.Close()
			if err := source.Close(); decodeErr == nil {
				decodeErr = err
			}
			return decodeErr
		},
	}, nil
}

// NewBzip2Reader returns a stream of the decompressed bytes of
// source. Corrupt input surfaces as read errors.
func NewBzip2Reader(source Stream) Stream {
	return &readOnlyStream{
		reader:    bzip2.NewReader(source),
		closeFunc: source.Close,
	}
}

// NewGzipWriter returns a stream that gzip-compresses everything
// written to it into destination. Close flushes the gzip trailer and
// closes destination; skipping Close produces a truncated file.
func NewGzipWriter(destination Stream) Stream {
	encoder := gzip.NewWriter(destination)
	return &writeOnlyStream{
		writer: encoder,
		closeFunc: func() error {
			encodeErr := encoder.Close()
			if err := destination.Close(); encodeErr == nil {
				encodeErr = err
			}
			return encodeErr
		},
	}
}

// OpenRemote fetches url with the Go HTTP client and returns the
// response body as a stream. Unlike the helper-based fetch, failures
// here are synchronous: connection errors and non-200 responses are
// reported immediately.
func OpenRemote(url string) (Stream, error) {
	response, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	if response.StatusCode != http.StatusOK {
		response.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, response.Status)
	}
	return &readOnlyStream{
		reader:    response.Body,
		closeFunc: response.Body.Close,
	}, nil
}
