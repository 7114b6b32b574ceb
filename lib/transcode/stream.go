// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import (
	"errors"
	"io"
	"os"
)

// Stream is the single byte-stream endpoint returned by the open
// functions. Input streams reject writes and output streams reject
// reads; which directions work is decided by how the stream was
// opened, not by the type.
type Stream interface {
	io.Reader
	io.Writer
	Close() error
}

var (
	errNotWritable = errors.New("stream opened for input is not writable")
	errNotReadable = errors.New("stream opened for output is not readable")
)

// fileStream wraps a local file or one of the std streams. The std
// streams are borrowed, not owned: Close never closes them.
type fileStream struct {
	file *os.File
	std  bool
}

func (s *fileStream) Read(p []byte) (int, error)  { return s.file.Read(p) }
func (s *fileStream) Write(p []byte) (int, error) { return s.file.Write(p) }

func (s *fileStream) Close() error {
	if s.std {
		return nil
	}
	return s.file.Close()
}

// OpenFileRead opens a local path read-only. The empty path is
// standard input. Open errors carry the path and OS error code.
func OpenFileRead(path string) (Stream, error) {
	if path == "" {
		return &fileStream{file: os.Stdin, std: true}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &fileStream{file: file}, nil
}

// OpenFileWrite opens a local path for writing, creating or
// truncating it. The empty path is standard output.
func OpenFileWrite(path string) (Stream, error) {
	if path == "" {
		return &fileStream{file: os.Stdout, std: true}, nil
	}
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return nil, err
	}
	return &fileStream{file: file}, nil
}
