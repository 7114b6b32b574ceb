// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// HelperError reports that an external helper process failed: it
// could not be started, terminated abnormally, or exited nonzero.
// It is returned by Close on the owning stream, never by the start
// functions — see the package comment for the two-phase contract.
type HelperError struct {
	// Program is the helper program name as it was invoked.
	Program string

	// Err is the underlying cause: the start error for a helper that
	// never ran, or the *exec.ExitError from reaping it.
	Err error
}

func (e *HelperError) Error() string {
	return fmt.Sprintf("helper %q: %v", e.Program, e.Err)
}

func (e *HelperError) Unwrap() error { return e.Err }

// pipeStream is the parent's end of the pipe to a helper process.
// Exactly one direction is usable, decided by which start function
// built it; the kernel rejects operations on the wrong end.
type pipeStream struct {
	end     *os.File
	cmd     *exec.Cmd
	program string

	// startErr is set when the helper could not be started. The
	// stream stays usable (reads see EOF, writes see a pipe error)
	// and Close reports the failure.
	startErr error
}

func (s *pipeStream) Read(p []byte) (int, error)  { return s.end.Read(p) }
func (s *pipeStream) Write(p []byte) (int, error) { return s.end.Write(p) }

// Close closes the parent's pipe end and blocks until the helper
// terminates. Closing the pipe end first is what lets a write-side
// helper see EOF and finish. There is no timeout: a hung helper
// blocks Close indefinitely.
func (s *pipeStream) Close() error {
	closeErr := s.end.Close()

	if s.startErr != nil {
		return &HelperError{Program: s.program, Err: s.startErr}
	}
	if err := s.cmd.Wait(); err != nil {
		return &HelperError{Program: s.program, Err: err}
	}
	return closeErr
}

// helperAttr marks the helper for termination if this process dies,
// so an abandoned stream cannot leak a helper beyond process exit.
func helperAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Pdeathsig: unix.SIGTERM}
}

// StartReadHelper starts program with source as its single argument
// and returns a stream of the helper's standard output. The helper is
// expected to read the (compressed or remote) source named by its
// argument and write decoded bytes to stdout; its stdin and stderr
// are connected to the null device.
//
// Pipe creation failures are returned synchronously. A start failure
// is deferred: the returned stream reads as empty and Close reports
// the error.
func StartReadHelper(program, source string) (Stream, error) {
	read, write, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("create pipe: %w", err)
	}

	cmd := exec.Command(program, source)
	cmd.Stdout = write
	cmd.SysProcAttr = helperAttr()

	startErr := cmd.Start()
	// The child's end always gets closed in the parent: after a
	// successful start the child holds its own duplicate, and after a
	// failed one the reader must see EOF instead of blocking forever.
	write.Close()

	if startErr != nil {
		return &pipeStream{end: read, program: program, startErr: startErr}, nil
	}
	return &pipeStream{end: read, cmd: cmd, program: program}, nil
}

// StartWriteHelper starts program with its stdin connected to the
// returned stream and its stdout connected to destination, which is
// created or truncated first (the empty destination is standard
// output). The helper is expected to read raw bytes from stdin and
// write encoded bytes to stdout; it gets no arguments.
//
// The destination is opened before the helper starts, so an
// unwritable destination fails synchronously with the path and OS
// error code. Helper start failures follow the deferred contract:
// writes to the returned stream fail with a pipe error and Close
// reports the cause.
func StartWriteHelper(program, destination string) (Stream, error) {
	var destFile *os.File
	if destination == "" {
		destFile = os.Stdout
	} else {
		var err error
		destFile, err = os.OpenFile(destination, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
		if err != nil {
			return nil, err
		}
	}

	read, write, err := os.Pipe()
	if err != nil {
		if destination != "" {
			destFile.Close()
		}
		return nil, fmt.Errorf("create pipe: %w", err)
	}

	cmd := exec.Command(program)
	cmd.Stdin = read
	cmd.Stdout = destFile
	cmd.SysProcAttr = helperAttr()

	startErr := cmd.Start()
	read.Close()
	if destination != "" {
		destFile.Close()
	}

	if startErr != nil {
		// No reader on the pipe: the caller's writes fail with EPIPE
		// instead of blocking on a full pipe buffer.
		return &pipeStream{end: write, program: program, startErr: startErr}, nil
	}
	return &pipeStream{end: write, cmd: cmd, program: program}, nil
}
