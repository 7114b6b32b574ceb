// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package osmfile

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/osmforge/osmio/lib/transcode"
)

// File describes one map-data file: its content type, encoding, and
// path, plus the open transport once OpenForInput or OpenForOutput has
// succeeded. The zero path means standard input/output.
//
// A File is single-owner: it holds at most one open transport, and the
// transport is never shared between instances. It is not safe for
// concurrent use.
type File struct {
	contentType ContentType
	encoding    Encoding
	path        string
	commands    Commands
	inProcess   bool
	logger      *slog.Logger

	// stream is nil until an Open succeeds and is cleared by Close.
	stream transcode.Stream
}

// New creates a File for the given path, resolving content type and
// encoding from the filename:
//
//   - "" or "-": standard input/output, snapshot content in the
//     densest binary encoding.
//   - http(s) URL: snapshot content in uncompressed markup; no suffix
//     parsing is attempted for URLs.
//   - otherwise: the compound suffix (everything after the first dot
//     following the last path separator) is looked up in the suffix
//     catalog; unrecognized suffixes get the same default as stdio.
//
// Use the setters to override the resolved identity before opening.
func New(path string) *File {
	f := &File{
		commands: DefaultCommands(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	f.resolve(path)
	return f
}

func (f *File) resolve(path string) {
	if path == "" || path == "-" {
		f.path = ""
		f.apply(stdioDefault)
		return
	}
	f.path = path

	if isURL(path) {
		f.apply(urlDefault)
		return
	}

	if id, ok := suffixCatalog[pathSuffix(path)]; ok {
		f.apply(id)
		return
	}
	f.apply(fileDefault)
}

func (f *File) apply(id identity) {
	f.contentType = id.contentType
	f.encoding = id.encoding
}

// pathSuffix isolates the compound suffix: everything after the first
// dot following the last path separator. "archive/data.osm.bz2" gives
// "osm.bz2"; a dotless name gives "".
func pathSuffix(path string) string {
	base := path[strings.LastIndexByte(path, '/')+1:]
	dot := strings.IndexByte(base, '.')
	if dot < 0 {
		return ""
	}
	return base[dot+1:]
}

func isURL(path string) bool {
	colon := strings.IndexByte(path, ':')
	if colon < 0 {
		return false
	}
	scheme := path[:colon]
	return scheme == "http" || scheme == "https"
}

// ContentType returns the resolved content type.
func (f *File) ContentType() ContentType { return f.contentType }

// Encoding returns the resolved encoding.
func (f *File) Encoding() Encoding { return f.encoding }

// Path returns the filename. Empty means standard input/output.
func (f *File) Path() string { return f.path }

// HasMultipleVersions reports whether the content type may contain
// more than one version of the same entity. Consumers that require a
// specific content type check it through this and ContentType; the
// File itself never rejects a mismatch.
func (f *File) HasMultipleVersions() bool { return f.contentType.HasMultipleVersions() }

// SetContentType overrides the resolved content type.
func (f *File) SetContentType(t ContentType) { f.contentType = t }

// SetContentTypeName overrides the content type by name: "osm",
// "history"/"osh", "change"/"osc". Unknown names return an
// *ArgumentError carrying the offending value.
func (f *File) SetContentTypeName(name string) error {
	t, err := ParseContentType(name)
	if err != nil {
		return err
	}
	f.contentType = t
	return nil
}

// SetEncoding overrides the resolved encoding.
func (f *File) SetEncoding(e Encoding) { f.encoding = e }

// SetEncodingName overrides the encoding by name: "pbf", "xml",
// "xmlgz"/"gz", "xmlbz2"/"bz2", "opl", "oplgz", "oplbz2". Unknown
// names return an *ArgumentError carrying the offending value.
func (f *File) SetEncodingName(name string) error {
	e, err := ParseEncoding(name)
	if err != nil {
		return err
	}
	f.encoding = e
	return nil
}

// SetPath replaces the filename. "-" is normalized to "". The content
// type and encoding are left untouched; call New to re-resolve from a
// suffix.
func (f *File) SetPath(path string) {
	if path == "-" {
		path = ""
	}
	f.path = path
}

// SetCommands replaces the helper command set used for compression,
// decompression, and URL fetching.
func (f *File) SetCommands(c Commands) { f.commands = c }

// SetInProcess switches compressed encodings and URL fetching to
// in-process codecs instead of external helper processes: gzip in
// both directions, bzip2 for input only, and the Go HTTP client for
// URLs. In-process bzip2 output is not available and is rejected by
// OpenForOutput.
func (f *File) SetInProcess(inProcess bool) { f.inProcess = inProcess }

// SetLogger sets the logger for helper lifecycle events. The default
// discards everything.
func (f *File) SetLogger(logger *slog.Logger) { f.logger = logger }

// FilenameWithoutSuffix returns the filename with the compound suffix
// removed: "planet.osm.pbf" gives "planet".
func (f *File) FilenameWithoutSuffix() string {
	slash := strings.LastIndexByte(f.path, '/')
	dot := strings.IndexByte(f.path[slash+1:], '.')
	if dot < 0 {
		return f.path
	}
	return f.path[:slash+1+dot]
}

// FilenameWithDefaultSuffix returns the filename with the canonical
// suffixes for the current content type and encoding: a File for
// "planet.osm.pbf" switched to bzip2 markup gives "planet.osm.bz2".
// Use it to derive a companion output name from an input name.
func (f *File) FilenameWithDefaultSuffix() string {
	return f.FilenameWithoutSuffix() + f.contentType.Suffix() + f.encoding.Suffix()
}

// Clone returns a File with the same identity: content type, encoding,
// path, helper commands, and in-process setting. The open transport is
// never copied — each open resource has exactly one owner.
func (f *File) Clone() *File {
	return &File{
		contentType: f.contentType,
		encoding:    f.encoding,
		path:        f.path,
		commands:    f.commands,
		inProcess:   f.inProcess,
		logger:      f.logger,
	}
}

// Stream returns the open transport, or nil before a successful Open.
func (f *File) Stream() transcode.Stream { return f.stream }

// OpenForInput opens the file for reading and returns the byte-stream
// endpoint. Uncompressed local paths are opened directly (the empty
// path is standard input); http(s) URLs are fetched through the fetch
// helper; compressed encodings go through the decompression helper,
// which is handed the source path as its argument.
//
// Helper failures are deferred: a missing helper binary or a helper
// that exits nonzero does not fail here. The returned stream reads as
// empty and the subsequent Close reports the failure. Only pipe
// creation and local-file open errors are synchronous.
func (f *File) OpenForInput() (transcode.Stream, error) {
	if f.stream != nil {
		return nil, fmt.Errorf("open %s: file is already open", f.describe())
	}

	scheme := f.encoding.Compression()
	var stream transcode.Stream
	var err error
	switch {
	case scheme == CompressionNone:
		stream, err = f.openSource()
	case f.inProcess:
		var source transcode.Stream
		source, err = f.openSource()
		if err == nil {
			stream, err = wrapInput(source, scheme)
		}
	default:
		program := f.commands.decompress(scheme)
		f.logger.Debug("starting decompression helper", "program", program, "path", f.path)
		stream, err = transcode.StartReadHelper(program, f.path)
	}
	if err != nil {
		return nil, err
	}
	f.stream = stream
	return stream, nil
}

// openSource opens the raw (still compressed) byte source for input.
func (f *File) openSource() (transcode.Stream, error) {
	if isURL(f.path) {
		if f.inProcess {
			return transcode.OpenRemote(f.path)
		}
		f.logger.Debug("starting fetch helper", "program", f.commands.Fetch, "url", f.path)
		return transcode.StartReadHelper(f.commands.Fetch, f.path)
	}
	return transcode.OpenFileRead(f.path)
}

func wrapInput(source transcode.Stream, scheme Compression) (transcode.Stream, error) {
	switch scheme {
	case CompressionGzip:
		return transcode.NewGzipReader(source)
	case CompressionBzip2:
		return transcode.NewBzip2Reader(source), nil
	default:
		return source, nil
	}
}

// OpenForOutput opens the file for writing and returns the byte-stream
// endpoint. Uncompressed local paths are created or truncated (the
// empty path is standard output); compressed encodings hand the
// destination to the compression helper and return the helper's input
// side. URLs cannot be opened for output.
//
// The deferred-failure contract of OpenForInput applies here too: a
// missing compression helper surfaces at Close, not here.
func (f *File) OpenForOutput() (transcode.Stream, error) {
	if f.stream != nil {
		return nil, fmt.Errorf("open %s: file is already open", f.describe())
	}
	if isURL(f.path) {
		return nil, fmt.Errorf("open %s: cannot open a URL for output", f.path)
	}

	scheme := f.encoding.Compression()
	var stream transcode.Stream
	var err error
	switch {
	case scheme == CompressionNone:
		stream, err = transcode.OpenFileWrite(f.path)
	case f.inProcess:
		if scheme == CompressionBzip2 {
			return nil, fmt.Errorf("open %s: in-process bzip2 compression is not available, use the external helper", f.describe())
		}
		var destination transcode.Stream
		destination, err = transcode.OpenFileWrite(f.path)
		if err == nil {
			stream = transcode.NewGzipWriter(destination)
		}
	default:
		program := f.commands.compress(scheme)
		f.logger.Debug("starting compression helper", "program", program, "path", f.path)
		stream, err = transcode.StartWriteHelper(program, f.path)
	}
	if err != nil {
		return nil, err
	}
	f.stream = stream
	return stream, nil
}

// Close closes the open transport and clears it. When a helper
// process is attached this blocks until the helper terminates and
// returns the authoritative result of the whole transfer: a helper
// that was missing, died, or exited nonzero is reported here and
// nowhere else. Closing a File that is not open is a no-op.
func (f *File) Close() error {
	if f.stream == nil {
		return nil
	}
	stream := f.stream
	f.stream = nil
	if err := stream.Close(); err != nil {
		return err
	}
	f.logger.Debug("closed", "path", f.path)
	return nil
}

// describe names the file for error messages.
func (f *File) describe() string {
	if f.path == "" {
		return "<stdio>"
	}
	return f.path
}
