// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package oplout

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/osmforge/osmio/lib/osm"
	"github.com/osmforge/osmio/lib/osmfile"
	"github.com/osmforge/osmio/lib/serialize"
)

func init() {
	for _, encoding := range []osmfile.Encoding{osmfile.OPL, osmfile.OPLGzip, osmfile.OPLBzip2} {
		serialize.Register(encoding, New)
	}
}

// Writer emits OPL line records into a File opened for output. See
// serialize.Writer for the call protocol.
type Writer struct {
	file *osmfile.File
	w    *bufio.Writer
	err  error

	// multi is true when the content type retains multiple versions
	// per entity; only then is the dV/dD visibility field written.
	multi bool

	metaSet bool
	closed  bool
}

// New builds a Writer bound to file, which must already be open for
// output.
func New(file *osmfile.File) (serialize.Writer, error) {
	stream := file.Stream()
	if stream == nil {
		return nil, fmt.Errorf("oplout: file %q is not open for output", file.Path())
	}
	return &Writer{
		file:  file,
		w:     bufio.NewWriterSize(stream, 32*1024),
		multi: file.HasMultipleVersions(),
	}, nil
}

// SetMeta is part of the writer contract. OPL has no document
// framing, so nothing is written; calling it twice is still an error.
func (w *Writer) SetMeta(serialize.Meta) error {
	if w.metaSet {
		return fmt.Errorf("oplout: meta already set")
	}
	w.metaSet = true
	return nil
}

// Node emits an n-line with coordinates.
func (w *Writer) Node(node *osm.Node) error {
	if err := w.beginEntity(); err != nil {
		return err
	}
	w.writeString("n")
	w.writeString(strconv.FormatInt(node.ID, 10))
	w.objectFields(&node.Object)
	if node.Location != nil {
		w.writeString(" x")
		w.writeString(coordinate(node.Location.Lon))
		w.writeString(" y")
		w.writeString(coordinate(node.Location.Lat))
	}
	w.writeString("\n")
	return w.emitError()
}

// Way emits a w-line with its node references.
func (w *Writer) Way(way *osm.Way) error {
	if err := w.beginEntity(); err != nil {
		return err
	}
	w.writeString("w")
	w.writeString(strconv.FormatInt(way.ID, 10))
	w.objectFields(&way.Object)
	if len(way.Nodes) > 0 {
		w.writeString(" N")
		for i, ref := range way.Nodes {
			if i > 0 {
				w.writeString(",")
			}
			w.writeString("n")
			w.writeString(strconv.FormatInt(ref, 10))
		}
	}
	w.writeString("\n")
	return w.emitError()
}

// Relation emits an r-line with its members.
func (w *Writer) Relation(relation *osm.Relation) error {
	if err := w.beginEntity(); err != nil {
		return err
	}
	w.writeString("r")
	w.writeString(strconv.FormatInt(relation.ID, 10))
	w.objectFields(&relation.Object)
	if len(relation.Members) > 0 {
		w.writeString(" M")
		for i, member := range relation.Members {
			if i > 0 {
				w.writeString(",")
			}
			w.writeString(typeLetter(member.Type))
			w.writeString(strconv.FormatInt(member.Ref, 10))
			w.writeString("@")
			w.writeString(escape(member.Role))
		}
	}
	w.writeString("\n")
	return w.emitError()
}

// Close flushes the buffered lines and closes the bound File. Errors
// deferred by the transcoding pipeline surface here.
func (w *Writer) Close() error {
	if w.closed {
		return fmt.Errorf("oplout: writer already closed")
	}
	w.closed = true

	flushErr := w.err
	if flushErr == nil {
		flushErr = w.w.Flush()
	}
	closeErr := w.file.Close()
	if flushErr != nil {
		return fmt.Errorf("oplout: %w", flushErr)
	}
	return closeErr
}

func (w *Writer) beginEntity() error {
	if !w.metaSet {
		return fmt.Errorf("oplout: SetMeta must be called before entities")
	}
	if w.closed {
		return fmt.Errorf("oplout: writer already closed")
	}
	return nil
}

// objectFields writes the shared metadata fields. Zero values are
// omitted; an author is only attributed when the uid is positive.
func (w *Writer) objectFields(object *osm.Object) {
	if object.Version != 0 {
		w.writeString(" v")
		w.writeString(strconv.Itoa(object.Version))
	}
	if w.multi {
		if object.Visible {
			w.writeString(" dV")
		} else {
			w.writeString(" dD")
		}
	}
	if object.Changeset != 0 {
		w.writeString(" c")
		w.writeString(strconv.FormatInt(object.Changeset, 10))
	}
	if !object.Timestamp.IsZero() {
		w.writeString(" t")
		w.writeString(osm.FormatTimestamp(object.Timestamp))
	}
	if !object.Anonymous() {
		w.writeString(" i")
		w.writeString(strconv.FormatInt(object.UID, 10))
		w.writeString(" u")
		w.writeString(escape(object.User))
	}
	if len(object.Tags) > 0 {
		w.writeString(" T")
		for i, tag := range object.Tags {
			if i > 0 {
				w.writeString(",")
			}
			w.writeString(escape(tag.Key))
			w.writeString("=")
			w.writeString(escape(tag.Value))
		}
	}
}

func (w *Writer) writeString(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.w.WriteString(s); err != nil {
		w.err = err
	}
}

func (w *Writer) emitError() error {
	if w.err != nil {
		return fmt.Errorf("oplout: write failed: %w", w.err)
	}
	return nil
}

func typeLetter(t osm.ObjectType) string {
	switch t {
	case osm.TypeWay:
		return "w"
	case osm.TypeRelation:
		return "r"
	default:
		return "n"
	}
}

// reserved are the characters with structural meaning in OPL lines.
const reserved = " ,=@%\n\r\t"

// escape %-encodes reserved characters as %<hex codepoint>%.
func escape(s string) string {
	if !strings.ContainsAny(s, reserved) {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(reserved, r) {
			fmt.Fprintf(&b, "%%%x%%", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// coordinate formats with the fixed 7-decimal-place convention.
func coordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', 7, 64)
}
