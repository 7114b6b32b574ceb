// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package xmlout

import (
	"fmt"
	"strconv"

	"github.com/osmforge/osmio/lib/osm"
	"github.com/osmforge/osmio/lib/osmfile"
	"github.com/osmforge/osmio/lib/serialize"
	"github.com/osmforge/osmio/lib/version"
)

func init() {
	for _, encoding := range []osmfile.Encoding{osmfile.XML, osmfile.XMLGzip, osmfile.XMLBzip2} {
		serialize.Register(encoding, New)
	}
}

// changeOp classifies an entity in a change stream.
type changeOp int

const (
	opNone changeOp = iota
	opCreate
	opModify
	opDelete
)

func (op changeOp) String() string {
	switch op {
	case opCreate:
		return "create"
	case opModify:
		return "modify"
	case opDelete:
		return "delete"
	default:
		return "none"
	}
}

// operationFor derives the change operation: deleted entities are
// deletes, first versions are creates, everything else is a modify.
func operationFor(object *osm.Object) changeOp {
	if !object.Visible {
		return opDelete
	}
	if object.Version == 1 {
		return opCreate
	}
	return opModify
}

// Writer emits the XML interchange format into a File opened for
// output. See serialize.Writer for the call protocol.
type Writer struct {
	file *osmfile.File
	e    *emitter

	// change selects the <osmChange> framing and operation grouping.
	change bool

	// visible is true when entities carry an explicit visible
	// attribute: content retains multiple versions and is not a
	// change stream (change streams encode visibility through the
	// operation groups instead).
	visible bool

	metaSet bool
	closed  bool
	lastOp  changeOp
}

// New builds a Writer bound to file, which must already be open for
// output.
func New(file *osmfile.File) (serialize.Writer, error) {
	stream := file.Stream()
	if stream == nil {
		return nil, fmt.Errorf("xmlout: file %q is not open for output", file.Path())
	}
	contentType := file.ContentType()
	return &Writer{
		file:    file,
		e:       newEmitter(stream),
		change:  contentType == osmfile.Change,
		visible: contentType.HasMultipleVersions() && contentType != osmfile.Change,
	}, nil
}

// SetMeta writes the document header and root element. Must be called
// exactly once, before any entity.
func (w *Writer) SetMeta(meta serialize.Meta) error {
	if w.metaSet {
		return fmt.Errorf("xmlout: meta already written")
	}
	w.metaSet = true

	w.e.header()
	if w.change {
		w.e.startElement("osmChange")
	} else {
		w.e.startElement("osm")
	}
	w.e.attribute("version", "0.6")
	generator := meta.Generator
	if generator == "" {
		generator = version.Generator()
	}
	w.e.attribute("generator", generator)

	if meta.Bounds != nil {
		w.e.startElement("bounds")
		w.e.attribute("minlon", coordinate(meta.Bounds.MinLon))
		w.e.attribute("minlat", coordinate(meta.Bounds.MinLat))
		w.e.attribute("maxlon", coordinate(meta.Bounds.MaxLon))
		w.e.attribute("maxlat", coordinate(meta.Bounds.MaxLat))
		w.e.endElement()
	}
	return w.emitError()
}

// Node emits a node element.
func (w *Writer) Node(node *osm.Node) error {
	if err := w.beginEntity(&node.Object); err != nil {
		return err
	}
	w.e.startElement("node")
	w.objectAttributes(&node.Object)
	if node.Location != nil {
		w.e.attribute("lat", coordinate(node.Location.Lat))
		w.e.attribute("lon", coordinate(node.Location.Lon))
	}
	w.tags(node.Tags)
	w.e.endElement()
	return w.emitError()
}

// Way emits a way element with its node references.
func (w *Writer) Way(way *osm.Way) error {
	if err := w.beginEntity(&way.Object); err != nil {
		return err
	}
	w.e.startElement("way")
	w.objectAttributes(&way.Object)
	for _, ref := range way.Nodes {
		w.e.startElement("nd")
		w.e.attribute("ref", strconv.FormatInt(ref, 10))
		w.e.endElement()
	}
	w.tags(way.Tags)
	w.e.endElement()
	return w.emitError()
}

// Relation emits a relation element with its members.
func (w *Writer) Relation(relation *osm.Relation) error {
	if err := w.beginEntity(&relation.Object); err != nil {
		return err
	}
	w.e.startElement("relation")
	w.objectAttributes(&relation.Object)
	for _, member := range relation.Members {
		w.e.startElement("member")
		w.e.attribute("type", member.Type.String())
		w.e.attribute("ref", strconv.FormatInt(member.Ref, 10))
		w.e.attribute("role", member.Role)
		w.e.endElement()
	}
	w.tags(relation.Tags)
	w.e.endElement()
	return w.emitError()
}

// Close flushes any open operation group, finalizes the framing, and
// closes the bound File. Errors deferred by the transcoding pipeline
// (helper failures) surface here.
func (w *Writer) Close() error {
	if w.closed {
		return fmt.Errorf("xmlout: writer already closed")
	}
	w.closed = true

	if w.metaSet {
		if w.change && w.lastOp != opNone {
			w.e.endElement()
		}
		w.e.endElement() // root
	}
	flushErr := w.e.flush()
	closeErr := w.file.Close()
	if flushErr != nil {
		return fmt.Errorf("xmlout: %w", flushErr)
	}
	return closeErr
}

// beginEntity enforces the lifecycle and, for change streams, the
// operation grouping.
func (w *Writer) beginEntity(object *osm.Object) error {
	if !w.metaSet {
		return fmt.Errorf("xmlout: SetMeta must be called before entities")
	}
	if w.closed {
		return fmt.Errorf("xmlout: writer already closed")
	}
	if w.change {
		w.groupOperation(operationFor(object))
	}
	return nil
}

// groupOperation keeps the current operation group open while
// consecutive entities share an operation, and switches groups when
// the operation changes.
func (w *Writer) groupOperation(op changeOp) {
	if op == w.lastOp {
		return
	}
	if w.lastOp != opNone {
		w.e.endElement()
	}
	w.e.startElement(op.String())
	w.lastOp = op
}

// objectAttributes writes the shared metadata attributes. Zero values
// are omitted; an author is only attributed when the uid is positive.
func (w *Writer) objectAttributes(object *osm.Object) {
	w.e.attribute("id", strconv.FormatInt(object.ID, 10))
	if object.Version != 0 {
		w.e.attribute("version", strconv.Itoa(object.Version))
	}
	if !object.Timestamp.IsZero() {
		w.e.attribute("timestamp", osm.FormatTimestamp(object.Timestamp))
	}
	if !object.Anonymous() {
		w.e.attribute("uid", strconv.FormatInt(object.UID, 10))
		w.e.attribute("user", object.User)
	}
	if object.Changeset != 0 {
		w.e.attribute("changeset", strconv.FormatInt(object.Changeset, 10))
	}
	if w.visible {
		w.e.attribute("visible", strconv.FormatBool(object.Visible))
	}
}

func (w *Writer) tags(tags osm.Tags) {
	for _, tag := range tags {
		w.e.startElement("tag")
		w.e.attribute("k", tag.Key)
		w.e.attribute("v", tag.Value)
		w.e.endElement()
	}
}

// emitError reports the emitter's sticky error, if any.
func (w *Writer) emitError() error {
	if err := w.e.err; err != nil {
		return fmt.Errorf("xmlout: write failed: %w", err)
	}
	return nil
}

// coordinate formats with the fixed 7-decimal-place convention.
func coordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', 7, 64)
}
