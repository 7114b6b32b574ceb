// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package xmlout

import (
	"bufio"
	"io"
	"strings"
)

// emitter is the minimal markup-emission primitive the writer is
// built on: start/end elements with attributes, two-space
// indentation, self-closing empty elements. Errors are sticky — the
// first write failure latches and every later call is a no-op, so
// call sites check once per logical operation.
type emitter struct {
	w     *bufio.Writer
	err   error
	names []string
	open  bool // a start tag is written but not yet closed with '>'
}

func newEmitter(w io.Writer) *emitter {
	return &emitter{w: bufio.NewWriterSize(w, 32*1024)}
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

func (e *emitter) writeString(s string) {
	if e.err != nil {
		return
	}
	if _, err := e.w.WriteString(s); err != nil {
		e.err = err
	}
}

// header writes the XML declaration.
func (e *emitter) header() {
	e.writeString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
}

func (e *emitter) indent(depth int) {
	for i := 0; i < depth; i++ {
		e.writeString("  ")
	}
}

// startElement opens a new element as a child of the current one.
func (e *emitter) startElement(name string) {
	if e.open {
		e.writeString(">\n")
		e.open = false
	}
	e.indent(len(e.names))
	e.writeString("<")
	e.writeString(name)
	e.names = append(e.names, name)
	e.open = true
}

// attribute adds an attribute to the currently open start tag.
func (e *emitter) attribute(name, value string) {
	e.writeString(" ")
	e.writeString(name)
	e.writeString("=\"")
	e.writeString(attrEscaper.Replace(value))
	e.writeString("\"")
}

// endElement closes the innermost element, self-closing it when it
// had no children.
func (e *emitter) endElement() {
	name := e.names[len(e.names)-1]
	e.names = e.names[:len(e.names)-1]
	if e.open {
		e.writeString("/>\n")
		e.open = false
		return
	}
	e.indent(len(e.names))
	e.writeString("</")
	e.writeString(name)
	e.writeString(">\n")
}

func (e *emitter) flush() error {
	if e.err != nil {
		return e.err
	}
	return e.w.Flush()
}
