// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package osmfile

// Family is the serialization family of an encoding.
type Family int

const (
	// Binary is the compact protobuf-based format. This package
	// resolves and opens binary files; the codec itself lives in a
	// separate serializer.
	Binary Family = iota

	// Markup is the XML interchange format.
	Markup

	// LineRecord is the one-object-per-line text format (OPL).
	LineRecord
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case Binary:
		return "binary"
	case Markup:
		return "markup"
	case LineRecord:
		return "linerecord"
	default:
		return "unknown"
	}
}

// Compression is the compression scheme of an encoding. Compressed
// encodings are read and written through external helper programs
// (see Commands) unless the File is switched to in-process codecs.
type Compression int

const (
	// CompressionNone means bytes are used as-is.
	CompressionNone Compression = iota

	// CompressionGzip is gzip/zlib framing.
	CompressionGzip

	// CompressionBzip2 is bzip2 framing.
	CompressionBzip2
)

// String returns the compression scheme name.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionBzip2:
		return "bzip2"
	default:
		return "unknown"
	}
}

// Encoding is a concrete combination of serialization family and
// compression scheme.
type Encoding int

const (
	// PBF is the compact binary format, internally compressed, never
	// wrapped in an outer compression layer.
	PBF Encoding = iota

	// XML is uncompressed markup.
	XML

	// XMLGzip is gzip-compressed markup.
	XMLGzip

	// XMLBzip2 is bzip2-compressed markup.
	XMLBzip2

	// OPL is the uncompressed line-record format.
	OPL

	// OPLGzip is gzip-compressed line records.
	OPLGzip

	// OPLBzip2 is bzip2-compressed line records.
	OPLBzip2
)

// encodingInfo is the static per-encoding table: canonical name, the
// suffix appended after the content-type suffix in default output
// names, and the family/compression split.
type encodingInfo struct {
	name        string
	suffix      string
	family      Family
	compression Compression
}

var encodings = [...]encodingInfo{
	PBF:      {name: "pbf", suffix: ".pbf", family: Binary, compression: CompressionNone},
	XML:      {name: "xml", suffix: "", family: Markup, compression: CompressionNone},
	XMLGzip:  {name: "xmlgz", suffix: ".gz", family: Markup, compression: CompressionGzip},
	XMLBzip2: {name: "xmlbz2", suffix: ".bz2", family: Markup, compression: CompressionBzip2},
	OPL:      {name: "opl", suffix: ".opl", family: LineRecord, compression: CompressionNone},
	OPLGzip:  {name: "oplgz", suffix: ".opl.gz", family: LineRecord, compression: CompressionGzip},
	OPLBzip2: {name: "oplbz2", suffix: ".opl.bz2", family: LineRecord, compression: CompressionBzip2},
}

func (e Encoding) info() encodingInfo {
	if e < 0 || int(e) >= len(encodings) {
		return encodingInfo{name: "unknown"}
	}
	return encodings[e]
}

// String returns the canonical encoding name as accepted by
// File.SetEncodingName.
func (e Encoding) String() string { return e.info().name }

// Suffix returns the filename suffix contributed by the encoding,
// including the leading dot where there is one. The markup encoding
// contributes no suffix of its own: "data" + ".osm" is already a
// complete markup filename.
func (e Encoding) Suffix() string { return e.info().suffix }

// Family returns the serialization family.
func (e Encoding) Family() Family { return e.info().family }

// Compression returns the compression scheme.
func (e Encoding) Compression() Compression { return e.info().compression }

// ParseEncoding parses an encoding name as accepted by
// File.SetEncodingName: "pbf", "xml", "xmlgz"/"gz", "xmlbz2"/"bz2",
// "opl", "oplgz", "oplbz2". Unknown names return an *ArgumentError
// carrying the offending value.
func ParseEncoding(name string) (Encoding, error) {
	switch name {
	case "pbf":
		return PBF, nil
	case "xml":
		return XML, nil
	case "xmlgz", "gz":
		return XMLGzip, nil
	case "xmlbz2", "bz2":
		return XMLBzip2, nil
	case "opl":
		return OPL, nil
	case "oplgz":
		return OPLGzip, nil
	case "oplbz2":
		return OPLBzip2, nil
	default:
		return 0, &ArgumentError{What: "unknown encoding", Value: name}
	}
}
