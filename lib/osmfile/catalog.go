// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package osmfile

// identity is a resolved (content type, encoding) pair.
type identity struct {
	contentType ContentType
	encoding    Encoding
}

// Default identities. Standard input/output and unrecognized local
// files default to the densest binary encoding; URLs default to
// uncompressed markup, which is what map-data APIs serve.
var (
	stdioDefault = identity{Plain, PBF}
	fileDefault  = identity{Plain, PBF}
	urlDefault   = identity{Plain, XML}
)

// suffixCatalog maps compound filename suffixes to their identity.
// The suffix is everything after the first dot following the last
// path separator, so "planet.osm.bz2" resolves via "osm.bz2" and
// "extract.pbf" via "pbf".
var suffixCatalog = map[string]identity{
	"pbf":         {Plain, PBF},
	"osm.pbf":     {Plain, PBF},
	"osm":         {Plain, XML},
	"osm.gz":      {Plain, XMLGzip},
	"osm.bz2":     {Plain, XMLBzip2},
	"osm.opl":     {Plain, OPL},
	"osm.opl.gz":  {Plain, OPLGzip},
	"osm.opl.bz2": {Plain, OPLBzip2},
	"osh.pbf":     {History, PBF},
	"osh":         {History, XML},
	"osh.gz":      {History, XMLGzip},
	"osh.bz2":     {History, XMLBzip2},
	"osc":         {Change, XML},
	"osc.gz":      {Change, XMLGzip},
	"osc.bz2":     {Change, XMLBzip2},
}
