// Copyright 2026 The Osmio Authors
// SPDX-License-Identifier: Apache-2.0

package osm

import "time"

// Object is the metadata shared by nodes, ways, and relations. Zero
// values mean "unset" and are omitted by serializers: a zero Version,
// Changeset, or Timestamp is not written at all.
//
// A UID of zero or below means the author is anonymous. Serializers
// then omit both the uid and the user name, even when User is set.
//
// Visible reports whether this version of the object exists (false
// means it was deleted). It is only meaningful in files whose content
// type retains multiple versions per object; snapshot writers ignore
// it. Callers building history or change streams must set it
// explicitly — the zero value marks the object as deleted.
type Object struct {
	ID        int64
	Version   int
	Timestamp time.Time
	UID       int64
	User      string
	Changeset int64
	Visible   bool
	Tags      Tags
}

// Anonymous reports whether the object has no attributable author.
func (o *Object) Anonymous() bool {
	return o.UID <= 0
}

// Tag is a single key/value annotation on an object.
type Tag struct {
	Key   string
	Value string
}

// Tags is an ordered tag list. Serializers emit tags in slice order.
type Tags []Tag

// Location is a point on the globe in WGS84 coordinates.
type Location struct {
	Lon float64
	Lat float64
}

// Node is a single point. Location is nil when the node has no
// coordinates (possible in partial extracts and deleted versions).
type Node struct {
	Object
	Location *Location
}

// Way is an ordered list of node references.
type Way struct {
	Object
	Nodes []int64
}

// Member is a single relation member: a typed reference with a role.
type Member struct {
	Type ObjectType
	Ref  int64
	Role string
}

// Relation is an ordered list of typed, role-carrying members.
type Relation struct {
	Object
	Members []Member
}

// ObjectType distinguishes the three entity kinds in member references.
type ObjectType int

const (
	TypeNode ObjectType = iota
	TypeWay
	TypeRelation
)

// String returns the wire name of the object type as used in member
// references.
func (t ObjectType) String() string {
	switch t {
	case TypeNode:
		return "node"
	case TypeWay:
		return "way"
	case TypeRelation:
		return "relation"
	default:
		return "unknown"
	}
}

// Bounds is a bounding box. A nil *Bounds means no bounds are known.
type Bounds struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// timestampLayout is the interchange timestamp convention: ISO 8601 in
// UTC with second precision.
const timestampLayout = "2006-01-02T15:04:05Z"

// FormatTimestamp renders t in the interchange timestamp convention.
// The time is converted to UTC first.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ParseTimestamp parses a timestamp in the interchange convention.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}
