package types

import (
	"iter"
	"slices"
)

// Reserved tag names. They are only ever assigned by the controller's
// numbering pass and are rejected in control data.
const (
	TagTrackNumber = "tracknumber"
	TagTrackTotal  = "tracktotal"
)

// TagTitle is the tag written by title blocks and title files.
const TagTitle = "title"

// tagNames is the accepted vocabulary, in documentation order.
// Read-only after initialization.
var tagNames = []string{
	"artist",
	"album",
	"albumartist",
	"albumsort",
	"performer",
	"conductor",
	"composer",
	"arranger",
	"lyricist",
	TagTitle,
	"location",
	"date",
	"genre",
	"discnumber",
	"disctotal",
	"discsubtitle",
}

var tagSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(tagNames))
	for _, name := range tagNames {
		m[name] = struct{}{}
	}
	return m
}()

// IsValidTag reports whether name may appear in control data.
// Matching is exact; "Artist" is not "artist".
func IsValidTag(name string) bool {
	_, ok := tagSet[name]
	return ok
}

// IsReservedTag reports whether name is assigned only by the numbering pass.
func IsReservedTag(name string) bool {
	return name == TagTrackNumber || name == TagTrackTotal
}

// TagNames returns an iterator over the accepted tag names in
// documentation order.
func TagNames() iter.Seq[string] {
	return slices.Values(tagNames)
}

// Field is a single tag/value pair as pushed to a track.
type Field struct {
	Name  string
	Value string
}

func (f Field) String() string {
	return f.Name + "=" + f.Value
}
