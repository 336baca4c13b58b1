// Package vorbis maps naklo tag names to Vorbis comment fields.
//
// Vorbis comments are UTF-8 strings in "KEY=VALUE" form. Field names are
// case-insensitive ASCII and conventionally upper case; a field may occur
// any number of times.
package vorbis

import (
	"fmt"
	"strings"

	"github.com/j39m/naklo/internal/types"
)

// aliases maps field names written by other taggers to the naklo tag
// they mean.
var aliases = map[string]string{
	"TOTALTRACKS": types.TagTrackTotal,
	"TOTALDISCS":  "disctotal",
}

// FieldName returns the Vorbis field name for a naklo tag.
func FieldName(tag string) string {
	return strings.ToUpper(tag)
}

// TagName returns the naklo tag for a Vorbis field name, and whether the
// field belongs to the naklo vocabulary (numbering tags included).
func TagName(field string) (string, bool) {
	upper := strings.ToUpper(field)
	if tag, ok := aliases[upper]; ok {
		return tag, true
	}
	tag := strings.ToLower(upper)
	if types.IsValidTag(tag) || types.IsReservedTag(tag) {
		return tag, true
	}
	return "", false
}

// FormatComment renders f as a Vorbis comment.
func FormatComment(f types.Field) string {
	return FieldName(f.Name) + "=" + f.Value
}

// ParseComment splits a "KEY=VALUE" comment. The key is returned as
// written; use TagName to map it into the naklo vocabulary.
//
// Returns an error if the comment has no '=' or an empty key.
func ParseComment(comment string) (key, value string, err error) {
	eq := strings.IndexByte(comment, '=')
	if eq == -1 {
		return "", "", fmt.Errorf("missing '=' in comment: %s", comment)
	}
	if eq == 0 {
		return "", "", fmt.Errorf("empty field name in comment: %s", comment)
	}
	return comment[:eq], comment[eq+1:], nil
}

// Fields converts raw comments into naklo fields, in order, skipping
// fields outside the vocabulary and malformed comments.
func Fields(comments []string) []types.Field {
	var out []types.Field
	for _, c := range comments {
		key, value, err := ParseComment(c)
		if err != nil {
			continue
		}
		tag, ok := TagName(key)
		if !ok {
			continue
		}
		out = append(out, types.Field{Name: tag, Value: value})
	}
	return out
}
