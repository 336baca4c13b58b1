package naklo

import (
	"iter"

	"github.com/j39m/naklo/internal/types"
)

// Reserved tags, assigned by ApplyTags and rejected in control data.
const (
	TagTrackNumber = types.TagTrackNumber
	TagTrackTotal  = types.TagTrackTotal
)

// TagTitle is the tag written by title blocks and title files.
const TagTitle = types.TagTitle

// Field is an alias to types.Field.
type Field = types.Field

// TagNames returns the tag names accepted in control data, in
// documentation order.
func TagNames() iter.Seq[string] {
	return types.TagNames()
}

// IsValidTag reports whether name may appear in control data.
func IsValidTag(name string) bool {
	return types.IsValidTag(name)
}
