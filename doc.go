// Package naklo tags albums from a declarative control file.
//
// A control file names tags for spans of tracks. Spans are written as
// track numbers ("3"), ranges ("1-6"), lists of both ("1 3 5-8 11") or
// the wildcard "*". Three block shapes express the same assignments:
//
//	classic-tag-block:          # span -> tag -> value
//	    1-8:
//	        artist: Rafał Blechacz
//	        album: Hypothetical Rachmaninoff Album
//	inverted-tag-block:         # tag -> span -> value
//	    composer:
//	        1-6: Sergei Rachmaninoff
//	        "7 8": Maurice Ravel
//	title-block:                # span -> title fragment
//	    "*": Cantata -
//	    1: The Beginning
//
// "tag-block" and "reverse-tag-block" are accepted for the first two.
// A value may be a list, which adds the tag once per element.
//
// # Quick Start
//
//	files, err := naklo.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc, err := naklo.LoadControl("naklo.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	c := naklo.NewController(naklo.Tracks(files))
//	if err := c.AddTagBlocks(doc); err != nil {
//		log.Fatal(err)
//	}
//	c.ApplyTags()
//	err = naklo.SaveMany(ctx, files)
//
// ApplyTags finishes every track with tracknumber and tracktotal. Those
// two tags are reserved and rejected in control files.
//
// # Errors
//
// Problems in control data are reported as *ControlError. Use errors.Is
// with the Err* sentinels, or KindOf, to tell them apart:
//
//	if errors.Is(err, naklo.ErrOverwideSpan) {
//		// a span names a track that doesn't exist
//	}
//
// # Formats
//
//   - FLAC: Vorbis comments, one comment per value
//   - MP3: ID3v2.4 text frames, multiple values NUL-separated
package naklo
