package naklo

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// Track accepts tags. *File and *Recorder implement it.
type Track interface {
	AddTag(name, value string)
}

// Assignment is one pending tag for the track at 1-based position Track.
type Assignment struct {
	Track int
	Tag   string
	Value string
}

func (a Assignment) String() string {
	return fmt.Sprintf("%d: %s=%s", a.Track, a.Tag, a.Value)
}

// Controller turns control data into tags for an ordered set of tracks.
//
// Blocks are collected with AddTagBlocks, AddBlocks and AddTitles; no
// track sees a tag until ApplyTags. A Controller is not safe for
// concurrent use.
type Controller struct {
	tracks []Track
	shapes map[string]Shape
	logger *slog.Logger

	// log holds block and title assignments in the order they were made.
	// Numbering is never stored here.
	log []Assignment
}

// NewController returns a Controller for tracks. The slice is referenced,
// not copied. Nil entries are allowed as placeholders and are skipped by
// ApplyTags.
func NewController(tracks []Track, opts ...Option) *Controller {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &Controller{
		tracks: tracks,
		shapes: options.shapes,
		logger: options.logger,
	}
}

// TrackCount returns the number of tracks spans are resolved against.
func (c *Controller) TrackCount() int {
	return len(c.tracks)
}

// AddTagBlocks interprets every block of doc in order.
//
// The first problem found is returned as a *ControlError and nothing
// from doc is kept: either all of its blocks are added or none are.
func (c *Controller) AddTagBlocks(doc Document) error {
	var staged []Assignment
	for _, e := range doc {
		shape, ok := c.shapes[e.Name]
		if !ok {
			return &ControlError{Kind: KindUnrecognizedBlock, Block: e.Name, Line: e.Line}
		}

		b, err := DecodeBlock(e.Name, shape, e.Body)
		if err != nil {
			return err
		}
		if staged, err = c.stage(staged, b); err != nil {
			return err
		}
	}

	c.log = append(c.log, staged...)
	return nil
}

// AddBlocks adds already decoded blocks, all or none.
func (c *Controller) AddBlocks(blocks ...Block) error {
	var (
		staged []Assignment
		err    error
	)
	for _, b := range blocks {
		if staged, err = c.stage(staged, b); err != nil {
			return err
		}
	}

	c.log = append(c.log, staged...)
	return nil
}

// AddTitles assigns titles[i] to track i+1. Blank titles are skipped, so
// a title file may leave gaps. More non-blank titles than tracks is an
// OverwideSpan error and adds nothing.
func (c *Controller) AddTitles(titles []string) error {
	staged := make([]Assignment, 0, len(titles))
	for n, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		if n >= len(c.tracks) {
			return &ControlError{
				Kind:       KindOverwideSpan,
				Index:      n + 1,
				TrackCount: len(c.tracks),
				Line:       n + 1,
				Reason:     "more titles than tracks",
			}
		}
		staged = append(staged, Assignment{Track: n + 1, Tag: TagTitle, Value: title})
	}

	c.logger.Debug("added titles", "titles", len(staged))
	c.log = append(c.log, staged...)
	return nil
}

// Assignments returns a copy of the assignments collected so far,
// without numbering.
func (c *Controller) Assignments() []Assignment {
	return slices.Clone(c.log)
}

// Plan returns every assignment ApplyTags would make, in order: the
// collected assignments followed by tracknumber and tracktotal for each
// track.
func (c *Controller) Plan() []Assignment {
	total := len(c.tracks)
	plan := make([]Assignment, 0, len(c.log)+2*total)
	plan = append(plan, c.log...)
	for i := 1; i <= total; i++ {
		plan = append(plan,
			Assignment{Track: i, Tag: TagTrackNumber, Value: strconv.Itoa(i)},
			Assignment{Track: i, Tag: TagTrackTotal, Value: strconv.Itoa(total)},
		)
	}
	return plan
}

// ApplyTags pushes the plan to the tracks. Each track receives its tags
// in plan order, so tracknumber and tracktotal always come last.
//
// ApplyTags may be called more than once; every call pushes the full plan.
func (c *Controller) ApplyTags() {
	plan := c.Plan()
	applied := 0
	for _, a := range plan {
		t := c.tracks[a.Track-1]
		if t == nil {
			continue
		}
		t.AddTag(a.Tag, a.Value)
		applied++
	}
	c.logger.Debug("applied tags", "tracks", len(c.tracks), "planned", len(plan), "applied", applied)
}

// stage appends the assignments of b to dst. On error dst is returned
// unchanged in meaning; the caller discards it.
func (c *Controller) stage(dst []Assignment, b Block) ([]Assignment, error) {
	start := len(dst)

	switch b := b.(type) {
	case *ClassicBlock:
		for _, e := range b.Entries {
			indices, err := c.resolve(e.Key)
			if err != nil {
				return dst, inBlock(err, b.BlockName)
			}
			for _, tv := range e.Tags {
				for _, i := range indices {
					for _, v := range tv.Values {
						dst = append(dst, Assignment{Track: i, Tag: tv.Tag, Value: v})
					}
				}
			}
		}
		groupByTag(dst[start:])

	case *InvertedBlock:
		for _, e := range b.Entries {
			for _, sv := range e.Spans {
				indices, err := c.resolve(sv.Key)
				if err != nil {
					return dst, inBlock(err, b.BlockName)
				}
				for _, i := range indices {
					for _, v := range sv.Values {
						dst = append(dst, Assignment{Track: i, Tag: e.Tag, Value: v})
					}
				}
			}
		}

	case *TitleBlock:
		fragments := make(map[int][]string)
		for _, f := range b.Fragments {
			indices, err := c.resolve(f.Key)
			if err != nil {
				return dst, inBlock(err, b.BlockName)
			}
			if f.Text == "" {
				continue
			}
			for _, i := range indices {
				fragments[i] = append(fragments[i], f.Text)
			}
		}
		for i := 1; i <= len(c.tracks); i++ {
			if parts := fragments[i]; len(parts) > 0 {
				dst = append(dst, Assignment{Track: i, Tag: TagTitle, Value: strings.Join(parts, " ")})
			}
		}

	case nil:
		return dst, &ControlError{Kind: KindMalformedBlockStructure, Reason: "nil block"}

	default:
		return dst, &ControlError{Kind: KindUnrecognizedBlock, Block: b.Name()}
	}

	c.logger.Debug("staged block",
		"block", b.Name(),
		"shape", b.Shape(),
		"assignments", len(dst)-start,
	)
	return dst, nil
}

// resolve checks k against the track count, then expands it.
func (c *Controller) resolve(k SpanKey) ([]int, error) {
	total := len(c.tracks)
	if i, outside := k.Span.Outside(total); outside {
		return nil, &ControlError{
			Kind:       KindOverwideSpan,
			Span:       k.Text,
			Index:      i,
			TrackCount: total,
			Line:       k.Line,
		}
	}
	return k.Span.Expand(total), nil
}

// groupByTag reorders a classic block's assignments so that each track
// receives all values of a tag together, tags in order of first
// appearance for that track.
func groupByTag(as []Assignment) {
	type key struct {
		track int
		tag   string
	}
	first := make(map[key]int, len(as))
	for i, a := range as {
		k := key{a.Track, a.Tag}
		if _, ok := first[k]; !ok {
			first[k] = i
		}
	}
	slices.SortStableFunc(as, func(x, y Assignment) int {
		return cmp.Compare(first[key{x.Track, x.Tag}], first[key{y.Track, y.Tag}])
	})
}
