package naklo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/j39m/naklo/internal/document"
	"github.com/j39m/naklo/internal/span"
	"github.com/j39m/naklo/internal/types"
)

// Shape identifies how a block body is laid out.
type Shape uint8

const (
	// ShapeClassic maps a span to a mapping of tag to value.
	ShapeClassic Shape = iota + 1
	// ShapeInverted maps a tag to a mapping of span to value.
	ShapeInverted
	// ShapeTitle maps a span to a title fragment.
	ShapeTitle
)

func (s Shape) String() string {
	switch s {
	case ShapeClassic:
		return "classic-tag-block"
	case ShapeInverted:
		return "inverted-tag-block"
	case ShapeTitle:
		return "title-block"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// blockNames maps every built-in block name, aliases included, to its shape.
var blockNames = map[string]Shape{
	"classic-tag-block":  ShapeClassic,
	"tag-block":          ShapeClassic,
	"inverted-tag-block": ShapeInverted,
	"reverse-tag-block":  ShapeInverted,
	"title-block":        ShapeTitle,
}

// ShapeOf returns the shape of a built-in block name.
func ShapeOf(name string) (Shape, bool) {
	s, ok := blockNames[name]
	return s, ok
}

// Block is a decoded tag block: *ClassicBlock, *InvertedBlock or
// *TitleBlock.
type Block interface {
	// Name is the block name as written in the control data.
	Name() string
	Shape() Shape
	block()
}

// SpanKey is a parsed span together with its source text.
type SpanKey struct {
	Span Span
	Text string
	Line int
}

// ClassicBlock assigns tags span by span.
type ClassicBlock struct {
	BlockName string
	Entries   []ClassicEntry
}

// ClassicEntry is one span of a classic block and its tags, in order.
type ClassicEntry struct {
	Key  SpanKey
	Tags []TagValues
}

// TagValues is one tag with the values given for it.
type TagValues struct {
	Tag    string
	Values []string
	Line   int
}

// InvertedBlock assigns tags tag by tag.
type InvertedBlock struct {
	BlockName string
	Entries   []InvertedEntry
}

// InvertedEntry is one tag of an inverted block and its spans, in order.
type InvertedEntry struct {
	Tag   string
	Line  int
	Spans []SpanValues
}

// SpanValues is one span with the values given for it.
type SpanValues struct {
	Key    SpanKey
	Values []string
}

// TitleBlock builds titles from fragments that are joined per track.
type TitleBlock struct {
	BlockName string
	Fragments []TitleFragment
}

// TitleFragment is one span of a title block. Text is trimmed and may be
// empty.
type TitleFragment struct {
	Key  SpanKey
	Text string
}

func (b *ClassicBlock) Name() string  { return b.BlockName }
func (b *ClassicBlock) Shape() Shape  { return ShapeClassic }
func (b *ClassicBlock) block()        {}
func (b *InvertedBlock) Name() string { return b.BlockName }
func (b *InvertedBlock) Shape() Shape { return ShapeInverted }
func (b *InvertedBlock) block()       {}
func (b *TitleBlock) Name() string    { return b.BlockName }
func (b *TitleBlock) Shape() Shape    { return ShapeTitle }
func (b *TitleBlock) block()          {}

// DecodeBlock validates body against shape and returns the typed block.
//
// Span grammar is checked here, but span bounds are not: those depend on
// the track count and are checked when the block is added to a
// Controller.
func DecodeBlock(name string, shape Shape, body *Node) (Block, error) {
	if body.IsNull() || body.Kind != document.MappingNode {
		return nil, &ControlError{
			Kind:   KindMalformedBlockStructure,
			Block:  name,
			Value:  body.String(),
			Reason: "block body must be a mapping",
			Line:   lineOf(body),
		}
	}

	var (
		b   Block
		err error
	)
	switch shape {
	case ShapeClassic:
		b, err = decodeClassic(name, body)
	case ShapeInverted:
		b, err = decodeInverted(name, body)
	case ShapeTitle:
		b, err = decodeTitle(name, body)
	default:
		return nil, &ControlError{Kind: KindUnrecognizedBlock, Block: name}
	}
	if err != nil {
		return nil, inBlock(err, name)
	}
	return b, nil
}

func decodeClassic(name string, body *Node) (*ClassicBlock, error) {
	b := &ClassicBlock{BlockName: name}
	for _, p := range body.Pairs {
		key, err := parseSpanKey(p.Key)
		if err != nil {
			return nil, err
		}
		if p.Value.IsNull() || p.Value.Kind != document.MappingNode {
			return nil, structure(p.Value, p.Key.Line, "a span must map to tags")
		}

		entry := ClassicEntry{Key: key}
		for _, tp := range p.Value.Pairs {
			tag, err := checkTag(tp.Key)
			if err != nil {
				return nil, err
			}
			values, err := leafValues(tag, tp.Value)
			if err != nil {
				return nil, err
			}
			entry.Tags = append(entry.Tags, TagValues{Tag: tag, Values: values, Line: tp.Key.Line})
		}
		b.Entries = append(b.Entries, entry)
	}
	return b, nil
}

func decodeInverted(name string, body *Node) (*InvertedBlock, error) {
	b := &InvertedBlock{BlockName: name}
	for _, p := range body.Pairs {
		tag, err := checkTag(p.Key)
		if err != nil {
			return nil, err
		}
		if p.Value.IsNull() || p.Value.Kind != document.MappingNode {
			return nil, structure(p.Value, p.Key.Line, "a tag must map to spans")
		}

		entry := InvertedEntry{Tag: tag, Line: p.Key.Line}
		for _, sp := range p.Value.Pairs {
			key, err := parseSpanKey(sp.Key)
			if err != nil {
				return nil, err
			}
			values, err := leafValues(tag, sp.Value)
			if err != nil {
				return nil, err
			}
			entry.Spans = append(entry.Spans, SpanValues{Key: key, Values: values})
		}
		b.Entries = append(b.Entries, entry)
	}
	return b, nil
}

func decodeTitle(name string, body *Node) (*TitleBlock, error) {
	b := &TitleBlock{BlockName: name}
	for _, p := range body.Pairs {
		key, err := parseSpanKey(p.Key)
		if err != nil {
			return nil, err
		}
		text, ok := p.Value.Scalar()
		if !ok {
			return nil, unexpectedValue(types.TagTitle, p.Value, p.Key.Line)
		}
		b.Fragments = append(b.Fragments, TitleFragment{Key: key, Text: strings.TrimSpace(text)})
	}
	return b, nil
}

// parseSpanKey parses a mapping key as a span. Floats and booleans are
// rejected as malformed rather than read as tokens.
func parseSpanKey(n *Node) (SpanKey, error) {
	var spec any
	switch {
	case n.IsNull():
		spec = nil
	case n.Kind == document.ScalarNode && (n.Tag == document.TagFloat || n.Tag == document.TagBool):
		spec = n
	default:
		spec = n.Interface()
	}

	s, err := span.Parse(spec)
	if err != nil {
		var ce *ControlError
		if errors.As(err, &ce) && ce.Line == 0 {
			ce.Line = lineOf(n)
		}
		return SpanKey{}, err
	}
	return SpanKey{Span: s, Text: spanText(n), Line: lineOf(n)}, nil
}

func spanText(n *Node) string {
	if v, ok := n.Scalar(); ok {
		return v
	}
	parts := make([]string, 0, len(n.Items))
	for _, item := range n.Items {
		if v, ok := item.Scalar(); ok {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

func checkTag(n *Node) (string, error) {
	name, ok := n.Scalar()
	if !ok {
		return "", &ControlError{Kind: KindInvalidTagName, Tag: n.String(), Line: lineOf(n)}
	}
	if !types.IsValidTag(name) {
		ce := &ControlError{Kind: KindInvalidTagName, Tag: name, Line: lineOf(n)}
		if types.IsReservedTag(name) {
			ce.Reason = "reserved for track numbering"
		}
		return "", ce
	}
	return name, nil
}

// leafValues accepts a scalar or a non-empty flat sequence of scalars.
// Numbers and dates are taken as written.
func leafValues(tag string, n *Node) ([]string, error) {
	if v, ok := n.Scalar(); ok {
		return []string{v}, nil
	}
	if n != nil && n.Kind == document.SequenceNode && len(n.Items) > 0 {
		values := make([]string, 0, len(n.Items))
		for _, item := range n.Items {
			v, ok := item.Scalar()
			if !ok {
				return nil, unexpectedValue(tag, item, lineOf(n))
			}
			values = append(values, v)
		}
		return values, nil
	}
	return nil, unexpectedValue(tag, n, lineOf(n))
}

func unexpectedValue(tag string, n *Node, line int) *ControlError {
	if l := lineOf(n); l > 0 {
		line = l
	}
	return &ControlError{Kind: KindUnexpectedTagValue, Tag: tag, Value: n.String(), Line: line}
}

func structure(n *Node, line int, reason string) *ControlError {
	if l := lineOf(n); l > 0 {
		line = l
	}
	return &ControlError{Kind: KindMalformedBlockStructure, Value: n.String(), Reason: reason, Line: line}
}

// inBlock records the block name on a *ControlError that lacks one.
func inBlock(err error, name string) error {
	var ce *ControlError
	if errors.As(err, &ce) && ce.Block == "" {
		ce.Block = name
	}
	return err
}

func lineOf(n *Node) int {
	if n == nil {
		return 0
	}
	return n.Line
}
