// Package document loads naklo control files into an ordered tree.
//
// Control data leans on the order in which keys were authored: title
// fragments merge in document order and tags reach a track in the order
// they were written. Unordered Go maps would lose that, so the tree here
// keeps mapping entries as an ordered slice of pairs.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/j39m/naklo/internal/types"
)

// Kind is the shape of a Node.
type Kind uint8

const (
	// ScalarNode holds a single value in Value.
	ScalarNode Kind = iota + 1
	// SequenceNode holds its children in Items.
	SequenceNode
	// MappingNode holds its entries in Pairs, in authored order.
	MappingNode
)

func (k Kind) String() string {
	switch k {
	case ScalarNode:
		return "scalar"
	case SequenceNode:
		return "sequence"
	case MappingNode:
		return "mapping"
	default:
		return "invalid"
	}
}

// Tags assigned to scalars. They follow the YAML core schema names.
const (
	TagStr   = "!!str"
	TagInt   = "!!int"
	TagNull  = "!!null"
	TagFloat = "!!float"
	TagBool  = "!!bool"
)

// Node is one value of a control document.
type Node struct {
	// Value is the scalar text exactly as authored.
	Value string
	// Tag is the resolved scalar tag (TagStr, TagInt, ...). Empty for
	// sequences and mappings.
	Tag   string
	Items []*Node
	Pairs []Pair
	// Line and Column locate the node in its source, 1-based; 0 if the
	// node was built in code.
	Line   int
	Column int
	Kind   Kind
}

// Pair is a single mapping entry.
type Pair struct {
	Key   *Node
	Value *Node
}

// Entry is a top-level block: its name and its body.
type Entry struct {
	Name string
	Body *Node
	Line int
}

// Document is the ordered list of top-level blocks of a control file.
type Document []Entry

// IsNull reports whether n is absent or an explicit YAML null.
func (n *Node) IsNull() bool {
	return n == nil || (n.Kind == ScalarNode && n.Tag == TagNull)
}

// Scalar returns the text of a non-null scalar.
func (n *Node) Scalar() (string, bool) {
	if n == nil || n.Kind != ScalarNode || n.Tag == TagNull {
		return "", false
	}
	return n.Value, true
}

// Interface converts n for consumers that take loosely typed values:
// non-null scalars become their authored text, sequences become []any,
// and nulls become nil. Mappings are returned as the *Node itself.
func (n *Node) Interface() any {
	switch {
	case n.IsNull():
		return nil
	case n.Kind == ScalarNode:
		return n.Value
	case n.Kind == SequenceNode:
		out := make([]any, len(n.Items))
		for i, item := range n.Items {
			out[i] = item.Interface()
		}
		return out
	default:
		return n
	}
}

// String describes n briefly for diagnostics.
func (n *Node) String() string {
	switch {
	case n.IsNull():
		return "null"
	case n.Kind == ScalarNode:
		return fmt.Sprintf("%q", n.Value)
	case n.Kind == SequenceNode:
		return fmt.Sprintf("sequence of %d", len(n.Items))
	case n.Kind == MappingNode:
		return fmt.Sprintf("mapping of %d", len(n.Pairs))
	default:
		return "invalid node"
	}
}

// Str builds a string scalar.
func Str(v string) *Node {
	return &Node{Kind: ScalarNode, Tag: TagStr, Value: v}
}

// Int builds an integer scalar.
func Int(v int) *Node {
	return &Node{Kind: ScalarNode, Tag: TagInt, Value: fmt.Sprint(v)}
}

// Null builds an explicit null.
func Null() *Node {
	return &Node{Kind: ScalarNode, Tag: TagNull}
}

// Seq builds a sequence.
func Seq(items ...*Node) *Node {
	return &Node{Kind: SequenceNode, Items: items}
}

// Map builds a mapping that keeps pairs in the order given.
func Map(pairs ...Pair) *Node {
	return &Node{Kind: MappingNode, Pairs: pairs}
}

// KV builds a mapping pair with a string key.
func KV(key string, value *Node) Pair {
	return Pair{Key: Str(key), Value: value}
}

// Parse decodes a YAML control document.
//
// The top level is either a mapping of block name to body or a sequence
// of such mappings, which are concatenated in order. Block names may
// repeat. An empty document yields an empty Document.
func Parse(data []byte) (Document, error) {
	var doc Document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var root yaml.Node
		err := dec.Decode(&root)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}

		tree, err := FromYAML(&root)
		if err != nil {
			return nil, err
		}
		entries, err := entriesOf(tree)
		if err != nil {
			return nil, err
		}
		doc = append(doc, entries...)
	}

	return doc, nil
}

// ParseFile reads and decodes a control file.
func ParseFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func entriesOf(tree *Node) (Document, error) {
	if tree.IsNull() {
		return nil, nil
	}

	switch tree.Kind {
	case MappingNode:
		doc := make(Document, 0, len(tree.Pairs))
		for _, p := range tree.Pairs {
			name, ok := p.Key.Scalar()
			if !ok {
				return nil, &types.ControlError{
					Kind:   types.KindMalformedBlockStructure,
					Value:  p.Key.String(),
					Reason: "block names must be scalars",
					Line:   p.Key.Line,
				}
			}
			doc = append(doc, Entry{Name: name, Body: p.Value, Line: p.Key.Line})
		}
		return doc, nil

	case SequenceNode:
		var doc Document
		for _, item := range tree.Items {
			if item.Kind != MappingNode {
				return nil, &types.ControlError{
					Kind:   types.KindMalformedBlockStructure,
					Value:  item.String(),
					Reason: "top-level sequence items must be mappings",
					Line:   item.Line,
				}
			}
			entries, err := entriesOf(item)
			if err != nil {
				return nil, err
			}
			doc = append(doc, entries...)
		}
		return doc, nil

	default:
		return nil, &types.ControlError{
			Kind:   types.KindMalformedBlockStructure,
			Value:  tree.String(),
			Reason: "top level must be a mapping of blocks",
			Line:   tree.Line,
		}
	}
}

// FromYAML converts a yaml.v3 node tree. Document nodes are unwrapped
// and aliases are replaced by the node they point to.
func FromYAML(n *yaml.Node) (*Node, error) {
	return fromYAML(n, 0)
}

// maxDepth bounds alias expansion.
const maxDepth = 256

func fromYAML(n *yaml.Node, depth int) (*Node, error) {
	if n == nil {
		return nil, nil
	}
	if depth > maxDepth {
		return nil, fmt.Errorf("line %d: document nested too deeply", n.Line)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromYAML(n.Content[0], depth+1)

	case yaml.AliasNode:
		return fromYAML(n.Alias, depth+1)

	case yaml.ScalarNode:
		return &Node{
			Kind:   ScalarNode,
			Value:  n.Value,
			Tag:    shortTag(n),
			Line:   n.Line,
			Column: n.Column,
		}, nil

	case yaml.SequenceNode:
		out := &Node{Kind: SequenceNode, Line: n.Line, Column: n.Column}
		for _, c := range n.Content {
			item, err := fromYAML(c, depth+1)
			if err != nil {
				return nil, err
			}
			out.Items = append(out.Items, item)
		}
		return out, nil

	case yaml.MappingNode:
		if len(n.Content)%2 != 0 {
			return nil, fmt.Errorf("line %d: mapping has a key without a value", n.Line)
		}
		out := &Node{Kind: MappingNode, Line: n.Line, Column: n.Column}
		for i := 0; i < len(n.Content); i += 2 {
			k, err := fromYAML(n.Content[i], depth+1)
			if err != nil {
				return nil, err
			}
			v, err := fromYAML(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			out.Pairs = append(out.Pairs, Pair{Key: k, Value: v})
		}
		return out, nil

	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node kind %d", n.Line, n.Kind)
	}
}

func shortTag(n *yaml.Node) string {
	tag := n.ShortTag()
	if strings.HasPrefix(tag, "!!") {
		return tag
	}
	// Custom tags keep their text; treat the value as a string.
	return TagStr
}
