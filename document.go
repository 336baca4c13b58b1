package naklo

import "github.com/j39m/naklo/internal/document"

// Document is the ordered list of top-level blocks of a control file.
type Document = document.Document

// Entry is one top-level block of a Document.
type Entry = document.Entry

// Node is an ordered control data tree.
type Node = document.Node

// ParseControl decodes a YAML control document, keeping block and key
// order as authored.
func ParseControl(data []byte) (Document, error) {
	return document.Parse(data)
}

// LoadControl reads and decodes a control file.
func LoadControl(path string) (Document, error) {
	return document.ParseFile(path)
}
