package nlp

import "strings"

// EntityLabel is the label of a named-entity chunk in a binary chunk tree.
const EntityLabel = "NE"

// Chunk is a node of a shallow parse tree. A leaf is a word with its POS
// tag as Label; an inner node groups children under a chunk label (the root
// is labelled "S").
type Chunk struct {
	Label    string
	Text     string
	Children []*Chunk
}

func (c *Chunk) IsLeaf() bool {
	return len(c.Children) == 0
}

// Words returns the leaf texts below c, left to right.
func (c *Chunk) Words() []string {
	if c.IsLeaf() {
		return []string{c.Text}
	}

	var words []string
	for _, child := range c.Children {
		words = append(words, child.Words()...)
	}
	return words
}

// EntityNames walks the tree depth first, left to right, and returns the
// text of every maximal NE subtree. Subtrees with other labels are
// searched recursively; leaves are never entities.
func EntityNames(tree *Chunk) []string {
	if tree == nil || tree.IsLeaf() {
		return nil
	}

	if tree.Label == EntityLabel {
		return []string{strings.Join(tree.Words(), " ")}
	}

	var names []string
	for _, child := range tree.Children {
		names = append(names, EntityNames(child)...)
	}
	return names
}
