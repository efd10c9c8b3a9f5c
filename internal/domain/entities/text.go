package entities

import (
	"slices"
	"strings"
)

// Text is the outcome of resolving a key. Literal and template entries
// produce a single string; list entries keep their items so the caller
// decides how to lay them out.
type Text struct {
	kind  Kind
	text  string
	items []string
}

// SingleText wraps a resolved string.
func SingleText(kind Kind, s string) Text {
	return Text{kind: kind, text: s}
}

// ListText wraps list items. items is copied.
func ListText(items []string) Text {
	return Text{kind: KindList, items: slices.Clone(items)}
}

// Kind is the kind of the entry the text was resolved from.
func (t Text) Kind() Kind { return t.kind }

func (t Text) IsList() bool { return t.kind == KindList }

// String returns the text; list items are joined with newlines.
func (t Text) String() string {
	if t.kind == KindList {
		return strings.Join(t.items, "\n")
	}
	return t.text
}

// Lines returns the list items, or the single string as a one-item slice.
func (t Text) Lines() []string {
	if t.kind == KindList {
		return slices.Clone(t.items)
	}
	return []string{t.text}
}
