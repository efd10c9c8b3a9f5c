package entities

import "fmt"

// Ref is a source location where a key is requested.
type Ref struct {
	File string
	Line int
}

func (r Ref) String() string { return fmt.Sprintf("%s:%d", r.File, r.Line) }

// Usage maps each requested key to the places requesting it.
type Usage map[Key][]Ref
