package entities

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/template"

	"cabriolet/internal/domain"
)

// Key is a dotted path to a leaf entry, e.g. "gameOver.shareText".
type Key string

// Namespace returns the first path segment.
func (k Key) Namespace() string {
	ns, _, _ := strings.Cut(string(k), ".")
	return ns
}

// Segments splits the key on dots.
func (k Key) Segments() []string {
	return strings.Split(string(k), ".")
}

func (k Key) String() string { return string(k) }

// Kind tags the variant held by an Entry.
type Kind int

const (
	KindLiteral Kind = iota + 1
	KindList
	KindTemplate
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindList:
		return "list"
	case KindTemplate:
		return "template"
	default:
		return "unknown"
	}
}

// ParamKind is the declared type of a template parameter.
type ParamKind string

const (
	ParamScore  ParamKind = "score"
	ParamCount  ParamKind = "count" // drives plural form selection
	ParamPoints ParamKind = "points"
	ParamText   ParamKind = "text"
)

// IsInteger reports whether values of this kind are non-negative integers.
func (k ParamKind) IsInteger() bool {
	switch k {
	case ParamScore, ParamCount, ParamPoints:
		return true
	default:
		return false
	}
}

func (k ParamKind) valid() bool {
	return k.IsInteger() || k == ParamText
}

// Param is one positional template parameter. Name is the placeholder
// identifier used in the template body as {{.name}}.
type Param struct {
	Name string
	Kind ParamKind
}

// Entry is a single resource: a literal, an ordered list of literals, or a
// template. The zero value is not usable; build entries with NewLiteral,
// NewList or NewTemplate.
type Entry struct {
	key    Key
	kind   Kind
	text   string
	items  []string
	params []Param
	source map[domain.PluralForm]string
	forms  map[domain.PluralForm]*template.Template
}

// NewLiteral returns a fixed display string entry.
func NewLiteral(key Key, text string) Entry {
	return Entry{key: key, kind: KindLiteral, text: text}
}

// NewList returns an ordered list entry. items is copied.
func NewList(key Key, items []string) Entry {
	return Entry{key: key, kind: KindList, items: slices.Clone(items)}
}

// NewTemplate compiles a template entry. forms holds one body per plural
// form; "other" is always required and is the only form allowed when no
// parameter is a count. At most one parameter may be a count.
func NewTemplate(key Key, params []Param, forms map[domain.PluralForm]string) (Entry, error) {
	if len(params) == 0 {
		return Entry{}, fmt.Errorf("template %s: no parameters declared", key)
	}

	seen := make(map[string]bool, len(params))
	counts := 0
	for _, p := range params {
		if !isIdentifier(p.Name) {
			return Entry{}, fmt.Errorf("template %s: invalid parameter name %q", key, p.Name)
		}
		if seen[p.Name] {
			return Entry{}, fmt.Errorf("template %s: duplicate parameter %q", key, p.Name)
		}
		seen[p.Name] = true
		if !p.Kind.valid() {
			return Entry{}, fmt.Errorf("template %s: parameter %q has unknown kind %q", key, p.Name, p.Kind)
		}
		if p.Kind == ParamCount {
			counts++
		}
	}
	if counts > 1 {
		return Entry{}, fmt.Errorf("template %s: more than one count parameter", key)
	}

	if _, ok := forms[domain.FormOther]; !ok {
		return Entry{}, fmt.Errorf("template %s: missing %q form", key, domain.FormOther)
	}
	if counts == 0 && len(forms) > 1 {
		return Entry{}, fmt.Errorf("template %s: plural forms without a count parameter", key)
	}

	e := Entry{
		key:    key,
		kind:   KindTemplate,
		params: slices.Clone(params),
		source: maps.Clone(forms),
		forms:  make(map[domain.PluralForm]*template.Template, len(forms)),
	}
	for form, body := range forms {
		tmpl, err := template.New(string(key) + "#" + string(form)).
			Option("missingkey=error").
			Parse(body)
		if err != nil {
			return Entry{}, fmt.Errorf("template %s: form %s: %w", key, form, err)
		}
		e.forms[form] = tmpl
	}
	return e, nil
}

func (e Entry) Key() Key   { return e.key }
func (e Entry) Kind() Kind { return e.kind }

// Text returns the literal string. It is empty for other kinds.
func (e Entry) Text() string { return e.text }

// Items returns a copy of the list items.
func (e Entry) Items() []string { return slices.Clone(e.items) }

// Params returns a copy of the declared template parameters.
func (e Entry) Params() []Param { return slices.Clone(e.params) }

// CountParam returns the position of the count parameter, if any.
func (e Entry) CountParam() (int, bool) {
	for i, p := range e.params {
		if p.Kind == ParamCount {
			return i, true
		}
	}
	return -1, false
}

// Forms lists the plural forms the template carries, in CLDR order.
func (e Entry) Forms() []domain.PluralForm {
	var out []domain.PluralForm
	for _, f := range domain.PluralForms {
		if _, ok := e.forms[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Source returns the raw body of a template form.
func (e Entry) Source(form domain.PluralForm) (string, bool) {
	s, ok := e.source[form]
	return s, ok
}

// HasForm reports whether the template carries the given form.
func (e Entry) HasForm(form domain.PluralForm) bool {
	_, ok := e.forms[form]
	return ok
}

// Execute renders one form of a template with already formatted values.
func (e Entry) Execute(form domain.PluralForm, data map[string]string) (string, error) {
	tmpl, ok := e.forms[form]
	if !ok {
		return "", fmt.Errorf("form %s not defined", form)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
