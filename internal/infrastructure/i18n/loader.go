package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"cabriolet/internal/domain"
	"cabriolet/internal/domain/entities"
	"cabriolet/internal/ports/output"
)

//go:embed active.*.toml variant.*.toml
var localeFS embed.FS

const (
	canonicalPattern = "active.*.toml"
	variantPattern   = "variant.*.toml"
)

var unmarshalFuncs = map[string]i18n.UnmarshalFunc{"toml": toml.Unmarshal}

// Ensure Catalog implements the output.TextCatalog port.
var _ output.TextCatalog = (*entities.Catalog)(nil)

var defaultCatalog *entities.Catalog

func init() {
	c, err := Load(localeFS)
	if err != nil {
		panic("i18n: load embedded texts: " + err.Error())
	}
	defaultCatalog = c
}

// Default returns the catalog built from the embedded message files at
// startup.
func Default() *entities.Catalog {
	return defaultCatalog
}

// Files returns the embedded message files.
func Files() fs.FS {
	return localeFS
}

type options struct {
	shapes Shapes
}

// Option configures Load.
type Option func(*options)

// WithShapes replaces GameShapes, for message files of another shape.
func WithShapes(s Shapes) Option {
	return func(o *options) {
		o.shapes = s
	}
}

// Load reads one canonical go-i18n message file (active.<lang>.toml) and
// any number of variant overlays (variant.<name>.<lang>.toml) from fsys.
//
// A variant may only override keys of the canonical file; everything it
// does not mention falls through to the canonical text.
func Load(fsys fs.FS, opts ...Option) (*entities.Catalog, error) {
	o := options{shapes: GameShapes}
	for _, opt := range opts {
		opt(&o)
	}

	files, err := fs.Glob(fsys, canonicalPattern)
	if err != nil {
		return nil, fmt.Errorf("i18n: %w", err)
	}
	if len(files) != 1 {
		return nil, fmt.Errorf("i18n: expected one %s file, found %d", canonicalPattern, len(files))
	}

	mf, err := parseFile(fsys, files[0])
	if err != nil {
		return nil, err
	}
	msgs, err := index(mf)
	if err != nil {
		return nil, err
	}
	entries, err := o.build(msgs)
	if err != nil {
		return nil, fmt.Errorf("i18n: %s: %w", files[0], err)
	}
	canonical, err := entities.NewTable(entities.CanonicalVariant, mf.Tag, entries)
	if err != nil {
		return nil, fmt.Errorf("i18n: %s: %w", files[0], err)
	}

	variantFiles, err := fs.Glob(fsys, variantPattern)
	if err != nil {
		return nil, fmt.Errorf("i18n: %w", err)
	}
	variants := make([]*entities.Table, 0, len(variantFiles))
	for _, file := range variantFiles {
		t, err := o.loadVariant(fsys, file, canonical)
		if err != nil {
			return nil, err
		}
		variants = append(variants, t)
	}

	return entities.NewCatalog(canonical, variants...)
}

func (o options) loadVariant(fsys fs.FS, file string, base *entities.Table) (*entities.Table, error) {
	name := variantName(file)
	if name == "" {
		return nil, fmt.Errorf("i18n: %s: cannot derive a variant name", file)
	}
	mf, err := parseFile(fsys, file)
	if err != nil {
		return nil, err
	}
	if mf.Tag != base.Tag() {
		return nil, fmt.Errorf("i18n: %s: language %s differs from canonical %s", file, mf.Tag, base.Tag())
	}
	msgs, err := index(mf)
	if err != nil {
		return nil, err
	}
	t, err := o.overlay(name, base, msgs)
	if err != nil {
		return nil, fmt.Errorf("i18n: %s: %w", file, err)
	}
	return t, nil
}

func parseFile(fsys fs.FS, name string) (*i18n.MessageFile, error) {
	buf, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("i18n: read %s: %w", name, err)
	}
	mf, err := i18n.ParseMessageFileBytes(buf, name, unmarshalFuncs)
	if err != nil {
		return nil, fmt.Errorf("i18n: parse %s: %w", name, err)
	}
	if mf.Tag == language.Und {
		return nil, fmt.Errorf("i18n: %s: no language in file name", name)
	}
	return mf, nil
}

// variantName extracts "v1" from "variant.v1.uk.toml".
func variantName(file string) string {
	parts := strings.Split(path.Base(file), ".")
	if len(parts) != 4 {
		return ""
	}
	return parts[1]
}

func index(mf *i18n.MessageFile) (map[entities.Key]*i18n.Message, error) {
	out := make(map[entities.Key]*i18n.Message, len(mf.Messages))
	for _, m := range mf.Messages {
		key := entities.Key(m.ID)
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("i18n: %s: duplicate message %q", mf.Path, key)
		}
		out[key] = m
	}
	return out, nil
}

func (o options) build(msgs map[entities.Key]*i18n.Message) ([]entities.Entry, error) {
	for key := range o.shapes.Templates {
		if _, ok := msgs[key]; !ok {
			return nil, fmt.Errorf("template %q is declared but has no message", key)
		}
	}
	for _, key := range o.shapes.Lists {
		if _, ok := msgs[key]; !ok {
			return nil, fmt.Errorf("list %q is declared but has no message", key)
		}
	}

	keys := make([]entities.Key, 0, len(msgs))
	for key := range msgs {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	entries := make([]entities.Entry, 0, len(keys))
	for _, key := range keys {
		e, err := o.entry(key, msgs[key])
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (o options) overlay(name string, base *entities.Table, msgs map[entities.Key]*i18n.Message) (*entities.Table, error) {
	entries := make([]entities.Entry, 0, base.Len())
	for _, key := range base.Keys() {
		m, ok := msgs[key]
		if !ok {
			e, _ := base.Get(key)
			entries = append(entries, e)
			continue
		}
		e, err := o.entry(key, m)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	var unknown []string
	for key := range msgs {
		if !base.Has(key) {
			unknown = append(unknown, string(key))
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("keys not in the canonical table: %s", strings.Join(unknown, ", "))
	}

	return entities.NewTable(name, base.Tag(), entries)
}

func (o options) entry(key entities.Key, m *i18n.Message) (entities.Entry, error) {
	if m.LeftDelim != "" || m.RightDelim != "" {
		return entities.Entry{}, fmt.Errorf("message %q: custom delimiters are not supported", key)
	}
	forms := messageForms(m)

	if params, ok := o.shapes.Templates[key]; ok {
		return entities.NewTemplate(key, params, forms)
	}

	other, ok := forms[domain.FormOther]
	if !ok || len(forms) != 1 {
		return entities.Entry{}, fmt.Errorf("message %q: a literal needs exactly one %q text", key, domain.FormOther)
	}
	if strings.Contains(other, "{{") {
		return entities.Entry{}, fmt.Errorf("message %q: has placeholders but is not a declared template", key)
	}
	if slices.Contains(o.shapes.Lists, key) {
		items := splitLines(other)
		if len(items) == 0 {
			return entities.Entry{}, fmt.Errorf("message %q: empty list", key)
		}
		return entities.NewList(key, items), nil
	}
	return entities.NewLiteral(key, other), nil
}

// messageForms collects the non-empty plural forms of a message, NFC
// normalized so equal text is byte-identical.
func messageForms(m *i18n.Message) map[domain.PluralForm]string {
	forms := make(map[domain.PluralForm]string)
	for form, s := range map[domain.PluralForm]string{
		domain.FormZero:  m.Zero,
		domain.FormOne:   m.One,
		domain.FormTwo:   m.Two,
		domain.FormFew:   m.Few,
		domain.FormMany:  m.Many,
		domain.FormOther: m.Other,
	} {
		if s != "" {
			forms[form] = norm.NFC.String(s)
		}
	}
	return forms
}

func splitLines(s string) []string {
	var items []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			items = append(items, line)
		}
	}
	return items
}
