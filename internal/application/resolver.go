package application

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cabriolet/internal/domain"
	"cabriolet/internal/domain/entities"
	"cabriolet/internal/ports/input"
	"cabriolet/internal/ports/output"
)

var _ input.TextUseCase = (*Resolver)(nil)

// placeholderMarkers may never survive rendering: template delimiters and
// what text/template prints for a missing value.
var placeholderMarkers = []string{"{{", "}}", "<no value>"}

// Resolver turns keys plus arguments into display text for one table.
// It holds no mutable state; one Resolver may be shared by any number of
// goroutines.
type Resolver struct {
	table *entities.Table
	rule  domain.PluralRule
}

// NewResolver binds a resolver to a table, using the plural rule of the
// table's language.
func NewResolver(table *entities.Table) *Resolver {
	return &Resolver{
		table: table,
		rule:  domain.PluralRuleFor(table.Tag()),
	}
}

// NewVariantResolver selects a variant from the catalog and binds a resolver to it.
func NewVariantResolver(catalog output.TextCatalog, variant string) (*Resolver, error) {
	table, err := catalog.Variant(variant)
	if err != nil {
		return nil, err
	}
	return NewResolver(table), nil
}

// Variant is the content variant the resolver reads from.
func (r *Resolver) Variant() string { return r.table.Variant() }

func (r *Resolver) Get(key string) (entities.Entry, error) {
	return r.table.Get(entities.Key(key))
}

func (r *Resolver) Keys() []entities.Key { return r.table.Keys() }

func (r *Resolver) Namespaces() []string { return r.table.Namespaces() }

func (r *Resolver) KeysIn(namespace string) []entities.Key { return r.table.KeysIn(namespace) }

// Resolve returns the display text for key. Literals and lists take no
// arguments. Templates take exactly their declared parameters, in order.
func (r *Resolver) Resolve(key string, args ...any) (entities.Text, error) {
	e, err := r.table.Get(entities.Key(key))
	if err != nil {
		return entities.Text{}, err
	}

	switch e.Kind() {
	case entities.KindLiteral:
		if len(args) != 0 {
			return entities.Text{}, arityError(key, 0, len(args))
		}
		return entities.SingleText(entities.KindLiteral, e.Text()), nil
	case entities.KindList:
		if len(args) != 0 {
			return entities.Text{}, arityError(key, 0, len(args))
		}
		return entities.ListText(e.Items()), nil
	case entities.KindTemplate:
		s, err := r.render(e, args)
		if err != nil {
			return entities.Text{}, err
		}
		return entities.SingleText(entities.KindTemplate, s), nil
	default:
		return entities.Text{}, &domain.RenderError{Key: key, Err: fmt.Errorf("entry kind %s", e.Kind())}
	}
}

// MustResolve is Resolve for keys and arguments known to be valid at
// compile time. It panics on error.
func (r *Resolver) MustResolve(key string, args ...any) string {
	t, err := r.Resolve(key, args...)
	if err != nil {
		panic(err)
	}
	return t.String()
}

func (r *Resolver) render(e entities.Entry, args []any) (string, error) {
	key := e.Key().String()
	params := e.Params()
	if len(args) != len(params) {
		return "", arityError(key, len(params), len(args))
	}

	data := make(map[string]string, len(params))
	form := domain.FormOther
	for i, p := range params {
		value, n, err := formatArg(p.Kind, args[i])
		if err != nil {
			return "", &domain.ArgumentMismatchError{Key: key, Param: p.Name, Reason: err.Error()}
		}
		data[p.Name] = value
		if p.Kind == entities.ParamCount {
			form = r.rule(n)
		}
	}
	if !e.HasForm(form) {
		form = domain.FormOther
	}

	out, err := e.Execute(form, data)
	if err != nil {
		return "", &domain.RenderError{Key: key, Err: err}
	}
	for _, m := range placeholderMarkers {
		if strings.Contains(out, m) {
			return "", &domain.RenderError{Key: key, Err: fmt.Errorf("unresolved placeholder %q in form %s", m, form)}
		}
	}
	return out, nil
}

func arityError(key string, want, got int) error {
	return &domain.ArgumentMismatchError{
		Key:    key,
		Reason: fmt.Sprintf("expected %d arguments, got %d", want, got),
	}
}

// formatArg checks v against kind and returns its display form. For
// integer kinds it also returns the numeric value.
func formatArg(kind entities.ParamKind, v any) (string, int64, error) {
	if kind == entities.ParamText {
		s, ok := v.(string)
		if !ok {
			return "", 0, fmt.Errorf("want string, got %T", v)
		}
		for _, m := range placeholderMarkers {
			if strings.Contains(s, m) {
				return "", 0, fmt.Errorf("value contains %q", m)
			}
		}
		return s, 0, nil
	}

	n, err := integerValue(v)
	if err != nil {
		return "", 0, err
	}
	if n < 0 {
		return "", 0, fmt.Errorf("negative %s %d", kind, n)
	}
	return strconv.FormatInt(n, 10), n, nil
}

func integerValue(v any) (int64, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint:
		return unsignedValue(uint64(x))
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		return unsignedValue(x)
	default:
		return 0, fmt.Errorf("want integer, got %T", v)
	}
}

func unsignedValue(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("value %d out of range", u)
	}
	return int64(u), nil
}
