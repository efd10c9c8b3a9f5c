package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"cabriolet/internal/application"
	"cabriolet/internal/domain"
	"cabriolet/internal/domain/entities"
	"cabriolet/internal/ports/input"
	"cabriolet/internal/ports/output"
)

// Handler serves the text table to the browser game.
type Handler struct {
	resolvers      map[string]input.TextUseCase
	variants       []string
	defaultVariant string
	logger         zerolog.Logger
}

// NewHandler builds one resolver per catalog variant. defaultVariant is
// used when a request names none; it must exist.
func NewHandler(catalog output.TextCatalog, defaultVariant string, logger zerolog.Logger) (*Handler, error) {
	h := &Handler{
		resolvers: make(map[string]input.TextUseCase),
		variants:  catalog.Variants(),
		logger:    logger,
	}
	for _, name := range h.variants {
		r, err := application.NewVariantResolver(catalog, name)
		if err != nil {
			return nil, err
		}
		h.resolvers[name] = r
	}

	def, err := application.NewVariantResolver(catalog, defaultVariant)
	if err != nil {
		return nil, err
	}
	h.defaultVariant = def.Variant()
	return h, nil
}

// Routes mounts the text API.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/variants", h.listVariants)
	r.Get("/texts", h.listTexts)
	r.Get("/texts/{key}", h.resolveText)
	r.Get("/namespaces", h.listNamespaces)
	r.Get("/namespaces/{namespace}", h.namespaceKeys)
}

func (h *Handler) resolver(r *http.Request) (input.TextUseCase, error) {
	name := r.URL.Query().Get("variant")
	if name == "" || name == entities.CanonicalVariant {
		name = h.defaultVariant
	}
	res, ok := h.resolvers[name]
	if !ok {
		return nil, &domain.UnknownVariantError{Variant: name}
	}
	return res, nil
}

type paramJSON struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

type templateJSON struct {
	Params []paramJSON       `json:"params"`
	Forms  map[string]string `json:"forms"`
}

type resolvedJSON struct {
	Key     string   `json:"key"`
	Variant string   `json:"variant"`
	Kind    string   `json:"kind"`
	Text    string   `json:"text,omitempty"`
	Items   []string `json:"items,omitempty"`
}

type errorJSON struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

func (h *Handler) listVariants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"default":  h.defaultVariant,
		"variants": h.variants,
	})
}

// listTexts returns the whole table: literals as strings, lists as
// arrays, templates with their parameters and raw forms.
func (h *Handler) listTexts(w http.ResponseWriter, r *http.Request) {
	res, err := h.resolver(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := make(map[string]any)
	for _, key := range res.Keys() {
		e, err := res.Get(key.String())
		if err != nil {
			h.writeError(w, err)
			return
		}
		switch e.Kind() {
		case entities.KindLiteral:
			out[key.String()] = e.Text()
		case entities.KindList:
			out[key.String()] = e.Items()
		case entities.KindTemplate:
			t := templateJSON{Forms: make(map[string]string)}
			for _, p := range e.Params() {
				t.Params = append(t.Params, paramJSON{Name: p.Name, Kind: string(p.Kind)})
			}
			for _, f := range e.Forms() {
				t.Forms[string(f)], _ = e.Source(f)
			}
			out[key.String()] = t
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// resolveText resolves one key. Template arguments come as repeated
// "arg" query values, in parameter order.
func (h *Handler) resolveText(w http.ResponseWriter, r *http.Request) {
	res, err := h.resolver(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	key := chi.URLParam(r, "key")

	e, err := res.Get(key)
	if err != nil {
		h.countResolve(res.Variant(), err)
		h.writeError(w, err)
		return
	}
	args, err := application.ParseArgs(e, r.URL.Query()["arg"])
	if err != nil {
		h.countResolve(res.Variant(), err)
		h.writeError(w, err)
		return
	}

	text, err := res.Resolve(key, args...)
	h.countResolve(res.Variant(), err)
	if err != nil {
		h.writeError(w, err)
		return
	}

	out := resolvedJSON{Key: key, Variant: res.Variant(), Kind: text.Kind().String()}
	if text.IsList() {
		out.Items = text.Lines()
	} else {
		out.Text = text.String()
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) listNamespaces(w http.ResponseWriter, r *http.Request) {
	res, err := h.resolver(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"variant":    res.Variant(),
		"namespaces": res.Namespaces(),
	})
}

func (h *Handler) namespaceKeys(w http.ResponseWriter, r *http.Request) {
	res, err := h.resolver(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	ns := chi.URLParam(r, "namespace")
	keys := res.KeysIn(ns)
	if len(keys) == 0 {
		writeJSON(w, http.StatusNotFound, errorJSON{Code: "unknown_namespace", Error: fmt.Sprintf("unknown namespace %q", ns)})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"variant":   res.Variant(),
		"namespace": ns,
		"keys":      keys,
	})
}

func (h *Handler) countResolve(variant string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = domain.Code(err)
		if outcome == "" {
			outcome = "error"
		}
	}
	textResolveTotal.WithLabelValues(variant, outcome).Inc()
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := domain.Code(err)
	status := http.StatusInternalServerError
	switch code {
	case "unknown_key", "unknown_variant":
		status = http.StatusNotFound
	case "argument_mismatch":
		status = http.StatusBadRequest
	case "render_failed":
		h.logger.Error().Err(err).Msg("text table defect")
	default:
		code = "internal"
		h.logger.Error().Err(err).Msg("text request failed")
	}
	writeJSON(w, status, errorJSON{Code: code, Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
