package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrUnknownKey       = errors.New("unknown text key")
	ErrUnknownVariant   = errors.New("unknown text variant")
	ErrArgumentMismatch = errors.New("argument mismatch")
	ErrRender           = errors.New("template render failed")
)

// UnknownKeyError reports a key that is not present in the table.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownKey, e.Key)
}

func (e *UnknownKeyError) Is(target error) bool { return target == ErrUnknownKey }

// UnknownVariantError reports a content variant that the catalog does not carry.
type UnknownVariantError struct {
	Variant string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownVariant, e.Variant)
}

func (e *UnknownVariantError) Is(target error) bool { return target == ErrUnknownVariant }

// ArgumentMismatchError reports wrong arity, wrong type or an out-of-domain
// value passed for an entry. Param is empty when the arity itself is wrong.
type ArgumentMismatchError struct {
	Key    string
	Param  string
	Reason string
}

func (e *ArgumentMismatchError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("%s: %q: %s", ErrArgumentMismatch, e.Key, e.Reason)
	}
	return fmt.Sprintf("%s: %q (%s): %s", ErrArgumentMismatch, e.Key, e.Param, e.Reason)
}

func (e *ArgumentMismatchError) Is(target error) bool { return target == ErrArgumentMismatch }

// RenderError means the table itself is defective: a template could not be
// executed or left a placeholder behind.
type RenderError struct {
	Key string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: %q: %v", ErrRender, e.Key, e.Err)
}

func (e *RenderError) Is(target error) bool { return target == ErrRender }

func (e *RenderError) Unwrap() error { return e.Err }

// Code returns a stable identifier for a domain error, or "" for any other error.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnknownKey):
		return "unknown_key"
	case errors.Is(err, ErrUnknownVariant):
		return "unknown_variant"
	case errors.Is(err, ErrArgumentMismatch):
		return "argument_mismatch"
	case errors.Is(err, ErrRender):
		return "render_failed"
	default:
		return ""
	}
}
