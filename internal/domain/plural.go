package domain

import "golang.org/x/text/language"

// PluralForm is a grammatical form selector, named after the CLDR categories.
type PluralForm string

const (
	FormZero  PluralForm = "zero"
	FormOne   PluralForm = "one"
	FormTwo   PluralForm = "two"
	FormFew   PluralForm = "few"
	FormMany  PluralForm = "many"
	FormOther PluralForm = "other"
)

// PluralForms lists every form in a fixed order.
var PluralForms = []PluralForm{FormZero, FormOne, FormTwo, FormFew, FormMany, FormOther}

// PluralRule maps a count to the form a template must use for it.
type PluralRule func(n int64) PluralForm

// TwoFormRule distinguishes exactly one from every other quantity.
// The game text agrees with counts this way in every locale it ships.
var TwoFormRule PluralRule = func(n int64) PluralForm {
	if n == 1 {
		return FormOne
	}
	return FormOther
}

// pluralRules is keyed by ISO 639-1 base language.
var pluralRules = map[string]PluralRule{
	"uk": TwoFormRule,
	"en": TwoFormRule,
}

// PluralRuleFor returns the rule used for the given language.
// Languages without a dedicated rule use TwoFormRule.
func PluralRuleFor(tag language.Tag) PluralRule {
	base, _ := tag.Base()
	if rule, ok := pluralRules[base.String()]; ok {
		return rule
	}
	return TwoFormRule
}

// ParsePluralForm reports whether s names a known form.
func ParsePluralForm(s string) (PluralForm, bool) {
	for _, f := range PluralForms {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}
