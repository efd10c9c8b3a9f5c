package domain_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"cabriolet/internal/domain"
)

func TestTwoFormRule(t *testing.T) {
	tests := []struct {
		n        int64
		expected domain.PluralForm
	}{
		{0, domain.FormOther},
		{1, domain.FormOne},
		{2, domain.FormOther},
		{5, domain.FormOther},
		{11, domain.FormOther},
		{21, domain.FormOther},
		{100, domain.FormOther},
		{1_000_000, domain.FormOther},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.TwoFormRule(tt.n))
		})
	}
}

func TestPluralRuleFor(t *testing.T) {
	for _, tag := range []language.Tag{language.Ukrainian, language.English, language.MustParse("uk-UA"), language.Japanese} {
		t.Run(tag.String(), func(t *testing.T) {
			rule := domain.PluralRuleFor(tag)
			assert.Equal(t, domain.FormOne, rule(1))
			assert.Equal(t, domain.FormOther, rule(3))
		})
	}
}

func TestParsePluralForm(t *testing.T) {
	f, ok := domain.ParsePluralForm("few")
	assert.True(t, ok)
	assert.Equal(t, domain.FormFew, f)

	_, ok = domain.ParsePluralForm("several")
	assert.False(t, ok)
}
