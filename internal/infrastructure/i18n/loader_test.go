package i18n_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"cabriolet/internal/domain"
	"cabriolet/internal/domain/entities"
	"cabriolet/internal/infrastructure/i18n"
)

const canonicalFile = `
[menu]
title = "КАБРІОЛЕТ"
startGame = "ПОЧАТИ ГРУ"

[help]
steps = '''
Керуй стрілками

Стріляй пробілом
'''

[score.total]
other = "Рахунок: {{.score}}"

[score.kills]
one = "{{.count}} дрон"
other = "{{.count}} дронів"
`

var testShapes = i18n.Shapes{
	Templates: map[entities.Key][]entities.Param{
		"score.total": {{Name: "score", Kind: entities.ParamScore}},
		"score.kills": {{Name: "count", Kind: entities.ParamCount}},
	},
	Lists: []entities.Key{"help.steps"},
}

func files(kv ...string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for i := 0; i < len(kv); i += 2 {
		fsys[kv[i]] = &fstest.MapFile{Data: []byte(kv[i+1])}
	}
	return fsys
}

func TestLoad(t *testing.T) {
	c, err := i18n.Load(files("active.uk.toml", canonicalFile), i18n.WithShapes(testShapes))
	require.NoError(t, err)

	table := c.Canonical()
	assert.Equal(t, entities.CanonicalVariant, table.Variant())
	assert.Equal(t, language.Ukrainian, table.Tag())
	assert.Equal(t, []entities.Key{"help.steps", "menu.startGame", "menu.title", "score.kills", "score.total"}, table.Keys())

	steps, err := table.Get("help.steps")
	require.NoError(t, err)
	assert.Equal(t, entities.KindList, steps.Kind())
	assert.Equal(t, []string{"Керуй стрілками", "Стріляй пробілом"}, steps.Items())

	kills, err := table.Get("score.kills")
	require.NoError(t, err)
	assert.Equal(t, entities.KindTemplate, kills.Kind())
	assert.Equal(t, []domain.PluralForm{domain.FormOne, domain.FormOther}, kills.Forms())

	title, err := table.Get("menu.title")
	require.NoError(t, err)
	assert.Equal(t, entities.KindLiteral, title.Kind())
	assert.Equal(t, "КАБРІОЛЕТ", title.Text())
}

func TestLoadVariant(t *testing.T) {
	c, err := i18n.Load(files(
		"active.uk.toml", canonicalFile,
		"variant.short.uk.toml", "[menu]\nstartGame = \"СТАРТ\"\n",
	), i18n.WithShapes(testShapes))
	require.NoError(t, err)

	assert.Equal(t, []string{"canonical", "short"}, c.Variants())

	short, err := c.Variant("short")
	require.NoError(t, err)
	assert.Equal(t, c.Canonical().Keys(), short.Keys())

	start, err := short.Get("menu.startGame")
	require.NoError(t, err)
	assert.Equal(t, "СТАРТ", start.Text())

	title, err := short.Get("menu.title")
	require.NoError(t, err)
	assert.Equal(t, "КАБРІОЛЕТ", title.Text())
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name   string
		fsys   fstest.MapFS
		errMsg string
	}{
		{
			name:   "no canonical file",
			fsys:   files("variant.v1.uk.toml", "[menu]\ntitle = \"x\"\n"),
			errMsg: "expected one",
		},
		{
			name:   "two canonical files",
			fsys:   files("active.uk.toml", canonicalFile, "active.en.toml", canonicalFile),
			errMsg: "expected one",
		},
		{
			name:   "declared template missing",
			fsys:   files("active.uk.toml", "[menu]\ntitle = \"x\"\n[help]\nsteps = \"a\"\n[score.total]\nother = \"{{.score}}\"\n"),
			errMsg: `template "score.kills" is declared but has no message`,
		},
		{
			name:   "plural forms on a literal",
			fsys:   files("active.uk.toml", canonicalFile+"\n[menu.lives]\none = \"життя\"\nother = \"життів\"\n"),
			errMsg: "a literal needs exactly one",
		},
		{
			name:   "undeclared template",
			fsys:   files("active.uk.toml", canonicalFile+"\n[menu.hello]\nother = \"Привіт, {{.name}}\"\n"),
			errMsg: "not a declared template",
		},
		{
			name:   "variant with an unknown key",
			fsys:   files("active.uk.toml", canonicalFile, "variant.v1.uk.toml", "[menu]\nsettings = \"НАЛАШТУВАННЯ\"\n"),
			errMsg: "keys not in the canonical table: menu.settings",
		},
		{
			name:   "variant without a name",
			fsys:   files("active.uk.toml", canonicalFile, "variant.uk.toml", "[menu]\ntitle = \"x\"\n"),
			errMsg: "cannot derive a variant name",
		},
		{
			name:   "variant in another language",
			fsys:   files("active.uk.toml", canonicalFile, "variant.v1.en.toml", "[menu]\ntitle = \"CABRIOLET\"\n"),
			errMsg: "differs from canonical",
		},
		{
			name:   "variant breaks a template",
			fsys:   files("active.uk.toml", canonicalFile, "variant.v1.uk.toml", "[score.kills]\none = \"{{.count}} дрон\"\n"),
			errMsg: `missing "other"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := i18n.Load(tt.fsys, i18n.WithShapes(testShapes))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestDefault(t *testing.T) {
	c := i18n.Default()
	require.NotNil(t, c)
	assert.Equal(t, []string{"canonical", "v1", "v2"}, c.Variants())

	table := c.Canonical()
	for key, params := range i18n.GameShapes.Templates {
		e, err := table.Get(key)
		require.NoError(t, err, key)
		assert.Equal(t, entities.KindTemplate, e.Kind(), key)
		assert.Equal(t, params, e.Params(), key)
	}
	for _, key := range i18n.GameShapes.Lists {
		e, err := table.Get(key)
		require.NoError(t, err, key)
		assert.Equal(t, entities.KindList, e.Kind(), key)
	}

	// The embedded files load the same way through the exported FS.
	again, err := i18n.Load(i18n.Files())
	require.NoError(t, err)
	assert.Equal(t, table.Keys(), again.Canonical().Keys())
}

func TestExportRoundTrip(t *testing.T) {
	for _, variant := range i18n.Default().Variants() {
		t.Run(variant, func(t *testing.T) {
			table, err := i18n.Default().Variant(variant)
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, i18n.Export(&buf, table))

			c, err := i18n.Load(files("active.uk.toml", buf.String()))
			require.NoError(t, err)
			back := c.Canonical()

			require.Equal(t, table.Keys(), back.Keys())
			for _, key := range table.Keys() {
				want, _ := table.Get(key)
				got, _ := back.Get(key)
				assert.Equal(t, want.Kind(), got.Kind(), key)
				assert.Equal(t, want.Text(), got.Text(), key)
				assert.Equal(t, want.Items(), got.Items(), key)
				assert.Equal(t, want.Params(), got.Params(), key)
				for _, form := range want.Forms() {
					ws, _ := want.Source(form)
					gs, ok := got.Source(form)
					assert.True(t, ok, "%s %s", key, form)
					assert.Equal(t, ws, gs, "%s %s", key, form)
				}
			}
		})
	}
}

func TestExportDescribesParams(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, i18n.Export(&buf, i18n.Default().Canonical()))

	out := buf.String()
	assert.Contains(t, out, "params: count (count), points (points)")
	assert.Contains(t, out, "ПОЧАТИ ГРУ")
}
