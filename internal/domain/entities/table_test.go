package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"cabriolet/internal/domain"
	"cabriolet/internal/domain/entities"
)

func sampleEntries() []entities.Entry {
	return []entities.Entry{
		entities.NewLiteral("menu.startGame", "ПОЧАТИ ГРУ"),
		entities.NewLiteral("menu.title", "КАБРІОЛЕТ"),
		entities.NewLiteral("hud.score", "Рахунок"),
		entities.NewList("howToPlay.instructions", []string{"ліворуч", "праворуч"}),
	}
}

func TestNewTable(t *testing.T) {
	table, err := entities.NewTable("canonical", language.Ukrainian, sampleEntries())
	require.NoError(t, err)

	assert.Equal(t, 4, table.Len())
	assert.Equal(t, []entities.Key{"howToPlay.instructions", "hud.score", "menu.startGame", "menu.title"}, table.Keys())
	assert.Equal(t, []string{"howToPlay", "hud", "menu"}, table.Namespaces())
	assert.Equal(t, []entities.Key{"menu.startGame", "menu.title"}, table.KeysIn("menu"))
	assert.Nil(t, table.KeysIn("settings"))
	assert.True(t, table.Has("hud.score"))

	e, err := table.Get("menu.startGame")
	require.NoError(t, err)
	assert.Equal(t, "ПОЧАТИ ГРУ", e.Text())

	_, err = table.Get("menu.doesNotExist")
	var unknown *domain.UnknownKeyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "menu.doesNotExist", unknown.Key)
}

func TestNewTableRejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []entities.Entry
		errMsg  string
	}{
		{
			name:    "no namespace",
			entries: []entities.Entry{entities.NewLiteral("title", "x")},
			errMsg:  "has no namespace",
		},
		{
			name:    "empty segment",
			entries: []entities.Entry{entities.NewLiteral("menu..title", "x")},
			errMsg:  "invalid segment",
		},
		{
			name:    "zero entry",
			entries: []entities.Entry{{}},
			errMsg:  "has no namespace",
		},
		{
			name: "duplicate",
			entries: []entities.Entry{
				entities.NewLiteral("menu.title", "a"),
				entities.NewLiteral("menu.title", "b"),
			},
			errMsg: "duplicate key",
		},
		{
			name: "leaf and namespace",
			entries: []entities.Entry{
				entities.NewLiteral("menu.title", "a"),
				entities.NewLiteral("menu.title.short", "b"),
			},
			errMsg: "both a leaf and a namespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := entities.NewTable("canonical", language.Ukrainian, tt.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestTableKeysAreCopies(t *testing.T) {
	table, err := entities.NewTable("canonical", language.Ukrainian, sampleEntries())
	require.NoError(t, err)

	keys := table.Keys()
	keys[0] = "mutated.key"
	assert.Equal(t, entities.Key("howToPlay.instructions"), table.Keys()[0])
}

func TestCatalog(t *testing.T) {
	canonical, err := entities.NewTable(entities.CanonicalVariant, language.Ukrainian, sampleEntries())
	require.NoError(t, err)
	v2, err := entities.NewTable("v2", language.Ukrainian, sampleEntries())
	require.NoError(t, err)
	v1, err := entities.NewTable("v1", language.Ukrainian, sampleEntries())
	require.NoError(t, err)

	c, err := entities.NewCatalog(canonical, v2, v1)
	require.NoError(t, err)
	assert.Equal(t, []string{"canonical", "v1", "v2"}, c.Variants())
	assert.Same(t, canonical, c.Canonical())

	for _, name := range []string{"", "canonical"} {
		got, err := c.Variant(name)
		require.NoError(t, err)
		assert.Same(t, canonical, got)
	}

	got, err := c.Variant("v1")
	require.NoError(t, err)
	assert.Same(t, v1, got)

	_, err = c.Variant("v3")
	assert.ErrorIs(t, err, domain.ErrUnknownVariant)
}

func TestCatalogRejects(t *testing.T) {
	canonical, err := entities.NewTable(entities.CanonicalVariant, language.Ukrainian, sampleEntries())
	require.NoError(t, err)
	v1, err := entities.NewTable("v1", language.Ukrainian, sampleEntries())
	require.NoError(t, err)

	_, err = entities.NewCatalog(nil)
	assert.Error(t, err)

	_, err = entities.NewCatalog(canonical, v1, v1)
	assert.ErrorContains(t, err, "duplicate variant")

	_, err = entities.NewCatalog(canonical, canonical)
	assert.ErrorContains(t, err, "invalid variant name")
}
