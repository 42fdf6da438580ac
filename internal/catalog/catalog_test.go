package catalog

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
)

func intPtr(v int) *int { return &v }

func testItems() []domain.Item {
	return []domain.Item{
		{ID: "sv-melon", Name: "Melon", NamePt: "Melão", Game: domain.GameStardew, Category: domain.CategoryCrops, Value: intPtr(250)},
		{ID: "sv-corn", Name: "Corn", NamePt: "Milho", Game: domain.GameStardew, Category: domain.CategoryCrops, Value: intPtr(50)},
		{ID: "sv-keg", Name: "Keg", NamePt: "Barril", Game: domain.GameStardew, Category: domain.CategoryProcessingMachines},
		{ID: "hy-corn", Name: " corn ", NamePt: "Milho", Game: domain.GameHytale, Category: domain.CategoryCrops, HytaleID: "Plant_Crop_Corn_Item"},
		{ID: "hy-corn-seeds", Name: "Corn Seeds", Game: domain.GameHytale, Category: domain.CategorySeeds, HytaleID: "Plant_Seeds_Corn"},
		{ID: "hy-salt", Name: "Salt", Game: domain.GameHytale, Category: domain.CategoryMaterials},
	}
}

func mustNew(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(testItems())
	require.NoError(t, err)
	return c
}

func TestLoad_BundledCatalog(t *testing.T) {
	c, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 192, c.Len())
	assert.NotEmpty(t, c.Raw())

	seen := make(map[string]bool, c.Len())
	for _, item := range c.Items() {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
		if item.HytaleID != "" {
			assert.Equal(t, domain.GameHytale, item.Game, item.ID)
		}
	}

	melon, err := c.Get("sv-melon")
	require.NoError(t, err)
	assert.Equal(t, "Melão", melon.NamePt)
	require.NotNil(t, melon.Value)
	assert.Equal(t, 250, *melon.Value)

	keg, err := c.Get("sv-keg")
	require.NoError(t, err)
	assert.Nil(t, keg.Value)
}

func TestLoadFS_RejectsSchemaViolations(t *testing.T) {
	schema, err := DataFS.ReadFile(ItemsSchemaFile)
	require.NoError(t, err)

	tests := []struct {
		name  string
		items string
	}{
		{"unknown game", `[{"id": "sv-x", "name": "X", "game": "minecraft", "category": "crops"}]`},
		{"negative value", `[{"id": "sv-x", "name": "X", "game": "stardew", "category": "crops", "value": -1}]`},
		{"unknown field", `[{"id": "sv-x", "name": "X", "game": "stardew", "category": "crops", "price": 3}]`},
		{"missing name", `[{"id": "sv-x", "game": "stardew", "category": "crops"}]`},
		{"empty list", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := fstest.MapFS{
				"items.json":   &fstest.MapFile{Data: []byte(tt.items)},
				"items.schema": &fstest.MapFile{Data: schema},
			}
			_, err := LoadFS(context.Background(), source, "items.json", "items.schema")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
		})
	}
}

func TestLoadFS_RejectsDuplicateIDs(t *testing.T) {
	schema, err := DataFS.ReadFile(ItemsSchemaFile)
	require.NoError(t, err)

	source := fstest.MapFS{
		"items.json": &fstest.MapFile{Data: []byte(`[
			{"id": "sv-x", "name": "X", "game": "stardew", "category": "crops"},
			{"id": "sv-x", "name": "Y", "game": "stardew", "category": "seeds"}
		]`)},
		"items.schema": &fstest.MapFile{Data: schema},
	}

	_, err = LoadFS(context.Background(), source, "items.json", "items.schema")
	assert.ErrorIs(t, err, domain.ErrDuplicateItemID)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		items   []domain.Item
		wantErr error
	}{
		{"empty", nil, domain.ErrInvalidInput},
		{"missing id", []domain.Item{{Name: "X", Game: domain.GameStardew, Category: domain.CategoryCrops}}, domain.ErrInvalidInput},
		{"bad game", []domain.Item{{ID: "x", Name: "X", Game: "other", Category: domain.CategoryCrops}}, domain.ErrInvalidGame},
		{"bad category", []domain.Item{{ID: "x", Name: "X", Game: domain.GameHytale, Category: "tools"}}, domain.ErrInvalidCategory},
		{"negative value", []domain.Item{{ID: "x", Name: "X", Game: domain.GameHytale, Category: domain.CategoryCrops, Value: intPtr(-5)}}, domain.ErrInvalidItemValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.items)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	items := testItems()
	c, err := New(items)
	require.NoError(t, err)

	items[0].Name = "Changed"
	got, err := c.Get("sv-melon")
	require.NoError(t, err)
	assert.Equal(t, "Melon", got.Name)

	listed := c.Items()
	listed[0].Name = "Changed again"
	got, _ = c.Get("sv-melon")
	assert.Equal(t, "Melon", got.Name)
}

func TestGet_NotFound(t *testing.T) {
	_, err := mustNew(t).Get("sv-nope")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestIsShared(t *testing.T) {
	c := mustNew(t)

	corn, _ := c.Get("sv-corn")
	hyCorn, _ := c.Get("hy-corn")
	melon, _ := c.Get("sv-melon")

	assert.True(t, c.IsShared(corn))
	assert.True(t, c.IsShared(hyCorn))
	assert.False(t, c.IsShared(melon))
	assert.True(t, c.Contains("hy-salt"))
	assert.False(t, c.Contains("hy-gold"))
}

func TestHash_StableAndContentSensitive(t *testing.T) {
	a := mustNew(t)
	b := mustNew(t)
	assert.Equal(t, a.Hash(), b.Hash())

	items := testItems()
	items[0].Value = intPtr(999)
	changed, err := New(items)
	require.NoError(t, err)
	assert.NotEqual(t, a.Hash(), changed.Hash())
}
