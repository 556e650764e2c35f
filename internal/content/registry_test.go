package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/stardrift/internal/content"
)

func TestDefaultRegistry(t *testing.T) {
	reg := content.Default()

	b := reg.Balance()
	assert.Equal(t, 20, b.BaseCargo)
	assert.Equal(t, float64(15), b.TravelSeconds)
	assert.Equal(t, "home", b.StartLocation)

	assert.Len(t, reg.Sectors(), 5)
	assert.Len(t, reg.Recipes(), 5)
	assert.Len(t, reg.Upgrades(), 8)
	assert.Len(t, reg.Buildings(), 3)
	assert.Len(t, reg.SalvageMaterials(), 2)
}

func TestLookups(t *testing.T) {
	reg := content.Default()

	item, ok := reg.ItemByID("silicate")
	require.True(t, ok)
	assert.Equal(t, "Silicate Dust", item.Name)
	assert.Equal(t, content.RarityCommon, item.Rarity)

	_, ok = reg.ItemByID("unobtainium")
	assert.False(t, ok)

	mat, ok := reg.MaterialInSector("kepler", "silicate")
	require.True(t, ok)
	assert.Equal(t, float64(10), mat.TimeSeconds)
	assert.Equal(t, 1, mat.Amount)

	_, ok = reg.MaterialInSector("kepler", "voidstone")
	assert.False(t, ok)

	_, ok = reg.SalvageMaterial("scrap_metal")
	assert.True(t, ok)
	_, ok = reg.SalvageMaterial("silicate")
	assert.False(t, ok)

	rec, ok := reg.RecipeByID("cryon_cell")
	require.True(t, ok)
	assert.Equal(t, 1, rec.ReqModule)
	assert.Equal(t, map[string]int{"cryon": 3, "ferrite_plate": 1}, rec.Inputs)
}

func TestSectorsKeepAuthoredOrder(t *testing.T) {
	reg := content.Default()

	var ids []string
	for _, s := range reg.Sectors() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"home", "kepler", "cryon", "void", "neutron"}, ids)
}

func TestUpgradeChains(t *testing.T) {
	reg := content.Default()

	up, ok := reg.UpgradeByID("cargo_3")
	require.True(t, ok)
	assert.Equal(t, []string{"cargo_2"}, up.Requires)
	assert.Equal(t, content.UpgradeCargo, up.Category)
	assert.Equal(t, 100, up.Effect)
}

func writeContent(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadRejectsBrokenReference(t *testing.T) {
	path := writeContent(t, `
balance: { base_cargo: 20, travel_seconds: 15, start_location: home }
items:
  - { id: rock, name: Rock, rarity: common, category: raw, icon: "x" }
sectors:
  - id: home
    name: Home
    req_warp: 0
    materials:
      - { id: missing_item, time: 5, amount: 1 }
`)
	_, err := content.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing_item")
}

func TestLoadRejectsUnknownStartLocation(t *testing.T) {
	path := writeContent(t, `
balance: { base_cargo: 20, travel_seconds: 15, start_location: nowhere }
items:
  - { id: rock, name: Rock, rarity: common, category: raw, icon: "x" }
sectors:
  - id: home
    name: Home
    req_warp: 0
    materials:
      - { id: rock, time: 5, amount: 1 }
`)
	_, err := content.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nowhere")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeContent(t, "balance: [not: a: mapping")
	_, err := content.Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := content.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
