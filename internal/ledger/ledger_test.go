package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/stardrift/internal/content"
	"github.com/talgya/stardrift/internal/ledger"
)

func newLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	return ledger.New(content.Default())
}

func TestCargoCapacityCheckedBeforeMutation(t *testing.T) {
	l := newLedger(t)
	require.Equal(t, 20, l.MaxCargo())

	require.NoError(t, l.AddToCargo("silicate", 19))

	// Would exceed capacity: rejected whole, nothing applied.
	err := l.AddToCargo("ferrite", 2)
	assert.ErrorIs(t, err, ledger.ErrCargoFull)
	assert.Equal(t, 19, l.Cargo())
	assert.Equal(t, 0, l.ItemCount("ferrite"))

	// An add that exactly fills the hold is fine.
	require.NoError(t, l.AddToCargo("ferrite", 1))
	assert.Equal(t, 20, l.Cargo())
}

func TestRefinedGoodsBypassCargo(t *testing.T) {
	l := newLedger(t)

	l.AddItems("ref_silicate", 7)

	assert.Equal(t, 7, l.ItemCount("ref_silicate"))
	assert.Equal(t, 0, l.Cargo())
}

func TestDebitNeverGoesNegative(t *testing.T) {
	l := newLedger(t)
	l.Credit(50)

	err := l.Debit(51)
	assert.ErrorIs(t, err, ledger.ErrInsufficientCredits)
	assert.Equal(t, float64(50), l.Credits())

	require.NoError(t, l.Debit(50))
	assert.Equal(t, float64(0), l.Credits())
}

func TestConsumeItemsAtomic(t *testing.T) {
	l := newLedger(t)
	l.AddItems("silicate", 4)
	l.AddItems("ferrite", 1)

	// ferrite is short: nothing should be deducted.
	err := l.ConsumeItems(map[string]int{"silicate": 2, "ferrite": 3})
	assert.ErrorIs(t, err, ledger.ErrInsufficientItems)
	assert.Equal(t, 4, l.ItemCount("silicate"))
	assert.Equal(t, 1, l.ItemCount("ferrite"))

	require.NoError(t, l.ConsumeItems(map[string]int{"silicate": 4, "ferrite": 1}))
	assert.Equal(t, 0, l.ItemCount("silicate"))
	assert.Equal(t, 0, l.ItemCount("ferrite"))
}

func TestInstallUpgradePrerequisites(t *testing.T) {
	reg := content.Default()
	l := ledger.New(reg)
	l.Credit(100_000)
	l.AddItems("ref_silicate", 50)
	l.AddItems("ferrite_plate", 50)

	cargo2, ok := reg.UpgradeByID("cargo_2")
	require.True(t, ok)

	// cargo_2 requires cargo_1, regardless of funds held.
	err := l.InstallUpgrade(cargo2)
	assert.ErrorIs(t, err, ledger.ErrPrereqMissing)
	assert.False(t, l.HasUpgrade("cargo_2"))

	cargo1, _ := reg.UpgradeByID("cargo_1")
	require.NoError(t, l.InstallUpgrade(cargo1))
	require.NoError(t, l.InstallUpgrade(cargo2))
	assert.Equal(t, 20+25+50, l.MaxCargo())

	// Second install of the same id is a no-op failure.
	err = l.InstallUpgrade(cargo1)
	assert.ErrorIs(t, err, ledger.ErrAlreadyInstalled)
}

func TestInstallUpgradeCostAtomic(t *testing.T) {
	reg := content.Default()
	l := ledger.New(reg)
	warp1, _ := reg.UpgradeByID("warp_1") // 300 credits + 8 ref_silicate

	l.Credit(300)
	l.AddItems("ref_silicate", 7)

	err := l.InstallUpgrade(warp1)
	assert.ErrorIs(t, err, ledger.ErrInsufficientItems)
	assert.Equal(t, float64(300), l.Credits())
	assert.Equal(t, 7, l.ItemCount("ref_silicate"))
	assert.Equal(t, 0, l.WarpLevel())

	l.AddItems("ref_silicate", 1)
	require.NoError(t, l.InstallUpgrade(warp1))
	assert.Equal(t, float64(0), l.Credits())
	assert.Equal(t, 0, l.ItemCount("ref_silicate"))
	assert.Equal(t, 1, l.WarpLevel())
}

func TestDerivedLevelsFollowInstalls(t *testing.T) {
	reg := content.Default()
	l := ledger.New(reg)
	l.Credit(100_000)
	l.AddItems("ferrite_plate", 50)
	l.AddItems("cryon_cell", 50)

	assert.Equal(t, 0, l.ModuleLevel())

	m1, _ := reg.UpgradeByID("module_1")
	require.NoError(t, l.InstallUpgrade(m1))
	assert.Equal(t, 1, l.ModuleLevel())

	m2, _ := reg.UpgradeByID("module_2")
	require.NoError(t, l.InstallUpgrade(m2))
	assert.Equal(t, 2, l.ModuleLevel())
}

func TestSellAllEmptyIsNoOp(t *testing.T) {
	reg := content.Default()
	l := ledger.New(reg)
	rec, _ := reg.RecipeByID("ref_silicate")

	qty, earned := l.SellAll(rec)
	assert.Equal(t, 0, qty)
	assert.Equal(t, float64(0), earned)
	assert.Equal(t, float64(0), l.Credits())
}

func TestSellAllConsumesFullStock(t *testing.T) {
	reg := content.Default()
	l := ledger.New(reg)
	rec, _ := reg.RecipeByID("ref_silicate") // sells at 18

	l.AddItems("ref_silicate", 3)
	qty, earned := l.SellAll(rec)

	assert.Equal(t, 3, qty)
	assert.Equal(t, float64(54), earned)
	assert.Equal(t, float64(54), l.Credits())
	assert.Equal(t, 0, l.ItemCount("ref_silicate"))
}

func TestUnloadCargoKeepsInventory(t *testing.T) {
	l := newLedger(t)
	require.NoError(t, l.AddToCargo("silicate", 12))

	l.UnloadCargo()

	assert.Equal(t, 0, l.Cargo())
	assert.Equal(t, 12, l.ItemCount("silicate"))
}

func TestUpgradeBuilding(t *testing.T) {
	reg := content.Default()
	l := ledger.New(reg)
	refinery, _ := reg.BuildingByID("refinery")

	assert.Equal(t, 1, l.BuildingLevel("refinery"))

	// Level 2 costs 200 credits + 5 ref_silicate.
	_, err := l.UpgradeBuilding(refinery)
	assert.ErrorIs(t, err, ledger.ErrInsufficientCredits)

	l.Credit(200)
	l.AddItems("ref_silicate", 5)
	next, err := l.UpgradeBuilding(refinery)
	require.NoError(t, err)
	assert.Equal(t, 2, next)
	assert.Equal(t, 2, l.BuildingLevel("refinery"))
	assert.Equal(t, float64(0), l.Credits())
}

func TestRestoreSanitizes(t *testing.T) {
	l := newLedger(t)

	l.Restore(
		map[string]int{"silicate": 5, "bogus_negative": -3},
		120,
		500, // cargo beyond any capacity
		[]string{"cargo_1", "removed_upgrade"},
		map[string]int{"refinery": 2, "ghost_building": 9},
	)

	assert.Equal(t, 5, l.ItemCount("silicate"))
	assert.Equal(t, 0, l.ItemCount("bogus_negative"))
	assert.Equal(t, float64(120), l.Credits())
	assert.True(t, l.HasUpgrade("cargo_1"))
	assert.False(t, l.HasUpgrade("removed_upgrade"))
	// Cargo clamped to the restored capacity (20 base + 25 cargo_1).
	assert.Equal(t, 45, l.Cargo())
	assert.Equal(t, 2, l.BuildingLevel("refinery"))
	assert.Equal(t, 0, l.BuildingLevel("ghost_building"))
}
