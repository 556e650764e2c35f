package content

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// universe is the on-disk shape: one YAML document with every table.
type universe struct {
	Balance   Balance       `yaml:"balance"`
	Items     []Item        `yaml:"items" validate:"min=1,dive"`
	Sectors   []Sector      `yaml:"sectors" validate:"min=1,dive"`
	Salvage   []MaterialRef `yaml:"salvage" validate:"dive"`
	Recipes   []Recipe      `yaml:"recipes" validate:"dive"`
	Upgrades  []Upgrade     `yaml:"upgrades" validate:"dive"`
	Buildings []Building    `yaml:"buildings" validate:"dive"`
}

// Registry is the immutable content lookup surface handed to the
// session. Build it once with Load or Default.
type Registry struct {
	balance   Balance
	items     map[string]Item
	sectors   map[string]Sector
	recipes   map[string]Recipe
	upgrades  map[string]Upgrade
	buildings map[string]Building

	sectorOrder   []string
	recipeOrder   []string
	upgradeOrder  []string
	buildingOrder []string
	salvage       []MaterialRef
}

// Default returns the registry built from the embedded content tables.
func Default() *Registry {
	reg, err := parse(defaultContent)
	if err != nil {
		// The embedded file ships with the binary; failing to parse it
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded content invalid: %v", err))
	}
	return reg
}

// Load reads and validates a content file from disk.
func Load(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	reg, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return reg, nil
}

func parse(raw []byte) (*Registry, error) {
	var u universe
	if err := yaml.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := validator.New().Struct(&u); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	reg := &Registry{
		balance:   u.Balance,
		items:     make(map[string]Item, len(u.Items)),
		sectors:   make(map[string]Sector, len(u.Sectors)),
		recipes:   make(map[string]Recipe, len(u.Recipes)),
		upgrades:  make(map[string]Upgrade, len(u.Upgrades)),
		buildings: make(map[string]Building, len(u.Buildings)),
		salvage:   u.Salvage,
	}
	for _, it := range u.Items {
		reg.items[it.ID] = it
	}
	for _, s := range u.Sectors {
		reg.sectors[s.ID] = s
		reg.sectorOrder = append(reg.sectorOrder, s.ID)
	}
	for _, r := range u.Recipes {
		reg.recipes[r.ID] = r
		reg.recipeOrder = append(reg.recipeOrder, r.ID)
	}
	for _, up := range u.Upgrades {
		reg.upgrades[up.ID] = up
		reg.upgradeOrder = append(reg.upgradeOrder, up.ID)
	}
	for _, b := range u.Buildings {
		reg.buildings[b.ID] = b
		reg.buildingOrder = append(reg.buildingOrder, b.ID)
	}

	if err := reg.checkReferences(); err != nil {
		return nil, err
	}
	return reg, nil
}

// checkReferences rejects content whose cross-references don't resolve.
// A broken reference in a *save* degrades at runtime; a broken reference
// in the content file itself is a load error.
func (r *Registry) checkReferences() error {
	for _, s := range r.sectors {
		for _, m := range s.Materials {
			if _, ok := r.items[m.ItemID]; !ok {
				return fmt.Errorf("sector %s: unknown material item %q", s.ID, m.ItemID)
			}
		}
	}
	for _, m := range r.salvage {
		if _, ok := r.items[m.ItemID]; !ok {
			return fmt.Errorf("salvage: unknown item %q", m.ItemID)
		}
	}
	for _, rec := range r.recipes {
		if _, ok := r.items[rec.ID]; !ok {
			return fmt.Errorf("recipe %s: no such output item", rec.ID)
		}
		for in := range rec.Inputs {
			if _, ok := r.items[in]; !ok {
				return fmt.Errorf("recipe %s: unknown input %q", rec.ID, in)
			}
		}
	}
	for _, up := range r.upgrades {
		for _, req := range up.Requires {
			if _, ok := r.upgrades[req]; !ok {
				return fmt.Errorf("upgrade %s: unknown prerequisite %q", up.ID, req)
			}
		}
		for it := range up.Cost.Items {
			if _, ok := r.items[it]; !ok {
				return fmt.Errorf("upgrade %s: unknown cost item %q", up.ID, it)
			}
		}
	}
	for _, b := range r.buildings {
		for _, lvl := range b.Levels {
			if lvl.Cost == nil {
				continue
			}
			for it := range lvl.Cost.Items {
				if _, ok := r.items[it]; !ok {
					return fmt.Errorf("building %s: unknown cost item %q", b.ID, it)
				}
			}
		}
	}
	if _, ok := r.sectors[r.balance.StartLocation]; !ok {
		return fmt.Errorf("balance: unknown start location %q", r.balance.StartLocation)
	}
	return nil
}

// Balance returns the global tuning constants.
func (r *Registry) Balance() Balance { return r.balance }

// ItemByID looks up an item definition.
func (r *Registry) ItemByID(id string) (Item, bool) {
	it, ok := r.items[id]
	return it, ok
}

// SectorByID looks up a sector definition.
func (r *Registry) SectorByID(id string) (Sector, bool) {
	s, ok := r.sectors[id]
	return s, ok
}

// MaterialInSector resolves a material reference within a sector.
func (r *Registry) MaterialInSector(sectorID, itemID string) (MaterialRef, bool) {
	s, ok := r.sectors[sectorID]
	if !ok {
		return MaterialRef{}, false
	}
	for _, m := range s.Materials {
		if m.ItemID == itemID {
			return m, true
		}
	}
	return MaterialRef{}, false
}

// SalvageMaterial resolves an entry of the salvage table.
func (r *Registry) SalvageMaterial(itemID string) (MaterialRef, bool) {
	for _, m := range r.salvage {
		if m.ItemID == itemID {
			return m, true
		}
	}
	return MaterialRef{}, false
}

// RecipeByID looks up a refining recipe.
func (r *Registry) RecipeByID(id string) (Recipe, bool) {
	rec, ok := r.recipes[id]
	return rec, ok
}

// UpgradeByID looks up a ship upgrade.
func (r *Registry) UpgradeByID(id string) (Upgrade, bool) {
	up, ok := r.upgrades[id]
	return up, ok
}

// BuildingByID looks up a building definition.
func (r *Registry) BuildingByID(id string) (Building, bool) {
	b, ok := r.buildings[id]
	return b, ok
}

// Sectors returns all sectors in authored order.
func (r *Registry) Sectors() []Sector {
	out := make([]Sector, 0, len(r.sectorOrder))
	for _, id := range r.sectorOrder {
		out = append(out, r.sectors[id])
	}
	return out
}

// Recipes returns all recipes in authored order.
func (r *Registry) Recipes() []Recipe {
	out := make([]Recipe, 0, len(r.recipeOrder))
	for _, id := range r.recipeOrder {
		out = append(out, r.recipes[id])
	}
	return out
}

// Upgrades returns all upgrades in authored order.
func (r *Registry) Upgrades() []Upgrade {
	out := make([]Upgrade, 0, len(r.upgradeOrder))
	for _, id := range r.upgradeOrder {
		out = append(out, r.upgrades[id])
	}
	return out
}

// Buildings returns all buildings in authored order.
func (r *Registry) Buildings() []Building {
	out := make([]Building, 0, len(r.buildingOrder))
	for _, id := range r.buildingOrder {
		out = append(out, r.buildings[id])
	}
	return out
}

// SalvageMaterials returns the salvage table.
func (r *Registry) SalvageMaterials() []MaterialRef {
	return r.salvage
}
