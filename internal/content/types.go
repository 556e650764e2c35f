// Package content holds the static game content tables: items, sectors,
// refining recipes, ship upgrades and buildings. Content is pure data,
// loaded once at startup and looked up by id; no game logic lives here.
package content

// Rarity orders items from common to legendary.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// Category classifies an item by how it enters the inventory.
type Category string

const (
	CategoryRaw     Category = "raw"
	CategoryRefined Category = "refined"
	CategoryCrafted Category = "crafted"
)

// Item is one inventory entry definition. Icon and Flavor are
// presentation pass-through for whatever front end consumes the API.
type Item struct {
	ID       string   `yaml:"id" validate:"required"`
	Name     string   `yaml:"name" validate:"required"`
	Rarity   Rarity   `yaml:"rarity" validate:"oneof=common uncommon rare legendary"`
	Category Category `yaml:"category" validate:"oneof=raw refined crafted"`
	Icon     string   `yaml:"icon"`
	Flavor   string   `yaml:"flavor"`
}

// MaterialRef binds an item to a gathering action: one action takes
// TimeSeconds and yields Amount units.
type MaterialRef struct {
	ItemID      string  `yaml:"id" validate:"required"`
	TimeSeconds float64 `yaml:"time" validate:"gt=0"`
	Amount      int     `yaml:"amount" validate:"gt=0"`
}

// Sector is a minable location, gated behind a warp tier.
type Sector struct {
	ID        string        `yaml:"id" validate:"required"`
	Name      string        `yaml:"name" validate:"required"`
	Region    string        `yaml:"region"`
	Icon      string        `yaml:"icon"`
	Color     string        `yaml:"color"`
	ReqWarp   int           `yaml:"req_warp" validate:"gte=0"`
	Lore      string        `yaml:"lore"`
	Materials []MaterialRef `yaml:"materials" validate:"dive"`
}

// Recipe turns input items into one unit of the output item whose id
// equals the recipe id. Inputs are consumed when the job is queued.
type Recipe struct {
	ID          string         `yaml:"id" validate:"required"`
	TimeSeconds float64        `yaml:"time" validate:"gt=0"`
	SellPrice   float64        `yaml:"sell_price" validate:"gte=0"`
	ReqModule   int            `yaml:"req_module" validate:"gte=0"`
	Inputs      map[string]int `yaml:"inputs"`
}

// UpgradeCategory is the stat an upgrade raises.
type UpgradeCategory string

const (
	UpgradeCargo  UpgradeCategory = "cargo"
	UpgradeWarp   UpgradeCategory = "warp"
	UpgradeModule UpgradeCategory = "module"
)

// Cost is a credits-plus-items price tag.
type Cost struct {
	Credits float64        `yaml:"credits" validate:"gte=0"`
	Items   map[string]int `yaml:"items"`
}

// Upgrade is a permanent ship installation. Requires lists upgrade ids
// that must all be installed first; installs are monotonic, there is no
// downgrade path.
type Upgrade struct {
	ID       string          `yaml:"id" validate:"required"`
	Category UpgradeCategory `yaml:"category" validate:"oneof=cargo warp module"`
	Name     string          `yaml:"name" validate:"required"`
	Icon     string          `yaml:"icon"`
	Desc     string          `yaml:"desc"`
	Effect   int             `yaml:"effect" validate:"gt=0"`
	Cost     Cost            `yaml:"cost"`
	Requires []string        `yaml:"requires"`
}

// BuildingLevel is one step of a building. A nil Cost marks the base
// level (or an unpriced placeholder the ledger refuses to buy).
type BuildingLevel struct {
	Level int    `yaml:"level" validate:"gt=0"`
	Label string `yaml:"label"`
	Cost  *Cost  `yaml:"cost"`
}

// Building is a base facility with upgradable levels.
type Building struct {
	ID        string          `yaml:"id" validate:"required"`
	Name      string          `yaml:"name" validate:"required"`
	Icon      string          `yaml:"icon"`
	Desc      string          `yaml:"desc"`
	Available bool            `yaml:"available"`
	Levels    []BuildingLevel `yaml:"levels" validate:"min=1,dive"`
}

// Balance carries the global tuning constants.
type Balance struct {
	BaseCargo     int     `yaml:"base_cargo" validate:"gt=0"`
	TravelSeconds float64 `yaml:"travel_seconds" validate:"gt=0"`
	StartLocation string  `yaml:"start_location" validate:"required"`
}
