// Package ledger owns the player's resources: the inventory, the
// credits balance, the cargo occupancy counter, installed ship upgrades
// and building levels. It is the only place these values mutate, and
// every mutation is a check-then-act pair with no rollback step.
//
// The ledger is not safe for concurrent use on its own; the session
// serializes access.
package ledger

import (
	"sort"

	"github.com/talgya/stardrift/internal/content"
)

// Ledger is the mutable resource state for one play session.
type Ledger struct {
	reg       *content.Registry
	inventory map[string]int
	credits   float64
	cargo     int
	installed map[string]bool
	buildings map[string]int
}

// New creates an empty ledger against the given content registry.
// Every available building starts at level 1.
func New(reg *content.Registry) *Ledger {
	l := &Ledger{
		reg:       reg,
		inventory: make(map[string]int),
		installed: make(map[string]bool),
		buildings: make(map[string]int),
	}
	for _, b := range reg.Buildings() {
		if b.Available {
			l.buildings[b.ID] = 1
		}
	}
	return l
}

// Credits returns the current balance.
func (l *Ledger) Credits() float64 { return l.credits }

// Cargo returns the current hold occupancy.
func (l *Ledger) Cargo() int { return l.cargo }

// ItemCount returns the inventory quantity for an item; absent and
// zero are equivalent.
func (l *Ledger) ItemCount(id string) int { return l.inventory[id] }

// HasUpgrade reports whether an upgrade is installed.
func (l *Ledger) HasUpgrade(id string) bool { return l.installed[id] }

// BuildingLevel returns a building's level, 0 if not built.
func (l *Ledger) BuildingLevel(id string) int { return l.buildings[id] }

// Credit adds to the balance.
func (l *Ledger) Credit(amount float64) {
	l.credits += amount
}

// Debit removes from the balance, refusing to go negative.
func (l *Ledger) Debit(amount float64) error {
	if l.credits < amount {
		return ErrInsufficientCredits
	}
	l.credits -= amount
	return nil
}

// AddItems increments the inventory without touching cargo. Refining
// output enters through here: refined goods do not occupy the hold.
func (l *Ledger) AddItems(id string, qty int) {
	l.inventory[id] += qty
}

// AddToCargo increments inventory and the cargo counter together.
// Gathering output enters through here. The capacity check runs before
// any mutation: an add that would exceed MaxCargo is rejected whole,
// never partially applied.
func (l *Ledger) AddToCargo(id string, qty int) error {
	if l.cargo+qty > l.MaxCargo() {
		return ErrCargoFull
	}
	l.cargo += qty
	l.inventory[id] += qty
	return nil
}

// RemoveItems decrements the inventory, failing if the quantity held
// is short. Does not touch cargo: the hold counter tracks intake, not
// stock.
func (l *Ledger) RemoveItems(id string, qty int) error {
	if l.inventory[id] < qty {
		return ErrInsufficientItems
	}
	l.inventory[id] -= qty
	if l.inventory[id] == 0 {
		delete(l.inventory, id)
	}
	return nil
}

// ConsumeItems removes a set of items atomically: either every
// quantity is available and all are deducted, or nothing changes.
func (l *Ledger) ConsumeItems(items map[string]int) error {
	for id, qty := range items {
		if l.inventory[id] < qty {
			return ErrInsufficientItems
		}
	}
	for id, qty := range items {
		l.inventory[id] -= qty
		if l.inventory[id] == 0 {
			delete(l.inventory, id)
		}
	}
	return nil
}

// CanAfford checks a cost without paying it.
func (l *Ledger) CanAfford(cost content.Cost) error {
	if l.credits < cost.Credits {
		return ErrInsufficientCredits
	}
	for id, qty := range cost.Items {
		if l.inventory[id] < qty {
			return ErrInsufficientItems
		}
	}
	return nil
}

// payCost deducts a cost the caller has already verified with CanAfford.
func (l *Ledger) payCost(cost content.Cost) {
	l.credits -= cost.Credits
	for id, qty := range cost.Items {
		l.inventory[id] -= qty
		if l.inventory[id] == 0 {
			delete(l.inventory, id)
		}
	}
}

// InstallUpgrade validates prerequisites and cost, then pays and
// installs atomically. Installing an already-installed upgrade is a
// no-op failure.
func (l *Ledger) InstallUpgrade(up content.Upgrade) error {
	if l.installed[up.ID] {
		return ErrAlreadyInstalled
	}
	for _, req := range up.Requires {
		if !l.installed[req] {
			return ErrPrereqMissing
		}
	}
	if err := l.CanAfford(up.Cost); err != nil {
		return err
	}
	l.payCost(up.Cost)
	l.installed[up.ID] = true
	return nil
}

// UpgradeBuilding advances a building to its next level if that level
// exists, is priced, and the cost is covered.
func (l *Ledger) UpgradeBuilding(b content.Building) (int, error) {
	next := l.buildings[b.ID] + 1
	var lvl *content.BuildingLevel
	for i := range b.Levels {
		if b.Levels[i].Level == next {
			lvl = &b.Levels[i]
			break
		}
	}
	if lvl == nil || lvl.Cost == nil {
		return 0, ErrMaxLevel
	}
	if err := l.CanAfford(*lvl.Cost); err != nil {
		return 0, err
	}
	l.payCost(*lvl.Cost)
	l.buildings[b.ID] = next
	return next, nil
}

// SellAll sells the entire current stock of a recipe's output at its
// sell price. Selling an empty stock is a no-op returning (0, 0).
func (l *Ledger) SellAll(rec content.Recipe) (qty int, earned float64) {
	qty = l.inventory[rec.ID]
	if qty == 0 {
		return 0, 0
	}
	earned = float64(qty) * rec.SellPrice
	delete(l.inventory, rec.ID)
	l.credits += earned
	return qty, earned
}

// UnloadCargo resets the hold counter. The inventory is untouched:
// unloading moves goods out of the hold, it does not discard them.
func (l *Ledger) UnloadCargo() {
	l.cargo = 0
}

// WarpLevel is the highest warp effect among installed upgrades,
// 0 with none. Recomputed on every access so a mid-session install is
// never stale.
func (l *Ledger) WarpLevel() int {
	return l.maxEffect(content.UpgradeWarp)
}

// ModuleLevel is the highest module effect among installed upgrades.
func (l *Ledger) ModuleLevel() int {
	return l.maxEffect(content.UpgradeModule)
}

// MaxCargo is the hold capacity: base plus the sum of installed cargo
// upgrade effects.
func (l *Ledger) MaxCargo() int {
	max := l.reg.Balance().BaseCargo
	for _, up := range l.reg.Upgrades() {
		if up.Category == content.UpgradeCargo && l.installed[up.ID] {
			max += up.Effect
		}
	}
	return max
}

func (l *Ledger) maxEffect(cat content.UpgradeCategory) int {
	best := 0
	for _, up := range l.reg.Upgrades() {
		if up.Category == cat && l.installed[up.ID] && up.Effect > best {
			best = up.Effect
		}
	}
	return best
}

// Inventory returns a copy of the non-zero item counts.
func (l *Ledger) Inventory() map[string]int {
	out := make(map[string]int, len(l.inventory))
	for id, qty := range l.inventory {
		if qty > 0 {
			out[id] = qty
		}
	}
	return out
}

// Installed returns the installed upgrade ids, sorted.
func (l *Ledger) Installed() []string {
	out := make([]string, 0, len(l.installed))
	for id := range l.installed {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// BuildingLevels returns a copy of the building level map.
func (l *Ledger) BuildingLevels() map[string]int {
	out := make(map[string]int, len(l.buildings))
	for id, lvl := range l.buildings {
		out[id] = lvl
	}
	return out
}

// Restore overwrites the ledger from persisted state. Negative counts
// and unknown upgrades are dropped rather than trusted: a save written
// against older content must not corrupt the session.
func (l *Ledger) Restore(inventory map[string]int, credits float64, cargo int, installed []string, buildings map[string]int) {
	l.inventory = make(map[string]int, len(inventory))
	for id, qty := range inventory {
		if qty > 0 {
			l.inventory[id] = qty
		}
	}
	if credits > 0 {
		l.credits = credits
	} else {
		l.credits = 0
	}
	l.cargo = 0
	if cargo > 0 {
		l.cargo = cargo
	}
	l.installed = make(map[string]bool, len(installed))
	for _, id := range installed {
		if _, ok := l.reg.UpgradeByID(id); ok {
			l.installed[id] = true
		}
	}
	if l.cargo > l.MaxCargo() {
		l.cargo = l.MaxCargo()
	}
	for id, lvl := range buildings {
		if _, ok := l.reg.BuildingByID(id); ok && lvl > l.buildings[id] {
			l.buildings[id] = lvl
		}
	}
}
