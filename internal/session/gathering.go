package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/talgya/stardrift/internal/ledger"
)

// gatherProcess is the state machine shared by mining and salvaging:
// a time accumulator against one material, with an optional bounded
// action count. Process state is ephemeral and never persisted.
type gatherProcess struct {
	sectorID    string // empty for salvaging
	itemID      string
	timeSeconds float64
	amount      int

	elapsed     time.Duration
	completions int
	target      int // 0 = unbounded
}

func (p *gatherProcess) required() time.Duration {
	return time.Duration(p.timeSeconds * float64(time.Second))
}

// Progress is the fraction of the current action completed, in [0, 1).
func (p *gatherProcess) Progress() float64 {
	f := float64(p.elapsed) / float64(p.required())
	if f >= 1 {
		return 1
	}
	return f
}

// gatherProfile carries the per-skill differences between the two
// gathering processes.
type gatherProfile struct {
	xpRate    float64
	actionIco string
	color     string
	verb      string // "Mining" / "Salvaging"
	doneVerb  string // "mined" / "salvaged"
}

var gatherProfiles = map[string]gatherProfile{
	SkillMining:    {miningXPRate, "⛏️", colorMining, "Mining", "mined"},
	SkillSalvaging: {salvagingXPRate, "🔩", colorSalvage, "Salvaging", "salvaged"},
}

// StartMining starts a mining process on one (sector, material) pair.
// Starting the pair that is already active is a stop command (toggle);
// starting a different pair replaces the active process. The sector's
// warp gate applies, and a full hold rejects the start outright.
// target bounds the run to that many actions; 0 runs until stopped.
func (s *Session) StartMining(sectorID, itemID string, target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.mining; p != nil && p.sectorID == sectorID && p.itemID == itemID {
		s.mining = nil
		s.logf("⏹ Mining stopped")
		return nil
	}

	sector, ok := s.reg.SectorByID(sectorID)
	if !ok {
		return fmt.Errorf("sector %q: %w", sectorID, ErrNotFound)
	}
	if sector.ReqWarp > s.ledger.WarpLevel() {
		return fmt.Errorf("sector %q needs warp %d: %w", sectorID, sector.ReqWarp, ErrLocked)
	}
	mat, ok := s.reg.MaterialInSector(sectorID, itemID)
	if !ok {
		return fmt.Errorf("material %q in sector %q: %w", itemID, sectorID, ErrNotFound)
	}
	if s.ledger.Cargo() >= s.ledger.MaxCargo() {
		return ledger.ErrCargoFull
	}

	s.mining = &gatherProcess{
		sectorID:    sectorID,
		itemID:      itemID,
		timeSeconds: mat.TimeSeconds,
		amount:      mat.Amount,
		target:      target,
	}
	item, _ := s.reg.ItemByID(itemID)
	if target > 0 {
		s.logf("▶ Mining: %s %s in %s (×%d)", item.Icon, item.Name, sector.Name, target)
	} else {
		s.logf("▶ Mining: %s %s in %s", item.Icon, item.Name, sector.Name)
	}
	return nil
}

// StopMining stops any active mining process. Stopping an idle process
// is a no-op.
func (s *Session) StopMining() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mining == nil {
		return
	}
	s.mining = nil
	s.logf("⏹ Mining stopped")
}

// StartSalvaging starts a salvaging process on one material from the
// salvage table. Same toggle and cargo semantics as mining; salvaging
// has no sector or warp gate.
func (s *Session) StartSalvaging(itemID string, target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p := s.salvaging; p != nil && p.itemID == itemID {
		s.salvaging = nil
		s.logf("⏹ Salvaging stopped")
		return nil
	}

	mat, ok := s.reg.SalvageMaterial(itemID)
	if !ok {
		return fmt.Errorf("salvage material %q: %w", itemID, ErrNotFound)
	}
	if s.ledger.Cargo() >= s.ledger.MaxCargo() {
		return ledger.ErrCargoFull
	}

	s.salvaging = &gatherProcess{
		itemID:      itemID,
		timeSeconds: mat.TimeSeconds,
		amount:      mat.Amount,
		target:      target,
	}
	item, _ := s.reg.ItemByID(itemID)
	if target > 0 {
		s.logf("▶ Salvaging: %s %s (×%d)", item.Icon, item.Name, target)
	} else {
		s.logf("▶ Salvaging: %s %s", item.Icon, item.Name)
	}
	return nil
}

// StopSalvaging stops any active salvaging process.
func (s *Session) StopSalvaging() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.salvaging == nil {
		return
	}
	s.salvaging = nil
	s.logf("⏹ Salvaging stopped")
}

// advanceGathering is the per-tick reducer for both gathering skills.
// At most one action completes per tick. A completion that would
// overflow the hold discards the process entirely: no reward, no
// progress reset, one warning to the player.
func (s *Session) advanceGathering(slot **gatherProcess, skill string, delta time.Duration) {
	p := *slot
	if p == nil {
		return
	}
	prof := gatherProfiles[skill]

	p.elapsed += delta
	if p.elapsed < p.required() {
		return
	}

	item, ok := s.reg.ItemByID(p.itemID)
	if !ok {
		// Content updated underneath a live process. Fatal to this
		// process only.
		slog.Warn("gathering target no longer exists, stopping", "skill", skill, "item", p.itemID)
		*slot = nil
		return
	}

	if err := s.ledger.AddToCargo(p.itemID, p.amount); err != nil {
		*slot = nil
		s.toast("Cargo hold full!", "📦", colorMining)
		s.logf("📦 Cargo full — %s stopped", skill)
		return
	}

	p.elapsed = 0
	p.completions++
	s.awardXP(skill, p.timeSeconds*prof.xpRate)
	if skill == SkillMining {
		s.stats.MiningActions++
	} else {
		s.stats.SalvageActions++
	}
	s.logf("%s %s %s +%d", prof.actionIco, item.Icon, item.Name, p.amount)

	if p.target > 0 && p.completions >= p.target {
		*slot = nil
		s.toast(fmt.Sprintf("%d× %s %s!", p.completions, item.Name, prof.doneVerb), "✅", prof.color)
		s.logf("✅ %s run complete — %d actions", prof.verb, p.completions)
	}
}
