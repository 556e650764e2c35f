package session

import (
	"github.com/talgya/stardrift/internal/persistence"
)

// Snapshot captures the persistable slice of the session. Active
// processes, queue contents and the current location are excluded on
// purpose: a reload puts the ship back at idle.
func (s *Session) Snapshot() persistence.SaveData {
	s.mu.Lock()
	defer s.mu.Unlock()

	skills := make(map[string]float64, len(s.skills))
	for id, xp := range s.skills {
		skills[id] = xp
	}
	return persistence.SaveData{
		Inventory:         s.ledger.Inventory(),
		Credits:           s.ledger.Credits(),
		SkillXP:           skills,
		Cargo:             s.ledger.Cargo(),
		InstalledUpgrades: s.ledger.Installed(),
		BuildingLevels:    s.ledger.BuildingLevels(),
	}
}

// RestoreSave overwrites resources, skills and unlocks from a save.
// All four processes reset to idle and the ship returns to the start
// location.
func (s *Session) RestoreSave(data persistence.SaveData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger.Restore(data.Inventory, data.Credits, data.Cargo, data.InstalledUpgrades, data.BuildingLevels)
	for id := range s.skills {
		if xp, ok := data.SkillXP[id]; ok && xp > 0 {
			s.skills[id] = xp
		}
	}
	s.mining = nil
	s.salvaging = nil
	s.refinery = nil
	s.travel = nil
	s.location = s.reg.Balance().StartLocation
}
