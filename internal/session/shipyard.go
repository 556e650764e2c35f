package session

import (
	"errors"
	"fmt"

	"github.com/talgya/stardrift/internal/ledger"
)

// BuyUpgrade installs a ship upgrade. Already-installed and missing
// prerequisites reject silently (the front end never offers those);
// an uncovered cost rejects with a player-visible notice. The deduction
// is all-or-nothing.
func (s *Session) BuyUpgrade(upgradeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	up, ok := s.reg.UpgradeByID(upgradeID)
	if !ok {
		return fmt.Errorf("upgrade %q: %w", upgradeID, ErrNotFound)
	}
	if err := s.ledger.InstallUpgrade(up); err != nil {
		switch {
		case errors.Is(err, ledger.ErrInsufficientCredits):
			s.toast("Not enough credits.", "❌", colorReject)
		case errors.Is(err, ledger.ErrInsufficientItems):
			s.toast("Not enough materials.", "❌", colorReject)
		}
		return err
	}

	s.toast(fmt.Sprintf("%s installed!", up.Name), up.Icon, colorRefine)
	s.logf("🔧 %s installed", up.Name)
	return nil
}

// UpgradeBuilding raises a base building to its next level.
func (s *Session) UpgradeBuilding(buildingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.reg.BuildingByID(buildingID)
	if !ok {
		return fmt.Errorf("building %q: %w", buildingID, ErrNotFound)
	}
	next, err := s.ledger.UpgradeBuilding(b)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInsufficientCredits):
			s.toast("Not enough credits.", "❌", colorReject)
		case errors.Is(err, ledger.ErrInsufficientItems):
			s.toast("Not enough materials.", "❌", colorReject)
		}
		return err
	}

	s.toast(fmt.Sprintf("%s upgraded to Level %d!", b.Name, next), b.Icon, colorRefine)
	s.logf("🏗 %s → Level %d", b.Name, next)
	return nil
}

// UnloadCargo resets the hold counter. An explicit player action,
// distinct from selling: the hold tracks intake capacity, not stock.
func (s *Session) UnloadCargo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.UnloadCargo()
	s.logf("📦 Cargo unloaded")
}
