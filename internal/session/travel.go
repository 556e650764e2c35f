package session

import (
	"fmt"
	"time"
)

// travelProcess is the single in-flight journey. Travel duration is a
// global balance constant, independent of destination.
type travelProcess struct {
	destID  string
	elapsed time.Duration
	seconds float64
}

func (t *travelProcess) required() time.Duration {
	return time.Duration(t.seconds * float64(time.Second))
}

// Progress is the fraction of the journey completed, in [0, 1).
func (t *travelProcess) Progress() float64 {
	f := float64(t.elapsed) / float64(t.required())
	if f >= 1 {
		return 1
	}
	return f
}

// StartTravel begins a journey to a sector. Rejected while a journey is
// in flight or when already at the destination; the warp gate applies.
// Departure force-stops any active mining — the ship must be stationary
// to mine. Salvaging and refining keep running.
func (s *Session) StartTravel(destID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.travel != nil {
		return fmt.Errorf("travel: %w", ErrBusy)
	}
	if destID == s.location {
		return fmt.Errorf("travel to %q: %w", destID, ErrAlreadyThere)
	}
	dest, ok := s.reg.SectorByID(destID)
	if !ok {
		return fmt.Errorf("destination %q: %w", destID, ErrNotFound)
	}
	if dest.ReqWarp > s.ledger.WarpLevel() {
		return fmt.Errorf("destination %q needs warp %d: %w", destID, dest.ReqWarp, ErrLocked)
	}

	if s.mining != nil {
		s.mining = nil
		s.logf("⏹ Mining stopped — departure")
	}

	s.travel = &travelProcess{
		destID:  destID,
		seconds: s.reg.Balance().TravelSeconds,
	}
	s.logf("🚀 Travel to %s started", dest.Name)
	return nil
}

// Travelling reports whether a journey is in flight.
func (s *Session) Travelling() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.travel != nil
}

// advanceTravel moves the journey forward; on arrival the location
// flips to the destination and the slot clears.
func (s *Session) advanceTravel(delta time.Duration) {
	t := s.travel
	if t == nil {
		return
	}

	t.elapsed += delta
	if t.elapsed < t.required() {
		return
	}

	s.location = t.destID
	s.travel = nil
	dest, ok := s.reg.SectorByID(t.destID)
	name, icon := t.destID, "🚀"
	if ok {
		name, icon = dest.Name, dest.Icon
	}
	s.toast(fmt.Sprintf("Arrived: %s", name), icon, colorTravel)
	s.logf("🚀 Arrived: %s", name)
}
