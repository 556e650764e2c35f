package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/talgya/stardrift/internal/events"
)

// refineJob is one pending queue entry. Its inputs were deducted when
// it was enqueued, so a waiting job has already reserved its materials.
type refineJob struct {
	recipeID string
	elapsed  time.Duration
}

// QueueRecipe enqueues one refining job. The module gate is checked
// first; then every input is deducted atomically — either the whole
// cost is paid and exactly one queue entry appears, or nothing changes.
// Deducting at enqueue time prevents double-spend between jobs queued
// back to back.
func (s *Session) QueueRecipe(recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.reg.RecipeByID(recipeID)
	if !ok {
		return fmt.Errorf("recipe %q: %w", recipeID, ErrNotFound)
	}
	if rec.ReqModule > s.ledger.ModuleLevel() {
		return fmt.Errorf("recipe %q needs module %d: %w", recipeID, rec.ReqModule, ErrLocked)
	}
	if err := s.ledger.ConsumeItems(rec.Inputs); err != nil {
		s.toast("Not enough materials.", "❌", colorReject)
		return err
	}

	s.refinery = append(s.refinery, refineJob{recipeID: recipeID})
	item, _ := s.reg.ItemByID(recipeID)
	s.logf("⚗️ %s %s queued", item.Icon, item.Name)
	return nil
}

// RefineryQueueLen returns the number of pending jobs.
func (s *Session) RefineryQueueLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.refinery)
}

// SellAll sells the entire stock of a recipe's output. An empty stock
// is a silent no-op: no credit change, no notification.
func (s *Session) SellAll(recipeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.reg.RecipeByID(recipeID)
	if !ok {
		return fmt.Errorf("recipe %q: %w", recipeID, ErrNotFound)
	}
	qty, earned := s.ledger.SellAll(rec)
	if qty == 0 {
		return nil
	}
	s.stats.ItemsSold += qty
	s.stats.CreditsEarned += earned
	item, _ := s.reg.ItemByID(recipeID)
	s.logf("💰 %d× %s sold → +%s CR", qty, item.Name, events.FormatCredits(earned))
	s.toast(fmt.Sprintf("+%s Credits", events.FormatCredits(earned)), "💰", colorCredits)
	return nil
}

// advanceRefinery advances the queue head only; waiting entries hold
// their reserved inputs until they reach the front. Output is not
// cargo-gated: refining fills the inventory, not the hold.
func (s *Session) advanceRefinery(delta time.Duration) {
	if len(s.refinery) == 0 {
		return
	}
	head := &s.refinery[0]

	rec, ok := s.reg.RecipeByID(head.recipeID)
	if !ok {
		// Recipe removed by a content update; drop the job. The inputs
		// are lost with it — same as the reference behavior.
		slog.Warn("refinery job references unknown recipe, dropping", "recipe", head.recipeID)
		s.refinery = s.refinery[1:]
		return
	}

	head.elapsed += delta
	if head.elapsed < time.Duration(rec.TimeSeconds*float64(time.Second)) {
		return
	}

	s.ledger.AddItems(rec.ID, 1)
	s.stats.ItemsRefined++
	item, _ := s.reg.ItemByID(rec.ID)
	s.logf("⚗️ %s %s completed", item.Icon, item.Name)

	s.refinery = s.refinery[1:]
	if len(s.refinery) == 0 {
		s.toast("Refinery queue complete.", "⚗️", colorRefine)
	}
}
