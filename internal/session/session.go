// Package session implements the simulation core: one Session owns the
// resource ledger, the skill experience scalars and the four activity
// processes (mining, salvaging, refining, travel), and advances them on
// every engine tick.
//
// All public methods take the session mutex. The tick goroutine and
// command callers (CLI, HTTP API) therefore serialize on it, which is
// what keeps the cargo check-and-increment atomic when two gathering
// processes complete on the same tick.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/talgya/stardrift/internal/content"
	"github.com/talgya/stardrift/internal/events"
	"github.com/talgya/stardrift/internal/ledger"
	"github.com/talgya/stardrift/internal/progression"
)

// Skill identifiers. Each skill has its own xp scalar on the shared
// curve.
const (
	SkillMining    = "mining"
	SkillSalvaging = "salvaging"
)

// XP per completed action is the action's time cost scaled per skill.
const (
	miningXPRate    = 0.8
	salvagingXPRate = 0.2
)

var skillLabels = map[string]string{
	SkillMining:    "Mining",
	SkillSalvaging: "Salvaging",
}

// Notification colors, matching the front-end palette.
const (
	colorMining  = "#e8a838"
	colorSalvage = "#3fa7d6"
	colorRefine  = "#5ec26a"
	colorTravel  = "#5bc4e8"
	colorCredits = "#f1c40f"
	colorReject  = "#e05252"
)

// Stats aggregates session activity for summary logging.
type Stats struct {
	MiningActions  int     `json:"mining_actions"`
	SalvageActions int     `json:"salvage_actions"`
	ItemsRefined   int     `json:"items_refined"`
	ItemsSold      int     `json:"items_sold"`
	CreditsEarned  float64 `json:"credits_earned"`
}

// Session is the single owner of all mutable game state.
type Session struct {
	mu sync.Mutex

	reg    *content.Registry
	ledger *ledger.Ledger
	skills map[string]float64

	location string

	mining    *gatherProcess
	salvaging *gatherProcess
	refinery  []refineJob
	travel    *travelProcess

	sink  events.Sink
	ticks uint64
	stats Stats
}

// New creates a fresh session at the start location with an empty
// ledger. The sink receives every notification; pass events.Discard to
// run silent.
func New(reg *content.Registry, sink events.Sink) *Session {
	return &Session{
		reg:      reg,
		ledger:   ledger.New(reg),
		skills:   map[string]float64{SkillMining: 0, SkillSalvaging: 0},
		location: reg.Balance().StartLocation,
		sink:     sink,
	}
}

// Advance moves every active process forward by delta. Called once per
// engine tick; a session with nothing active is a no-op. Processes
// advance in a fixed order, but only the shared cargo counter makes
// order observable, and that is serialized by running under one lock.
func (s *Session) Advance(delta time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticks++
	s.advanceGathering(&s.mining, SkillMining, delta)
	s.advanceGathering(&s.salvaging, SkillSalvaging, delta)
	s.advanceRefinery(delta)
	s.advanceTravel(delta)
}

// Tick returns the number of ticks processed so far.
func (s *Session) Tick() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// Location returns the current location id.
func (s *Session) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

// SkillXP returns the raw xp scalar for a skill.
func (s *Session) SkillXP(skill string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.skills[skill]
}

// SkillLevel returns the level for a skill.
func (s *Session) SkillLevel(skill string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return progression.Level(s.skills[skill])
}

// TotalLevel is the sum of all skill levels; it drives the pilot rank.
func (s *Session) TotalLevel() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLevelLocked()
}

func (s *Session) totalLevelLocked() int {
	total := 0
	for _, xp := range s.skills {
		total += progression.Level(xp)
	}
	return total
}

// Ledger exposes the resource ledger for read access in tests and
// wiring. Mutations must go through session commands.
func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

// awardXP adds xp to a skill and emits a level-up toast when a level
// boundary is crossed.
func (s *Session) awardXP(skill string, xp float64) {
	before := progression.Level(s.skills[skill])
	s.skills[skill] += xp
	after := progression.Level(s.skills[skill])
	if after > before {
		s.toast(fmt.Sprintf("%s reached Level %d!", skillLabels[skill], after), "🎉", colorMining)
	}
}

func (s *Session) toast(msg, icon, color string) {
	s.sink.Notify(events.Notification{
		Kind:    events.KindToast,
		Message: msg,
		Icon:    icon,
		Color:   color,
		At:      time.Now(),
	})
}

func (s *Session) logf(format string, args ...any) {
	s.sink.Notify(events.Notification{
		Kind:    events.KindLog,
		Message: fmt.Sprintf(format, args...),
		At:      time.Now(),
	})
}

// LogSummary writes a one-line aggregate of the session to the
// structured log. The engine calls it on its summary cadence.
func (s *Session) LogSummary(log func(msg string, args ...any)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := 0
	if s.mining != nil {
		active++
	}
	if s.salvaging != nil {
		active++
	}
	if len(s.refinery) > 0 {
		active++
	}
	if s.travel != nil {
		active++
	}
	log("session summary",
		"tick", s.ticks,
		"location", s.location,
		"credits", events.FormatCredits(s.ledger.Credits()),
		"cargo", fmt.Sprintf("%d/%d", s.ledger.Cargo(), s.ledger.MaxCargo()),
		"mining_level", progression.Level(s.skills[SkillMining]),
		"salvaging_level", progression.Level(s.skills[SkillSalvaging]),
		"active_processes", active,
		"mining_actions", s.stats.MiningActions,
		"salvage_actions", s.stats.SalvageActions,
		"items_refined", s.stats.ItemsRefined,
	)
}
