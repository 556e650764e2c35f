package session

import (
	"github.com/talgya/stardrift/internal/progression"
)

// SkillState is the derived view of one skill.
type SkillState struct {
	XP       float64 `json:"xp"`
	Level    int     `json:"level"`
	Progress float64 `json:"progress"`
	XPToNext float64 `json:"xp_to_next"`
}

// ProcessState is the read-only view of a gathering process.
type ProcessState struct {
	SectorID    string  `json:"sector_id,omitempty"`
	ItemID      string  `json:"item_id"`
	Progress    float64 `json:"progress"`
	Completions int     `json:"completions"`
	Target      int     `json:"target,omitempty"`
}

// TravelState is the read-only view of an in-flight journey.
type TravelState struct {
	Destination string  `json:"destination"`
	Progress    float64 `json:"progress"`
}

// QueueEntry is the read-only view of one refinery job.
type QueueEntry struct {
	RecipeID string  `json:"recipe_id"`
	Progress float64 `json:"progress"`
}

// State is a consistent snapshot of the whole session, taken under the
// session lock, for the API and CLI to render.
type State struct {
	Tick        uint64                `json:"tick"`
	Location    string                `json:"location"`
	Credits     float64               `json:"credits"`
	Cargo       int                   `json:"cargo"`
	MaxCargo    int                   `json:"max_cargo"`
	WarpLevel   int                   `json:"warp_level"`
	ModuleLevel int                   `json:"module_level"`
	Rank        string                `json:"rank"`
	Inventory   map[string]int        `json:"inventory"`
	Skills      map[string]SkillState `json:"skills"`
	Installed   []string              `json:"installed"`
	Buildings   map[string]int        `json:"buildings"`
	Mining      *ProcessState         `json:"mining,omitempty"`
	Salvaging   *ProcessState         `json:"salvaging,omitempty"`
	Travel      *TravelState          `json:"travel,omitempty"`
	Refinery    []QueueEntry          `json:"refinery"`
	Stats       Stats                 `json:"stats"`
}

// State snapshots the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	skills := make(map[string]SkillState, len(s.skills))
	for id, xp := range s.skills {
		skills[id] = SkillState{
			XP:       xp,
			Level:    progression.Level(xp),
			Progress: progression.ProgressFraction(xp),
			XPToNext: progression.XPToNext(xp),
		}
	}

	st := State{
		Tick:        s.ticks,
		Location:    s.location,
		Credits:     s.ledger.Credits(),
		Cargo:       s.ledger.Cargo(),
		MaxCargo:    s.ledger.MaxCargo(),
		WarpLevel:   s.ledger.WarpLevel(),
		ModuleLevel: s.ledger.ModuleLevel(),
		Rank:        progression.RankFor(s.totalLevelLocked()).Title,
		Inventory:   s.ledger.Inventory(),
		Skills:      skills,
		Installed:   s.ledger.Installed(),
		Buildings:   s.ledger.BuildingLevels(),
		Refinery:    make([]QueueEntry, 0, len(s.refinery)),
		Stats:       s.stats,
	}

	if p := s.mining; p != nil {
		st.Mining = &ProcessState{
			SectorID:    p.sectorID,
			ItemID:      p.itemID,
			Progress:    p.Progress(),
			Completions: p.completions,
			Target:      p.target,
		}
	}
	if p := s.salvaging; p != nil {
		st.Salvaging = &ProcessState{
			ItemID:      p.itemID,
			Progress:    p.Progress(),
			Completions: p.completions,
			Target:      p.target,
		}
	}
	if t := s.travel; t != nil {
		st.Travel = &TravelState{Destination: t.destID, Progress: t.Progress()}
	}
	for i := range s.refinery {
		st.Refinery = append(st.Refinery, QueueEntry{
			RecipeID: s.refinery[i].recipeID,
			Progress: s.jobProgress(&s.refinery[i]),
		})
	}
	return st
}

func (s *Session) jobProgress(j *refineJob) float64 {
	rec, ok := s.reg.RecipeByID(j.recipeID)
	if !ok || rec.TimeSeconds <= 0 {
		return 0
	}
	f := j.elapsed.Seconds() / rec.TimeSeconds
	if f >= 1 {
		return 1
	}
	return f
}
