package draft

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var (
	ErrDraftComplete     = errors.New("mock draft is complete")
	ErrPlayerUnavailable = errors.New("player is not available")
	ErrEmptyDraftOrder   = errors.New("draft order is empty")
	ErrMockDraftNotFound = errors.New("mock draft not found")
)

// Slot is one pick in the configured draft order.
type Slot struct {
	Pick    int
	Team    string
	GM      string
	Contact string
}

func (s Slot) Validate() error {
	if s.Pick <= 0 {
		return fmt.Errorf("draft slot pick must be greater than zero")
	}
	if strings.TrimSpace(s.Team) == "" {
		return fmt.Errorf("draft slot team is required")
	}
	return nil
}

// ValidateOrder checks every slot and requires unique pick numbers.
func ValidateOrder(slots []Slot) error {
	seen := make(map[int]struct{}, len(slots))
	for _, slot := range slots {
		if err := slot.Validate(); err != nil {
			return err
		}
		if _, ok := seen[slot.Pick]; ok {
			return fmt.Errorf("duplicate draft slot pick %d", slot.Pick)
		}
		seen[slot.Pick] = struct{}{}
	}
	return nil
}

// Selection is a pick in a mock draft. PlayerID is zero until the team picks.
type Selection struct {
	PickNumber int
	Team       string
	PlayerID   int64
	PickedAt   time.Time
}

func (s Selection) Made() bool {
	return s.PlayerID != 0
}

// MockDraft is an ephemeral draft session. Available keeps the prospect pool
// in its original order minus the players already taken.
type MockDraft struct {
	ID        string
	Picks     []Selection
	Available []int64
	Current   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMockDraft seeds a session from the draft order sorted by pick number.
func NewMockDraft(id string, order []Slot, pool []int64, now time.Time) (MockDraft, error) {
	if len(order) == 0 {
		return MockDraft{}, ErrEmptyDraftOrder
	}
	if err := ValidateOrder(order); err != nil {
		return MockDraft{}, err
	}

	sorted := slices.Clone(order)
	slices.SortStableFunc(sorted, func(a, b Slot) int { return a.Pick - b.Pick })

	picks := make([]Selection, 0, len(sorted))
	for _, slot := range sorted {
		picks = append(picks, Selection{PickNumber: slot.Pick, Team: slot.Team})
	}

	return MockDraft{
		ID:        id,
		Picks:     picks,
		Available: slices.Clone(pool),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (d MockDraft) IsComplete() bool {
	return d.Current >= len(d.Picks)
}

// OnTheClock returns the pick waiting for a selection.
func (d MockDraft) OnTheClock() (Selection, bool) {
	if d.IsComplete() {
		return Selection{}, false
	}
	return d.Picks[d.Current], true
}

func (d MockDraft) IsAvailable(playerID int64) bool {
	return slices.Contains(d.Available, playerID)
}

// Pick assigns playerID to the team on the clock, removes the player from the
// pool and advances to the next pick.
func (d *MockDraft) Pick(playerID int64, now time.Time) (Selection, error) {
	if d.IsComplete() {
		return Selection{}, ErrDraftComplete
	}
	idx := slices.Index(d.Available, playerID)
	if idx < 0 {
		return Selection{}, fmt.Errorf("%w: %d", ErrPlayerUnavailable, playerID)
	}

	d.Available = slices.Delete(d.Available, idx, idx+1)
	d.Picks[d.Current].PlayerID = playerID
	d.Picks[d.Current].PickedAt = now
	selection := d.Picks[d.Current]
	d.Current++
	d.UpdatedAt = now

	return selection, nil
}

// Clone returns a deep copy safe to hand out of a repository.
func (d MockDraft) Clone() MockDraft {
	d.Picks = slices.Clone(d.Picks)
	d.Available = slices.Clone(d.Available)
	return d
}
