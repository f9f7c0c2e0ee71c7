package prospect

import (
	"fmt"
	"strings"
)

// Prospect is a draft-eligible player's biographical record. Height is in
// inches and weight in pounds.
type Prospect struct {
	PlayerID        int64
	Name            string
	FirstName       string
	LastName        string
	BirthDate       string
	Height          float64
	Weight          float64
	HighSchool      string
	HighSchoolState string
	HomeTown        string
	HomeState       string
	HomeCountry     string
	Nationality     string
	PhotoURL        string
	CurrentTeam     string
	League          string
	LeagueType      string
}

func (p Prospect) Validate() error {
	if p.PlayerID <= 0 {
		return fmt.Errorf("prospect id must be greater than zero")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("prospect name is required")
	}
	if p.Height < 0 {
		return fmt.Errorf("prospect height must not be negative")
	}
	if p.Weight < 0 {
		return fmt.Errorf("prospect weight must not be negative")
	}

	return nil
}

// Matches reports whether query appears, case-insensitively, in the name,
// current team or league. An empty query matches everything.
func (p Prospect) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.CurrentTeam), q) ||
		strings.Contains(strings.ToLower(p.League), q)
}

// Measurement holds combine results. Nil means not measured.
type Measurement struct {
	PlayerID       int64
	HeightNoShoes  *float64
	HeightShoes    *float64
	Wingspan       *float64
	Reach          *float64
	MaxVertical    *float64
	NoStepVertical *float64
	Weight         *float64
	BodyFat        *float64
	HandLength     *float64
	HandWidth      *float64
	Agility        *float64
	Sprint         *float64
	ShuttleLeft    *float64
	ShuttleRight   *float64
	ShuttleBest    *float64
}

func (m Measurement) Validate() error {
	if m.PlayerID <= 0 {
		return fmt.Errorf("measurement player id must be greater than zero")
	}
	return nil
}

// Filter returns the prospects matching query in input order.
func Filter(items []Prospect, query string) []Prospect {
	out := make([]Prospect, 0, len(items))
	for _, item := range items {
		if item.Matches(query) {
			out = append(out, item)
		}
	}
	return out
}
