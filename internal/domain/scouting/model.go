package scouting

import (
	"fmt"
	"strings"
	"time"
)

// Scout identifies one external ranking source.
type Scout string

const (
	ScoutESPN         Scout = "ESPN"
	ScoutSamVecenie   Scout = "Sam Vecenie"
	ScoutKevinOConnor Scout = "Kevin O'Connor"
	ScoutKyleBoone    Scout = "Kyle Boone"
	ScoutGaryParrish  Scout = "Gary Parrish"
)

// Scouts lists every ranking source in display order.
var Scouts = []Scout{ScoutESPN, ScoutSamVecenie, ScoutKevinOConnor, ScoutKyleBoone, ScoutGaryParrish}

// ScoutRanking holds each scout's big-board rank for one player. A nil rank
// means that scout did not rank the player.
type ScoutRanking struct {
	PlayerID     int64
	ESPN         *int
	SamVecenie   *int
	KevinOConnor *int
	KyleBoone    *int
	GaryParrish  *int
}

func (r ScoutRanking) Rank(scout Scout) *int {
	switch scout {
	case ScoutESPN:
		return r.ESPN
	case ScoutSamVecenie:
		return r.SamVecenie
	case ScoutKevinOConnor:
		return r.KevinOConnor
	case ScoutKyleBoone:
		return r.KyleBoone
	case ScoutGaryParrish:
		return r.GaryParrish
	default:
		return nil
	}
}

func (r ScoutRanking) Validate() error {
	if r.PlayerID <= 0 {
		return fmt.Errorf("scout ranking player id must be greater than zero")
	}
	for _, scout := range Scouts {
		if rank := r.Rank(scout); rank != nil && *rank <= 0 {
			return fmt.Errorf("scout ranking %s must be greater than zero", scout)
		}
	}
	return nil
}

// Report is a published external scouting write-up.
type Report struct {
	ReportID string
	PlayerID int64
	Scout    string
	Body     string
}

// Note is an internal scout note. Notes live only in process memory.
type Note struct {
	ID        string
	PlayerID  int64
	Author    string
	Body      string
	CreatedAt time.Time
}

func (n Note) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("note id is required")
	}
	if n.PlayerID <= 0 {
		return fmt.Errorf("note player id must be greater than zero")
	}
	if strings.TrimSpace(n.Body) == "" {
		return fmt.Errorf("note body is required")
	}
	return nil
}
