package dataset

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/draft"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/prospect"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/scouting"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/stats"
)

// ErrInvalidDataset marks every load failure caused by malformed records.
var ErrInvalidDataset = crerr.New("invalid dataset")

// Dataset is the immutable in-memory copy of every collection the service
// reads. Slices keep source order.
type Dataset struct {
	Prospects    []prospect.Prospect
	Measurements []prospect.Measurement
	GameLogs     []stats.GameLog
	SeasonLogs   []stats.SeasonLog
	Rankings     []scouting.ScoutRanking
	Reports      []scouting.Report
	DraftOrder   []draft.Slot
}

// Source loads a dataset once at startup.
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

// FileSource reads the dataset document and the draft order from disk.
// DraftOrderPath is optional.
type FileSource struct {
	DatasetPath    string
	DraftOrderPath string
}

func (s FileSource) Load(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.DatasetPath)
	if err != nil {
		return nil, crerr.Wrapf(err, "read dataset %s", s.DatasetPath)
	}
	ds, err := Decode(raw)
	if err != nil {
		return nil, crerr.Wrapf(err, "decode dataset %s", s.DatasetPath)
	}

	if s.DraftOrderPath == "" {
		return ds, nil
	}
	rawOrder, err := os.ReadFile(s.DraftOrderPath)
	if err != nil {
		return nil, crerr.Wrapf(err, "read draft order %s", s.DraftOrderPath)
	}
	order, err := DecodeDraftOrder(rawOrder)
	if err != nil {
		return nil, crerr.Wrapf(err, "decode draft order %s", s.DraftOrderPath)
	}
	ds.DraftOrder = order

	return ds, nil
}

// Decode parses and validates a dataset document.
func Decode(raw []byte) (*Dataset, error) {
	var doc document
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "unmarshal dataset"), ErrInvalidDataset)
	}

	v := validator.New()
	ds := &Dataset{
		Prospects:    make([]prospect.Prospect, 0, len(doc.Bio)),
		Measurements: make([]prospect.Measurement, 0, len(doc.Measurements)),
		GameLogs:     make([]stats.GameLog, 0, len(doc.GameLogs)),
		SeasonLogs:   make([]stats.SeasonLog, 0, len(doc.SeasonLogs)),
		Rankings:     make([]scouting.ScoutRanking, 0, len(doc.ScoutRankings)),
		Reports:      make([]scouting.Report, 0, len(doc.ScoutingReports)),
	}

	for i, rec := range doc.Bio {
		if err := v.Struct(rec); err != nil {
			return nil, invalid(err, "bio", i)
		}
		item := rec.toDomain()
		if err := item.Validate(); err != nil {
			return nil, invalid(err, "bio", i)
		}
		ds.Prospects = append(ds.Prospects, item)
	}
	for i, rec := range doc.Measurements {
		if err := v.Struct(rec); err != nil {
			return nil, invalid(err, "measurements", i)
		}
		ds.Measurements = append(ds.Measurements, rec.toDomain())
	}
	for i, rec := range doc.GameLogs {
		if err := v.Struct(rec); err != nil {
			return nil, invalid(err, "game_logs", i)
		}
		item, ok := rec.toDomain()
		if !ok {
			return nil, invalid(fmt.Errorf("unparseable date %q", rec.Date), "game_logs", i)
		}
		ds.GameLogs = append(ds.GameLogs, item)
	}
	for i, rec := range doc.SeasonLogs {
		if err := v.Struct(rec); err != nil {
			return nil, invalid(err, "seasonLogs", i)
		}
		item := rec.toDomain()
		if err := item.Validate(); err != nil {
			return nil, invalid(err, "seasonLogs", i)
		}
		ds.SeasonLogs = append(ds.SeasonLogs, item)
	}
	for i, rec := range doc.ScoutRankings {
		if err := v.Struct(rec); err != nil {
			return nil, invalid(err, "scoutRankings", i)
		}
		item := rec.toDomain()
		if err := item.Validate(); err != nil {
			return nil, invalid(err, "scoutRankings", i)
		}
		ds.Rankings = append(ds.Rankings, item)
	}
	for i, rec := range doc.ScoutingReports {
		if err := v.Struct(rec); err != nil {
			return nil, invalid(err, "scoutingReports", i)
		}
		ds.Reports = append(ds.Reports, rec.toDomain())
	}

	if err := ds.checkUnique(); err != nil {
		return nil, crerr.Mark(err, ErrInvalidDataset)
	}

	return ds, nil
}

// DecodeDraftOrder parses and validates a draft order array.
func DecodeDraftOrder(raw []byte) ([]draft.Slot, error) {
	var records []draftSlotRecord
	if err := sonic.Unmarshal(raw, &records); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "unmarshal draft order"), ErrInvalidDataset)
	}

	v := validator.New()
	out := make([]draft.Slot, 0, len(records))
	for i, rec := range records {
		if err := v.Struct(rec); err != nil {
			return nil, invalid(err, "draftOrder", i)
		}
		out = append(out, rec.toDomain())
	}
	if err := draft.ValidateOrder(out); err != nil {
		return nil, crerr.Mark(err, ErrInvalidDataset)
	}

	return out, nil
}

func (d *Dataset) checkUnique() error {
	bio := make(map[int64]struct{}, len(d.Prospects))
	for _, p := range d.Prospects {
		if _, ok := bio[p.PlayerID]; ok {
			return crerr.Newf("duplicate bio playerId %d", p.PlayerID)
		}
		bio[p.PlayerID] = struct{}{}
	}

	measured := make(map[int64]struct{}, len(d.Measurements))
	for _, m := range d.Measurements {
		if _, ok := measured[m.PlayerID]; ok {
			return crerr.Newf("duplicate measurement playerId %d", m.PlayerID)
		}
		measured[m.PlayerID] = struct{}{}
	}

	ranked := make(map[int64]struct{}, len(d.Rankings))
	for _, r := range d.Rankings {
		if _, ok := ranked[r.PlayerID]; ok {
			return crerr.Newf("duplicate scout ranking playerId %d", r.PlayerID)
		}
		ranked[r.PlayerID] = struct{}{}
	}

	return nil
}

func invalid(err error, collection string, index int) error {
	return crerr.Mark(crerr.Wrapf(err, "%s[%d]", collection, index), ErrInvalidDataset)
}
