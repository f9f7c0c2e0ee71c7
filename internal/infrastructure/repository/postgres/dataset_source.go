package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/nba-draft-hub/internal/domain/draft"
	"github.com/riskibarqy/nba-draft-hub/internal/infrastructure/dataset"
	qb "github.com/riskibarqy/nba-draft-hub/internal/platform/querybuilder"
	"github.com/sourcegraph/conc/pool"
)

const (
	tableProspects       = "prospects"
	tableMeasurements    = "measurements"
	tableGameLogs        = "game_logs"
	tableSeasonLogs      = "season_logs"
	tableScoutRankings   = "scout_rankings"
	tableScoutingReports = "scouting_reports"
	tableDraftSlots      = "draft_slots"
)

// DatasetSource loads the whole dataset from Postgres. Tables are read in
// parallel and the first failure cancels the rest.
type DatasetSource struct {
	db        *sqlx.DB
	draftYear int
}

func NewDatasetSource(db *sqlx.DB, draftYear int) *DatasetSource {
	return &DatasetSource{db: db, draftYear: draftYear}
}

func (s *DatasetSource) Load(ctx context.Context) (*dataset.Dataset, error) {
	ds := &dataset.Dataset{}

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		rows, err := selectAll[prospectTableModel](ctx, s.db, tableProspects)
		if err != nil {
			return err
		}
		ds.Prospects = mapRows(rows, prospectTableModel.toDomain)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := selectAll[measurementTableModel](ctx, s.db, tableMeasurements)
		if err != nil {
			return err
		}
		ds.Measurements = mapRows(rows, measurementTableModel.toDomain)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := selectAll[gameLogTableModel](ctx, s.db, tableGameLogs)
		if err != nil {
			return err
		}
		ds.GameLogs = mapRows(rows, gameLogTableModel.toDomain)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := selectAll[seasonLogTableModel](ctx, s.db, tableSeasonLogs)
		if err != nil {
			return err
		}
		ds.SeasonLogs = mapRows(rows, seasonLogTableModel.toDomain)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := selectAll[scoutRankingTableModel](ctx, s.db, tableScoutRankings)
		if err != nil {
			return err
		}
		ds.Rankings = mapRows(rows, scoutRankingTableModel.toDomain)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := selectAll[scoutingReportTableModel](ctx, s.db, tableScoutingReports)
		if err != nil {
			return err
		}
		ds.Reports = mapRows(rows, scoutingReportTableModel.toDomain)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		rows, err := selectAll[draftSlotTableModel](ctx, s.db, tableDraftSlots, qb.Eq("draft_year", s.draftYear))
		if err != nil {
			return err
		}
		ds.DraftOrder = mapRows(rows, draftSlotTableModel.toDomain)
		return nil
	})

	if err := p.Wait(); err != nil {
		return nil, crerr.Wrap(err, "load dataset from postgres")
	}
	if err := validateLoaded(ds); err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "validate postgres dataset"), dataset.ErrInvalidDataset)
	}

	return ds, nil
}

func validateLoaded(ds *dataset.Dataset) error {
	for i, p := range ds.Prospects {
		if err := p.Validate(); err != nil {
			return crerr.Wrapf(err, "%s[%d]", tableProspects, i)
		}
	}
	for i, l := range ds.SeasonLogs {
		if err := l.Validate(); err != nil {
			return crerr.Wrapf(err, "%s[%d]", tableSeasonLogs, i)
		}
	}
	for i, r := range ds.Rankings {
		if err := r.Validate(); err != nil {
			return crerr.Wrapf(err, "%s[%d]", tableScoutRankings, i)
		}
	}
	return draft.ValidateOrder(ds.DraftOrder)
}

func mapRows[T, D any](rows []T, fn func(T) D) []D {
	out := make([]D, 0, len(rows))
	for _, row := range rows {
		out = append(out, fn(row))
	}
	return out
}

// DatasetImporter replaces the stored dataset with ds in one transaction.
type DatasetImporter struct {
	db        *sqlx.DB
	draftYear int
}

func NewDatasetImporter(db *sqlx.DB, draftYear int) *DatasetImporter {
	return &DatasetImporter{db: db, draftYear: draftYear}
}

func (i *DatasetImporter) Import(ctx context.Context, ds *dataset.Dataset) (err error) {
	tx, err := i.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin import transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "TRUNCATE prospects, measurements, game_logs, season_logs, scout_rankings, scouting_reports RESTART IDENTITY"); err != nil {
		return crerr.Wrap(err, "truncate dataset tables")
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM draft_slots WHERE draft_year = $1", i.draftYear); err != nil {
		return crerr.Wrapf(err, "clear draft order %d", i.draftYear)
	}

	if err = insertAll(ctx, tx, tableProspects, mapRows(ds.Prospects, prospectRow)); err != nil {
		return crerr.WithStack(err)
	}
	if err = insertAll(ctx, tx, tableMeasurements, mapRows(ds.Measurements, measurementRow)); err != nil {
		return crerr.WithStack(err)
	}
	if err = insertAll(ctx, tx, tableGameLogs, mapRows(ds.GameLogs, gameLogRow)); err != nil {
		return crerr.WithStack(err)
	}
	if err = insertAll(ctx, tx, tableSeasonLogs, mapRows(ds.SeasonLogs, seasonLogRow)); err != nil {
		return crerr.WithStack(err)
	}
	if err = insertAll(ctx, tx, tableScoutRankings, mapRows(ds.Rankings, scoutRankingRow)); err != nil {
		return crerr.WithStack(err)
	}
	if err = insertAll(ctx, tx, tableScoutingReports, mapRows(ds.Reports, scoutingReportRow)); err != nil {
		return crerr.WithStack(err)
	}
	slots := mapRows(ds.DraftOrder, func(s draft.Slot) draftSlotTableModel {
		return draftSlotTableModel{DraftYear: i.draftYear, Pick: s.Pick, Team: s.Team, GM: s.GM, Contact: s.Contact}
	})
	if err = insertAll(ctx, tx, tableDraftSlots, slots); err != nil {
		return crerr.WithStack(err)
	}

	if err = tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit import transaction")
	}
	return nil
}

var _ dataset.Source = (*DatasetSource)(nil)
