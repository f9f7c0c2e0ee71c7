package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/nba-draft-hub/internal/infrastructure/dataset"
	"github.com/riskibarqy/nba-draft-hub/internal/infrastructure/repository/memory"
)

// BootstrapSeed imports the built-in demo roster when the prospects table
// is empty. It reports whether anything was written.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, draftYear int) (bool, error) {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM prospects`); err != nil {
		return false, crerr.Wrap(err, "count prospects for bootstrap seed")
	}
	if count > 0 {
		return false, nil
	}

	if err := NewDatasetImporter(db, draftYear).Import(ctx, DemoDataset()); err != nil {
		return false, crerr.Wrap(err, "import demo dataset")
	}
	return true, nil
}

// DemoDataset returns the demo roster as a dataset ready to import.
func DemoDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Prospects:    memory.SeedProspects(),
		Measurements: memory.SeedMeasurements(),
		GameLogs:     memory.SeedGameLogs(),
		SeasonLogs:   memory.SeedSeasonLogs(),
		Rankings:     memory.SeedRankings(),
		Reports:      memory.SeedReports(),
		DraftOrder:   memory.SeedDraftOrder(),
	}
}
