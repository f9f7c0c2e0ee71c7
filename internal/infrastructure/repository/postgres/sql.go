package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	qb "github.com/riskibarqy/nba-draft-hub/internal/platform/querybuilder"
)

// insertBatchSize keeps bulk inserts below the Postgres bind parameter cap
// for the widest table.
const insertBatchSize = 500

// selectAll reads every row of table in insertion order. A statement dropped
// by a transaction pooler is retried once.
func selectAll[T any](ctx context.Context, db sqlx.QueryerContext, table string, conditions ...qb.Condition) ([]T, error) {
	var model T
	builder, err := qb.SelectModel(table, model)
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", table, err)
	}
	query, args, err := builder.Where(conditions...).OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", table, err)
	}

	var rows []T
	err = sqlx.SelectContext(ctx, db, &rows, query, args...)
	if err != nil && isUnnamedPreparedStatementMissing(err) {
		rows = nil
		err = sqlx.SelectContext(ctx, db, &rows, query, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}

	return rows, nil
}

// namedInsertQuery renders INSERT INTO table (cols) VALUES (:cols) for the
// db-tagged fields of model.
func namedInsertQuery(table string, model any) (string, error) {
	cols, err := qb.ColumnsFromModel(model)
	if err != nil {
		return "", err
	}

	named := make([]string, 0, len(cols))
	for _, col := range cols {
		named = append(named, ":"+strings.Trim(col, `"`))
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ", "), strings.Join(named, ", ")), nil
}

func insertAll[T any](ctx context.Context, tx *sqlx.Tx, table string, rows []T) error {
	if len(rows) == 0 {
		return nil
	}

	var model T
	query, err := namedInsertQuery(table, model)
	if err != nil {
		return fmt.Errorf("build insert %s query: %w", table, err)
	}

	for start := 0; start < len(rows); start += insertBatchSize {
		end := min(start+insertBatchSize, len(rows))
		if _, err := tx.NamedExecContext(ctx, query, rows[start:end]); err != nil {
			return fmt.Errorf("insert %s rows %d-%d: %w", table, start, end, err)
		}
	}

	return nil
}

func isUnnamedPreparedStatementMissing(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unnamed prepared statement does not exist") ||
		(strings.Contains(msg, "prepared statement") && strings.Contains(msg, "26000"))
}
