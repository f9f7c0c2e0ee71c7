package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("prospects").
		Where(Eq("league", "NCAA"), Eq("season", 2025)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM prospects WHERE league = $1 AND season = $2 ORDER BY id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "NCAA" || args[1] != 2025 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTableAndColumns(t *testing.T) {
	if _, _, err := Select().From("prospects").ToSQL(); err == nil {
		t.Fatalf("expected error for missing columns")
	}
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
}

func TestColumnsFromModel(t *testing.T) {
	type row struct {
		ID       int64   `db:"id"`
		Pct      float64 `db:"fg_pct"`
		Legacy   string  `db:"Team"`
		Skipped  string  `db:"-"`
		NoTag    string
		internal string `db:"internal"`
	}

	cols, err := ColumnsFromModel(&row{})
	if err != nil {
		t.Fatalf("columns from model: %v", err)
	}
	want := []string{"id", "fg_pct", `"Team"`}
	if !reflect.DeepEqual(cols, want) {
		t.Fatalf("unexpected columns: got=%v want=%v", cols, want)
	}

	if _, err := ColumnsFromModel(struct{ A string }{}); err == nil {
		t.Fatalf("expected error for model without db columns")
	}
	var nilRow *row
	if _, err := ColumnsFromModel(nilRow); err == nil {
		t.Fatalf("expected error for nil model")
	}
}

func TestSelectModel(t *testing.T) {
	type slot struct {
		Pick int    `db:"pick"`
		Team string `db:"team"`
	}

	b, err := SelectModel("draft_slots", slot{})
	if err != nil {
		t.Fatalf("select model: %v", err)
	}
	query, _, err := b.OrderBy("pick").ToSQL()
	if err != nil {
		t.Fatalf("build query: %v", err)
	}
	if query != "SELECT pick, team FROM draft_slots ORDER BY pick" {
		t.Fatalf("unexpected query: %s", query)
	}
}
