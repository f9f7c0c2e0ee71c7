package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// SelectModel builds a SELECT over every db-tagged field of model.
func SelectModel(table string, model any) (*SelectBuilder, error) {
	cols, err := ColumnsFromModel(model)
	if err != nil {
		return nil, err
	}
	return Select(cols...).From(table), nil
}

// ColumnsFromModel lists the db tag names of model's exported fields in
// declaration order.
func ColumnsFromModel(model any) ([]string, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		tag := strings.TrimSpace(field.Tag.Get("db"))
		if tag == "" || tag == "-" {
			continue
		}
		col := strings.TrimSpace(strings.Split(tag, ",")[0])
		if col == "" || col == "-" {
			continue
		}
		cols = append(cols, quoteIdent(col))
	}

	if len(cols) == 0 {
		return nil, fmt.Errorf("model has no db columns")
	}
	return cols, nil
}

// quoteIdent double-quotes identifiers that are not plain lower snake case.
func quoteIdent(col string) string {
	for _, r := range col {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return `"` + strings.ReplaceAll(col, `"`, `""`) + `"`
		}
	}
	return col
}
