// Package tables implements assertions on the content of SQL tables.
package tables

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/mazzegi/fluent/errmsg"
	"github.com/mazzegi/fluent/failure"
	"github.com/mazzegi/log"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type Tables struct {
	Failures *failure.Failures
}

func New() *Tables {
	return &Tables{
		Failures: &failure.Failures{},
	}
}

func checkTable(db *sql.DB, table string) error {
	if db == nil {
		return failure.Precondition(errmsg.DatabaseIsNull)
	}
	if !identifier.MatchString(table) {
		return failure.Precondition(errmsg.InvalidTableName(table))
	}
	return nil
}

func (tb *Tables) AssertHasRowCount(ctx context.Context, info failure.Info, db *sql.DB, table string, expected int) error {
	if err := checkTable(db, table); err != nil {
		return err
	}
	if expected < 0 {
		return failure.Precondition(errmsg.SizeIsNegative)
	}
	var count int
	q := fmt.Sprintf("SELECT COUNT(*) FROM %s;", table)
	if err := db.QueryRowContext(ctx, q).Scan(&count); err != nil {
		return fmt.Errorf("count rows of %q: %w", table, err)
	}
	if count == expected {
		return nil
	}
	return tb.Failures.Failure(info, errmsg.ShouldHaveRowCount(table, expected, count))
}

// AssertHasRow checks that at least one row of table carries the given column values.
// A nil value matches NULL.
func (tb *Tables) AssertHasRow(ctx context.Context, info failure.Info, db *sql.DB, table string, row map[string]any) error {
	if err := checkTable(db, table); err != nil {
		return err
	}
	if len(row) == 0 {
		return failure.Precondition(errmsg.RowIsEmpty)
	}
	columns := make([]string, 0, len(row))
	for c := range row {
		if !identifier.MatchString(c) {
			return failure.Preconditionf("The column name should be a plain identifier but was: %s", c)
		}
		columns = append(columns, c)
	}
	sort.Strings(columns)

	found, err := tb.findRow(ctx, db, table, columns, row)
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	return tb.Failures.Failure(info, errmsg.ShouldHaveRow(table, row))
}

func (tb *Tables) findRow(ctx context.Context, db *sql.DB, table string, columns []string, row map[string]any) (bool, error) {
	q := fmt.Sprintf("SELECT %s FROM %s;", strings.Join(columns, ", "), table)
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return false, fmt.Errorf("query %q: %w", table, err)
	}
	defer rows.Close()
	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return false, fmt.Errorf("rows.column-types: %w", err)
	}
	scanned := 0
	for rows.Next() {
		actual, err := scanRow(rows, colTypes)
		if err != nil {
			return false, err
		}
		scanned++
		if matches(row, actual) {
			log.Debugf("tables: row found in %q after %d rows", table, scanned)
			return true, nil
		}
	}
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("rows.next: %w", err)
	}
	return false, nil
}

func matches(expected, actual map[string]any) bool {
	for c, ev := range expected {
		av, ok := actual[c]
		if !ok || !sameValue(normalize(ev), av) {
			return false
		}
	}
	return true
}
