package fluent

import (
	"context"
	"database/sql"

	"github.com/mazzegi/fluent/tables"
)

var _ State[*TableAssert, string] = (*TableAssert)(nil)

// TableAssert asserts on the content of a table of db.
type TableAssert struct {
	assertion[*TableAssert]
	ctx    context.Context
	db     *sql.DB
	table  string
	tables *tables.Tables
}

func ThatTable(t TestingT, db *sql.DB, table string) *TableAssert {
	a := &TableAssert{ctx: context.Background(), db: db, table: table}
	a.assertion = newAssertion(t, a)
	a.tables = tables.New()
	a.tables.Failures = a.failures
	return a
}

func (a *TableAssert) Actual() string {
	return a.table
}

// WithContext sets the context used for the queries of subsequent assertions.
func (a *TableAssert) WithContext(ctx context.Context) *TableAssert {
	a.ctx = ctx
	return a
}

func (a *TableAssert) HasRowCount(expected int) *TableAssert {
	a.t.Helper()
	a.check(func() error { return a.tables.AssertHasRowCount(a.ctx, a.info, a.db, a.table, expected) })
	return a
}

func (a *TableAssert) HasRow(row map[string]any) *TableAssert {
	a.t.Helper()
	a.check(func() error { return a.tables.AssertHasRow(a.ctx, a.info, a.db, a.table, row) })
	return a
}
