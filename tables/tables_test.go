package tables

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/mazzegi/fluent/description"
	"github.com/mazzegi/fluent/errmsg"
	"github.com/mazzegi/fluent/failure"
	"github.com/mazzegi/fluent/testx"
	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE jedi (
			name 	TEXT,
			age	   	INTEGER,
			height  REAL,
			master  TEXT
		);
	`)
	if err != nil {
		t.Fatalf("exec create table: %v", err)
	}
	vals := [][4]any{
		{"Yoda", 900, 0.66, nil},
		{"Luke", 19, 1.72, "Yoda"},
		{"Obiwan", 57, 1.82, "Qui-Gon"},
	}
	for _, vs := range vals {
		_, err = db.Exec(`INSERT INTO jedi (name,age,height,master) VALUES (?,?,?,?);`, vs[0], vs[1], vs[2], vs[3])
		if err != nil {
			t.Fatalf("exec insert: %v", err)
		}
	}
	return db
}

func TestHasRowCount(t *testing.T) {
	tx := testx.NewTx(t)
	db := setupDB(t)
	tb := New()
	ctx := context.Background()

	tx.AssertNoErr(tb.AssertHasRowCount(ctx, failure.Info{}, db, "jedi", 3))
	err := tb.AssertHasRowCount(ctx, failure.Info{Description: description.Text("council")}, db, "jedi", 12)
	tx.AssertErrIs(err, failure.ErrAssertionFailed)
	tx.AssertEqual("[council] \nExpecting table:\n  <jedi>\nto have 12 rows but had 3", err.Error())
}

func TestHasRow(t *testing.T) {
	db := setupDB(t)
	tb := New()
	ctx := context.Background()

	type test struct {
		row   map[string]any
		found bool
	}
	tests := []test{
		{map[string]any{"name": "Luke"}, true},
		{map[string]any{"name": "Luke", "age": 19}, true},
		{map[string]any{"name": "Luke", "age": int8(19), "height": 1.72}, true},
		{map[string]any{"name": "Yoda", "master": nil}, true},
		{map[string]any{"age": 57.0}, true},
		{map[string]any{"name": "Luke", "age": 20}, false},
		{map[string]any{"name": "Han"}, false},
		{map[string]any{"master": nil, "name": "Luke"}, false},
	}
	testx.RunTests(t, tests, func(tx *testx.Tx, test test) {
		err := tb.AssertHasRow(ctx, failure.Info{}, db, "jedi", test.row)
		if test.found {
			tx.AssertNoErr(err)
		} else {
			tx.AssertErrIs(err, failure.ErrAssertionFailed)
		}
	})

	tx := testx.NewTx(t)
	err := tb.AssertHasRow(ctx, failure.Info{}, db, "jedi", map[string]any{"name": "Han", "age": 32})
	tx.AssertEqual("\nExpecting table:\n  <jedi>\nto contain row:\n  <{\"age\": 32, \"name\": \"Han\"}>\nbut it did not.", err.Error())
}

func TestPreconditions(t *testing.T) {
	db := setupDB(t)
	tb := New()
	ctx := context.Background()

	type test struct {
		db    *sql.DB
		table string
		row   map[string]any
		want  string
	}
	tests := []test{
		{nil, "jedi", map[string]any{"name": "Luke"}, errmsg.DatabaseIsNull},
		{db, "jedi; DROP TABLE jedi", map[string]any{"name": "Luke"}, errmsg.InvalidTableName("jedi; DROP TABLE jedi")},
		{db, "jedi", nil, errmsg.RowIsEmpty},
		{db, "jedi", map[string]any{"name = name": 1}, "The column name should be a plain identifier but was: name = name"},
	}
	testx.RunTests(t, tests, func(tx *testx.Tx, test test) {
		err := tb.AssertHasRow(ctx, failure.Info{}, test.db, test.table, test.row)
		tx.AssertErrIs(err, failure.ErrPrecondition)
		tx.AssertEqual(test.want, err.Error())
	})
	tx := testx.NewTx(t)
	tx.AssertErrIs(tb.AssertHasRowCount(ctx, failure.Info{}, db, "jedi", -1), failure.ErrPrecondition)
}

func TestUnknownTableIsError(t *testing.T) {
	tx := testx.NewTx(t)
	db := setupDB(t)
	err := New().AssertHasRowCount(context.Background(), failure.Info{}, db, "sith", 0)
	tx.AssertErr(err)
	tx.AssertTrue(err != nil && !isAssertion(err), fmt.Sprintf("want plain error, got %T", err))
}

func isAssertion(err error) bool {
	_, ok := err.(*failure.AssertionError)
	return ok
}

func TestNormalize(t *testing.T) {
	type test struct {
		in   any
		want any
	}
	tests := []test{
		{nil, nil},
		{true, int64(1)},
		{false, int64(0)},
		{7, int64(7)},
		{uint16(7), int64(7)},
		{float32(0.5), 0.5},
		{[]byte("Yoda"), "Yoda"},
		{"Yoda", "Yoda"},
	}
	testx.RunTests(t, tests, func(tx *testx.Tx, test test) {
		tx.AssertEqual(test.want, normalize(test.in))
	})
}
