package tables

import (
	"database/sql"
	"fmt"
	"math"
	"reflect"
	"time"
)

// holder scans one nullable column and yields its normalized value.
type holder interface {
	value() any
}

func nullType(colType *sql.ColumnType) holder {
	sct := colType.ScanType()
	if sct == nil {
		return &nullString{}
	}
	switch sct.Kind() {
	case reflect.Bool:
		return &nullBool{}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &nullInt{}
	case reflect.Float32, reflect.Float64:
		return &nullFloat{}
	default:
		return &nullString{}
	}
}

type nullString struct {
	sql.NullString
}

type nullInt struct {
	sql.NullInt64
}

type nullFloat struct {
	sql.NullFloat64
}

type nullBool struct {
	sql.NullBool
}

func (n *nullString) value() any {
	if !n.Valid {
		return nil
	}
	return n.String
}

func (n *nullInt) value() any {
	if !n.Valid {
		return nil
	}
	return n.Int64
}

func (n *nullFloat) value() any {
	if !n.Valid {
		return nil
	}
	return n.Float64
}

func (n *nullBool) value() any {
	if !n.Valid {
		return nil
	}
	return n.Bool
}

// scanRow scans the current row of rows into normalized values keyed by column name.
func scanRow(rows *sql.Rows, columns []*sql.ColumnType) (map[string]any, error) {
	holders := make([]holder, len(columns))
	dest := make([]any, len(columns))
	for i, ct := range columns {
		holders[i] = nullType(ct)
		dest[i] = holders[i]
	}
	if err := rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("rows.scan: %w", err)
	}
	row := make(map[string]any, len(columns))
	for i, ct := range columns {
		row[ct.Name()] = normalize(holders[i].value())
	}
	return row, nil
}

// normalize maps v onto nil, int64, float64 or string. Bools become 0 and 1 as most
// drivers store them that way.
func normalize(v any) any {
	switch v := v.(type) {
	case nil:
		return nil
	case bool:
		if v {
			return int64(1)
		}
		return int64(0)
	case []byte:
		return string(v)
	case string:
		return v
	case time.Time:
		return v.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		return v.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return float64(u)
		}
		return int64(u)
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		return normalize(rv.Bool())
	case reflect.String:
		return rv.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// sameValue compares normalized values. Integers and floats compare numerically.
func sameValue(expected, actual any) bool {
	switch e := expected.(type) {
	case int64:
		switch a := actual.(type) {
		case int64:
			return e == a
		case float64:
			return float64(e) == a
		}
	case float64:
		switch a := actual.(type) {
		case int64:
			return e == float64(a)
		case float64:
			return e == a
		}
	}
	return expected == actual
}
