package records

import (
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Record is one stored row. Every column is text.
type Record map[string]string

// String returns the raw column value ("" when absent).
func (r Record) String(col string) string { return r[col] }

// Int parses the column as an integer. ok is false when the value is empty
// or not a number.
func (r Record) Int(col string) (n int, ok bool) {
	n, err := strconv.Atoi(strings.TrimSpace(r[col]))
	return n, err == nil
}

// Float parses the column as a float. ok is false when the value is empty
// or not a number.
func (r Record) Float(col string) (f float64, ok bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(r[col]), 64)
	return f, err == nil
}

// List splits a "|" joined column into its non-empty elements.
func (r Record) List(col string) []string { return SplitList(r[col]) }

// Key selects rows by exact equality on every column (AND).
type Key map[string]any

// Values maps column names to the values to write.
type Values map[string]any

func (k Key) eq() (sq.Eq, error) {
	eq := make(sq.Eq, len(k))
	for col, v := range k {
		if err := checkIdent(col); err != nil {
			return nil, err
		}
		s, err := Encode(v)
		if err != nil {
			return nil, err
		}
		eq[quote(col)] = s
	}
	return eq, nil
}

func (v Values) setMap() (map[string]any, error) {
	out := make(map[string]any, len(v))
	for col, val := range v {
		if err := checkIdent(col); err != nil {
			return nil, err
		}
		s, err := Encode(val)
		if err != nil {
			return nil, err
		}
		out[quote(col)] = s
	}
	return out, nil
}
