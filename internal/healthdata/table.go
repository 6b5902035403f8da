package healthdata

import (
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// IdentityColumn is the canonical name of the sub-county identity column.
const IdentityColumn = "matched_area_clean"

// CountyColumn is the name of the derived county column.
const CountyColumn = "county"

// servicePctSuffix tags the service-availability percentage columns.
const servicePctSuffix = "_pct"

// Row holds one sub-county's cells, positionally aligned with the table
// schema. Numeric cells are float64, text cells are string, and a missing
// numeric cell is nil (observable only under the keep-missing fill policy).
type Row []any

// Table is an immutable, row-oriented snapshot of the metrics dataset. The
// schema is discovered from the source header at load time. Query operations
// return new view Tables sharing row storage; the base is never mutated.
type Table struct {
	columns  []string
	colIndex map[string]int
	numeric  map[string]bool
	service  []string
	rows     []Row
}

// view creates a Table over the given rows reusing the receiver's schema.
func (t *Table) view(rows []Row) *Table {
	return &Table{
		columns:  t.columns,
		colIndex: t.colIndex,
		numeric:  t.numeric,
		service:  t.service,
		rows:     rows,
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the schema column names in source order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether the schema contains the given column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colIndex[name]
	return ok
}

// IsNumericColumn reports whether the given column holds numeric cells.
func (t *Table) IsNumericColumn(name string) bool {
	return t.numeric[name]
}

// NumericColumns returns the numeric column names in schema order.
func (t *Table) NumericColumns() []string {
	var out []string
	for _, c := range t.columns {
		if t.numeric[c] {
			out = append(out, c)
		}
	}
	return out
}

// ServiceColumns returns the service-availability percentage columns (the
// "_pct"-suffixed set) in schema order. The set is part of the table metadata,
// computed once at load time.
func (t *Table) ServiceColumns() []string {
	out := make([]string, len(t.service))
	copy(out, t.service)
	return out
}

// Cell returns the raw cell value at row i, or nil for an unknown column.
func (t *Table) Cell(i int, column string) any {
	col, ok := t.colIndex[column]
	if !ok {
		return nil
	}
	return t.rows[i][col]
}

// Float returns the cell at row i coerced to float64. Unknown columns and
// missing cells yield 0.
func (t *Table) Float(i int, column string) float64 {
	return cast.ToFloat64(t.Cell(i, column))
}

// String returns the cell at row i coerced to string.
func (t *Table) String(i int, column string) string {
	return cast.ToString(t.Cell(i, column))
}

// SubCounty returns row i's identity value.
func (t *Table) SubCounty(i int) string {
	return t.String(i, IdentityColumn)
}

// County returns row i's derived county value.
func (t *Table) County(i int) string {
	return t.String(i, CountyColumn)
}

// RowMap returns row i as a column-name keyed map.
func (t *Table) RowMap(i int) map[string]any {
	m := make(map[string]any, len(t.columns))
	for col, idx := range t.colIndex {
		m[col] = t.rows[i][idx]
	}
	return m
}

// Records returns all rows as column-name keyed maps, in row order.
func (t *Table) Records() []map[string]any {
	records := make([]map[string]any, t.Len())
	for i := range t.rows {
		records[i] = t.RowMap(i)
	}
	return records
}

// DistinctSubCounties returns the number of distinct identity values.
func (t *Table) DistinctSubCounties() int {
	seen := make(map[string]bool, t.Len())
	for i := range t.rows {
		seen[t.SubCounty(i)] = true
	}
	return len(seen)
}

// CountyCount pairs a county name with its number of sub-county rows.
type CountyCount struct {
	Name        string
	SubCounties int
}

// Counties returns the distinct county values of the table with their
// sub-county counts, sorted by county name.
func (t *Table) Counties() []CountyCount {
	counts := make(map[string]int)
	for i := range t.rows {
		counts[t.County(i)]++
	}
	out := make([]CountyCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, CountyCount{Name: name, SubCounties: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func isServiceColumn(name string) bool {
	return strings.HasSuffix(name, servicePctSuffix)
}

// ServiceLabel converts a service percentage column name to its display
// label: the "_pct" suffix stripped, upper-cased.
func ServiceLabel(column string) string {
	return strings.ToUpper(strings.TrimSuffix(column, servicePctSuffix))
}
