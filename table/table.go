// Package table implements the columnar time-series table that drives the
// animation pipeline: an ordered row index (numeric or time-valued) plus
// named columns of float64 (NaN marks a missing observation) or string data.
package table

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Index is the row axis of a Table. Exactly one of Times or Nums is set.
type Index struct {
	Times []time.Time
	Nums  []float64
}

// NumericIndex builds an ordinal index from values.
func NumericIndex(values []float64) Index {
	return Index{Nums: values}
}

// TimeIndex builds a time-valued index from timestamps.
func TimeIndex(times []time.Time) Index {
	return Index{Times: times}
}

// RangeIndex builds the default ordinal index 0..n-1.
func RangeIndex(n int) Index {
	nums := make([]float64, n)
	for i := range nums {
		nums[i] = float64(i)
	}
	return Index{Nums: nums}
}

// IsTime reports whether the index is time-valued.
func (ix Index) IsTime() bool {
	return ix.Times != nil
}

func (ix Index) Len() int {
	if ix.IsTime() {
		return len(ix.Times)
	}
	return len(ix.Nums)
}

// Label formats the index value at row i for display.
func (ix Index) Label(i int) string {
	if ix.IsTime() {
		return ix.Times[i].Format("2006-01-02")
	}
	return strconv.FormatFloat(ix.Nums[i], 'g', -1, 64)
}

// head returns a view over the first n rows of the index.
func (ix Index) head(n int) Index {
	if ix.IsTime() {
		return Index{Times: ix.Times[:n]}
	}
	return Index{Nums: ix.Nums[:n]}
}

// Column is one named series. Numeric columns store Floats, everything else
// stores Labels. Exactly one of the two is non-nil.
type Column struct {
	Name   string
	Floats []float64
	Labels []string
}

// IsNumeric reports whether the column holds plottable numeric data.
func (c Column) IsNumeric() bool {
	return c.Floats != nil
}

func (c Column) len() int {
	if c.IsNumeric() {
		return len(c.Floats)
	}
	return len(c.Labels)
}

// Table is an ordered sequence of periods (rows) with named columns.
// It is built once and treated as read-only by the animation pipeline.
type Table struct {
	Index   Index
	Columns []Column
}

// New builds a table after checking every column matches the index length.
func New(index Index, columns []Column) (*Table, error) {
	n := index.Len()
	for _, c := range columns {
		if c.len() != n {
			return nil, fmt.Errorf("column %q has %d rows, index has %d", c.Name, c.len(), n)
		}
	}
	return &Table{Index: index, Columns: columns}, nil
}

// NumRows returns the row count.
func (t *Table) NumRows() int {
	return t.Index.Len()
}

// Column returns the named column, or nil if absent.
func (t *Table) Column(name string) *Column {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// NumericColumns returns the names of all columns holding numeric data,
// order preserved. Each name is re-checked against the table before use so
// a column dropped mid-iteration surfaces as a MissingColumnError rather
// than a nil dereference. Zero numeric columns is ErrNoNumericColumns.
func (t *Table) NumericColumns() ([]string, error) {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}

	var dataCols []string
	for _, name := range names {
		col := t.Column(name)
		if col == nil {
			return nil, &MissingColumnError{Column: name}
		}
		if col.IsNumeric() {
			dataCols = append(dataCols, name)
		}
	}
	if len(dataCols) == 0 {
		return nil, ErrNoNumericColumns
	}
	return dataCols, nil
}

// StringifyColumns normalizes every column label to its canonical string
// form. Applying it twice changes nothing.
func (t *Table) StringifyColumns() {
	for i := range t.Columns {
		t.Columns[i].Name = StringifyLabel(t.Columns[i].Name)
	}
}

// StringifyLabel canonicalizes a column label: labels that parse as numbers
// are reformatted so "01" and "1.0" collapse to "1".
func StringifyLabel(label string) string {
	if f, err := strconv.ParseFloat(label, 64); err == nil {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return label
}

// Head returns a view over the first n rows. The returned table shares
// backing arrays with the receiver and must be treated as read-only.
func (t *Table) Head(n int) *Table {
	if n > t.NumRows() {
		n = t.NumRows()
	}
	cols := make([]Column, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = Column{Name: c.Name}
		if c.IsNumeric() {
			cols[i].Floats = c.Floats[:n]
		} else {
			cols[i].Labels = c.Labels[:n]
		}
	}
	return &Table{Index: t.Index.head(n), Columns: cols}
}

// Row returns the numeric values of row i keyed by column name.
func (t *Table) Row(i int) map[string]float64 {
	row := make(map[string]float64, len(t.Columns))
	for _, c := range t.Columns {
		if c.IsNumeric() {
			row[c.Name] = c.Floats[i]
		}
	}
	return row
}

// MinMax returns the minimum and maximum over every numeric cell in the
// table, skipping NaN. Returns NaNs when no numeric cell exists.
func (t *Table) MinMax() (min, max float64) {
	min, max = math.NaN(), math.NaN()
	for _, c := range t.Columns {
		if !c.IsNumeric() {
			continue
		}
		for _, v := range c.Floats {
			if math.IsNaN(v) {
				continue
			}
			if math.IsNaN(min) || v < min {
				min = v
			}
			if math.IsNaN(max) || v > max {
				max = v
			}
		}
	}
	return min, max
}

// IndexSpan returns the index bounds as float64: unix seconds for a
// time-valued index, raw values otherwise. The index is assumed ordered.
func (t *Table) IndexSpan() (first, last float64) {
	n := t.Index.Len()
	if n == 0 {
		return math.NaN(), math.NaN()
	}
	if t.Index.IsTime() {
		return timeToFloat(t.Index.Times[0]), timeToFloat(t.Index.Times[n-1])
	}
	return t.Index.Nums[0], t.Index.Nums[n-1]
}

func timeToFloat(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
