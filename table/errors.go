package table

import (
	"errors"
	"fmt"
)

// ErrNoNumericColumns is returned when a table holds no plottable data.
var ErrNoNumericColumns = errors.New("no numeric data columns found for plotting")

// MissingColumnError reports a column that disappeared from the table
// between enumeration and lookup.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("could not find %q in the columns of the provided table", e.Column)
}
