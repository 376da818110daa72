// Package scan consumes predicate trees on the storage side: selecting
// parquet row groups whose statistics may satisfy a predicate, and filtering
// record batches row by row into selection bitsets.
//
// Both consumers are conservative. Pruning skips a row group only when the
// statistics prove no row can match; anything unknown degrades to "might
// match". Filtering returns an error rather than a wrong mask.
package scan

import (
	"github.com/openlake-io/lakestore/predicate"
)

// Options describe one read: the columns to materialize and the predicate
// to push into row-group selection and row filtering.
type Options struct {
	Columns   []string
	Predicate predicate.Predicate
}

func NewOptions() *Options {
	return &Options{Columns: make([]string, 0)}
}

func (o *Options) AddColumn(column string) {
	o.Columns = append(o.Columns, column)
}

func (o *Options) SetColumns(columns []string) {
	o.Columns = columns
}

func (o *Options) SetPredicate(p predicate.Predicate) {
	o.Predicate = p
}
