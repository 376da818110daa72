package scan

import (
	"bytes"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/array"
	"github.com/apache/arrow/go/v12/arrow/decimal128"
	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"

	cerrors "github.com/openlake-io/lakestore/common/errors"
	"github.com/openlake-io/lakestore/predicate"
)

// Filter evaluates the predicate against every row of the record and returns
// the selection bitset. Comparisons against a null row value never match;
// IsNull and IsNotNull consult the validity bitmap.
func Filter(rec arrow.Record, p predicate.Predicate) (*bitset.BitSet, error) {
	rows := uint(rec.NumRows())
	selection := bitset.New(rows)
	for row := 0; row < int(rows); row++ {
		ok, err := match(rec, row, p)
		if err != nil {
			return nil, err
		}
		if ok {
			selection.Set(uint(row))
		}
	}
	return selection, nil
}

func match(rec arrow.Record, row int, p predicate.Predicate) (bool, error) {
	switch p := p.(type) {
	case *predicate.Constant:
		return p.Value, nil
	case *predicate.Compound:
		if p.Op == predicate.CombineAnd {
			for _, child := range p.Children {
				ok, err := match(rec, row, child)
				if err != nil || !ok {
					return false, err
				}
			}
			return true, nil
		}
		for _, child := range p.Children {
			ok, err := match(rec, row, child)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	case *predicate.Leaf:
		return matchLeaf(rec, row, p)
	}
	return false, errors.Errorf("unknown predicate node %T", p)
}

func matchLeaf(rec arrow.Record, row int, leaf *predicate.Leaf) (bool, error) {
	if leaf.FieldIndex < 0 || leaf.FieldIndex >= int(rec.NumCols()) {
		return false, errors.Wrapf(cerrors.ErrFieldNotFound, "field %d (%s)", leaf.FieldIndex, leaf.FieldName)
	}
	col := rec.Column(leaf.FieldIndex)

	switch leaf.Fn {
	case predicate.IsNull:
		return col.IsNull(row), nil
	case predicate.IsNotNull:
		return col.IsValid(row), nil
	}

	if col.IsNull(row) {
		return false, nil
	}
	if len(leaf.Literals) == 0 {
		return false, errors.Errorf("%s leaf on %s has no literal", leaf.Fn, leaf.FieldName)
	}

	switch leaf.Fn {
	case predicate.Equal:
		cmp, err := compare(col, row, leaf.Literals[0])
		if err != nil {
			return false, err
		}
		return cmp == 0, nil
	case predicate.In:
		for _, lit := range leaf.Literals {
			cmp, err := compare(col, row, lit)
			if err != nil {
				return false, err
			}
			if cmp == 0 {
				return true, nil
			}
		}
		return false, nil
	case predicate.GreaterThan:
		cmp, err := compare(col, row, leaf.Literals[0])
		return err == nil && cmp > 0, err
	case predicate.GreaterOrEqual:
		cmp, err := compare(col, row, leaf.Literals[0])
		return err == nil && cmp >= 0, err
	case predicate.LessThan:
		cmp, err := compare(col, row, leaf.Literals[0])
		return err == nil && cmp < 0, err
	case predicate.LessOrEqual:
		cmp, err := compare(col, row, leaf.Literals[0])
		return err == nil && cmp <= 0, err
	}
	return false, errors.Errorf("unknown leaf function %d", leaf.Fn)
}

// compare orders the row value against the literal: negative when the row
// value sorts first, zero when equal.
func compare(col arrow.Array, row int, lit predicate.Literal) (int, error) {
	switch arr := col.(type) {
	case *array.Boolean:
		v, err := litAs[bool](lit)
		return cmpBool(arr.Value(row), v), err
	case *array.Int32:
		v, err := litAs[int32](lit)
		return cmpOrdered(arr.Value(row), v), err
	case *array.Int64:
		v, err := litAs[int64](lit)
		return cmpOrdered(arr.Value(row), v), err
	case *array.Float32:
		v, err := litAs[float32](lit)
		return cmpOrdered(arr.Value(row), v), err
	case *array.Float64:
		v, err := litAs[float64](lit)
		return cmpOrdered(arr.Value(row), v), err
	case *array.Date32:
		v, err := litAs[arrow.Date32](lit)
		return cmpOrdered(arr.Value(row), v), err
	case *array.Time32:
		v, err := litAs[arrow.Time32](lit)
		return cmpOrdered(arr.Value(row), v), err
	case *array.Timestamp:
		// a packed zoned timestamp literal is an opaque int64, not an epoch
		// value; it cannot be ordered against stored timestamps
		v, err := litAs[arrow.Timestamp](lit)
		return cmpOrdered(arr.Value(row), v), err
	case *array.String:
		v, err := litAs[string](lit)
		return cmpOrdered(arr.Value(row), v), err
	case *array.Binary:
		v, err := litAs[[]byte](lit)
		return bytes.Compare(arr.Value(row), v), err
	case *array.FixedSizeBinary:
		v, err := litAs[[]byte](lit)
		return bytes.Compare(arr.Value(row), v), err
	case *array.Decimal128:
		v, err := litAs[decimal128.Num](lit)
		if err != nil {
			return 0, err
		}
		return arr.Value(row).BigInt().Cmp(v.BigInt()), nil
	}
	return 0, errors.Wrapf(cerrors.ErrUnsupportedType, "cannot filter %s column", col.DataType().Name())
}

func litAs[T any](lit predicate.Literal) (T, error) {
	v, ok := lit.Value.(T)
	if !ok {
		return v, errors.Wrapf(cerrors.ErrUnsupportedType, "literal %T for %s column", lit.Value, lit.Type.Name())
	}
	return v, nil
}

func cmpOrdered[T interface {
	~int32 | ~int64 | ~float32 | ~float64 | ~string
}](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	}
	return 1
}
