package scan

import (
	"bytes"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/parquet/file"
	"github.com/apache/arrow/go/v12/parquet/metadata"

	"github.com/openlake-io/lakestore/predicate"
)

// SelectRowGroups returns the indices of the parquet row groups that may
// contain matching rows. A group is dropped only when column statistics
// prove the predicate cannot match any of its rows; missing or unusable
// statistics keep the group.
func SelectRowGroups(r *file.Reader, p predicate.Predicate) ([]int, error) {
	meta := r.MetaData()
	keep := make([]int, 0, r.NumRowGroups())
	for rg := 0; rg < r.NumRowGroups(); rg++ {
		skip, err := cannotMatch(meta.RowGroup(rg), p)
		if err != nil {
			return nil, err
		}
		if !skip {
			keep = append(keep, rg)
		}
	}
	return keep, nil
}

// cannotMatch reports whether statistics prove no row of the group satisfies
// the predicate.
func cannotMatch(rg *metadata.RowGroupMetaData, p predicate.Predicate) (bool, error) {
	switch p := p.(type) {
	case *predicate.Constant:
		return !p.Value, nil
	case *predicate.Compound:
		if p.Op == predicate.CombineAnd {
			// one impossible conjunct rules the whole group out
			for _, child := range p.Children {
				skip, err := cannotMatch(rg, child)
				if err != nil {
					return false, err
				}
				if skip {
					return true, nil
				}
			}
			return false, nil
		}
		// a disjunction is impossible only when every branch is
		for _, child := range p.Children {
			skip, err := cannotMatch(rg, child)
			if err != nil {
				return false, err
			}
			if !skip {
				return false, nil
			}
		}
		return len(p.Children) > 0, nil
	case *predicate.Leaf:
		return leafCannotMatch(rg, p)
	}
	return false, nil
}

func leafCannotMatch(rg *metadata.RowGroupMetaData, leaf *predicate.Leaf) (bool, error) {
	idx := rg.Schema.ColumnIndexByName(leaf.FieldName)
	if idx < 0 {
		return false, nil
	}
	cc, err := rg.ColumnChunk(idx)
	if err != nil {
		return false, err
	}
	stats, err := cc.Statistics()
	if err != nil || stats == nil {
		return false, nil
	}

	switch leaf.Fn {
	case predicate.IsNull:
		// writers have been observed reporting a zero null count for chunks
		// that do hold nulls, so a null check never prunes
		return false, nil
	case predicate.IsNotNull:
		return stats.HasNullCount() && stats.NullCount() == cc.NumValues(), nil
	}

	if !stats.HasMinMax() || len(leaf.Literals) == 0 {
		return false, nil
	}
	lo, hi, ok := statBounds(stats)
	if !ok {
		return false, nil
	}

	switch leaf.Fn {
	case predicate.Equal, predicate.In:
		for _, lit := range leaf.Literals {
			v, ok := statLiteral(lit)
			if !ok || v.kind != lo.kind {
				return false, nil
			}
			inside := compareStat(v, lo) >= 0 && compareStat(v, hi) <= 0
			if inside {
				return false, nil
			}
		}
		return true, nil
	case predicate.GreaterThan:
		if v, ok := statLiteral(leaf.Literals[0]); ok && v.kind == hi.kind {
			return compareStat(hi, v) <= 0, nil
		}
	case predicate.GreaterOrEqual:
		if v, ok := statLiteral(leaf.Literals[0]); ok && v.kind == hi.kind {
			return compareStat(hi, v) < 0, nil
		}
	case predicate.LessThan:
		if v, ok := statLiteral(leaf.Literals[0]); ok && v.kind == lo.kind {
			return compareStat(lo, v) >= 0, nil
		}
	case predicate.LessOrEqual:
		if v, ok := statLiteral(leaf.Literals[0]); ok && v.kind == lo.kind {
			return compareStat(lo, v) > 0, nil
		}
	}
	return false, nil
}

type statKind int8

const (
	statInt statKind = iota
	statFloat
	statBytes
)

type statValue struct {
	kind statKind
	i    int64
	f    float64
	b    []byte
}

func intStat(v int64) statValue {
	return statValue{kind: statInt, i: v}
}

func floatStat(v float64) statValue {
	return statValue{kind: statFloat, f: v}
}

func bytesStat(v []byte) statValue {
	return statValue{kind: statBytes, b: v}
}

// compareStat assumes both sides carry the same kind; callers verify that
// before comparing and keep the row group when the kinds disagree.
func compareStat(a, b statValue) int {
	switch a.kind {
	case statInt:
		return cmpOrdered(a.i, b.i)
	case statFloat:
		return cmpOrdered(a.f, b.f)
	default:
		return bytes.Compare(a.b, b.b)
	}
}

func statBounds(stats metadata.TypedStatistics) (lo, hi statValue, ok bool) {
	switch s := stats.(type) {
	case *metadata.Int32Statistics:
		return intStat(int64(s.Min())), intStat(int64(s.Max())), true
	case *metadata.Int64Statistics:
		return intStat(s.Min()), intStat(s.Max()), true
	case *metadata.Float32Statistics:
		return floatStat(float64(s.Min())), floatStat(float64(s.Max())), true
	case *metadata.Float64Statistics:
		return floatStat(s.Min()), floatStat(s.Max()), true
	case *metadata.ByteArrayStatistics:
		return bytesStat(s.Min()), bytesStat(s.Max()), true
	}
	// boolean, int96 and fixed-width decimal statistics are not used for
	// pruning
	return statValue{}, statValue{}, false
}

func statLiteral(lit predicate.Literal) (statValue, bool) {
	switch v := lit.Value.(type) {
	case int32:
		return intStat(int64(v)), true
	case int64:
		// a packed zoned timestamp is opaque, not an epoch value
		if ts, isTs := lit.Type.(*arrow.TimestampType); isTs && ts.TimeZone != "" {
			return statValue{}, false
		}
		return intStat(v), true
	case float32:
		return floatStat(float64(v)), true
	case float64:
		return floatStat(v), true
	case arrow.Date32:
		return intStat(int64(v)), true
	case arrow.Time32:
		return intStat(int64(v)), true
	case arrow.Timestamp:
		return intStat(int64(v)), true
	case string:
		return bytesStat([]byte(v)), true
	case []byte:
		return bytesStat(v), true
	}
	return statValue{}, false
}
