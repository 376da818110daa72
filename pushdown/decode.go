package pushdown

import (
	"math"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/decimal128"
	"github.com/pkg/errors"

	cerrors "github.com/openlake-io/lakestore/common/errors"
	"github.com/openlake-io/lakestore/domain"
	"github.com/openlake-io/lakestore/predicate"
)

const (
	picosPerMilli  = int64(1_000_000_000)
	microsPerMilli = int64(1_000)
)

// DecodeValue turns one engine-native value into the storage-native literal
// for the given logical type. The value is never a SQL NULL; null admission
// is classified on the domain before any decoding happens.
func DecodeValue(dt arrow.DataType, v domain.Value) (predicate.Literal, error) {
	switch dt.ID() {
	case arrow.BOOL:
		b, ok := v.Bool()
		if !ok {
			return predicate.Literal{}, mismatch(dt, v)
		}
		return predicate.NewLiteral(dt, b), nil

	case arrow.INT32:
		i, err := nativeInt64(dt, v)
		if err != nil {
			return predicate.Literal{}, err
		}
		n, err := narrowInt32(i)
		if err != nil {
			return predicate.Literal{}, errors.Wrapf(err, "int32 value %d", i)
		}
		return predicate.NewLiteral(dt, n), nil

	case arrow.INT64:
		i, err := nativeInt64(dt, v)
		if err != nil {
			return predicate.Literal{}, err
		}
		return predicate.NewLiteral(dt, i), nil

	case arrow.FLOAT32:
		// The engine boxes float32 as the IEEE-754 bit pattern widened into
		// its 64-bit integer representation.
		i, err := nativeInt64(dt, v)
		if err != nil {
			return predicate.Literal{}, err
		}
		bits, err := narrowInt32(i)
		if err != nil {
			return predicate.Literal{}, errors.Wrapf(err, "float32 bits %d", i)
		}
		return predicate.NewLiteral(dt, math.Float32frombits(uint32(bits))), nil

	case arrow.FLOAT64:
		f, ok := v.Float64()
		if !ok {
			return predicate.Literal{}, mismatch(dt, v)
		}
		return predicate.NewLiteral(dt, f), nil

	case arrow.DATE32:
		i, err := nativeInt64(dt, v)
		if err != nil {
			return predicate.Literal{}, err
		}
		d, err := narrowInt32(i)
		if err != nil {
			return predicate.Literal{}, errors.Wrapf(err, "day count %d", i)
		}
		return predicate.NewLiteral(dt, arrow.Date32(d)), nil

	case arrow.TIME32:
		tt := dt.(*arrow.Time32Type)
		if tt.Unit != arrow.Millisecond {
			return predicate.Literal{}, errors.Wrapf(cerrors.ErrUnsupportedType, "time unit %s", tt.Unit)
		}
		// picoseconds since midnight, truncated to milliseconds
		i, err := nativeInt64(dt, v)
		if err != nil {
			return predicate.Literal{}, err
		}
		return predicate.NewLiteral(dt, arrow.Time32(int32(i/picosPerMilli))), nil

	case arrow.TIMESTAMP:
		return decodeTimestamp(dt.(*arrow.TimestampType), v)

	case arrow.STRING:
		b, ok := v.Bytes()
		if !ok {
			return predicate.Literal{}, mismatch(dt, v)
		}
		// string conversion copies; the literal never aliases engine memory
		return predicate.NewLiteral(dt, string(b)), nil

	case arrow.BINARY, arrow.FIXED_SIZE_BINARY:
		b, ok := v.Bytes()
		if !ok {
			return predicate.Literal{}, mismatch(dt, v)
		}
		return predicate.NewLiteral(dt, append([]byte(nil), b...)), nil

	case arrow.DECIMAL128:
		return decodeDecimal(dt.(*arrow.Decimal128Type), v)
	}

	return predicate.Literal{}, errors.Wrapf(cerrors.ErrUnsupportedType, "%s", dt.Name())
}

func decodeTimestamp(tt *arrow.TimestampType, v domain.Value) (predicate.Literal, error) {
	if tt.Unit != arrow.Millisecond {
		return predicate.Literal{}, errors.Wrapf(cerrors.ErrUnsupportedType, "timestamp unit %s", tt.Unit)
	}
	if tt.TimeZone == "" {
		// The engine hands zone-less timestamps as epoch micros; truncating
		// to millis is the convention inherited from the engine's contract,
		// carried over rather than re-derived.
		i, err := nativeInt64(tt, v)
		if err != nil {
			return predicate.Literal{}, err
		}
		return predicate.NewLiteral(tt, arrow.Timestamp(i/microsPerMilli)), nil
	}
	if i, ok := v.Int64(); ok {
		// already packed epoch-millis plus zone offset, passed through as-is
		return predicate.NewLiteral(tt, i), nil
	}
	z, ok := v.Zoned()
	if !ok {
		return predicate.Literal{}, mismatch(tt, v)
	}
	return predicate.NewLiteral(tt, arrow.Timestamp(z.EpochMillis)), nil
}

func decodeDecimal(dt *arrow.Decimal128Type, v domain.Value) (predicate.Literal, error) {
	var num decimal128.Num
	if i, ok := v.Int64(); ok {
		num = decimal128.FromI64(i)
	} else if bi, ok := v.BigInt(); ok {
		// FromBigInt panics past 128 bits instead of returning an error
		if bi.BitLen() > 127 {
			return predicate.Literal{}, errors.Wrapf(cerrors.ErrNumericOverflow, "unscaled value needs %d bits", bi.BitLen())
		}
		num = decimal128.FromBigInt(bi)
	} else {
		return predicate.Literal{}, mismatch(dt, v)
	}
	if !num.FitsInPrecision(dt.Precision) {
		return predicate.Literal{}, errors.Wrapf(cerrors.ErrNumericOverflow, "decimal(%d,%d)", dt.Precision, dt.Scale)
	}
	return predicate.NewLiteral(dt, num), nil
}

func nativeInt64(dt arrow.DataType, v domain.Value) (int64, error) {
	i, ok := v.Int64()
	if !ok {
		return 0, mismatch(dt, v)
	}
	return i, nil
}

func narrowInt32(i int64) (int32, error) {
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, cerrors.ErrNumericOverflow
	}
	return int32(i), nil
}

func mismatch(dt arrow.DataType, v domain.Value) error {
	return errors.Wrapf(cerrors.ErrUnsupportedType, "%s value boxed as %s", dt.Name(), v.Kind())
}
