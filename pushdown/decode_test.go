package pushdown

import (
	"math"
	"math/big"
	"testing"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/decimal128"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/openlake-io/lakestore/common/errors"
	"github.com/openlake-io/lakestore/domain"
)

func TestDecodeBool(t *testing.T) {
	lit, err := DecodeValue(arrow.FixedWidthTypes.Boolean, domain.BoolValue(true))
	require.NoError(t, err)
	assert.Equal(t, true, lit.Value)

	_, err = DecodeValue(arrow.FixedWidthTypes.Boolean, domain.Int64Value(1))
	assert.ErrorIs(t, err, cerrors.ErrUnsupportedType)
}

func TestDecodeInt32(t *testing.T) {
	lit, err := DecodeValue(arrow.PrimitiveTypes.Int32, domain.Int64Value(-7))
	require.NoError(t, err)
	assert.Equal(t, int32(-7), lit.Value)

	_, err = DecodeValue(arrow.PrimitiveTypes.Int32, domain.Int64Value(int64(math.MaxInt32)+1))
	assert.ErrorIs(t, err, cerrors.ErrNumericOverflow)
	_, err = DecodeValue(arrow.PrimitiveTypes.Int32, domain.Int64Value(int64(math.MinInt32)-1))
	assert.ErrorIs(t, err, cerrors.ErrNumericOverflow)
}

func TestDecodeInt64(t *testing.T) {
	lit, err := DecodeValue(arrow.PrimitiveTypes.Int64, domain.Int64Value(math.MaxInt64))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), lit.Value)
}

func TestDecodeFloat32RoundTrip(t *testing.T) {
	for _, f := range []float32{0, 1.5, -3.14159, math.MaxFloat32, float32(math.Inf(-1))} {
		boxed := int64(int32(math.Float32bits(f)))
		lit, err := DecodeValue(arrow.PrimitiveTypes.Float32, domain.Int64Value(boxed))
		require.NoError(t, err)
		assert.Equal(t, math.Float32bits(f), math.Float32bits(lit.Value.(float32)))
	}
}

func TestDecodeFloat64(t *testing.T) {
	lit, err := DecodeValue(arrow.PrimitiveTypes.Float64, domain.Float64Value(2.718281828))
	require.NoError(t, err)
	assert.Equal(t, 2.718281828, lit.Value)
}

func TestDecodeDate(t *testing.T) {
	lit, err := DecodeValue(arrow.FixedWidthTypes.Date32, domain.Int64Value(19000))
	require.NoError(t, err)
	assert.Equal(t, arrow.Date32(19000), lit.Value)

	_, err = DecodeValue(arrow.FixedWidthTypes.Date32, domain.Int64Value(int64(math.MaxInt32)+1))
	assert.ErrorIs(t, err, cerrors.ErrNumericOverflow)
}

func TestDecodeTimeMillis(t *testing.T) {
	// picoseconds since midnight truncate to milliseconds
	picos := int64(47)*1_000_000_000 + 999_999_999
	lit, err := DecodeValue(arrow.FixedWidthTypes.Time32ms, domain.Int64Value(picos))
	require.NoError(t, err)
	assert.Equal(t, arrow.Time32(47), lit.Value)

	_, err = DecodeValue(arrow.FixedWidthTypes.Time32s, domain.Int64Value(picos))
	assert.ErrorIs(t, err, cerrors.ErrUnsupportedType)
}

func TestDecodeTimestamp(t *testing.T) {
	noZone := &arrow.TimestampType{Unit: arrow.Millisecond}
	// engine sends epoch micros for zone-less timestamps
	lit, err := DecodeValue(noZone, domain.Int64Value(1_700_000_123_456))
	require.NoError(t, err)
	assert.Equal(t, arrow.Timestamp(1_700_000_123), lit.Value)

	_, err = DecodeValue(&arrow.TimestampType{Unit: arrow.Microsecond}, domain.Int64Value(1))
	assert.ErrorIs(t, err, cerrors.ErrUnsupportedType)
}

func TestDecodeTimestampWithZone(t *testing.T) {
	zoned := &arrow.TimestampType{Unit: arrow.Millisecond, TimeZone: "UTC"}

	// the packed scalar form passes through untouched
	lit, err := DecodeValue(zoned, domain.Int64Value(0x1234_5678))
	require.NoError(t, err)
	assert.Equal(t, int64(0x1234_5678), lit.Value)

	// the composite form is unpacked to epoch millis
	lit, err = DecodeValue(zoned, domain.ZonedMillisValue(domain.ZonedMillis{
		EpochMillis:  1_700_000_123,
		PicosOfMilli: 42,
		ZoneID:       "Europe/Berlin",
	}))
	require.NoError(t, err)
	assert.Equal(t, arrow.Timestamp(1_700_000_123), lit.Value)

	_, err = DecodeValue(zoned, domain.Float64Value(1))
	assert.ErrorIs(t, err, cerrors.ErrUnsupportedType)
}

func TestDecodeStringCopies(t *testing.T) {
	src := []byte("hello")
	lit, err := DecodeValue(arrow.BinaryTypes.String, domain.BytesValue(src))
	require.NoError(t, err)
	src[0] = 'X'
	assert.Equal(t, "hello", lit.Value)
}

func TestDecodeBinaryCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	lit, err := DecodeValue(arrow.BinaryTypes.Binary, domain.BytesValue(src))
	require.NoError(t, err)
	src[0] = 99
	assert.Equal(t, []byte{1, 2, 3}, lit.Value)

	fixed := &arrow.FixedSizeBinaryType{ByteWidth: 3}
	lit, err = DecodeValue(fixed, domain.BytesValue([]byte{4, 5, 6}))
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 5, 6}, lit.Value)
}

func TestDecodeDecimalFromInt64(t *testing.T) {
	dt := &arrow.Decimal128Type{Precision: 10, Scale: 2}
	lit, err := DecodeValue(dt, domain.Int64Value(1050))
	require.NoError(t, err)
	// unscaled 1050 at scale 2 is exactly 10.50
	assert.Equal(t, decimal128.FromI64(1050), lit.Value)
	assert.Equal(t, dt, lit.Type)
}

func TestDecodeDecimalFromBigInt(t *testing.T) {
	dt := &arrow.Decimal128Type{Precision: 30, Scale: 2}
	unscaled, ok := new(big.Int).SetString("123456789012345678901234567", 10)
	require.True(t, ok)
	lit, err := DecodeValue(dt, domain.BigIntValue(unscaled))
	require.NoError(t, err)
	// no rounding: the unscaled integer survives bit for bit
	assert.Zero(t, lit.Value.(decimal128.Num).BigInt().Cmp(unscaled))
}

func TestDecodeDecimalOverflow(t *testing.T) {
	dt := &arrow.Decimal128Type{Precision: 4, Scale: 2}
	_, err := DecodeValue(dt, domain.Int64Value(123456))
	assert.ErrorIs(t, err, cerrors.ErrNumericOverflow)
}

func TestDecodeDecimalWiderThan128Bits(t *testing.T) {
	dt := &arrow.Decimal128Type{Precision: 38, Scale: 0}
	unscaled := new(big.Int).Lsh(big.NewInt(1), 200)
	// must come back as an overflow error, never a panic
	assert.NotPanics(t, func() {
		_, err := DecodeValue(dt, domain.BigIntValue(unscaled))
		assert.ErrorIs(t, err, cerrors.ErrNumericOverflow)
	})
}

func TestDecodeUnsupportedType(t *testing.T) {
	list := arrow.ListOf(arrow.BinaryTypes.String)
	_, err := DecodeValue(list, domain.StringValue("x"))
	assert.ErrorIs(t, err, cerrors.ErrUnsupportedType)

	m := arrow.MapOf(arrow.BinaryTypes.String, arrow.PrimitiveTypes.Int64)
	_, err = DecodeValue(m, domain.StringValue("x"))
	assert.ErrorIs(t, err, cerrors.ErrUnsupportedType)
}
