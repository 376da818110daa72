package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainShapes(t *testing.T) {
	all := AllDomain()
	assert.True(t, all.IsAll())
	assert.True(t, all.ValuesAreAll())
	assert.True(t, all.NullAllowed())

	none := NoneDomain()
	assert.True(t, none.IsNone())
	assert.True(t, none.ValuesAreNone())
	assert.False(t, none.NullAllowed())

	onlyNull := OnlyNullDomain()
	assert.False(t, onlyNull.IsNone())
	assert.True(t, onlyNull.ValuesAreNone())
	assert.True(t, onlyNull.NullAllowed())

	notNull := NotNullDomain()
	assert.False(t, notNull.IsAll())
	assert.True(t, notNull.ValuesAreAll())
	assert.False(t, notNull.NullAllowed())

	ranged := RangeDomain(true, BetweenRange(Int64Value(1), Int64Value(5)))
	assert.False(t, ranged.IsAll())
	assert.False(t, ranged.ValuesAreNone())
	assert.False(t, ranged.ValuesAreAll())
	assert.True(t, ranged.NullAllowed())
	assert.Len(t, ranged.Ranges(), 1)

	// a range domain with no ranges collapses to the null-only or none shape
	empty := RangeDomain(true)
	assert.True(t, empty.ValuesAreNone())
	assert.True(t, empty.NullAllowed())
}

func TestRangeSingleValue(t *testing.T) {
	single := EqualRange(Int64Value(42))
	assert.True(t, single.IsSingleValue())
	assert.True(t, single.SingleValue().Equal(Int64Value(42)))

	multi := BetweenRange(Int64Value(1), Int64Value(2))
	assert.False(t, multi.IsSingleValue())
	assert.Panics(t, func() { multi.SingleValue() })

	halfOpen := GreaterThanRange(Int64Value(0))
	assert.False(t, halfOpen.IsSingleValue())
	assert.False(t, halfOpen.IsLowUnbounded())
	assert.True(t, halfOpen.IsHighUnbounded())

	open := AllRange()
	assert.True(t, open.IsLowUnbounded())
	assert.True(t, open.IsHighUnbounded())

	// exclusive bounds on the same value are not a single value
	exclusive := Range{Low: ExclusiveBound(Int64Value(7)), High: ExclusiveBound(Int64Value(7))}
	assert.False(t, exclusive.IsSingleValue())
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Int64Value(1).Equal(Int64Value(1)))
	assert.False(t, Int64Value(1).Equal(Int64Value(2)))
	assert.False(t, Int64Value(1).Equal(Float64Value(1)))
	assert.True(t, StringValue("a").Equal(BytesValue([]byte("a"))))
	assert.True(t, BigIntValue(big.NewInt(10)).Equal(BigIntValue(big.NewInt(10))))
	assert.False(t, BigIntValue(big.NewInt(10)).Equal(BigIntValue(big.NewInt(11))))
	z := ZonedMillis{EpochMillis: 1000, ZoneID: "UTC"}
	assert.True(t, ZonedMillisValue(z).Equal(ZonedMillisValue(z)))
}

func TestTupleDomain(t *testing.T) {
	assert.True(t, AllTupleDomain().IsAll())
	assert.False(t, AllTupleDomain().IsNone())
	assert.True(t, NoneTupleDomain().IsNone())
	assert.True(t, WithColumnDomains(nil).IsAll())

	td := WithColumnDomains(map[string]Domain{"age": NotNullDomain()})
	assert.False(t, td.IsAll())
	assert.False(t, td.IsNone())
	assert.Len(t, td.ColumnDomains(), 1)
}
