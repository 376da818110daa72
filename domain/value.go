package domain

import (
	"bytes"
	"math/big"
)

// Kind identifies the boxing the query engine used for a native value.
type Kind int8

const (
	// KindInt64 boxes every fixed-width value: integers, day counts,
	// picoseconds-of-day, epoch micros, float32 bit patterns, unscaled
	// decimals up to 64 bits and packed zoned timestamps.
	KindInt64 Kind = iota
	KindFloat64
	KindBool
	// KindBytes boxes character strings and binary alike.
	KindBytes
	// KindBigInt boxes unscaled decimals wider than 64 bits.
	KindBigInt
	// KindZonedMillis boxes the composite long timestamp with time zone.
	KindZonedMillis
)

func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindBytes:
		return "bytes"
	case KindBigInt:
		return "bigint"
	case KindZonedMillis:
		return "zoned-millis"
	}
	return "unknown"
}

// ZonedMillis is the composite form of a timestamp with time zone: epoch
// milliseconds plus sub-millisecond precision and the zone it was written in.
type ZonedMillis struct {
	EpochMillis  int64
	PicosOfMilli int32
	ZoneID       string
}

// Value is one query-engine-native literal. It is never a SQL NULL; null
// admission is carried on the Domain, not on values.
type Value struct {
	kind  Kind
	i     int64
	f     float64
	b     bool
	bytes []byte
	big   *big.Int
	zoned ZonedMillis
}

func Int64Value(v int64) Value {
	return Value{kind: KindInt64, i: v}
}

func Float64Value(v float64) Value {
	return Value{kind: KindFloat64, f: v}
}

func BoolValue(v bool) Value {
	return Value{kind: KindBool, b: v}
}

func BytesValue(v []byte) Value {
	return Value{kind: KindBytes, bytes: v}
}

func StringValue(v string) Value {
	return Value{kind: KindBytes, bytes: []byte(v)}
}

func BigIntValue(v *big.Int) Value {
	return Value{kind: KindBigInt, big: v}
}

func ZonedMillisValue(v ZonedMillis) Value {
	return Value{kind: KindZonedMillis, zoned: v}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Int64() (int64, bool) {
	return v.i, v.kind == KindInt64
}

func (v Value) Float64() (float64, bool) {
	return v.f, v.kind == KindFloat64
}

func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) Bytes() ([]byte, bool) {
	return v.bytes, v.kind == KindBytes
}

func (v Value) BigInt() (*big.Int, bool) {
	return v.big, v.kind == KindBigInt
}

func (v Value) Zoned() (ZonedMillis, bool) {
	return v.zoned, v.kind == KindZonedMillis
}

// Equal reports whether two native values carry the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt64:
		return v.i == o.i
	case KindFloat64:
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	case KindBytes:
		return bytes.Equal(v.bytes, o.bytes)
	case KindBigInt:
		return v.big.Cmp(o.big) == 0
	case KindZonedMillis:
		return v.zoned == o.zoned
	}
	return false
}
