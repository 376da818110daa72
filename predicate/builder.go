package predicate

import (
	"github.com/openlake-io/lakestore/schema"
)

// LeafBuilder constructs leaf predicates addressed by field position. The
// pushdown converter depends on this interface only, so another storage
// engine can plug in its own algebra.
type LeafBuilder interface {
	Equal(field int, value Literal) Predicate
	In(field int, values []Literal) Predicate
	GreaterThan(field int, value Literal) Predicate
	GreaterOrEqual(field int, value Literal) Predicate
	LessThan(field int, value Literal) Predicate
	LessOrEqual(field int, value Literal) Predicate
	IsNull(field int) Predicate
	IsNotNull(field int) Predicate
}

// Builder is the default LeafBuilder, bound to a row schema so leaves carry
// the field name alongside its position.
type Builder struct {
	schema *schema.Schema
}

var _ LeafBuilder = (*Builder)(nil)

func NewBuilder(s *schema.Schema) *Builder {
	return &Builder{schema: s}
}

func (b *Builder) leaf(fn Function, field int, values ...Literal) Predicate {
	return &Leaf{
		Fn:         fn,
		FieldIndex: field,
		FieldName:  b.schema.Field(field).Name,
		Literals:   values,
	}
}

func (b *Builder) Equal(field int, value Literal) Predicate {
	return b.leaf(Equal, field, value)
}

// In builds the membership leaf. A single-element list collapses to Equal,
// giving the scan planner the cheaper comparison.
func (b *Builder) In(field int, values []Literal) Predicate {
	if len(values) == 1 {
		return b.Equal(field, values[0])
	}
	owned := make([]Literal, len(values))
	copy(owned, values)
	return &Leaf{
		Fn:         In,
		FieldIndex: field,
		FieldName:  b.schema.Field(field).Name,
		Literals:   owned,
	}
}

func (b *Builder) GreaterThan(field int, value Literal) Predicate {
	return b.leaf(GreaterThan, field, value)
}

func (b *Builder) GreaterOrEqual(field int, value Literal) Predicate {
	return b.leaf(GreaterOrEqual, field, value)
}

func (b *Builder) LessThan(field int, value Literal) Predicate {
	return b.leaf(LessThan, field, value)
}

func (b *Builder) LessOrEqual(field int, value Literal) Predicate {
	return b.leaf(LessOrEqual, field, value)
}

func (b *Builder) IsNull(field int) Predicate {
	return b.leaf(IsNull, field)
}

func (b *Builder) IsNotNull(field int) Predicate {
	return b.leaf(IsNotNull, field)
}
