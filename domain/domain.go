// Package domain models the query engine's per-column filter constraints:
// ordered, non-overlapping value ranges plus a null-admission flag. The
// constraint set is handed to the pushdown converter as a TupleDomain.
//
// Ranges arrive pre-sorted and non-overlapping from the engine; this package
// never re-sorts or merges them.
package domain

// BoundKind tells whether a range endpoint includes its value, excludes it,
// or extends to infinity.
type BoundKind int8

const (
	Unbounded BoundKind = iota
	Inclusive
	Exclusive
)

// Bound is one endpoint of a range. Value is meaningful only when Kind is
// not Unbounded.
type Bound struct {
	Kind  BoundKind
	Value Value
}

func InclusiveBound(v Value) Bound {
	return Bound{Kind: Inclusive, Value: v}
}

func ExclusiveBound(v Value) Bound {
	return Bound{Kind: Exclusive, Value: v}
}

func UnboundedBound() Bound {
	return Bound{Kind: Unbounded}
}

// Range is a contiguous interval of permitted values for one column.
type Range struct {
	Low  Bound
	High Bound
}

// IsSingleValue reports whether the range admits exactly one value: both
// ends bounded, inclusive and equal.
func (r Range) IsSingleValue() bool {
	return r.Low.Kind == Inclusive && r.High.Kind == Inclusive && r.Low.Value.Equal(r.High.Value)
}

// SingleValue returns the single admitted value. Callers must have checked
// IsSingleValue first.
func (r Range) SingleValue() Value {
	if !r.IsSingleValue() {
		panic("domain: SingleValue on a multi-value range")
	}
	return r.Low.Value
}

func (r Range) IsLowUnbounded() bool {
	return r.Low.Kind == Unbounded
}

func (r Range) IsHighUnbounded() bool {
	return r.High.Kind == Unbounded
}

func EqualRange(v Value) Range {
	return Range{Low: InclusiveBound(v), High: InclusiveBound(v)}
}

// BetweenRange admits [low, high], both ends inclusive.
func BetweenRange(low, high Value) Range {
	return Range{Low: InclusiveBound(low), High: InclusiveBound(high)}
}

func GreaterThanRange(v Value) Range {
	return Range{Low: ExclusiveBound(v), High: UnboundedBound()}
}

func GreaterOrEqualRange(v Value) Range {
	return Range{Low: InclusiveBound(v), High: UnboundedBound()}
}

func LessThanRange(v Value) Range {
	return Range{Low: UnboundedBound(), High: ExclusiveBound(v)}
}

func LessOrEqualRange(v Value) Range {
	return Range{Low: UnboundedBound(), High: InclusiveBound(v)}
}

// AllRange admits every non-null value.
func AllRange() Range {
	return Range{Low: UnboundedBound(), High: UnboundedBound()}
}

// Domain is one column's constraint: a set of admitted non-null values plus
// whether null is admitted independently.
type Domain struct {
	valuesAll   bool
	ranges      []Range
	nullAllowed bool
}

// AllDomain admits every value including null.
func AllDomain() Domain {
	return Domain{valuesAll: true, nullAllowed: true}
}

// NoneDomain admits nothing, not even null.
func NoneDomain() Domain {
	return Domain{}
}

// OnlyNullDomain admits null and nothing else.
func OnlyNullDomain() Domain {
	return Domain{nullAllowed: true}
}

// NotNullDomain admits every non-null value.
func NotNullDomain() Domain {
	return Domain{valuesAll: true}
}

// RangeDomain admits the values inside the given ranges, plus null when
// nullAllowed. Ranges must be ordered and non-overlapping.
func RangeDomain(nullAllowed bool, ranges ...Range) Domain {
	if len(ranges) == 0 {
		return Domain{nullAllowed: nullAllowed}
	}
	return Domain{ranges: ranges, nullAllowed: nullAllowed}
}

// SingleValueDomain admits exactly one non-null value.
func SingleValueDomain(v Value) Domain {
	return RangeDomain(false, EqualRange(v))
}

// IsAll reports whether every value passes, null included.
func (d Domain) IsAll() bool {
	return d.valuesAll && d.nullAllowed
}

// IsNone reports whether no value passes at all.
func (d Domain) IsNone() bool {
	return d.ValuesAreNone() && !d.nullAllowed
}

// ValuesAreNone reports whether no non-null value passes.
func (d Domain) ValuesAreNone() bool {
	return !d.valuesAll && len(d.ranges) == 0
}

// ValuesAreAll reports whether every non-null value passes.
func (d Domain) ValuesAreAll() bool {
	return d.valuesAll
}

func (d Domain) NullAllowed() bool {
	return d.nullAllowed
}

func (d Domain) Ranges() []Range {
	return d.ranges
}

// TupleDomain is the whole constraint set for one scan: either everything
// passes, provably nothing passes, or a per-column map of domains joined by
// conjunction.
type TupleDomain struct {
	none    bool
	domains map[string]Domain
}

// AllTupleDomain constrains nothing.
func AllTupleDomain() TupleDomain {
	return TupleDomain{}
}

// NoneTupleDomain marks the constraint set the engine proved unsatisfiable.
func NoneTupleDomain() TupleDomain {
	return TupleDomain{none: true}
}

func WithColumnDomains(domains map[string]Domain) TupleDomain {
	if len(domains) == 0 {
		return TupleDomain{}
	}
	return TupleDomain{domains: domains}
}

func (td TupleDomain) IsAll() bool {
	return !td.none && len(td.domains) == 0
}

func (td TupleDomain) IsNone() bool {
	return td.none
}

func (td TupleDomain) ColumnDomains() map[string]Domain {
	return td.domains
}
