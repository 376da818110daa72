package pushdown

import (
	"github.com/apache/arrow/go/v12/arrow"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	cerrors "github.com/openlake-io/lakestore/common/errors"
	"github.com/openlake-io/lakestore/common/log"
	"github.com/openlake-io/lakestore/domain"
	"github.com/openlake-io/lakestore/predicate"
	"github.com/openlake-io/lakestore/schema"
)

// Converter turns a TupleDomain into one predicate tree over a fixed row
// schema. A converter is cheap and stateless; one per scan-planning call is
// the expected use, and concurrent calls on independent converters are safe.
type Converter struct {
	schema  *schema.Schema
	builder predicate.LeafBuilder
}

func NewConverter(s *schema.Schema) *Converter {
	return &Converter{schema: s, builder: predicate.NewBuilder(s)}
}

// NewConverterWithBuilder lets another storage engine supply its own leaf
// algebra.
func NewConverterWithBuilder(s *schema.Schema, b predicate.LeafBuilder) *Converter {
	return &Converter{schema: s, builder: b}
}

// Convert returns the conjunction of every representable per-column
// constraint, or ok=false when nothing can be pushed down. Columns whose
// domain cannot be converted are skipped, which widens the scan and is safe
// because the engine re-filters.
//
// A constraint set the engine proved unsatisfiable also returns ok=false:
// the algebra currently has no always-false form to push, so the scan runs
// unfiltered and the engine's own re-filtering discards every row.
func (c *Converter) Convert(td domain.TupleDomain) (predicate.Predicate, bool) {
	if td.IsAll() {
		return nil, false
	}
	if td.IsNone() {
		return nil, false
	}

	domains := td.ColumnDomains()
	conjuncts := make([]predicate.Predicate, 0, len(domains))
	// Iterating schema positions keeps the conjunct order deterministic and
	// drops constraints on columns outside this schema (synthetic or system
	// columns) without further bookkeeping.
	for field := 0; field < c.schema.NumFields(); field++ {
		f := c.schema.Field(field)
		d, ok := domains[f.Name]
		if !ok {
			continue
		}
		p, err := c.columnPredicate(field, f.Type, d)
		if err != nil {
			if errors.Is(err, cerrors.ErrAlwaysTruePredicate) || errors.Is(err, cerrors.ErrAlwaysFalsePredicate) {
				log.Debug("domain shape has no predicate form, skipping column",
					zap.String("column", f.Name), zap.Error(err))
			} else {
				log.Warn("cannot convert filter, skipping column",
					zap.String("column", f.Name), zap.String("type", f.Type.Name()), zap.Error(err))
			}
			continue
		}
		conjuncts = append(conjuncts, p)
	}

	if len(conjuncts) == 0 {
		return nil, false
	}
	return predicate.And(conjuncts...), true
}

func (c *Converter) columnPredicate(field int, dt arrow.DataType, d domain.Domain) (predicate.Predicate, error) {
	// Composite columns are refused before any shape handling. An
	// approximated filter on one of these could drop rows a
	// deletion-oriented scan still needs, so they never degrade to a
	// weaker predicate mid-expression.
	switch dt.ID() {
	case arrow.LIST, arrow.LARGE_LIST, arrow.FIXED_SIZE_LIST, arrow.MAP, arrow.STRUCT:
		return nil, errors.Wrapf(cerrors.ErrUnsupportedComplexType, "%s", dt.Name())
	}

	if d.IsAll() {
		return nil, cerrors.ErrAlwaysTruePredicate
	}
	if d.ValuesAreNone() {
		if d.NullAllowed() {
			return c.builder.IsNull(field), nil
		}
		return nil, cerrors.ErrAlwaysFalsePredicate
	}
	if d.ValuesAreAll() {
		// null admission was handled by the IsAll branch above
		return c.builder.IsNotNull(field), nil
	}

	var inValues []predicate.Literal
	var rangePreds []predicate.Predicate
	for _, r := range d.Ranges() {
		if r.IsSingleValue() {
			lit, err := DecodeValue(dt, r.SingleValue())
			if err != nil {
				return nil, err
			}
			inValues = append(inValues, lit)
			continue
		}
		p, err := c.rangePredicate(field, dt, r)
		if err != nil {
			return nil, err
		}
		rangePreds = append(rangePreds, p)
	}

	disjuncts := make([]predicate.Predicate, 0, len(rangePreds)+2)
	if len(inValues) > 0 {
		disjuncts = append(disjuncts, c.builder.In(field, inValues))
	}
	disjuncts = append(disjuncts, rangePreds...)
	if d.NullAllowed() {
		disjuncts = append(disjuncts, c.builder.IsNull(field))
	}
	return predicate.Or(disjuncts...), nil
}

func (c *Converter) rangePredicate(field int, dt arrow.DataType, r domain.Range) (predicate.Predicate, error) {
	if r.IsSingleValue() {
		// classification already routed single values into the membership
		// set; handled here anyway so the function stands on its own
		lit, err := DecodeValue(dt, r.SingleValue())
		if err != nil {
			return nil, err
		}
		return c.builder.Equal(field, lit), nil
	}

	conjuncts := make([]predicate.Predicate, 0, 2)
	if !r.IsLowUnbounded() {
		lit, err := DecodeValue(dt, r.Low.Value)
		if err != nil {
			return nil, err
		}
		if r.Low.Kind == domain.Inclusive {
			conjuncts = append(conjuncts, c.builder.GreaterOrEqual(field, lit))
		} else {
			conjuncts = append(conjuncts, c.builder.GreaterThan(field, lit))
		}
	}
	if !r.IsHighUnbounded() {
		lit, err := DecodeValue(dt, r.High.Value)
		if err != nil {
			return nil, err
		}
		if r.High.Kind == domain.Inclusive {
			conjuncts = append(conjuncts, c.builder.LessOrEqual(field, lit))
		} else {
			conjuncts = append(conjuncts, c.builder.LessThan(field, lit))
		}
	}
	// a range unbounded on both ends yields the empty conjunction, which is
	// the always-true predicate
	return predicate.And(conjuncts...), nil
}
