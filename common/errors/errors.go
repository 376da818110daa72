package errors

import "errors"

var (
	// ErrUnsupportedType signals a value that cannot be decoded for its
	// declared logical type.
	ErrUnsupportedType = errors.New("unsupported logical type")
	// ErrUnsupportedComplexType signals a filter over a list, map or struct
	// column. These are refused outright: an approximated predicate over a
	// composite column could drop rows a deletion-oriented scan still needs.
	ErrUnsupportedComplexType = errors.New("unsupported complex type")
	// ErrAlwaysTruePredicate signals a domain every value satisfies. The
	// predicate algebra has no leaf for it; the caller pushes nothing for
	// that column instead.
	ErrAlwaysTruePredicate = errors.New("always-true domain has no predicate form")
	// ErrAlwaysFalsePredicate signals a domain no value satisfies. Like the
	// always-true shape it has no leaf form and degrades to "no predicate",
	// which is safe only because the engine re-applies its filters after the
	// scan.
	ErrAlwaysFalsePredicate = errors.New("always-false domain has no predicate form")
	// ErrNumericOverflow signals a narrowing conversion out of range.
	ErrNumericOverflow = errors.New("numeric value out of range")
	// ErrFieldNotFound signals a predicate referencing a field the schema
	// does not contain.
	ErrFieldNotFound = errors.New("field not found")
)
