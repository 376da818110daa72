// Package pushdown converts a query engine's per-column filter constraints
// (domain.TupleDomain) into the storage engine's predicate algebra
// (predicate.Predicate) so the scan layer can skip row groups and rows
// without materializing them.
//
// The conversion is a pure optimization, never a correctness boundary: the
// engine re-applies its original filters after the scan, so anything this
// package cannot represent is simply left out of the pushed predicate. A
// dropped or weakened predicate is allowed; a wrong one is not. For that
// reason filters over list, map and struct columns are refused outright
// rather than approximated.
//
// Failures are column-scoped. A value that cannot be decoded, an overflowing
// narrowing conversion or an unrepresentable domain shape removes only that
// column's conjunct; the remaining columns still produce a predicate.
//
//	sc := schema.NewSchema(arrowSchema)
//	conv := pushdown.NewConverter(sc)
//	pred, ok := conv.Convert(tupleDomain)
//	if ok {
//	    groups, _ := scan.SelectRowGroups(reader, pred)
//	}
//
// This contract holds only when the caller re-filters scan results. Do not
// reuse the converter in a pipeline without that guarantee.
package pushdown
