// Package predicate defines the storage-side predicate algebra: an immutable
// tree of per-field leaves combined by and/or, addressed by field position in
// a row schema. Trees are built once per scan and handed to the scan planner.
package predicate

import (
	"fmt"
	"strings"

	"github.com/apache/arrow/go/v12/arrow"
)

// Function identifies a leaf operation.
type Function int8

const (
	Equal Function = iota
	In
	GreaterThan
	GreaterOrEqual
	LessThan
	LessOrEqual
	IsNull
	IsNotNull
)

func (f Function) String() string {
	switch f {
	case Equal:
		return "equal"
	case In:
		return "in"
	case GreaterThan:
		return "greaterThan"
	case GreaterOrEqual:
		return "greaterOrEqual"
	case LessThan:
		return "lessThan"
	case LessOrEqual:
		return "lessOrEqual"
	case IsNull:
		return "isNull"
	case IsNotNull:
		return "isNotNull"
	}
	return "unknown"
}

// Literal is one decoded storage-native value. Value holds bool, int32,
// int64, float32, float64, arrow.Date32, arrow.Time32, arrow.Timestamp,
// string, []byte or decimal128.Num depending on Type. A packed zoned
// timestamp is carried as its raw int64.
type Literal struct {
	Type  arrow.DataType
	Value any
}

func NewLiteral(dt arrow.DataType, v any) Literal {
	return Literal{Type: dt, Value: v}
}

func (l Literal) String() string {
	return fmt.Sprintf("%v", l.Value)
}

// Predicate is a node of the tree. The set of implementations is closed.
type Predicate interface {
	fmt.Stringer
	predicateNode()
}

// Leaf is an atomic condition on one field.
type Leaf struct {
	Fn         Function
	FieldIndex int
	FieldName  string
	Literals   []Literal
}

func (*Leaf) predicateNode() {}

func (l *Leaf) String() string {
	if len(l.Literals) == 0 {
		return fmt.Sprintf("%s(%s)", l.Fn, l.FieldName)
	}
	vals := make([]string, 0, len(l.Literals))
	for _, lit := range l.Literals {
		vals = append(vals, lit.String())
	}
	return fmt.Sprintf("%s(%s, %s)", l.Fn, l.FieldName, strings.Join(vals, ", "))
}

// Combinator joins child predicates.
type Combinator int8

const (
	CombineAnd Combinator = iota
	CombineOr
)

func (c Combinator) String() string {
	if c == CombineOr {
		return "or"
	}
	return "and"
}

// Compound joins two or more children with and/or.
type Compound struct {
	Op       Combinator
	Children []Predicate
}

func (*Compound) predicateNode() {}

func (c *Compound) String() string {
	parts := make([]string, 0, len(c.Children))
	for _, ch := range c.Children {
		parts = append(parts, ch.String())
	}
	return fmt.Sprintf("%s(%s)", c.Op, strings.Join(parts, ", "))
}

// Constant is the always-true / always-false predicate.
type Constant struct {
	Value bool
}

func (*Constant) predicateNode() {}

func (c *Constant) String() string {
	if c.Value {
		return "true"
	}
	return "false"
}

// True returns the always-true predicate.
func True() Predicate {
	return &Constant{Value: true}
}

// False returns the always-false predicate.
func False() Predicate {
	return &Constant{Value: false}
}

// And conjoins predicates. An empty conjunction is always true; a single
// child is returned unchanged.
func And(children ...Predicate) Predicate {
	switch len(children) {
	case 0:
		return True()
	case 1:
		return children[0]
	}
	return &Compound{Op: CombineAnd, Children: children}
}

// Or disjoins predicates. An empty disjunction is always false; a single
// child is returned unchanged.
func Or(children ...Predicate) Predicate {
	switch len(children) {
	case 0:
		return False()
	case 1:
		return children[0]
	}
	return &Compound{Op: CombineOr, Children: children}
}
