package schema

import (
	"github.com/apache/arrow/go/v12/arrow"
)

// Schema is a wrapper of arrow schema
type Schema struct {
	schema *arrow.Schema
}

func NewSchema(schema *arrow.Schema) *Schema {
	return &Schema{schema: schema}
}

func (s *Schema) ArrowSchema() *arrow.Schema {
	return s.schema
}

func (s *Schema) NumFields() int {
	return len(s.schema.Fields())
}

func (s *Schema) Field(i int) arrow.Field {
	return s.schema.Field(i)
}

// FieldIndex resolves a field name to its position in the schema. The match
// is case-sensitive and exact. It returns -1 when the schema has no such
// field; callers treat that as "column not part of this schema" rather than
// an error. If the name is duplicated the first position wins.
func (s *Schema) FieldIndex(name string) int {
	indices := s.schema.FieldIndices(name)
	if len(indices) == 0 {
		return -1
	}
	return indices[0]
}

func (s *Schema) FieldNames() []string {
	names := make([]string, 0, len(s.schema.Fields()))
	for _, f := range s.schema.Fields() {
		names = append(names, f.Name)
	}
	return names
}
