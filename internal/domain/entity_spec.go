package domain

// FieldType represents the coercion applied to a raw field value
type FieldType string

const (
	FieldTypeString    FieldType = "string"
	FieldTypeInteger   FieldType = "integer"
	FieldTypeFloat     FieldType = "float"
	FieldTypeBoolean   FieldType = "boolean"
	FieldTypeTimestamp FieldType = "timestamp"
)

// Row is one parsed line of a delimited input file, field name to raw string.
// All declared columns are present as keys; values may be empty strings.
type Row map[string]string

// Record is a Row after type coercion into typed field values.
type Record map[string]any

// FieldSpec describes a single column of an entity's source file.
type FieldSpec struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`
	// Optional marks timestamp fields that default to the current time when
	// the source value is absent or unparseable, rather than keeping the
	// zero-time marker.
	Optional bool `json:"optional,omitempty"`
	// RequiredIdentifier marks foreign-key fields that must be present for the
	// row to be upserted at all; rows with a blank value are skipped silently.
	RequiredIdentifier bool `json:"requiredIdentifier,omitempty"`
	// References names the entity type this field points at, used by the
	// orchestrator to verify load ordering.
	References string `json:"references,omitempty"`
}

// EntitySpec is the static descriptor for one entity type: where its rows come
// from, how each field is coerced, and which field keys the upsert.
type EntitySpec struct {
	Name       string      `json:"name"`
	SourceFile string      `json:"sourceFile"`
	KeyField   string      `json:"keyField"`
	Fields     []FieldSpec `json:"fields"`
}

// References returns the entity types this spec's fields point at.
func (s EntitySpec) References() []string {
	var refs []string
	seen := make(map[string]bool)
	for _, field := range s.Fields {
		if field.References == "" || seen[field.References] {
			continue
		}
		seen[field.References] = true
		refs = append(refs, field.References)
	}
	return refs
}

// Field returns the spec for the named field.
func (s EntitySpec) Field(name string) (FieldSpec, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return FieldSpec{}, false
}

// LoadResult aggregates the outcome of reconciling one entity type.
type LoadResult struct {
	Entity        string `json:"entity"`
	RowsAttempted int    `json:"rowsAttempted"`
	RowsUpserted  int    `json:"rowsUpserted"`
	RowsSkipped   int    `json:"rowsSkipped"`
	RowErrors     int    `json:"rowErrors"`
}
