package schema

type FieldType string

const (
	FieldTypeString     FieldType = "string"
	FieldTypeStringList FieldType = "stringList"
)

// Field describes one attribute of a resource: its in-memory name, the key
// used on the wire, its type and an optional set of allowed values.
//
// Name and Key coincide for most generated bindings but are declared
// independently because the REST API is free to rename wire keys.
type Field struct {
	// (required) In-memory field name
	Name string
	// (required) Key in the serialized request/response body
	Key string
	// (required) Type of the field value
	Type FieldType
	// (optional) Exact allowed values. nil means unconstrained.
	// Matching is case-sensitive, no trimming, no synonyms.
	Enum []string
	// Field may appear in the body of a creation request
	Postable bool
	// Field may appear in the body of an update request
	Patchable bool
}
