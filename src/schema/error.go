package schema

import "fmt"

// ValidationError is the single error kind reported by Serialize and
// Deserialize. It identifies the offending field and value. There is no
// partial success: a record either converts in full or fails as a whole.
type ValidationError struct {
	Resource string
	Field    string
	Value    any
	Reason   string
}

func (self *ValidationError) Error() string {
	return fmt.Sprintf("%s: field '%s': value %#v: %s", self.Resource, self.Field, self.Value, self.Reason)
}

func newValidationError(resource string, field string, value any, reason string) *ValidationError {
	return &ValidationError{
		Resource: resource,
		Field:    field,
		Value:    value,
		Reason:   reason,
	}
}
