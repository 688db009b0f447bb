package schema

import "slices"

// Record holds a subset of a resources field values before serialization
// into an outbound request body or after parsing an inbound response body.
//
// Absence is distinct from the zero value: a field that was never `Set()`
// is not emitted at all. Values are plain `string` or `[]string`, matching
// the declared Field.Type.
//
// A Record is not safe for concurrent mutation. It is a transient value
// scoped to a single request/response construction.
type Record struct {
	values map[string]any
	order  []string
}

func NewRecord() *Record {
	return &Record{
		values: map[string]any{},
		order:  []string{},
	}
}

func (self *Record) Set(name string, value any) {
	if _, ok := self.values[name]; !ok {
		self.order = append(self.order, name)
	}
	self.values[name] = value
}

func (self *Record) Get(name string) (any, bool) {
	value, ok := self.values[name]
	return value, ok
}

func (self *Record) Has(name string) bool {
	_, ok := self.values[name]
	return ok
}

func (self *Record) Delete(name string) {
	if _, ok := self.values[name]; !ok {
		return
	}
	delete(self.values, name)
	self.order = slices.DeleteFunc(self.order, func(n string) bool { return n == name })
}

// FieldNames returns the names of all present fields in insertion order.
func (self *Record) FieldNames() []string {
	return slices.Clone(self.order)
}

func (self *Record) Len() int {
	return len(self.values)
}
