package schema

import (
	"fmt"
	"log/slog"
	"ontap-models/src/assert"
	"ontap-models/src/config"
	"ontap-models/src/interfaces"
	"ontap-models/src/logging"
	"sort"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var schemaLogger *slog.Logger

func Setup(logManagerModule logging.LogManagerModule) {
	schemaLogger = logManagerModule.CreateLogger("schema")
}

type UnknownFieldPolicy string

const (
	// Drop unrecognized wire keys while decoding. The policy of generated
	// bindings, matching an unknown-field-tolerant REST API.
	UnknownExclude UnknownFieldPolicy = "exclude"
	// Fail decoding with a ValidationError on the first unrecognized key.
	UnknownReject UnknownFieldPolicy = "reject"
)

// DecodeOpts configure Deserialize. The unknown-field policy is a required,
// explicit choice so the contract is visible at the call site.
type DecodeOpts struct {
	UnknownFields UnknownFieldPolicy
}

// DecodeOptsFromConfig derives DecodeOpts from the library configuration.
func DecodeOptsFromConfig(c interfaces.ConfigModule) DecodeOpts {
	strict, err := strconv.ParseBool(c.Get(config.KeyStrictDecode))
	assert.Assert(err == nil, fmt.Errorf("'%s' is validated on declaration and has to parse: %w", config.KeyStrictDecode, err))
	if strict {
		return DecodeOpts{UnknownFields: UnknownReject}
	}
	return DecodeOpts{UnknownFields: UnknownExclude}
}

// Schema is the serialization contract of one resource: an ordered field
// table consulted by Serialize and Deserialize. Schemas are immutable after
// construction and safe for concurrent use.
type Schema struct {
	Resource string
	Fields   []Field

	byName map[string]*Field
	byKey  map[string]*Field
}

func NewSchema(resource string, fields []Field) *Schema {
	assert.Assert(resource != "", "resource name cant be empty")
	assert.Assert(len(fields) > 0, fmt.Errorf("schema '%s' declares no fields", resource))

	self := Schema{
		Resource: resource,
		Fields:   fields,
		byName:   map[string]*Field{},
		byKey:    map[string]*Field{},
	}

	for i := range self.Fields {
		field := &self.Fields[i]
		assert.Assert(field.Name != "", fmt.Errorf("schema '%s' declares a field without a name", resource))
		assert.Assert(field.Key != "", fmt.Errorf("schema '%s' field '%s' declares no wire key", resource, field.Name))
		assert.Assert(field.Type == FieldTypeString || field.Type == FieldTypeStringList, fmt.Errorf("schema '%s' field '%s' has unsupported type '%s'", resource, field.Name, field.Type))
		assert.Assert(field.Enum == nil || field.Type == FieldTypeString, fmt.Errorf("schema '%s' field '%s': enums are only supported on string fields", resource, field.Name))

		_, ok := self.byName[field.Name]
		assert.Assert(!ok, fmt.Errorf("schema '%s' declares field '%s' twice", resource, field.Name))
		_, ok = self.byKey[field.Key]
		assert.Assert(!ok, fmt.Errorf("schema '%s' declares wire key '%s' twice", resource, field.Key))

		self.byName[field.Name] = field
		self.byKey[field.Key] = field
	}

	return &self
}

// Serialize converts a record into a wire object. Fields absent on the
// record are omitted entirely, no null placeholders. Enumerated fields are
// checked against their allowed set.
func (self *Schema) Serialize(rec *Record) (map[string]any, error) {
	assert.Assert(rec != nil, "record cant be nil")

	for _, name := range rec.FieldNames() {
		if _, ok := self.byName[name]; !ok {
			value, _ := rec.Get(name)
			return nil, newValidationError(self.Resource, name, value, "not a declared field")
		}
	}

	wire := map[string]any{}
	for _, field := range self.Fields {
		value, ok := rec.Get(field.Name)
		if !ok {
			continue
		}
		checked, err := self.checkValue(&field, value)
		if err != nil {
			return nil, err
		}
		wire[field.Key] = checked
	}

	return wire, nil
}

// Deserialize converts a wire object into a record. Recognized keys populate
// the corresponding fields, unrecognized keys are handled per opts.
func (self *Schema) Deserialize(wire map[string]any, opts DecodeOpts) (*Record, error) {
	assert.Assert(opts.UnknownFields == UnknownExclude || opts.UnknownFields == UnknownReject, fmt.Errorf("unsupported unknown-field policy: '%s'", opts.UnknownFields))

	rec := NewRecord()
	for _, field := range self.Fields {
		value, ok := wire[field.Key]
		if !ok {
			continue
		}
		checked, err := self.checkValue(&field, value)
		if err != nil {
			return nil, err
		}
		rec.Set(field.Name, checked)
	}

	unknown := []string{}
	for key := range wire {
		if _, ok := self.byKey[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)

	for _, key := range unknown {
		if opts.UnknownFields == UnknownReject {
			return nil, newValidationError(self.Resource, key, wire[key], "unknown wire key")
		}
		if schemaLogger != nil {
			schemaLogger.Debug("unknown wire key excluded", "resource", self.Resource, "key", key)
		}
	}

	return rec, nil
}

// Marshal serializes a record straight to JSON. Keys are emitted in field
// table order so payloads are deterministic.
func (self *Schema) Marshal(rec *Record) ([]byte, error) {
	wire, err := self.Serialize(rec)
	if err != nil {
		return nil, err
	}

	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	first := true
	for _, field := range self.Fields {
		value, ok := wire[field.Key]
		if !ok {
			continue
		}
		if !first {
			stream.WriteMore()
		}
		stream.WriteObjectField(field.Key)
		stream.WriteVal(value)
		first = false
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}
	out := make([]byte, len(stream.Buffer()))
	copy(out, stream.Buffer())
	return out, nil
}

// Unmarshal parses a JSON body and deserializes it into a record.
func (self *Schema) Unmarshal(data []byte, opts DecodeOpts) (*Record, error) {
	wire := map[string]any{}
	err := json.Unmarshal(data, &wire)
	if err != nil {
		return nil, newValidationError(self.Resource, "", string(data), "body is not a JSON object")
	}
	return self.Deserialize(wire, opts)
}

// PostableFields returns the names of all fields permitted in the body of a
// resource-creation request. Computed from the field table, never stored.
func (self *Schema) PostableFields() []string {
	names := []string{}
	for _, field := range self.Fields {
		if field.Postable {
			names = append(names, field.Name)
		}
	}
	return names
}

// PatchableFields returns the names of all fields permitted in the body of a
// resource-update request. Computed from the field table, never stored.
func (self *Schema) PatchableFields() []string {
	names := []string{}
	for _, field := range self.Fields {
		if field.Patchable {
			names = append(names, field.Name)
		}
	}
	return names
}

func (self *Schema) checkValue(field *Field, value any) (any, *ValidationError) {
	switch field.Type {
	case FieldTypeString:
		str, ok := value.(string)
		if !ok {
			return nil, newValidationError(self.Resource, field.Name, value, "expected a string")
		}
		if field.Enum != nil {
			found := false
			for _, allowed := range field.Enum {
				if str == allowed {
					found = true
					break
				}
			}
			if !found {
				return nil, newValidationError(self.Resource, field.Name, str, fmt.Sprintf("expected one of %v", field.Enum))
			}
		}
		return str, nil
	case FieldTypeStringList:
		switch list := value.(type) {
		case []string:
			if list == nil {
				return []string{}, nil
			}
			return list, nil
		case []any:
			out := make([]string, 0, len(list))
			for _, element := range list {
				str, ok := element.(string)
				if !ok {
					return nil, newValidationError(self.Resource, field.Name, element, "expected a list of strings")
				}
				out = append(out, str)
			}
			return out, nil
		default:
			return nil, newValidationError(self.Resource, field.Name, value, "expected a list of strings")
		}
	}
	// NewSchema rejects any other type
	panic(fmt.Errorf("unreachable: unhandled field type '%s'", field.Type))
}
