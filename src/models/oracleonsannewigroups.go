// Package models holds generated-style bindings for the application
// provisioning endpoints of the storage management REST API. Each binding is
// a typed record plus a field table consulted by the schema engine. The
// resource lifecycle (endpoints, verbs, auth, retry) lives in the consuming
// client, not here.
package models

import (
	"ontap-models/src/schema"
	"ontap-models/src/utils"
)

// The name of the host OS accessing the application.
type IgroupOsType string

const (
	IgroupOsTypeAix     IgroupOsType = "aix"
	IgroupOsTypeHpux    IgroupOsType = "hpux"
	IgroupOsTypeHyperV  IgroupOsType = "hyper_v"
	IgroupOsTypeLinux   IgroupOsType = "linux"
	IgroupOsTypeSolaris IgroupOsType = "solaris"
	IgroupOsTypeVmware  IgroupOsType = "vmware"
	IgroupOsTypeWindows IgroupOsType = "windows"
	IgroupOsTypeXen     IgroupOsType = "xen"
)

// The protocol of a new initiator group.
type IgroupProtocol string

const (
	IgroupProtocolFcp   IgroupProtocol = "fcp"
	IgroupProtocolIscsi IgroupProtocol = "iscsi"
	IgroupProtocolMixed IgroupProtocol = "mixed"
)

var IgroupOsTypeValues = []string{
	string(IgroupOsTypeAix),
	string(IgroupOsTypeHpux),
	string(IgroupOsTypeHyperV),
	string(IgroupOsTypeLinux),
	string(IgroupOsTypeSolaris),
	string(IgroupOsTypeVmware),
	string(IgroupOsTypeWindows),
	string(IgroupOsTypeXen),
}

var IgroupProtocolValues = []string{
	string(IgroupProtocolFcp),
	string(IgroupProtocolIscsi),
	string(IgroupProtocolMixed),
}

// OracleOnSanNewIgroups is the desired state of an initiator group to be
// created while provisioning an "Oracle on SAN" application. All fields are
// optional; absent fields are omitted from request bodies entirely.
type OracleOnSanNewIgroups struct {
	// The initiators of the new initiator group.
	Initiators []string `json:"initiators,omitempty"`
	// The name of the new initiator group.
	Name *string `json:"name,omitempty"`
	// The name of the host OS accessing the application. The default value
	// is the host OS that is running the application.
	OsType *IgroupOsType `json:"os_type,omitempty" validate:"omitempty,oneof=aix hpux hyper_v linux solaris vmware windows xen"`
	// The protocol of the new initiator group.
	Protocol *IgroupProtocol `json:"protocol,omitempty" validate:"omitempty,oneof=fcp iscsi mixed"`
}

// OracleOnSanNewIgroupsSchema is the serialization contract of
// OracleOnSanNewIgroups. Every field is legal on both create and update
// requests for this resource type.
var OracleOnSanNewIgroupsSchema = schema.NewSchema("oracle_on_san_new_igroups", []schema.Field{
	{Name: "initiators", Key: "initiators", Type: schema.FieldTypeStringList, Postable: true, Patchable: true},
	{Name: "name", Key: "name", Type: schema.FieldTypeString, Postable: true, Patchable: true},
	{Name: "os_type", Key: "os_type", Type: schema.FieldTypeString, Enum: IgroupOsTypeValues, Postable: true, Patchable: true},
	{Name: "protocol", Key: "protocol", Type: schema.FieldTypeString, Enum: IgroupProtocolValues, Postable: true, Patchable: true},
})

// ToRecord copies all present fields into a schema record.
func (self *OracleOnSanNewIgroups) ToRecord() *schema.Record {
	rec := schema.NewRecord()
	if self.Initiators != nil {
		rec.Set("initiators", self.Initiators)
	}
	if self.Name != nil {
		rec.Set("name", *self.Name)
	}
	if self.OsType != nil {
		rec.Set("os_type", string(*self.OsType))
	}
	if self.Protocol != nil {
		rec.Set("protocol", string(*self.Protocol))
	}
	return rec
}

// OracleOnSanNewIgroupsFromRecord copies all present record fields into a
// typed value. The record is expected to come from
// OracleOnSanNewIgroupsSchema, which guarantees the value shapes.
func OracleOnSanNewIgroupsFromRecord(rec *schema.Record) *OracleOnSanNewIgroups {
	self := &OracleOnSanNewIgroups{}
	if value, ok := rec.Get("initiators"); ok {
		self.Initiators = value.([]string)
	}
	if value, ok := rec.Get("name"); ok {
		self.Name = utils.Pointer(value.(string))
	}
	if value, ok := rec.Get("os_type"); ok {
		self.OsType = utils.Pointer(IgroupOsType(value.(string)))
	}
	if value, ok := rec.Get("protocol"); ok {
		self.Protocol = utils.Pointer(IgroupProtocol(value.(string)))
	}
	return self
}

// Validate checks the typed value against its `validate` tags. The schema
// engine performs the same enum checks on the wire path; this is for callers
// that want to fail before building a request.
func (self *OracleOnSanNewIgroups) Validate() error {
	err := utils.ValidateJSON(self)
	if err != nil {
		return err
	}
	return nil
}

func OracleOnSanNewIgroupsExampleData() OracleOnSanNewIgroups {
	return OracleOnSanNewIgroups{
		Initiators: []string{"iqn.1991-05.com.microsoft:host1"},
		Name:       utils.Pointer("igroup1"),
		OsType:     utils.Pointer(IgroupOsTypeWindows),
		Protocol:   utils.Pointer(IgroupProtocolIscsi),
	}
}
