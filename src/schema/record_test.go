package schema_test

import (
	"ontap-models/src/schema"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordAbsenceIsDistinctFromZeroValue(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	rec := schema.NewRecord()
	assert.False(rec.Has("name"))

	rec.Set("name", "")
	assert.True(rec.Has("name"))
	value, ok := rec.Get("name")
	assert.True(ok)
	assert.Equal("", value)
}

func TestRecordFieldNamesKeepInsertionOrder(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	rec := schema.NewRecord()
	rec.Set("b", "2")
	rec.Set("a", "1")
	rec.Set("c", "3")

	assert.Equal([]string{"b", "a", "c"}, rec.FieldNames())

	rec.Set("a", "updated")
	assert.Equal([]string{"b", "a", "c"}, rec.FieldNames(), "updating must not reorder")
}

func TestRecordDelete(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	rec := schema.NewRecord()
	rec.Set("a", "1")
	rec.Set("b", "2")

	rec.Delete("a")
	assert.False(rec.Has("a"))
	assert.Equal([]string{"b"}, rec.FieldNames())

	rec.Delete("missing") // no-op
	assert.Equal(1, rec.Len())
}
