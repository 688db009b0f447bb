package logging_test

import (
	"bytes"
	"log/slog"
	"ontap-models/src/logging"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// compile time check
func TestSlogManagerAdheresToLogManagerInterface(t *testing.T) {
	t.Parallel()
	testfunc := func(w logging.LogManagerModule) {}
	testfunc(logging.NewSlogManager(logging.SlogManagerOpts{})) // this checks if the typesystem allows to call it
}

// compile time check
func TestMockSlogManagerAdheresToLogManagerInterface(t *testing.T) {
	t.Parallel()
	testfunc := func(w logging.LogManagerModule) {}
	testfunc(logging.NewMockSlogManager(t)) // this checks if the typesystem allows to call it
}

func TestCreateLoggerTwicePanics(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	m := logging.NewSlogManager(logging.SlogManagerOpts{JsonOutput: true, Writer: &bytes.Buffer{}})

	m.CreateLogger("schema")
	assert.Panics(func() { m.CreateLogger("schema") })
}

func TestGetLoggerReturnsCreatedLogger(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	m := logging.NewSlogManager(logging.SlogManagerOpts{JsonOutput: true, Writer: &bytes.Buffer{}})

	created := m.CreateLogger("schema")
	got, err := m.GetLogger("schema")
	assert.NoError(err)
	assert.Same(created, got)

	_, err = m.GetLogger("unknown")
	assert.Error(err)
}

func TestJsonOutputContainsComponent(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	m := logging.NewSlogManager(logging.SlogManagerOpts{JsonOutput: true, Writer: buf})

	logger := m.CreateLogger("models")
	logger.Info("serialized record", "fields", 4)

	assert.Contains(buf.String(), `"component":"models"`)
	assert.Contains(buf.String(), `"fields":4`)
}

func TestSetLogLevelFiltersRecords(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	m := logging.NewSlogManager(logging.SlogManagerOpts{LogLevel: slog.LevelInfo, JsonOutput: true, Writer: buf})

	logger := m.CreateLogger("schema")
	logger.Debug("dropped")
	assert.Equal(0, buf.Len())

	err := m.SetLogLevel("debug")
	assert.NoError(err)
	logger.Debug("kept")
	assert.Contains(buf.String(), "kept")

	err = m.SetLogLevel("verbose")
	assert.Error(err)
}

func TestPrettyOutputWithoutColor(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	m := logging.NewSlogManager(logging.SlogManagerOpts{JsonOutput: false, Writer: buf})

	logger := m.CreateLogger("schema")
	logger.Warn("unknown wire key excluded", "key", "unexpected_field")

	line := buf.String()
	assert.True(strings.HasPrefix(line, "WARN schema "), line)
	assert.Contains(line, "unknown wire key excluded")
	assert.Contains(line, `"key":"unexpected_field"`)
}
