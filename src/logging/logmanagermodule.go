package logging

import (
	"io"
	"log/slog"
	"testing"
)

type LogManagerModule interface {
	// Get the pointer to an existing logger by its componentId
	GetLogger(componentId string) (*slog.Logger, error)
	// Create a new logger with a unique componentId
	CreateLogger(componentId string) *slog.Logger
	// Set a log level. Valid are: "debug", "info", "warn" or "error"
	SetLogLevel(level string) error
}

// Since this is only a logger we can simply always provide a default logger
// from golangs stdlib.
type MockSlogManager struct {
	writer io.Writer
}

type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(p []byte) (n int, err error) {
	w.t.Log(string(p))
	return len(p), nil
}

func NewMockSlogManager(t *testing.T) *MockSlogManager {
	return &MockSlogManager{
		writer: &testWriter{t: t},
	}
}

func (m *MockSlogManager) GetLogger(componentId string) (*slog.Logger, error) {
	return slog.New(slog.NewJSONHandler(m.writer, nil)).With("component", componentId), nil
}

func (m *MockSlogManager) CreateLogger(componentId string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(m.writer, nil)).With("component", componentId)
}

func (m *MockSlogManager) SetLogLevel(level string) error {
	return nil
}

var _ LogManagerModule = &MockSlogManager{}
