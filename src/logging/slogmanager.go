package logging

import (
	"fmt"
	"io"
	"log/slog"
	"ontap-models/src/assert"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

type SlogManagerOpts struct {
	// Initial log level. Can be changed later via SetLogLevel().
	LogLevel slog.Level
	// Emit JSON log lines. If false a pretty terminal format is used.
	JsonOutput bool
	// Destination of all log lines. Defaults to os.Stderr.
	Writer io.Writer
}

type slogManager struct {
	opts   SlogManagerOpts
	writer io.Writer
	level  *slog.LevelVar

	activeLoggers     map[string]*slog.Logger
	activeLoggersLock sync.Mutex
}

func NewSlogManager(opts SlogManagerOpts) LogManagerModule {
	self := slogManager{}

	self.opts = opts
	self.activeLoggers = map[string]*slog.Logger{}
	self.level = &slog.LevelVar{}
	self.level.Set(opts.LogLevel)
	self.writer = opts.Writer
	if self.writer == nil {
		self.writer = os.Stderr
	}

	return &self
}

func (m *slogManager) GetLogger(componentId string) (*slog.Logger, error) {
	m.activeLoggersLock.Lock()
	defer m.activeLoggersLock.Unlock()

	logger := m.activeLoggers[componentId]
	if logger != nil {
		return logger, nil
	}

	return nil, fmt.Errorf("logger '%s' does not exist", componentId)
}

func (self *slogManager) CreateLogger(componentId string) *slog.Logger {
	self.activeLoggersLock.Lock()
	defer self.activeLoggersLock.Unlock()

	assert.Assert(componentId != "", "componentId cant be empty")
	assert.Assert(self.activeLoggers[componentId] == nil, fmt.Errorf("logger was requested multiple times: %s", componentId))

	var handler slog.Handler
	if self.opts.JsonOutput {
		handler = slog.NewJSONHandler(self.writer, &slog.HandlerOptions{
			AddSource: true,
			Level:     self.level,
		})
	} else {
		enableColor := false
		if f, ok := self.writer.(*os.File); ok {
			enableColor = isatty.IsTerminal(f.Fd())
		}
		handler = NewPrettySlogHandler(self.writer, self.level, enableColor)
	}

	logger := slog.New(handler).With("component", componentId)

	self.activeLoggers[componentId] = logger

	return logger
}

func (self *slogManager) SetLogLevel(level string) error {
	parsed, err := ParseLogLevel(level)
	if err != nil {
		return err
	}
	self.level.Set(parsed)
	return nil
}

func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}

	return slog.LevelInfo, fmt.Errorf("Unknown LogLevel")
}
