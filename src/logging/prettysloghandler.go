package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/nwidger/jsoncolor"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	colorReset   = "\033[0m"
	colorFaint   = "\033[2m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// PrettySlogHandler renders log records as single human readable lines
// instead of JSON. Intended for terminals, not for log shippers.
type PrettySlogHandler struct {
	writer      io.Writer
	writerLock  *sync.Mutex
	level       *slog.LevelVar
	enableColor bool
	attrs       []slog.Attr
}

func NewPrettySlogHandler(writer io.Writer, level *slog.LevelVar, enableColor bool) slog.Handler {
	return &PrettySlogHandler{
		writer:      writer,
		writerLock:  &sync.Mutex{},
		level:       level,
		enableColor: enableColor,
		attrs:       []slog.Attr{},
	}
}

func (self *PrettySlogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= self.level.Level()
}

func (self *PrettySlogHandler) Handle(ctx context.Context, record slog.Record) error {
	level := record.Level.String()
	component := self.tryGetComponent()
	payload := getPayload(record)

	payloadString := ""
	if self.enableColor {
		switch record.Level {
		case slog.LevelDebug:
			level = colorCyan + level + colorReset
		case slog.LevelInfo:
			level = colorGreen + level + colorReset
		case slog.LevelWarn:
			level = colorYellow + level + colorReset
		case slog.LevelError:
			level = colorRed + level + colorReset
		}
		component = colorMagenta + component + colorReset

		if len(payload) > 0 {
			data, err := jsoncolor.Marshal(payload)
			if err != nil {
				return fmt.Errorf("failed to marshal json: %s", err.Error())
			}
			payloadString = string(data)
		}
	} else {
		if len(payload) > 0 {
			data, err := json.Marshal(payload)
			if err != nil {
				return fmt.Errorf("failed to marshal json: %s", err.Error())
			}
			payloadString = string(data)
		}
	}

	line := fmt.Sprintf("%s %s %s %s", level, component, record.Message, payloadString)

	self.writerLock.Lock()
	defer self.writerLock.Unlock()
	_, err := self.writer.Write([]byte(line + "\n"))
	return err
}

func (self *PrettySlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandler := PrettySlogHandler{}

	newHandler.writer = self.writer
	newHandler.writerLock = self.writerLock
	newHandler.level = self.level
	newHandler.enableColor = self.enableColor
	newHandler.attrs = append(self.attrs, attrs...)

	return &newHandler
}

func (self *PrettySlogHandler) WithGroup(name string) slog.Handler {
	// groups are flattened into the payload
	return self
}

func (self *PrettySlogHandler) tryGetComponent() string {
	for _, attr := range self.attrs {
		if attr.Key == "component" {
			return attr.Value.String()
		}
	}
	return "?"
}

func getPayload(record slog.Record) map[string]any {
	attrs := make(map[string]any)
	record.Attrs(func(a slog.Attr) bool {
		errorData, ok := a.Value.Any().(error)
		if ok {
			attrs[a.Key] = errorData.Error()
			return true
		}
		stringerData, ok := a.Value.Any().(fmt.Stringer)
		if ok {
			attrs[a.Key] = stringerData.String()
			return true
		}
		attrs[a.Key] = a.Value.Any()
		return true
	})
	return attrs
}
