package logger

import (
	"fmt"
	"sort"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
	colorWarn  = "\x1b[38;5;214m"
	colorError = "\x1b[38;5;167m"
	colorName  = "\x1b[38;5;108m"
)

var bufferPool = buffer.NewPool()

// minimalEncoder writes compact console lines:
//
//	13:04:35  WARN  typegen  skipped property  model=User property=app_metadata
//
// Context fields (logger.With) and call-site fields are merged and printed
// sorted by key.
type minimalEncoder struct {
	*zapcore.MapObjectEncoder
	color bool
}

func newMinimalEncoder(color bool) *minimalEncoder {
	return &minimalEncoder{MapObjectEncoder: zapcore.NewMapObjectEncoder(), color: color}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	clone := newMinimalEncoder(enc.color)
	for k, v := range enc.Fields {
		clone.Fields[k] = v
	}
	return clone
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	merged := enc.Clone().(*minimalEncoder)
	for _, f := range fields {
		f.AddTo(merged.MapObjectEncoder)
	}
	// stack traces of cockroachdb errors belong in JSON output only
	delete(merged.Fields, "errorVerbose")

	line := bufferPool.Get()
	line.AppendString(ent.Time.Format("15:04:05"))

	if ent.Level != zapcore.InfoLevel {
		line.AppendString("  ")
		line.AppendString(enc.paint(levelColor(ent.Level), ent.Level.CapitalString()))
	}

	if ent.LoggerName != "" {
		line.AppendString("  ")
		line.AppendString(enc.paint(colorName, ent.LoggerName))
	}

	line.AppendString("  ")
	line.AppendString(ent.Message)

	if len(merged.Fields) > 0 {
		keys := make([]string, 0, len(merged.Fields))
		for k := range merged.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		line.AppendString(" ")
		for _, k := range keys {
			line.AppendString(" ")
			line.AppendString(k)
			line.AppendString("=")
			line.AppendString(fmt.Sprintf("%v", merged.Fields[k]))
		}
	}

	line.AppendString("\n")
	return line, nil
}

func (enc *minimalEncoder) paint(color, text string) string {
	if !enc.color || color == "" {
		return text
	}
	return colorBold + color + text + colorReset
}

func levelColor(level zapcore.Level) string {
	switch {
	case level == zapcore.WarnLevel:
		return colorWarn
	case level >= zapcore.ErrorLevel:
		return colorError
	default:
		return ""
	}
}
