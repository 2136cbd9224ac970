package logger

import (
	"encoding/json"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// devEncoder is a custom encoder for development mode that outputs colored,
// human-readable logs with indented JSON for complex objects.
type devEncoder struct {
	zapcore.Encoder
	consoleEncoder zapcore.Encoder
	jsonEncoder    zapcore.Encoder
	pool           buffer.Pool
}

// newDevEncoder creates a new development encoder with color support and JSON indentation.
func newDevEncoder(encoderConfig zapcore.EncoderConfig) zapcore.Encoder {
	consoleEnc := zapcore.NewConsoleEncoder(encoderConfig)
	return &devEncoder{
		Encoder:        consoleEnc, // Embed the console encoder to implement the Encoder interface
		consoleEncoder: consoleEnc,
		jsonEncoder:    zapcore.NewJSONEncoder(encoderConfig),
		pool:           buffer.NewPool(),
	}
}

// Clone ensures derived loggers keep the development encoder.
func (e *devEncoder) Clone() zapcore.Encoder {
	return &devEncoder{
		Encoder:        e.Encoder.Clone(),
		consoleEncoder: e.consoleEncoder.Clone(),
		jsonEncoder:    e.jsonEncoder.Clone(),
		pool:           e.pool,
	}
}

// EncodeEntry formats a log entry with colored levels and pretty-printed
// fields.
func (e *devEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	// Use the console encoder for the basic structure
	consoleBuf, err := e.consoleEncoder.EncodeEntry(entry, nil)
	if err != nil {
		return nil, err
	}

	line := strings.TrimRight(consoleBuf.String(), "\n")
	line = colorizeLevel(line, entry.Level)

	if len(fields) > 0 {
		// Use the JSON encoder for fields to get proper JSON formatting
		fieldBuf, encErr := e.jsonEncoder.EncodeEntry(entry, fields)
		if encErr != nil {
			return nil, encErr
		}

		var fieldsMap map[string]any
		if err := json.Unmarshal(fieldBuf.Bytes(), &fieldsMap); err != nil {
			line += " " + strings.TrimRight(fieldBuf.String(), "\n")
		} else {
			line = appendFields(line, fieldsMap, fieldBuf)
		}
	}

	buf := e.pool.Get()
	buf.AppendString(line)
	buf.AppendString("\n")

	return buf, nil
}

// appendFields attaches the remaining structured fields as indented JSON.
func appendFields(line string, fieldsMap map[string]any, fieldBuf *buffer.Buffer) string {
	// Drop fields already present in the console prefix
	delete(fieldsMap, messageKey)
	delete(fieldsMap, levelKey)
	delete(fieldsMap, nameKey)
	delete(fieldsMap, timeKey)

	if len(fieldsMap) == 0 {
		return line
	}

	prettyJSON, err := json.MarshalIndent(fieldsMap, "", "  ")
	if err != nil {
		return line + " " + strings.TrimRight(fieldBuf.String(), "\n")
	}
	return line + "\n" + string(prettyJSON)
}

// colorizeLevel adds color to the log line based on its severity.
func colorizeLevel(line string, level zapcore.Level) string {
	var colorFunc func(a ...any) string

	switch level {
	case zapcore.DebugLevel:
		colorFunc = color.New(color.FgCyan).SprintFunc()
	case zapcore.InfoLevel:
		colorFunc = color.New(color.FgGreen).SprintFunc()
	case zapcore.WarnLevel:
		colorFunc = color.New(color.FgYellow).SprintFunc()
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		colorFunc = color.New(color.FgRed, color.Bold).SprintFunc()
	default:
		return line
	}

	return colorFunc(line)
}
