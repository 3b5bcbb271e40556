package logger

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger keeps a copy of everything it writes so a page can show the log
// of the run that produced it.
type ZapLogger struct {
	log    *zap.Logger
	level  zap.AtomicLevel
	mu     sync.Mutex
	logBuf *bytes.Buffer
}

type Config struct {
	// Level is the minimum level written. The zero value is info.
	Level zapcore.Level
	// Tee, when set, also receives every entry.
	Tee io.Writer
	// NoColor drops the ANSI level colors.
	NoColor bool
}

func New(cfg Config) *ZapLogger {
	z := &ZapLogger{
		logBuf: &bytes.Buffer{},
		level:  zap.NewAtomicLevelAt(cfg.Level),
	}

	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if cfg.NoColor {
		config.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	encoder := zapcore.NewConsoleEncoder(config)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(lockedWriter{z}), z.level),
	}
	if cfg.Tee != nil {
		cores = append(cores, zapcore.NewCore(encoder.Clone(), zapcore.AddSync(cfg.Tee), z.level))
	}

	z.log = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	return z
}

// Nop discards everything. It is the default for library callers that do
// not pass a logger.
func Nop() *ZapLogger {
	return &ZapLogger{
		log:    zap.NewNop(),
		level:  zap.NewAtomicLevelAt(zapcore.FatalLevel + 1),
		logBuf: &bytes.Buffer{},
	}
}

type lockedWriter struct {
	z *ZapLogger
}

func (w lockedWriter) Write(p []byte) (int, error) {
	w.z.mu.Lock()
	defer w.z.mu.Unlock()
	return w.z.logBuf.Write(p)
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colored aurora.Value
	switch level {
	case zapcore.DebugLevel:
		colored = aurora.Cyan(level.String())
	case zapcore.InfoLevel:
		colored = aurora.Green(level.String())
	case zapcore.WarnLevel:
		colored = aurora.Yellow(level.String())
	case zapcore.ErrorLevel:
		colored = aurora.Red(level.String())
	default:
		enc.AppendString(level.String())
		return
	}
	enc.AppendString(colored.String())
}

var ansiCode = regexp.MustCompile(`\x1b\[(\d+(?:;\d+)*)m`)

// Converts ANSI color codes to HTML spans with inline styles.
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	result.WriteString("<pre>")

	for _, match := range ansiCode.FindAllStringSubmatchIndex(input, -1) {
		start, end := match[0], match[1]
		if start > lastIndex {
			result.WriteString(input[lastIndex:start])
		}

		code := input[match[2]:match[3]]
		if open {
			result.WriteString("</span>")
			open = false
		}
		if color, ok := colorMap[code]; ok {
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		}

		lastIndex = end
	}

	if lastIndex < len(input) {
		result.WriteString(input[lastIndex:])
	}
	if open {
		result.WriteString("</span>")
	}

	result.WriteString("</pre>")
	return result.String()
}

var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

// HTML renders the buffered log with its level colors.
func (z *ZapLogger) HTML() string {
	z.mu.Lock()
	defer z.mu.Unlock()
	return ansiToHTML(z.logBuf.String())
}

// String returns the buffered log as written.
func (z *ZapLogger) String() string {
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.logBuf.String()
}

func (z *ZapLogger) ClearLogs() {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.logBuf.Reset()
}

func (z *ZapLogger) SetLevel(level zapcore.Level) {
	z.level.SetLevel(level)
}

// Enabled lets callers skip building expensive fields.
func (z *ZapLogger) Enabled(level zapcore.Level) bool {
	return z.level.Enabled(level)
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.log.Fatal(wrappedMsg, fields...)
}
