package hdlog

import (
	"os"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var logger *zap.Logger
var atom = zap.NewAtomicLevel()

var opts *Options

// Configure 标准输出留给图表，日志写到 stderr，配置了目录时同时写入 hashdist.log
func Configure(op *Options) {
	atom.SetLevel(op.Level)
	opts = op

	// 包级函数和 HDLog 方法都只比调用方深一层
	loggerOpts := make([]zap.Option, 0)
	if opts.LineNum {
		loggerOpts = append(loggerOpts, zap.AddCaller(), zap.AddCallerSkip(1))
	}

	writers := []zapcore.WriteSyncer{zapcore.Lock(os.Stderr)}
	if strings.TrimSpace(opts.LogDir) != "" {
		writers = append(writers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   path.Join(opts.LogDir, "hashdist.log"),
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}))
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(newEncoderConfig()),
		zapcore.NewMultiWriteSyncer(writers...),
		atom,
	)
	logger = zap.New(core, loggerOpts...)
}

func Level() zapcore.Level {
	if opts == nil {
		return NewOptions().Level
	}
	return opts.Level
}

func newEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:       "time",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "linenum",
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
		EncodeName:    zapcore.FullNameEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006-01-02T15:04:05.999999999-07:00"))
		},
		EncodeDuration: func(d time.Duration, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendInt64(int64(d) / 1000000)
		},
	}
}

func get() *zap.Logger {
	if logger == nil {
		Configure(NewOptions())
	}
	return logger
}

// Info Info
func Info(msg string, fields ...zap.Field) {
	get().Info(msg, fields...)
}

// Debug Debug
func Debug(msg string, fields ...zap.Field) {
	get().Debug(msg, fields...)
}

// Error Error
func Error(msg string, fields ...zap.Field) {
	get().Error(msg, fields...)
}

// Warn Warn
func Warn(msg string, fields ...zap.Field) {
	get().Warn(msg, fields...)
}

func Sync() error {
	if logger == nil {
		return nil
	}
	return logger.Sync()
}

// HDLog 带前缀的日志
type HDLog struct {
	prefix string
}

func NewHDLog(prefix string) *HDLog {

	return &HDLog{prefix: prefix}
}

func (t *HDLog) withPrefix(msg string) string {
	var b strings.Builder
	b.WriteString("【")
	b.WriteString(t.prefix)
	b.WriteString("】")
	b.WriteString(msg)
	return b.String()
}

func (t *HDLog) Info(msg string, fields ...zap.Field) {
	get().Info(t.withPrefix(msg), fields...)
}

func (t *HDLog) Debug(msg string, fields ...zap.Field) {
	get().Debug(t.withPrefix(msg), fields...)
}

func (t *HDLog) Error(msg string, fields ...zap.Field) {
	get().Error(t.withPrefix(msg), fields...)
}

func (t *HDLog) Warn(msg string, fields ...zap.Field) {
	get().Warn(t.withPrefix(msg), fields...)
}
