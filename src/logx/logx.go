package logx

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(template string, args ...interface{})
	With(args ...interface{}) Logger
	Sync() error
}

type Logx struct {
	level   zapcore.Level
	dev     bool
	console bool
	sugar   *zap.SugaredLogger
}

// NewLogx returns an unusable logger until InitLogger is called.
func NewLogx(lvl zapcore.Level, dev bool, console bool) *Logx {
	return &Logx{level: lvl, dev: dev, console: console}
}

// NewNop discards everything. Used by tests and by callers without a log sink.
func NewNop() *Logx {
	return &Logx{level: zapcore.FatalLevel, sugar: zap.NewNop().Sugar()}
}

var loggerLevelMap = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

// GetLoggerLevelByString falls back to debug for unknown names.
func GetLoggerLevelByString(lvl string) zapcore.Level {
	level, exist := loggerLevelMap[strings.ToLower(lvl)]
	if !exist {
		return zapcore.DebugLevel
	}

	return level
}

// InitLogger builds the zap core. Console mode writes human readable lines to
// stdout and ignores w, otherwise JSON records go to w.
func (l *Logx) InitLogger(w io.Writer) {
	var logWriter zapcore.WriteSyncer
	if l.console {
		logWriter = zapcore.AddSync(os.Stdout)
	} else {
		logWriter = zapcore.AddSync(w)
	}

	var encoderCfg zapcore.EncoderConfig
	if l.dev {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderCfg = zap.NewProductionEncoderConfig()
	}
	encoderCfg.LevelKey = "LEVEL"
	encoderCfg.CallerKey = "CALLER"
	encoderCfg.TimeKey = "TIME"
	encoderCfg.NameKey = "NAME"
	encoderCfg.MessageKey = "MESSAGE"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if l.console {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, logWriter, zap.NewAtomicLevelAt(l.level))
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if l.dev {
		opts = append(opts, zap.Development())
	}
	l.sugar = zap.New(core, opts...).Named("clickchess").Sugar()
}

func (l *Logx) With(args ...interface{}) Logger {
	return &Logx{level: l.level, dev: l.dev, console: l.console, sugar: l.sugar.With(args...)}
}

func (l *Logx) Sync() error {
	return l.sugar.Sync()
}

func (l *Logx) Debug(args ...interface{}) {
	l.sugar.Debug(args...)
}

func (l *Logx) Debugf(template string, args ...interface{}) {
	l.sugar.Debugf(template, args...)
}

func (l *Logx) Info(args ...interface{}) {
	l.sugar.Info(args...)
}

func (l *Logx) Infof(template string, args ...interface{}) {
	l.sugar.Infof(template, args...)
}

func (l *Logx) Warn(args ...interface{}) {
	l.sugar.Warn(args...)
}

func (l *Logx) Warnf(template string, args ...interface{}) {
	l.sugar.Warnf(template, args...)
}

func (l *Logx) Error(args ...interface{}) {
	l.sugar.Error(args...)
}

func (l *Logx) Errorf(template string, args ...interface{}) {
	l.sugar.Errorf(template, args...)
}

func (l *Logx) Fatal(args ...interface{}) {
	l.sugar.Fatal(args...)
}

func (l *Logx) Fatalf(template string, args ...interface{}) {
	l.sugar.Fatalf(template, args...)
}
