package xlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ ILogger = &zLogger{}

// ILogger 日志接口；
// 包级函数输出到根logger，需要携带固定字段时用With派生子logger；
type ILogger interface {
	Debug(...any)
	Debugf(string, ...any)
	Debugw(string, ...any)

	Info(...any)
	Infof(string, ...any)
	Infow(string, ...any)

	Warn(...any)
	Warnf(string, ...any)
	Warnw(string, ...any)

	Error(...any)
	Errorf(string, ...any)
	Errorw(string, ...any)

	Fatal(...any)
	Fatalf(string, ...any)

	Enabled(level zapcore.Level) bool
	With(fields ...zap.Field) ILogger
	Sync() error
}

// zLogger 同时持有结构化logger和sugar logger，
// f/w变参方法走sugar，With派生走结构化接口；
type zLogger struct {
	logger  *zap.Logger
	slogger *zap.SugaredLogger
}

func newzLogger(logger *zap.Logger) *zLogger {
	return &zLogger{
		logger:  logger,
		slogger: logger.Sugar(),
	}
}

// Debug 输出"Debug"级别日志信息；
func (z *zLogger) Debug(args ...any) {
	z.slogger.Debug(args...)
}

// Debugf 输出格式化的"Debug"级别日志信息；
func (z *zLogger) Debugf(template string, args ...any) {
	z.slogger.Debugf(template, args...)
}

// Debugw 输出定制化的"Debug"级别日志信息；
func (z *zLogger) Debugw(msg string, keysAndValues ...any) {
	z.slogger.Debugw(msg, keysAndValues...)
}

// Info 输出"Info"级别日志信息；
func (z *zLogger) Info(args ...any) {
	z.slogger.Info(args...)
}

// Infof 输出格式化的"Info"级别日志信息；
func (z *zLogger) Infof(template string, args ...any) {
	z.slogger.Infof(template, args...)
}

// Infow 输出定制化的"Info"级别日志信息；
func (z *zLogger) Infow(msg string, keysAndValues ...any) {
	z.slogger.Infow(msg, keysAndValues...)
}

// Warn 输出"Warn"级别日志信息；
func (z *zLogger) Warn(args ...any) {
	z.slogger.Warn(args...)
}

// Warnf 输出格式化的"Warn"级别日志信息；
func (z *zLogger) Warnf(template string, args ...any) {
	z.slogger.Warnf(template, args...)
}

// Warnw 输出定制化的"Warn"级别日志信息；
func (z *zLogger) Warnw(msg string, keysAndValues ...any) {
	z.slogger.Warnw(msg, keysAndValues...)
}

// Error 输出"Error"级别日志信息；
func (z *zLogger) Error(args ...any) {
	z.slogger.Error(args...)
}

// Errorf 输出格式化的"Error"级别日志信息；
func (z *zLogger) Errorf(template string, args ...any) {
	z.slogger.Errorf(template, args...)
}

// Errorw 输出定制化的"Error"级别日志信息；
func (z *zLogger) Errorw(msg string, keysAndValues ...any) {
	z.slogger.Errorw(msg, keysAndValues...)
}

// Fatal 输出"Fatal"级别日志信息，并使程序退出(os.Exit(1))；
func (z *zLogger) Fatal(args ...any) {
	z.slogger.Fatal(args...)
}

// Fatalf 输出格式化的"Fatal"级别日志信息，并使程序退出(os.Exit(1))；
func (z *zLogger) Fatalf(template string, args ...any) {
	z.slogger.Fatalf(template, args...)
}

// Enabled 判断指定级别当前是否会被输出；
func (z *zLogger) Enabled(level zapcore.Level) bool {
	return z.logger.Core().Enabled(level)
}

// With 派生携带固定字段的子logger；
func (z *zLogger) With(fields ...zap.Field) ILogger {
	return newzLogger(z.logger.With(fields...))
}

// Sync 将缓冲内容刷写到输出端；
func (z *zLogger) Sync() error {
	return z.logger.Sync()
}
