// Package xlog 基于zap封装的日志库；
//
// 设计特点:
//  1. 包级函数开箱即用，未显式Setup时落到默认的控制台配置；
//  2. Setup指定日志文件后自动按大小和时间滚动切割；
//  3. 运行期可通过SetLevel动态调整输出级别；
package xlog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootLogger *zLogger

// root 返回根logger；未显式Setup时按默认配置初始化；
func root() *zLogger {
	if rootLogger == nil {
		initDefaultLogger()
	}
	return rootLogger
}

// Debug 输出"Debug"级别日志信息；
func Debug(args ...any) {
	root().Debug(args...)
}

// Debugf 输出格式化的"Debug"级别日志信息；
func Debugf(format string, args ...any) {
	root().Debugf(format, args...)
}

// Debugw 输出定制化的"Debug"级别日志信息；
func Debugw(msg string, keysAndValues ...any) {
	root().Debugw(msg, keysAndValues...)
}

// Info 输出"Info"级别日志信息；
func Info(args ...any) {
	root().Info(args...)
}

// Infof 输出格式化的"Info"级别日志信息；
func Infof(format string, args ...any) {
	root().Infof(format, args...)
}

// Infow 输出定制化的"Info"级别日志信息；
func Infow(msg string, keysAndValues ...any) {
	root().Infow(msg, keysAndValues...)
}

// Warn 输出"Warn"级别日志信息；
func Warn(args ...any) {
	root().Warn(args...)
}

// Warnf 输出格式化的"Warn"级别日志信息；
func Warnf(format string, args ...any) {
	root().Warnf(format, args...)
}

// Warnw 输出定制化的"Warn"级别日志信息；
func Warnw(msg string, keysAndValues ...any) {
	root().Warnw(msg, keysAndValues...)
}

// Error 输出"Error"级别日志信息；
func Error(args ...any) {
	root().Error(args...)
}

// Errorf 输出格式化的"Error"级别日志信息；
func Errorf(format string, args ...any) {
	root().Errorf(format, args...)
}

// Errorw 输出定制化的"Error"级别日志信息；
func Errorw(msg string, keysAndValues ...any) {
	root().Errorw(msg, keysAndValues...)
}

// Fatal 输出"Fatal"级别日志信息，并使程序退出(os.Exit(1))；
func Fatal(args ...any) {
	root().Fatal(args...)
}

// Fatalf 输出格式化的"Fatal"级别日志信息，并使程序退出(os.Exit(1))；
func Fatalf(format string, args ...any) {
	root().Fatalf(format, args...)
}

// Enabled 判断指定级别当前是否会被输出；
func Enabled(level zapcore.Level) bool {
	return root().Enabled(level)
}

// With 派生携带固定字段的子logger；
func With(fields ...zap.Field) ILogger {
	return root().With(fields...)
}
