// 指示: miu200521358
// Package logging はアプリ全体で共有するロガー契約を提供する。
package logging

import "sync"

// LogLevel はログレベルを表す。
type LogLevel int

const (
	LOG_LEVEL_DEBUG LogLevel = 10
	LOG_LEVEL_INFO  LogLevel = 20
	LOG_LEVEL_WARN  LogLevel = 30
	LOG_LEVEL_ERROR LogLevel = 40
)

// String はレベル名を返す。
func (l LogLevel) String() string {
	switch l {
	case LOG_LEVEL_DEBUG:
		return "DEBUG"
	case LOG_LEVEL_INFO:
		return "INFO"
	case LOG_LEVEL_WARN:
		return "WARN"
	case LOG_LEVEL_ERROR:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ILogger はロガー契約を表す。メッセージは書式文字列で渡す。
type ILogger interface {
	Level() LogLevel
	SetLevel(level LogLevel)
	IsEnabled(level LogLevel) bool
	Debug(format string, params ...any)
	Info(format string, params ...any)
	Warn(format string, params ...any)
	Error(format string, params ...any)
}

var (
	defaultLoggerMu sync.RWMutex
	defaultLogger   ILogger
)

// DefaultLogger は既定ロガーを返す。未設定時は nil。
func DefaultLogger() ILogger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger は既定ロガーを設定する。
func SetDefaultLogger(logger ILogger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	defaultLogger = logger
}
