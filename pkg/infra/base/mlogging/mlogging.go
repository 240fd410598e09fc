// 指示: miu200521358
// Package mlogging は zap を用いたロガー実装を提供する。
package mlogging

import (
	"fmt"
	"io"
	"sync"

	"github.com/miu200521358/mu_mltd2pmx/pkg/shared/base/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// MessageBuffer は出力済みメッセージを保持する。
type MessageBuffer struct {
	mu    sync.Mutex
	lines []string
}

// Append はメッセージを追加する。
func (b *MessageBuffer) Append(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, line)
}

// Lines は保持中メッセージの複製を返す。
func (b *MessageBuffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.lines...)
}

// Clear は保持中メッセージを破棄する。
func (b *MessageBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
}

// Logger は zap へ委譲しつつメッセージを保持するロガーを表す。
type Logger struct {
	level  zap.AtomicLevel
	sugar  *zap.SugaredLogger
	buffer *MessageBuffer
}

// NewLogger はロガーを生成する。writer が nil の場合はメッセージ保持のみ行う。
func NewLogger(writer io.Writer) *Logger {
	if writer == nil {
		writer = io.Discard
	}
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(writer),
		level,
	)
	return &Logger{
		level:  level,
		sugar:  zap.New(core).Sugar(),
		buffer: &MessageBuffer{},
	}
}

// MessageBuffer は保持メッセージを返す。
func (l *Logger) MessageBuffer() *MessageBuffer {
	return l.buffer
}

// Level は現在のログレベルを返す。
func (l *Logger) Level() logging.LogLevel {
	return fromZapLevel(l.level.Level())
}

// SetLevel はログレベルを設定する。
func (l *Logger) SetLevel(level logging.LogLevel) {
	l.level.SetLevel(toZapLevel(level))
}

// IsEnabled は指定レベルが出力対象か判定する。
func (l *Logger) IsEnabled(level logging.LogLevel) bool {
	return l.level.Enabled(toZapLevel(level))
}

func (l *Logger) Debug(format string, params ...any) {
	l.output(logging.LOG_LEVEL_DEBUG, format, params...)
}

func (l *Logger) Info(format string, params ...any) {
	l.output(logging.LOG_LEVEL_INFO, format, params...)
}

func (l *Logger) Warn(format string, params ...any) {
	l.output(logging.LOG_LEVEL_WARN, format, params...)
}

func (l *Logger) Error(format string, params ...any) {
	l.output(logging.LOG_LEVEL_ERROR, format, params...)
}

// Sync はバッファ済み出力を書き出す。
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}

func (l *Logger) output(level logging.LogLevel, format string, params ...any) {
	if !l.IsEnabled(level) {
		return
	}
	message := format
	if len(params) > 0 {
		message = fmt.Sprintf(format, params...)
	}
	l.buffer.Append(message)
	switch level {
	case logging.LOG_LEVEL_DEBUG:
		l.sugar.Debug(message)
	case logging.LOG_LEVEL_WARN:
		l.sugar.Warn(message)
	case logging.LOG_LEVEL_ERROR:
		l.sugar.Error(message)
	default:
		l.sugar.Info(message)
	}
}

func toZapLevel(level logging.LogLevel) zapcore.Level {
	switch {
	case level <= logging.LOG_LEVEL_DEBUG:
		return zapcore.DebugLevel
	case level <= logging.LOG_LEVEL_INFO:
		return zapcore.InfoLevel
	case level <= logging.LOG_LEVEL_WARN:
		return zapcore.WarnLevel
	}
	return zapcore.ErrorLevel
}

func fromZapLevel(level zapcore.Level) logging.LogLevel {
	switch level {
	case zapcore.DebugLevel:
		return logging.LOG_LEVEL_DEBUG
	case zapcore.InfoLevel:
		return logging.LOG_LEVEL_INFO
	case zapcore.WarnLevel:
		return logging.LOG_LEVEL_WARN
	}
	return logging.LOG_LEVEL_ERROR
}
