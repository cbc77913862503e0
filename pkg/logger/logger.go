package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger простой уровневый логгер, пишущий в файл и stdout
type Logger struct {
	out   *log.Logger
	file  *os.File
	level Level
}

// New создает логгер с записью в указанный файл
// Если filePath пустой, логи пишутся только в stdout
func New(filePath string, level string) (*Logger, error) {
	l := &Logger{level: parseLevel(level)}

	writers := []io.Writer{os.Stdout}

	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("logger: failed to create log directory: %w", err)
		}

		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: failed to open log file: %w", err)
		}

		l.file = file
		writers = append(writers, file)
	}

	l.out = log.New(io.MultiWriter(writers...), "", log.LstdFlags)

	return l, nil
}

// parseLevel парсит уровень логирования из строки, по умолчанию info
func parseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Debug логирует сообщение с уровнем DEBUG
func (l *Logger) Debug(format string, v ...interface{}) {
	l.logf(LevelDebug, "DEBUG", format, v...)
}

// Info логирует сообщение с уровнем INFO
func (l *Logger) Info(format string, v ...interface{}) {
	l.logf(LevelInfo, "INFO", format, v...)
}

// Warn логирует сообщение с уровнем WARN
func (l *Logger) Warn(format string, v ...interface{}) {
	l.logf(LevelWarn, "WARN", format, v...)
}

// Error логирует сообщение с уровнем ERROR
func (l *Logger) Error(format string, v ...interface{}) {
	l.logf(LevelError, "ERROR", format, v...)
}

// Fatal логирует сообщение с уровнем FATAL и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.out.Printf("[FATAL] "+format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл логов
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) logf(level Level, tag string, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf("["+tag+"] "+format, v...)
}
