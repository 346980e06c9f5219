package logger

import (
	"fmt"
	"io"
	"log"
	"os"
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

// ParseLevel конвертирует строку из конфига в Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger простой логгер с уровнями и printf-форматированием
// Пишет одновременно в stdout и (опционально) в файл
type Logger struct {
	level Level
	l     *log.Logger
	file  *os.File
}

// New создает логгер. Если filePath пустой - пишет только в stdout
func New(filePath string, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var (
		out  io.Writer = os.Stdout
		file *os.File
	)

	if filePath != "" {
		file, err = os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", filePath, err)
		}
		out = io.MultiWriter(os.Stdout, file)
	}

	return &Logger{
		level: lvl,
		l:     log.New(out, "", log.Ldate|log.Ltime|log.Lmicroseconds),
		file:  file,
	}, nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, level Level) *Logger {
	return &Logger{
		level: level,
		l:     log.New(w, "", 0),
	}
}

func (lg *Logger) Debug(format string, v ...interface{}) {
	lg.write(LevelDebug, "DEBUG", format, v...)
}

func (lg *Logger) Info(format string, v ...interface{}) {
	lg.write(LevelInfo, "INFO", format, v...)
}

func (lg *Logger) Warn(format string, v ...interface{}) {
	lg.write(LevelWarn, "WARN", format, v...)
}

func (lg *Logger) Error(format string, v ...interface{}) {
	lg.write(LevelError, "ERROR", format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (lg *Logger) Fatal(format string, v ...interface{}) {
	lg.l.Printf("[FATAL] "+format, v...)
	lg.Close()
	os.Exit(1)
}

// Close закрывает файл логов, если он был открыт
func (lg *Logger) Close() {
	if lg.file != nil {
		_ = lg.file.Close()
		lg.file = nil
	}
}

func (lg *Logger) write(level Level, tag string, format string, v ...interface{}) {
	if level < lg.level {
		return
	}
	lg.l.Printf("["+tag+"] "+format, v...)
}

// Nop логгер, который ничего не пишет
type Nop struct{}

func (Nop) Info(string, ...interface{})  {}
func (Nop) Warn(string, ...interface{})  {}
func (Nop) Error(string, ...interface{}) {}
