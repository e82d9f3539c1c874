package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/vskvj3/nbtkit/internal/codederr"
	"golang.org/x/term"
)

// Log levels
const (
	INFO  = "INFO"
	WARN  = "WARN"
	ERROR = "ERROR"
	DEBUG = "DEBUG"
)

// Colour modes accepted by NewLoggerWithWriters and the config file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	instance *Logger
	loggerMu sync.Mutex // guards instance
)

// Field carries a key/value pair appended to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// Logger struct
type Logger struct {
	mu            sync.Mutex
	fileLogger    *log.Logger
	consoleLogger *log.Logger
	debugMode     bool
	colors        map[string]*color.Color
	faint         *color.Color
	closer        io.Closer
}

// getDefaultLogFilePath returns ~/.nbtkit/nbtkit.log, creating the directory.
func getDefaultLogFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	logDir := filepath.Join(homeDir, ".nbtkit")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create log directory: %s", logDir)
	}
	return filepath.Join(logDir, "nbtkit.log"), nil
}

// NewLogger opens logFilePath (the default path when empty) and installs a
// logger writing to it and to console as the process-wide instance. A
// previously installed logger is closed first.
func NewLogger(logFilePath string, console io.Writer, debugMode bool, colorMode string) (*Logger, error) {
	if logFilePath == "" {
		path, err := getDefaultLogFilePath()
		if err != nil {
			return nil, err
		}
		logFilePath = path
	}

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open log file: %s", logFilePath)
	}

	l := NewLoggerWithWriters(file, console, debugMode, colorMode)
	l.closer = file

	loggerMu.Lock()
	prev := instance
	instance = l
	loggerMu.Unlock()
	if prev != nil {
		prev.Close()
	}
	return l, nil
}

// NewLoggerWithWriters builds a standalone logger writing plain lines to
// file and, colourised according to colorMode, to console. Either writer may
// be nil. It does not touch the singleton.
func NewLoggerWithWriters(file, console io.Writer, debugMode bool, colorMode string) *Logger {
	if file == nil {
		file = io.Discard
	}
	if console == nil {
		console = io.Discard
	}

	l := &Logger{
		fileLogger:    log.New(file, "", log.Ldate|log.Ltime),
		consoleLogger: log.New(console, "", log.Ldate|log.Ltime),
		debugMode:     debugMode,
	}

	if useColor(console, colorMode) {
		l.colors = map[string]*color.Color{
			DEBUG: color.New(color.FgCyan),
			INFO:  color.New(color.FgBlue),
			WARN:  color.New(color.FgYellow),
			ERROR: color.New(color.FgRed),
		}
		l.faint = color.New(color.Faint)
		// color.NoColor is decided for os.Stdout; force it for our writer.
		for _, c := range l.colors {
			c.EnableColor()
		}
		l.faint.EnableColor()
	}
	return l
}

func useColor(w io.Writer, mode string) bool {
	switch strings.ToLower(mode) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// GetLogger retrieves the singleton logger instance
func GetLogger() *Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if instance == nil {
		log.Fatalf("Logger has not been initialized. Call NewLogger() first.")
	}
	return instance
}

// CloseLogger closes the singleton's log file, if one is installed.
func CloseLogger() error {
	loggerMu.Lock()
	l := instance
	instance = nil
	loggerMu.Unlock()
	if l == nil {
		return nil
	}
	return l.Close()
}

// Close releases the log file. Later writes to the file sink are dropped.
// Close is safe to call more than once.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	l.fileLogger.SetOutput(io.Discard)
	return err
}

// Logging methods
func (l *Logger) Info(message string, fields ...Field) {
	l.write(INFO, message, fields)
}

func (l *Logger) Warn(message string, fields ...Field) {
	l.write(WARN, message, fields)
}

func (l *Logger) Error(message string, fields ...Field) {
	l.write(ERROR, message, fields)
}

// Debug lines always reach the log file but only reach the console in debug mode.
func (l *Logger) Debug(message string, fields ...Field) {
	l.write(DEBUG, message, fields)
}

// Report logs a coded error according to its class. Warnings are logged at
// WARN and swallowed (nil is returned); every other error is logged at
// ERROR and returned so the caller still has to handle it.
func (l *Logger) Report(err error) error {
	if err == nil {
		return nil
	}

	coded, ok := codederr.As(err)
	if !ok {
		l.Error(err.Error())
		return err
	}

	fields := []Field{
		{Key: "suite", Value: coded.Suite()},
		{Key: "error_code", Value: coded.Code},
		{Key: "error_label", Value: coded.Label},
	}
	if coded.IsWarning() {
		l.Warn(err.Error(), fields...)
		return nil
	}
	l.Error(err.Error(), fields...)
	return err
}

func (l *Logger) write(level, message string, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.fileLogger.Println(l.format(level, message, fields, false))
	if level != DEBUG || l.debugMode {
		l.consoleLogger.Println(l.format(level, message, fields, l.colors != nil))
	}
}

func (l *Logger) format(level, message string, fields []Field, colored bool) string {
	var sb strings.Builder

	tag := "[" + level + "]"
	if colored {
		if c := l.colors[level]; c != nil {
			tag = c.Sprint(tag)
		}
	}
	sb.WriteString(tag)
	sb.WriteString(" ")
	sb.WriteString(message)

	for _, f := range fields {
		text := fmt.Sprintf("%s=%v", f.Key, f.Value)
		if colored {
			text = l.faint.Sprint(text)
		}
		sb.WriteString(" ")
		sb.WriteString(text)
	}
	return sb.String()
}
