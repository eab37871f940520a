package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger printf-style обёртка над logrus
type Logger struct {
	log  *logrus.Logger
	file *os.File
}

// Option настройка логгера
type Option func(*logrus.Logger)

// WithFormat выбирает формат вывода: "json" или "text"
func WithFormat(format string) Option {
	return func(l *logrus.Logger) {
		switch strings.ToLower(format) {
		case "json":
			l.SetFormatter(&logrus.JSONFormatter{})
		default:
			l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		}
	}
}

// WithOutput заменяет stdout на произвольный writer
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// New создает логгер. Если file не пустой, логи пишутся одновременно в stdout и в файл.
func New(file, level string, opts ...Option) (*Logger, error) {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l.SetLevel(lvl)

	for _, opt := range opts {
		opt(l)
	}

	res := &Logger{log: l}
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", file, err)
		}
		l.SetOutput(io.MultiWriter(l.Out, f))
		res.file = f
	}

	return res, nil
}

// NewNop возвращает логгер, который ничего не пишет
func NewNop() *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return &Logger{log: l}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Errorf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Fatalf(format, v...)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
