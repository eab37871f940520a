package citizenapi

import "time"

// Metrics учёт обращений к API
type Metrics interface {
	RecordUpstreamCall(endpoint, outcome string, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
