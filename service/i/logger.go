package i

// Logger is the logging contract shared across components.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
