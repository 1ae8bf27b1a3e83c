package i

// Logger is the logging surface services and adapters write to.
type Logger interface {
	Debug(string)
	Info(string)
	Warning(string)
	Error(string)
}
