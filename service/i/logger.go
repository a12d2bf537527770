package i

// Logger is the logging surface shared by services and infrastructure.
type Logger interface {
	Info(string)
	Warning(string)
	Error(string)
}
