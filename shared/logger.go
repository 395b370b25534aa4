package shared

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_logger.go -package mocks social_osint/shared ILogger

// ILogger is the subset of charmbracelet/log's *log.Logger that the application uses.
type ILogger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Printf(format string, args ...interface{})
}
