package property

// Reporter receives accessor failures.
//
// Accessor operations never return errors; every failure goes to the
// Reporter instead and the operation defaults. Implementations must not
// panic and should return quickly; they run synchronously on the
// calling goroutine.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(err error)

// Report calls f(err).
func (f ReporterFunc) Report(err error) {
	f(err)
}

// Logger defines the logging interface used by the log-backed reporter.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// logReporter reports accessor failures to a structured logger.
type logReporter struct {
	logger Logger
}

// NewLogReporter creates a Reporter that logs failures at warn level.
//
// Property failures are warnings, not errors: the rig keeps running and
// the operation has already defaulted by the time the report arrives.
func NewLogReporter(logger Logger) Reporter {
	return &logReporter{logger: logger}
}

func (r *logReporter) Report(err error) {
	r.logger.Warn("property operation failed", "error", err)
}
