package disnes

// Logger is the minimal leveled-logging surface the analysis pipeline
// needs to report analytical contradictions (spec §7): a permission
// violation on an address already marked Code, or an interrupt vector
// whose target is already NotCode. *logrus.Logger and *logrus.Entry both
// satisfy this interface.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// NopLogger discards every message. Useful for tests and for callers that
// don't care about the pipeline's analytical-contradiction warnings.
type NopLogger struct{}

// Warnf implements Logger by discarding msg.
func (NopLogger) Warnf(format string, args ...interface{}) {}
