package selection

// Diagnostics receives non-fatal observability signals from the collector.
// Arguments follow the key-value convention of the platform logger.
type Diagnostics interface {
	Warn(msg string, args ...any)
	Info(msg string, args ...any)
	Debug(msg string, args ...any)
}

type noopDiagnostics struct{}

func (noopDiagnostics) Warn(msg string, args ...any)  {}
func (noopDiagnostics) Info(msg string, args ...any)  {}
func (noopDiagnostics) Debug(msg string, args ...any) {}

// NewNoopDiagnostics returns a Diagnostics that discards everything.
func NewNoopDiagnostics() Diagnostics {
	return noopDiagnostics{}
}
