package storefront

import (
	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/storefront/internal/selection"
)

// loggerDiagnostics adapts the platform logger to the selection package's
// diagnostics collaborator.
type loggerDiagnostics struct {
	logger apt.Logger
}

// NewDiagnostics wraps a platform logger as selection diagnostics.
func NewDiagnostics(logger apt.Logger) selection.Diagnostics {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return loggerDiagnostics{logger: logger}
}

// The platform logger has no warn level, so label fallbacks surface at error.
func (d loggerDiagnostics) Warn(msg string, args ...any) {
	d.logger.Error(append([]any{msg}, args...)...)
}

func (d loggerDiagnostics) Info(msg string, args ...any) {
	d.logger.Info(append([]any{msg}, args...)...)
}

func (d loggerDiagnostics) Debug(msg string, args ...any) {
	d.logger.Debug(append([]any{msg}, args...)...)
}
