package bootstrap

import (
	"context"

	"go.uber.org/zap"
)

// StdoutAuditLogger emits audit events through the global zap logger under
// the "audit" name. zap stamps each entry, so no separate timestamp field.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(_ context.Context, entry AuditLog) {
	zap.L().Named("audit").Info(entry.Message,
		zap.String("action", entry.Action),
		zap.Any("meta", entry.Meta),
	)
}
