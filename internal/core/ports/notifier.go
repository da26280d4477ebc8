package ports

import "speedial/internal/core/domain/model/notification"

// Notifier receives the user facing messages raised by commands.
type Notifier interface {
	Push(message string, severity notification.Severity)
}
