// Package notification holds the transient toast messages raised by dispatch
// operations.
package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"speedial/internal/pkg/errs"
	"speedial/internal/pkg/guard"

	"github.com/google/uuid"
)

// Severity drives how a notification is rendered.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
)

func (s Severity) Validate() error {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("severity", fmt.Errorf("%q is not a valid severity", string(s)))
	}
}

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via New")

// Notification is immutable once created.
type Notification struct {
	id        uuid.UUID
	message   string
	severity  Severity
	createdAt time.Time

	guard guard.ConstructorGuard
}

func New(message string, severity Severity, createdAt time.Time) (Notification, error) {
	var errList []error
	if strings.TrimSpace(message) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("message"))
	}
	errList = append(errList, severity.Validate())
	if err := errors.Join(errList...); err != nil {
		return Notification{}, err
	}

	return Notification{
		id:        uuid.New(),
		message:   message,
		severity:  severity,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (n Notification) Validate() error {
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n Notification) ID() uuid.UUID {
	return n.id
}

func (n Notification) Message() string {
	return n.message
}

func (n Notification) Severity() Severity {
	return n.severity
}

func (n Notification) CreatedAt() time.Time {
	return n.createdAt
}
