package notification_test

import (
	"testing"
	"time"

	"speedial/internal/core/domain/model/notification"
	"speedial/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("should create notification with fresh id", func(t *testing.T) {
		a, err := notification.New("You are now ONLINE", notification.SeveritySuccess, now)
		require.NoError(t, err)
		b, err := notification.New("You are now ONLINE", notification.SeveritySuccess, now)
		require.NoError(t, err)

		require.NoError(t, a.Validate())
		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.NotEqual(t, a.ID(), b.ID())
		assert.Equal(t, "You are now ONLINE", a.Message())
		assert.Equal(t, notification.SeveritySuccess, a.Severity())
		assert.Equal(t, now, a.CreatedAt())
	})

	t.Run("should reject empty message and unknown severity", func(t *testing.T) {
		_, err := notification.New(" ", notification.Severity("error"), now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var n notification.Notification
		require.ErrorIs(t, n.Validate(), notification.ErrNotificationIsNotConstructed)
	})
}
