package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID `json:"id" db:"notification_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Type      string    `json:"type" db:"type"`
	Text      string    `json:"text" db:"text"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

const (
	NotifBid       = "bid"
	NotifMilestone = "milestone"
)

// NotificationListLimit caps the notification feed at the most recent entries.
const NotificationListLimit = 20
