package domain

import "time"

type NotificationType string

const (
	NotificationTypeApplicationSubmitted NotificationType = "APPLICATION_SUBMITTED"
	NotificationTypeApplicationStatus    NotificationType = "APPLICATION_STATUS"
	NotificationTypeApplicationWithdrawn NotificationType = "APPLICATION_WITHDRAWN"
)

// Notification is a durable record that an event occurred, addressed to one
// recipient. Immutable once created except for IsRead flipping to true.
type Notification struct {
	ID                int32            `json:"id"`
	RecipientID       int32            `json:"recipient_id"`
	SenderID          *int32           `json:"sender_id,omitempty"`
	Type              NotificationType `json:"type"`
	Message           string           `json:"message"`
	Link              string           `json:"link"`
	IsRead            bool             `json:"is_read"`
	RelatedEntityID   int32            `json:"related_entity_id"`
	RelatedEntityType string           `json:"related_entity_type"`
	CreatedOn         time.Time        `json:"created_on"`
}
