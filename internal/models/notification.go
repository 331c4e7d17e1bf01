package models

import "time"

type NotificationType string

const (
	NotificationBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
	NotificationBookingRejected  NotificationType = "BOOKING_REJECTED"
)

// Notification is a fire-and-forget message to a user. Rows are inserted by
// the booking workflow and only ever mutated by the mark-read endpoints.
type Notification struct {
	ID               uint             `json:"id" gorm:"primaryKey"`
	UserID           uint             `json:"userId" gorm:"column:user_id;not null;index"`
	Type             NotificationType `json:"type" gorm:"column:type;not null"`
	Title            string           `json:"title" gorm:"column:title;not null"`
	Message          string           `json:"message" gorm:"column:message"`
	RelatedBookingID *uint            `json:"relatedBookingId,omitempty" gorm:"column:related_booking_id"`
	IsRead           bool             `json:"isRead" gorm:"column:is_read;not null;default:false"`
	CreatedAt        time.Time        `json:"timestamp" gorm:"column:timestamp"`
}

// TableName specifies the table name
func (Notification) TableName() string {
	return "notifications"
}
