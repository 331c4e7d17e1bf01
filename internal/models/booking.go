package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

type BookingType string

const (
	BookingTypeEvent   BookingType = "event"
	BookingTypeService BookingType = "service"
	BookingTypePackage BookingType = "package"
)

// Booking is a client's request to reserve a package, service or event slot.
// Only PENDING bookings are mutable by the approval workflow; every other
// status is terminal from its perspective.
type Booking struct {
	gorm.Model
	BookingReference    string      `json:"bookingReference" gorm:"column:booking_reference;unique;not null"`
	BookingType         BookingType `json:"bookingType" gorm:"column:booking_type;not null;default:'package'"`
	ClientID            uint        `json:"clientId" gorm:"column:client_id;not null"`
	Client              *User       `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	VendorID            *uint       `json:"vendorId,omitempty" gorm:"column:vendor_id"`
	PackageID           *uint       `json:"packageId,omitempty" gorm:"column:package_id"`
	AssignedOrganizerID *uint       `json:"assignedOrganizerId,omitempty" gorm:"column:assigned_organizer_id"`

	EventType           string    `json:"eventType" gorm:"column:event_type"`
	EventName           string    `json:"eventName" gorm:"column:event_name"`
	EventDate           string    `json:"eventDate" gorm:"column:event_date"`
	EventTime           string    `json:"eventTime" gorm:"column:event_time"`
	Venue               string    `json:"venue" gorm:"column:venue"`
	GuestCount          int       `json:"guestCount" gorm:"column:guest_count;not null;default:0"`
	CustomerName        string    `json:"customerName" gorm:"column:customer_name"`
	CustomerPhone       string    `json:"customerPhone" gorm:"column:customer_phone"`
	CustomerEmail       string    `json:"customerEmail" gorm:"column:customer_email"`
	SpecialRequirements string    `json:"specialRequirements" gorm:"column:special_requirements"`

	EstimatedPrice float64  `json:"estimatedPrice" gorm:"column:estimated_price"`
	TotalAmount    float64  `json:"totalAmount" gorm:"column:total_amount"`
	ModifiedPrice  *float64 `json:"modifiedPrice,omitempty" gorm:"column:modified_price"`

	Status          BookingStatus `json:"status" gorm:"column:status;not null;default:'PENDING'"`
	AdminRemarks    string        `json:"adminRemarks" gorm:"column:admin_remarks"`
	RejectionReason string        `json:"rejectionReason" gorm:"column:rejection_reason"`
	ApprovedBy      *uint         `json:"approvedBy,omitempty" gorm:"column:approved_by"`
	ApprovedAt      *time.Time    `json:"approvedAt,omitempty" gorm:"column:approved_at"`
	RejectedAt      *time.Time    `json:"rejectedAt,omitempty" gorm:"column:rejected_at"`
}

// TableName specifies the table name
func (Booking) TableName() string {
	return "bookings"
}

// BookingStatusHistory is the append-only audit trail of status transitions.
// Rows are never updated or deleted.
type BookingStatusHistory struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	BookingID uint          `json:"bookingId" gorm:"column:booking_id;not null;index"`
	OldStatus BookingStatus `json:"oldStatus" gorm:"column:old_status;not null"`
	NewStatus BookingStatus `json:"newStatus" gorm:"column:new_status;not null"`
	ChangedBy uint          `json:"changedBy" gorm:"column:changed_by;not null"`
	Remarks   string        `json:"remarks" gorm:"column:remarks"`
	CreatedAt time.Time     `json:"createdAt" gorm:"column:created_at"`
}

// TableName specifies the table name
func (BookingStatusHistory) TableName() string {
	return "booking_status_history"
}
