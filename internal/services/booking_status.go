package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gowtham121104/eventura-backend/internal/apperrors"
	"github.com/Gowtham121104/eventura-backend/internal/models"
	"github.com/Gowtham121104/eventura-backend/internal/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	ActionApprove = "APPROVE"
	ActionReject  = "REJECT"
)

const defaultRejectionReason = "Booking rejected"

// Actor is the authenticated caller of the status workflow, resolved by the
// auth middleware.
type Actor struct {
	UserID      uint
	Role        models.UserRole
	OrganizerID *uint
}

// StatusChangeRequest carries one approve/reject attempt against a booking.
type StatusChangeRequest struct {
	BookingID           uint
	Action              string
	Remarks             string
	ModifiedPrice       *float64
	AssignedOrganizerID *uint
	RejectionReason     string
}

type StatusChangeResult struct {
	BookingID    uint
	NewStatus    models.BookingStatus
	Notification *models.Notification
}

// UserNotifier pushes a freshly committed notification to a connected user.
// A nil notifier skips the push; the durable row is already written.
type UserNotifier interface {
	NotifyUser(userID uint, notification *models.Notification)
}

// BookingStatusService moves a booking out of PENDING exactly once. The
// status re-read, booking update, history append and notification insert run
// in a single transaction; any failure rolls all of them back.
type BookingStatusService struct {
	tx            repository.TxManager
	bookings      repository.BookingRepository
	notifications repository.NotificationRepository
	notifier      UserNotifier
	log           *logrus.Logger
}

func NewBookingStatusService(
	tx repository.TxManager,
	bookings repository.BookingRepository,
	notifications repository.NotificationRepository,
	notifier UserNotifier,
	log *logrus.Logger,
) *BookingStatusService {
	if log == nil {
		log = logrus.New()
	}
	return &BookingStatusService{
		tx:            tx,
		bookings:      bookings,
		notifications: notifications,
		notifier:      notifier,
		log:           log,
	}
}

// Transition applies APPROVE or REJECT to a PENDING booking. Validation
// failures are detected before any database access; everything that touches
// state runs inside one transaction with the booking row locked.
func (s *BookingStatusService) Transition(ctx context.Context, actor Actor, req StatusChangeRequest) (*StatusChangeResult, error) {
	if req.BookingID == 0 || strings.TrimSpace(req.Action) == "" {
		return nil, apperrors.BadRequest("Missing required fields: booking_id, action")
	}

	action := strings.ToUpper(strings.TrimSpace(req.Action))
	if action != ActionApprove && action != ActionReject {
		return nil, apperrors.BadRequest("Invalid action. Must be APPROVE or REJECT")
	}

	if actor.Role != models.RoleAdmin && actor.Role != models.RoleOrganizer {
		return nil, apperrors.Forbidden("Only admins and organizers can update booking status")
	}

	var result *StatusChangeResult

	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		// Re-read under lock: a value fetched before the transaction began
		// cannot be trusted once a concurrent call has committed.
		booking, err := s.bookings.FindByIDForUpdate(ctx, tx, req.BookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Booking not found")
			}
			return apperrors.ServerError("Failed to load booking", err)
		}

		if booking.Status != models.BookingStatusPending {
			return apperrors.InvalidState(fmt.Sprintf("Cannot %s booking with status: %s", action, booking.Status))
		}

		assignedOrganizerID := req.AssignedOrganizerID
		if actor.Role == models.RoleOrganizer {
			if booking.AssignedOrganizerID != nil {
				if actor.OrganizerID == nil || *booking.AssignedOrganizerID != *actor.OrganizerID {
					return apperrors.Forbidden("You are not allowed to approve this booking")
				}
			}
			if assignedOrganizerID == nil {
				assignedOrganizerID = actor.OrganizerID
			}
		}

		now := time.Now()
		oldStatus := booking.Status
		approvedBy := actor.UserID

		var newStatus models.BookingStatus
		if action == ActionApprove {
			newStatus = models.BookingStatusConfirmed
			booking.Status = newStatus
			booking.ApprovedBy = &approvedBy
			booking.ApprovedAt = &now
			booking.AdminRemarks = req.Remarks
			if req.ModifiedPrice != nil {
				booking.ModifiedPrice = req.ModifiedPrice
			}
		} else {
			newStatus = models.BookingStatusRejected
			booking.Status = newStatus
			booking.ApprovedBy = &approvedBy
			booking.RejectedAt = &now
			booking.AdminRemarks = req.Remarks
			booking.RejectionReason = req.RejectionReason
			if booking.RejectionReason == "" {
				booking.RejectionReason = defaultRejectionReason
			}
		}
		if assignedOrganizerID != nil {
			booking.AssignedOrganizerID = assignedOrganizerID
		}

		if err := s.bookings.Update(ctx, tx, booking); err != nil {
			return apperrors.ServerError("Failed to update booking", err)
		}

		history := &models.BookingStatusHistory{
			BookingID: booking.ID,
			OldStatus: oldStatus,
			NewStatus: newStatus,
			ChangedBy: actor.UserID,
			Remarks:   req.Remarks,
		}
		if err := s.bookings.AppendHistory(ctx, tx, history); err != nil {
			return apperrors.ServerError("Failed to record status history", err)
		}

		notification := s.buildNotification(booking, action, actor.Role)
		if err := s.notifications.Create(ctx, tx, notification); err != nil {
			return apperrors.ServerError("Failed to create notification", err)
		}

		result = &StatusChangeResult{
			BookingID:    booking.ID,
			NewStatus:    newStatus,
			Notification: notification,
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			if appErr.Kind == apperrors.KindServerError {
				s.log.WithError(err).WithField("bookingId", req.BookingID).Error("booking status transition rolled back")
			}
			return nil, appErr
		}
		s.log.WithError(err).WithField("bookingId", req.BookingID).Error("booking status transition failed")
		return nil, apperrors.ServerError("Failed to update booking status", err)
	}

	s.log.WithFields(logrus.Fields{
		"bookingId": result.BookingID,
		"newStatus": result.NewStatus,
		"changedBy": actor.UserID,
	}).Info("booking status updated")

	if s.notifier != nil {
		s.notifier.NotifyUser(result.Notification.UserID, result.Notification)
	}

	return result, nil
}

func (s *BookingStatusService) buildNotification(booking *models.Booking, action string, role models.UserRole) *models.Notification {
	bookingID := booking.ID

	if action == ActionApprove {
		approver := "organizer"
		if role == models.RoleAdmin {
			approver = "admin"
		}
		return &models.Notification{
			UserID:           booking.ClientID,
			Type:             models.NotificationBookingConfirmed,
			Title:            "Booking Confirmed",
			Message:          fmt.Sprintf("Your booking has been approved by the %s.", approver),
			RelatedBookingID: &bookingID,
		}
	}

	return &models.Notification{
		UserID:           booking.ClientID,
		Type:             models.NotificationBookingRejected,
		Title:            "Booking Rejected",
		Message:          "Your booking request has been rejected.",
		RelatedBookingID: &bookingID,
	}
}
