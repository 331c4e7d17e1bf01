package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/Gowtham121104/eventura-backend/internal/apperrors"
	"github.com/Gowtham121104/eventura-backend/internal/models"
	"github.com/Gowtham121104/eventura-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// BookingTransitioner is the approval workflow behind the status endpoint.
type BookingTransitioner interface {
	Transition(ctx context.Context, actor services.Actor, req services.StatusChangeRequest) (*services.StatusChangeResult, error)
}

type UpdateBookingStatusInput struct {
	Action              string   `json:"action" binding:"required"`
	Remarks             string   `json:"remarks"`
	ModifiedPrice       *float64 `json:"modified_price"`
	AssignedOrganizerID *uint    `json:"assigned_organizer_id"`
	RejectionReason     string   `json:"rejection_reason"`
}

// UpdateBookingStatus approves or rejects a pending booking
func UpdateBookingStatus(svc BookingTransitioner) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{
				"status":  "error",
				"kind":    apperrors.KindBadRequest,
				"message": "Invalid booking ID",
			})
			return
		}

		var input UpdateBookingStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{
				"status":  "error",
				"kind":    apperrors.KindBadRequest,
				"message": "Missing required fields: booking_id, action",
			})
			return
		}

		actor := services.Actor{
			UserID: c.GetUint("userId"),
			Role:   models.UserRole(c.GetString("role")),
		}
		if organizerID, ok := c.Get("organizerId"); ok {
			id := organizerID.(uint)
			actor.OrganizerID = &id
		}

		result, err := svc.Transition(c.Request.Context(), actor, services.StatusChangeRequest{
			BookingID:           uint(bookingID),
			Action:              input.Action,
			Remarks:             input.Remarks,
			ModifiedPrice:       input.ModifiedPrice,
			AssignedOrganizerID: input.AssignedOrganizerID,
			RejectionReason:     input.RejectionReason,
		})
		if err != nil {
			var appErr *apperrors.Error
			if errors.As(err, &appErr) {
				c.JSON(appErr.HTTPStatus(), gin.H{
					"status":  "error",
					"kind":    appErr.Kind,
					"message": appErr.Message,
				})
				return
			}
			c.JSON(500, gin.H{
				"status":  "error",
				"kind":    apperrors.KindServerError,
				"message": "Failed to update booking status",
			})
			return
		}

		c.JSON(200, gin.H{
			"status":     "success",
			"new_status": result.NewStatus,
			"booking_id": result.BookingID,
		})
	}
}
