package handlers

import (
	"strconv"

	"github.com/Gowtham121104/eventura-backend/internal/models"
	"github.com/Gowtham121104/eventura-backend/internal/repository"
	"github.com/Gowtham121104/eventura-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

type CreateBookingInput struct {
	BookingType         string  `json:"bookingType" binding:"omitempty,oneof=event service package"`
	VendorID            *uint   `json:"vendorId"`
	PackageID           *uint   `json:"packageId"`
	EventType           string  `json:"eventType"`
	EventName           string  `json:"eventName"`
	EventDate           string  `json:"eventDate" binding:"required"`
	EventTime           string  `json:"eventTime" binding:"required"`
	Venue               string  `json:"venue" binding:"required"`
	GuestCount          *int    `json:"guestCount" binding:"required,gte=0"`
	CustomerName        string  `json:"customerName" binding:"required"`
	CustomerPhone       string  `json:"customerPhone" binding:"required"`
	CustomerEmail       string  `json:"customerEmail" binding:"required,email"`
	SpecialRequirements string  `json:"specialRequirements"`
	EstimatedPrice      float64 `json:"estimatedPrice"`
}

// CreateBooking handles the creation of a new booking request. Bookings
// always start in PENDING; the approval workflow owns every later change.
func CreateBooking(bookings repository.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		var input CreateBookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		bookingType := models.BookingType(input.BookingType)
		if bookingType == "" {
			bookingType = models.BookingTypePackage
		}

		booking := models.Booking{
			BookingReference:    utils.NewBookingReference(),
			BookingType:         bookingType,
			ClientID:            userID,
			VendorID:            input.VendorID,
			PackageID:           input.PackageID,
			EventType:           input.EventType,
			EventName:           input.EventName,
			EventDate:           input.EventDate,
			EventTime:           input.EventTime,
			Venue:               input.Venue,
			GuestCount:          *input.GuestCount,
			CustomerName:        input.CustomerName,
			CustomerPhone:       input.CustomerPhone,
			CustomerEmail:       input.CustomerEmail,
			SpecialRequirements: input.SpecialRequirements,
			EstimatedPrice:      input.EstimatedPrice,
			Status:              models.BookingStatusPending,
		}

		if err := bookings.Create(c.Request.Context(), &booking); err != nil {
			c.JSON(500, gin.H{"error": "Failed to create booking"})
			return
		}

		c.JSON(201, gin.H{
			"message":          "Booking created successfully",
			"bookingReference": booking.BookingReference,
			"booking": gin.H{
				"id":        booking.ID,
				"reference": booking.BookingReference,
				"status":    booking.Status,
				"createdAt": booking.CreatedAt,
			},
		})
	}
}

// GetClientBookings retrieves all bookings for the calling client
func GetClientBookings(bookings repository.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")

		result, err := bookings.FindByClient(c.Request.Context(), userID)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		c.JSON(200, gin.H{"bookings": result})
	}
}

// GetPendingBookings lists bookings awaiting approval, paginated
func GetPendingBookings(bookings repository.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
		if perPage < 1 || perPage > 100 {
			perPage = 20
		}

		status := models.BookingStatus(c.DefaultQuery("status", string(models.BookingStatusPending)))

		result, total, err := bookings.FindByStatus(c.Request.Context(), status, perPage, (page-1)*perPage)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		totalPages := total / int64(perPage)
		if total%int64(perPage) != 0 {
			totalPages++
		}

		c.JSON(200, gin.H{
			"bookings": result,
			"pagination": gin.H{
				"currentPage": page,
				"perPage":     perPage,
				"total":       total,
				"totalPages":  totalPages,
			},
		})
	}
}

// GetBookingDetails returns one booking, visible to its client and to staff
func GetBookingDetails(bookings repository.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")
		role := c.GetString("role")

		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid booking ID"})
			return
		}

		booking, err := bookings.FindByID(c.Request.Context(), uint(id))
		if err != nil {
			c.JSON(404, gin.H{"error": "Booking not found"})
			return
		}

		if role == string(models.RoleClient) && booking.ClientID != userID {
			c.JSON(403, gin.H{"error": "Unauthorized"})
			return
		}

		c.JSON(200, booking)
	}
}

// GetBookingStats returns booking counts grouped by status
func GetBookingStats(bookings repository.BookingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := bookings.CountByStatus(c.Request.Context())
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch booking stats"})
			return
		}

		c.JSON(200, gin.H{"stats": counts})
	}
}
