package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gowtham121104/eventura-backend/internal/apperrors"
	"github.com/Gowtham121104/eventura-backend/internal/services"
	"github.com/Gowtham121104/eventura-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Recommender ranks catalog packages against a client's requirements.
type Recommender interface {
	Recommend(ctx context.Context, req services.Requirements) ([]services.ScoredRecommendation, error)
}

type RecommendationInput struct {
	EventType      string   `json:"event_type" binding:"required"`
	Budget         *float64 `json:"budget" binding:"required"`
	GuestCount     *int     `json:"guest_count" binding:"required"`
	Services       []string `json:"services" binding:"required"`
	Date           string   `json:"date" binding:"required"`
	UserID         *uint    `json:"user_id"`
	ConversationID string   `json:"conversation_id"`
}

// GetRecommendations scores the catalog against the caller's requirements
// and returns the top matches with human-readable justifications.
func GetRecommendations(svc Recommender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RecommendationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{
				"success": false,
				"message": "Missing required fields",
			})
			return
		}

		conversationID := input.ConversationID
		if conversationID == "" {
			conversationID = utils.NewConversationID()
		}

		recommendations, err := svc.Recommend(c.Request.Context(), services.Requirements{
			EventType:  input.EventType,
			Budget:     *input.Budget,
			GuestCount: *input.GuestCount,
			Services:   input.Services,
			Date:       input.Date,
		})
		if err != nil {
			var appErr *apperrors.Error
			if errors.As(err, &appErr) {
				c.JSON(appErr.HTTPStatus(), gin.H{
					"success": false,
					"message": appErr.Message,
				})
				return
			}
			c.JSON(500, gin.H{
				"success": false,
				"message": "Failed to generate recommendations",
			})
			return
		}

		// Conversation continuity is best effort; a cache miss or outage
		// never fails the response.
		_ = services.SaveConversation(c.Request.Context(), services.ConversationRecord{
			ConversationID: conversationID,
			UserID:         input.UserID,
			EventType:      services.NormalizeEventType(input.EventType),
			Budget:         *input.Budget,
			GuestCount:     *input.GuestCount,
			Services:       input.Services,
			Date:           input.Date,
			ResultCount:    len(recommendations),
		})

		message := "No exact matches found, but here are some great options!"
		if len(recommendations) > 0 {
			message = fmt.Sprintf("Found %d perfect matches for you!", len(recommendations))
		}

		c.JSON(200, gin.H{
			"success":         true,
			"conversation_id": conversationID,
			"recommendations": gin.H{
				"packages": recommendations,
			},
			"message": message,
		})
	}
}

// GetConversation returns the last stored exchange for a conversation id,
// letting a client resume where it left off.
func GetConversation() gin.HandlerFunc {
	return func(c *gin.Context) {
		record, err := services.GetConversation(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(404, gin.H{
				"success": false,
				"message": "Conversation not found",
			})
			return
		}

		c.JSON(200, gin.H{
			"success":      true,
			"conversation": record,
		})
	}
}
