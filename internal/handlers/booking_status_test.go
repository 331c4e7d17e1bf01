package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gowtham121104/eventura-backend/internal/apperrors"
	"github.com/Gowtham121104/eventura-backend/internal/models"
	"github.com/Gowtham121104/eventura-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockTransitioner struct {
	transitionFn func(ctx context.Context, actor services.Actor, req services.StatusChangeRequest) (*services.StatusChangeResult, error)
	gotActor     services.Actor
	gotRequest   services.StatusChangeRequest
}

func (m *mockTransitioner) Transition(ctx context.Context, actor services.Actor, req services.StatusChangeRequest) (*services.StatusChangeResult, error) {
	m.gotActor = actor
	m.gotRequest = req
	return m.transitionFn(ctx, actor, req)
}

func statusRouter(svc BookingTransitioner, userID uint, role string, organizerID *uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/api/bookings/:id/status", func(c *gin.Context) {
		c.Set("userId", userID)
		c.Set("role", role)
		if organizerID != nil {
			c.Set("organizerId", *organizerID)
		}
		c.Next()
	}, UpdateBookingStatus(svc))
	return r
}

func patchStatus(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateBookingStatus_Success(t *testing.T) {
	organizerID := uint(3)
	svc := &mockTransitioner{
		transitionFn: func(ctx context.Context, actor services.Actor, req services.StatusChangeRequest) (*services.StatusChangeResult, error) {
			return &services.StatusChangeResult{BookingID: 7, NewStatus: models.BookingStatusConfirmed}, nil
		},
	}
	r := statusRouter(svc, 30, "organizer", &organizerID)

	w := patchStatus(r, "/api/bookings/7/status", gin.H{
		"action":         "APPROVE",
		"remarks":        "Confirmed",
		"modified_price": 15000,
	})

	assert.Equal(t, 200, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "CONFIRMED", body["new_status"])
	assert.Equal(t, float64(7), body["booking_id"])

	assert.Equal(t, uint(7), svc.gotRequest.BookingID)
	assert.Equal(t, "APPROVE", svc.gotRequest.Action)
	assert.NotNil(t, svc.gotRequest.ModifiedPrice)
	assert.Equal(t, 15000.0, *svc.gotRequest.ModifiedPrice)

	assert.Equal(t, uint(30), svc.gotActor.UserID)
	assert.Equal(t, models.RoleOrganizer, svc.gotActor.Role)
	assert.NotNil(t, svc.gotActor.OrganizerID)
	assert.Equal(t, uint(3), *svc.gotActor.OrganizerID)
}

func TestUpdateBookingStatus_InvalidID(t *testing.T) {
	svc := &mockTransitioner{}
	r := statusRouter(svc, 1, "admin", nil)

	w := patchStatus(r, "/api/bookings/abc/status", gin.H{"action": "APPROVE"})

	assert.Equal(t, 400, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "BadRequest", body["kind"])
}

func TestUpdateBookingStatus_MissingAction(t *testing.T) {
	svc := &mockTransitioner{}
	r := statusRouter(svc, 1, "admin", nil)

	w := patchStatus(r, "/api/bookings/7/status", gin.H{"remarks": "no action"})

	assert.Equal(t, 400, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Missing required fields: booking_id, action", body["message"])
}

func TestUpdateBookingStatus_ErrorKindsMapToStatusCodes(t *testing.T) {
	cases := []struct {
		err      *apperrors.Error
		expected int
	}{
		{apperrors.NotFound("Booking not found"), 404},
		{apperrors.Forbidden("You are not allowed to approve this booking"), 403},
		{apperrors.InvalidState("Cannot APPROVE booking with status: CONFIRMED"), 409},
		{apperrors.BadRequest("Invalid action. Must be APPROVE or REJECT"), 400},
	}

	for _, tc := range cases {
		svc := &mockTransitioner{
			transitionFn: func(ctx context.Context, actor services.Actor, req services.StatusChangeRequest) (*services.StatusChangeResult, error) {
				return nil, tc.err
			},
		}
		r := statusRouter(svc, 1, "admin", nil)

		w := patchStatus(r, "/api/bookings/7/status", gin.H{"action": "APPROVE"})

		assert.Equalf(t, tc.expected, w.Code, "kind %s", tc.err.Kind)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, string(tc.err.Kind), body["kind"])
		assert.Equal(t, tc.err.Message, body["message"])
	}
}
