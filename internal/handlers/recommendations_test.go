package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gowtham121104/eventura-backend/internal/apperrors"
	"github.com/Gowtham121104/eventura-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockRecommender struct {
	recommendFn func(ctx context.Context, req services.Requirements) ([]services.ScoredRecommendation, error)
	gotRequest  services.Requirements
}

func (m *mockRecommender) Recommend(ctx context.Context, req services.Requirements) ([]services.ScoredRecommendation, error) {
	m.gotRequest = req
	return m.recommendFn(ctx, req)
}

func recommendationsRouter(svc Recommender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/recommendations", GetRecommendations(svc))
	return r
}

func postRecommendations(r *gin.Engine, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validRecommendationBody() gin.H {
	return gin.H{
		"event_type":  "birthday",
		"budget":      50000,
		"guest_count": 80,
		"services":    []string{"catering", "photography"},
		"date":        "2025-06-01",
	}
}

func TestGetRecommendations_Success(t *testing.T) {
	svc := &mockRecommender{
		recommendFn: func(ctx context.Context, req services.Requirements) ([]services.ScoredRecommendation, error) {
			return []services.ScoredRecommendation{
				{PackageDetails: services.PackageDetails{ID: 1, Name: "Deluxe Birthday Bash"}, Score: 104.8},
				{PackageDetails: services.PackageDetails{ID: 2, Name: "Simple Party"}, Score: 84},
			}, nil
		},
	}
	r := recommendationsRouter(svc)

	w := postRecommendations(r, validRecommendationBody())

	assert.Equal(t, 200, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Found 2 perfect matches for you!", body["message"])
	assert.True(t, strings.HasPrefix(body["conversation_id"].(string), "conv_"))

	recommendations := body["recommendations"].(map[string]any)
	packages := recommendations["packages"].([]any)
	assert.Len(t, packages, 2)
	first := packages[0].(map[string]any)
	assert.Equal(t, 104.8, first["score"])

	assert.Equal(t, "birthday", svc.gotRequest.EventType)
	assert.Equal(t, 50000.0, svc.gotRequest.Budget)
	assert.Equal(t, 80, svc.gotRequest.GuestCount)
	assert.Equal(t, []string{"catering", "photography"}, svc.gotRequest.Services)
}

func TestGetRecommendations_EmptyResult(t *testing.T) {
	svc := &mockRecommender{
		recommendFn: func(ctx context.Context, req services.Requirements) ([]services.ScoredRecommendation, error) {
			return []services.ScoredRecommendation{}, nil
		},
	}
	r := recommendationsRouter(svc)

	w := postRecommendations(r, validRecommendationBody())

	assert.Equal(t, 200, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "No exact matches found, but here are some great options!", body["message"])

	recommendations := body["recommendations"].(map[string]any)
	assert.Empty(t, recommendations["packages"])
}

func TestGetRecommendations_MissingFields(t *testing.T) {
	svc := &mockRecommender{}
	r := recommendationsRouter(svc)

	w := postRecommendations(r, gin.H{"event_type": "birthday"})

	assert.Equal(t, 400, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing required fields", body["message"])
}

func TestGetRecommendations_ZeroGuestCountBinds(t *testing.T) {
	// guest_count 0 is a legal value and must not be rejected as missing.
	svc := &mockRecommender{
		recommendFn: func(ctx context.Context, req services.Requirements) ([]services.ScoredRecommendation, error) {
			return nil, nil
		},
	}
	r := recommendationsRouter(svc)

	body := validRecommendationBody()
	body["guest_count"] = 0
	w := postRecommendations(r, body)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, 0, svc.gotRequest.GuestCount)
}

func TestGetRecommendations_ReusesConversationID(t *testing.T) {
	svc := &mockRecommender{
		recommendFn: func(ctx context.Context, req services.Requirements) ([]services.ScoredRecommendation, error) {
			return nil, nil
		},
	}
	r := recommendationsRouter(svc)

	body := validRecommendationBody()
	body["conversation_id"] = "conv_existing12345"
	w := postRecommendations(r, body)

	assert.Equal(t, 200, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "conv_existing12345", resp["conversation_id"])
}

func TestGetRecommendations_ServiceErrors(t *testing.T) {
	svc := &mockRecommender{
		recommendFn: func(ctx context.Context, req services.Requirements) ([]services.ScoredRecommendation, error) {
			return nil, apperrors.BadRequest("Budget must be greater than zero")
		},
	}
	r := recommendationsRouter(svc)

	body := validRecommendationBody()
	body["budget"] = -1
	w := postRecommendations(r, body)

	assert.Equal(t, 400, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Budget must be greater than zero", resp["message"])
}

func TestGetRecommendations_UnexpectedError(t *testing.T) {
	svc := &mockRecommender{
		recommendFn: func(ctx context.Context, req services.Requirements) ([]services.ScoredRecommendation, error) {
			return nil, errors.New("boom")
		},
	}
	r := recommendationsRouter(svc)

	w := postRecommendations(r, validRecommendationBody())

	assert.Equal(t, 500, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Failed to generate recommendations", resp["message"])
}
