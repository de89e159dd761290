package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usm-portal/event-portal-api/internal/dto"
	"github.com/usm-portal/event-portal-api/internal/models"
	appErrors "github.com/usm-portal/event-portal-api/pkg/errors"
	"github.com/usm-portal/event-portal-api/pkg/response"
)

type moderationServiceMock struct {
	listResp     []models.Event
	listErr      error
	reviewResp   *models.Event
	reviewErr    error
	lastStatus   string
	lastReviewer string
	lastReq      dto.ReviewEventRequest
}

func (m *moderationServiceMock) ListByStatus(ctx context.Context, status string) ([]models.Event, error) {
	m.lastStatus = status
	return m.listResp, m.listErr
}

func (m *moderationServiceMock) Review(ctx context.Context, id string, req dto.ReviewEventRequest, reviewer string) (*models.Event, error) {
	m.lastReq = req
	m.lastReviewer = reviewer
	return m.reviewResp, m.reviewErr
}

func TestModerationHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &moderationServiceMock{
		listResp: []models.Event{{ID: "e1", ApprovalStatus: models.ApprovalPending}},
	}
	handler := NewModerationHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/admin/events?status=pending", nil)
	c.Request = req

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pending", mockSvc.lastStatus)
}

func TestModerationHandlerReview(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &moderationServiceMock{
		reviewResp: &models.Event{ID: "e1", ApprovalStatus: models.ApprovalApproved},
	}
	handler := NewModerationHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := bytes.NewBufferString(`{"action":"approve"}`)
	req, _ := http.NewRequest(http.MethodPost, "/admin/events/e1/review", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Reviewer", "vrodriguez")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "e1"}}

	handler.Review(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.ActionApprove, mockSvc.lastReq.Action)
	assert.Equal(t, "vrodriguez", mockSvc.lastReviewer)
}

func TestModerationHandlerReviewDefaultsReviewer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &moderationServiceMock{reviewResp: &models.Event{ID: "e1"}}
	handler := NewModerationHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := bytes.NewBufferString(`{"action":"reject","rejectionReason":"incompleto"}`)
	req, _ := http.NewRequest(http.MethodPost, "/admin/events/e1/review", body)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "e1"}}

	handler.Review(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", mockSvc.lastReviewer)
}

func TestModerationHandlerReviewInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewModerationHandler(&moderationServiceMock{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/admin/events/e1/review", bytes.NewBufferString(`{"action":`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "e1"}}

	handler.Review(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestModerationHandlerReviewConflict(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewModerationHandler(&moderationServiceMock{
		reviewErr: appErrors.Clone(appErrors.ErrConflict, "event already reviewed"),
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/admin/events/e1/review", bytes.NewBufferString(`{"action":"approve"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "e1"}}

	handler.Review(c)
	require.Equal(t, http.StatusConflict, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrConflict.Code, envelope.Error.Code)
}
