package handler

import (
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
	"github.com/usm-portal/event-portal-api/pkg/response"
)

type notificationServiceMock struct {
	feedResp    *dto.NotificationFeed
	feedErr     error
	markedID    string
	markedAll   bool
	deletedID   string
	markReadErr error
}

func (m *notificationServiceMock) Feed(ctx context.Context) (*dto.NotificationFeed, error) {
	return m.feedResp, m.feedErr
}

func (m *notificationServiceMock) MarkRead(ctx context.Context, id string) error {
	m.markedID = id
	return m.markReadErr
}

func (m *notificationServiceMock) MarkAllRead(ctx context.Context) error {
	m.markedAll = true
	return nil
}

func (m *notificationServiceMock) Delete(ctx context.Context, id string) error {
	m.deletedID = id
	return nil
}

func TestNotificationHandlerFeed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &notificationServiceMock{
		feedResp: &dto.NotificationFeed{
			Unread: []models.Notification{{ID: "n1"}, {ID: "n3"}},
			Read:   []models.Notification{{ID: "n2"}},
		},
	}
	handler := NewNotificationHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/notifications", nil)
	c.Request = req

	handler.Feed(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Meta)
	assert.Equal(t, float64(2), envelope.Meta["unread_count"])
}

func TestNotificationHandlerMarkRead(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &notificationServiceMock{}
	handler := NewNotificationHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/notifications/n1/read", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "n1"}}

	handler.MarkRead(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "n1", mockSvc.markedID)
}

func TestNotificationHandlerMarkAllRead(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &notificationServiceMock{}
	handler := NewNotificationHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/notifications/read-all", nil)
	c.Request = req

	handler.MarkAllRead(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, mockSvc.markedAll)
}

func TestNotificationHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &notificationServiceMock{}
	handler := NewNotificationHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodDelete, "/notifications/n2", nil)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "n2"}}

	handler.Delete(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "n2", mockSvc.deletedID)
}
