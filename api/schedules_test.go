package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestScheduleHandler_board(t *testing.T) {
	mockService := &MockScheduleUseCase{}
	handler := NewScheduleHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/board", nil)

	board := []domain.BoardEntry{{ID: "sched-001", Stage: "Nairobi Central", Source: domain.BoardSourceSeed}}
	mockService.On("Board", c.Request.Context()).Return(board, nil)

	handler.board(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []domain.BoardEntry
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, board, response)
	mockService.AssertExpectations(t)
}

func TestScheduleHandler_delete(t *testing.T) {
	mockService := &MockScheduleUseCase{}
	handler := NewScheduleHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "scheduleId", Value: "s-1"}}
	c.Request = httptest.NewRequest("DELETE", "/delete-schedule/s-1", nil)

	mockService.On("Delete", c.Request.Context(), "s-1").Return(nil)

	handler.delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Schedule deleted"}`, w.Body.String())
}

func TestScheduleHandler_stages(t *testing.T) {
	mockService := &MockScheduleUseCase{}
	handler := NewScheduleHandler(mockService, nil)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/stages", nil)

	mockService.On("Stages").Return(domain.Stages)

	handler.stages(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, domain.Stages, response)
}
