package api

import (
	"net/http"

	"github.com/Domenick1991/busbooking/internal/service/schedules"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ScheduleHandler struct {
	service schedules.ScheduleUseCase
	logger  *zap.Logger
}

type addScheduleRequest struct {
	DriverID      string `json:"driverId"`
	Stage         string `json:"stage"`
	DepartureTime string `json:"departureTime"`
}

func NewScheduleHandler(service schedules.ScheduleUseCase, logger *zap.Logger) *ScheduleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleHandler{service: service, logger: logger}
}

func (h *ScheduleHandler) Register(router gin.IRoutes) {
	router.POST("/add-schedule", h.add)
	router.GET("/schedules", h.list)
	router.DELETE("/delete-schedule/:scheduleId", h.delete)
	router.GET("/board", h.board)
	router.GET("/stages", h.stages)
}

func (h *ScheduleHandler) add(c *gin.Context) {
	var req addScheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	schedule, err := h.service.Add(c.Request.Context(), schedules.AddScheduleInput{
		DriverID:      req.DriverID,
		Stage:         req.Stage,
		DepartureTime: req.DepartureTime,
	})
	if err != nil {
		respondError(c, h.logger, err, "Error adding schedule")
		return
	}
	c.JSON(http.StatusOK, schedule)
}

func (h *ScheduleHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Error fetching schedules")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ScheduleHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("scheduleId")); err != nil {
		respondError(c, h.logger, err, "Error deleting schedule")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}

func (h *ScheduleHandler) board(c *gin.Context) {
	board, err := h.service.Board(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Error fetching board")
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *ScheduleHandler) stages(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stages())
}
