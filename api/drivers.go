package api

import (
	"net/http"

	"github.com/Domenick1991/busbooking/internal/service/drivers"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DriverHandler struct {
	service drivers.DriverUseCase
	logger  *zap.Logger
}

type registerDriverRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Route     string `json:"route"`
	BusNumber string `json:"busNumber"`
}

type updateStatusRequest struct {
	DriverID        string `json:"driverId"`
	DriverName      string `json:"driverName"`
	BusNumber       string `json:"busNumber"`
	CurrentLocation string `json:"currentLocation"`
	DepartureTime   string `json:"departureTime"`
	Route           string `json:"route"`
	Phone           string `json:"phone"`
}

func NewDriverHandler(service drivers.DriverUseCase, logger *zap.Logger) *DriverHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DriverHandler{service: service, logger: logger}
}

func (h *DriverHandler) Register(router gin.IRoutes) {
	router.POST("/register-driver", h.registerDriver)
	router.GET("/drivers", h.list)
	router.POST("/update-driver-status", h.updateStatus)
	router.GET("/driver-status/:driverId", h.getStatus)
	router.DELETE("/delete-driver/:driverId", h.delete)
}

func (h *DriverHandler) registerDriver(c *gin.Context) {
	var req registerDriverRequest
	if !bindJSON(c, &req) {
		return
	}

	driver, err := h.service.Register(c.Request.Context(), drivers.RegisterDriverInput{
		Name:      req.Name,
		Phone:     req.Phone,
		Route:     req.Route,
		BusNumber: req.BusNumber,
	})
	if err != nil {
		respondError(c, h.logger, err, "Error registering driver")
		return
	}
	c.JSON(http.StatusOK, driver)
}

func (h *DriverHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Error fetching drivers")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *DriverHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	status, err := h.service.UpdateStatus(c.Request.Context(), drivers.UpdateStatusInput{
		DriverID:        req.DriverID,
		DriverName:      req.DriverName,
		BusNumber:       req.BusNumber,
		CurrentLocation: req.CurrentLocation,
		DepartureTime:   req.DepartureTime,
		Route:           req.Route,
		Phone:           req.Phone,
	})
	if err != nil {
		respondError(c, h.logger, err, "Error updating driver status")
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *DriverHandler) getStatus(c *gin.Context) {
	status, err := h.service.GetStatus(c.Request.Context(), c.Param("driverId"))
	if err != nil {
		respondError(c, h.logger, err, "Error fetching driver status")
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *DriverHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("driverId")); err != nil {
		respondError(c, h.logger, err, "Error deleting driver")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted"})
}
