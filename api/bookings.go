package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/Domenick1991/busbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service booking.BookingUseCase
	logger  *zap.Logger
}

// flexString accepts a JSON string or number. Web forms send seat numbers as
// strings, scripts tend to send numbers; both are stored as text. A numeric
// zero counts as missing, the string "0" does not.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if v, err := n.Float64(); err == nil && v == 0 {
		*f = ""
		return nil
	}
	*f = flexString(n.String())
	return nil
}

type createBookingRequest struct {
	ScheduleID    string     `json:"scheduleId"`
	DriverID      string     `json:"driverId"`
	DriverName    string     `json:"driverName"`
	BusNumber     string     `json:"busNumber"`
	Stage         string     `json:"stage"`
	DepartureTime string     `json:"departureTime"`
	PassengerName string     `json:"passengerName"`
	SeatNumber    flexString `json:"seatNumber"`
	Phone         string     `json:"phone"`
	BookingDate   string     `json:"bookingDate"`
	Status        string     `json:"status"`
}

func NewBookingHandler(service booking.BookingUseCase, logger *zap.Logger) *BookingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingHandler{service: service, logger: logger}
}

func (h *BookingHandler) Register(router gin.IRoutes) {
	router.POST("/create-booking", h.create)
	router.GET("/bookings", h.list)
	router.DELETE("/delete-booking/:bookingId", h.delete)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		ScheduleID:    req.ScheduleID,
		DriverID:      req.DriverID,
		DriverName:    req.DriverName,
		BusNumber:     req.BusNumber,
		Stage:         req.Stage,
		DepartureTime: req.DepartureTime,
		PassengerName: req.PassengerName,
		SeatNumber:    string(req.SeatNumber),
		Phone:         req.Phone,
		BookingDate:   req.BookingDate,
		Status:        req.Status,
	})
	if err != nil {
		respondError(c, h.logger, err, "Error creating booking")
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *BookingHandler) list(c *gin.Context) {
	list, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "Error fetching bookings")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *BookingHandler) delete(c *gin.Context) {
	if err := h.service.DeleteBooking(c.Request.Context(), c.Param("bookingId")); err != nil {
		respondError(c, h.logger, err, "Error deleting booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
}
