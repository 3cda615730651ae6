package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/busbooking/internal/cache"
	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/repository"
	"github.com/Domenick1991/busbooking/internal/service/booking"
	"github.com/Domenick1991/busbooking/internal/service/drivers"
	"github.com/Domenick1991/busbooking/internal/service/schedules"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	redis  *miniredis.Miniredis
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	driverRepo := repository.NewDriverRepository(client)
	statusRepo := repository.NewStatusRepository(client)
	scheduleRepo := repository.NewScheduleRepository(client)
	bookingRepo := repository.NewBookingRepository(client)
	board := cache.NewRedisCache(client, 0)

	driverService := drivers.NewDriverService(driverRepo, statusRepo, scheduleRepo, drivers.WithBoardInvalidator(board))
	scheduleService := schedules.NewScheduleService(scheduleRepo, driverRepo, statusRepo, schedules.WithCache(board))
	bookingService := booking.NewBookingService(bookingRepo)

	router := NewRouter(nil, nil,
		NewDriverHandler(driverService, nil),
		NewScheduleHandler(scheduleService, nil),
		NewBookingHandler(bookingService, nil),
	)
	return &testServer{router: router, redis: mr}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (s *testServer) register(t *testing.T, name, bus string) domain.Driver {
	t.Helper()
	w := s.do(t, http.MethodPost, "/register-driver", gin.H{
		"name": name, "phone": "+254700000000", "route": domain.RouteName, "busNumber": bus,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode[domain.Driver](t, w)
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "Server is running", body["status"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestRouter_RegisterDefaults(t *testing.T) {
	s := newTestServer(t)

	driver := s.register(t, "A", "KAA 001")

	assert.NotEmpty(t, driver.ID)
	assert.Equal(t, "Nairobi Central", driver.CurrentLocation)
	assert.Equal(t, "08:00", driver.DepartureTime)
	assert.Equal(t, "active", driver.Status)
	assert.True(t, s.redis.Exists("driver:"+driver.ID))
}

func TestRouter_RegisterValidation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/register-driver", gin.H{"name": "A", "phone": "+254700000000"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"All fields required"}`, w.Body.String())
}

func TestRouter_ListDrivers(t *testing.T) {
	s := newTestServer(t)

	ids := map[string]bool{}
	for _, bus := range []string{"KAA 001", "KAA 002", "KAA 003"} {
		ids[s.register(t, "Driver "+bus, bus).ID] = true
	}

	w := s.do(t, http.MethodGet, "/drivers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]domain.Driver](t, w)

	assert.Len(t, list, 3)
	for _, d := range list {
		assert.True(t, ids[d.ID])
	}
}

func TestRouter_DriverStatus(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/driver-status/nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Driver status not found"}`, w.Body.String())

	// unregistered drivers may still report a status
	w = s.do(t, http.MethodPost, "/update-driver-status", gin.H{
		"driverId": "ghost", "currentLocation": "Ruiru", "departureTime": "09:30",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/driver-status/ghost", nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decode[domain.DriverStatus](t, w)
	assert.Equal(t, "Ruiru", status.CurrentLocation)
	assert.Equal(t, "updated", status.Status)
}

func TestRouter_BookingLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/create-booking",
		`{"scheduleId":"does-not-exist","driverId":"driver-9","passengerName":"Wanjiru","seatNumber":4}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decode[domain.Booking](t, w)
	assert.Equal(t, "4", created.SeatNumber)

	w = s.do(t, http.MethodGet, "/bookings", nil)
	assert.Len(t, decode[[]domain.Booking](t, w), 1)

	w = s.do(t, http.MethodDelete, "/delete-booking/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Booking deleted"}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/bookings", nil)
	assert.Empty(t, decode[[]domain.Booking](t, w))

	owned, _ := s.redis.List("driver:driver-9:bookings")
	assert.NotContains(t, owned, created.ID)
}

func TestRouter_DeleteDriverCascade(t *testing.T) {
	s := newTestServer(t)
	driver := s.register(t, "A", "KAA 001")

	w := s.do(t, http.MethodPost, "/add-schedule", gin.H{
		"driverId": driver.ID, "stage": "Kasarani", "departureTime": "10:00",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	sched := decode[domain.Schedule](t, w)

	w = s.do(t, http.MethodPost, "/create-booking", gin.H{
		"scheduleId": sched.ID, "driverId": driver.ID, "passengerName": "P", "seatNumber": "1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	bk := decode[domain.Booking](t, w)

	w = s.do(t, http.MethodDelete, "/delete-driver/"+driver.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Driver deleted"}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/schedules", nil)
	assert.Empty(t, decode[[]domain.Schedule](t, w))
	assert.False(t, s.redis.Exists("schedule:"+sched.ID))

	// bookings of a deleted driver stay behind
	w = s.do(t, http.MethodGet, "/bookings", nil)
	list := decode[[]domain.Booking](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, bk.ID, list[0].ID)
}

func TestRouter_Board(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "A", "KAA 001")

	w := s.do(t, http.MethodGet, "/board", nil)
	require.Equal(t, http.StatusOK, w.Code)
	board := decode[[]domain.BoardEntry](t, w)

	require.Len(t, board, 6)
	assert.Equal(t, domain.BoardSourceSeed, board[0].Source)
	assert.Equal(t, domain.BoardSourceDriver, board[5].Source)
	assert.Contains(t, board[5].WhatsAppURL, "https://wa.me/254700000000?text=")

	w = s.do(t, http.MethodGet, "/stages", nil)
	assert.Len(t, decode[[]string](t, w), 7)
}

func TestRouter_NoRoute(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/no-such-route", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_EmptyBodyIsMissingFields(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/create-booking", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"All fields required"}`, w.Body.String())
}

func TestRouter_CreateBooking_NumericZeroSeatIsMissing(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/create-booking", gin.H{
		"scheduleId":    "sched-001",
		"passengerName": "Njeri",
		"seatNumber":    0,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"All fields required"}`, w.Body.String())

	w = s.do(t, http.MethodPost, "/create-booking", gin.H{
		"scheduleId":    "sched-001",
		"passengerName": "Njeri",
		"seatNumber":    "0",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
