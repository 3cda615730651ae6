// Package client talks to the booking API over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/pkg/errors"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type RegisterDriverRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Route     string `json:"route"`
	BusNumber string `json:"busNumber"`
}

type UpdateStatusRequest struct {
	DriverID        string `json:"driverId"`
	DriverName      string `json:"driverName,omitempty"`
	BusNumber       string `json:"busNumber,omitempty"`
	CurrentLocation string `json:"currentLocation"`
	DepartureTime   string `json:"departureTime"`
	Route           string `json:"route,omitempty"`
	Phone           string `json:"phone,omitempty"`
}

type AddScheduleRequest struct {
	DriverID      string `json:"driverId"`
	Stage         string `json:"stage"`
	DepartureTime string `json:"departureTime"`
}

type CreateBookingRequest struct {
	ScheduleID    string `json:"scheduleId"`
	DriverID      string `json:"driverId,omitempty"`
	DriverName    string `json:"driverName,omitempty"`
	BusNumber     string `json:"busNumber,omitempty"`
	Stage         string `json:"stage,omitempty"`
	DepartureTime string `json:"departureTime,omitempty"`
	PassengerName string `json:"passengerName"`
	SeatNumber    string `json:"seatNumber"`
	Phone         string `json:"phone,omitempty"`
	BookingDate   string `json:"bookingDate,omitempty"`
	Status        string `json:"status,omitempty"`
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RegisterDriver(ctx context.Context, req RegisterDriverRequest) (*domain.Driver, error) {
	var out domain.Driver
	if err := c.do(ctx, http.MethodPost, "/register-driver", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Drivers(ctx context.Context) ([]domain.Driver, error) {
	var out []domain.Driver
	if err := c.do(ctx, http.MethodGet, "/drivers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateDriverStatus(ctx context.Context, req UpdateStatusRequest) (*domain.DriverStatus, error) {
	var out domain.DriverStatus
	if err := c.do(ctx, http.MethodPost, "/update-driver-status", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DriverStatus(ctx context.Context, driverID string) (*domain.DriverStatus, error) {
	var out domain.DriverStatus
	if err := c.do(ctx, http.MethodGet, "/driver-status/"+url.PathEscape(driverID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDriver(ctx context.Context, driverID string) error {
	return c.do(ctx, http.MethodDelete, "/delete-driver/"+url.PathEscape(driverID), nil, nil)
}

func (c *Client) AddSchedule(ctx context.Context, req AddScheduleRequest) (*domain.Schedule, error) {
	var out domain.Schedule
	if err := c.do(ctx, http.MethodPost, "/add-schedule", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Schedules(ctx context.Context) ([]domain.Schedule, error) {
	var out []domain.Schedule
	if err := c.do(ctx, http.MethodGet, "/schedules", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteSchedule(ctx context.Context, scheduleID string) error {
	return c.do(ctx, http.MethodDelete, "/delete-schedule/"+url.PathEscape(scheduleID), nil, nil)
}

func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	var out domain.Booking
	if err := c.do(ctx, http.MethodPost, "/create-booking", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Bookings(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteBooking(ctx context.Context, bookingID string) error {
	return c.do(ctx, http.MethodDelete, "/delete-booking/"+url.PathEscape(bookingID), nil, nil)
}

func (c *Client) Board(ctx context.Context) ([]domain.BoardEntry, error) {
	var out []domain.BoardEntry
	if err := c.do(ctx, http.MethodGet, "/board", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Stages(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/stages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		if payload.Error == "" {
			payload.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s response", path)
	}
	return nil
}
