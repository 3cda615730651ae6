// Package tui is the terminal front end: departures, bookings and drivers in
// three tabs, refreshed from the API on a fixed interval.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/busbooking/internal/client"
	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tab int

const (
	tabSchedules tab = iota
	tabBookings
	tabDrivers
)

var tabNames = [...]string{"Schedules", "Bookings", "Drivers"}

const msgFillAllFields = "Please fill all fields"

type Model struct {
	api      API
	interval time.Duration
	timeout  time.Duration
	now      func() time.Time
	styles   Styles

	active tab
	tables [len(tabNames)]table.Model

	board    []domain.BoardEntry
	bookings []domain.Booking
	drivers  []domain.Driver

	form      *form
	formEntry domain.BoardEntry

	status string
	failed bool
}

type Option func(*Model)

func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.timeout = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

func New(api API, opts ...Option) Model {
	m := Model{
		api:      api,
		interval: 5 * time.Second,
		timeout:  10 * time.Second,
		now:      time.Now,
		styles:   DefaultStyles(),
	}
	m.tables[tabSchedules] = newTable(
		table.Column{Title: "Stage", Width: 16},
		table.Column{Title: "Departs", Width: 8},
		table.Column{Title: "Driver", Width: 18},
		table.Column{Title: "Bus", Width: 10},
		table.Column{Title: "Phone", Width: 15},
	)
	m.tables[tabBookings] = newTable(
		table.Column{Title: "Passenger", Width: 18},
		table.Column{Title: "Seat", Width: 6},
		table.Column{Title: "Stage", Width: 16},
		table.Column{Title: "Departs", Width: 8},
		table.Column{Title: "Bus", Width: 10},
		table.Column{Title: "Driver", Width: 18},
	)
	m.tables[tabDrivers] = newTable(
		table.Column{Title: "Name", Width: 18},
		table.Column{Title: "Phone", Width: 15},
		table.Column{Title: "Bus", Width: 10},
		table.Column{Title: "Location", Width: 16},
		table.Column{Title: "Departs", Width: 8},
		table.Column{Title: "Status", Width: 8},
	)
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func newTable(cols ...table.Column) table.Model {
	width := 0
	for _, c := range cols {
		width += c.Width + 2
	}
	return table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(12),
		table.WithWidth(width),
	)
}

// Run blocks until the user quits.
func Run(api API, opts ...Option) error {
	_, err := tea.NewProgram(New(api, opts...), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), tick(m.interval))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		for i := range m.tables {
			m.tables[i].SetHeight(max(msg.Height-12, 5))
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.fetch(), tick(m.interval))

	case dataMsg:
		if msg.err != nil {
			m.setStatus("Could not reach the server: "+msg.err.Error(), true)
			return m, nil
		}
		m.board, m.bookings, m.drivers = msg.board, msg.bookings, msg.drivers
		m.refreshRows()
		return m, nil

	case actionMsg:
		if msg.err != nil {
			m.setStatus(msg.notice+": "+msg.err.Error(), true)
			return m, nil
		}
		m.setStatus(msg.notice, false)
		return m, m.fetch()

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateKeys(msg)
	}

	if m.form != nil {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab", "right":
		m.active = (m.active + 1) % tab(len(tabNames))
		return m, nil
	case "shift+tab", "left":
		m.active = (m.active + tab(len(tabNames)) - 1) % tab(len(tabNames))
		return m, nil
	case "1", "2", "3":
		m.active = tab(msg.String()[0] - '1')
		return m, nil
	case "r":
		return m, m.fetch()
	case "enter", "b":
		if entry, ok := m.selectedEntry(); ok {
			m.openBooking(entry)
		}
		return m, nil
	case "u":
		if entry, ok := m.selectedEntry(); ok {
			m.openStatus(entry)
		}
		return m, nil
	case "n":
		if m.active == tabDrivers {
			m.openRegister()
		}
		return m, nil
	case "d":
		return m, m.deleteSelected()
	}

	var cmd tea.Cmd
	m.tables[m.active], cmd = m.tables[m.active].Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.form = nil
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.form.move(1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.form.move(-1)
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	}
	return m, m.form.update(msg)
}

func (m *Model) openBooking(entry domain.BoardEntry) {
	m.formEntry = entry
	m.form = newForm(formBooking,
		fmt.Sprintf("Book %s from %s at %s", entry.BusNumber, entry.Stage, entry.DepartureTime),
		newField("Passenger name", "Jane Wanjiru", ""),
		newField("Seat number", "e.g., A1, A2", ""),
	)
}

func (m *Model) openStatus(entry domain.BoardEntry) {
	m.formEntry = entry
	m.form = newForm(formStatus,
		"Update "+entry.DriverName,
		newField("Current location", strings.Join(domain.Stages[:3], ", "), entry.Stage),
		newField("Departure time", "HH:MM", entry.DepartureTime),
	)
}

func (m *Model) openRegister() {
	m.formEntry = domain.BoardEntry{}
	m.form = newForm(formRegister,
		"Register driver",
		newField("Name", "John Mbugua", ""),
		newField("Phone", "+254712345678", ""),
		newField("Route", domain.RouteName, domain.RouteName),
		newField("Bus number", "KCC 456", ""),
	)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	f := m.form
	if !f.complete() {
		m.setStatus(msgFillAllFields, true)
		return m, nil
	}
	m.form = nil

	api := m.api
	switch f.kind {
	case formBooking:
		req := client.BookingFromBoard(m.formEntry, f.value(0), f.value(1), m.now())
		return m, m.action("Booking confirmed!", "Error creating booking", func(ctx context.Context) error {
			_, err := api.CreateBooking(ctx, req)
			return err
		})
	case formStatus:
		req := client.StatusFromBoard(m.formEntry, f.value(0), f.value(1))
		return m, m.action("Updated successfully!", "Error updating driver status", func(ctx context.Context) error {
			_, err := api.UpdateDriverStatus(ctx, req)
			return err
		})
	case formRegister:
		req := client.RegisterDriverRequest{Name: f.value(0), Phone: f.value(1), Route: f.value(2), BusNumber: f.value(3)}
		return m, m.action("Driver registered and added to schedules!", "Error registering driver", func(ctx context.Context) error {
			_, err := api.RegisterDriver(ctx, req)
			return err
		})
	}
	return m, nil
}

func (m Model) deleteSelected() tea.Cmd {
	api := m.api
	idx := m.tables[m.active].Cursor()
	switch m.active {
	case tabBookings:
		if idx < 0 || idx >= len(m.bookings) {
			return nil
		}
		id := m.bookings[idx].ID
		return m.action("Booking cancelled!", "Error cancelling booking", func(ctx context.Context) error {
			return api.DeleteBooking(ctx, id)
		})
	case tabDrivers:
		if idx < 0 || idx >= len(m.drivers) {
			return nil
		}
		id := m.drivers[idx].ID
		return m.action("Driver deleted", "Error deleting driver", func(ctx context.Context) error {
			return api.DeleteDriver(ctx, id)
		})
	}
	return nil
}

func (m Model) selectedEntry() (domain.BoardEntry, bool) {
	if m.active != tabSchedules {
		return domain.BoardEntry{}, false
	}
	idx := m.tables[tabSchedules].Cursor()
	if idx < 0 || idx >= len(m.board) {
		return domain.BoardEntry{}, false
	}
	return m.board[idx], true
}

func (m *Model) setStatus(s string, failed bool) {
	m.status, m.failed = s, failed
}

func (m *Model) refreshRows() {
	rows := make([]table.Row, 0, len(m.board))
	for _, e := range m.board {
		rows = append(rows, table.Row{e.Stage, e.DepartureTime, e.DriverName, e.BusNumber, e.Phone})
	}
	m.tables[tabSchedules].SetRows(rows)

	rows = make([]table.Row, 0, len(m.bookings))
	for _, b := range m.bookings {
		rows = append(rows, table.Row{b.PassengerName, b.SeatNumber, b.Stage, b.DepartureTime, b.BusNumber, b.DriverName})
	}
	m.tables[tabBookings].SetRows(rows)

	rows = make([]table.Row, 0, len(m.drivers))
	for _, d := range m.drivers {
		rows = append(rows, table.Row{d.Name, d.Phone, d.BusNumber, d.CurrentLocation, d.DepartureTime, d.Status})
	}
	m.tables[tabDrivers].SetRows(rows)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(" "+domain.RouteName+" buses ") + "\n\n")

	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == m.active {
			tabs = append(tabs, m.styles.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(label))
		}
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n")

	if m.form != nil {
		sb.WriteString(m.styles.Content.Render(m.form.view(m.styles)) + "\n")
		sb.WriteString(m.styles.Help.Render("tab next field • enter submit • esc cancel") + "\n")
	} else {
		sb.WriteString(m.styles.Content.Render(m.content()) + "\n")
		sb.WriteString(m.footer())
		sb.WriteString(m.styles.Help.Render(m.help()) + "\n")
	}

	if m.status != "" {
		if m.failed {
			sb.WriteString(m.styles.Error.Render(m.status))
		} else {
			sb.WriteString(m.styles.Notice.Render(m.status))
		}
	}
	return sb.String()
}

func (m Model) content() string {
	switch {
	case m.active == tabBookings && len(m.bookings) == 0:
		return "No bookings yet"
	case m.active == tabDrivers && len(m.drivers) == 0:
		return "No registered drivers"
	}
	return m.tables[m.active].View()
}

func (m Model) footer() string {
	entry, ok := m.selectedEntry()
	if !ok {
		return ""
	}
	return m.styles.Footer.Render("WhatsApp "+entry.DriverName+": ") + m.styles.Link.Render(entry.WhatsAppURL) + "\n"
}

func (m Model) help() string {
	switch m.active {
	case tabSchedules:
		return "↑/↓ select • b book seat • u update driver • r refresh • q quit"
	case tabBookings:
		return "↑/↓ select • d cancel booking • r refresh • q quit"
	default:
		return "↑/↓ select • n register driver • d delete driver • r refresh • q quit"
	}
}
