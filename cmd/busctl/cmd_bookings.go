package main

import (
	"fmt"
	"time"

	"github.com/Domenick1991/busbooking/internal/client"
	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *cli) bookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "List, create and cancel seat bookings",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			bookings, err := c.api.Bookings(ctx)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(bookings))
			for _, b := range bookings {
				rows = append(rows, []string{b.ID, b.PassengerName, b.SeatNumber, b.Stage, b.DepartureTime, b.BusNumber, b.Status})
			}
			return c.render(cmd.OutOrStdout(), bookings,
				[]string{"ID", "Passenger", "Seat", "Stage", "Departs", "Bus", "Status"}, rows)
		},
	}

	var req client.CreateBookingRequest
	create := &cobra.Command{
		Use:   "create",
		Short: "Book a seat on a departure from the board",
		Long: `Book a seat. When --schedule names a departure on the board, the driver,
bus, stage and time are filled in from it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if board, err := c.api.Board(ctx); err != nil {
				c.logger.Warn("board unavailable, booking without departure details", zap.Error(err))
			} else if entry, ok := client.FindEntry(board, req.ScheduleID); ok {
				req = mergeBooking(client.BookingFromBoard(entry, req.PassengerName, req.SeatNumber, time.Now()), req)
			}

			booking, err := c.api.CreateBooking(ctx, req)
			if err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), booking)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Booking confirmed: %s seat %s, id %s\n", booking.PassengerName, booking.SeatNumber, booking.ID)
			return nil
		},
	}
	create.Flags().StringVar(&req.ScheduleID, "schedule", "", "Departure ID from the board")
	create.Flags().StringVar(&req.PassengerName, "passenger", "", "Passenger name")
	create.Flags().StringVar(&req.SeatNumber, "seat", "", "Seat number")
	create.Flags().StringVar(&req.DriverID, "driver", "", "Driver ID")
	create.Flags().StringVar(&req.DriverName, "driver-name", "", "Driver name")
	create.Flags().StringVar(&req.BusNumber, "bus", "", "Bus registration number")
	create.Flags().StringVar(&req.Stage, "stage", "", "Boarding stage")
	create.Flags().StringVar(&req.DepartureTime, "time", "", "Departure time (HH:MM)")
	create.Flags().StringVar(&req.Phone, "phone", "", "Driver phone")
	create.Flags().StringVar(&req.Status, "status", domain.BookingStatusActive, "Booking status")

	del := &cobra.Command{
		Use:   "delete <booking-id>",
		Short: "Cancel a booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if err := c.api.DeleteBooking(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Booking cancelled")
			return nil
		},
	}

	cmd.AddCommand(list, create, del)
	return cmd
}

// mergeBooking overlays the flags the user set on top of the board defaults.
func mergeBooking(base, flags client.CreateBookingRequest) client.CreateBookingRequest {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&base.DriverID, flags.DriverID)
	set(&base.DriverName, flags.DriverName)
	set(&base.BusNumber, flags.BusNumber)
	set(&base.Stage, flags.Stage)
	set(&base.DepartureTime, flags.DepartureTime)
	set(&base.Phone, flags.Phone)
	set(&base.BookingDate, flags.BookingDate)
	set(&base.Status, flags.Status)
	return base
}
