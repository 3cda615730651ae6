package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/busbooking/internal/client"
	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/Domenick1991/busbooking/internal/tui"
	"github.com/spf13/cobra"
)

func (c *cli) schedulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedules",
		Short: "List, add and delete stored departures",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored departures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			schedules, err := c.api.Schedules(ctx)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(schedules))
			for _, s := range schedules {
				rows = append(rows, []string{s.ID, s.DriverID, s.Stage, s.DepartureTime})
			}
			return c.render(cmd.OutOrStdout(), schedules, []string{"ID", "Driver", "Stage", "Departs"}, rows)
		},
	}

	var req client.AddScheduleRequest
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a departure for a driver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			schedule, err := c.api.AddSchedule(ctx, req)
			if err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), schedule)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s: %s at %s\n", schedule.ID, schedule.Stage, schedule.DepartureTime)
			return nil
		},
	}
	add.Flags().StringVar(&req.DriverID, "driver", "", "Driver ID")
	add.Flags().StringVar(&req.Stage, "stage", "", "Stage: "+strings.Join(domain.Stages, ", "))
	add.Flags().StringVar(&req.DepartureTime, "time", "", "Departure time (HH:MM)")

	del := &cobra.Command{
		Use:   "delete <schedule-id>",
		Short: "Delete a stored departure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if err := c.api.DeleteSchedule(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schedule deleted")
			return nil
		},
	}

	cmd.AddCommand(list, add, del)
	return cmd
}

func (c *cli) boardCmd() *cobra.Command {
	var withLinks bool
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show every bookable departure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			board, err := c.api.Board(ctx)
			if err != nil {
				return err
			}
			headers := []string{"ID", "Stage", "Departs", "Driver", "Bus", "Phone"}
			if withLinks {
				headers = append(headers, "WhatsApp")
			}
			rows := make([][]string, 0, len(board))
			for _, e := range board {
				row := []string{e.ID, e.Stage, e.DepartureTime, e.DriverName, e.BusNumber, e.Phone}
				if withLinks {
					row = append(row, e.WhatsAppURL)
				}
				rows = append(rows, row)
			}
			return c.render(cmd.OutOrStdout(), board, headers, rows)
		},
	}
	cmd.Flags().BoolVar(&withLinks, "links", false, "Include WhatsApp booking links")
	return cmd
}

func (c *cli) uiCmd() *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(c.api, tui.WithInterval(interval), tui.WithTimeout(c.timeout))
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 5*time.Second, "Refresh interval")
	return cmd
}
