package main

import (
	"fmt"

	"github.com/Domenick1991/busbooking/internal/client"
	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/spf13/cobra"
)

func (c *cli) driversCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drivers",
		Short: "List, register and delete drivers",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List registered drivers, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			drivers, err := c.api.Drivers(ctx)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, len(drivers))
			for _, d := range drivers {
				rows = append(rows, []string{d.ID, d.Name, d.Phone, d.BusNumber, d.CurrentLocation, d.DepartureTime, d.Status})
			}
			return c.render(cmd.OutOrStdout(), drivers,
				[]string{"ID", "Name", "Phone", "Bus", "Location", "Departs", "Status"}, rows)
		},
	}

	var req client.RegisterDriverRequest
	register := &cobra.Command{
		Use:   "register",
		Short: "Register a driver; they start at Nairobi Central at 08:00",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			driver, err := c.api.RegisterDriver(ctx, req)
			if err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), driver)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s (%s), id %s\n", driver.Name, driver.BusNumber, driver.ID)
			return nil
		},
	}
	register.Flags().StringVar(&req.Name, "name", "", "Driver name")
	register.Flags().StringVar(&req.Phone, "phone", "", "Phone number, e.g. +254712345678")
	register.Flags().StringVar(&req.Route, "route", domain.RouteName, "Route served")
	register.Flags().StringVar(&req.BusNumber, "bus", "", "Bus registration number")

	del := &cobra.Command{
		Use:   "delete <driver-id>",
		Short: "Delete a driver with their status and schedules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			if err := c.api.DeleteDriver(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Driver deleted")
			return nil
		},
	}

	cmd.AddCommand(list, register, del)
	return cmd
}

func (c *cli) statusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Read or post a driver's current location",
	}

	get := &cobra.Command{
		Use:   "get <driver-id>",
		Short: "Show the latest status a driver posted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			status, err := c.api.DriverStatus(ctx, args[0])
			if err != nil {
				return err
			}
			return c.render(cmd.OutOrStdout(), status,
				[]string{"Driver", "Bus", "Location", "Departs", "Updated"},
				[][]string{{status.DriverID, status.BusNumber, status.CurrentLocation, status.DepartureTime, status.UpdatedAt}})
		},
	}

	var req client.UpdateStatusRequest
	update := &cobra.Command{
		Use:   "update <driver-id>",
		Short: "Post where a driver is and when they leave",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			req.DriverID = args[0]
			status, err := c.api.UpdateDriverStatus(ctx, req)
			if err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), status)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated: %s at %s\n", status.CurrentLocation, status.DepartureTime)
			return nil
		},
	}
	update.Flags().StringVar(&req.CurrentLocation, "location", "", "Current stage")
	update.Flags().StringVar(&req.DepartureTime, "time", "", "Departure time (HH:MM)")
	update.Flags().StringVar(&req.DriverName, "name", "", "Driver name")
	update.Flags().StringVar(&req.BusNumber, "bus", "", "Bus registration number")
	update.Flags().StringVar(&req.Route, "route", "", "Route")
	update.Flags().StringVar(&req.Phone, "phone", "", "Phone number")

	cmd.AddCommand(get, update)
	return cmd
}
