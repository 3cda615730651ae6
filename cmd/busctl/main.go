package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Domenick1991/busbooking/internal/client"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultAPIURL = "http://localhost:3001"

// cli carries the global flags and the clients built from them.
type cli struct {
	apiURL  string
	timeout time.Duration
	verbose bool
	asJSON  bool

	logger *zap.Logger
	api    *client.Client
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "busctl",
		Short: "Drive the Nairobi - Thika bus booking service from a terminal",
		Long: `busctl talks to the booking API: register drivers, post their location,
add departures and book seats.

Run "busctl ui" for the interactive board.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if c.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			c.logger = logger
			c.api = client.New(c.apiURL)
			c.logger.Debug("using api", zap.String("url", c.apiURL))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	apiURL := os.Getenv("BUSCTL_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	root.PersistentFlags().StringVar(&c.apiURL, "api", apiURL, "Booking API base URL (or set BUSCTL_API_URL)")
	root.PersistentFlags().DurationVar(&c.timeout, "timeout", 10*time.Second, "Request timeout")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().BoolVar(&c.asJSON, "json", false, "Print raw JSON instead of tables")

	root.AddCommand(c.healthCmd())
	root.AddCommand(c.driversCmd())
	root.AddCommand(c.statusCmd())
	root.AddCommand(c.schedulesCmd())
	root.AddCommand(c.bookingsCmd())
	root.AddCommand(c.boardCmd())
	root.AddCommand(c.uiCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), c.timeout)
}

func (c *cli) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := c.context(cmd)
			defer cancel()

			health, err := c.api.Health(ctx)
			if err != nil {
				return err
			}
			if c.asJSON {
				return printJSON(cmd.OutOrStdout(), health)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", health.Status, health.Timestamp)
			return nil
		},
	}
}

// render prints v as JSON when --json is set, otherwise as a table.
func (c *cli) render(w io.Writer, v any, headers []string, rows [][]string) error {
	if c.asJSON {
		return printJSON(w, v)
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "Nothing to show.")
		return nil
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#2A3850"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
