package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mazs/luach/internal/config"
	"github.com/mazs/luach/internal/hebcal"
	"github.com/mazs/luach/internal/render"
	"github.com/mazs/luach/internal/server"
)

// yearCmd prints a one-year overview.
func yearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "year [year]",
		Short: "Show a year's start weekday, type, length, and molad",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			year, err := resolveYear(args, 0, cfg)
			if err != nil {
				return err
			}

			if cfg.Display.Banner {
				render.Banner(cmd.OutOrStdout(), version)
			}
			render.YearSummary(cmd.OutOrStdout(), year)
			return nil
		},
	}
}

// calCmd prints the month grid, the classic jcal output.
func calCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cal [year] [month]",
		Short: "Print a calendar grid for a month",
		Long: "Print a month of the Hebrew calendar as a Sunday-first grid.\n" +
			"Months are numbered from Tishrei (1) to Elul (12); Adar Sheini of a\n" +
			"leap year is 13. With no arguments the configured current year and\n" +
			"Tishrei are shown.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			year, err := resolveYear(args, 0, cfg)
			if err != nil {
				return err
			}
			month, err := resolveMonth(args, 1, year)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cfg.Display.Banner {
				render.Banner(out, version)
			}
			fmt.Fprintf(out, "Calendar for %s, %d\n", month.Name(), year.Number())
			if cfg.Display.ShowMolad {
				render.Molad(out, month)
			}
			render.MonthGrid(out, month, cfg.Display.GridHeader)
			return nil
		},
	}
}

// moladCmd prints just the molad of a month.
func moladCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "molad [year] [month]",
		Short: "Show the molad of a month",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			year, err := resolveYear(args, 0, cfg)
			if err != nil {
				return err
			}
			month, err := resolveMonth(args, 1, year)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Molad %s %d: %s\n", month.Name(), year.Number(), month.Molad())
			render.Molad(out, month)
			return nil
		},
	}
}

// serveCmd starts the JSON API.
func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calendar as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if port == 0 {
				port = cfg.Server.Port
			}

			app := server.New(logger)

			logger.Info("starting luach API",
				zap.Int("port", port),
				zap.String("version", version))

			if err := app.Listen(fmt.Sprintf(":%d", port)); err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")

	return cmd
}

// resolveYear reads a year number from args[idx]. A missing, unparsable, or
// out-of-range argument falls back to the configured current year; only a
// broken current year itself is an error.
func resolveYear(args []string, idx int, cfg *config.Config) (*hebcal.Year, error) {
	number := cfg.Calendar.CurrentYear
	if len(args) > idx {
		n, err := strconv.Atoi(args[idx])
		if err != nil || n < hebcal.MinYear || n > hebcal.MaxYear {
			logger.Warn("year out of range, using configured current year",
				zap.String("arg", args[idx]),
				zap.Int("current_year", number))
		} else {
			number = n
		}
	}
	year, err := hebcal.NewYear(number)
	if err != nil {
		return nil, fmt.Errorf("failed to derive year %d: %w", number, err)
	}
	return year, nil
}

// resolveMonth reads a normalized month number from args[idx], falling back
// to Tishrei when it is missing or not a month of this year.
func resolveMonth(args []string, idx int, year *hebcal.Year) (*hebcal.Month, error) {
	number := hebcal.Tishrei
	if len(args) > idx {
		n, err := strconv.Atoi(args[idx])
		if err != nil {
			logger.Warn("invalid month, using Tishrei", zap.String("arg", args[idx]))
		} else {
			number = n
		}
	}
	month, err := hebcal.NewMonth(year, number)
	if err != nil {
		logger.Warn("month not in this year, using Tishrei",
			zap.Int("month", number),
			zap.Int("year", year.Number()))
		month, err = hebcal.NewMonth(year, hebcal.Tishrei)
		if err != nil {
			return nil, fmt.Errorf("failed to derive month: %w", err)
		}
	}
	return month, nil
}
