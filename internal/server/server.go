// Package server exposes the calendar engine as a small JSON API.
package server

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"github.com/mazs/luach/internal/hebcal"
	"github.com/mazs/luach/internal/render"
)

// MoladResponse is the JSON form of a molad: the raw triple plus the
// civil-clock rendering.
type MoladResponse struct {
	Day      int    `json:"day"`
	Hour     int    `json:"hour"`
	Chalakim int    `json:"chalakim"`
	Weekday  string `json:"weekday"`
	Display  string `json:"display"`
}

// YearResponse is the JSON form of a derived year.
type YearResponse struct {
	Year        int           `json:"year"`
	Leap        bool          `json:"leap"`
	RoshHashana int           `json:"rosh_hashana"`
	Weekday     string        `json:"weekday"`
	Type        string        `json:"type"`
	Length      int           `json:"length"`
	Months      int           `json:"months"`
	Molad       MoladResponse `json:"molad"`
}

// MonthResponse is the JSON form of a derived month.
type MonthResponse struct {
	Year        int           `json:"year"`
	Month       int           `json:"month"`
	Name        string        `json:"name"`
	Length      int           `json:"length"`
	RoshChodesh int           `json:"rosh_chodesh"`
	Weekday     string        `json:"weekday"`
	Molad       MoladResponse `json:"molad"`
}

// New builds the fiber application with all routes registered.
func New(log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Luach",
	})

	app.Use(logger.New())

	app.Get("/health", healthHandler())

	app.Get("/api/v1/years/:year", yearHandler(log))
	app.Get("/api/v1/years/:year/months/:month", monthHandler(log))

	return app
}

func healthHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

func yearHandler(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := parseYear(c)
		if err != nil {
			return badRequest(c, err.Error())
		}

		y, err := hebcal.NewYear(year)
		if err != nil {
			if errors.Is(err, hebcal.ErrInvalidInput) {
				return badRequest(c, err.Error())
			}
			log.Error("year derivation failed", zap.Int("year", year), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal calendar error",
			})
		}

		return c.JSON(yearResponse(y))
	}
}

func monthHandler(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, err := parseYear(c)
		if err != nil {
			return badRequest(c, err.Error())
		}
		month, err := strconv.Atoi(c.Params("month"))
		if err != nil {
			return badRequest(c, "month must be a number")
		}

		y, err := hebcal.NewYear(year)
		if err != nil {
			if errors.Is(err, hebcal.ErrInvalidInput) {
				return badRequest(c, err.Error())
			}
			log.Error("year derivation failed", zap.Int("year", year), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal calendar error",
			})
		}

		m, err := hebcal.NewMonth(y, month)
		if err != nil {
			return badRequest(c, err.Error())
		}

		return c.JSON(monthResponse(m))
	}
}

func parseYear(c *fiber.Ctx) (int, error) {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil {
		return 0, errors.New("year must be a number")
	}
	return year, nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func moladResponse(m hebcal.Molad) MoladResponse {
	return MoladResponse{
		Day:      m.Days(),
		Hour:     m.Hours(),
		Chalakim: m.Chalakim(),
		Weekday:  hebcal.WeekdayName(m.Days()),
		Display:  render.MoladLine(m),
	}
}

func yearResponse(y *hebcal.Year) YearResponse {
	return YearResponse{
		Year:        y.Number(),
		Leap:        y.IsLeap(),
		RoshHashana: y.RoshHashana(),
		Weekday:     hebcal.WeekdayName(y.RoshHashana()),
		Type:        y.Type().String(),
		Length:      y.Length(),
		Months:      y.Months(),
		Molad:       moladResponse(y.Molad()),
	}
}

func monthResponse(m *hebcal.Month) MonthResponse {
	return MonthResponse{
		Year:        m.Year().Number(),
		Month:       m.Number(),
		Name:        m.Name(),
		Length:      m.Length(),
		RoshChodesh: m.RoshChodesh(),
		Weekday:     hebcal.WeekdayName(m.RoshChodesh()),
		Molad:       moladResponse(m.Molad()),
	}
}
