package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/builtrix-tech/metergrid/internal/repository"
	"github.com/builtrix-tech/metergrid/internal/service"
)

func Register(app *fiber.App, svcs *service.Services) {
	api := app.Group("/api")

	api.Get("/metadata", func(c *fiber.Ctx) error {
		items, err := svcs.Store.ListFacilities()
		if err != nil {
			return fail(c, err)
		}
		return ok(c, items, "Building metadata retrieved successfully")
	})

	api.Get("/energy/monthly", func(c *fiber.Ctx) error {
		items, err := svcs.Store.MonthlyConsumption(filterFrom(c))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, items, "Monthly consumption data retrieved successfully")
	})

	api.Get("/energy/daily", func(c *fiber.Ctx) error {
		items, err := svcs.Store.DailyConsumption(filterFrom(c))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, items, "Daily consumption data retrieved successfully")
	})

	api.Get("/energy/15min", func(c *fiber.Ctx) error {
		items, err := svcs.Store.FifteenMinReadings(filterFrom(c), 0)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, items, "15-minute consumption data retrieved successfully")
	})

	api.Get("/energy/sources", func(c *fiber.Ctx) error {
		items, err := svcs.Store.SourceMixSeries(filterFrom(c))
		if err != nil {
			return fail(c, err)
		}
		return ok(c, items, "Energy source breakdown retrieved successfully")
	})

	api.Get("/export", func(c *fiber.Ctx) error {
		res, err := svcs.Export.Export(service.ExportRequest{
			Type:   c.Query("type"),
			Filter: filterFrom(c),
		})
		if errors.Is(err, service.ErrUnknownExportType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
		}
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(res)
	})
}

// filterFrom maps optional query parameters onto a Filter; missing or
// unparsable values stay zero and contribute no predicate.
func filterFrom(c *fiber.Ctx) repository.Filter {
	return repository.Filter{
		Year:     c.QueryInt("year"),
		Month:    c.QueryInt("month"),
		Day:      c.QueryInt("day"),
		Building: c.Query("building"),
	}
}

func ok(c *fiber.Ctx, data any, msg string) error {
	return c.JSON(fiber.Map{"success": true, "data": data, "message": msg})
}

func fail(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": err.Error()})
}
