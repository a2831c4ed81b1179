package httpapi

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/knmi-induced/internal/seismic"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *seismic.Service) {
	app.Get("/api/induced", func(c *fiber.Ctx) error {
		events, err := service.GetEvents()
		if err != nil {
			return readError(err)
		}
		return c.JSON(fiber.Map{"events": events})
	})

	api := app.Group("/api/induced")

	api.Get("/geojson", func(c *fiber.Ctx) error {
		features, err := service.GetFeatures()
		if err != nil {
			return readError(err)
		}
		return c.JSON(features.GeoJSON())
	})

	api.Get("/geojson/query", func(c *fiber.Ctx) error {
		var req rangeQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		features, err := service.GetFeaturesInRange(*req.StartYear, *req.EndYear)
		if err != nil {
			return readError(err)
		}
		return c.JSON(features.GeoJSON())
	})

	api.Get("/status", func(c *fiber.Ctx) error {
		snap, err := service.Snapshot()
		if err != nil {
			return readError(err)
		}
		return c.JSON(fiber.Map{
			"generation":   snap.Generation,
			"refreshedAt":  snap.RefreshedAt.Format(time.RFC3339),
			"events":       snap.Len(),
			"refreshState": service.State().String(),
		})
	})
}

func readError(err error) error {
	if errors.Is(err, seismic.ErrNotInitialized) {
		return fiber.NewError(fiber.StatusServiceUnavailable, "seismic data not available yet")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "failed to read seismic data")
}

// rangeQuery holds query parameters for the ranged feature endpoint.
type rangeQuery struct {
	StartYear *int `validate:"required"`
	EndYear   *int `validate:"required"`
}

func (q *rangeQuery) bind(c *fiber.Ctx) error {
	var err error
	if q.StartYear, err = queryInt(c, "start_year"); err != nil {
		return err
	}
	if q.EndYear, err = queryInt(c, "end_year"); err != nil {
		return err
	}
	return nil
}

// queryInt returns nil when the parameter is absent.
func queryInt(c *fiber.Ctx, key string) (*int, error) {
	s := c.Query(key)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer year", key)
	}
	return &n, nil
}
