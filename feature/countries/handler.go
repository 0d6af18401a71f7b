package countries

import (
	"countries-api/core/logger"
	"countries-api/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MaxNameLength bounds the :name route parameter.
const MaxNameLength = 100

// Handler handles HTTP requests for countries.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the countries routes.
func (h *Handler) RegisterRoutes(router fiber.Router) {
	router.Get("/all", h.HandleAll)
	router.Get("/name/:name", h.HandleByName)
}

// HandleAll lists every country.
// @Summary List Countries
// @Description Returns all countries. Use fields to limit the returned branches, sort to order them and flatten to get bare values of a single field.
// @Tags countries
// @Produce json
// @Param fields query string false "Comma-separated dot paths, e.g. name.common,population"
// @Param sort query string false "Comma-separated dot paths, '-' prefix for descending, e.g. region,-population"
// @Param flatten query string false "Return bare values when exactly one field is requested" Enums(true, false)
// @Param Accept-Language header string false "Preferred message language"
// @Success 200 {array} object "Countries"
// @Failure 400 {object} server.ErrorBody "Invalid parameter"
// @Router /api/v1/all [get]
func (h *Handler) HandleAll(c *fiber.Ctx) error {
	opts, err := server.QueryOptions(c)
	if err != nil {
		return err
	}
	return c.JSON(h.service.All(opts))
}

// HandleByName looks a country up by any of its names.
// @Summary Find Countries By Name
// @Description Matches common, official, native and translated names, ignoring case, accents and separators.
// @Tags countries
// @Produce json
// @Param name path string true "Country name in any language"
// @Param fields query string false "Comma-separated dot paths"
// @Param sort query string false "Comma-separated dot paths, '-' prefix for descending"
// @Param flatten query string false "Return bare values when exactly one field is requested" Enums(true, false)
// @Param Accept-Language header string false "Preferred message language"
// @Success 200 {array} object "Matching countries"
// @Failure 400 {object} server.ErrorBody "Invalid parameter"
// @Failure 404 {object} server.ErrorBody "Country not found"
// @Router /api/v1/name/{name} [get]
func (h *Handler) HandleByName(c *fiber.Ctx) error {
	name, err := server.PathParam(c, "name", MaxNameLength)
	if err != nil {
		return err
	}
	opts, err := server.QueryOptions(c)
	if err != nil {
		return err
	}

	result, ok := h.service.FindByName(name, opts)
	if !ok {
		logger.WithRayID(h.service.logger, c).Debug("Country not found", zap.String("name", name))
		return server.NewError(fiber.StatusNotFound, server.KeyCountryNotFound, name)
	}
	return c.JSON(result)
}
