package region

import (
	"countries-api/core/logger"
	"countries-api/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MaxRegionLength bounds the :name route parameter.
const MaxRegionLength = 50

// Handler handles HTTP requests for regions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the region routes.
func (h *Handler) RegisterRoutes(router fiber.Router) {
	router.Get("/regions", h.HandleRegions)
	router.Get("/region/:name", h.HandleByRegion)
}

// HandleRegions lists the regions.
// @Summary List Regions
// @Description Returns every region with its country count and sorted subregions.
// @Tags region
// @Produce json
// @Success 200 {array} index.RegionSummary "Regions"
// @Router /api/v1/regions [get]
func (h *Handler) HandleRegions(c *fiber.Ctx) error {
	return c.JSON(h.service.Regions())
}

// HandleByRegion lists the countries of one region.
// @Summary Find Countries By Region
// @Description Region names are matched ignoring case, accents and separators.
// @Tags region
// @Produce json
// @Param name path string true "Region name"
// @Param fields query string false "Comma-separated dot paths"
// @Param sort query string false "Comma-separated dot paths, '-' prefix for descending"
// @Param flatten query string false "Return bare values when exactly one field is requested" Enums(true, false)
// @Param Accept-Language header string false "Preferred message language"
// @Success 200 {array} object "Countries of the region"
// @Failure 400 {object} server.ErrorBody "Invalid parameter"
// @Failure 404 {object} server.ErrorBody "Region not found"
// @Router /api/v1/region/{name} [get]
func (h *Handler) HandleByRegion(c *fiber.Ctx) error {
	name, err := server.PathParam(c, "name", MaxRegionLength)
	if err != nil {
		return err
	}
	opts, err := server.QueryOptions(c)
	if err != nil {
		return err
	}

	result, ok := h.service.FindByRegion(name, opts)
	if !ok {
		logger.WithRayID(h.service.logger, c).Debug("Region not found", zap.String("region", name))
		return server.NewError(fiber.StatusNotFound, server.KeyRegionNotFound, name)
	}
	return c.JSON(result)
}
