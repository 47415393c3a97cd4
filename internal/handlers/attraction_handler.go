package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/wandermh/backend/internal/geo"
	"github.com/wandermh/backend/internal/models"
	"github.com/wandermh/backend/internal/repositories"
)

// AttractionHandler handles HTTP requests related to attractions
type AttractionHandler struct {
	attractionRepository repositories.AttractionRepository
}

// NewAttractionHandler creates a new AttractionHandler
func NewAttractionHandler(attractionRepo repositories.AttractionRepository) *AttractionHandler {
	return &AttractionHandler{attractionRepository: attractionRepo}
}

// RegisterAttractionRoutes registers attraction-related routes
func (h *AttractionHandler) RegisterAttractionRoutes(g *echo.Group) {
	g.GET("/attractions", h.ListAttractions)
	g.GET("/attractions/nearby", h.GetNearbyAttractions)
	g.GET("/attractions/:id", h.GetAttraction)
}

// ListAttractions lists attractions with optional category/city filters
func (h *AttractionHandler) ListAttractions(c echo.Context) error {
	category := c.QueryParam("category")
	city := c.QueryParam("city")

	attractions, err := h.attractionRepository.ListAttractions(c.Request().Context(), category, city)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, attractions)
}

// GetAttraction retrieves a single attraction by ID
func (h *AttractionHandler) GetAttraction(c echo.Context) error {
	attraction, err := h.attractionRepository.GetAttractionByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if attraction == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Attraction not found")
	}
	return c.JSON(http.StatusOK, attraction)
}

// GetNearbyAttractions lists attractions within a radius of a point,
// nearest first
func (h *AttractionHandler) GetNearbyAttractions(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid or missing lat")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid or missing lon")
	}
	radiusKm, err := strconv.ParseFloat(c.QueryParam("radius_km"), 64)
	if err != nil || radiusKm <= 0 {
		radiusKm = 50
	}

	attractions, err := h.attractionRepository.ListAttractions(c.Request().Context(), "", "")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	nearby := []models.AttractionWithDistance{}
	for _, a := range attractions {
		d := geo.DistanceKm(lat, lon, a.Latitude, a.Longitude)
		if d <= radiusKm {
			nearby = append(nearby, models.AttractionWithDistance{Attraction: a, DistanceKm: d})
		}
	}
	sort.Slice(nearby, func(i, j int) bool { return nearby[i].DistanceKm < nearby[j].DistanceKm })

	return c.JSON(http.StatusOK, nearby)
}
