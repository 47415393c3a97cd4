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

// HotelHandler handles HTTP requests related to hotels
type HotelHandler struct {
	hotelRepository repositories.HotelRepository
}

// NewHotelHandler creates a new HotelHandler
func NewHotelHandler(hotelRepo repositories.HotelRepository) *HotelHandler {
	return &HotelHandler{hotelRepository: hotelRepo}
}

// RegisterHotelRoutes registers hotel-related routes
func (h *HotelHandler) RegisterHotelRoutes(g *echo.Group) {
	g.GET("/hotels", h.ListHotels)
	g.GET("/hotels/nearby", h.GetNearbyHotels)
	g.GET("/hotels/:id", h.GetHotel)
}

// ListHotels lists hotels with optional city and max price filters
func (h *HotelHandler) ListHotels(c echo.Context) error {
	city := c.QueryParam("city")
	maxPrice, _ := strconv.Atoi(c.QueryParam("max_price"))

	hotels, err := h.hotelRepository.ListHotels(c.Request().Context(), city, maxPrice)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, hotels)
}

// GetHotel retrieves a single hotel by ID
func (h *HotelHandler) GetHotel(c echo.Context) error {
	hotel, err := h.hotelRepository.GetHotelByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if hotel == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Hotel not found")
	}
	return c.JSON(http.StatusOK, hotel)
}

// GetNearbyHotels lists hotels within a radius of a point, nearest first
func (h *HotelHandler) GetNearbyHotels(c echo.Context) error {
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
		radiusKm = 25
	}

	hotels, err := h.hotelRepository.ListHotels(c.Request().Context(), "", 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	nearby := []models.HotelWithDistance{}
	for _, hotel := range hotels {
		d := geo.DistanceKm(lat, lon, hotel.Latitude, hotel.Longitude)
		if d <= radiusKm {
			nearby = append(nearby, models.HotelWithDistance{Hotel: hotel, DistanceKm: d})
		}
	}
	sort.Slice(nearby, func(i, j int) bool { return nearby[i].DistanceKm < nearby[j].DistanceKm })

	return c.JSON(http.StatusOK, nearby)
}
