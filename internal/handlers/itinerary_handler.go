package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/wandermh/backend/internal/models"
	"github.com/wandermh/backend/internal/repositories"
)

// ItineraryHandler handles HTTP requests related to itineraries
type ItineraryHandler struct {
	itineraryRepository repositories.ItineraryRepository
}

// NewItineraryHandler creates a new ItineraryHandler
func NewItineraryHandler(itineraryRepo repositories.ItineraryRepository) *ItineraryHandler {
	return &ItineraryHandler{itineraryRepository: itineraryRepo}
}

// RegisterItineraryRoutes registers itinerary-related routes
func (h *ItineraryHandler) RegisterItineraryRoutes(g *echo.Group) {
	g.POST("/itineraries", h.CreateItinerary)
	g.GET("/itineraries", h.GetMyItineraries)
	g.GET("/itineraries/shared", h.GetSharedItineraries)
	g.GET("/itineraries/:id", h.GetItinerary)
	g.PUT("/itineraries/:id", h.UpdateItinerary)
	g.DELETE("/itineraries/:id", h.DeleteItinerary)
}

// CreateItinerary creates a new itinerary for the authenticated user
func (h *ItineraryHandler) CreateItinerary(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateItineraryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	itinerary := &models.Itinerary{
		UserID:      currentUserID,
		Title:       req.Title,
		Description: req.Description,
		Destination: req.Destination,
		Days:        req.Days,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		IsPublic:    req.IsPublic,
	}

	if err := h.itineraryRepository.CreateItinerary(c.Request().Context(), itinerary); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, itinerary)
}

// GetMyItineraries lists the authenticated user's itineraries
func (h *ItineraryHandler) GetMyItineraries(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	itineraries, err := h.itineraryRepository.GetItinerariesByUserID(c.Request().Context(), currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, itineraries)
}

// GetSharedItineraries lists public itineraries with pagination
func (h *ItineraryHandler) GetSharedItineraries(c echo.Context) error {
	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit < 1 || limit > 50 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}

	itineraries, err := h.itineraryRepository.GetPublicItineraries(c.Request().Context(), skip, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, itineraries)
}

// GetItinerary returns a single itinerary. Private itineraries are only
// visible to their owner; everyone else gets a 404 so their existence is
// not leaked.
func (h *ItineraryHandler) GetItinerary(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)

	itinerary, err := h.itineraryRepository.GetItineraryByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if itinerary == nil || (!itinerary.IsPublic && itinerary.UserID != currentUserID) {
		return echo.NewHTTPError(http.StatusNotFound, "Itinerary not found")
	}
	return c.JSON(http.StatusOK, itinerary)
}

// UpdateItinerary updates an itinerary owned by the authenticated user
func (h *ItineraryHandler) UpdateItinerary(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateItineraryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	itinerary, err := h.itineraryRepository.GetItineraryByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if itinerary == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Itinerary not found")
	}
	if itinerary.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not the owner of this itinerary")
	}

	if req.Title != "" {
		itinerary.Title = req.Title
	}
	if req.Description != "" {
		itinerary.Description = req.Description
	}
	if req.Destination != "" {
		itinerary.Destination = req.Destination
	}
	if req.Days != nil {
		itinerary.Days = req.Days
	}
	if !req.StartDate.IsZero() {
		itinerary.StartDate = req.StartDate
	}
	if !req.EndDate.IsZero() {
		itinerary.EndDate = req.EndDate
	}
	if req.Budget != "" {
		itinerary.Budget = req.Budget
	}
	if req.IsPublic != nil {
		itinerary.IsPublic = *req.IsPublic
	}

	if err := h.itineraryRepository.UpdateItinerary(c.Request().Context(), itinerary); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, itinerary)
}

// DeleteItinerary deletes an itinerary owned by the authenticated user
func (h *ItineraryHandler) DeleteItinerary(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	itinerary, err := h.itineraryRepository.GetItineraryByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if itinerary == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Itinerary not found")
	}
	if itinerary.UserID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not the owner of this itinerary")
	}

	if err := h.itineraryRepository.DeleteItinerary(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
