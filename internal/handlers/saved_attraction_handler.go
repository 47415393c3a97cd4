package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wandermh/backend/internal/models"
	"github.com/wandermh/backend/internal/repositories"
)

// SavedAttractionHandler handles bookmarking of attractions
type SavedAttractionHandler struct {
	savedAttractionRepository repositories.SavedAttractionRepository
	attractionRepository      repositories.AttractionRepository
}

// NewSavedAttractionHandler creates a new SavedAttractionHandler
func NewSavedAttractionHandler(savedRepo repositories.SavedAttractionRepository, attractionRepo repositories.AttractionRepository) *SavedAttractionHandler {
	return &SavedAttractionHandler{
		savedAttractionRepository: savedRepo,
		attractionRepository:      attractionRepo,
	}
}

// RegisterSavedAttractionRoutes registers saved attraction routes
func (h *SavedAttractionHandler) RegisterSavedAttractionRoutes(g *echo.Group) {
	g.POST("/attractions/:id/save", h.SaveAttraction)
	g.DELETE("/attractions/:id/save", h.UnsaveAttraction)
	g.GET("/saved-attractions", h.GetSavedAttractions)
}

// SaveAttraction bookmarks an attraction for the authenticated user
func (h *SavedAttractionHandler) SaveAttraction(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	attractionID := c.Param("id")
	attraction, err := h.attractionRepository.GetAttractionByID(c.Request().Context(), attractionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if attraction == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Attraction not found")
	}

	saved, err := h.savedAttractionRepository.IsAttractionSaved(currentUserID, attractionID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if saved {
		return echo.NewHTTPError(http.StatusConflict, "Attraction already saved")
	}

	record := &models.SavedAttraction{
		UserID:       currentUserID,
		AttractionID: attractionID,
	}
	if err := h.savedAttractionRepository.SaveAttraction(record); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, record)
}

// UnsaveAttraction removes a bookmark
func (h *SavedAttractionHandler) UnsaveAttraction(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.savedAttractionRepository.UnsaveAttraction(currentUserID, c.Param("id")); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Saved attraction not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetSavedAttractions lists the authenticated user's bookmarked attractions
// with full attraction documents where they still exist
func (h *SavedAttractionHandler) GetSavedAttractions(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	saved, err := h.savedAttractionRepository.GetSavedAttractionsByUser(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	attractions := []models.Attraction{}
	for _, s := range saved {
		attraction, err := h.attractionRepository.GetAttractionByID(c.Request().Context(), s.AttractionID)
		if err != nil || attraction == nil {
			continue // attraction removed since it was saved
		}
		attractions = append(attractions, *attraction)
	}
	return c.JSON(http.StatusOK, attractions)
}
