package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/wandermh/backend/internal/connections"
	"github.com/wandermh/backend/internal/models"
	"github.com/wandermh/backend/internal/repositories"
)

// ConnectionHandler handles HTTP requests for the tourist-guide connection
// workflow. All lifecycle and authorization decisions are delegated to the
// connections service; this layer only binds requests and maps errors to
// status codes.
type ConnectionHandler struct {
	service                *connections.Service
	notificationRepository repositories.NotificationRepository
}

// NewConnectionHandler creates a new ConnectionHandler
func NewConnectionHandler(service *connections.Service, notifRepo repositories.NotificationRepository) *ConnectionHandler {
	return &ConnectionHandler{
		service:                service,
		notificationRepository: notifRepo,
	}
}

// RegisterConnectionRoutes registers connection-related routes
func (h *ConnectionHandler) RegisterConnectionRoutes(g *echo.Group) {
	g.POST("/connections", h.RequestConnection)
	g.PATCH("/connections/:id", h.RespondToConnection)
	g.GET("/connections", h.ListConnections)
}

// connectionHTTPError translates engine errors into transport errors
func connectionHTTPError(err error) error {
	switch {
	case errors.Is(err, connections.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, connections.ErrNotAuthorized):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, connections.ErrAlreadyFinalized):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, connections.ErrInvalidRole),
		errors.Is(err, connections.ErrSelfConnection),
		errors.Is(err, connections.ErrEmptyMessage),
		errors.Is(err, connections.ErrInvalidTargetStatus):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// RequestConnection handles a tourist sending a connection request to a guide
func (h *ConnectionHandler) RequestConnection(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateConnectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Request(c.Request().Context(), currentUserID, req.ToUserID, req.Message, req.TripDetails, req.Budget)
	if err != nil {
		return connectionHTTPError(err)
	}

	h.notify(&models.Notification{
		Type:         models.NotifConnectionRequest,
		ActorID:      currentUserID,
		RecipientID:  req.ToUserID,
		ConnectionID: detail.ID.Hex(),
		Message:      detail.FromUser.Name + " sent you a connection request",
	})

	return c.JSON(http.StatusCreated, detail)
}

// RespondToConnection handles accept/reject by the guide and withdraw by
// the tourist
func (h *ConnectionHandler) RespondToConnection(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	connectionID := c.Param("id")

	var req models.UpdateConnectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	conn, err := h.service.Respond(c.Request().Context(), connectionID, currentUserID, req.Status)
	if err != nil {
		return connectionHTTPError(err)
	}

	switch conn.Status {
	case models.StatusAccepted:
		h.notify(&models.Notification{
			Type:         models.NotifConnectionAccepted,
			ActorID:      currentUserID,
			RecipientID:  conn.FromUserID,
			ConnectionID: conn.ID.Hex(),
			Message:      "Your connection request was accepted",
		})
	case models.StatusRejected:
		h.notify(&models.Notification{
			Type:         models.NotifConnectionRejected,
			ActorID:      currentUserID,
			RecipientID:  conn.FromUserID,
			ConnectionID: conn.ID.Hex(),
			Message:      "Your connection request was declined",
		})
	}

	return c.JSON(http.StatusOK, conn)
}

// ListConnections returns the authenticated user's classified inbox
func (h *ConnectionHandler) ListConnections(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	inbox, err := h.service.ListForViewer(c.Request().Context(), currentUserID)
	if err != nil {
		return connectionHTTPError(err)
	}
	return c.JSON(http.StatusOK, inbox)
}

// notify writes a notification row, best effort
func (h *ConnectionHandler) notify(n *models.Notification) {
	if err := h.notificationRepository.CreateNotification(n); err != nil {
		log.Printf("Failed to create notification: %v", err)
	}
}
