package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Eenot/shareit/internal/application"
	"github.com/Eenot/shareit/internal/domain"
	"github.com/Eenot/shareit/internal/middleware"
	"github.com/Eenot/shareit/internal/response"
)

const (
	defaultPageSize = 10
	stateAll        = "ALL"
)

// BookingHandler handles HTTP requests for booking operations. The caller
// identity always comes from the X-Sharer-User-Id header.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListByBooker)
		bookings.GET("/owner", h.ListByOwner)
		bookings.GET("/:bookingId", h.GetBooking)
		bookings.PATCH("/:bookingId", h.ApproveBooking)
		bookings.POST("/:bookingId/cancel", h.CancelBooking)
	}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), middleware.CallerID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ApproveBooking handles PATCH /bookings/:bookingId?approved=true|false.
func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	bookingID, ok := parseID(c, "bookingId")
	if !ok {
		return
	}

	result, err := h.service.ApproveBooking(c.Request.Context(), bookingID, middleware.CallerID(c), c.Query("approved"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CancelBooking handles POST /bookings/:bookingId/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID, ok := parseID(c, "bookingId")
	if !ok {
		return
	}

	result, err := h.service.CancelBooking(c.Request.Context(), bookingID, middleware.CallerID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBooking handles GET /bookings/:bookingId.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, ok := parseID(c, "bookingId")
	if !ok {
		return
	}

	result, err := h.service.GetBookingInfo(c.Request.Context(), bookingID, middleware.CallerID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListByBooker handles GET /bookings?state=&from=&size=.
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	page, ok := parsePagination(c)
	if !ok {
		return
	}

	state := c.DefaultQuery("state", stateAll)
	result, err := h.service.ListBookingsByBooker(c.Request.Context(), middleware.CallerID(c), state, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListByOwner handles GET /bookings/owner?state=&from=&size=.
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	page, ok := parsePagination(c)
	if !ok {
		return
	}

	state := c.DefaultQuery("state", stateAll)
	result, err := h.service.ListBookingsByOwner(c.Request.Context(), middleware.CallerID(c), state, page)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// --- Shared helpers ---

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.BadRequest(c, "invalid "+param)
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads the from/size query parameters. Bounds beyond
// non-negativity are the gateway's concern.
func parsePagination(c *gin.Context) (domain.Page, bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", "0"))
	if err != nil || from < 0 {
		response.BadRequest(c, "invalid from parameter")
		return domain.Page{}, false
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if err != nil || size < 0 {
		response.BadRequest(c, "invalid size parameter")
		return domain.Page{}, false
	}

	return domain.NewPage(from, size), true
}
