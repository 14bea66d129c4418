package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TrainFitServices/training-scheduler/internal/cache"
	"github.com/TrainFitServices/training-scheduler/internal/config"
	"github.com/TrainFitServices/training-scheduler/internal/httperr"
	"github.com/TrainFitServices/training-scheduler/internal/httpresp"
	ucBooking "github.com/TrainFitServices/training-scheduler/internal/usecase/booking"
	ucSession "github.com/TrainFitServices/training-scheduler/internal/usecase/session"
)

// PublicHandler serves the unauthenticated client-facing surface:
// availability for a date and booking creation.
type PublicHandler struct {
	scheduleUC   *ucSession.ListSchedule
	admitUC      *ucBooking.AdmitBooking
	availability *cache.AvailabilityCache
	config       *config.Config
}

func NewPublicHandler(
	scheduleUC *ucSession.ListSchedule,
	admitUC *ucBooking.AdmitBooking,
	availability *cache.AvailabilityCache,
	cfg *config.Config,
) *PublicHandler {
	return &PublicHandler{
		scheduleUC:   scheduleUC,
		admitUC:      admitUC,
		availability: availability,
		config:       cfg,
	}
}

// --------- Availability ---------

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")

	loc := operatingLocation(h.config.Timezone)
	date, err := parseDate(dateStr, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Expected date=YYYY-MM-DD.")
		return
	}

	ctx := c.Request.Context()

	if items, ok := h.availability.Get(ctx, dateStr); ok {
		httpresp.List(c, items)
		return
	}

	items, err := h.scheduleUC.PublicAvailability(ctx, date)
	if err != nil {
		httperr.Internal(c, "internal_error", "Failed to compute availability.")
		return
	}

	h.availability.Set(ctx, dateStr, items)
	httpresp.List(c, items)
}

// --------- Booking ---------

type PublicBookingRequest struct {
	SessionID uint `json:"session_id" binding:"required"`
	ClientID  uint `json:"client_id" binding:"required"`
	GroupSize int  `json:"group_size" binding:"required"`

	IsPackageBooking bool   `json:"is_package_booking"`
	Notes            string `json:"notes"`
}

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	b, err := h.admitUC.Execute(c.Request.Context(), ucBooking.AdmitBookingInput{
		SessionID: req.SessionID,
		ClientID:  req.ClientID,
		GroupSize: req.GroupSize,

		IsPackageBooking: req.IsPackageBooking,

		Notes: req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}
