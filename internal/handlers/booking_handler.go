package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/TrainFitServices/training-scheduler/internal/domain/booking"
	"github.com/TrainFitServices/training-scheduler/internal/dto"
	"github.com/TrainFitServices/training-scheduler/internal/httperr"
	"github.com/TrainFitServices/training-scheduler/internal/httpresp"
	"github.com/TrainFitServices/training-scheduler/internal/middleware"
	ucBooking "github.com/TrainFitServices/training-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	admitUC  *ucBooking.AdmitBooking
	cancelUC *ucBooking.CancelBooking
	repo     domain.Repository
}

func NewBookingHandler(
	admitUC *ucBooking.AdmitBooking,
	cancelUC *ucBooking.CancelBooking,
	repo domain.Repository,
) *BookingHandler {
	return &BookingHandler{
		admitUC:  admitUC,
		cancelUC: cancelUC,
		repo:     repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	SessionID uint `json:"session_id" binding:"required"`
	ClientID  uint `json:"client_id" binding:"required"`
	GroupSize int  `json:"group_size" binding:"required"`

	IsPackageBooking     bool   `json:"is_package_booking"`
	PackageID            string `json:"package_id"`
	PackageSessionNumber *int   `json:"package_session_number"`

	Notes string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	b, err := h.admitUC.Execute(c.Request.Context(), ucBooking.AdmitBookingInput{
		SessionID: req.SessionID,
		ClientID:  req.ClientID,
		GroupSize: req.GroupSize,

		IsPackageBooking:     req.IsPackageBooking,
		PackageID:            req.PackageID,
		PackageSessionNumber: req.PackageSessionNumber,

		Notes: req.Notes,

		RequestedByID: &userID,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	b, err := h.cancelUC.Execute(
		c.Request.Context(),
		uint(bookingID),
		&userID,
		middleware.IsAdmin(c),
	)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// LIST (per session)
// ======================================================

func (h *BookingHandler) ListBySession(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid session id.")
		return
	}

	bookings, err := h.repo.ListConfirmedBookings(c.Request.Context(), uint(sessionID))
	if err != nil {
		httperr.Internal(c, "internal_error", "Failed to list bookings.")
		return
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:                   b.ID,
			ClientName:           b.Client.Name,
			GroupSize:            b.GroupSize,
			Status:               b.Status,
			CancellationDeadline: b.CancellationDeadline,
			Cancellable:          b.Cancellable,
			IsPackageBooking:     b.IsPackageBooking,
			ReminderSent:         b.ReminderSent,
		})
	}

	httpresp.List(c, out)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, domain.CodeCapacityExceeded):
		httperr.Conflict(c, domain.CodeCapacityExceeded, "The session does not have enough free spots.")
	case httperr.IsBusiness(err, domain.CodeSessionUnavailable):
		httperr.NotFound(c, domain.CodeSessionUnavailable, "The session is inactive or does not exist.")
	case httperr.IsBusiness(err, domain.CodeInvalidGroupSize):
		httperr.BadRequest(c, domain.CodeInvalidGroupSize, "Group size must be between 1 and 4.")
	case httperr.IsBusiness(err, domain.CodeCancellationWindowClosed):
		httperr.Conflict(c, domain.CodeCancellationWindowClosed, "The cancellation window has closed.")
	case httperr.IsBusiness(err, domain.CodeNotFound):
		httperr.NotFound(c, domain.CodeNotFound, "Booking not found.")
	default:
		var be httperr.BusinessError
		if errors.As(err, &be) {
			httperr.BadRequest(c, be.Code, "Request rejected.")
			return
		}
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}
