package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TrainFitServices/training-scheduler/internal/config"
	"github.com/TrainFitServices/training-scheduler/internal/httperr"
	"github.com/TrainFitServices/training-scheduler/internal/httpresp"
	"github.com/TrainFitServices/training-scheduler/internal/middleware"
	ucSession "github.com/TrainFitServices/training-scheduler/internal/usecase/session"
)

// ======================================================
// HANDLER
// ======================================================

type SessionHandler struct {
	createUC   *ucSession.CreateSession
	removeUC   *ucSession.RemoveSession
	scheduleUC *ucSession.ListSchedule
	config     *config.Config
}

func NewSessionHandler(
	createUC *ucSession.CreateSession,
	removeUC *ucSession.RemoveSession,
	scheduleUC *ucSession.ListSchedule,
	cfg *config.Config,
) *SessionHandler {
	return &SessionHandler{
		createUC:   createUC,
		removeUC:   removeUC,
		scheduleUC: scheduleUC,
		config:     cfg,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSessionRequest struct {
	TrainerID uint   `json:"trainer_id"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	Category  string `json:"category" binding:"required"`

	MaxCapacity int `json:"max_capacity" binding:"required"`

	Price               float64 `json:"price"`
	PackagePrice        float64 `json:"package_price"`
	PackageDurationDays int     `json:"package_duration_days"`
}

// ======================================================
// CREATE
// ======================================================

func (h *SessionHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid session payload.")
		return
	}

	trainerID := req.TrainerID
	if trainerID == 0 {
		trainerID = userID
	}

	s, err := h.createUC.Execute(c.Request.Context(), ucSession.CreateSessionInput{
		TrainerID:   trainerID,
		CreatedByID: userID,

		Date:      req.Date,
		TimeOfDay: req.Time,
		Category:  req.Category,

		MaxCapacity: req.MaxCapacity,

		Price:               req.Price,
		PackagePrice:        req.PackagePrice,
		PackageDurationDays: req.PackageDurationDays,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, s)
}

// ======================================================
// SCHEDULE (by date)
// ======================================================

func (h *SessionHandler) ListByDate(c *gin.Context) {
	loc := operatingLocation(h.config.Timezone)

	date, err := parseDate(c.Query("date"), loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Expected date=YYYY-MM-DD.")
		return
	}

	onlyActive := c.Query("all") != "true"

	items, err := h.scheduleUC.Execute(c.Request.Context(), date, onlyActive)
	if err != nil {
		httperr.Internal(c, "internal_error", "Failed to list schedule.")
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// DEACTIVATE / DELETE
// ======================================================

func (h *SessionHandler) Deactivate(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid session id.")
		return
	}

	s, err := h.removeUC.Deactivate(c.Request.Context(), uint(sessionID), userID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *SessionHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid session id.")
		return
	}

	if err := h.removeUC.Delete(c.Request.Context(), uint(sessionID), userID); err != nil {
		writeBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
