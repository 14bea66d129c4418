package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TrainFitServices/training-scheduler/internal/httperr"
	"github.com/TrainFitServices/training-scheduler/internal/httpresp"
	"github.com/TrainFitServices/training-scheduler/internal/reminder"
)

// ReminderHandler exposes the scheduler's operator surface: an on-demand
// tick and the sent-flag reset used in testing.
type ReminderHandler struct {
	scheduler *reminder.Scheduler
}

func NewReminderHandler(scheduler *reminder.Scheduler) *ReminderHandler {
	return &ReminderHandler{scheduler: scheduler}
}

func (h *ReminderHandler) RunTick(c *gin.Context) {
	if err := h.scheduler.Tick(c.Request.Context()); err != nil {
		httperr.Internal(c, "tick_failed", err.Error())
		return
	}

	httpresp.OK(c, gin.H{"status": "tick_completed"})
}

func (h *ReminderHandler) ResetFlag(c *gin.Context) {
	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	if err := h.scheduler.ResetReminder(c.Request.Context(), uint(bookingID)); err != nil {
		httperr.Internal(c, "reset_failed", err.Error())
		return
	}

	httpresp.OK(c, gin.H{"status": "reminder_flag_cleared"})
}
