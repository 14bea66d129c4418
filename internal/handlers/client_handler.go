package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TrainFitServices/training-scheduler/internal/domain/clientpkg"
	"github.com/TrainFitServices/training-scheduler/internal/httperr"
	"github.com/TrainFitServices/training-scheduler/internal/httpresp"
	"github.com/TrainFitServices/training-scheduler/internal/middleware"
	"github.com/TrainFitServices/training-scheduler/internal/models"
	ucClient "github.com/TrainFitServices/training-scheduler/internal/usecase/client"
)

type ClientHandler struct {
	db        *gorm.DB
	packageUC *ucClient.ManagePackage
}

func NewClientHandler(db *gorm.DB, packageUC *ucClient.ManagePackage) *ClientHandler {
	return &ClientHandler{
		db:        db,
		packageUC: packageUC,
	}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	var clients []models.Client
	if err := h.db.Order("name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to list clients.")
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid client payload.")
		return
	}

	client := models.Client{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "internal_error", "Failed to create client.")
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Get(c *gin.Context) {
	clientID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid client id.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, uint(clientID)).Error; err != nil {
		httperr.NotFound(c, "not_found", "Client not found.")
		return
	}

	httpresp.OK(c, gin.H{
		"client":             client,
		"has_active_package": clientpkg.HasActivePackage(&client, time.Now()),
	})
}

// --------- Package administration ---------

func (h *ClientHandler) AddPackage(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	clientID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid client id.")
		return
	}

	client, err := h.packageUC.AddPackage(c.Request.Context(), uint(clientID), &userID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, client)
}

func (h *ClientHandler) ResetPackage(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	clientID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid client id.")
		return
	}

	client, err := h.packageUC.ResetPackage(c.Request.Context(), uint(clientID), &userID)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, client)
}
