package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"schedly-be/internal/models"
	"schedly-be/internal/repository"
	"schedly-be/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

type ScheduleController struct {
	scheduleService service.ScheduleService
	frontendURL     string
}

func NewScheduleController(scheduleService service.ScheduleService, frontendURL string) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
		frontendURL:     frontendURL,
	}
}

// Create handles POST /api/schedules
func (sc *ScheduleController) Create(c *gin.Context) {
	var req models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	schedule, err := sc.scheduleService.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create schedule",
		})
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// GetByUser handles GET /api/schedules/user/:userId
func (sc *ScheduleController) GetByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return
	}

	schedules, err := sc.scheduleService.GetByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get schedules by user",
		})
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// GetWithActivities handles GET /api/schedules/:scheduleId
func (sc *ScheduleController) GetWithActivities(c *gin.Context) {
	scheduleID, err := strconv.ParseInt(c.Param("scheduleId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule ID",
		})
		return
	}

	schedule, err := sc.scheduleService.GetWithActivities(scheduleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Schedule not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get schedule",
		})
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// GenerateQRCode handles GET /api/schedules/:scheduleId/qrcode - generates a
// QR code pointing at the schedule's frontend page
func (sc *ScheduleController) GenerateQRCode(c *gin.Context) {
	scheduleID := c.Param("scheduleId")
	if _, err := strconv.ParseInt(scheduleID, 10, 64); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule ID",
		})
		return
	}

	shareURL := sc.frontendURL + "/schedules/" + scheduleID

	pngData, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
