package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"schedly-be/internal/entities"
	"schedly-be/internal/models"
	"schedly-be/internal/repository"
	"schedly-be/internal/service"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	activityService service.ActivityService
}

func NewActivityController(activityService service.ActivityService) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// Create handles POST /api/activities
func (ac *ActivityController) Create(c *gin.Context) {
	var req models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	activity, err := ac.activityService.Create(&req)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Schedule not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create activity",
		})
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// CreateBulk handles POST /api/activities/bulk. All activities in the
// request are persisted as one unit or not at all.
func (ac *ActivityController) CreateBulk(c *gin.Context) {
	var req models.BulkCreateActivitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := ac.activityService.CreateBulk(c.Request.Context(), &req); err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Schedule not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create activities",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Activities created successfully",
	})
}

// GetBySchedule handles GET /api/activities/:scheduleId/activities
func (ac *ActivityController) GetBySchedule(c *gin.Context) {
	scheduleID, err := strconv.ParseInt(c.Param("scheduleId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule ID",
		})
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	activities, err := ac.activityService.GetByScheduleID(scheduleID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get activities",
		})
		return
	}

	// Keep the payload an array even when the page is empty
	if activities == nil {
		activities = []*entities.Activity{}
	}

	c.JSON(http.StatusOK, activities)
}
