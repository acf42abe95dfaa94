package handlers

import (
	"civicpulse/db"
	"civicpulse/middleware"
	"civicpulse/types"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const reportListLimit = 20

// CreateReport stores a new issue report owned by the caller. This is store
// plumbing around the pulse feed, not part of the aggregation core.
func CreateReport(c *gin.Context, reports *db.Reports) {
	var request struct {
		Title    string         `json:"title" binding:"required"`
		Category string         `json:"category" binding:"required"`
		Location string         `json:"location" binding:"required"`
		Priority types.Priority `json:"priority"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if request.Priority == "" {
		request.Priority = types.PriorityMedium
	}

	report, err := reports.Create(c.Request.Context(), types.Report{
		Title:     request.Title,
		Category:  request.Category,
		Location:  request.Location,
		Status:    types.StatusOpen,
		Priority:  request.Priority,
		CreatedBy: middleware.CallerID(c),
		CreatedAt: time.Now(),
	})
	if err != nil {
		log.Printf("ERROR creating report: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ListReports returns the most recent reports, newest first.
func ListReports(c *gin.Context, reports *db.Reports) {
	recent, err := reports.Recent(c.Request.Context(), reportListLimit)
	if err != nil {
		log.Printf("ERROR listing reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reports"})
		return
	}

	if recent == nil {
		recent = []types.Report{}
	}

	c.JSON(http.StatusOK, recent)
}
